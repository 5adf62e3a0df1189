package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/covrig/internal/model"
)

func diamondHierarchy() m.Hierarchy {
	return m.Hierarchy{
		"IA": {},
		"IB": {Supertypes: []string{"IA"}},
		"IC": {Supertypes: []string{"IA"}},
		"B":  {Supertypes: []string{"IB"}},
		"C":  {Supertypes: []string{"IC"}},
		"BC": {Supertypes: []string{"IB", "IC"}},
	}
}

var diamondUniverse = []string{"IA", "IB", "IC", "B", "C", "BC"}

func TestClassFilter_InheritedDiamond(t *testing.T) {
	cf, err := NewClassFilter(m.Filters{IncludeInherited: []string{"IA"}})
	require.NoError(t, err)

	got := cf.Filter(diamondUniverse, diamondHierarchy())

	assert.Equal(t, []string{"B", "BC", "C", "IB", "IC"}, got)
}

func TestClassFilter_InheritedIncludeExcludeOverlap(t *testing.T) {
	cf, err := NewClassFilter(m.Filters{
		IncludeInherited: []string{"IA"},
		ExcludeInherited: []string{"IC"},
	})
	require.NoError(t, err)

	got := cf.Filter(diamondUniverse, diamondHierarchy())

	assert.Equal(t, []string{"B", "IB", "IC"}, got)
}

func TestClassFilter_InheritedIsIdempotent(t *testing.T) {
	cf, err := NewClassFilter(m.Filters{IncludeInherited: []string{"IA"}})
	require.NoError(t, err)

	h := diamondHierarchy()
	first := cf.Filter(diamondUniverse, h)
	second := cf.Filter(first, h)

	assert.Equal(t, first, second)
}

func TestClassFilter_InheritedTerminatesOnCycles(t *testing.T) {
	h := m.Hierarchy{
		"A": {Supertypes: []string{"B"}},
		"B": {Supertypes: []string{"A", "Root"}},
	}

	cf, err := NewClassFilter(m.Filters{IncludeInherited: []string{"Root"}})
	require.NoError(t, err)

	assert.True(t, cf.Matches("A", h))
	assert.True(t, cf.Matches("B", h))

	self, err := NewClassFilter(m.Filters{IncludeInherited: []string{"A"}})
	require.NoError(t, err)

	assert.False(t, self.Matches("A", h), "a class is never its own ancestor")
	assert.True(t, self.Matches("B", h))
}

func TestClassFilter_UnknownAncestorsAreRecorded(t *testing.T) {
	h := m.Hierarchy{"A": {Supertypes: []string{"lib.Missing"}}}

	cf, err := NewClassFilter(m.Filters{IncludeInherited: []string{"lib\\..*"}})
	require.NoError(t, err)

	assert.True(t, cf.Matches("A", h))
	assert.Equal(t, []string{"lib.Missing"}, cf.UnknownAncestors())
}

func TestClassFilter_NamePatternsAreAnchored(t *testing.T) {
	cf, err := NewClassFilter(m.Filters{
		IncludeClasses: []string{"com\\.acme\\..*"},
		ExcludeClasses: []string{".*Test"},
	})
	require.NoError(t, err)

	assert.True(t, cf.MatchesName("com.acme.Foo"))
	assert.False(t, cf.MatchesName("org.com.acme.Foo"))
	assert.False(t, cf.MatchesName("com.acme.FooTest"))
	assert.True(t, cf.MatchesName("com.acme.TestFoo"))
}

func TestClassFilter_EmptyFilterMatchesEverything(t *testing.T) {
	cf, err := NewClassFilter(m.Filters{})
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "BC", "C", "IA", "IB", "IC"}, cf.Filter(diamondUniverse, diamondHierarchy()))
	assert.Empty(t, cf.UnknownAncestors())
}

func TestClassFilter_Annotations(t *testing.T) {
	h := m.Hierarchy{
		"Gen":   {Annotations: []string{"Generated"}},
		"Svc":   {Annotations: []string{"Service"}},
		"Both":  {Annotations: []string{"Service", "Generated"}},
		"Plain": {},
	}

	cf, err := NewClassFilter(m.Filters{
		IncludeAnnotations: []string{"Service"},
		ExcludeAnnotations: []string{"Generated"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Svc"}, cf.Filter([]string{"Gen", "Svc", "Both", "Plain"}, h))

	excludeOnly, err := NewClassFilter(m.Filters{ExcludeAnnotations: []string{"Generated"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"Plain", "Svc"}, excludeOnly.Filter([]string{"Gen", "Svc", "Both", "Plain"}, h))
}

func TestNewClassFilter_InvalidPattern(t *testing.T) {
	groups := []m.Filters{
		{IncludeClasses: []string{"("}},
		{ExcludeClasses: []string{"[a-"}},
		{IncludeAnnotations: []string{"*"}},
		{ExcludeAnnotations: []string{"(?P<"}},
		{IncludeInherited: []string{"a)"}},
		{ExcludeInherited: []string{"\\"}},
	}

	for _, f := range groups {
		_, err := NewClassFilter(f)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidPattern), "%v", err)
	}
}

func TestAncestorClosure(t *testing.T) {
	h := diamondHierarchy()
	h["X"] = m.ClassMetadata{Supertypes: []string{"BC", "ext.Unknown"}}

	ancestors, unknown := AncestorClosure("X", h)

	assert.Equal(t, []string{"BC", "IA", "IB", "IC", "ext.Unknown"}, ancestors)
	assert.Equal(t, []string{"ext.Unknown"}, unknown)

	none, _ := AncestorClosure("IA", h)
	assert.Empty(t, none)

	missing, missingUnknown := AncestorClosure("NotThere", h)
	assert.Empty(t, missing)
	assert.Empty(t, missingUnknown)
}
