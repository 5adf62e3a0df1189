package model

// ClassMetadata is what the class metadata provider knows about a class.
type ClassMetadata struct {
	Supertypes  []string
	Annotations []string
}

// Hierarchy maps class names to their direct supertypes, interfaces and
// annotations. It may be incomplete or even cyclic.
type Hierarchy map[string]ClassMetadata

// AddClass records the metadata carried by a class, merging with any entry
// already present.
func (h Hierarchy) AddClass(c *ClassData) {
	h.Add(c.Name, ClassMetadata{Supertypes: c.Supertypes, Annotations: c.Annotations})
}

// Add merges md into the entry for name.
func (h Hierarchy) Add(name string, md ClassMetadata) {
	existing, ok := h[name]
	if !ok {
		h[name] = ClassMetadata{
			Supertypes:  append([]string(nil), md.Supertypes...),
			Annotations: append([]string(nil), md.Annotations...),
		}

		return
	}

	existing.Supertypes = unionStrings(existing.Supertypes, md.Supertypes)
	existing.Annotations = unionStrings(existing.Annotations, md.Annotations)
	h[name] = existing
}

// Merge folds every entry of o into h.
func (h Hierarchy) Merge(o Hierarchy) {
	for name, md := range o {
		h.Add(name, md)
	}
}
