package adapter

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/covrig/internal/model"
)

// Environment variables overriding the batch configuration.
const (
	EnvThreads    = "COVRIG_THREADS"
	EnvClassIndex = "COVRIG_CLASS_INDEX"
)

var (
	// ErrInvalidConfig is returned for a configuration that cannot describe a batch.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidBound is returned for a bound value that is not a decimal number.
	ErrInvalidBound = errors.New("invalid bound value")
)

// ConfigLoader reads batch configuration.
type ConfigLoader interface {
	Load(path m.Path) (m.Config, error)
}

// LocalConfigLoader reads YAML configuration from disk, expands report
// directories into capture files and applies environment overrides, loading
// a .env file from the working directory when present.
type LocalConfigLoader struct {
	getenv func(string) string
	finder CaptureFinder
}

// NewLocalConfigLoader constructs a LocalConfigLoader.
func NewLocalConfigLoader() *LocalConfigLoader {
	_ = godotenv.Load()

	return &LocalConfigLoader{getenv: os.Getenv, finder: NewLocalCaptureFinder()}
}

type configYAML struct {
	Threads    int           `yaml:"threads"`
	ClassIndex string        `yaml:"classIndex"`
	Reports    []string      `yaml:"reports"`
	Requests   []requestYAML `yaml:"requests"`
	Rules      []ruleYAML    `yaml:"rules"`
}

type requestYAML struct {
	Name                string    `yaml:"name"`
	Output              string    `yaml:"output"`
	CalculateUnloaded   bool      `yaml:"calculateUnloaded"`
	BranchCoverage      *bool     `yaml:"branchCoverage"`
	InstructionCoverage bool      `yaml:"instructionCoverage"`
	Filters             m.Filters `yaml:"filters"`
}

type ruleYAML struct {
	ID     *int        `yaml:"id"`
	Report string      `yaml:"report"`
	Target string      `yaml:"target"`
	Bounds []boundYAML `yaml:"bounds"`
}

type boundYAML struct {
	ID        *int   `yaml:"id"`
	Counter   string `yaml:"counter"`
	ValueType string `yaml:"valueType"`
	Min       string `yaml:"min"`
	Max       string `yaml:"max"`
}

// Load reads the configuration at path. Relative paths inside the file are
// resolved against the file's directory.
func (l *LocalConfigLoader) Load(path m.Path) (m.Config, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := ParseConfig(data, m.Path(filepath.Dir(string(path))))
	if err != nil {
		return m.Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if l.finder != nil {
		cfg.Reports, err = l.finder.Find(cfg.Reports)
		if err != nil {
			return m.Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	return l.applyEnv(cfg)
}

func (l *LocalConfigLoader) applyEnv(cfg m.Config) (m.Config, error) {
	if v := strings.TrimSpace(l.getenv(EnvThreads)); v != "" {
		threads, err := strconv.Atoi(v)
		if err != nil || threads <= 0 {
			return m.Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvThreads, v)
		}

		cfg.Threads = threads
	}

	if v := strings.TrimSpace(l.getenv(EnvClassIndex)); v != "" {
		cfg.ClassIndex = m.Path(v)
	}

	return cfg, nil
}

// ParseConfig decodes a YAML configuration. Relative paths are joined to
// base unless base is empty.
func ParseConfig(data []byte, base m.Path) (m.Config, error) {
	var doc configYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return m.Config{}, fmt.Errorf("parse: %w", err)
	}

	if doc.Threads < 0 {
		return m.Config{}, fmt.Errorf("%w: threads must not be negative", ErrInvalidConfig)
	}

	cfg := m.Config{
		Threads:    doc.Threads,
		ClassIndex: resolve(base, doc.ClassIndex),
	}

	for _, r := range doc.Reports {
		cfg.Reports = append(cfg.Reports, resolve(base, r))
	}

	outputs := make(map[m.Path]int, len(doc.Requests))

	for i, ry := range doc.Requests {
		output := resolve(base, ry.Output)
		if output != "" {
			key := m.Path(filepath.Clean(string(output)))
			if prev, ok := outputs[key]; ok {
				return m.Config{}, fmt.Errorf("%w: requests %d and %d both write %s", ErrInvalidConfig, prev, i, output)
			}

			outputs[key] = i
		}

		branch := true
		if ry.BranchCoverage != nil {
			branch = *ry.BranchCoverage
		}

		cfg.Requests = append(cfg.Requests, m.Request{
			Name:                ry.Name,
			Filters:             ry.Filters,
			Output:              output,
			CalculateUnloaded:   ry.CalculateUnloaded,
			BranchCoverage:      branch,
			InstructionCoverage: ry.InstructionCoverage,
		})
	}

	for i, ry := range doc.Rules {
		rule, err := ry.toRule(i, base)
		if err != nil {
			return m.Config{}, err
		}

		cfg.Rules = append(cfg.Rules, rule)
	}

	return cfg, nil
}

func (ry ruleYAML) toRule(index int, base m.Path) (m.Rule, error) {
	rule := m.Rule{ID: index, Report: resolve(base, ry.Report), Target: m.TargetAll}
	if ry.ID != nil {
		rule.ID = *ry.ID
	}

	if ry.Report == "" {
		return m.Rule{}, fmt.Errorf("rule %d: %w: missing report", rule.ID, ErrInvalidConfig)
	}

	if ry.Target != "" {
		target, err := m.ParseTarget(ry.Target)
		if err != nil {
			return m.Rule{}, fmt.Errorf("rule %d: %w", rule.ID, err)
		}

		rule.Target = target
	}

	for j, by := range ry.Bounds {
		bound, err := by.toBound(j)
		if err != nil {
			return m.Rule{}, fmt.Errorf("rule %d: %w", rule.ID, err)
		}

		rule.Bounds = append(rule.Bounds, bound)
	}

	return rule, nil
}

func (by boundYAML) toBound(index int) (m.Bound, error) {
	bound := m.Bound{ID: index}
	if by.ID != nil {
		bound.ID = *by.ID
	}

	counter, err := m.ParseCounter(by.Counter)
	if err != nil {
		return m.Bound{}, fmt.Errorf("bound %d: %w", bound.ID, err)
	}

	valueType, err := m.ParseValueType(by.ValueType)
	if err != nil {
		return m.Bound{}, fmt.Errorf("bound %d: %w", bound.ID, err)
	}

	bound.Counter = counter
	bound.ValueType = valueType

	if bound.Min, err = parseBoundValue(by.Min); err != nil {
		return m.Bound{}, fmt.Errorf("bound %d min: %w", bound.ID, err)
	}

	if bound.Max, err = parseBoundValue(by.Max); err != nil {
		return m.Bound{}, fmt.Errorf("bound %d max: %w", bound.ID, err)
	}

	return bound, nil
}

func parseBoundValue(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrInvalidBound, s)
	}

	return v, nil
}

// resolve expands a leading "~" to the home directory and joins other
// relative paths to base.
func resolve(base m.Path, p string) m.Path {
	if hasHomePrefix(p) {
		if expanded, err := expandHome(p); err == nil {
			return m.Path(expanded)
		}

		return m.Path(p)
	}

	if p == "" || base == "" || filepath.IsAbs(p) {
		return m.Path(p)
	}

	return m.Path(filepath.Join(string(base), p))
}
