package dedalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config tunes engine behavior the spec leaves as implementation
// choices rather than semantics (spec.md §9's open questions), loaded
// from YAML the way the corpus's skill/agent configs are (spec §10.3).
type Config struct {
	// MaxFixpointIterations bounds the semi-naive loop per stratum.
	// Zero means unbounded (the spec's own algorithm has no bound;
	// this exists only as a safety valve against a misbehaving rule
	// set during development, not a documented engine limit).
	MaxFixpointIterations int `yaml:"max_fixpoint_iterations"`

	// KeepSentinelStratum selects the §4.6/§9 open-question behavior:
	// whether the full rule set is re-run as a final stratum after
	// the computed strata. Defaults to true.
	KeepSentinelStratum bool `yaml:"keep_sentinel_stratum"`

	// StripQuoteMarker selects the §4.1/§9 open-question behavior:
	// whether the internal quote marker on quoted string constants is
	// stripped before a term reaches an answer map. Defaults to true.
	StripQuoteMarker bool `yaml:"strip_quote_marker"`
}

// DefaultConfig returns the engine's default tuning.
func DefaultConfig() Config {
	return Config{
		MaxFixpointIterations: 0,
		KeepSentinelStratum:   true,
		StripQuoteMarker:      true,
	}
}

// LoadConfig reads a YAML document into a Config, starting from
// DefaultConfig so an input that only overrides a few fields still
// gets sane values for the rest.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("dedalog: reading config: %w", err)
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("dedalog: parsing config: %w", err)
	}
	return cfg, nil
}
