package sand

import (
	"strconv"
	"strings"
)

// Params holds tunable movement behavior for the sandbox world.
type Params struct {
	// DriftSpan is the maximum lateral offset, in cells, drawn per drift
	// attempt. The draw is uniform over [-DriftSpan, DriftSpan], so zero is
	// a legal outcome of a successful roll.
	DriftSpan int
	// DiagonalChance is the percentage likelihood that a drift candidate
	// also shifts one row downward.
	DiagonalChance int
}

// Config controls the sandbox world dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  320,
		Height: 240,
		Seed:   1337,
		Params: Params{
			DriftSpan:      2,
			DiagonalChance: 10,
		},
	}
}

// FromString parses comma-separated key=value pairs, e.g.
// "drift_span=3,diagonal_chance=25", and applies them over the defaults.
// Malformed pairs are skipped.
func FromString(s string) Config {
	if s == "" {
		return DefaultConfig()
	}
	kv := map[string]string{}
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if !ok || k == "" {
			continue
		}
		kv[k] = v
	}
	return FromMap(kv)
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["drift_span"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.DriftSpan = parsed
		}
	}
	if v, ok := cfg["diagonal_chance"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 100 {
			c.Params.DiagonalChance = parsed
		}
	}
	return c
}
