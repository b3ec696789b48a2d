// Package runcfg loads the optional TOML run-configuration file accepted by
// the -c/--config flag (SPEC_FULL.md §6.3): surrounding concerns spec.md §5
// permits an implementation to support without mandating, namely a step
// ceiling and whether verbose banners colorize accept/reject.
//
// Grounded on the teacher's use of github.com/BurntSushi/toml in
// internal/tqw/tqw.go to decode world-file headers into a plain struct.
package runcfg

import "github.com/BurntSushi/toml"

// Config is the [run] table of a run-configuration file.
type Config struct {
	Run struct {
		// StepCeiling bounds the number of Step calls a single run will
		// make before it is aborted as non-terminating. Zero means
		// unlimited, spec.md's default.
		StepCeiling int `toml:"step_ceiling"`

		// Color colorizes the accept/reject verdict in verbose banners.
		Color bool `toml:"color"`
	} `toml:"run"`
}

// Default returns the in-code defaults used when no -c flag is given:
// unlimited steps, no color, matching spec.md's unmodified behavior.
func Default() Config {
	return Config{}
}

// Load decodes a TOML run-configuration file. The file is read once at
// startup; it is never consulted again during the step loop.
func Load(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
