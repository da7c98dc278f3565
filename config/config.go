// SPDX-License-Identifier: MIT

// Package config loads dimer parameter sets from layered sources.
//
// Precedence (highest to lowest): explicitly set flags > environment
// variables (OQS_ prefix) > YAML parameter file > built-in defaults.
// The defaults reproduce the square-drive reference case.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/oqs/dimer"
)

// DefaultEnvPrefix is stripped from environment variable names:
// OQS_NUM_PARTICLES -> num_particles.
const DefaultEnvPrefix = "OQS_"

// Default parameter values.
const (
	DefaultNumParticles = 10
	DefaultE            = 0.0
	DefaultU            = 0.5
	DefaultJ            = 1.0
	DefaultDrvType      = int(dimer.DriveSquare)
	DefaultDrvAmpl      = 3.4
	DefaultDrvFreq      = 1.0
	DefaultDrvPhas      = 0.0
	DefaultDissType     = int(dimer.DissipationPhaseLocking)
	DefaultDissGamma    = 0.1
)

// Option customizes Load.
type Option func(*loader)

type loader struct {
	logger    *slog.Logger
	envPrefix string
}

// WithLogger routes load diagnostics to l. The default discards them.
func WithLogger(l *slog.Logger) Option {
	return func(ld *loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithEnvPrefix overrides DefaultEnvPrefix. An empty prefix disables the
// environment layer.
func WithEnvPrefix(prefix string) Option {
	return func(ld *loader) { ld.envPrefix = prefix }
}

// Defaults returns the default layer keyed by wire name.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"num_particles": DefaultNumParticles,
		"e":             DefaultE,
		"u":             DefaultU,
		"j":             DefaultJ,
		"drv_type":      DefaultDrvType,
		"drv_ampl":      DefaultDrvAmpl,
		"drv_freq":      DefaultDrvFreq,
		"drv_phas":      DefaultDrvPhas,
		"diss_type":     DefaultDissType,
		"diss_gamma":    DefaultDissGamma,
	}
}

// RegisterFlags declares one kebab-case flag per parameter on fs
// (--num-particles, --drv-freq, ...). Only flags the user actually sets
// override other layers.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("num-particles", DefaultNumParticles, "total number of bosons N")
	fs.Float64("e", DefaultE, "on-site energy asymmetry E")
	fs.Float64("u", DefaultU, "on-site interaction U")
	fs.Float64("j", DefaultJ, "hopping amplitude J")
	fs.Int("drv-type", DefaultDrvType, "drive waveform: 0 harmonic, 1 square")
	fs.Float64("drv-ampl", DefaultDrvAmpl, "drive amplitude")
	fs.Float64("drv-freq", DefaultDrvFreq, "drive angular frequency")
	fs.Float64("drv-phas", DefaultDrvPhas, "drive phase (harmonic only)")
	fs.Int("diss-type", DefaultDissType, "dissipation: 0 dephasing, 1 phase-locking")
	fs.Float64("diss-gamma", DefaultDissGamma, "dissipation rate passed to the solver")
}

// Load merges defaults, the YAML file at path (skipped when empty), the
// environment and the changed flags of fs (skipped when nil), then
// validates the result.
func Load(path string, fs *pflag.FlagSet, opts ...Option) (dimer.Params, error) {
	ld := loader{
		logger:    slog.New(slog.DiscardHandler),
		envPrefix: DefaultEnvPrefix,
	}
	for _, o := range opts {
		o(&ld)
	}
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return dimer.Params{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Parameter file
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return dimer.Params{}, fmt.Errorf("error reading parameter file %s: %w", path, err)
		}
		ld.logger.Debug("loaded parameter file", "path", path)
	}

	// 3. Environment: OQS_DRV_FREQ -> drv_freq
	if ld.envPrefix != "" {
		prefix := ld.envPrefix
		if err := k.Load(env.Provider(prefix, ".", func(s string) string {
			return strings.ToLower(strings.TrimPrefix(s, prefix))
		}), nil); err != nil {
			return dimer.Params{}, fmt.Errorf("failed to load env vars: %w", err)
		}
	}

	// 4. Flags, only those explicitly set
	if fs != nil {
		if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(fs, f)
		}), nil); err != nil {
			return dimer.Params{}, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var p dimer.Params
	if err := k.Unmarshal("", &p); err != nil {
		return dimer.Params{}, fmt.Errorf("unable to decode parameters: %w", err)
	}
	if err := p.Validate(); err != nil {
		return dimer.Params{}, fmt.Errorf("invalid parameters: %w", err)
	}
	ld.logger.Debug("parameters resolved",
		"num_particles", p.NumParticles,
		"drv_type", p.DrvType.String(),
		"diss_type", p.DissType.String(),
	)

	return p, nil
}
