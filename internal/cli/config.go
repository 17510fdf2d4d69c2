// seehuhn.de/go/slant - skew and rotate glyph outlines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/slant"
)

// Config holds the settings which can be given in a configuration file.
//
// Example:
//
//	skew = 12
//	rotation = -3
//	keep_components = true
//	reproject_components = true
//	workers = 4
type Config struct {
	Skew                float64 `toml:"skew"`
	Rotation            float64 `toml:"rotation"`
	KeepComponents      bool    `toml:"keep_components"`
	ReprojectComponents bool    `toml:"reproject_components"`
	Workers             int     `toml:"workers"`
	Verbose             bool    `toml:"verbose"`
}

func defaultConfig() Config {
	p := slant.DefaultParams()
	return Config{
		Skew:     p.Skew,
		Rotation: p.Rotation,
	}
}

// loadConfig reads the configuration file at path.  Settings missing from
// the file keep their default values.  If path is empty, the defaults are
// returned.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Workers < 0 {
		return cfg, fmt.Errorf("config %s: invalid number of workers %d", path, cfg.Workers)
	}
	return cfg, nil
}

// Params returns the transformation parameters described by cfg.
func (cfg Config) Params() slant.Params {
	return slant.Params{
		Skew:                cfg.Skew,
		Rotation:            cfg.Rotation,
		KeepComponents:      cfg.KeepComponents,
		ReprojectComponents: cfg.ReprojectComponents,
	}
}
