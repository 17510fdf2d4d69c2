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

// Package cli implements the slanter command line tool.
//
// All commands operate on a glyph set, which is either read from a JSON
// file given by --input or taken from the built-in Go Regular sample font
// (--sample).  Transformation parameters can be given on the command line
// or in a TOML configuration file (--config).  Command line flags take
// precedence over the configuration file.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/slant"
	"seehuhn.de/go/slant/internal/buildinfo"
	"seehuhn.de/go/slant/internal/glyphjson"
	"seehuhn.de/go/slant/internal/profile"
	"seehuhn.de/go/slant/internal/testfont"
)

// ErrNoInput is returned if neither an input file nor the sample font was
// selected.
var ErrNoInput = errors.New("no input: use --input or --sample")

// app holds the state shared between the commands.
type app struct {
	configFile string
	input      string
	sample     bool
	output     string
	verbose    bool
	cpuprofile string
	memprofile string

	// transformation flags, only used if set on the command line
	skew      float64
	rotation  float64
	keep      bool
	reproject bool
	workers   int

	cfg      Config
	stopProf func() error
	stderr   io.Writer
}

// NewRootCommand returns the root command of the slanter tool.
// Log messages are written to stderr.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	root := &cobra.Command{
		Use:               "slanter",
		Short:             "Skew and rotate glyph outlines",
		Version:           buildinfo.Version(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.stopProf == nil {
				return nil
			}
			return a.stopProf()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "read settings from a TOML `file`")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&a.input, "input", "i", "", "read the glyph set from a JSON `file`")
	flags.BoolVar(&a.sample, "sample", false, "use the built-in Go Regular glyph set")
	flags.StringVarP(&a.output, "output", "o", "", "write results to `file` instead of stdout")
	flags.StringVar(&a.cpuprofile, "cpuprofile", "", "write CPU profile to `file`")
	flags.StringVar(&a.memprofile, "memprofile", "", "write memory profile to `file`")

	root.AddCommand(a.newShowCmd())
	root.AddCommand(a.newPreviewCmd())
	root.AddCommand(a.newApplyCmd())
	root.AddCommand(a.newExportCmd())

	return root
}

// Execute runs the slanter tool with the command line arguments of the
// current process.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := log.InfoLevel
	if a.verbose || cfg.Verbose {
		level = log.DebugLevel
	}
	logger := newLogger(a.stderr, level)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	stop, err := profile.Start(a.cpuprofile, a.memprofile)
	if err != nil {
		return err
	}
	a.stopProf = stop
	return nil
}

// addParamFlags adds the transformation flags to cmd.  If components is
// true, the flags controlling component handling are included.
func (a *app) addParamFlags(cmd *cobra.Command, components bool) {
	flags := cmd.Flags()
	flags.Float64VarP(&a.skew, "skew", "s", slant.DefaultSkew, "skew angle in degrees")
	flags.Float64VarP(&a.rotation, "rotation", "r", 0, "rotation angle in degrees, clockwise")
	if components {
		flags.BoolVar(&a.keep, "keep-components", false, "do not decompose components")
		flags.BoolVar(&a.reproject, "reproject-components", false, "move component offsets relative to their base glyphs")
	}
}

// params combines the configuration file with the command line flags.
// Angles are limited to the range allowed in the interactive tool.
func (a *app) params(cmd *cobra.Command) (slant.Params, error) {
	p := a.cfg.Params()
	flags := cmd.Flags()
	if flags.Changed("skew") {
		p.Skew = a.skew
	}
	if flags.Changed("rotation") {
		p.Rotation = a.rotation
	}
	if flags.Changed("keep-components") {
		p.KeepComponents = a.keep
	}
	if flags.Changed("reproject-components") {
		p.ReprojectComponents = a.reproject
	}
	if err := p.Validate(); err != nil {
		return p, err
	}

	q, clamped := p.Clamp(slant.MaxAngle)
	if clamped {
		loggerFromContext(cmd.Context()).Warn("angle out of range",
			"limit", slant.MaxAngle, "requested", p, "using", q)
	}
	return q, nil
}

// loadFont reads the glyph set selected on the command line.
func (a *app) loadFont(cmd *cobra.Command) (*slant.Font, error) {
	logger := loggerFromContext(cmd.Context())
	switch {
	case a.sample && a.input != "":
		return nil, errors.New("--input and --sample cannot be used together")
	case a.sample:
		logger.Debug("loading sample font")
		return testfont.GoRegular(), nil
	case a.input != "":
		fd, err := os.Open(a.input)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		f, err := glyphjson.Read(fd)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.input, err)
		}
		logger.Debug("loaded glyph set", "file", a.input, "glyphs", f.Len())
		return f, nil
	default:
		return nil, ErrNoInput
	}
}

// withOutput calls fn with the selected output stream.
func (a *app) withOutput(cmd *cobra.Command, fn func(w io.Writer) error) error {
	if a.output == "" {
		return fn(cmd.OutOrStdout())
	}

	fd, err := os.Create(a.output)
	if err != nil {
		return err
	}
	err = fn(fd)
	err = errors.Join(err, fd.Close())
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("output written", "file", a.output)
	return nil
}
