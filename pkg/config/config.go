// Package config loads the default field values the command line starts
// from. Values missing from the file keep their built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

var ErrInvalid = errors.New("config: invalid value")

type Trace struct {
	TempRise float64 `toml:"temp_rise"` // C
	Ounces   float64 `toml:"ounces"`    // copper weight, oz/ft^2
	Current  float64 `toml:"current"`   // A
	Length   float64 `toml:"length"`    // mm
}

type Via struct {
	TempRise float64 `toml:"temp_rise"` // C
	Current  float64 `toml:"current"`   // A
	Board    float64 `toml:"board"`     // mm
	Diameter float64 `toml:"diameter"`  // mm
	Wall     float64 `toml:"wall"`      // um
}

type LED struct {
	ForwardVoltage float64 `toml:"forward_voltage"` // V
	Current        float64 `toml:"current"`         // mA
	Series         int     `toml:"series"`
	Parallel       int     `toml:"parallel"`
}

type Defaults struct {
	Trace Trace `toml:"trace"`
	Via   Via   `toml:"via"`
	LED   LED   `toml:"led"`
}

func Default() Defaults {
	return Defaults{
		Trace: Trace{TempRise: 10, Ounces: 1, Current: 1, Length: 1},
		Via:   Via{TempRise: 10, Current: 1, Board: 1.6, Diameter: 0.3, Wall: 20},
		LED:   LED{ForwardVoltage: 2.0, Current: 10, Series: 1, Parallel: 1},
	}
}

// Path is the default location of the defaults file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "eecalc", "defaults.toml"), nil
}

// Load reads path over the built-in defaults. An empty path or a missing file
// yields the built-in defaults.
func Load(path string) (Defaults, error) {
	d := Default()
	if path == "" {
		return d, nil
	}

	md, err := toml.DecodeFile(path, &d)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("%w: unknown key %s in %s", ErrInvalid, undecoded[0], path)
	}
	if err := d.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func (d Defaults) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"trace.temp_rise", d.Trace.TempRise},
		{"trace.ounces", d.Trace.Ounces},
		{"via.board", d.Via.Board},
		{"via.diameter", d.Via.Diameter},
		{"via.wall", d.Via.Wall},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s = %g must be positive", ErrInvalid, p.name, p.value)
		}
	}
	if d.Trace.Current < 0 || d.Via.Current < 0 || d.LED.Current < 0 {
		return fmt.Errorf("%w: currents must not be negative", ErrInvalid)
	}
	if d.LED.Series < 1 || d.LED.Parallel < 1 {
		return fmt.Errorf("%w: led series %d and parallel %d must be at least 1", ErrInvalid, d.LED.Series, d.LED.Parallel)
	}
	return nil
}
