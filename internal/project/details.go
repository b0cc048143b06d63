// Package project reads animation project metadata: frame counts,
// playback rate and display colors.
package project

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DetailsFile is the conventional metadata filename inside a frame
// directory.
const DetailsFile = "details.yaml"

const (
	DefaultFPS        = 24
	DefaultForeground = "white"
	DefaultBackground = "black"
)

// Details is the metadata stored alongside a frame directory. All
// fields are optional so files written by older and newer tool
// versions keep loading.
type Details struct {
	Version         string  `yaml:"version,omitempty"`
	Frames          int     `yaml:"frames,omitempty"`
	Luminance       int     `yaml:"luminance,omitempty"`
	FontRatio       float64 `yaml:"font_ratio,omitempty"`
	Columns         int     `yaml:"columns,omitempty"`
	FPS             int     `yaml:"fps,omitempty"`
	Output          string  `yaml:"output,omitempty"`
	Audio           bool    `yaml:"audio,omitempty"`
	BackgroundColor string  `yaml:"background_color,omitempty"`
	Color           string  `yaml:"color,omitempty"`
}

// Load reads a details file from disk.
func Load(path string) (*Details, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses details file contents.
func Decode(data []byte) (*Details, error) {
	d := &Details{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Save writes a details file to disk.
func Save(path string, d *Details) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FrameRate returns the configured fps, or DefaultFPS when unset.
func (d *Details) FrameRate() int {
	if d.FPS > 0 {
		return d.FPS
	}
	return DefaultFPS
}

// FrameColors returns the display colors, falling back to white on
// black when fields are missing or invalid.
func (d *Details) FrameColors() Colors {
	fg := d.Color
	if fg == "" {
		fg = DefaultForeground
	}
	bg := d.BackgroundColor
	if bg == "" {
		bg = DefaultBackground
	}
	return ColorsFromStrings(fg, bg)
}
