package style

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type fontFile struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
}

type styleFile struct {
	Background      *string   `yaml:"background"`
	Plane           *string   `yaml:"plane"`
	Grid            *string   `yaml:"grid"`
	Axis            *string   `yaml:"axis"`
	Label           *string   `yaml:"label"`
	TickLabel       *string   `yaml:"tickLabel"`
	LegendFill      *string   `yaml:"legendFill"`
	LegendBorder    *string   `yaml:"legendBorder"`
	LegendText      *string   `yaml:"legendText"`
	OverlayFill     *string   `yaml:"overlayFill"`
	OverlayText     *string   `yaml:"overlayText"`
	LabelFont       *fontFile `yaml:"labelFont"`
	TicksFont       *fontFile `yaml:"ticksFont"`
	LegendFont      *fontFile `yaml:"legendFont"`
	OverlayFont     *fontFile `yaml:"overlayFont"`
	TickTarget      *int      `yaml:"tickTarget"`
	ScreenSpaceLine *bool     `yaml:"screenSpaceLines"`
}

// Load reads a YAML style file on top of Default
func Load(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("failed to read style file: %w", err)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Style{}, fmt.Errorf("failed to parse style file %s: %w", path, err)
	}
	return s, nil
}

// Decode reads a YAML style document on top of Default. Unknown keys are rejected.
func Decode(r io.Reader) (Style, error) {
	s := Default()

	var f styleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return Style{}, err
	}

	colors := []struct {
		src *string
		dst *color.RGBA
	}{
		{f.Background, &s.Background},
		{f.Plane, &s.PlaneColor},
		{f.Grid, &s.GridColor},
		{f.Axis, &s.AxisColor},
		{f.Label, &s.LabelColor},
		{f.TickLabel, &s.TickLabelColor},
		{f.LegendFill, &s.LegendFill},
		{f.LegendBorder, &s.LegendBorder},
		{f.LegendText, &s.LegendTextColor},
		{f.OverlayFill, &s.OverlayFill},
		{f.OverlayText, &s.OverlayText},
	}
	for _, c := range colors {
		if c.src == nil {
			continue
		}
		parsed, err := ParseColor(*c.src)
		if err != nil {
			return Style{}, err
		}
		*c.dst = parsed
	}

	fonts := []struct {
		src *fontFile
		dst *Font
	}{
		{f.LabelFont, &s.LabelFont},
		{f.TicksFont, &s.TicksFont},
		{f.LegendFont, &s.LegendFont},
		{f.OverlayFont, &s.OverlayFont},
	}
	for _, ff := range fonts {
		if ff.src == nil {
			continue
		}
		if ff.src.Family != "" {
			ff.dst.Family = ff.src.Family
		}
		if ff.src.Size < 0 {
			return Style{}, fmt.Errorf("invalid font size %v", ff.src.Size)
		}
		if ff.src.Size > 0 {
			ff.dst.Size = ff.src.Size
		}
	}

	if f.TickTarget != nil {
		if *f.TickTarget <= 0 {
			return Style{}, fmt.Errorf("tickTarget must be positive, got %d", *f.TickTarget)
		}
		s.TickTarget = *f.TickTarget
	}
	if f.ScreenSpaceLine != nil {
		s.ScreenSpaceLines = *f.ScreenSpaceLine
	}
	return s, nil
}
