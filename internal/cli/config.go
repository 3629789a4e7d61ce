package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/madsen/postscript-graph/pkg/chart"
	"github.com/madsen/postscript-graph/pkg/paper"
	"github.com/madsen/postscript-graph/pkg/ps"
	"github.com/madsen/postscript-graph/pkg/style"
)

// fileConfig is the TOML schema for chart configuration files. Every
// field is optional; zero values fall through to library defaults.
//
//	heading = "Monthly production"
//	paper = "A4"
//	landscape = true
//	color = true
//	key-width = 60
//
//	[x]
//	title = "Month"
//	rotate = true
//
//	[y]
//	title = "Widgets"
//	low = 0
//	high = 500
//	label-count = 11
type fileConfig struct {
	Heading   string  `toml:"heading"`
	Paper     string  `toml:"paper"`
	Landscape bool    `toml:"landscape"`
	EPS       bool    `toml:"eps"`
	Color     bool    `toml:"color"`
	KeyWidth  float64 `toml:"key-width"`

	Page struct {
		Margin  float64 `toml:"margin"`
		Spacing float64 `toml:"spacing"`
	} `toml:"page"`

	X fileAxis `toml:"x"`
	Y fileAxis `toml:"y"`

	Style struct {
		LineWidth float64 `toml:"line-width"`
		PointSize float64 `toml:"point-size"`
	} `toml:"style"`

	Chart struct {
		Lines  *bool `toml:"lines"`
		Points *bool `toml:"points"`
	} `toml:"chart"`

	Background struct {
		Grey *float64 `toml:"grey"`
		R    *float64 `toml:"r"`
		G    *float64 `toml:"g"`
		B    *float64 `toml:"b"`
	} `toml:"background"`
}

type fileAxis struct {
	Title      string  `toml:"title"`
	Low        float64 `toml:"low"`
	High       float64 `toml:"high"`
	LabelCount int     `toml:"label-count"`
	MinMarkGap float64 `toml:"min-mark-gap"`
	Font       string  `toml:"font"`
	FontSize   float64 `toml:"font-size"`
	Rotate     bool    `toml:"rotate"`
}

// loadConfig parses a TOML configuration file. An empty path returns a
// zero configuration.
func loadConfig(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// chartConfig converts the file schema into the library configuration.
func (fc fileConfig) chartConfig() chart.Config {
	cfg := chart.Config{
		Page: paper.Page{
			Margin:   fc.Page.Margin,
			Spacing:  fc.Page.Spacing,
			Heading:  fc.Heading,
			KeyWidth: fc.KeyWidth,
		},
		X:          axisConfig(fc.X),
		Y:          axisConfig(fc.Y),
		Style:      style.Options{UseColor: fc.Color, LineWidth: fc.Style.LineWidth, PointSize: fc.Style.PointSize},
		ShowLines:  fc.Chart.Lines,
		ShowPoints: fc.Chart.Points,
	}
	if fc.Background.Grey != nil {
		cfg.Background = ps.Grey(*fc.Background.Grey)
	} else if fc.Background.R != nil && fc.Background.G != nil && fc.Background.B != nil {
		cfg.Background = ps.RGB(*fc.Background.R, *fc.Background.G, *fc.Background.B)
	}
	return cfg
}

func axisConfig(fa fileAxis) paper.Axis {
	return paper.Axis{
		Low:        fa.Low,
		High:       fa.High,
		LabelCount: fa.LabelCount,
		MinMarkGap: fa.MinMarkGap,
		Title:      fa.Title,
		Font:       fa.Font,
		FontSize:   fa.FontSize,
		Rotate:     fa.Rotate,
	}
}

// docOptions converts the file schema into document options.
func (fc fileConfig) docOptions() ps.Options {
	return ps.Options{
		Paper:     fc.Paper,
		Landscape: fc.Landscape,
		EPS:       fc.EPS,
		Title:     fc.Heading,
	}
}
