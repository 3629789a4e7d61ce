package chart

import (
	"strings"
	"testing"

	"github.com/madsen/postscript-graph/pkg/errors"
)

func TestReadBarCSV(t *testing.T) {
	t.Run("with header", func(t *testing.T) {
		in := "label,widgets,gadgets\nJan,3,5\nFeb,4,6\n"
		labels, series, err := ReadBarCSV(strings.NewReader(in), true)
		if err != nil {
			t.Fatalf("ReadBarCSV: %v", err)
		}
		if got, want := len(labels), 2; got != want {
			t.Fatalf("labels = %d, want %d", got, want)
		}
		if labels[0] != "Jan" || labels[1] != "Feb" {
			t.Errorf("labels = %v", labels)
		}
		if len(series) != 2 {
			t.Fatalf("series = %d, want 2", len(series))
		}
		if series[0].Name != "widgets" || series[1].Name != "gadgets" {
			t.Errorf("series names = %q, %q", series[0].Name, series[1].Name)
		}
		if series[1].Values[1] != 6 {
			t.Errorf("series[1].Values[1] = %g, want 6", series[1].Values[1])
		}
	})

	t.Run("default series names", func(t *testing.T) {
		_, series, err := ReadBarCSV(strings.NewReader("Jan,3\nFeb,4\n"), false)
		if err != nil {
			t.Fatalf("ReadBarCSV: %v", err)
		}
		if series[0].Name != "series 1" {
			t.Errorf("name = %q, want %q", series[0].Name, "series 1")
		}
	})

	t.Run("errors", func(t *testing.T) {
		cases := []struct {
			name   string
			in     string
			header bool
			code   errors.Code
		}{
			{"empty input", "", false, errors.ErrCodeMissingData},
			{"header only", "label,a\n", true, errors.ErrCodeMissingData},
			{"no value column", "Jan\nFeb\n", false, errors.ErrCodeBadData},
			{"ragged rows", "Jan,3\nFeb,4,5\n", false, errors.ErrCodeBadData},
			{"non-numeric cell", "Jan,three\n", false, errors.ErrCodeBadData},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, _, err := ReadBarCSV(strings.NewReader(tc.in), tc.header)
				if err == nil {
					t.Fatal("expected error")
				}
				if got := errors.GetCode(err); got != tc.code {
					t.Errorf("code = %v, want %v", got, tc.code)
				}
			})
		}
	})
}

func TestReadXYCSV(t *testing.T) {
	t.Run("two series", func(t *testing.T) {
		in := "x,sin,cos\n0,0,1\n1,0.84,0.54\n"
		series, err := ReadXYCSV(strings.NewReader(in), true)
		if err != nil {
			t.Fatalf("ReadXYCSV: %v", err)
		}
		if len(series) != 2 {
			t.Fatalf("series = %d, want 2", len(series))
		}
		if series[0].Name != "sin" {
			t.Errorf("name = %q, want %q", series[0].Name, "sin")
		}
		want := Point{X: 1, Y: 0.54}
		if series[1].Points[1] != want {
			t.Errorf("point = %+v, want %+v", series[1].Points[1], want)
		}
	})

	t.Run("non-numeric x", func(t *testing.T) {
		_, err := ReadXYCSV(strings.NewReader("abc,1\n"), false)
		if got := errors.GetCode(err); got != errors.ErrCodeBadData {
			t.Errorf("code = %v, want %v", got, errors.ErrCodeBadData)
		}
	})

	t.Run("missing y column", func(t *testing.T) {
		_, err := ReadXYCSV(strings.NewReader("1\n2\n"), false)
		if got := errors.GetCode(err); got != errors.ErrCodeBadData {
			t.Errorf("code = %v, want %v", got, errors.ErrCodeBadData)
		}
	})
}
