package chart

import (
	"github.com/madsen/postscript-graph/pkg/errors"
	"github.com/madsen/postscript-graph/pkg/paper"
	"github.com/madsen/postscript-graph/pkg/ps"
	"github.com/madsen/postscript-graph/pkg/style"
)

// barInset is the fraction of a bar slot left clear on each side so
// adjacent slots read as separate groups.
const barInset = 0.08

// Bar is a vertical bar chart: one categorical slot per row label,
// grouped bars within a slot when multiple series are present. Layout
// is computed entirely at construction; Render only emits.
type Bar struct {
	cfg    Config
	doc    *ps.Document
	paper  *paper.Paper
	labels []string
	series []BarSeries
	styles []style.Record
}

// NewBar validates the data shape, derives the y range when absent, and
// computes the full layout. The x axis is always categorical with
// rotated, slot-centered labels.
func NewBar(doc *ps.Document, cfg Config, labels []string, series []BarSeries, seq *style.Sequence) (*Bar, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeMissingSink, "no document sink available")
	}
	if len(series) == 0 {
		return nil, errors.New(errors.ErrCodeMissingData, "bar chart needs at least one series")
	}
	for _, s := range series {
		if len(s.Values) != len(labels) {
			return nil, errors.New(errors.ErrCodeBadData,
				"series %q has %d values for %d labels", s.Name, len(s.Values), len(labels))
		}
	}

	cfg.X.Labels = labels
	cfg.X.Rotate = true
	cfg.X.Center = true

	if cfg.Y.Low == 0 && cfg.Y.High == 0 {
		min, max := dataBounds(series)
		cfg.Y.Low, cfg.Y.High = autoRange(min, max)
	}
	if cfg.Page.Bound == (ps.Box{}) {
		cfg.Page.Bound = doc.PageBox()
	}
	if seq == nil {
		seq = style.NewSequence()
	}

	p, err := paper.New(paper.Options{Page: cfg.Page, X: cfg.X, Y: cfg.Y})
	if err != nil {
		return nil, err
	}

	styles := make([]style.Record, len(series))
	for i := range series {
		styles[i] = seq.Next(cfg.Style)
	}

	return &Bar{
		cfg:    cfg,
		doc:    doc,
		paper:  p,
		labels: labels,
		series: series,
		styles: styles,
	}, nil
}

func dataBounds(series []BarSeries) (float64, float64) {
	min, max := series[0].Values[0], series[0].Values[0]
	for _, s := range series {
		for _, v := range s.Values {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

// Paper exposes the computed layout, mainly for tests and callers that
// want to annotate the chart.
func (b *Bar) Paper() *paper.Paper { return b.paper }

// Render emits the graph paper, the bars, and the key into the
// document.
func (b *Bar) Render() error {
	e, err := ps.NewEmitter(b.doc)
	if err != nil {
		return err
	}
	bg := b.cfg.background()

	drawFrame(e, b.paper, &b.cfg)

	e.Comment("bars")
	n := float64(len(b.series))
	for si, s := range b.series {
		st := b.styles[si]
		fill := st.Bar.Fill.Resolve(bg)
		edge := st.Bar.Edge.Resolve(bg)

		for i, v := range s.Values {
			slot, err := b.paper.VerticalBarArea(i, v)
			if err != nil {
				return err
			}
			inset := slot.Width() * barInset
			share := (slot.Width() - 2*inset) / n
			bar := ps.Box{
				Left:   slot.Left + inset + float64(si)*share,
				Bottom: slot.Bottom,
				Right:  slot.Left + inset + float64(si+1)*share,
				Top:    slot.Top,
			}
			e.SetColor(fill)
			e.Rect(bar, true)
			e.SetColor(edge)
			e.SetLineWidth(st.Bar.EdgeWidth)
			e.Rect(bar, false)
		}
	}

	return drawKey(e, b.paper, bg, keyEntries(b.series, b.styles))
}

func keyEntries(series []BarSeries, styles []style.Record) []keyEntry {
	entries := make([]keyEntry, len(series))
	for i, s := range series {
		entries[i] = keyEntry{label: s.Name, style: styles[i], bar: true}
	}
	return entries
}
