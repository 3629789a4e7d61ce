// Package pkg provides the core libraries for psgraph chart generation.
//
// # Overview
//
// psgraph turns tabular data into PostScript charts drawn on virtual
// graph paper. The pkg directory is organized around the rendering
// pipeline:
//
//	Data (CSV) + Configuration
//	         ↓
//	    [scale] package (nice-number axis ranges and subdivisions)
//	         ↓
//	    [paper] package (page layout and coordinate transforms)
//	         ↓
//	    [chart] package (bar and XY chart builders)
//	         ↓
//	    [ps] package (PostScript document sink)
//
// # Quick Start
//
// Render a bar chart into a PostScript document:
//
//	import (
//	    "github.com/madsen/postscript-graph/pkg/chart"
//	    "github.com/madsen/postscript-graph/pkg/ps"
//	)
//
//	doc, _ := ps.New(ps.Options{Paper: "A4"})
//	labels := []string{"Jan", "Feb", "Mar"}
//	series := []chart.BarSeries{{Name: "widgets", Values: []float64{3, 5, 4}}}
//	b, _ := chart.NewBar(doc, chart.Config{}, labels, series, nil)
//	_ = b.Render()
//	_ = doc.WriteFile("chart.ps")
//
// # Main Packages
//
// [scale] - Axis range calculation. Rounds data bounds outward to
// "nice" limits, subdivides the axis into marks, and generates label
// sequences.
//
// [paper] - The layout engine. Partitions a page into heading, axis
// strips, key, and plot areas, and builds logical-to-physical
// coordinate transforms.
//
// [ps] - The PostScript sink. Accumulates drawing statements and
// procedure sets, and serializes DSC-conforming documents or EPS files.
//
// [style] - Style cycling. Hands each data series distinguishable
// colors, dash patterns, and point shapes.
//
// [chart] - Chart builders tying the layers together, plus CSV
// ingestion.
//
// [cache] - Artifact caching for the CLI and the render server, with
// file and Redis backends.
//
// [observability] - Hook registry for metrics without backend
// dependencies.
//
// [errors] - Structured error codes shared across the library.
//
// [scale]: https://pkg.go.dev/github.com/madsen/postscript-graph/pkg/scale
// [paper]: https://pkg.go.dev/github.com/madsen/postscript-graph/pkg/paper
// [ps]: https://pkg.go.dev/github.com/madsen/postscript-graph/pkg/ps
// [style]: https://pkg.go.dev/github.com/madsen/postscript-graph/pkg/style
// [chart]: https://pkg.go.dev/github.com/madsen/postscript-graph/pkg/chart
// [cache]: https://pkg.go.dev/github.com/madsen/postscript-graph/pkg/cache
// [observability]: https://pkg.go.dev/github.com/madsen/postscript-graph/pkg/observability
// [errors]: https://pkg.go.dev/github.com/madsen/postscript-graph/pkg/errors
package pkg
