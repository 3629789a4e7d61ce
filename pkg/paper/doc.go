// Package paper is the chart layout engine.
//
// A Paper is built in one call from a page bounding box plus per-axis
// and chart-wide options. Construction reserves the heading, axis, and
// key strips from the page, validates that a positive plot area
// remains, runs the scale computation for each axis, and derives the
// logical↔physical transforms. The result is read-only: there is no
// mutation API after New returns, so independent Papers may be built
// concurrently.
//
// All geometry queries (bar areas, point transforms, axis accessors)
// read the state computed at construction. Invalid or contradictory
// options are fatal configuration errors raised before any output can
// be emitted.
package paper
