// Package chart builds bar and XY charts on top of the layout engine.
//
// A chart is constructed from a document sink, a configuration, and
// data; construction validates the data shape, derives any absent axis
// ranges, and computes the full layout eagerly. Render then emits the
// chart's procedure sets and drawing statements into the document. A
// construction failure therefore never leaves partial output behind.
//
// Multiple charts may share one document: procedure registration on the
// sink is idempotent.
package chart
