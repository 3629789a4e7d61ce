// Package ps is the document sink for generated PostScript.
//
// A Document accumulates textual drawing statements plus named reusable
// procedure sets, and serializes them with DSC (Document Structuring
// Convention) framing as either full PostScript or EPS. Procedure
// registration is idempotent: re-adding a name is a no-op, so multiple
// chart instances can share one output document and each register the
// procsets they need.
//
// The Emitter is a thin builder over a Document that turns resolved
// numeric and string parameters into drawing statements. It carries no
// layout knowledge: the layout engine stays unit-testable without any
// text output.
package ps
