// Package scale computes axis scales for chart layout.
//
// This is the core of the layout engine: given a logical data range and a
// physical extent on the page, it picks a human-friendly ("nice") scale,
// nests subdivision marks down to a minimum physical spacing, and decides
// which mark depths receive text labels.
//
// # Components
//
// Three self-contained computations, no I/O:
//
//   - Calculate: numeric axes. Searches a fixed candidate list of nice
//     step multipliers, rounds the range outward, subdivides, and
//     generates the label sequence.
//   - Categorical: string-labelled axes. One mark per label plus a
//     trailing fencepost, no scale search.
//   - NewTransform: the affine logical↔physical mapping derived from a
//     resolved range and a physical interval.
//
// All invalid inputs (degenerate range, non-positive extent or gap) are
// fatal configuration errors: layout is deterministic arithmetic and is
// computed eagerly, so nothing degrades gracefully here.
package scale
