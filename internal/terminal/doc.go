// Package terminal provides the output value of every projection: a list of
// positioned, styled text fragments plus cursor markers.
//
// A Terminal is immutable. Translate, Clip, Merge, Style and the other
// operations return new values. A Terminal also carries a Meta back-reference
// to the value it was projected from, so input events can be routed back to
// their source without the Terminal knowing its producer's type.
//
// Rendering contract: fragments are meant to be drawn in sequence order.
// When two fragments cover the same cell, the later one wins only if the
// renderer honours that order; the data model itself does not resolve
// overlaps.
//
// Colors are symbolic names. Resolving them to real colors is the renderer's
// job (see internal/renderer).
package terminal
