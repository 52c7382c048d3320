// Package plan computes slideshow timelines: given an audio duration and an
// ordered photo list, it produces clip placements that exactly tile the audio,
// with crossfade overlaps and optional intro/outro title segments.
//
// Build is a pure function of its inputs, which keeps the timing math
// directly unit-testable; file discovery, probing, and serialization live in
// their own packages.
package plan
