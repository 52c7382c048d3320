// Package render translates slideshow plans into ffmpeg invocations for the
// direct rendering path: looped image inputs joined by xfade/concat chains
// over the audio track. The plan remains the canonical timeline; this package
// only interprets it for the encoder.
package render
