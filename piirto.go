// Package piirto contains the data model and the sample editing operations of
// the piirto waveform editor: tracks made of clips of raw samples, the mapping
// between sample values and screen coordinates, and the pencil tool math
// (interpolated writes, smoothing, resolution gating). The package has no
// user interface and performs no file I/O; the editor package builds the
// interactive application on top of it.
package piirto

import _ "embed"

//go:embed LICENSE
var License string
