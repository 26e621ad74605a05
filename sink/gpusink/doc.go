// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpusink presents frames in a gogpu window by uploading them to a
// GPU texture once per frame.
//
// gogpu owns the main loop, so the sink implements sink.Driver. The window
// renders continuously at the display refresh rate and the frame loop steps
// once per redraw. Build with the nogpu tag to leave the backend out.
//
//	import _ "github.com/gogpu/xorfill/sink/gpusink"
package gpusink
