// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sink

import (
	"os"
	"runtime"
)

// HasDisplay reports whether windowed backends can open a window.
// On Linux and the BSDs that requires an X11 or Wayland display.
func HasDisplay() bool {
	switch runtime.GOOS {
	case "windows", "darwin", "ios", "android", "js":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
