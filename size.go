// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import (
	"os"

	"golang.org/x/term"
)

// Fallback geometry for a non-terminal stdout, derived from the classic
// 80x24 screen the same way TerminalSize shapes a real one.
const (
	fallbackHeight = 20
	fallbackWidth  = 75
)

// TerminalSize returns a box geometry filling most of the controlling
// terminal: the screen size less a margin row and column, rounded down
// to a multiple of five so stacked dialogs line up.
func TerminalSize() (height, width int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackHeight, fallbackWidth
	}
	return shrinkToGrid(h), shrinkToGrid(w)
}

func shrinkToGrid(cells int) int {
	cells -= 2
	cells -= cells % 5
	if cells < 5 {
		return 5
	}
	return cells
}
