package ui

import "time"

// Pane sizing.
const (
	// LayoutWideWidth is the width from which the preview sits beside the
	// card list instead of covering it.
	LayoutWideWidth = 120

	// LayoutMinListWidth keeps the card list readable on narrow terminals.
	LayoutMinListWidth = 36

	// chromeHeight is the header plus command bar plus toast line.
	chromeHeight = 3

	// cardHeight is the number of rows one card takes in the list.
	cardHeight = 3
)

// Timing constants.
const (
	// DefaultCopyTimeout bounds a clipboard write.
	DefaultCopyTimeout = 2 * time.Second
)
