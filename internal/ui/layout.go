package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the minimum width to show secondary columns.
	LayoutWideWidth = 140
)

// chromeHeight is the number of rows taken by the header, tab bar and footer.
const chromeHeight = 3

// updateBuffer bounds the feed message queue between subscriptions and the program.
const updateBuffer = 64
