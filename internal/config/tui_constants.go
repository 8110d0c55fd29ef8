package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 50

	// ProgressBarWidth is the default width of the interval progress bar.
	ProgressBarWidth = 40

	// MinReadoutWidth is the minimum width reserved for the time readout.
	MinReadoutWidth = 12
)

// Display limits.
const (
	// MaxVisibleSessions limits history rows shown before scrolling.
	MaxVisibleSessions = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)
