package tui

// Color constants for the studylog TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#10221B" // Dark green
	ColorBorder         = "#3A554B" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E8F2EC" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#AFC4B8" // Secondary text - subtle green-tinted grey
	ColorDisabledText  = "#6D8378" // Disabled/muted text
	ColorPlaceholder   = "#AFC4B8" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#10B981" // Accent elements, active borders, qualifying days
	ColorAccentBright = "#6EE7B7" // Highlights, current selection, today

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
)
