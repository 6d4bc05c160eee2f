package parameter

// Layout & Margins
const (
	// TopMargin for title line
	TopMargin = 1

	// BottomMargin for status bar
	BottomMargin = 1

	// PanelWidth is the width of menu, decision and feedback panels
	PanelWidth = 44
)

// Glyphs
const (
	GlyphBall      = 'o'
	GlyphPath      = '·'
	GlyphWaypoint  = '+'
	GlyphDecision  = '◆'
	GlyphHalfway   = '-'
	GlyphTouchline = '│'
	GlyphTryline   = '═'
)

// Status Bar state labels (padded)
const (
	StateTextMenu     = "  MENU  "
	StateTextDesigner = " DESIGN "
	StateTextPlaying  = "  PLAY  "
	StateTextDecision = " DECIDE "
	StateTextFeedback = "  ....  "
)
