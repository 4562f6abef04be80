package grid

// Junction identifies the glyph drawn at a lattice point of the grid.
type Junction int

const (
	JunctionNone Junction = iota
	JunctionTopLeft
	JunctionTopRight
	JunctionBottomLeft
	JunctionBottomRight
	JunctionTeeRight // ┣ vertical line with an arm to the right
	JunctionTeeLeft  // ┫
	JunctionTeeDown  // ┳ horizontal line with an arm downwards
	JunctionTeeUp    // ┻
	JunctionCross
	JunctionHorizontal
	JunctionVertical
)

// Thick box-drawing glyphs.
const (
	GlyphHorizontal  = "━"
	GlyphVertical    = "┃"
	GlyphTopLeft     = "┏"
	GlyphTopRight    = "┓"
	GlyphBottomLeft  = "┗"
	GlyphBottomRight = "┛"
	GlyphTeeRight    = "┣"
	GlyphTeeLeft     = "┫"
	GlyphTeeDown     = "┳"
	GlyphTeeUp       = "┻"
	GlyphCross       = "╋"
)

var junctionGlyphs = map[Junction]string{
	JunctionTopLeft:     GlyphTopLeft,
	JunctionTopRight:    GlyphTopRight,
	JunctionBottomLeft:  GlyphBottomLeft,
	JunctionBottomRight: GlyphBottomRight,
	JunctionTeeRight:    GlyphTeeRight,
	JunctionTeeLeft:     GlyphTeeLeft,
	JunctionTeeDown:     GlyphTeeDown,
	JunctionTeeUp:       GlyphTeeUp,
	JunctionCross:       GlyphCross,
	JunctionHorizontal:  GlyphHorizontal,
	JunctionVertical:    GlyphVertical,
}

// Glyph returns the thick box-drawing character for j, or a space for
// JunctionNone.
func (j Junction) Glyph() string {
	if g, ok := junctionGlyphs[j]; ok {
		return g
	}
	return " "
}

// IsTee reports whether j is one of the four T junctions.
func (j Junction) IsTee() bool {
	switch j {
	case JunctionTeeRight, JunctionTeeLeft, JunctionTeeDown, JunctionTeeUp:
		return true
	}
	return false
}

// IsCorner reports whether j is one of the four L corners.
func (j Junction) IsCorner() bool {
	switch j {
	case JunctionTopLeft, JunctionTopRight, JunctionBottomLeft, JunctionBottomRight:
		return true
	}
	return false
}

// arms is a bit set of the directions a line leaves a lattice point in.
type arms uint8

const (
	armUp arms = 1 << iota
	armDown
	armLeft
	armRight
)

var junctionByArms = map[arms]Junction{
	armRight | armDown:                   JunctionTopLeft,
	armLeft | armDown:                    JunctionTopRight,
	armRight | armUp:                     JunctionBottomLeft,
	armLeft | armUp:                      JunctionBottomRight,
	armUp | armDown | armRight:           JunctionTeeRight,
	armUp | armDown | armLeft:            JunctionTeeLeft,
	armLeft | armRight | armDown:         JunctionTeeDown,
	armLeft | armRight | armUp:           JunctionTeeUp,
	armUp | armDown | armLeft | armRight: JunctionCross,
	armLeft | armRight:                   JunctionHorizontal,
	armUp | armDown:                      JunctionVertical,
}

func junctionFor(a arms) Junction {
	return junctionByArms[a]
}
