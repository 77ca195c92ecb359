package metric

import "github.com/flowshape/syntaxdiagrams/pkg/diagram"

// Settings is the public, all-optional configuration record from
// spec.md §6. Zero-valued fields are replaced with named defaults by
// [NewVectorProfile] and [NewTextProfile]; use [DefaultSettings] to get
// a populated value to start from (e.g. to override a single field).
type Settings struct {
	// Shared.
	MaxWidth                      float64
	Reverse                       bool
	EndClass                      diagram.EndClass
	VerticalChoiceSeparation      float64
	VerticalChoiceSeparationOuter float64
	VerticalSeqSeparation         float64
	VerticalSeqSeparationOuter    float64
	HorizontalSeqSeparation       float64

	// Vector-only.
	Title               string
	Description         string
	ArcRadius           float64
	ArcMargin           float64
	ArrowStyle          diagram.ArrowStyle
	ArrowLength         float64
	ArrowCrossLength    float64
	TerminalHPadding    float64
	TerminalVPadding    float64
	TerminalRadius      float64
	NonTerminalHPadding float64
	NonTerminalVPadding float64
	NonTerminalRadius   float64
	CommentHPadding     float64
	CommentVPadding     float64
	CommentRadius       float64
	GroupVPadding       float64
	GroupHPadding       float64
	GroupVMargin        float64
	GroupHMargin        float64
	GroupRadius         float64
	GroupTextHOffset    float64
	GroupTextVOffset    float64
	CSSClass            string
	CSSStyle            string

	// Text-only: character-grid analogues of the vector-only spacings
	// above. Padding/radius fields are in whole cells.
	TextTerminalHPadding    float64
	TextNonTerminalHPadding float64
	TextCommentHPadding     float64
	TextGroupHPadding       float64
	TextGroupVPadding       float64
	TextGroupTextHOffset    float64
	TextGroupTextVOffset    float64

	// Injected capabilities; nil selects a profile-appropriate default.
	TextMeasure  TextMeasure
	HrefResolver HrefResolver
}

// DefaultSettings returns the named defaults spec.md §6 leaves
// unspecified numerically. Vector units are pixels; text units are
// character cells.
func DefaultSettings() Settings {
	return Settings{
		MaxWidth:                      600,
		Reverse:                       false,
		EndClass:                      diagram.Complex,
		VerticalChoiceSeparation:      9,
		VerticalChoiceSeparationOuter: 18,
		VerticalSeqSeparation:         9,
		VerticalSeqSeparationOuter:    18,
		HorizontalSeqSeparation:       10,

		ArcRadius:          10,
		ArcMargin:          5,
		ArrowStyle:         diagram.Triangle,
		ArrowLength:        10,
		ArrowCrossLength:   6,
		TerminalHPadding:   10,
		TerminalVPadding:   5,
		TerminalRadius:     10,
		NonTerminalHPadding: 10,
		NonTerminalVPadding: 5,
		NonTerminalRadius:  0,
		CommentHPadding:    8,
		CommentVPadding:    3,
		CommentRadius:      0,
		GroupVPadding:      8,
		GroupHPadding:      8,
		GroupVMargin:       8,
		GroupHMargin:       8,
		GroupRadius:        4,
		GroupTextHOffset:   8,
		GroupTextVOffset:   -4,

		TextTerminalHPadding:    1,
		TextNonTerminalHPadding: 1,
		TextCommentHPadding:     1,
		TextGroupHPadding:       1,
		TextGroupVPadding:       1,
		TextGroupTextHOffset:    1,
		TextGroupTextVOffset:    0,
	}
}

// fillDefaults returns a copy of s with every zero-valued numeric field
// (other fields are meaningful at their zero value, e.g. Reverse=false)
// replaced from [DefaultSettings]. Settings built via struct literal
// (the common case) therefore "just work" for whichever fields the
// caller didn't set.
func fillDefaults(s Settings) Settings {
	d := DefaultSettings()
	if s.MaxWidth == 0 {
		s.MaxWidth = d.MaxWidth
	}
	if s.VerticalChoiceSeparation == 0 {
		s.VerticalChoiceSeparation = d.VerticalChoiceSeparation
	}
	if s.VerticalChoiceSeparationOuter == 0 {
		s.VerticalChoiceSeparationOuter = d.VerticalChoiceSeparationOuter
	}
	if s.VerticalSeqSeparation == 0 {
		s.VerticalSeqSeparation = d.VerticalSeqSeparation
	}
	if s.VerticalSeqSeparationOuter == 0 {
		s.VerticalSeqSeparationOuter = d.VerticalSeqSeparationOuter
	}
	if s.HorizontalSeqSeparation == 0 {
		s.HorizontalSeqSeparation = d.HorizontalSeqSeparation
	}
	if s.ArcRadius == 0 {
		s.ArcRadius = d.ArcRadius
	}
	if s.ArcMargin == 0 {
		s.ArcMargin = d.ArcMargin
	}
	if s.ArrowStyle == diagram.NoArrow {
		s.ArrowStyle = d.ArrowStyle
	}
	if s.ArrowLength == 0 {
		s.ArrowLength = d.ArrowLength
	}
	if s.ArrowCrossLength == 0 {
		s.ArrowCrossLength = d.ArrowCrossLength
	}
	if s.TerminalHPadding == 0 {
		s.TerminalHPadding = d.TerminalHPadding
	}
	if s.TerminalVPadding == 0 {
		s.TerminalVPadding = d.TerminalVPadding
	}
	if s.NonTerminalHPadding == 0 {
		s.NonTerminalHPadding = d.NonTerminalHPadding
	}
	if s.NonTerminalVPadding == 0 {
		s.NonTerminalVPadding = d.NonTerminalVPadding
	}
	if s.CommentHPadding == 0 {
		s.CommentHPadding = d.CommentHPadding
	}
	if s.CommentVPadding == 0 {
		s.CommentVPadding = d.CommentVPadding
	}
	if s.GroupVPadding == 0 {
		s.GroupVPadding = d.GroupVPadding
	}
	if s.GroupHPadding == 0 {
		s.GroupHPadding = d.GroupHPadding
	}
	if s.GroupVMargin == 0 {
		s.GroupVMargin = d.GroupVMargin
	}
	if s.GroupHMargin == 0 {
		s.GroupHMargin = d.GroupHMargin
	}
	if s.GroupRadius == 0 {
		s.GroupRadius = d.GroupRadius
	}
	if s.TerminalRadius == 0 {
		s.TerminalRadius = d.TerminalRadius
	}
	if s.GroupTextHOffset == 0 {
		s.GroupTextHOffset = d.GroupTextHOffset
	}
	if s.GroupTextVOffset == 0 {
		s.GroupTextVOffset = d.GroupTextVOffset
	}
	if s.TextGroupTextHOffset == 0 {
		s.TextGroupTextHOffset = d.TextGroupTextHOffset
	}
	if s.TextTerminalHPadding == 0 {
		s.TextTerminalHPadding = d.TextTerminalHPadding
	}
	if s.TextNonTerminalHPadding == 0 {
		s.TextNonTerminalHPadding = d.TextNonTerminalHPadding
	}
	if s.TextCommentHPadding == 0 {
		s.TextCommentHPadding = d.TextCommentHPadding
	}
	if s.TextGroupHPadding == 0 {
		s.TextGroupHPadding = d.TextGroupHPadding
	}
	if s.TextGroupVPadding == 0 {
		s.TextGroupVPadding = d.TextGroupVPadding
	}
	return s
}
