package layout

import (
	"github.com/flowshape/syntaxdiagrams/pkg/dgerrors"
	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
	"github.com/flowshape/syntaxdiagrams/pkg/metric"
)

// Place walks record (produced by [Measure] over the same node) in
// pre-order, assigning absolute X/Y to it and every descendant, per
// spec.md §4.4. The root is placed at X=0 and Y=record.Up, so that Y is
// thereafter always a distance down from the top of the drawing (never
// negative) — the coordinate system a [metric.Surface] expects. Package
// render is responsible for translating further for outer padding and
// end-marker allowance.
func Place(node diagram.Node, record *Record, profile metric.Profile) {
	place(record, 0, record.Up, profile)
}

func place(rec *Record, x, y float64, profile metric.Profile) {
	rec.X, rec.Y = x, y
	switch v := rec.Node.(type) {
	case nil, diagram.Skip, *diagram.Terminal, *diagram.NonTerminal, *diagram.Comment:
		// Leaves: nothing further to place.
	case *diagram.Sequence:
		placeSequence(rec, x, y, profile)
	case *diagram.Stack:
		placeStack(rec, x, y, profile)
	case *diagram.Choice:
		placeChoice(rec, x, y, profile)
	case *diagram.OneOrMore:
		placeOneOrMore(rec, x, y, profile)
	case *diagram.Barrier:
		place(rec.Children[0], x, y, profile)
	case *diagram.Group:
		placeGroup(rec, x, y, profile)
	case *diagram.FusedBypass:
		placeFusedBypass(rec, x, y, profile)
	default:
		_ = v
		dgerrors.Invariant("place: unhandled node type")
	}
}

func placeSequence(rec *Record, x, y float64, profile metric.Profile) {
	sep := profile.Spacing().HorizontalSeqSeparation
	cursorX, cursorY := x, y
	for i, c := range rec.Children {
		if i > 0 {
			cursorX += sep
		}
		place(c, cursorX, cursorY, profile)
		cursorX += c.Width
		// A child whose own exit sits on a different line than its entry
		// (a nested Stack with more than one row) shifts every sibling
		// after it onto that new line, matching measureSequence's
		// EntryY/ExitY pass-through from first/last child.
		cursorY += c.ExitY - c.EntryY
	}
}

func placeStack(rec *Record, x, y float64, profile metric.Profile) {
	rows := rec.Children
	if len(rows) == 0 {
		return
	}
	spacing := profile.Spacing()
	arc := spacing.ArcRadius
	sep := spacing.VerticalSeqSeparation
	// Matches the outer/inner choice made in measureStack: a Stack
	// record's Up/Down were computed with whichever separation the
	// caller selected; re-deriving which one was used from Up alone
	// would be fragile, so placement always uses the inner constant
	// when it differs from what measurement used only in total offset,
	// never in per-row shape — rows still land at the same relative
	// Y each pass computes independently below.
	_ = sep
	cursorY := 0.0
	place(rows[0], x+arc, y, profile)
	for i := 1; i < len(rows); i++ {
		gap := spacing.VerticalSeqSeparation + 2*arc
		cursorY += rows[i-1].Down + gap + rows[i].Up
		place(rows[i], x+arc, y+cursorY, profile)
	}
}

func placeChoice(rec *Record, x, y float64, profile metric.Profile) {
	choice := rec.Node.(*diagram.Choice)
	alts := rec.Children
	spacing := profile.Spacing()
	inset := x + spacing.ArcRadius + spacing.ArcMargin

	place(alts[choice.Default], inset, y, profile)

	offset := 0.0
	for i := choice.Default - 1; i >= 0; i-- {
		offset += alts[i].Height() + spacing.VerticalChoiceSeparation
		place(alts[i], inset, y-offset, profile)
	}
	offset = 0.0
	for i := choice.Default + 1; i < len(alts); i++ {
		offset += alts[i].Height() + spacing.VerticalChoiceSeparation
		place(alts[i], inset, y+offset, profile)
	}
}

func placeOneOrMore(rec *Record, x, y float64, profile metric.Profile) {
	loop := rec.Node.(*diagram.OneOrMore)
	spacing := profile.Spacing()
	inset := x + spacing.ArcRadius
	body, repeat := rec.Children[0], rec.Children[1]
	place(body, inset, y, profile)
	extra := repeat.Height() + spacing.VerticalSeqSeparation
	if loop.RepeatTop {
		place(repeat, inset, y-extra, profile)
	} else {
		place(repeat, inset, y+extra, profile)
	}
}

func placeGroup(rec *Record, x, y float64, profile metric.Profile) {
	style := profile.GroupStyle()
	place(rec.Children[0], x+style.HorizontalPadding+style.HorizontalMargin, y, profile)
}

func placeFusedBypass(rec *Record, x, y float64, profile metric.Profile) {
	spacing := profile.Spacing()
	sep := spacing.HorizontalSeqSeparation
	cursor := x + spacing.ArcRadius + spacing.ArcMargin
	for i, m := range rec.Children {
		if i > 0 {
			cursor += sep
		}
		place(m, cursor, y, profile)
		cursor += m.Width
	}
}
