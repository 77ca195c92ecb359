package render

import (
	"fmt"
	"math"

	"github.com/flowshape/syntaxdiagrams/pkg/dgerrors"
	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
	"github.com/flowshape/syntaxdiagrams/pkg/layout"
	"github.com/flowshape/syntaxdiagrams/pkg/metric"
)

func emitNode(node diagram.Node, rec *layout.Record, profile metric.Profile, surface metric.Surface, path string) error {
	closeTag := surface.Tag(path)
	defer closeTag()

	switch v := node.(type) {
	case nil, diagram.Skip:
		return nil
	case *diagram.Terminal:
		return emitLeaf(rec, diagram.KindTerminal, v.Text, v.Href, v.Title, v.CSSClass, v.Resolve, v.ResolverData, profile, surface)
	case *diagram.NonTerminal:
		return emitLeaf(rec, diagram.KindNonTerminal, v.Text, v.Href, v.Title, v.CSSClass, v.Resolve, v.ResolverData, profile, surface)
	case *diagram.Comment:
		return emitLeaf(rec, diagram.KindComment, v.Text, v.Href, v.Title, v.CSSClass, v.Resolve, v.ResolverData, profile, surface)
	case *diagram.Sequence:
		return emitSequence(v, rec, profile, surface, path)
	case *diagram.Stack:
		return emitStack(v, rec, profile, surface, path)
	case *diagram.Choice:
		return emitChoice(v, rec, profile, surface, path)
	case *diagram.OneOrMore:
		return emitOneOrMore(v, rec, profile, surface, path)
	case *diagram.Barrier:
		return emitNode(v.Child, rec.Children[0], profile, surface, path+".b")
	case *diagram.Group:
		return emitGroup(v, rec, profile, surface, path)
	case *diagram.FusedBypass:
		return emitFusedBypass(v, rec, profile, surface, path)
	case *diagram.Optional, *diagram.ZeroOrMore:
		dgerrors.Invariant("emit: encountered un-lowered Optional/ZeroOrMore")
		return nil
	default:
		dgerrors.Invariant("emit: unhandled node type")
		return nil
	}
}

func emitLeaf(rec *layout.Record, kind diagram.Kind, text, href, title, cssClass string, resolve bool, payload any, profile metric.Profile, surface metric.Surface) error {
	url, resolvedTitle, ok, err := profile.ResolveHref(kind, text, href, title, payload, resolve)
	if err != nil {
		return dgerrors.WrapEmbedder(err, "href resolver failed for %s %q", kind, text)
	}
	style := profile.LeafStyle(kind)
	h := rec.Height()
	linkHref, linkTitle := "", ""
	if ok {
		linkHref, linkTitle = url, resolvedTitle
	}
	surface.Box(rec.X, rec.Y-rec.Up, rec.Width, h, style.Radius, cssClass, linkHref, linkTitle)
	surface.Text(rec.X, rec.Y-rec.Up, rec.Width, h, text, cssClass, linkHref, linkTitle)
	return nil
}

func emitSequence(seq *diagram.Sequence, rec *layout.Record, profile metric.Profile, surface metric.Surface, path string) error {
	for i, c := range seq.Children {
		childRec := rec.Children[i]
		if i > 0 {
			prevRec := rec.Children[i-1]
			prevExitX := prevRec.X + prevRec.Width
			exitY := prevRec.Y + (prevRec.ExitY - prevRec.EntryY)
			surface.Line(prevExitX, exitY, childRec.X, childRec.Y)
		}
		if err := emitNode(c, childRec, profile, surface, fmt.Sprintf("%s.%d", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func emitStack(stack *diagram.Stack, rec *layout.Record, profile metric.Profile, surface metric.Surface, path string) error {
	spacing := profile.Spacing()
	arc := spacing.ArcRadius
	for i, row := range stack.Rows {
		rowRec := rec.Children[i]
		if i > 0 {
			prevRec := rec.Children[i-1]
			prevExitX := prevRec.X + prevRec.Width
			prevExitY := prevRec.Y + (prevRec.ExitY - prevRec.EntryY)
			nextEntryX := rowRec.X
			nextEntryY := rowRec.Y + rowRec.EntryY
			midY := (prevExitY + nextEntryY) / 2
			surface.Arc(prevExitX, prevExitY, arc, 0, math.Pi/2, true)
			surface.Line(prevExitX+arc, midY, nextEntryX-arc, midY)
			surface.Arc(nextEntryX, nextEntryY, arc, math.Pi, 3*math.Pi/2, true)
		}
		if err := emitNode(row, rowRec, profile, surface, fmt.Sprintf("%s.%d", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func emitChoice(choice *diagram.Choice, rec *layout.Record, profile metric.Profile, surface metric.Surface, path string) error {
	spacing := profile.Spacing()
	mainX, mainY := rec.X, rec.Y
	for i, alt := range choice.Children {
		altRec := rec.Children[i]
		if err := emitNode(alt, altRec, profile, surface, fmt.Sprintf("%s.%d", path, i)); err != nil {
			return err
		}
		if i == choice.Default {
			continue
		}
		entryX, entryY := altRec.X, altRec.Y
		exitX, exitY := altRec.X+altRec.Width, altRec.Y+(altRec.ExitY-altRec.EntryY)
		above := i < choice.Default
		if above {
			surface.Arc(mainX, mainY, spacing.ArcRadius, -math.Pi/2, 0, false)
			surface.Arc(exitX, exitY, spacing.ArcRadius, 0, math.Pi/2, false)
		} else {
			surface.Arc(mainX, mainY, spacing.ArcRadius, math.Pi/2, math.Pi, true)
			surface.Arc(exitX, exitY, spacing.ArcRadius, -math.Pi, -math.Pi/2, true)
		}
		surface.Line(mainX, entryY, entryX, entryY)
		surface.Line(exitX, exitY, mainX+rec.Width, exitY)
	}
	return nil
}

func emitOneOrMore(loop *diagram.OneOrMore, rec *layout.Record, profile metric.Profile, surface metric.Surface, path string) error {
	spacing := profile.Spacing()
	body, repeat := rec.Children[0], rec.Children[1]
	if err := emitNode(loop.Body, body, profile, surface, path+".0"); err != nil {
		return err
	}
	if err := emitNode(loop.Repeat, repeat, profile, surface, path+".1"); err != nil {
		return err
	}
	bodyEntryY := body.Y
	bodyExitY := body.Y + (body.ExitY - body.EntryY)
	repeatEntryY := repeat.Y
	repeatExitY := repeat.Y + (repeat.ExitY - repeat.EntryY)

	if loop.RepeatTop {
		surface.Arc(body.X, bodyEntryY, spacing.ArcRadius, math.Pi, 3*math.Pi/2, false)
		surface.Arc(repeat.X+repeat.Width, repeatEntryY, spacing.ArcRadius, math.Pi/2, math.Pi, false)
		surface.Arc(body.X+body.Width, bodyExitY, spacing.ArcRadius, -math.Pi/2, 0, false)
		surface.Arc(repeat.X, repeatExitY, spacing.ArcRadius, 0, math.Pi/2, false)
	} else {
		surface.Arc(body.X, bodyEntryY, spacing.ArcRadius, math.Pi/2, math.Pi, true)
		surface.Arc(repeat.X+repeat.Width, repeatEntryY, spacing.ArcRadius, -math.Pi, -math.Pi/2, true)
		surface.Arc(body.X+body.Width, bodyExitY, spacing.ArcRadius, -math.Pi/2, -math.Pi, true)
		surface.Arc(repeat.X, repeatExitY, spacing.ArcRadius, math.Pi, math.Pi/2, true)
	}
	return nil
}

func emitGroup(group *diagram.Group, rec *layout.Record, profile metric.Profile, surface metric.Surface, path string) error {
	style := profile.GroupStyle()
	child := rec.Children[0]
	boxTop := rec.Y - rec.Up
	surface.Box(rec.X, boxTop, rec.Width, rec.Height(), style.Radius, group.CSSClass, "", "")

	url, resolvedTitle, ok, err := profile.ResolveHref(diagram.KindComment, group.Text, group.Href, group.Title, nil, group.Href != "")
	if err != nil {
		return dgerrors.WrapEmbedder(err, "href resolver failed for group caption %q", group.Text)
	}
	linkHref, linkTitle := "", ""
	if ok {
		linkHref, linkTitle = url, resolvedTitle
	}
	surface.GroupCaption(rec.X+style.TextHorizontalOffset, boxTop+style.TextVerticalOffset, group.Text, linkHref, linkTitle)

	return emitNode(group.Child, child, profile, surface, path+".0")
}

func emitFusedBypass(fused *diagram.FusedBypass, rec *layout.Record, profile metric.Profile, surface metric.Surface, path string) error {
	spacing := profile.Spacing()
	mainY := rec.Y
	for i, m := range fused.Mains {
		mainRec := rec.Children[i]
		if i > 0 {
			prevRec := rec.Children[i-1]
			surface.Line(prevRec.X+prevRec.Width, mainY, mainRec.X, mainY)
		}
		if err := emitNode(m, mainRec, profile, surface, fmt.Sprintf("%s.%d", path, i)); err != nil {
			return err
		}
	}
	first, last := rec.Children[0], rec.Children[len(rec.Children)-1]
	switch fused.Side {
	case diagram.Top:
		surface.Arc(first.X, first.Y, spacing.ArcRadius, -math.Pi/2, 0, false)
		surface.Arc(last.X+last.Width, mainY, spacing.ArcRadius, 0, math.Pi/2, false)
	default:
		surface.Arc(first.X, first.Y, spacing.ArcRadius, math.Pi/2, math.Pi, true)
		surface.Arc(last.X+last.Width, mainY, spacing.ArcRadius, -math.Pi, -math.Pi/2, true)
	}
	return nil
}
