// Package load turns the data-literal shape of a diagram — nested
// strings, lists, and tagged maps, as spec.md §3.1 describes — into a
// [diagram.Node] tree. It is the "loader/validator" spec.md §2 calls
// external to the layout engine in principle, while still specifying
// the tree schema it must produce; this package is that schema's single
// concrete implementation.
package load

import (
	"github.com/flowshape/syntaxdiagrams/pkg/dgerrors"
	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
)

// Load converts a data-literal value into a [diagram.Node]. A bare
// string is sugar for [diagram.Terminal]; nil is sugar for
// [diagram.Skip]; a []any is sugar for an unbroken [diagram.Sequence];
// a value that already is a [diagram.Node] is returned unchanged;
// anything else must be a map[string]any carrying exactly one
// recognized tag key.
func Load(data any) (diagram.Node, error) {
	return loadNode(data, nil)
}

func loadNode(data any, path dgerrors.Path) (diagram.Node, error) {
	switch v := data.(type) {
	case nil:
		return diagram.Skip{}, nil
	case string:
		return diagram.NewTerminal(v), nil
	case diagram.Node:
		return v, nil
	case []any:
		return loadSequence(v, path)
	case map[string]any:
		return loadTagged(v, path)
	default:
		return nil, dgerrors.NewLoading(dgerrors.CodeWrongType, path,
			"expected string, list, map, or nil, got %T", v)
	}
}

func loadSequence(items []any, path dgerrors.Path) (diagram.Node, error) {
	children := make([]diagram.Node, len(items))
	for i, item := range items {
		n, err := loadNode(item, append(path, i))
		if err != nil {
			return nil, err
		}
		children[i] = n
	}
	seq, err := diagram.NewSequence(children)
	if err != nil {
		return nil, dgerrors.WrapLoading(dgerrors.CodeLengthMismatch, path, err, "invalid sequence")
	}
	return seq, nil
}

// tags lists every recognized variant key a tagged map may carry.
var tags = []string{
	"terminal", "non_terminal", "comment", "sequence", "stack",
	"choice", "optional", "one_or_more", "zero_or_more", "barrier", "group",
}

func loadTagged(m map[string]any, path dgerrors.Path) (diagram.Node, error) {
	var found string
	for _, tag := range tags {
		if _, ok := m[tag]; ok {
			if found != "" {
				return nil, dgerrors.NewLoading(dgerrors.CodeUnknownTag, path,
					"map carries more than one variant tag: %q and %q", found, tag)
			}
			found = tag
		}
	}
	if found == "" {
		return nil, dgerrors.NewLoading(dgerrors.CodeUnknownTag, path,
			"map carries no recognized variant tag (expected one of %v)", tags)
	}
	value := m[found]
	fields, _ := value.(map[string]any)
	tagPath := append(path, found)

	switch found {
	case "terminal", "non_terminal", "comment":
		return loadLeaf(found, value, fields, tagPath)
	case "sequence":
		return loadSequenceTag(value, fields, tagPath)
	case "stack":
		return loadStack(value, tagPath)
	case "choice":
		return loadChoice(fields, tagPath)
	case "optional":
		return loadOptional(fields, tagPath)
	case "one_or_more":
		return loadOneOrMore(fields, tagPath)
	case "zero_or_more":
		return loadZeroOrMore(fields, tagPath)
	case "barrier":
		child, err := loadNode(value, append(tagPath, "child"))
		if err != nil {
			return nil, err
		}
		return diagram.NewBarrier(child), nil
	case "group":
		return loadGroup(fields, tagPath)
	default:
		dgerrors.Invariant("load: unreachable tag " + found)
		return nil, nil
	}
}

func loadLeaf(tag string, value any, fields map[string]any, path dgerrors.Path) (diagram.Node, error) {
	text, ok := value.(string)
	if fields != nil {
		t, tok := fields["text"].(string)
		if !tok {
			return nil, dgerrors.NewLoading(dgerrors.CodeMissingField, append(path, "text"),
				"%s requires a string \"text\" field", tag)
		}
		text, ok = t, true
	}
	if !ok {
		return nil, dgerrors.NewLoading(dgerrors.CodeWrongType, path,
			"%s value must be a string or a map with a \"text\" field", tag)
	}

	var opts []diagram.LeafOption
	if fields != nil {
		if href, ok := fields["href"].(string); ok {
			opts = append(opts, diagram.WithHref(href))
		}
		if title, ok := fields["title"].(string); ok {
			opts = append(opts, diagram.WithTitle(title))
		}
		if class, ok := fields["css_class"].(string); ok {
			opts = append(opts, diagram.WithCSSClass(class))
		}
		if resolve, ok := fields["resolve"].(bool); ok {
			opts = append(opts, diagram.WithResolve(resolve))
		}
		if data, ok := fields["resolver_data"]; ok {
			opts = append(opts, diagram.WithResolverData(data))
		}
	}

	switch tag {
	case "terminal":
		return diagram.NewTerminal(text, opts...), nil
	case "non_terminal":
		return diagram.NewNonTerminal(text, opts...), nil
	default:
		return diagram.NewComment(text, opts...), nil
	}
}

func loadSequenceTag(value any, fields map[string]any, path dgerrors.Path) (diagram.Node, error) {
	var rawChildren any = value
	var rawBreaks any
	if fields != nil {
		rawChildren = fields["children"]
		rawBreaks = fields["breaks"]
	}
	items, ok := rawChildren.([]any)
	if !ok {
		return nil, dgerrors.NewLoading(dgerrors.CodeMissingField, append(path, "children"),
			"sequence requires a \"children\" list")
	}
	children := make([]diagram.Node, len(items))
	for i, item := range items {
		n, err := loadNode(item, append(append(dgerrors.Path{}, path...), "children", i))
		if err != nil {
			return nil, err
		}
		children[i] = n
	}
	breaks, err := loadBreaks(rawBreaks, path)
	if err != nil {
		return nil, err
	}
	seq, err := diagram.NewSequence(children, breaks...)
	if err != nil {
		return nil, dgerrors.WrapLoading(dgerrors.CodeLengthMismatch, path, err, "invalid sequence breaks")
	}
	return seq, nil
}

func loadBreaks(raw any, path dgerrors.Path) ([]diagram.Break, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, dgerrors.NewLoading(dgerrors.CodeWrongType, append(path, "breaks"),
			"breaks must be a list of break tags")
	}
	out := make([]diagram.Break, len(items))
	for i, item := range items {
		tag, ok := item.(string)
		if !ok {
			return nil, dgerrors.NewLoading(dgerrors.CodeWrongType, append(path, "breaks", i),
				"break must be a string tag")
		}
		b, err := parseBreak(tag, append(path, "breaks", i))
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

func parseBreak(tag string, path dgerrors.Path) (diagram.Break, error) {
	switch tag {
	case "no_break":
		return diagram.NoBreak, nil
	case "soft":
		return diagram.Soft, nil
	case "hard":
		return diagram.Hard, nil
	case "default":
		return diagram.Default, nil
	default:
		return 0, dgerrors.NewLoading(dgerrors.CodeWrongType, path,
			"unknown break tag %q (expected no_break, soft, hard, or default)", tag)
	}
}

func loadStack(value any, path dgerrors.Path) (diagram.Node, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, dgerrors.NewLoading(dgerrors.CodeWrongType, path, "stack value must be a list of rows")
	}
	rows := make([]diagram.Node, len(items))
	for i, item := range items {
		n, err := loadNode(item, append(path, i))
		if err != nil {
			return nil, err
		}
		rows[i] = n
	}
	return diagram.NewStack(rows...), nil
}

func loadChoice(fields map[string]any, path dgerrors.Path) (diagram.Node, error) {
	if fields == nil {
		return nil, dgerrors.NewLoading(dgerrors.CodeMissingField, path, "choice requires a map with \"children\" and \"default\"")
	}
	items, ok := fields["children"].([]any)
	if !ok {
		return nil, dgerrors.NewLoading(dgerrors.CodeMissingField, append(path, "children"), "choice requires a \"children\" list")
	}
	def, ok := asInt(fields["default"])
	if !ok {
		return nil, dgerrors.NewLoading(dgerrors.CodeMissingField, append(path, "default"), "choice requires an integer \"default\" index")
	}
	children := make([]diagram.Node, len(items))
	for i, item := range items {
		n, err := loadNode(item, append(append(dgerrors.Path{}, path...), "children", i))
		if err != nil {
			return nil, err
		}
		children[i] = n
	}
	choice, err := diagram.NewChoice(children, def)
	if err != nil {
		return nil, dgerrors.WrapLoading(dgerrors.CodeOutOfRange, append(path, "default"), err, "invalid choice default")
	}
	return choice, nil
}

func loadOptional(fields map[string]any, path dgerrors.Path) (diagram.Node, error) {
	if fields == nil {
		return nil, dgerrors.NewLoading(dgerrors.CodeMissingField, path, "optional requires a map with a \"child\" field")
	}
	child, err := loadNode(fields["child"], append(path, "child"))
	if err != nil {
		return nil, err
	}
	var opts []diagram.OptionalOption
	if skip, ok := fields["skip"].(bool); ok {
		opts = append(opts, diagram.WithSkip(skip))
	}
	if bottom, ok := fields["skip_bottom"].(bool); ok {
		opts = append(opts, diagram.WithSkipBottom(bottom))
	}
	return diagram.NewOptional(child, opts...), nil
}

// loopBodyRepeat parses the {body, repeat} fields shared by one_or_more
// and zero_or_more, and rejects a "repeat_top" key outright:
// spec.md §9's Open Question is resolved by supporting RepeatTop only
// through the programmatic [diagram.WithRepeatTop] constructor option,
// never through data-literal input (see DESIGN.md).
func loopBodyRepeat(fields map[string]any, path dgerrors.Path) (body, repeat diagram.Node, err error) {
	if fields == nil {
		return nil, nil, dgerrors.NewLoading(dgerrors.CodeMissingField, path, "loop requires a map with a \"body\" field")
	}
	if _, ok := fields["repeat_top"]; ok {
		return nil, nil, dgerrors.NewLoading(dgerrors.CodeInconsistentFlags, append(path, "repeat_top"),
			"repeat_top is not accepted from data-literal input; build the node programmatically instead")
	}
	body, err = loadNode(fields["body"], append(path, "body"))
	if err != nil {
		return nil, nil, err
	}
	repeat = diagram.Skip{}
	if r, ok := fields["repeat"]; ok {
		repeat, err = loadNode(r, append(path, "repeat"))
		if err != nil {
			return nil, nil, err
		}
	}
	return body, repeat, nil
}

func loadOneOrMore(fields map[string]any, path dgerrors.Path) (diagram.Node, error) {
	body, repeat, err := loopBodyRepeat(fields, path)
	if err != nil {
		return nil, err
	}
	return diagram.NewOneOrMore(body, diagram.WithRepeat(repeat)), nil
}

func loadZeroOrMore(fields map[string]any, path dgerrors.Path) (diagram.Node, error) {
	body, repeat, err := loopBodyRepeat(fields, path)
	if err != nil {
		return nil, err
	}
	var opts []diagram.LoopOption
	opts = append(opts, diagram.WithRepeat(repeat))
	if skip, ok := fields["skip"].(bool); ok {
		opts = append(opts, diagram.WithLoopSkip(skip))
	}
	if bottom, ok := fields["skip_bottom"].(bool); ok {
		opts = append(opts, diagram.WithLoopSkipBottom(bottom))
	}
	return diagram.NewZeroOrMore(body, opts...), nil
}

func loadGroup(fields map[string]any, path dgerrors.Path) (diagram.Node, error) {
	if fields == nil {
		return nil, dgerrors.NewLoading(dgerrors.CodeMissingField, path, "group requires a map with \"child\" and \"text\" fields")
	}
	child, err := loadNode(fields["child"], append(path, "child"))
	if err != nil {
		return nil, err
	}
	text, ok := fields["text"].(string)
	if !ok {
		return nil, dgerrors.NewLoading(dgerrors.CodeMissingField, append(path, "text"), "group requires a string \"text\" field")
	}
	var opts []diagram.GroupOption
	if href, ok := fields["href"].(string); ok {
		opts = append(opts, diagram.WithGroupHref(href))
	}
	if title, ok := fields["title"].(string); ok {
		opts = append(opts, diagram.WithGroupTitle(title))
	}
	if class, ok := fields["css_class"].(string); ok {
		opts = append(opts, diagram.WithGroupCSSClass(class))
	}
	return diagram.NewGroup(child, text, opts...), nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
