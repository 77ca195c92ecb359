package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
	"github.com/flowshape/syntaxdiagrams/pkg/metric"
)

// tomlSettings mirrors [metric.Settings], dropping the TextMeasure and
// HrefResolver callback fields (func/interface values can't round-trip
// through TOML) so the rest of the record can be encoded and decoded
// directly with BurntSushi/toml.
type tomlSettings struct {
	MaxWidth                      float64 `toml:"max_width"`
	Reverse                       bool    `toml:"reverse"`
	EndClass                      int     `toml:"end_class"` // 0=Complex, 1=Simple
	VerticalChoiceSeparation      float64 `toml:"vertical_choice_separation"`
	VerticalChoiceSeparationOuter float64 `toml:"vertical_choice_separation_outer"`
	VerticalSeqSeparation         float64 `toml:"vertical_seq_separation"`
	VerticalSeqSeparationOuter    float64 `toml:"vertical_seq_separation_outer"`
	HorizontalSeqSeparation       float64 `toml:"horizontal_seq_separation"`

	Title               string  `toml:"title"`
	Description         string  `toml:"description"`
	ArcRadius           float64 `toml:"arc_radius"`
	ArcMargin           float64 `toml:"arc_margin"`
	ArrowStyle          int     `toml:"arrow_style"` // 0=NoArrow, 1=Triangle
	ArrowLength         float64 `toml:"arrow_length"`
	ArrowCrossLength    float64 `toml:"arrow_cross_length"`
	TerminalHPadding    float64 `toml:"terminal_h_padding"`
	TerminalVPadding    float64 `toml:"terminal_v_padding"`
	TerminalRadius      float64 `toml:"terminal_radius"`
	NonTerminalHPadding float64 `toml:"non_terminal_h_padding"`
	NonTerminalVPadding float64 `toml:"non_terminal_v_padding"`
	NonTerminalRadius   float64 `toml:"non_terminal_radius"`
	CommentHPadding     float64 `toml:"comment_h_padding"`
	CommentVPadding     float64 `toml:"comment_v_padding"`
	CommentRadius       float64 `toml:"comment_radius"`
	GroupVPadding       float64 `toml:"group_v_padding"`
	GroupHPadding       float64 `toml:"group_h_padding"`
	GroupVMargin        float64 `toml:"group_v_margin"`
	GroupHMargin        float64 `toml:"group_h_margin"`
	GroupRadius         float64 `toml:"group_radius"`
	GroupTextHOffset    float64 `toml:"group_text_h_offset"`
	GroupTextVOffset    float64 `toml:"group_text_v_offset"`
	CSSClass            string  `toml:"css_class"`
	CSSStyle            string  `toml:"css_style"`

	TextTerminalHPadding    float64 `toml:"text_terminal_h_padding"`
	TextNonTerminalHPadding float64 `toml:"text_non_terminal_h_padding"`
	TextCommentHPadding     float64 `toml:"text_comment_h_padding"`
	TextGroupHPadding       float64 `toml:"text_group_h_padding"`
	TextGroupVPadding       float64 `toml:"text_group_v_padding"`
	TextGroupTextHOffset    float64 `toml:"text_group_text_h_offset"`
	TextGroupTextVOffset    float64 `toml:"text_group_text_v_offset"`
}

func toTOMLSettings(s metric.Settings) tomlSettings {
	return tomlSettings{
		MaxWidth:                      s.MaxWidth,
		Reverse:                       s.Reverse,
		EndClass:                      int(s.EndClass),
		VerticalChoiceSeparation:      s.VerticalChoiceSeparation,
		VerticalChoiceSeparationOuter: s.VerticalChoiceSeparationOuter,
		VerticalSeqSeparation:         s.VerticalSeqSeparation,
		VerticalSeqSeparationOuter:    s.VerticalSeqSeparationOuter,
		HorizontalSeqSeparation:       s.HorizontalSeqSeparation,
		Title:                         s.Title,
		Description:                   s.Description,
		ArcRadius:                     s.ArcRadius,
		ArcMargin:                     s.ArcMargin,
		ArrowStyle:                    int(s.ArrowStyle),
		ArrowLength:                   s.ArrowLength,
		ArrowCrossLength:              s.ArrowCrossLength,
		TerminalHPadding:              s.TerminalHPadding,
		TerminalVPadding:              s.TerminalVPadding,
		TerminalRadius:                s.TerminalRadius,
		NonTerminalHPadding:           s.NonTerminalHPadding,
		NonTerminalVPadding:           s.NonTerminalVPadding,
		NonTerminalRadius:             s.NonTerminalRadius,
		CommentHPadding:               s.CommentHPadding,
		CommentVPadding:               s.CommentVPadding,
		CommentRadius:                 s.CommentRadius,
		GroupVPadding:                 s.GroupVPadding,
		GroupHPadding:                 s.GroupHPadding,
		GroupVMargin:                  s.GroupVMargin,
		GroupHMargin:                  s.GroupHMargin,
		GroupRadius:                   s.GroupRadius,
		GroupTextHOffset:              s.GroupTextHOffset,
		GroupTextVOffset:              s.GroupTextVOffset,
		CSSClass:                      s.CSSClass,
		CSSStyle:                      s.CSSStyle,
		TextTerminalHPadding:          s.TextTerminalHPadding,
		TextNonTerminalHPadding:       s.TextNonTerminalHPadding,
		TextCommentHPadding:           s.TextCommentHPadding,
		TextGroupHPadding:             s.TextGroupHPadding,
		TextGroupVPadding:             s.TextGroupVPadding,
		TextGroupTextHOffset:          s.TextGroupTextHOffset,
		TextGroupTextVOffset:          s.TextGroupTextVOffset,
	}
}

func (t tomlSettings) toSettings() metric.Settings {
	return metric.Settings{
		MaxWidth:                      t.MaxWidth,
		Reverse:                       t.Reverse,
		EndClass:                      diagram.EndClass(t.EndClass),
		VerticalChoiceSeparation:      t.VerticalChoiceSeparation,
		VerticalChoiceSeparationOuter: t.VerticalChoiceSeparationOuter,
		VerticalSeqSeparation:         t.VerticalSeqSeparation,
		VerticalSeqSeparationOuter:    t.VerticalSeqSeparationOuter,
		HorizontalSeqSeparation:       t.HorizontalSeqSeparation,
		Title:                         t.Title,
		Description:                   t.Description,
		ArcRadius:                     t.ArcRadius,
		ArcMargin:                     t.ArcMargin,
		ArrowStyle:                    diagram.ArrowStyle(t.ArrowStyle),
		ArrowLength:                   t.ArrowLength,
		ArrowCrossLength:              t.ArrowCrossLength,
		TerminalHPadding:              t.TerminalHPadding,
		TerminalVPadding:              t.TerminalVPadding,
		TerminalRadius:                t.TerminalRadius,
		NonTerminalHPadding:           t.NonTerminalHPadding,
		NonTerminalVPadding:           t.NonTerminalVPadding,
		NonTerminalRadius:             t.NonTerminalRadius,
		CommentHPadding:               t.CommentHPadding,
		CommentVPadding:               t.CommentVPadding,
		CommentRadius:                 t.CommentRadius,
		GroupVPadding:                 t.GroupVPadding,
		GroupHPadding:                 t.GroupHPadding,
		GroupVMargin:                  t.GroupVMargin,
		GroupHMargin:                  t.GroupHMargin,
		GroupRadius:                   t.GroupRadius,
		GroupTextHOffset:              t.GroupTextHOffset,
		GroupTextVOffset:              t.GroupTextVOffset,
		CSSClass:                      t.CSSClass,
		CSSStyle:                      t.CSSStyle,
		TextTerminalHPadding:          t.TextTerminalHPadding,
		TextNonTerminalHPadding:       t.TextNonTerminalHPadding,
		TextCommentHPadding:           t.TextCommentHPadding,
		TextGroupHPadding:             t.TextGroupHPadding,
		TextGroupVPadding:             t.TextGroupVPadding,
		TextGroupTextHOffset:          t.TextGroupTextHOffset,
		TextGroupTextVOffset:          t.TextGroupTextVOffset,
	}
}

// loadSettingsFile reads a TOML settings file as produced by `config`.
// A zero-valued field in the file falls back to the named default when
// the settings are later used to build a profile.
func loadSettingsFile(path string) (metric.Settings, error) {
	var t tomlSettings
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return metric.Settings{}, fmt.Errorf("decoding settings file %s: %w", path, err)
	}
	return t.toSettings(), nil
}

// configCommand prints the resolved metric.Settings as TOML. Piped
// through --config on a later `render` invocation, the output round-trips.
func (c *CLI) configCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved render settings as TOML",
		Long:  `Print metric.DefaultSettings (or the settings loaded via --config) as TOML, suitable for editing and passing back to "render --config".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := metric.DefaultSettings()
			if configPath != "" {
				loaded, err := loadSettingsFile(configPath)
				if err != nil {
					return err
				}
				settings = loaded
			}

			var buf bytes.Buffer
			enc := toml.NewEncoder(&buf)
			if err := enc.Encode(toTOMLSettings(settings)); err != nil {
				return fmt.Errorf("encoding settings: %w", err)
			}
			_, err := os.Stdout.Write(buf.Bytes())
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "existing settings file to print instead of the defaults")
	return cmd
}
