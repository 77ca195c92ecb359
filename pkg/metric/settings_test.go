package metric

import "testing"

func TestFillDefaultsPreservesExplicitValues(t *testing.T) {
	s := Settings{MaxWidth: 42, ArcRadius: 3}
	filled := fillDefaults(s)
	if filled.MaxWidth != 42 {
		t.Errorf("MaxWidth = %v, want explicit 42", filled.MaxWidth)
	}
	if filled.ArcRadius != 3 {
		t.Errorf("ArcRadius = %v, want explicit 3", filled.ArcRadius)
	}
}

func TestFillDefaultsFillsZeroFields(t *testing.T) {
	filled := fillDefaults(Settings{})
	d := DefaultSettings()
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"MaxWidth", filled.MaxWidth, d.MaxWidth},
		{"VerticalChoiceSeparation", filled.VerticalChoiceSeparation, d.VerticalChoiceSeparation},
		{"HorizontalSeqSeparation", filled.HorizontalSeqSeparation, d.HorizontalSeqSeparation},
		{"ArcRadius", filled.ArcRadius, d.ArcRadius},
		{"TerminalHPadding", filled.TerminalHPadding, d.TerminalHPadding},
		{"TextTerminalHPadding", filled.TextTerminalHPadding, d.TextTerminalHPadding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want default %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestFillDefaultsArrowStyleZeroValueIsReplaced(t *testing.T) {
	// ArrowStyle's zero value, NoArrow, is itself the sentinel fillDefaults
	// checks for, so an explicit NoArrow is indistinguishable from "unset"
	// and gets replaced by the default arrow style.
	filled := fillDefaults(Settings{ArrowStyle: 0})
	d := DefaultSettings()
	if filled.ArrowStyle != d.ArrowStyle {
		t.Errorf("ArrowStyle = %v, want default %v", filled.ArrowStyle, d.ArrowStyle)
	}
}
