package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 0, ""},
		{"hello", 1, "…"},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d): expected %q, got %q", tt.in, tt.width, tt.want, got)
		}
	}
}

func TestClip(t *testing.T) {
	if got := Clip("abcdef", 3); got != "abc" {
		t.Errorf("Clip: expected %q, got %q", "abc", got)
	}
	if got := Clip("abc", 10); got != "abc" {
		t.Errorf("Clip short: expected %q, got %q", "abc", got)
	}
	if got := Clip("abc", 0); got != "" {
		t.Errorf("Clip zero: expected empty, got %q", got)
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"abcdef", 6, "abcdef"},
		{"abcdefgh", 6, "abcde…"},
		{"日本", 8, "  日本"},
	}
	for _, tt := range tests {
		if got := Center(tt.in, tt.width); got != tt.want {
			t.Errorf("Center(%q, %d): expected %q, got %q", tt.in, tt.width, tt.want, got)
		}
	}
}

func TestPadVisual(t *testing.T) {
	if got := PadRightVisual("ab", 4); got != "ab  " {
		t.Errorf("PadRightVisual: expected %q, got %q", "ab  ", got)
	}
	if got := PadLeftVisual("ab", 4); got != "  ab" {
		t.Errorf("PadLeftVisual: expected %q, got %q", "  ab", got)
	}
	if got := VisualWidth("日本"); got != 4 {
		t.Errorf("VisualWidth: expected 4, got %d", got)
	}
}

func TestExpandTabs(t *testing.T) {
	if got := ExpandTabs("\ta\tb"); got != "    a    b" {
		t.Errorf("ExpandTabs: expected %q, got %q", "    a    b", got)
	}
	if got := VisualWidth(ExpandTabs("\t\tx")); got != 2*TabWidth+1 {
		t.Errorf("expanded width: expected %d, got %d", 2*TabWidth+1, got)
	}
	if got := VisualWidthStyled("\x1b[31mred\x1b[0m"); got != 3 {
		t.Errorf("VisualWidthStyled: expected 3, got %d", got)
	}
}
