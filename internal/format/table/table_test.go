package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"a", "1"},
		{"longer", "22"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"a        1",
		"longer  22",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFormatTrimsTrailingPadding(t *testing.T) {
	rows := [][]string{
		{"short", ""},
		{"longer-value", "note"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	if got[0] != "short" {
		t.Fatalf("expected trailing padding trimmed, got %q", got[0])
	}
	if got[1] != "longer-value  note" {
		t.Fatalf("unexpected row %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	rows := [][]string{
		{"日本", "a"},
		{"ab", "b"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	// "日本" occupies four cells; both annotation columns line up at cell 6.
	if got[0] != "日本  a" {
		t.Fatalf("unexpected wide-rune row %q", got[0])
	}
	if got[1] != "ab    b" {
		t.Fatalf("expected two extra pad cells for narrow row, got %q", got[1])
	}
}
