package state

import "testing"

func newTestList(items ...string) *List {
	return NewList(items)
}

func TestSetItemsResetsCursor(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.Cursor = 2
	l.ViewportOffset = 1
	l.SetItems([]string{"x", "y"})
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected cursor and viewport reset, got %d/%d", l.Cursor, l.ViewportOffset)
	}
	if l.Selected() != "x" {
		t.Fatalf("expected first item selected, got %q", l.Selected())
	}
}

func TestSelectedEmpty(t *testing.T) {
	l := newTestList()
	if l.Selected() != "" {
		t.Fatalf("expected empty selection for empty list")
	}
}

func TestMoveCursorUpDown(t *testing.T) {
	l := newTestList("a", "b", "c")
	if l.MoveCursorUp() {
		t.Fatalf("expected no movement above first item")
	}
	if !l.MoveCursorDown() {
		t.Fatalf("expected movement down")
	}
	if l.Selected() != "b" {
		t.Fatalf("expected b selected, got %q", l.Selected())
	}
	l.MoveCursorDown()
	if l.MoveCursorDown() {
		t.Fatalf("expected no movement past last item")
	}
}

func TestMoveCursorHomeEnd(t *testing.T) {
	l := newTestList("a", "b", "c")
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorHome() {
		t.Fatalf("expected movement home")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestList()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty list")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on first page down")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on second page down")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(2) {
		t.Fatalf("expected movement on page up")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", l.Cursor)
	}
	if !l.MoveCursorPageUp(10) {
		t.Fatalf("expected movement back to start")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}
