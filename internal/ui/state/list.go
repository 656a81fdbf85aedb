package state

// List tracks cursor position and viewport offset for the candidate list.
// Filtering lives in the engine; the list only sees the current match set.
type List struct {
	Items          []string
	Cursor         int
	ViewportOffset int
}

// NewList constructs a list over the given candidate values.
func NewList(items []string) *List {
	l := &List{}
	l.SetItems(items)
	return l
}

// SetItems replaces the visible candidate values. The cursor resets to the
// top; a fresh match set always selects its best-ranked entry.
func (l *List) SetItems(items []string) {
	l.Items = append(l.Items[:0:0], items...)
	l.Cursor = 0
	l.ViewportOffset = 0
}

// Selected returns the value under the cursor, or "" for an empty list.
func (l *List) Selected() string {
	if len(l.Items) == 0 || l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return ""
	}
	return l.Items[l.Cursor]
}

// MoveCursorUp moves the cursor up one entry.
func (l *List) MoveCursorUp() bool {
	return l.moveCursorBy(-1)
}

// MoveCursorDown moves the cursor down one entry.
func (l *List) MoveCursorDown() bool {
	return l.moveCursorBy(1)
}

// MoveCursorHome moves the cursor to the first entry.
func (l *List) MoveCursorHome() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last entry.
func (l *List) MoveCursorEnd() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = n - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *List) moveCursorBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	return l.Cursor != old
}

func (l *List) pageSize(maxVisible int) int {
	total := len(l.Items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}
