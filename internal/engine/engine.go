// Package engine holds the completion engine: the candidate set, the fuzzy
// filter, and the overlay strings the UI renders. It knows nothing about
// panel placement; while a render target is installed, sizing and overlay
// routing belong to the session manager.
package engine

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/nofmysfk/vertico/internal/logging/events"
	"github.com/nofmysfk/vertico/internal/session"
)

// Candidate is one selectable completion entry.
type Candidate struct {
	Value      string
	Annotation string
}

type hookEntry struct {
	id int
	fn func()
}

// Engine filters a fixed candidate set against the current query and exposes
// the overlays described in the capability contract.
type Engine struct {
	prompt  string
	full    []Candidate
	matched []Candidate
	query   string

	rows   int
	target session.RenderTarget

	setup  []hookEntry
	nextID int
}

// New builds an engine over the provided candidates. The initial match set
// is the full set in input order.
func New(prompt string, candidates []Candidate) *Engine {
	e := &Engine{
		prompt: prompt,
		full:   append([]Candidate(nil), candidates...),
	}
	e.matched = append([]Candidate(nil), e.full...)
	return e
}

// Prompt returns the prompt text shown before the query.
func (e *Engine) Prompt() string { return e.prompt }

// Query returns the current filter query.
func (e *Engine) Query() string { return e.query }

// Candidates returns the current match set in rank-preserving input order.
func (e *Engine) Candidates() []Candidate { return e.matched }

// Matched reports the current match count.
func (e *Engine) Matched() int { return len(e.matched) }

// Total reports the full candidate count.
func (e *Engine) Total() int { return len(e.full) }

// Filter reranks the candidate set against the query. An empty query
// restores the full set.
func (e *Engine) Filter(query string) {
	e.query = query
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		e.matched = append(e.matched[:0:0], e.full...)
		events.Filter.Cleared()
		return
	}
	values := make([]string, len(e.full))
	for i, c := range e.full {
		values[i] = c.Value
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, values)
	matches := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		matches[rank.OriginalIndex] = struct{}{}
	}
	filtered := make([]Candidate, 0, len(matches))
	for idx, c := range e.full {
		if _, ok := matches[idx]; ok {
			filtered = append(filtered, c)
		}
	}
	e.matched = filtered
	events.Filter.Query(trimmed, len(e.matched), len(e.full))
}

// Rows reports the candidate-list height: the render target's while one is
// installed and bound, otherwise the engine's own.
func (e *Engine) Rows() int {
	if e.target != nil {
		if rows := e.target.Rows(); rows > 0 {
			return rows
		}
	}
	return e.rows
}

// ResizeNotify publishes an externally derived row count. The session
// binder calls this once per bind and again after panel geometry changes.
func (e *Engine) ResizeNotify(rows int) {
	if rows < 0 {
		rows = 0
	}
	e.rows = rows
}

// HandleFrameResize is the engine's native sizing reaction to a host frame
// resize. It is a no-op while a render target owns sizing.
func (e *Engine) HandleFrameResize(rows int) {
	if e.target != nil {
		return
	}
	e.ResizeNotify(rows)
}

// SetRenderTarget installs or removes the rendering strategy. A nil target
// hands sizing and overlay routing back to the engine.
func (e *Engine) SetRenderTarget(target session.RenderTarget) {
	e.target = target
}

// Redirected reports whether overlays render into the panel instead of the
// input line.
func (e *Engine) Redirected() bool {
	return e.target != nil && e.target.Redirected()
}

// RegisterSetupHook adds a hook to the engine's episode setup routine. The
// returned func removes it.
func (e *Engine) RegisterSetupHook(fn func()) (cancel func()) {
	e.nextID++
	id := e.nextID
	e.setup = append(e.setup, hookEntry{id: id, fn: fn})
	return func() {
		for i, entry := range e.setup {
			if entry.id == id {
				e.setup = append(e.setup[:i], e.setup[i+1:]...)
				return
			}
		}
	}
}

// Setup runs the engine's episode setup routine. The host calls it once per
// interactive episode, after the episode is open.
func (e *Engine) Setup() {
	hooks := append([]hookEntry(nil), e.setup...)
	for _, entry := range hooks {
		entry.fn()
	}
}
