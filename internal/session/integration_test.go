package session_test

import (
	"testing"

	"github.com/nofmysfk/vertico/internal/session"
	"github.com/nofmysfk/vertico/internal/surface"
)

type recordingEngine struct {
	rows   []int
	target session.RenderTarget
}

func (e *recordingEngine) ResizeNotify(rows int) { e.rows = append(e.rows, rows) }

func (e *recordingEngine) SetRenderTarget(target session.RenderTarget) { e.target = target }

func (e *recordingEngine) RegisterSetupHook(fn func()) func() { return func() {} }

func TestEveryPlacementBindsExactlyOnePanel(t *testing.T) {
	for _, placement := range session.Placements() {
		t.Run(placement.String(), func(t *testing.T) {
			layout := surface.New(100, 30, surface.DefaultLineHeight)
			m := session.NewManager(layout, &recordingEngine{})

			for cycle := 0; cycle < 3; cycle++ {
				layout.BeginEpisode()
				s, err := m.Start(session.Policy{Placement: placement, Rows: 8}, false)
				if err != nil {
					t.Fatalf("cycle %d: start failed: %v", cycle, err)
				}
				if layout.Panel() == nil {
					t.Fatalf("cycle %d: expected a live panel", cycle)
				}
				layout.EndEpisode()
				if !s.Done() {
					t.Fatalf("cycle %d: session not torn down", cycle)
				}
				if layout.Panel() != nil {
					t.Fatalf("cycle %d: panel leaked past teardown", cycle)
				}
			}
		})
	}
}

func TestNestedEpisodeLeavesOuterSessionBound(t *testing.T) {
	layout := surface.New(80, 24, surface.DefaultLineHeight)
	m := session.NewManager(layout, &recordingEngine{})

	layout.BeginEpisode()
	outer, err := m.Start(session.Policy{Placement: session.BelowTarget, Rows: 6}, false)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	layout.BeginEpisode()
	layout.EndEpisode()
	if outer.Done() {
		t.Fatalf("inner episode end tore down the outer session")
	}
	if layout.Panel() == nil {
		t.Fatalf("panel released while the outer session is still bound")
	}

	layout.EndEpisode()
	if !outer.Done() {
		t.Fatalf("outer episode end should tear the session down")
	}
}

func TestHideInputScrollsAndRestores(t *testing.T) {
	layout := surface.New(80, 24, surface.DefaultLineHeight)
	eng := &recordingEngine{}
	m := session.NewManager(layout, eng)

	input := layout.Input()
	input.SetContent([]string{"> pattern"})
	if input.Scroll() != 0 {
		t.Fatalf("expected initial scroll 0")
	}

	layout.BeginEpisode()
	if _, err := m.Start(session.Policy{Placement: session.BottomOfFrame, Rows: 10}, true); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	layout.RedrawAll()
	if got := input.VisibleContent(); len(got) != 1 || got[0] != "" {
		t.Fatalf("expected input view fully scrolled out, got %q", got)
	}
	if panel := layout.Panel(); panel == nil {
		t.Fatalf("expected bound panel while hidden")
	}

	layout.EndEpisode()
	if input.Scroll() != 0 {
		t.Fatalf("expected scroll restored to 0, got %d", input.Scroll())
	}
	if got := input.VisibleContent(); len(got) != 1 || got[0] != "> pattern" {
		t.Fatalf("expected input content visible again, got %q", got)
	}
}

func TestAbortRestoresExclusionMarkers(t *testing.T) {
	layout := surface.New(80, 24, surface.DefaultLineHeight)
	m := session.NewManager(layout, &recordingEngine{})

	layout.BeginEpisode()
	s, err := m.Start(session.Policy{Placement: session.SideRight, Fraction: 0.4}, false)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	panel := s.Panel()
	if !panel.Parameter(session.ParamNoOtherWindow) || !panel.Parameter(session.ParamNoDeleteOther) {
		t.Fatalf("expected exclusion markers set while bound")
	}

	// Two more nested episodes, then a single outer escape.
	layout.BeginEpisode()
	layout.BeginEpisode()
	layout.Abort()

	if !s.Done() {
		t.Fatalf("abort should have unwound to the session's depth")
	}
	if panel.Parameter(session.ParamNoOtherWindow) || panel.Parameter(session.ParamNoDeleteOther) {
		t.Fatalf("expected exclusion markers restored after abort")
	}
	if layout.CurrentDepth() != 0 {
		t.Fatalf("expected depth 0 after abort, got %d", layout.CurrentDepth())
	}
}

func TestRefreshRepublishesRows(t *testing.T) {
	layout := surface.New(80, 40, surface.DefaultLineHeight)
	eng := &recordingEngine{}
	m := session.NewManager(layout, eng)

	layout.BeginEpisode()
	s, err := m.Start(session.Policy{Placement: session.BottomOfFrame, Fraction: 0.5}, false)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	// 0.5 x 40 = 20 rows, 400px -> 18 visible rows.
	if s.Rows() != 18 {
		t.Fatalf("expected 18 rows, got %d", s.Rows())
	}

	layout.SetFrameSize(80, 20)
	s.Refresh()
	// 0.5 x 20 = 10 rows, 200px -> 8 visible rows.
	if s.Rows() != 8 {
		t.Fatalf("expected 8 rows after refresh, got %d", s.Rows())
	}
	if len(eng.rows) != 2 || eng.rows[1] != 8 {
		t.Fatalf("expected republished rows [18 8], got %v", eng.rows)
	}
}
