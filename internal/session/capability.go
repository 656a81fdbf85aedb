package session

// Window parameter names the binder toggles and the teardown guard restores.
const (
	ParamNoOtherWindow = "no-other-window"
	ParamNoDeleteOther = "no-delete-other"
)

// Surface is the lifecycle manager's view of one on-screen region. Handles
// may outlive the region they name; every method is safe to call on a dead
// surface and mutations on one are ignored.
type Surface interface {
	ID() string
	Live() bool
	Width() int
	PixelHeight() int

	// SetParameter stores a boolean window parameter and returns the value
	// it replaced.
	SetParameter(name string, value bool) bool
	Parameter(name string) bool

	Scroll() int
	SetScroll(offset int)
	ContentLen() int

	Cursor() int
	SetCursor(col int)
	SetCursorHidden(hidden bool)

	SetTruncate(truncate bool)
	SetSpacer(rows int)

	Release()
}

// Layout is the layout-manager capability the session manager binds against.
//
// Ordering contract: Start completes before the layout delivers the first
// redraw tick for that session; redraw ticks occur zero or more times; exit
// callbacks run after the last tick, once per episode unwound. The layout
// never invokes callbacks concurrently.
type Layout interface {
	// AllocateSurface carves out the panel region described by the policy.
	// At most one allocated surface is live at a time.
	AllocateSurface(policy Policy) (Surface, error)

	// InputSurface returns the surface hosting the original input line.
	InputSurface() Surface

	CurrentDepth() int
	LineHeight() int

	// RegisterRedraw adds a per-tick callback invoked once per visible
	// surface on every redraw cycle. The returned func removes it.
	RegisterRedraw(fn func(Surface)) (cancel func())

	// RegisterExit adds an episode-exit callback. Exit callbacks fire for
	// every exit path, including multi-level aborts, while the closing
	// episode's depth is still current. The returned func removes it.
	RegisterExit(fn func()) (cancel func())
}

// Engine is the completion-engine capability. The session manager publishes
// the derived candidate-list height through ResizeNotify and, while the mode
// is enabled, installs itself as the engine's render target.
type Engine interface {
	ResizeNotify(rows int)
	SetRenderTarget(target RenderTarget)
	RegisterSetupHook(fn func()) (cancel func())
}

// RenderTarget is the strategy the engine renders through instead of the
// input line while a panel session owns the display.
type RenderTarget interface {
	// Rows reports the candidate-list height owned by the active session,
	// or 0 when no session is bound.
	Rows() int
	// Redirected reports whether candidate and count overlays render into
	// the panel rather than the input line.
	Redirected() bool
}
