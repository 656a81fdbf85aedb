package events

import "github.com/nofmysfk/vertico/internal/logging"

type SessionTracer struct{}

type TeardownTracer struct{}

var (
	Session  = SessionTracer{}
	Teardown = TeardownTracer{}
)

func (SessionTracer) Start(placement string, depth, rows int, hideInput bool) {
	logging.Trace("session.start", map[string]interface{}{
		"placement": placement,
		"depth":     depth,
		"rows":      rows,
		"hideInput": hideInput,
	})
}

func (SessionTracer) Bind(surfaceID string) {
	logging.Trace("session.bind", map[string]interface{}{"surface": surfaceID})
}

func (SessionTracer) Resize(rows int) {
	logging.Trace("session.resize", map[string]interface{}{"rows": rows})
}

func (SessionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("session.error", map[string]interface{}{"error": err.Error()})
}

func (TeardownTracer) Run(surfaceID string, depth int) {
	logging.Trace("teardown.run", map[string]interface{}{"surface": surfaceID, "depth": depth})
}

func (TeardownTracer) Skip(captured, current int) {
	logging.Trace("teardown.skip", map[string]interface{}{"captured": captured, "current": current})
}

func (TeardownTracer) Stale(surfaceID string) {
	logging.Trace("teardown.stale", map[string]interface{}{"surface": surfaceID})
}
