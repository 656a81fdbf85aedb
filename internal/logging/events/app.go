package events

import "github.com/nofmysfk/vertico/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Confirm(value string) {
	logging.Trace("app.confirm", map[string]interface{}{"value": value})
}

func (AppTracer) Cancel() {
	logging.Trace("app.cancel", nil)
}

func (AppTracer) Abort(depth int) {
	logging.Trace("app.abort", map[string]interface{}{"depth": depth})
}
