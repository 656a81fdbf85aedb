package events

import "github.com/nofmysfk/vertico/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Cursor(index int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": index})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (FilterTracer) Query(query string, matched, total int) {
	logging.Trace("filter.query", map[string]interface{}{
		"query":   query,
		"matched": matched,
		"total":   total,
	})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}
