package events

import "github.com/nofmysfk/vertico/internal/logging"

type SyncTracer struct{}

var Sync = SyncTracer{}

func (SyncTracer) Tick(surfaceID string, truncate bool, scroll int) {
	logging.Trace("sync.tick", map[string]interface{}{
		"surface":  surfaceID,
		"truncate": truncate,
		"scroll":   scroll,
	})
}
