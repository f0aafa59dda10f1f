package id

import (
	"sync"

	"github.com/google/uuid"
)

// Warner receives a diagnostic when the same raw UUID value is registered
// under two different logical kinds. It is satisfied by *zap.SugaredLogger
// and by the project's logging.Logger; callers that don't care can
// pass nil.
type Warner interface {
	Warnw(msg string, keysAndValues ...interface{})
}

var (
	registryMu sync.Mutex
	registry   = map[uuid.UUID][]string{}
)

// WarnOnReuse records that raw was observed tagged as kind, and reports
// (via w, if non-nil) any other kind the same raw value was previously
// seen under. This is a debug-only diagnostic with no effect on decoding:
// a corrupt or adversarially crafted container can reuse one 128-bit value
// across unrelated fields, and this is the only place that would notice.
func WarnOnReuse(w Warner, raw uuid.UUID, kind string) {
	if raw == uuid.Nil {
		return
	}
	registryMu.Lock()
	seen := append([]string(nil), registry[raw]...)
	alreadyThisKind := false
	for _, k := range seen {
		if k == kind {
			alreadyThisKind = true
		}
	}
	if !alreadyThisKind {
		registry[raw] = append(registry[raw], kind)
	}
	registryMu.Unlock()

	if w == nil {
		return
	}
	for _, other := range seen {
		if other != kind {
			w.Warnw("uuid reused across identifier kinds",
				"uuid", raw.String(), "kind", kind, "other_kind", other)
		}
	}
}

// ResetRegistry clears the reuse-detection registry; intended for tests.
func ResetRegistry() {
	registryMu.Lock()
	registry = map[uuid.UUID][]string{}
	registryMu.Unlock()
}
