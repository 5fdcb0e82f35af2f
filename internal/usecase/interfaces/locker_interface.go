package interfaces

import (
	"context"
	"errors"
)

// ErrLockNotAcquired is returned when a document lock could not be taken before
// the wait timeout or the context expired.
var ErrLockNotAcquired = errors.New("lock not acquired")

// IDocumentLocker serializes mutations of a single document across requests and
// processes. The returned release func is safe to call more than once.
type IDocumentLocker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

// IMetricsRecorder counts estimate mutations and lifecycle transitions.
// outcome is a low-cardinality label such as "ok", "rejected" or "error".
type IMetricsRecorder interface {
	ObserveMutation(operation, outcome string)
	ObserveTransition(kind, outcome string)
}
