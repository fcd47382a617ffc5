package blockingqueue

import (
	"context"

	"github.com/pkg/errors"
)

// ErrCanceled is the cause of a Dequeue error when the context is canceled.
var ErrCanceled = context.Canceled

// ErrDeadlineExceeded is the cause of a Dequeue error when the context deadline expires.
var ErrDeadlineExceeded = context.DeadlineExceeded

// IsContextError reports whether err was caused by context.Canceled or
// context.DeadlineExceeded.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
