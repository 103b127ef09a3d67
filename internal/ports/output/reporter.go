package output

import (
	"context"

	"fmpa/internal/domain"
)

// ErrorReporter forwards unexpected failures to an error tracker.
type ErrorReporter interface {
	Report(ctx context.Context, err error, actor *domain.Actor)
}
