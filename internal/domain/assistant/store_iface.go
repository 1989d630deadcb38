package assistant

import (
	"context"
	"time"

	"hrconsole/internal/domain/directory"
	"hrconsole/internal/domain/leave"
)

// TextGenerator is the external text-generation capability. Implementations
// return the raw model output.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt Prompt) (string, error)
}

// Cache stores generator output keyed by prompt hash.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type Store interface {
	Employees(ctx context.Context) ([]directory.Employee, error)
	LeaveRequests(ctx context.Context) ([]leave.Request, error)
}
