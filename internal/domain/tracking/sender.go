package tracking

import "context"

// Sender delivers position reports to the tracking backend.
type Sender interface {
	Send(ctx context.Context, report Report) error
}
