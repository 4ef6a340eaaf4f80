package domain

import "time"

// CurrentTimeProvider supplies the timestamps of solve model descriptors,
// outbox events and connection test timings.
type CurrentTimeProvider interface {
	Now() time.Time
}
