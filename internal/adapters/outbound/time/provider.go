package time

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider reads the wall clock in a fixed location.
type CurrentTimeProvider struct {
	location *time.Location
}

// NewCurrentTimeProvider creates a CurrentTimeProvider reporting times in loc.
// A nil loc means UTC.
func NewCurrentTimeProvider(loc *time.Location) CurrentTimeProvider {
	if loc == nil {
		loc = time.UTC
	}
	return CurrentTimeProvider{location: loc}
}

// Now returns the current time in the provider's location.
func (ts CurrentTimeProvider) Now() time.Time {
	loc := ts.location
	if loc == nil {
		loc = time.UTC
	}
	return time.Now().In(loc)
}

// InitCurrentTimeProvider registers the domain.CurrentTimeProvider used to stamp
// solve model descriptors, outbox events and connection test timings.
type InitCurrentTimeProvider struct {
	TimeZone string `config:"TIME_ZONE" default:"UTC"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	loc, err := time.LoadLocation(its.TimeZone)
	if err != nil {
		return ctx, fmt.Errorf("invalid TIME_ZONE %q: %w", its.TimeZone, err)
	}
	depend.Register[domain.CurrentTimeProvider](NewCurrentTimeProvider(loc))
	return ctx, nil
}
