package impl

import (
	"strings"
	"time"

	"ewarrants/config"
	"ewarrants/internal/domain/expiry"

	"github.com/pkg/errors"
)

const dateOnlyLayout = "2006-01-02"

// referenceLocation is the zone in which "today" is evaluated.
func referenceLocation(cfg *config.Config) *time.Location {
	if cfg == nil || cfg.Scheduler == nil || cfg.Scheduler.Timezone == "" {
		return time.UTC
	}
	loc, err := cfg.Scheduler.Location()
	if err != nil {
		return time.UTC
	}

	return loc
}

// parseCalendarDate accepts YYYY-MM-DD, taken as is, or an RFC 3339 instant,
// which is mapped to its calendar day in loc.
func parseCalendarDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if d, err := time.Parse(dateOnlyLayout, value); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}

	return expiry.Date(t, loc), nil
}
