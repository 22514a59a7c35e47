// Package timezone pins wall-clock time to the zone named by APP_TIMEZONE.
// Stay dates are calendar days and never pass through here; only audit and
// expiry timestamps do.
package timezone

import (
	"fmt"
	"sync"
	"time"

	"luna/config"

	"github.com/rs/zerolog/log"
)

var (
	location = time.UTC
	once     sync.Once
)

// Load resolves an IANA zone name such as "Africa/Lagos". An empty name is UTC.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}

	return loc, nil
}

// Location returns the configured zone, falling back to UTC when the name
// cannot be resolved.
func Location() *time.Location {
	once.Do(func() {
		name := config.Get().App.Timezone

		loc, err := Load(name)
		if err != nil {
			log.Error().Err(err).Msg("Falling back to UTC")

			return
		}

		location = loc

		log.Debug().Str("timezone", loc.String()).Msg("Application timezone set")
	})

	return location
}

func Now() time.Time {
	return time.Now().In(Location())
}

func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
