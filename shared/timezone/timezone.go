package timezone

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	mu          sync.RWMutex
	appLocation = time.UTC
)

// Init loads the IANA zone used for every timestamp the service produces.
// An empty or unknown name keeps UTC.
func Init(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return
	}

	mu.Lock()
	appLocation = loc
	mu.Unlock()

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

func GetLocation() *time.Location {
	mu.RLock()
	defer mu.RUnlock()

	return appLocation
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
