package releases

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tdl-project/tdl/internal/ports"
	"github.com/tdl-project/tdl/internal/storage"
)

// TTL is how long a cached release entry stays fresh. Remote lookups
// are rate-limited and slow; a day of staleness is acceptable for
// "is there a newer version" answers.
const TTL = 24 * time.Hour

// Clock supplies the current time. Production uses SystemClock; tests
// inject a fixed instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Cache is the cache-aside orchestrator in front of a Source. Results,
// including the authoritative "no latest release" answer, are persisted
// in the object store under the port's cache key and served until they
// age past TTL.
type Cache struct {
	source Source
	store  *storage.Store
	clock  Clock
}

// NewCache wires a cache over the given source and store. A nil clock
// defaults to the system clock.
func NewCache(source Source, store *storage.Store, clock Clock) *Cache {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Cache{source: source, store: store, clock: clock}
}

// LatestRelease returns the latest release of the port, from cache when
// fresh, otherwise from the source.
//
// A fresh negative entry, or a source answer of NoReleaseError, yields
// a NoReleaseError; the negative answer is cached so the source is not
// re-queried for a port that structurally has no "latest" marker.
// Transport and parse failures are returned as-is and never cached.
func (c *Cache) LatestRelease(port ports.Port) (Release, error) {
	key := port.CacheKey()

	var cached Cached
	err := c.store.Get(key, &cached)
	switch {
	case err == nil:
		age := c.clock.Now().Sub(cached.FetchedAt)
		if age < TTL {
			log.Debug().Str("key", key).Dur("age", age).Msg("serving cached release")
			if cached.Release.IsAbsent() {
				return Release{}, &NoReleaseError{Port: port}
			}
			return cached.Release, nil
		}
		log.Debug().Str("key", key).Dur("age", age).Msg("cached release is stale")
		if err := c.store.Delete(key); err != nil {
			return Release{}, err
		}
	case errors.Is(err, storage.ErrNotFound):
		// Cache miss, fall through to the source.
	default:
		return Release{}, err
	}

	release, err := c.source.LatestRelease(port)
	if err != nil {
		var noRelease *NoReleaseError
		if errors.As(err, &noRelease) {
			// Memoize the absence, then surface the real error.
			entry := Cached{Release: absentRelease(port), FetchedAt: c.clock.Now()}
			if saveErr := c.store.Save(key, &entry); saveErr != nil {
				return Release{}, saveErr
			}
			return Release{}, err
		}
		return Release{}, err
	}

	entry := Cached{Release: release, FetchedAt: c.clock.Now()}
	if err := c.store.Save(key, &entry); err != nil {
		return Release{}, err
	}
	return release, nil
}
