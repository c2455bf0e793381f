// Package catalog provides cached access to the NordVPN country and
// server-group lists.
//
// Reads go to the cache first and fall back to the client on a miss;
// successful fetches are sorted once and cached. Invalidate clears the
// cache after connect/disconnect so stale lists never survive a network
// state change.
package catalog

import (
	"context"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rshade/nordmenu/internal/cache"
	"github.com/rshade/nordmenu/internal/logging"
	"github.com/rshade/nordmenu/internal/nordvpn"
)

// Cache keys for the two lists this service manages.
const (
	KeyCountries = "countries"
	KeyGroups    = "groups"
)

// Service serves country and group lists, cache-first.
// Each Service owns its store; nothing here is shared process state.
type Service struct {
	client   *nordvpn.Client
	store    *cache.Store
	collator *collate.Collator
}

// NewService creates a catalog service over the given client and store.
func NewService(client *nordvpn.Client, store *cache.Store) *Service {
	return &Service{
		client:   client,
		store:    store,
		collator: collate.New(language.English, collate.IgnoreCase),
	}
}

// Countries returns the sorted country list, from cache when fresh.
func (s *Service) Countries(ctx context.Context) ([]string, error) {
	return s.cached(ctx, KeyCountries, s.client.Countries)
}

// Groups returns the sorted connectable group list (location groups
// excluded), from cache when fresh.
func (s *Service) Groups(ctx context.Context) ([]string, error) {
	return s.cached(ctx, KeyGroups, s.client.Groups)
}

// Invalidate clears all cached lists. Call after any operation that
// changes connection state.
func (s *Service) Invalidate() {
	s.store.Clear()
}

// cached implements the cache-first read path: serve a valid entry,
// otherwise fetch, sort, populate, and return.
func (s *Service) cached(
	ctx context.Context,
	key string,
	fetch func(context.Context) ([]string, error),
) ([]string, error) {
	log := logging.FromContext(ctx)

	if entry, err := s.store.GetEntry(key); err == nil {
		values := make([]string, len(entry.Values))
		copy(values, entry.Values)
		log.Debug().
			Ctx(ctx).
			Str("component", "catalog").
			Str("key", key).
			Int("count", len(values)).
			Str("age", cache.FormatDuration(entry.Age())).
			Msg("serving cached list")
		return values, nil
	}

	values, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.collator.SortStrings(values)

	if setErr := s.store.Set(key, values); setErr != nil {
		log.Warn().
			Ctx(ctx).
			Str("component", "catalog").
			Str("key", key).
			Err(setErr).
			Msg("could not cache list")
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "catalog").
		Str("key", key).
		Int("count", len(values)).
		Msg("fetched list from client")

	return values, nil
}

// Display converts a client identifier like "United_States" into its
// user-facing form "United States".
func Display(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
