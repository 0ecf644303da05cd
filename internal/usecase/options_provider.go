package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"agendamento_cras/internal/domain/entities"
	"agendamento_cras/internal/domain/validation"
	"agendamento_cras/internal/infrastructure/metrics"
	"agendamento_cras/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Lookup names, used as metric labels and cache key prefixes.
const (
	LookupExistingBooking = "existing_booking"
	LookupUnits           = "units"
	LookupAvailability    = "availability"
)

// IOptionsProvider answers the remote lookups the form depends on.
//
// Units and availability are pure functions of their parent key: they are
// cached by key and deduplicated while in flight. The existing-booking lookup
// is never cached.
type IOptionsProvider interface {
	ExistingBooking(ctx context.Context, cpf string) (entities.ExistingBooking, error)
	Units(ctx context.Context, neighborhood string) ([]entities.Unit, error)
	Availability(ctx context.Context, unitCode string) (entities.Availability, error)
}

// OptionsSettings holds the cache lifetimes. A zero TTL disables caching for
// that lookup.
type OptionsSettings struct {
	UnitsTTL        time.Duration
	AvailabilityTTL time.Duration
}

type OptionsProvider struct {
	gateway  interfaces.ISchedulingGateway
	cache    interfaces.ILookupCache
	settings OptionsSettings
	metrics  *metrics.Metrics
	group    singleflight.Group
}

var _ IOptionsProvider = (*OptionsProvider)(nil)

// NewOptionsProvider wraps the gateway. cache and m may be nil.
func NewOptionsProvider(gateway interfaces.ISchedulingGateway, cache interfaces.ILookupCache, settings OptionsSettings, m *metrics.Metrics) *OptionsProvider {
	return &OptionsProvider{gateway: gateway, cache: cache, settings: settings, metrics: m}
}

func (p *OptionsProvider) ExistingBooking(ctx context.Context, cpf string) (entities.ExistingBooking, error) {
	digits := validation.Digits(cpf)
	detached := context.WithoutCancel(ctx)
	v, err, _ := p.group.Do(LookupExistingBooking+":"+digits, func() (any, error) {
		start := time.Now()
		booking, err := p.gateway.GetExistingBooking(detached, digits)
		p.metrics.ObserveLookup(LookupExistingBooking, lookupResult(err), time.Since(start))
		return booking, err
	})
	if err != nil {
		return entities.ExistingBooking{}, err
	}
	return v.(entities.ExistingBooking), nil
}

func (p *OptionsProvider) Units(ctx context.Context, neighborhood string) ([]entities.Unit, error) {
	neighborhood = strings.TrimSpace(neighborhood)
	return cachedLookup(ctx, p, LookupUnits, neighborhood, p.settings.UnitsTTL, func(ctx context.Context) ([]entities.Unit, error) {
		return p.gateway.ListUnits(ctx, neighborhood)
	})
}

func (p *OptionsProvider) Availability(ctx context.Context, unitCode string) (entities.Availability, error) {
	unitCode = strings.TrimSpace(unitCode)
	return cachedLookup(ctx, p, LookupAvailability, unitCode, p.settings.AvailabilityTTL, func(ctx context.Context) (entities.Availability, error) {
		return p.gateway.GetAvailability(ctx, unitCode)
	})
}

// CacheKey is the key a lookup answer is stored under.
func CacheKey(lookup, key string) string {
	return "cras:" + lookup + ":" + strings.ToLower(key)
}

func cachedLookup[T any](ctx context.Context, p *OptionsProvider, lookup, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	cacheKey := CacheKey(lookup, key)
	log := logrus.WithFields(logrus.Fields{"component": "[options][usecase]", "lookup": lookup, "key": key})

	if p.cache != nil && ttl > 0 {
		raw, ok, err := p.cache.Get(ctx, cacheKey)
		switch {
		case err != nil:
			log.WithError(err).Warn("cache read failed")
		case ok:
			var cached T
			if err := json.Unmarshal(raw, &cached); err == nil {
				p.metrics.IncrementCacheHit(lookup)
				return cached, nil
			}
			log.Warn("cache entry undecodable, refetching")
		}
		p.metrics.IncrementCacheMiss(lookup)
	}

	// Joined callers share one fetch, so one caller going away must not fail
	// the others. The gateway client timeout still bounds it.
	detached := context.WithoutCancel(ctx)
	v, err, shared := p.group.Do(cacheKey, func() (any, error) {
		start := time.Now()
		out, err := fetch(detached)
		p.metrics.ObserveLookup(lookup, lookupResult(err), time.Since(start))
		if err != nil {
			return zero, err
		}
		if p.cache != nil && ttl > 0 {
			if raw, err := json.Marshal(out); err == nil {
				if err := p.cache.Set(detached, cacheKey, raw, ttl); err != nil {
					log.WithError(err).Warn("cache write failed")
				}
			}
		}
		return out, nil
	})
	if err != nil {
		return zero, err
	}
	if shared {
		log.Debug("lookup shared with in-flight request")
	}
	return v.(T), nil
}

func lookupResult(err error) string {
	var remote *interfaces.RemoteError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, interfaces.ErrNoExistingBooking):
		return "not_found"
	case errors.As(err, &remote):
		return "remote_error"
	default:
		return "error"
	}
}
