package service

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/Aravinth1228/safehaven/module/core/domain"
	"github.com/Aravinth1228/safehaven/module/core/internal/repository/membership"
)

const earthRadiusMeters = 6371000

// GeofenceMonitor evaluates position samples against circular zones and
// emits one transition per (tourist, zone) containment flip. The only
// state it owns is the membership store; zones and statuses are supplied
// by the caller on every call.
//
// Samples are processed in arrival order with no reordering: a delayed
// sample overwrites membership state with whatever it observes.
type GeofenceMonitor struct {
	store membership.Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGeofenceMonitor(store membership.Store) *GeofenceMonitor {
	return &GeofenceMonitor{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// touristLock serializes evaluations per tourist. Without it, two
// concurrent samples for the same tourist could both read stale prior
// state and double-fire a transition.
func (m *GeofenceMonitor) touristLock(touristID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[touristID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[touristID] = l
	}
	return l
}

// Evaluate checks one sample against a zone snapshot. Transitions come
// back in the snapshot's order. At most one alert is produced per call:
// the first zone entered, and only when priorStatus is the safe
// baseline. Validation and store failures leave the membership store
// untouched, so a failed call can always be retried.
func (m *GeofenceMonitor) Evaluate(ctx context.Context, touristID string, loc domain.Location, zones []domain.Zone, priorStatus domain.Status) (*domain.Evaluation, error) {
	if loc.Lat < -90 || loc.Lat > 90 {
		return nil, &domain.ValidationError{Field: "latitude", Reason: "must be between -90 and 90"}
	}
	if loc.Lon < -180 || loc.Lon > 180 {
		return nil, &domain.ValidationError{Field: "longitude", Reason: "must be between -180 and 180"}
	}
	for _, z := range zones {
		if z.RadiusMeters <= 0 {
			return nil, &domain.ValidationError{Field: "radius_meters", Reason: fmt.Sprintf("zone %s: must be positive", z.ID)}
		}
	}

	lock := m.touristLock(touristID)
	lock.Lock()
	defer lock.Unlock()

	// Read pass: no writes happen until every prior state has been read,
	// so a store error here leaves the membership table untouched and a
	// retry re-observes every flip.
	type flip struct {
		zone   domain.Zone
		inside bool
	}
	var flips []flip
	for _, z := range zones {
		dist := haversine(loc.Lat, loc.Lon, z.Lat, z.Lon)
		inside := dist <= z.RadiusMeters

		prior, err := m.store.Get(ctx, touristID, z.ID)
		if err != nil {
			return nil, err
		}
		if inside == prior {
			continue
		}
		flips = append(flips, flip{zone: z, inside: inside})
	}

	// Commit pass. A failed write unwinds the flips already committed in
	// this call: either every flip is persisted and emitted, or none is.
	for i, f := range flips {
		if err := m.store.Set(ctx, touristID, f.zone.ID, f.inside); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = m.store.Set(ctx, touristID, flips[j].zone.ID, !flips[j].inside)
			}
			return nil, err
		}
	}

	ev := &domain.Evaluation{}
	for _, f := range flips {
		kind := domain.TransitionLeft
		if f.inside {
			kind = domain.TransitionEntered
		}
		ev.Transitions = append(ev.Transitions, domain.Transition{
			TouristID: touristID,
			ZoneID:    f.zone.ID,
			ZoneName:  f.zone.Name,
			Kind:      kind,
			Severity:  f.zone.Severity,
			Location:  loc,
			Timestamp: loc.Timestamp.Unix(),
		})

		if f.inside && ev.Alert == nil && priorStatus == domain.StatusSafe {
			ev.Alert = &domain.Alert{
				TouristID: touristID,
				Reason:    domain.AlertReasonZoneEntry,
				ZoneID:    f.zone.ID,
				ZoneName:  f.zone.Name,
				Severity:  f.zone.Severity,
				Location:  loc,
				Timestamp: loc.Timestamp.Unix(),
			}
		}
	}
	return ev, nil
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
