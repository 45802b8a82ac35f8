package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Aravinth1228/safehaven/module/core/domain"
	"github.com/Aravinth1228/safehaven/module/core/internal/metrics"
	"github.com/Aravinth1228/safehaven/module/core/internal/repository/database"
	"github.com/Aravinth1228/safehaven/module/core/internal/repository/publisher"
)

// SafetyService runs the monitor against live collaborators: the zone
// registry snapshot, the tourist status store, and the event sink.
type SafetyService struct {
	monitor   *GeofenceMonitor
	zones     database.ZoneRepository
	tourists  database.TouristRepository
	publisher publisher.EventPublisher
}

func NewSafetyService(monitor *GeofenceMonitor, zones database.ZoneRepository, tourists database.TouristRepository, pub publisher.EventPublisher) *SafetyService {
	return &SafetyService{
		monitor:   monitor,
		zones:     zones,
		tourists:  tourists,
		publisher: pub,
	}
}

// ProcessSample evaluates one accepted sample and acts on the result:
// transitions and the alert (if any) are published, and an alert
// escalates the stored status to alert. Publishing is fire-and-forget;
// the first publish error is returned without retry.
func (s *SafetyService) ProcessSample(ctx context.Context, tl *domain.TouristLocation) error {
	zones, err := s.zones.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list active zones: %w", err)
	}

	status, err := s.tourists.GetStatus(ctx, tl.TouristID)
	if err != nil {
		return fmt.Errorf("get status: %w", err)
	}

	start := time.Now()
	ev, err := s.monitor.Evaluate(ctx, tl.TouristID, tl.Location, zones, status)
	metrics.EvaluateDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	for i := range ev.Transitions {
		if err := s.publisher.PublishTransition(ctx, &ev.Transitions[i]); err != nil {
			return fmt.Errorf("publish transition: %w", err)
		}
		metrics.ZoneTransitions.WithLabelValues(string(ev.Transitions[i].Kind)).Inc()
	}

	if ev.Alert != nil {
		if err := s.publisher.PublishAlert(ctx, ev.Alert); err != nil {
			return fmt.Errorf("publish alert: %w", err)
		}
		metrics.AlertsPublished.WithLabelValues(string(ev.Alert.Reason)).Inc()
		if err := s.tourists.SetStatus(ctx, tl.TouristID, domain.StatusAlert); err != nil {
			return fmt.Errorf("escalate status: %w", err)
		}
	}
	return nil
}

// RaiseSOS handles a distress signal: status goes straight to danger and
// an alert is published, bypassing geofence evaluation entirely.
func (s *SafetyService) RaiseSOS(ctx context.Context, tl *domain.TouristLocation) error {
	if err := s.tourists.SetStatus(ctx, tl.TouristID, domain.StatusDanger); err != nil {
		return fmt.Errorf("set status: %w", err)
	}

	alert := &domain.Alert{
		TouristID: tl.TouristID,
		Reason:    domain.AlertReasonSOS,
		Location:  tl.Location,
		Timestamp: tl.Location.Timestamp.Unix(),
	}
	if err := s.publisher.PublishAlert(ctx, alert); err != nil {
		return fmt.Errorf("publish alert: %w", err)
	}
	metrics.AlertsPublished.WithLabelValues(string(domain.AlertReasonSOS)).Inc()
	return nil
}

func (s *SafetyService) GetStatus(ctx context.Context, touristID string) (domain.Status, error) {
	return s.tourists.GetStatus(ctx, touristID)
}

func (s *SafetyService) SetStatus(ctx context.Context, touristID string, status domain.Status) error {
	if !status.Valid() {
		return &domain.ValidationError{Field: "status", Reason: "must be safe, alert or danger"}
	}
	return s.tourists.SetStatus(ctx, touristID, status)
}
