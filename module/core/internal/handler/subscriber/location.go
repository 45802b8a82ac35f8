package subscriber

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Aravinth1228/safehaven/module/core/domain"
	"github.com/Aravinth1228/safehaven/module/core/internal/metrics"
)

const locationTopic = "/safehaven/tourist/+/location"

type trackingService interface {
	SaveSample(ctx context.Context, tl *domain.TouristLocation) error
}

type safetyService interface {
	ProcessSample(ctx context.Context, tl *domain.TouristLocation) error
}

type locationMessage struct {
	TouristID string  `json:"tourist_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

type LocationSubscriber struct {
	client      mqtt.Client
	trackingSvc trackingService
	safetySvc   safetyService
}

func NewLocationSubscriber(client mqtt.Client, trackingSvc trackingService, safetySvc safetyService) *LocationSubscriber {
	return &LocationSubscriber{
		client:      client,
		trackingSvc: trackingSvc,
		safetySvc:   safetySvc,
	}
}

func (s *LocationSubscriber) Start() error {
	token := s.client.Subscribe(locationTopic, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *LocationSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	metrics.SamplesReceived.Inc()

	var raw locationMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		metrics.SamplesRejected.Inc()
		log.Printf("invalid location message: %v", err)
		return
	}

	if err := validateLocationMessage(&raw); err != nil {
		metrics.SamplesRejected.Inc()
		log.Printf("validation error: %v", err)
		return
	}

	tl := &domain.TouristLocation{
		TouristID: raw.TouristID,
		Location: domain.Location{
			Lat:       raw.Latitude,
			Lon:       raw.Longitude,
			Timestamp: time.Unix(raw.Timestamp, 0),
		},
	}

	ctx := context.Background()

	if err := s.trackingSvc.SaveSample(ctx, tl); err != nil {
		log.Printf("save sample error: %v", err)
		return
	}

	if err := s.safetySvc.ProcessSample(ctx, tl); err != nil {
		log.Printf("geofence check error: %v", err)
	}
}

func validateLocationMessage(msg *locationMessage) error {
	if msg.TouristID == "" {
		return fmt.Errorf("tourist_id: required")
	}
	if msg.Latitude < -90 || msg.Latitude > 90 {
		return fmt.Errorf("latitude: must be between -90 and 90")
	}
	if msg.Longitude < -180 || msg.Longitude > 180 {
		return fmt.Errorf("longitude: must be between -180 and 180")
	}
	if msg.Timestamp <= 0 {
		return fmt.Errorf("timestamp: must be positive")
	}
	return nil
}
