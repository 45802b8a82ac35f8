package subscriber

import (
	"context"
	"encoding/json"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Aravinth1228/safehaven/module/core/domain"
)

const sosTopic = "/safehaven/tourist/+/sos"

type sosService interface {
	RaiseSOS(ctx context.Context, tl *domain.TouristLocation) error
}

type SOSSubscriber struct {
	client mqtt.Client
	svc    sosService
}

func NewSOSSubscriber(client mqtt.Client, svc sosService) *SOSSubscriber {
	return &SOSSubscriber{client: client, svc: svc}
}

func (s *SOSSubscriber) Start() error {
	token := s.client.Subscribe(sosTopic, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *SOSSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw locationMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.Printf("invalid sos message: %v", err)
		return
	}

	if err := validateLocationMessage(&raw); err != nil {
		log.Printf("sos validation error: %v", err)
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

	if err := s.svc.RaiseSOS(context.Background(), tl); err != nil {
		log.Printf("sos error: %v", err)
	}
}
