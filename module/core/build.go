package core

import (
	"database/sql"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	goredis "github.com/redis/go-redis/v9"

	handler "github.com/Aravinth1228/safehaven/module/core/internal/handler/http"
	"github.com/Aravinth1228/safehaven/module/core/internal/handler/subscriber"
	"github.com/Aravinth1228/safehaven/module/core/internal/repository/database/postgres"
	"github.com/Aravinth1228/safehaven/module/core/internal/repository/membership"
	"github.com/Aravinth1228/safehaven/module/core/internal/repository/membership/mem"
	memredis "github.com/Aravinth1228/safehaven/module/core/internal/repository/membership/redis"
	"github.com/Aravinth1228/safehaven/module/core/internal/repository/publisher/rabbitmq"
	"github.com/Aravinth1228/safehaven/module/core/service"
)

type Module struct {
	TrackingSvc *service.TrackingService
	SafetySvc   *service.SafetyService
	ZoneSvc     *service.ZoneService

	touristHandler *handler.TouristHandler
	zoneHandler    *handler.ZoneHandler
	locationSub    *subscriber.LocationSubscriber
	sosSub         *subscriber.SOSSubscriber
}

// Build wires the core module. A nil redisClient selects the in-process
// membership store; pass a client to share membership state between
// server instances.
func Build(db *sql.DB, amqpConn *amqp.Connection, mqttClient mqtt.Client, redisClient *goredis.Client) (*Module, error) {
	locationRepo := postgres.NewLocationRepo(db)
	zoneRepo := postgres.NewZoneRepo(db)
	touristRepo := postgres.NewTouristRepo(db)

	var store membership.Store
	if redisClient != nil {
		store = memredis.NewStore(redisClient)
	} else {
		store = mem.NewStore()
	}

	eventPub, err := rabbitmq.NewEventPublisher(amqpConn)
	if err != nil {
		return nil, fmt.Errorf("event publisher: %w", err)
	}

	monitor := service.NewGeofenceMonitor(store)
	trackingSvc := service.NewTrackingService(locationRepo, touristRepo)
	safetySvc := service.NewSafetyService(monitor, zoneRepo, touristRepo, eventPub)
	zoneSvc := service.NewZoneService(zoneRepo)

	return &Module{
		TrackingSvc:    trackingSvc,
		SafetySvc:      safetySvc,
		ZoneSvc:        zoneSvc,
		touristHandler: handler.NewTouristHandler(trackingSvc, safetySvc),
		zoneHandler:    handler.NewZoneHandler(zoneSvc),
		locationSub:    subscriber.NewLocationSubscriber(mqttClient, trackingSvc, safetySvc),
		sosSub:         subscriber.NewSOSSubscriber(mqttClient, safetySvc),
	}, nil
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.touristHandler.Register(r)
	m.zoneHandler.Register(r)
}

func (m *Module) StartSubscribers() error {
	if err := m.locationSub.Start(); err != nil {
		return fmt.Errorf("location subscriber: %w", err)
	}
	if err := m.sosSub.Start(); err != nil {
		return fmt.Errorf("sos subscriber: %w", err)
	}
	return nil
}
