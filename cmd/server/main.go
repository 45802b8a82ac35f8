package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Aravinth1228/safehaven/config"
	"github.com/Aravinth1228/safehaven/migrations"
	core "github.com/Aravinth1228/safehaven/module/core"
)

func main() {
	cfg := config.Load()

	db, err := config.NewPostgres(cfg)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := migrations.Apply(context.Background(), db); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	amqpConn, err := config.NewRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer func() { _ = amqpConn.Close() }()

	mqttClient, err := config.NewMQTT(cfg)
	if err != nil {
		log.Fatalf("mqtt: %v", err)
	}
	defer mqttClient.Disconnect(250)

	redisClient, err := config.NewRedis(cfg)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	coreModule, err := core.Build(db, amqpConn, mqttClient, redisClient)
	if err != nil {
		log.Fatalf("core module: %v", err)
	}

	if cfg.ZoneSeedPath != "" {
		zones, err := config.LoadZoneSeed(cfg.ZoneSeedPath)
		if err != nil {
			log.Fatalf("zone seed: %v", err)
		}
		if err := coreModule.ZoneSvc.Seed(context.Background(), zones); err != nil {
			log.Fatalf("zone seed: %v", err)
		}
	}

	if err := coreModule.StartSubscribers(); err != nil {
		log.Fatalf("start subscribers: %v", err)
	}

	r := gin.Default()

	health := config.NewHealthChecker(db, amqpConn, mqttClient, redisClient)
	health.Register(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	coreModule.RegisterRoutes(&r.RouterGroup)

	log.Printf("listening on :%s", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("server: %v", err)
	}
}
