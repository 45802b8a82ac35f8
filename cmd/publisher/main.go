package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type locationMessage struct {
	TouristID string  `json:"tourist_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// Default danger zone used by the mock walk; matches the sample entry
// in zones.example.yaml.
const (
	zoneLat = 15.2993
	zoneLon = 74.1240
)

func randomTouristID() string {
	return fmt.Sprintf("T-%06d", rand.Intn(1000000))
}

func randomLat() float64 {
	return -90 + rand.Float64()*180
}

func randomLon() float64 {
	return -180 + rand.Float64()*360
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <interval_seconds>\n", os.Args[0])
		os.Exit(1)
	}

	intervalSec, err := strconv.Atoi(os.Args[1])
	if err != nil || intervalSec <= 0 {
		fmt.Fprintf(os.Stderr, "error: interval must be a positive integer\n")
		os.Exit(1)
	}

	broker := "tcp://localhost:1883"
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		broker = v
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("safehaven-mock-publisher")

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("mqtt connect: %v", token.Error())
	}
	defer client.Disconnect(250)

	touristPool := make([]string, 5)
	for i := range touristPool {
		touristPool[i] = randomTouristID()
	}

	log.Printf("connected to %s, publishing every %ds...", broker, intervalSec)
	log.Printf("tourist pool: %v", touristPool)

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		tid := touristPool[rand.Intn(len(touristPool))]

		// 5% chance to signal distress instead of a position update
		if rand.Float64() < 0.05 {
			publish(client, tid, "sos", zoneLat, zoneLon)
			continue
		}

		var lat, lon float64
		// 30% chance to wander near the danger zone
		if rand.Float64() < 0.3 {
			lat = zoneLat + (rand.Float64()-0.5)*0.0005 // ~50m drift
			lon = zoneLon + (rand.Float64()-0.5)*0.0005
		} else {
			lat = randomLat()
			lon = randomLon()
		}

		publish(client, tid, "location", lat, lon)
	}
}

func publish(client mqtt.Client, touristID, kind string, lat, lon float64) {
	msg := locationMessage{
		TouristID: touristID,
		Latitude:  lat,
		Longitude: lon,
		Timestamp: time.Now().Unix(),
	}

	payload, _ := json.Marshal(msg)
	topic := fmt.Sprintf("/safehaven/tourist/%s/%s", touristID, kind)

	token := client.Publish(topic, 1, false, payload)
	token.Wait()

	log.Printf("published to %s: %s", topic, payload)
}
