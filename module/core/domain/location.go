package domain

import "time"

type Location struct {
	Lat       float64   `json:"latitude"`
	Lon       float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

type TouristLocation struct {
	TouristID string   `json:"tourist_id"`
	Location  Location `json:"location"`
}

type HistoryQuery struct {
	TouristID string
	Start     time.Time
	End       time.Time
}
