package domain

import "time"

// TravelRecord is a saved trip belonging to a single user. Records are
// append-only: they are never mutated or deleted once written.
type TravelRecord struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"user_id" bson:"user_id"`
	Destination string    `json:"destination" bson:"destination"`
	Budget      float64   `json:"budget" bson:"budget"`
	Nights      int       `json:"nights" bson:"nights"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Place is a single point of interest returned by the places gateway.
type Place struct {
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Rating   float64 `json:"rating"`
	PhotoURL string  `json:"photo_url,omitempty"`
}
