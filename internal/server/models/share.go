package models

import (
	"encoding/json"
	"time"
)

// Share is a saved itinerary snapshot reachable by an unguessable link.
// Data holds the client's itinerary state verbatim.
type Share struct {
	ID        string          `json:"id"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt"`
}
