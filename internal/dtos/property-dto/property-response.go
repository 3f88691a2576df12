package property_dto

import "time"

type SavePropertyResponse struct {
	PropertyID     string    `json:"property_id"`
	PropertyNumber int       `json:"property_number"`
	PropertyName   string    `json:"property_name"`
	Status         string    `json:"status"`
	TaskCreated    bool      `json:"task_created"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type SyncedPriceResponse struct {
	PropertyID   string `json:"property_id"`
	AthomeNumber string `json:"athome_number"`
	OldPrice     int64  `json:"old_price"`
	NewPrice     int64  `json:"new_price"`
}
