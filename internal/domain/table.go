package domain

import "time"

const (
	TableStatusAvailable = "available"
	TableStatusOccupied  = "occupied"
	TableStatusReserved  = "reserved"
)

type Table struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Seats     int       `json:"seats"`
	Location  string    `json:"location,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
