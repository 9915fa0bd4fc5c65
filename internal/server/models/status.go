package models

import "time"

// StatusCheck is a liveness-probe record with no relationships to other
// entities.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
