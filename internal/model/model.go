package model

import (
	"encoding/json"
	"time"
)

// Provider is a doctor listed in the public catalog.
type Provider struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Specialty   string `json:"specialty" yaml:"specialty"`
	Image       string `json:"image" yaml:"image"`
	Description string `json:"description" yaml:"description"`
	Available   bool   `json:"available" yaml:"available"`
}

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// keys owned by the server, never taken from the booking body
var systemKeys = map[string]bool{"id": true, "status": true, "createdAt": true}

// Appointment is a booking. Fields holds whatever the caller sent
// (doctor, fullName, email, phone, date, ...) minus the system keys.
type Appointment struct {
	ID        int64
	Fields    map[string]any
	Status    string
	CreatedAt time.Time
}

// BookingFields copies raw without the server-owned keys.
func BookingFields(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		if systemKeys[k] {
			continue
		}
		out[k] = v
	}
	return out
}

// MarshalJSON renders the appointment as one flat object.
func (a Appointment) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(a.Fields)+3)
	for k, v := range a.Fields {
		m[k] = v
	}
	m["id"] = a.ID
	m["status"] = a.Status
	m["createdAt"] = a.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	return json.Marshal(m)
}
