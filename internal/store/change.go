package store

import (
	"clinic-booking-api/internal/model"
	"clinic-booking-api/internal/notify"
)

// EventAppointmentUpdated is the event name every store mutation is
// published under.
const EventAppointmentUpdated = "appointmentUpdated"

const (
	ChangeNew           = "new"
	ChangeDeleted       = "deleted"
	ChangeCleared       = "cleared"
	ChangeStatusUpdated = "statusUpdated"
)

// Change is the payload of an appointmentUpdated event. Which of the
// optional fields is set depends on Type.
type Change struct {
	Type          string             `json:"type"`
	Appointment   *model.Appointment `json:"appointment,omitempty"`
	AppointmentID int64              `json:"appointmentId,omitempty"`
	DeletedCount  *int               `json:"deletedCount,omitempty"`
	Status        string             `json:"status,omitempty"`
}

func (s *Store) publish(c Change) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(notify.Event{Name: EventAppointmentUpdated, Data: c})
}
