package store

import (
	"sync"
	"time"

	"clinic-booking-api/internal/logging"
	"clinic-booking-api/internal/model"
	"clinic-booking-api/internal/notify"
)

// Store keeps appointments in process memory. Everything is lost on
// restart. One Store is built per process and handed to the handlers.
type Store struct {
	mu     sync.Mutex
	appts  []model.Appointment
	lastID int64
	pub    notify.Publisher
	log    logging.Logger
	now    func() time.Time
}

// New returns an empty store. pub may be nil when nobody listens.
func New(pub notify.Publisher, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop{}
	}
	return &Store{pub: pub, log: log, now: time.Now}
}
