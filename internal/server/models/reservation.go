package models

import "time"

// DateLayout is the calendar-date format used on both wire surfaces and in
// validation. Reservations carry no time-of-day component.
const DateLayout = "2006-01-02"

// Reservation links one Client and one Chambre over a date range. It owns the
// foreign-key references but not the referenced rows: deleting a reservation
// keeps its client and chambre.
type Reservation struct {
	ID          int64
	Client      *Client
	Chambre     *Chambre
	DateDebut   time.Time
	DateFin     time.Time
	Preferences string
}
