package domain

import "time"

// Order is a client's shipping request, tied to the transportation that
// fulfills it. ClientID is nullable in legacy data; an order without a
// client is invisible to scoped roles.
type Order struct {
	ID               int64
	TransportationID int64
	ClientID         *int64
	Date             *time.Time
	Status           *string
	Price            *float64

	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
