package domain

import "time"

// TransportationCompany owns vehicles and participates in transportations.
type TransportationCompany struct {
	ID          int64
	Name        string
	Address     string
	PhoneNumber string

	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
