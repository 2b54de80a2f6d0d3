package domain

import "time"

// Driver operates vehicles. A user account with the Driver role links to
// exactly one driver record.
type Driver struct {
	ID            int64
	FirstName     string
	LastName      string
	LicenseNumber string
	PhoneNumber   string

	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
