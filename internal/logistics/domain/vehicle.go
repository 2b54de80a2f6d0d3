package domain

import "time"

// Vehicle belongs to a transportation company and is assigned to a driver.
// The driver assignment is what makes a vehicle visible to a Driver-role
// account.
type Vehicle struct {
	ID            int64
	CompanyID     int64
	DriverID      int64
	Type          string
	Capacity      string
	VehicleNumber string

	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
