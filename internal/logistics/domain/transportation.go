package domain

import "time"

// Transportation is one haul of a cargo by a vehicle between two points.
// Ownership for Driver-role accounts resolves through the vehicle's
// driver assignment.
type Transportation struct {
	ID         int64
	CargoID    int64
	VehicleID  int64
	StartPoint string
	EndPoint   string

	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransportationCompanyLink links a transportation to a participating
// company.
type TransportationCompanyLink struct {
	TransportationID int64
	CompanyID        int64
}
