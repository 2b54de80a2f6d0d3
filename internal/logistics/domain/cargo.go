package domain

import "time"

// Cargo is a shippable load. Cargos attach to orders through a link table;
// a cargo is owned by a client exactly when at least one non-deleted order
// of that client carries it.
type Cargo struct {
	ID          int64
	Weight      string
	Dimensions  string
	Description string

	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CargoOrder links a cargo to an order.
type CargoOrder struct {
	CargoID int64
	OrderID int64
}
