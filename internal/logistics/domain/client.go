// Package domain defines the logistics entities: clients, drivers,
// vehicles, cargos, orders, transportations, and transportation companies.
// Every entity is soft-deleted: rows are flagged with a deletion timestamp
// and can be restored, never hard-deleted.
package domain

import "time"

// Client is a customer that places orders. A user account with the User
// role links to exactly one client; that link scopes everything the
// account can see.
type Client struct {
	ID      int64
	Name    string
	Surname string
	Phone   string
	Email   string
	Address string

	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
