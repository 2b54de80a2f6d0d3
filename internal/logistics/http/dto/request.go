// Package dto provides data transfer objects for logistics HTTP request
// and response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	customValidation "github.com/cargoconnect/api/internal/validation"
)

// ClientRequest carries a client payload for create and update.
type ClientRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Validate checks if the client request is valid.
func (r *ClientRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Surname,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Phone,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// DriverRequest carries a driver payload for create and update.
type DriverRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	LicenseNumber string `json:"license_number"`
	PhoneNumber   string `json:"phone_number"`
}

// Validate checks if the driver request is valid.
func (r *DriverRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.LastName,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.LicenseNumber,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// VehicleRequest carries a vehicle payload for create and update.
type VehicleRequest struct {
	CompanyID     int64  `json:"company_id"`
	DriverID      int64  `json:"driver_id"`
	Type          string `json:"type"`
	Capacity      string `json:"capacity"`
	VehicleNumber string `json:"vehicle_number"`
}

// Validate checks if the vehicle request is valid.
func (r *VehicleRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CompanyID,
			validation.Required,
			validation.Min(int64(1)),
		),
		validation.Field(&r.DriverID,
			validation.Required,
			validation.Min(int64(1)),
		),
		validation.Field(&r.Type,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.VehicleNumber,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// CargoRequest carries a cargo payload for create and update.
type CargoRequest struct {
	Weight      string `json:"weight"`
	Dimensions  string `json:"dimensions"`
	Description string `json:"description"`
}

// Validate checks if the cargo request is valid.
func (r *CargoRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Weight,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Dimensions,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// OrderRequest carries an order payload for create and update. ClientID is
// optional; for ownership-scoped callers it is overridden with their own
// client regardless of the payload.
type OrderRequest struct {
	TransportationID int64      `json:"transportation_id"`
	ClientID         *int64     `json:"client_id"`
	Date             *time.Time `json:"date"`
	Status           *string    `json:"status"`
	Price            *float64   `json:"price"`
}

// Validate checks if the order request is valid.
func (r *OrderRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TransportationID,
			validation.Required,
			validation.Min(int64(1)),
		),
		validation.Field(&r.ClientID,
			validation.Min(int64(1)),
		),
		validation.Field(&r.Price,
			validation.Min(float64(0)),
		),
	)
}

// TransportationRequest carries a transportation payload for create and update.
type TransportationRequest struct {
	CargoID    int64  `json:"cargo_id"`
	VehicleID  int64  `json:"vehicle_id"`
	StartPoint string `json:"start_point"`
	EndPoint   string `json:"end_point"`
}

// Validate checks if the transportation request is valid.
func (r *TransportationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CargoID,
			validation.Required,
			validation.Min(int64(1)),
		),
		validation.Field(&r.VehicleID,
			validation.Required,
			validation.Min(int64(1)),
		),
		validation.Field(&r.StartPoint,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.EndPoint,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// CompanyRequest carries a transportation company payload for create and update.
type CompanyRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

// Validate checks if the company request is valid.
func (r *CompanyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
