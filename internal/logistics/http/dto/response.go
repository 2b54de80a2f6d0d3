package dto

import (
	"time"

	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

// ClientResponse is the API representation of a client.
type ClientResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Surname   string     `json:"surname"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Address   string     `json:"address"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// MapClientToResponse converts a client to its API representation.
func MapClientToResponse(client *logisticsDomain.Client) *ClientResponse {
	return &ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Surname:   client.Surname,
		Phone:     client.Phone,
		Email:     client.Email,
		Address:   client.Address,
		IsDeleted: client.IsDeleted,
		DeletedAt: client.DeletedAt,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

// MapClientsToResponse converts a client list to its API representation.
func MapClientsToResponse(clients []*logisticsDomain.Client) []*ClientResponse {
	responses := make([]*ClientResponse, 0, len(clients))
	for _, client := range clients {
		responses = append(responses, MapClientToResponse(client))
	}
	return responses
}

// DriverResponse is the API representation of a driver.
type DriverResponse struct {
	ID            int64      `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	LicenseNumber string     `json:"license_number"`
	PhoneNumber   string     `json:"phone_number"`
	IsDeleted     bool       `json:"is_deleted"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// MapDriverToResponse converts a driver to its API representation.
func MapDriverToResponse(driver *logisticsDomain.Driver) *DriverResponse {
	return &DriverResponse{
		ID:            driver.ID,
		FirstName:     driver.FirstName,
		LastName:      driver.LastName,
		LicenseNumber: driver.LicenseNumber,
		PhoneNumber:   driver.PhoneNumber,
		IsDeleted:     driver.IsDeleted,
		DeletedAt:     driver.DeletedAt,
		CreatedAt:     driver.CreatedAt,
		UpdatedAt:     driver.UpdatedAt,
	}
}

// MapDriversToResponse converts a driver list to its API representation.
func MapDriversToResponse(drivers []*logisticsDomain.Driver) []*DriverResponse {
	responses := make([]*DriverResponse, 0, len(drivers))
	for _, driver := range drivers {
		responses = append(responses, MapDriverToResponse(driver))
	}
	return responses
}

// VehicleResponse is the API representation of a vehicle.
type VehicleResponse struct {
	ID            int64      `json:"id"`
	CompanyID     int64      `json:"company_id"`
	DriverID      int64      `json:"driver_id"`
	Type          string     `json:"type"`
	Capacity      string     `json:"capacity"`
	VehicleNumber string     `json:"vehicle_number"`
	IsDeleted     bool       `json:"is_deleted"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// MapVehicleToResponse converts a vehicle to its API representation.
func MapVehicleToResponse(vehicle *logisticsDomain.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:            vehicle.ID,
		CompanyID:     vehicle.CompanyID,
		DriverID:      vehicle.DriverID,
		Type:          vehicle.Type,
		Capacity:      vehicle.Capacity,
		VehicleNumber: vehicle.VehicleNumber,
		IsDeleted:     vehicle.IsDeleted,
		DeletedAt:     vehicle.DeletedAt,
		CreatedAt:     vehicle.CreatedAt,
		UpdatedAt:     vehicle.UpdatedAt,
	}
}

// MapVehiclesToResponse converts a vehicle list to its API representation.
func MapVehiclesToResponse(vehicles []*logisticsDomain.Vehicle) []*VehicleResponse {
	responses := make([]*VehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		responses = append(responses, MapVehicleToResponse(vehicle))
	}
	return responses
}

// CargoResponse is the API representation of a cargo.
type CargoResponse struct {
	ID          int64      `json:"id"`
	Weight      string     `json:"weight"`
	Dimensions  string     `json:"dimensions"`
	Description string     `json:"description"`
	IsDeleted   bool       `json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MapCargoToResponse converts a cargo to its API representation.
func MapCargoToResponse(cargo *logisticsDomain.Cargo) *CargoResponse {
	return &CargoResponse{
		ID:          cargo.ID,
		Weight:      cargo.Weight,
		Dimensions:  cargo.Dimensions,
		Description: cargo.Description,
		IsDeleted:   cargo.IsDeleted,
		DeletedAt:   cargo.DeletedAt,
		CreatedAt:   cargo.CreatedAt,
		UpdatedAt:   cargo.UpdatedAt,
	}
}

// MapCargosToResponse converts a cargo list to its API representation.
func MapCargosToResponse(cargos []*logisticsDomain.Cargo) []*CargoResponse {
	responses := make([]*CargoResponse, 0, len(cargos))
	for _, cargo := range cargos {
		responses = append(responses, MapCargoToResponse(cargo))
	}
	return responses
}

// OrderResponse is the API representation of an order.
type OrderResponse struct {
	ID               int64      `json:"id"`
	TransportationID int64      `json:"transportation_id"`
	ClientID         *int64     `json:"client_id,omitempty"`
	Date             *time.Time `json:"date,omitempty"`
	Status           *string    `json:"status,omitempty"`
	Price            *float64   `json:"price,omitempty"`
	IsDeleted        bool       `json:"is_deleted"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// MapOrderToResponse converts an order to its API representation.
func MapOrderToResponse(order *logisticsDomain.Order) *OrderResponse {
	return &OrderResponse{
		ID:               order.ID,
		TransportationID: order.TransportationID,
		ClientID:         order.ClientID,
		Date:             order.Date,
		Status:           order.Status,
		Price:            order.Price,
		IsDeleted:        order.IsDeleted,
		DeletedAt:        order.DeletedAt,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}

// MapOrdersToResponse converts an order list to its API representation.
func MapOrdersToResponse(orders []*logisticsDomain.Order) []*OrderResponse {
	responses := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, MapOrderToResponse(order))
	}
	return responses
}

// TransportationResponse is the API representation of a transportation.
type TransportationResponse struct {
	ID         int64      `json:"id"`
	CargoID    int64      `json:"cargo_id"`
	VehicleID  int64      `json:"vehicle_id"`
	StartPoint string     `json:"start_point"`
	EndPoint   string     `json:"end_point"`
	IsDeleted  bool       `json:"is_deleted"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// MapTransportationToResponse converts a transportation to its API representation.
func MapTransportationToResponse(transportation *logisticsDomain.Transportation) *TransportationResponse {
	return &TransportationResponse{
		ID:         transportation.ID,
		CargoID:    transportation.CargoID,
		VehicleID:  transportation.VehicleID,
		StartPoint: transportation.StartPoint,
		EndPoint:   transportation.EndPoint,
		IsDeleted:  transportation.IsDeleted,
		DeletedAt:  transportation.DeletedAt,
		CreatedAt:  transportation.CreatedAt,
		UpdatedAt:  transportation.UpdatedAt,
	}
}

// MapTransportationsToResponse converts a transportation list to its API representation.
func MapTransportationsToResponse(transportations []*logisticsDomain.Transportation) []*TransportationResponse {
	responses := make([]*TransportationResponse, 0, len(transportations))
	for _, transportation := range transportations {
		responses = append(responses, MapTransportationToResponse(transportation))
	}
	return responses
}

// CompanyResponse is the API representation of a transportation company.
type CompanyResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	PhoneNumber string     `json:"phone_number"`
	IsDeleted   bool       `json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MapCompanyToResponse converts a transportation company to its API representation.
func MapCompanyToResponse(company *logisticsDomain.TransportationCompany) *CompanyResponse {
	return &CompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		Address:     company.Address,
		PhoneNumber: company.PhoneNumber,
		IsDeleted:   company.IsDeleted,
		DeletedAt:   company.DeletedAt,
		CreatedAt:   company.CreatedAt,
		UpdatedAt:   company.UpdatedAt,
	}
}

// MapCompaniesToResponse converts a company list to its API representation.
func MapCompaniesToResponse(companies []*logisticsDomain.TransportationCompany) []*CompanyResponse {
	responses := make([]*CompanyResponse, 0, len(companies))
	for _, company := range companies {
		responses = append(responses, MapCompanyToResponse(company))
	}
	return responses
}
