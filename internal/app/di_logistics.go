package app

import (
	"fmt"

	"github.com/cargoconnect/api/internal/authz"
	logisticsHTTP "github.com/cargoconnect/api/internal/logistics/http"
	logisticsRepository "github.com/cargoconnect/api/internal/logistics/repository"
	logisticsUseCase "github.com/cargoconnect/api/internal/logistics/usecase"
)

// AuthzEngine returns the role/ownership authorization engine. The policy
// table is static so construction cannot fail.
func (c *Container) AuthzEngine() *authz.Engine {
	c.authzEngineInit.Do(func() {
		c.authzEngine = authz.NewEngine()
	})
	return c.authzEngine
}

// OwnerLookup returns the ownership lookup based on database driver. The
// same instance serves as the auth use case directory.
func (c *Container) OwnerLookup() (ownerDirectory, error) {
	var err error
	c.ownerLookupInit.Do(func() {
		c.ownerLookup, err = c.initOwnerLookup()
		if err != nil {
			c.initErrors["ownerLookup"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["ownerLookup"]; exists {
		return nil, storedErr
	}
	return c.ownerLookup, nil
}

// ClientUseCase returns the client use case.
func (c *Container) ClientUseCase() (logisticsUseCase.ClientUseCase, error) {
	if err := c.initLogisticsUseCases(); err != nil {
		return nil, err
	}
	return c.clientUseCase, nil
}

// DriverUseCase returns the driver use case.
func (c *Container) DriverUseCase() (logisticsUseCase.DriverUseCase, error) {
	if err := c.initLogisticsUseCases(); err != nil {
		return nil, err
	}
	return c.driverUseCase, nil
}

// VehicleUseCase returns the vehicle use case.
func (c *Container) VehicleUseCase() (logisticsUseCase.VehicleUseCase, error) {
	if err := c.initLogisticsUseCases(); err != nil {
		return nil, err
	}
	return c.vehicleUseCase, nil
}

// CargoUseCase returns the cargo use case.
func (c *Container) CargoUseCase() (logisticsUseCase.CargoUseCase, error) {
	if err := c.initLogisticsUseCases(); err != nil {
		return nil, err
	}
	return c.cargoUseCase, nil
}

// OrderUseCase returns the order use case.
func (c *Container) OrderUseCase() (logisticsUseCase.OrderUseCase, error) {
	if err := c.initLogisticsUseCases(); err != nil {
		return nil, err
	}
	return c.orderUseCase, nil
}

// TransportationUseCase returns the transportation use case.
func (c *Container) TransportationUseCase() (logisticsUseCase.TransportationUseCase, error) {
	if err := c.initLogisticsUseCases(); err != nil {
		return nil, err
	}
	return c.transportationUseCase, nil
}

// CompanyUseCase returns the company use case.
func (c *Container) CompanyUseCase() (logisticsUseCase.CompanyUseCase, error) {
	if err := c.initLogisticsUseCases(); err != nil {
		return nil, err
	}
	return c.companyUseCase, nil
}

// initOwnerLookup creates the ownership lookup based on the database driver.
func (c *Container) initOwnerLookup() (ownerDirectory, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for owner lookup: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return logisticsRepository.NewPostgreSQLOwnerLookup(db), nil
	case "mysql":
		return logisticsRepository.NewMySQLOwnerLookup(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initLogisticsRepositories creates all logistics repositories for the
// configured driver. The repositories are stateless wrappers around the
// shared *sql.DB, so they are built together.
func (c *Container) initLogisticsRepositories() error {
	var initErr error
	c.logisticsReposInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			initErr = fmt.Errorf("failed to get database for logistics repositories: %w", err)
			c.initErrors["logisticsRepos"] = initErr
			return
		}

		switch c.config.DBDriver {
		case "postgres":
			c.clientRepo = logisticsRepository.NewPostgreSQLClientRepository(db)
			c.driverRepo = logisticsRepository.NewPostgreSQLDriverRepository(db)
			c.vehicleRepo = logisticsRepository.NewPostgreSQLVehicleRepository(db)
			c.cargoRepo = logisticsRepository.NewPostgreSQLCargoRepository(db)
			c.orderRepo = logisticsRepository.NewPostgreSQLOrderRepository(db)
			c.transportationRepo = logisticsRepository.NewPostgreSQLTransportationRepository(db)
			c.companyRepo = logisticsRepository.NewPostgreSQLCompanyRepository(db)
		case "mysql":
			c.clientRepo = logisticsRepository.NewMySQLClientRepository(db)
			c.driverRepo = logisticsRepository.NewMySQLDriverRepository(db)
			c.vehicleRepo = logisticsRepository.NewMySQLVehicleRepository(db)
			c.cargoRepo = logisticsRepository.NewMySQLCargoRepository(db)
			c.orderRepo = logisticsRepository.NewMySQLOrderRepository(db)
			c.transportationRepo = logisticsRepository.NewMySQLTransportationRepository(db)
			c.companyRepo = logisticsRepository.NewMySQLCompanyRepository(db)
		default:
			initErr = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
			c.initErrors["logisticsRepos"] = initErr
		}
	})
	if initErr != nil {
		return initErr
	}
	if storedErr, exists := c.initErrors["logisticsRepos"]; exists {
		return storedErr
	}
	return nil
}

// initLogisticsUseCases creates all logistics use cases. Authorization
// decisions run in-process against the engine; ownership checks go through
// the lookup.
func (c *Container) initLogisticsUseCases() error {
	var initErr error
	c.logisticsUCInit.Do(func() {
		if err := c.initLogisticsRepositories(); err != nil {
			initErr = err
			c.initErrors["logisticsUseCases"] = initErr
			return
		}

		lookup, err := c.OwnerLookup()
		if err != nil {
			initErr = fmt.Errorf("failed to get owner lookup for logistics use cases: %w", err)
			c.initErrors["logisticsUseCases"] = initErr
			return
		}

		engine := c.AuthzEngine()

		c.clientUseCase = logisticsUseCase.NewClientUseCase(engine, lookup, c.clientRepo)
		c.driverUseCase = logisticsUseCase.NewDriverUseCase(engine, lookup, c.driverRepo)
		c.vehicleUseCase = logisticsUseCase.NewVehicleUseCase(engine, lookup, c.vehicleRepo, c.companyRepo, c.driverRepo)
		c.cargoUseCase = logisticsUseCase.NewCargoUseCase(engine, lookup, c.cargoRepo)
		c.orderUseCase = logisticsUseCase.NewOrderUseCase(engine, lookup, c.orderRepo, c.cargoRepo, c.clientRepo, c.transportationRepo)
		c.transportationUseCase = logisticsUseCase.NewTransportationUseCase(engine, lookup, c.transportationRepo, c.cargoRepo, c.vehicleRepo, c.companyRepo)
		c.companyUseCase = logisticsUseCase.NewCompanyUseCase(engine, lookup, c.companyRepo)
	})
	if initErr != nil {
		return initErr
	}
	if storedErr, exists := c.initErrors["logisticsUseCases"]; exists {
		return storedErr
	}
	return nil
}

// initLogisticsHandlers creates all logistics HTTP handlers.
func (c *Container) initLogisticsHandlers() error {
	var initErr error
	c.logisticsHandlInit.Do(func() {
		if err := c.initLogisticsUseCases(); err != nil {
			initErr = err
			c.initErrors["logisticsHandlers"] = initErr
			return
		}

		logger := c.Logger()

		c.clientHandler = logisticsHTTP.NewClientHandler(c.clientUseCase, logger)
		c.driverHandler = logisticsHTTP.NewDriverHandler(c.driverUseCase, logger)
		c.vehicleHandler = logisticsHTTP.NewVehicleHandler(c.vehicleUseCase, logger)
		c.cargoHandler = logisticsHTTP.NewCargoHandler(c.cargoUseCase, logger)
		c.orderHandler = logisticsHTTP.NewOrderHandler(c.orderUseCase, logger)
		c.transportationHandler = logisticsHTTP.NewTransportationHandler(c.transportationUseCase, logger)
		c.companyHandler = logisticsHTTP.NewCompanyHandler(c.companyUseCase, logger)
	})
	if initErr != nil {
		return initErr
	}
	if storedErr, exists := c.initErrors["logisticsHandlers"]; exists {
		return storedErr
	}
	return nil
}
