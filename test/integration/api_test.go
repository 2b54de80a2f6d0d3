// Package integration provides end-to-end tests for the API. Every flow
// runs against both PostgreSQL and MySQL through a real HTTP server.
package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargoconnect/api/internal/app"
	authDTO "github.com/cargoconnect/api/internal/auth/http/dto"
	"github.com/cargoconnect/api/internal/config"
	logisticsDTO "github.com/cargoconnect/api/internal/logistics/http/dto"
	"github.com/cargoconnect/api/internal/testutil"
)

const (
	adminEmail    = "admin@integration.test"
	adminPassword = "AdminPassword1"
)

// testContext holds the server, database and seeded admin credentials for
// one integration run.
type testContext struct {
	container  *app.Container
	db         *sql.DB
	server     *httptest.Server
	dbDriver   string
	adminToken string
}

// makeRequest performs an HTTP request against the test server. An empty
// token sends the request unauthenticated.
func (tc *testContext) makeRequest(
	t *testing.T,
	method, path string,
	body interface{},
	token string,
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// login authenticates and returns the token pair.
func (tc *testContext) login(t *testing.T, email, password string) authDTO.TokenPairResponse {
	t.Helper()

	resp, body := tc.makeRequest(t, http.MethodPost, "/v1/auth/login", authDTO.LoginRequest{
		Email:    email,
		Password: password,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, "login failed: %s", body)

	var pair authDTO.TokenPairResponse
	require.NoError(t, json.Unmarshal(body, &pair))
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	return pair
}

// createResource POSTs a payload and returns the id from the response.
func (tc *testContext) createResource(t *testing.T, path string, payload interface{}, token string) int64 {
	t.Helper()

	resp, body := tc.makeRequest(t, http.MethodPost, path, payload, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create %s failed: %s", path, body)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotZero(t, created.ID)
	return created.ID
}

// setupIntegrationTest boots the full stack against the given database and
// seeds an admin account.
func setupIntegrationTest(t *testing.T, dbDriver string) *testContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	var db *sql.DB
	var dsn string
	if dbDriver == "postgres" {
		db = testutil.SetupPostgresDB(t)
		dsn = testutil.GetPostgresTestDSN()
	} else {
		db = testutil.SetupMySQLDB(t)
		dsn = testutil.GetMySQLTestDSN()
	}

	cfg := &config.Config{
		DBDriver:               dbDriver,
		DBConnectionString:     dsn,
		DBMaxOpenConnections:   10,
		DBMaxIdleConnections:   5,
		DBConnMaxLifetime:      time.Hour,
		ServerHost:             "localhost",
		ServerPort:             8080,
		LogLevel:               "error",
		JWTSigningKey:          "integration-test-signing-key",
		AccessTokenExpiration:  time.Hour,
		RefreshTokenExpiration: 24 * time.Hour,
		// Rate limiting off so rapid sequential requests do not flake.
		RateLimitEnabled:      false,
		RateLimitLoginEnabled: false,
		MetricsEnabled:        false,
	}

	container := app.NewContainer(cfg)

	// Seed the admin directly; the registration endpoint refuses to create
	// elevated accounts without an admin actor.
	passwordHash, err := container.PasswordService().HashPassword(adminPassword)
	require.NoError(t, err, "failed to hash admin password")
	testutil.CreateTestUser(t, db, dbDriver, adminEmail, passwordHash, "admin", nil, nil)

	httpSrv, err := container.HTTPServer()
	require.NoError(t, err, "failed to build HTTP server")

	server := httptest.NewServer(httpSrv.Handler())

	tc := &testContext{
		container: container,
		db:        db,
		server:    server,
		dbDriver:  dbDriver,
	}
	tc.adminToken = tc.login(t, adminEmail, adminPassword).AccessToken

	return tc
}

// teardownIntegrationTest shuts everything down in reverse order.
func teardownIntegrationTest(t *testing.T, tc *testContext) {
	t.Helper()

	tc.server.Close()
	if err := tc.container.Shutdown(context.Background()); err != nil {
		t.Logf("container shutdown: %v", err)
	}
	testutil.TeardownDB(t, tc.db)
}

func TestAPIPostgres(t *testing.T) {
	testutil.SkipIfNoPostgres(t)
	runAPITests(t, "postgres")
}

func TestAPIMySQL(t *testing.T) {
	testutil.SkipIfNoMySQL(t)
	runAPITests(t, "mysql")
}

func runAPITests(t *testing.T, dbDriver string) {
	tc := setupIntegrationTest(t, dbDriver)
	defer teardownIntegrationTest(t, tc)

	t.Run("HealthEndpoints", func(t *testing.T) { testHealthEndpoints(t, tc) })
	t.Run("AuthFlow", func(t *testing.T) { testAuthFlow(t, tc) })
	t.Run("RefreshRotation", func(t *testing.T) { testRefreshRotation(t, tc) })
	t.Run("ResourceCRUD", func(t *testing.T) { testResourceCRUD(t, tc) })
	t.Run("LinkOperations", func(t *testing.T) { testLinkOperations(t, tc) })
	t.Run("ClientScoping", func(t *testing.T) { testClientScoping(t, tc) })
	t.Run("DriverScoping", func(t *testing.T) { testDriverScoping(t, tc) })
	t.Run("ModeratorScoping", func(t *testing.T) { testModeratorScoping(t, tc) })
}

func testHealthEndpoints(t *testing.T, tc *testContext) {
	resp, body := tc.makeRequest(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "healthy")

	resp, body = tc.makeRequest(t, http.MethodGet, "/ready", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "ready")
}

func testAuthFlow(t *testing.T, tc *testContext) {
	email := "flow-user@integration.test"
	password := "UserPassword1"

	t.Run("Success_SelfRegister", func(t *testing.T) {
		resp, body := tc.makeRequest(t, http.MethodPost, "/v1/auth/register", authDTO.RegisterRequest{
			Email:    email,
			Password: password,
			Role:     "user",
		}, "")
		require.Equal(t, http.StatusCreated, resp.StatusCode, "register failed: %s", body)

		var user authDTO.UserResponse
		require.NoError(t, json.Unmarshal(body, &user))
		assert.Equal(t, email, user.Email)
		assert.Equal(t, "user", user.Role)
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodPost, "/v1/auth/register", authDTO.RegisterRequest{
			Email:    email,
			Password: password,
			Role:     "user",
		}, "")
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Error_AnonymousRegistersModerator", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodPost, "/v1/auth/register", authDTO.RegisterRequest{
			Email:    "mod@integration.test",
			Password: password,
			Role:     "moderator",
		}, "")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Success_LoginAndMe", func(t *testing.T) {
		pair := tc.login(t, email, password)
		assert.Equal(t, "user", pair.Role)

		resp, body := tc.makeRequest(t, http.MethodGet, "/v1/auth/me", nil, pair.AccessToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var principal authDTO.PrincipalResponse
		require.NoError(t, json.Unmarshal(body, &principal))
		assert.Equal(t, email, principal.Email)
		assert.Equal(t, "user", principal.Role)
	})

	t.Run("Error_WrongPassword", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodPost, "/v1/auth/login", authDTO.LoginRequest{
			Email:    email,
			Password: "WrongPassword1",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Error_MissingToken", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodGet, "/v1/auth/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Success_LogoutInvalidatesRefresh", func(t *testing.T) {
		pair := tc.login(t, email, password)

		resp, _ := tc.makeRequest(t, http.MethodPost, "/v1/auth/logout", nil, pair.AccessToken)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = tc.makeRequest(t, http.MethodPost, "/v1/auth/refresh", authDTO.RefreshRequest{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func testRefreshRotation(t *testing.T, tc *testContext) {
	email := "rotation@integration.test"
	password := "UserPassword1"

	resp, _ := tc.makeRequest(t, http.MethodPost, "/v1/auth/register", authDTO.RegisterRequest{
		Email:    email,
		Password: password,
		Role:     "user",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	first := tc.login(t, email, password)

	resp, body := tc.makeRequest(t, http.MethodPost, "/v1/auth/refresh", authDTO.RefreshRequest{
		AccessToken:  first.AccessToken,
		RefreshToken: first.RefreshToken,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, "refresh failed: %s", body)

	var second authDTO.TokenPairResponse
	require.NoError(t, json.Unmarshal(body, &second))
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken, "refresh token must rotate")

	// The consumed refresh token is single use.
	resp, _ = tc.makeRequest(t, http.MethodPost, "/v1/auth/refresh", authDTO.RefreshRequest{
		AccessToken:  first.AccessToken,
		RefreshToken: first.RefreshToken,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The rotated token still works.
	resp, _ = tc.makeRequest(t, http.MethodGet, "/v1/auth/me", nil, second.AccessToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func testResourceCRUD(t *testing.T, tc *testContext) {
	clientID := tc.createResource(t, "/v1/clients", logisticsDTO.ClientRequest{
		Name:    "Ivan",
		Surname: "Petrov",
		Phone:   "+15550100001",
		Email:   "ivan.petrov@integration.test",
		Address: "12 Harbor Street",
	}, tc.adminToken)

	t.Run("Success_GetAndList", func(t *testing.T) {
		resp, body := tc.makeRequest(t, http.MethodGet, fmt.Sprintf("/v1/clients/%d", clientID), nil, tc.adminToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var client logisticsDTO.ClientResponse
		require.NoError(t, json.Unmarshal(body, &client))
		assert.Equal(t, "Ivan", client.Name)
		assert.False(t, client.IsDeleted)

		resp, body = tc.makeRequest(t, http.MethodGet, "/v1/clients", nil, tc.adminToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var clients []logisticsDTO.ClientResponse
		require.NoError(t, json.Unmarshal(body, &clients))
		assert.NotEmpty(t, clients)
	})

	t.Run("Success_Update", func(t *testing.T) {
		resp, body := tc.makeRequest(t, http.MethodPut, fmt.Sprintf("/v1/clients/%d", clientID), logisticsDTO.ClientRequest{
			Name:    "Ivan",
			Surname: "Petrov",
			Phone:   "+15550100002",
			Email:   "ivan.petrov@integration.test",
			Address: "14 Harbor Street",
		}, tc.adminToken)
		require.Equal(t, http.StatusOK, resp.StatusCode, "update failed: %s", body)

		var client logisticsDTO.ClientResponse
		require.NoError(t, json.Unmarshal(body, &client))
		assert.Equal(t, "14 Harbor Street", client.Address)
	})

	t.Run("Error_ValidationFailure", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodPost, "/v1/clients", logisticsDTO.ClientRequest{
			Name: "OnlyName",
		}, tc.adminToken)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("Success_SoftDeleteAndRestore", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodDelete, fmt.Sprintf("/v1/clients/%d", clientID), nil, tc.adminToken)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		// A soft-deleted row disappears from reads and lists.
		resp, _ = tc.makeRequest(t, http.MethodGet, fmt.Sprintf("/v1/clients/%d", clientID), nil, tc.adminToken)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		// But shows up in the deleted listing.
		resp, body := tc.makeRequest(t, http.MethodGet, "/v1/clients/deleted", nil, tc.adminToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var deleted []logisticsDTO.ClientResponse
		require.NoError(t, json.Unmarshal(body, &deleted))
		require.NotEmpty(t, deleted)
		assert.True(t, deleted[0].IsDeleted)

		resp, _ = tc.makeRequest(t, http.MethodPost, fmt.Sprintf("/v1/clients/restore/%d", clientID), nil, tc.adminToken)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = tc.makeRequest(t, http.MethodGet, fmt.Sprintf("/v1/clients/%d", clientID), nil, tc.adminToken)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Error_GetUnknownID", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodGet, "/v1/clients/999999", nil, tc.adminToken)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

// buildTransportChain creates the company/driver/vehicle/cargo chain needed
// by transportation and order tests and returns the ids.
func buildTransportChain(t *testing.T, tc *testContext) (companyID, driverID, vehicleID, cargoID, transportationID int64) {
	t.Helper()

	companyID = tc.createResource(t, "/v1/companies", logisticsDTO.CompanyRequest{
		Name:        "Northwind Freight",
		Address:     "3 Depot Road",
		PhoneNumber: "+15550200001",
	}, tc.adminToken)

	driverID = tc.createResource(t, "/v1/drivers", logisticsDTO.DriverRequest{
		FirstName:     "Pavel",
		LastName:      "Sidorov",
		LicenseNumber: fmt.Sprintf("DL-%d", time.Now().UnixNano()),
		PhoneNumber:   "+15550200002",
	}, tc.adminToken)

	vehicleID = tc.createResource(t, "/v1/vehicles", logisticsDTO.VehicleRequest{
		CompanyID:     companyID,
		DriverID:      driverID,
		Type:          "truck",
		Capacity:      "20t",
		VehicleNumber: fmt.Sprintf("TRK-%d", time.Now().UnixNano()),
	}, tc.adminToken)

	cargoID = tc.createResource(t, "/v1/cargos", logisticsDTO.CargoRequest{
		Weight:      "1200kg",
		Dimensions:  "2x2x3m",
		Description: "palletized electronics",
	}, tc.adminToken)

	transportationID = tc.createResource(t, "/v1/transportations", logisticsDTO.TransportationRequest{
		CargoID:    cargoID,
		VehicleID:  vehicleID,
		StartPoint: "Rotterdam",
		EndPoint:   "Hamburg",
	}, tc.adminToken)

	return companyID, driverID, vehicleID, cargoID, transportationID
}

func testLinkOperations(t *testing.T, tc *testContext) {
	companyID, _, _, cargoID, transportationID := buildTransportChain(t, tc)

	orderID := tc.createResource(t, "/v1/orders", logisticsDTO.OrderRequest{
		TransportationID: transportationID,
	}, tc.adminToken)

	t.Run("Success_AttachAndDetachCargo", func(t *testing.T) {
		path := fmt.Sprintf("/v1/orders/%d/cargos/%d", orderID, cargoID)

		resp, _ := tc.makeRequest(t, http.MethodPost, path, nil, tc.adminToken)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		// A second attach of the same pair conflicts.
		resp, _ = tc.makeRequest(t, http.MethodPost, path, nil, tc.adminToken)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		resp, _ = tc.makeRequest(t, http.MethodDelete, path, nil, tc.adminToken)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		// Detaching a link that no longer exists is a 404.
		resp, _ = tc.makeRequest(t, http.MethodDelete, path, nil, tc.adminToken)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Success_LinkAndUnlinkCompany", func(t *testing.T) {
		path := fmt.Sprintf("/v1/transportations/%d/companies/%d", transportationID, companyID)

		resp, _ := tc.makeRequest(t, http.MethodPost, path, nil, tc.adminToken)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = tc.makeRequest(t, http.MethodPost, path, nil, tc.adminToken)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		resp, _ = tc.makeRequest(t, http.MethodDelete, path, nil, tc.adminToken)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("Error_AttachToUnknownOrder", func(t *testing.T) {
		path := fmt.Sprintf("/v1/orders/999999/cargos/%d", cargoID)
		resp, _ := tc.makeRequest(t, http.MethodPost, path, nil, tc.adminToken)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func testClientScoping(t *testing.T, tc *testContext) {
	_, _, _, _, transportationID := buildTransportChain(t, tc)

	ownClientID := tc.createResource(t, "/v1/clients", logisticsDTO.ClientRequest{
		Name:    "Olga",
		Surname: "Ivanova",
		Phone:   "+15550300001",
		Email:   "olga.ivanova@integration.test",
		Address: "7 Canal Street",
	}, tc.adminToken)
	otherClientID := tc.createResource(t, "/v1/clients", logisticsDTO.ClientRequest{
		Name:    "Boris",
		Surname: "Smirnov",
		Phone:   "+15550300002",
		Email:   "boris.smirnov@integration.test",
		Address: "9 Canal Street",
	}, tc.adminToken)

	ownOrderID := tc.createResource(t, "/v1/orders", logisticsDTO.OrderRequest{
		TransportationID: transportationID,
		ClientID:         &ownClientID,
	}, tc.adminToken)
	otherOrderID := tc.createResource(t, "/v1/orders", logisticsDTO.OrderRequest{
		TransportationID: transportationID,
		ClientID:         &otherClientID,
	}, tc.adminToken)

	resp, _ := tc.makeRequest(t, http.MethodPost, "/v1/auth/register", authDTO.RegisterRequest{
		Email:    "scoped-user@integration.test",
		Password: "UserPassword1",
		Role:     "user",
		ClientID: &ownClientID,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	userToken := tc.login(t, "scoped-user@integration.test", "UserPassword1").AccessToken

	t.Run("Success_ListsOnlyOwnOrders", func(t *testing.T) {
		resp, body := tc.makeRequest(t, http.MethodGet, "/v1/orders", nil, userToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var orders []logisticsDTO.OrderResponse
		require.NoError(t, json.Unmarshal(body, &orders))
		require.Len(t, orders, 1)
		assert.Equal(t, ownOrderID, orders[0].ID)
	})

	t.Run("Error_ForeignOrderForbidden", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodGet, fmt.Sprintf("/v1/orders/%d", ownOrderID), nil, userToken)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// An existing row outside the caller's scope is a 403, not a 404.
		resp, _ = tc.makeRequest(t, http.MethodGet, fmt.Sprintf("/v1/orders/%d", otherOrderID), nil, userToken)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Error_ForeignClientForbidden", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodGet, fmt.Sprintf("/v1/clients/%d", ownClientID), nil, userToken)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = tc.makeRequest(t, http.MethodGet, fmt.Sprintf("/v1/clients/%d", otherClientID), nil, userToken)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Error_UngrantedOperationsForbidden", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodGet, "/v1/drivers", nil, userToken)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, _ = tc.makeRequest(t, http.MethodGet, "/v1/orders/deleted", nil, userToken)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, _ = tc.makeRequest(t, http.MethodPost, "/v1/clients", logisticsDTO.ClientRequest{
			Name:    "Rogue",
			Surname: "Entry",
			Phone:   "+15550300003",
			Email:   "rogue@integration.test",
		}, userToken)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Success_CreateOrderPinnedToOwnClient", func(t *testing.T) {
		// The payload tries to place an order for someone else; the
		// ownership filter pins it to the caller's client.
		resp, body := tc.makeRequest(t, http.MethodPost, "/v1/orders", logisticsDTO.OrderRequest{
			TransportationID: transportationID,
			ClientID:         &otherClientID,
		}, userToken)
		require.Equal(t, http.StatusCreated, resp.StatusCode, "create order failed: %s", body)

		var order logisticsDTO.OrderResponse
		require.NoError(t, json.Unmarshal(body, &order))
		require.NotNil(t, order.ClientID)
		assert.Equal(t, ownClientID, *order.ClientID)
	})
}

func testDriverScoping(t *testing.T, tc *testContext) {
	_, ownDriverID, ownVehicleID, _, ownTransportationID := buildTransportChain(t, tc)
	_, _, otherVehicleID, _, _ := buildTransportChain(t, tc)

	resp, _ := tc.makeRequest(t, http.MethodPost, "/v1/auth/register", authDTO.RegisterRequest{
		Email:    "scoped-driver@integration.test",
		Password: "DriverPassword1",
		Role:     "driver",
		DriverID: &ownDriverID,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	driverToken := tc.login(t, "scoped-driver@integration.test", "DriverPassword1").AccessToken

	t.Run("Success_ListsOnlyAssignedVehicles", func(t *testing.T) {
		resp, body := tc.makeRequest(t, http.MethodGet, "/v1/vehicles", nil, driverToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var vehicles []logisticsDTO.VehicleResponse
		require.NoError(t, json.Unmarshal(body, &vehicles))
		require.Len(t, vehicles, 1)
		assert.Equal(t, ownVehicleID, vehicles[0].ID)
	})

	t.Run("Error_ForeignVehicleForbidden", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodGet, fmt.Sprintf("/v1/vehicles/%d", otherVehicleID), nil, driverToken)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Success_SeesAssignedTransportation", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodGet, fmt.Sprintf("/v1/transportations/%d", ownTransportationID), nil, driverToken)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Error_OrdersForbidden", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodGet, "/v1/orders", nil, driverToken)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func testModeratorScoping(t *testing.T, tc *testContext) {
	resp, _ := tc.makeRequest(t, http.MethodPost, "/v1/auth/register", authDTO.RegisterRequest{
		Email:    "moderator@integration.test",
		Password: "ModPassword1",
		Role:     "moderator",
	}, tc.adminToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	modToken := tc.login(t, "moderator@integration.test", "ModPassword1").AccessToken

	clientID := tc.createResource(t, "/v1/clients", logisticsDTO.ClientRequest{
		Name:    "Mikhail",
		Surname: "Volkov",
		Phone:   "+15550400001",
		Email:   "mikhail.volkov@integration.test",
		Address: "4 Market Square",
	}, modToken)

	_, _, _, _, transportationID := buildTransportChain(t, tc)
	orderID := tc.createResource(t, "/v1/orders", logisticsDTO.OrderRequest{
		TransportationID: transportationID,
	}, modToken)

	t.Run("Success_DeletesOperationalData", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodDelete, fmt.Sprintf("/v1/orders/%d", orderID), nil, modToken)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("Error_CannotDeleteMasterData", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodDelete, fmt.Sprintf("/v1/clients/%d", clientID), nil, modToken)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Error_CannotRestore", func(t *testing.T) {
		resp, _ := tc.makeRequest(t, http.MethodPost, fmt.Sprintf("/v1/orders/restore/%d", orderID), nil, modToken)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}
