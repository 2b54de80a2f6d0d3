package commands

import (
	"context"
	"fmt"

	"github.com/cargoconnect/api/internal/app"
	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/config"
)

// minPasswordLength matches the registration endpoint requirement.
const minPasswordLength = 8

// RunCreateUser creates an account directly in the database, bypassing the
// registration endpoint's actor checks. Used to bootstrap the first admin
// on a fresh deployment. clientID and driverID link the account to a
// logistics record; zero means no link.
func RunCreateUser(ctx context.Context, email, password, role string, clientID, driverID int64, io IOTuple) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	parsedRole := authDomain.Role(role)
	if authDomain.ParseRole(role) != parsedRole {
		return fmt.Errorf("invalid role: %s (valid options: admin, moderator, user, driver)", role)
	}
	if clientID != 0 && driverID != 0 {
		return fmt.Errorf("an account links to a client or a driver, not both")
	}

	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	txManager, err := container.TxManager()
	if err != nil {
		return fmt.Errorf("failed to get tx manager: %w", err)
	}

	userRepo, err := container.UserRepository()
	if err != nil {
		return fmt.Errorf("failed to get user repository: %w", err)
	}

	passwordHash, err := container.PasswordService().HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &authDomain.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         parsedRole,
	}
	if clientID != 0 {
		user.ClientID = &clientID
	}
	if driverID != 0 {
		user.DriverID = &driverID
	}

	err = txManager.WithTx(ctx, func(ctx context.Context) error {
		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(io.Writer, "user created: id=%d email=%s role=%s\n", user.ID, user.Email, user.Role)
	return nil
}
