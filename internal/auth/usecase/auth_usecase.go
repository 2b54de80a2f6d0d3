package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	authService "github.com/cargoconnect/api/internal/auth/service"
	"github.com/cargoconnect/api/internal/config"
	apperrors "github.com/cargoconnect/api/internal/errors"
)

// authUseCase implements the AuthUseCase interface.
type authUseCase struct {
	config          *config.Config
	userRepo        UserRepository
	directory       Directory
	tokenService    authService.TokenService
	refreshService  authService.RefreshService
	passwordService authService.PasswordService
}

// Login authenticates a user and issues a new token pair.
//
// Security Notes:
//   - Returns ErrInvalidCredentials for both unknown emails and wrong
//     passwords to prevent account enumeration
//   - The stored refresh token is overwritten unconditionally, so any
//     previously issued refresh token stops working at login
func (a *authUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.TokenPair, error) {
	user, err := a.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, authDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.passwordService.ComparePassword(input.Password, user.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	return a.issuePair(ctx, user, "")
}

// Register creates a new user account.
//
// Anonymous callers may register User and Driver accounts. Creating a
// Moderator or Admin account requires an Admin actor; a Moderator actor
// may only create non-elevated accounts.
func (a *authUseCase) Register(
	ctx context.Context,
	actor *authDomain.Principal,
	input *authDomain.RegisterInput,
) (*authDomain.User, error) {
	if input.Role.Elevated() {
		if actor == nil || actor.Role != authDomain.RoleAdmin {
			return nil, apperrors.Wrap(apperrors.ErrForbidden, "only an admin can create elevated accounts")
		}
	}

	// Uniqueness is checked against non-deleted accounts only; a
	// soft-deleted account does not block re-registration.
	_, err := a.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, authDomain.ErrEmailTaken
	}
	if !errors.Is(err, authDomain.ErrUserNotFound) {
		return nil, err
	}

	if input.ClientID != nil {
		if _, err := a.directory.ClientName(ctx, *input.ClientID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "linked client does not exist")
			}
			return nil, err
		}
	}
	if input.DriverID != nil {
		if _, err := a.directory.DriverLastName(ctx, *input.DriverID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "linked driver does not exist")
			}
			return nil, err
		}
	}

	passwordHash, err := a.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &authDomain.User{
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         input.Role,
		ClientID:     input.ClientID,
		DriverID:     input.DriverID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := a.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Refresh validates an expired access token plus its refresh token and
// rotates the pair.
//
// The presented refresh token is compared against the stored hash first
// for a precise error, but the rotation itself is a compare-and-swap on
// that same hash: when two requests race with one token, the store accepts
// exactly one and the other fails with ErrRefreshTokenMismatch.
func (a *authUseCase) Refresh(
	ctx context.Context,
	accessToken string,
	refreshToken string,
) (*authDomain.TokenPair, error) {
	stale, err := a.tokenService.ParseExpiredToken(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := a.userRepo.GetByID(ctx, stale.UserID)
	if err != nil {
		return nil, err
	}

	presentedHash := a.refreshService.Hash(refreshToken)
	if user.RefreshTokenHash == nil || *user.RefreshTokenHash != presentedHash {
		return nil, authDomain.ErrRefreshTokenMismatch
	}
	if user.RefreshTokenExpiresAt == nil || !user.RefreshTokenExpiresAt.After(time.Now().UTC()) {
		return nil, authDomain.ErrRefreshTokenExpired
	}

	return a.issuePair(ctx, user, presentedHash)
}

// Logout clears the stored refresh token unconditionally. Calling it for
// an account that has no active refresh token is not an error.
func (a *authUseCase) Logout(ctx context.Context, userID int64) error {
	return a.userRepo.ClearRefreshToken(ctx, userID)
}

// Me rebuilds the principal from the current account record.
func (a *authUseCase) Me(ctx context.Context, userID int64) (*authDomain.Principal, error) {
	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return a.principalFromUser(ctx, user), nil
}

// Authenticate validates a bearer access token and returns the principal.
// Role and ownership links come from the account record, read within this
// request, so a changed link or a deleted account takes effect immediately
// even while old tokens are still circulating.
func (a *authUseCase) Authenticate(
	ctx context.Context,
	accessToken string,
) (*authDomain.Principal, error) {
	claims, err := a.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := a.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, authDomain.ErrUserNotFound) {
			return nil, authDomain.ErrTokenInvalid
		}
		return nil, err
	}

	principal := a.principalFromUser(ctx, user)
	return principal, nil
}

// issuePair signs a new access token and rotates the refresh token. An
// empty oldHash means an unconditional overwrite (login); otherwise the
// swap is conditional on the stored hash still being oldHash.
func (a *authUseCase) issuePair(
	ctx context.Context,
	user *authDomain.User,
	oldHash string,
) (*authDomain.TokenPair, error) {
	principal := a.principalFromUser(ctx, user)

	accessToken, expiresAt, err := a.tokenService.IssueAccessToken(principal)
	if err != nil {
		return nil, err
	}

	plainRefresh, refreshHash, err := a.refreshService.Generate()
	if err != nil {
		return nil, err
	}

	refreshExpiresAt := time.Now().UTC().Add(a.config.RefreshTokenExpiration)
	if oldHash == "" {
		err = a.userRepo.SetRefreshToken(ctx, user.ID, refreshHash, refreshExpiresAt)
	} else {
		err = a.userRepo.RotateRefreshToken(ctx, user.ID, oldHash, refreshHash, refreshExpiresAt)
	}
	if err != nil {
		return nil, err
	}

	return &authDomain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: plainRefresh,
		ExpiresAt:    expiresAt,
		Role:         user.Role,
		UserID:       user.ID,
		Name:         principal.Name,
	}, nil
}

// principalFromUser maps an account record to a principal, resolving the
// display name as client name, then driver last name, then the local part
// of the email.
func (a *authUseCase) principalFromUser(
	ctx context.Context,
	user *authDomain.User,
) *authDomain.Principal {
	return &authDomain.Principal{
		UserID:   user.ID,
		Email:    user.Email,
		Name:     a.resolveName(ctx, user),
		Role:     user.Role,
		ClientID: user.ClientID,
		DriverID: user.DriverID,
	}
}

// resolveName falls through the name sources in priority order. Lookup
// failures fall back rather than failing the request; the display name is
// cosmetic.
func (a *authUseCase) resolveName(ctx context.Context, user *authDomain.User) string {
	if user.ClientID != nil {
		if name, err := a.directory.ClientName(ctx, *user.ClientID); err == nil && name != "" {
			return name
		}
	}
	if user.DriverID != nil {
		if lastName, err := a.directory.DriverLastName(ctx, *user.DriverID); err == nil && lastName != "" {
			return lastName
		}
	}

	localPart, _, _ := strings.Cut(user.Email, "@")
	return localPart
}

// NewAuthUseCase creates a new AuthUseCase instance.
func NewAuthUseCase(
	cfg *config.Config,
	userRepo UserRepository,
	directory Directory,
	tokenService authService.TokenService,
	refreshService authService.RefreshService,
	passwordService authService.PasswordService,
) AuthUseCase {
	return &authUseCase{
		config:          cfg,
		userRepo:        userRepo,
		directory:       directory,
		tokenService:    tokenService,
		refreshService:  refreshService,
		passwordService: passwordService,
	}
}
