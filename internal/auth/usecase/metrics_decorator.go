package usecase

import (
	"context"
	"time"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *authUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", operation, status)
	a.metrics.RecordDuration(ctx, "auth", operation, time.Since(start), status)
}

// Login records metrics for login operations.
func (a *authUseCaseWithMetrics) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.TokenPair, error) {
	start := time.Now()
	pair, err := a.next.Login(ctx, input)
	a.record(ctx, "login", start, err)
	return pair, err
}

// Register records metrics for registration operations.
func (a *authUseCaseWithMetrics) Register(
	ctx context.Context,
	actor *authDomain.Principal,
	input *authDomain.RegisterInput,
) (*authDomain.User, error) {
	start := time.Now()
	user, err := a.next.Register(ctx, actor, input)
	a.record(ctx, "register", start, err)
	return user, err
}

// Refresh records metrics for token rotation operations.
func (a *authUseCaseWithMetrics) Refresh(
	ctx context.Context,
	accessToken string,
	refreshToken string,
) (*authDomain.TokenPair, error) {
	start := time.Now()
	pair, err := a.next.Refresh(ctx, accessToken, refreshToken)
	a.record(ctx, "refresh", start, err)
	return pair, err
}

// Logout records metrics for logout operations.
func (a *authUseCaseWithMetrics) Logout(ctx context.Context, userID int64) error {
	start := time.Now()
	err := a.next.Logout(ctx, userID)
	a.record(ctx, "logout", start, err)
	return err
}

// Me passes through without metrics; it is a read of the request principal.
func (a *authUseCaseWithMetrics) Me(ctx context.Context, userID int64) (*authDomain.Principal, error) {
	return a.next.Me(ctx, userID)
}

// Authenticate passes through without metrics; it runs on every request
// and is already covered by the HTTP middleware metrics.
func (a *authUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	accessToken string,
) (*authDomain.Principal, error) {
	return a.next.Authenticate(ctx, accessToken)
}
