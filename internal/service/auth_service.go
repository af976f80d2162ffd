package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/azizulsheikh/studio/internal/auth"
	"github.com/azizulsheikh/studio/internal/middleware"
	"github.com/azizulsheikh/studio/pkg/api"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

var _ api.AuthServiceHandler = (*AuthService)(nil)

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Login checks the admin password and returns a session token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	s.logger.Info("Login request")

	if req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	principal, err := s.authenticator.Authenticate(ctx, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "error", err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, toConnectError("Login", err)
		}
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, expiresAt, err := s.jwtManager.Generate(principal)
	if err != nil {
		s.logger.Error("Failed to generate token", "subject", principal.Subject, "error", err)
		return nil, connect.NewError(connect.CodeInternal, errInternal)
	}

	s.logger.Info("Admin logged in", "subject", principal.Subject, "expires_at", expiresAt)
	return connect.NewResponse(&api.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}), nil
}

// GetSession returns the identity behind the caller's token.
func (s *AuthService) GetSession(ctx context.Context, req *connect.Request[api.GetSessionRequest]) (*connect.Response[api.GetSessionResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	s.logger.Info("GetSession request", "user_id", userID)
	return connect.NewResponse(&api.GetSessionResponse{
		Subject: userID,
		Role:    middleware.GetRole(ctx),
	}), nil
}
