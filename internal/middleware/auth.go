package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/azizulsheikh/studio/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated subject.
	UserIDKey contextKey = "user_id"
	// RoleKey is the context key for storing the authenticated role.
	RoleKey contextKey = "role"
)

// GetUserID extracts the authenticated subject from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetRole extracts the authenticated role from the context.
// Returns empty string if not found.
func GetRole(ctx context.Context) string {
	role, _ := ctx.Value(RoleKey).(string)
	return role
}

// GetRequestID returns the id assigned by the router's RequestID middleware.
func GetRequestID(ctx context.Context) string {
	return chimiddleware.GetReqID(ctx)
}

// WithPrincipal returns a context carrying the given identity.
func WithPrincipal(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, RoleKey, role)
}

// RequireAuth returns an interceptor that validates JWT tokens on every
// procedure except the listed public ones. Public procedures still pick up
// the caller's identity when a valid token is sent.
func RequireAuth(jwtManager *auth.JWTManager, publicProcedures ...string) connect.UnaryInterceptorFunc {
	public := make(map[string]bool, len(publicProcedures))
	for _, p := range publicProcedures {
		public[p] = true
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			isPublic := public[req.Spec().Procedure]

			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				if isPublic {
					return next(ctx, req)
				}
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			tokenString, ok := bearerToken(authHeader)
			if !ok {
				if isPublic {
					return next(ctx, req)
				}
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				if isPublic {
					return next(ctx, req)
				}
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithPrincipal(ctx, claims.Subject, claims.Role), req)
		}
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
