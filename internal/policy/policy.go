// Package policy holds the authorization predicates the reservation flow checks inline.
// Principals are placed on the request context by the auth middleware.
package policy

import (
	"airline/shared/constant"
	"airline/shared/failure"
	"context"
	"net/http"
)

var (
	ErrAdminCannotBook = &failure.Failure{Code: http.StatusForbidden, Message: "admins cannot book"}
	ErrNoAccount       = &failure.Failure{Code: http.StatusForbidden, Message: "this operation needs a user account"}
)

type Principal struct {
	UserID string
	Email  string
	Role   string
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, p.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, p.Email)

	return context.WithValue(ctx, constant.ContextKeyUserRole, p.Role)
}

// FromContext returns the request principal; ok is false for anonymous requests.
func FromContext(ctx context.Context) (Principal, bool) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return Principal{}, false
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Principal{UserID: userID, Email: email, Role: role}, true
}

// IsAuthenticated resolves the principal or fails with 401.
func IsAuthenticated(ctx context.Context) (Principal, error) {
	p, ok := FromContext(ctx)
	if !ok {
		return Principal{}, failure.UnauthenticatedError
	}

	return p, nil
}

// AccountHolder resolves a principal backed by a users row. The API key principal is rejected
// because its id names no account.
func AccountHolder(ctx context.Context) (Principal, error) {
	p, err := IsAuthenticated(ctx)
	if err != nil {
		return p, err
	}

	if IsSystem(p) {
		return Principal{}, ErrNoAccount
	}

	return p, nil
}

func IsSystem(p Principal) bool {
	return p.UserID == constant.ContextSystem
}

func IsAdmin(p Principal) bool {
	return p.Role == constant.RoleAdmin || p.Role == constant.RoleSuperAdmin
}

func IsOwner(ownerID string, p Principal) bool {
	return ownerID != "" && ownerID == p.UserID
}

// CanBook rejects administrator principals.
func CanBook(p Principal) error {
	if IsAdmin(p) {
		return ErrAdminCannotBook
	}

	return nil
}

// Actor names the principal in audit columns.
func Actor(ctx context.Context) string {
	if p, ok := FromContext(ctx); ok {
		return p.UserID
	}

	return constant.ContextGuest
}
