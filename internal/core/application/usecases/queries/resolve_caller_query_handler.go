package queries

import (
	"context"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

type ResolveCallerQueryHandler struct {
	db *gorm.DB
}

func NewResolveCallerQueryHandler(db *gorm.DB) ResolveCallerQueryHandler {
	return ResolveCallerQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError when the user no longer exists.
func (h ResolveCallerQueryHandler) Handle(ctx context.Context, query ResolveCallerQuery) (access.Caller, error) {
	if err := query.Validate(); err != nil {
		return access.Caller{}, err
	}

	var roles []string
	err := h.db.WithContext(ctx).Raw(`
		SELECT role
		FROM users
		WHERE id = ?
	`, query.userID.Bytes()).Scan(&roles).Error
	if err != nil {
		return access.Caller{}, err
	}
	if len(roles) == 0 {
		return access.Caller{}, errs.NewObjectNotFoundError("user", query.userID.String())
	}

	role, err := access.ParseRole(roles[0])
	if err != nil {
		return access.Caller{}, err
	}

	return access.NewCaller(query.userID, role)
}
