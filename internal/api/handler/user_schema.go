package handler

import (
	"time"

	"github.com/gct/report-admin/internal/core/ports"
)

// --- Request / Response types ---

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required,min=6,max=50"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN DESIGNER VIEWER"`
	Enabled  *bool  `json:"enabled"`
}

// updateUserRequest is a partial update: nil fields leave the stored values
// untouched, so "clear" and "leave unchanged" can never be confused.
type updateUserRequest struct {
	Password *string `json:"password" validate:"omitempty,min=6,max=50"`
	Role     *string `json:"role"     validate:"omitempty,oneof=ADMIN DESIGNER VIEWER"`
	Enabled  *bool   `json:"enabled"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(v ports.UserView) userResponse {
	return userResponse{
		ID:        v.ID,
		Username:  v.Username,
		Role:      string(v.Role),
		Enabled:   v.Enabled,
		CreatedAt: v.CreatedAt.UTC(),
		UpdatedAt: v.UpdatedAt.UTC(),
	}
}

func toUserListResponse(views []ports.UserView) []userResponse {
	out := make([]userResponse, len(views))
	for i, v := range views {
		out[i] = toUserResponse(v)
	}
	return out
}
