package superadmin

import "time"

type SuperAdminResponse struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	AssignedAt   time.Time `json:"assigned_at"`
	ViaBootstrap bool      `json:"via_bootstrap"`
}

func mapToResponse(r SuperAdminRole) SuperAdminResponse {
	return SuperAdminResponse{
		UserID:       r.UserID.String(),
		Email:        r.Email,
		Role:         r.Role,
		AssignedAt:   r.AssignedAt,
		ViaBootstrap: r.ViaBootstrap,
	}
}
