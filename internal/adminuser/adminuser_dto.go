package adminuser

import "time"

type ProvisionAdminRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	TenantID string `json:"tenant_id" binding:"required,uuid"`
}

type AdminProfileResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	TenantID   string    `json:"tenant_id"`
	TenantName string    `json:"tenant_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func mapToResponse(p AdminProfile) AdminProfileResponse {
	resp := AdminProfileResponse{
		ID:         p.ID.String(),
		Email:      p.Email,
		Role:       p.Role,
		TenantName: p.TenantName,
		CreatedAt:  p.CreatedAt,
	}
	if p.TenantID != nil {
		resp.TenantID = p.TenantID.String()
	}
	return resp
}

func mapToListResponse(ps []AdminProfile) []AdminProfileResponse {
	out := make([]AdminProfileResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, mapToResponse(p))
	}
	return out
}
