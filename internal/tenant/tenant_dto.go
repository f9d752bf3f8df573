package tenant

import "time"

type CreateTenantRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Address     string `json:"address" binding:"max=255"`
	OwnerName   string `json:"owner_name" binding:"max=100"`
	PhoneNumber string `json:"phone_number" binding:"max=30"`
}

type UpdateTenantRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Address     string `json:"address" binding:"max=255"`
	OwnerName   string `json:"owner_name" binding:"max=100"`
	PhoneNumber string `json:"phone_number" binding:"max=30"`
}

type UpdateSettingsRequest struct {
	LogoURL        string `json:"logo_url" binding:"omitempty,url"`
	QrisImageURL   string `json:"qris_image_url" binding:"omitempty,url"`
	Address        string `json:"address" binding:"max=255"`
	OwnerName      string `json:"owner_name" binding:"max=100"`
	PhoneNumber    string `json:"phone_number" binding:"max=30"`
	ReceiptMessage string `json:"receipt_message" binding:"max=500"`
}

// RotateDailyTokenRequest: an empty token asks the server to draw one.
type RotateDailyTokenRequest struct {
	Token string `json:"token" binding:"omitempty,len=4,numeric"`
}

type TenantResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	DailyToken     string    `json:"daily_token"`
	LogoURL        string    `json:"logo_url"`
	QrisImageURL   string    `json:"qris_image_url"`
	Address        string    `json:"address"`
	OwnerName      string    `json:"owner_name"`
	PhoneNumber    string    `json:"phone_number"`
	ReceiptMessage string    `json:"receipt_message"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PublicTenantResponse is what customers see. It never carries the daily token.
type PublicTenantResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	LogoURL        string `json:"logo_url"`
	QrisImageURL   string `json:"qris_image_url"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phone_number"`
	ReceiptMessage string `json:"receipt_message"`
	Canonical      bool   `json:"canonical"`
}

func mapToResponse(t Tenant) TenantResponse {
	return TenantResponse{
		ID:             t.ID.String(),
		Name:           t.Name,
		Slug:           t.Slug,
		DailyToken:     t.DailyToken,
		LogoURL:        t.LogoURL,
		QrisImageURL:   t.QrisImageURL,
		Address:        t.Address,
		OwnerName:      t.OwnerName,
		PhoneNumber:    t.PhoneNumber,
		ReceiptMessage: t.ReceiptMessage,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func mapToListResponse(ts []Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, mapToResponse(t))
	}
	return out
}

func MapToPublicResponse(t Tenant, canonical bool) PublicTenantResponse {
	return PublicTenantResponse{
		ID:             t.ID.String(),
		Name:           t.Name,
		Slug:           t.Slug,
		LogoURL:        t.LogoURL,
		QrisImageURL:   t.QrisImageURL,
		Address:        t.Address,
		PhoneNumber:    t.PhoneNumber,
		ReceiptMessage: t.ReceiptMessage,
		Canonical:      canonical,
	}
}
