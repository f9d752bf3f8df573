package menu

import (
	"time"

	"go-kafe/internal/tenant"
)

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateMenuRequest struct {
	Name        string  `json:"name" binding:"required,max=150"`
	Price       int64   `json:"price" binding:"gte=0"`
	CategoryID  string  `json:"category_id" binding:"required,uuid"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url"`
	Available   *bool   `json:"available"`
}

type UpdateMenuRequest = CreateMenuRequest

type AvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

type MenuResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        int64     `json:"price"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Description  *string   `json:"description,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	Available    bool      `json:"available"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CatalogSection is one category of the public menu.
type CatalogSection struct {
	Category CategoryResponse `json:"category"`
	Menus    []MenuResponse   `json:"menus"`
}

func mapCategory(c Category) CategoryResponse {
	return CategoryResponse{ID: c.ID.String(), Name: c.Name}
}

func mapCategories(cs []Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, mapCategory(c))
	}
	return out
}

func mapMenu(m Menu) MenuResponse {
	return MenuResponse{
		ID:           m.ID.String(),
		Name:         m.Name,
		Price:        m.Price,
		CategoryID:   m.CategoryID.String(),
		CategoryName: m.CategoryName,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		Available:    m.Available,
		UpdatedAt:    m.UpdatedAt,
	}
}

func mapMenus(ms []Menu) []MenuResponse {
	out := make([]MenuResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, mapMenu(m))
	}
	return out
}

// buildCatalog groups available menus under their categories, keeping the
// category order and dropping empty categories.
func buildCatalog(categories []Category, menus []Menu) []CatalogSection {
	byCategory := make(map[string][]MenuResponse, len(categories))
	for _, m := range menus {
		if !m.Available {
			continue
		}
		key := m.CategoryID.String()
		byCategory[key] = append(byCategory[key], mapMenu(m))
	}

	out := make([]CatalogSection, 0, len(categories))
	for _, c := range categories {
		items := byCategory[c.ID.String()]
		if len(items) == 0 {
			continue
		}
		out = append(out, CatalogSection{Category: mapCategory(c), Menus: items})
	}
	return out
}

type PublicMenuResponse struct {
	Tenant      tenant.PublicTenantResponse `json:"tenant"`
	TableID     string                      `json:"table_id"`
	TableNumber int                         `json:"table_number"`
	Sections    []CatalogSection            `json:"sections"`
}
