package table

type TableRequest struct {
	TableNumber int    `json:"table_number" binding:"required,gt=0"`
	Status      string `json:"status" binding:"omitempty,oneof=available occupied"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available occupied"`
}

type TableResponse struct {
	ID          string `json:"id"`
	TableNumber int    `json:"table_number"`
	Status      string `json:"status"`
	QRURL       string `json:"qr_url,omitempty"`
}

func mapToResponse(t Table, origin, slug string) TableResponse {
	resp := TableResponse{
		ID:          t.ID.String(),
		TableNumber: t.TableNumber,
		Status:      t.Status,
	}
	if slug != "" {
		resp.QRURL = QRPayload(origin, slug, resp.ID)
	}
	return resp
}
