package client

type CreateClientRequest struct {
	Name string `json:"name" binding:"required"`
	// Honored only for super users; everyone else gets their own company.
	CompanyID string `json:"company_id" binding:"omitempty,uuid"`
}

type UpdateClientRequest struct {
	Name      string `json:"name" binding:"required"`
	CompanyID string `json:"company_id" binding:"omitempty,uuid"`
}

type ClientResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
