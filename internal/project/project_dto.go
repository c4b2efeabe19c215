package project

type CreateProjectRequest struct {
	Name     string `json:"name" binding:"required"`
	ClientID string `json:"client_id" binding:"required,uuid"`
}

type UpdateProjectRequest struct {
	Name     string `json:"name" binding:"required"`
	ClientID string `json:"client_id" binding:"required,uuid"`
}

type ProjectResponse struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`
	Name       string `json:"name"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
