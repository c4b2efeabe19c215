package contribution

import "time"

type CreateContributionRequest struct {
	Link       string `json:"link" binding:"required,url,max=500"`
	Repository string `json:"repository" binding:"omitempty,max=255"`
	// Honored only for super users.
	CompanyID string `json:"company_id" binding:"omitempty,uuid"`
}

type ContributionResponse struct {
	ID         string     `json:"id"`
	CompanyID  string     `json:"company_id"`
	UserID     string     `json:"user_id"`
	UserName   string     `json:"user_name,omitempty"`
	Link       string     `json:"link"`
	Repository string     `json:"repository,omitempty"`
	State      string     `json:"state"`
	ReviewerID string     `json:"reviewer_id,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func mapToResponse(c Contribution) ContributionResponse {
	resp := ContributionResponse{
		ID:         c.ID.String(),
		CompanyID:  c.CompanyID.String(),
		UserID:     c.UserID.String(),
		Link:       c.Link,
		Repository: c.Repository,
		State:      string(c.State),
		ReviewedAt: c.ReviewedAt,
		CreatedAt:  c.CreatedAt,
	}
	if c.ReviewerID != nil {
		resp.ReviewerID = c.ReviewerID.String()
	}
	if c.User != nil {
		resp.UserName = c.User.Name
	}
	return resp
}

func mapToListResponse(rows []Contribution) []ContributionResponse {
	res := make([]ContributionResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
