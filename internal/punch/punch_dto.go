package punch

import "time"

type CreatePunchRequest struct {
	WhenDay   string `json:"when_day" binding:"omitempty,datetime=2006-01-02"`
	FromTime  string `json:"from_time" binding:"omitempty,datetime=15:04"`
	ToTime    string `json:"to_time" binding:"omitempty,datetime=15:04"`
	ExtraHour bool   `json:"extra_hour"`
	ProjectID string `json:"project_id" binding:"omitempty,uuid"`
	// Honored only for super users; everyone else gets their own company.
	CompanyID string `json:"company_id" binding:"omitempty,uuid"`
}

type UpdatePunchRequest struct {
	WhenDay   string `json:"when_day" binding:"omitempty,datetime=2006-01-02"`
	FromTime  string `json:"from_time" binding:"omitempty,datetime=15:04"`
	ToTime    string `json:"to_time" binding:"omitempty,datetime=15:04"`
	ExtraHour *bool  `json:"extra_hour"`
	ProjectID string `json:"project_id" binding:"omitempty,uuid"`
}

type PunchResponse struct {
	ID        string  `json:"id"`
	CompanyID string  `json:"company_id"`
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name,omitempty"`
	ProjectID *string `json:"project_id,omitempty"`
	WhenDay   string  `json:"when_day"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	ExtraHour bool    `json:"extra_hour"`
	Hours     float64 `json:"hours"`
}

func mapToResponse(p Punch) PunchResponse {
	resp := PunchResponse{
		ID:        p.ID.String(),
		CompanyID: p.CompanyID.String(),
		UserID:    p.UserID.String(),
		WhenDay:   p.From.UTC().Format(dayLayout),
		From:      p.From.UTC().Format(time.RFC3339),
		To:        p.To.UTC().Format(time.RFC3339),
		ExtraHour: p.ExtraHour,
		Hours:     p.To.Sub(p.From).Hours(),
	}
	if p.ProjectID != nil {
		v := p.ProjectID.String()
		resp.ProjectID = &v
	}
	if p.User != nil {
		resp.UserName = p.User.Name
	}
	return resp
}
