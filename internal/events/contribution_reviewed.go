package events

import "time"

const ContributionReviewedTopic = "punchclock.contribution.reviewed.v1"

type ContributionReviewedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	ContributionID string    `json:"contribution_id"`
	CompanyID      string    `json:"company_id"`
	UserID         string    `json:"user_id"`
	ReviewerID     string    `json:"reviewer_id"`
	State          string    `json:"state"`
	OccurredAt     time.Time `json:"occurred_at"`
}
