package events

import "time"

const ContributionReceivedTopic = "punchclock.contribution.lifecycle.v1"

type ContributionReceivedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	ContributionID string    `json:"contribution_id"`
	CompanyID      string    `json:"company_id"`
	UserID         string    `json:"user_id"`
	Link           string    `json:"link"`
	OccurredAt     time.Time `json:"occurred_at"`
}
