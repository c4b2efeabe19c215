package consumer

import (
	"context"
	"encoding/json"

	"github.com/DeboraBSilva/Punchclock/internal/events"
	"github.com/DeboraBSilva/Punchclock/internal/shared/counter"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeContributionReviewed keeps the per-company review tally current.
// Counter updates are idempotent enough for at-least-once delivery; a
// duplicate bump after a failed commit is accepted.
func ConsumeContributionReviewed(
	ctx context.Context,
	reader *kafkago.Reader,
	counterRepo counter.Repository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.contribution_reviewed")
	log.Info("contribution reviewed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("contribution reviewed consumer stopped")
				return
			}
			log.Error("fetch contribution reviewed message failed", zap.Error(err))
			continue
		}

		var event events.ContributionReviewedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode contribution reviewed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		counterType := "contributions_reviewed"
		if event.State == "APPROVED" {
			counterType = "contributions_approved"
		}

		if _, err := counterRepo.Increment(ctx, event.CompanyID, counterType); err != nil {
			log.Error("increment review counter failed",
				zap.String("contribution_id", event.ContributionID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit contribution reviewed message failed", zap.Error(err))
			continue
		}

		log.Info("contribution review recorded",
			zap.String("contribution_id", event.ContributionID),
			zap.String("company_id", event.CompanyID),
			zap.String("state", event.State),
		)
	}
}
