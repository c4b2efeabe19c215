package contribution

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	contributionerrors "github.com/DeboraBSilva/Punchclock/internal/contribution/errors"
	"github.com/DeboraBSilva/Punchclock/internal/events"
	"github.com/DeboraBSilva/Punchclock/internal/messaging/kafka"
	"github.com/DeboraBSilva/Punchclock/internal/shared/contextutil"
	"github.com/DeboraBSilva/Punchclock/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	WindowThisWeek        = "this_week"
	WindowLastWeek        = "last_week"
	WindowActiveEngineers = "active_engineers"
)

type Service interface {
	Create(ctx context.Context, role, companyID, userID string, req CreateContributionRequest) (ContributionResponse, error)
	GetAll(ctx context.Context, role, companyID, window string) ([]ContributionResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ContributionResponse, error)
	Approve(ctx context.Context, companyID, id, actorID string) (ContributionResponse, error)
	Refuse(ctx context.Context, companyID, id, actorID string) (ContributionResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("contribution.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contribution.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		now:    time.Now,
		logger: l,
	}
}

// NewServiceWithClock pins the clock for deterministic week windows.
func NewServiceWithClock(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, now func() time.Time) Service {
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		now:    now,
		logger: zap.L().Named("contribution.service"),
	}
}

func (s *service) Create(
	ctx context.Context,
	role, companyID, userID string,
	req CreateContributionRequest,
) (ContributionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create contribution requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("user_id", userID),
		zap.String("link", req.Link),
	)

	if req.Link == "" {
		return ContributionResponse{}, contributionerrors.ErrLinkRequired
	}

	target := tenant.ResolveCompanyID(role, companyID, req.CompanyID)
	companyUUID, err := uuid.Parse(target)
	if err != nil {
		return ContributionResponse{}, contributionerrors.ErrInvalidCompanyID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return ContributionResponse{}, contributionerrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create contribution begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ContributionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Contribution{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		UserID:     userUUID,
		Link:       req.Link,
		Repository: req.Repository,
		State:      StateReceived,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create contribution persist failed", zap.Error(err))
		return ContributionResponse{}, mapRepositoryError(err)
	}

	event := events.ContributionReceivedEvent{
		EventType:      "contribution_received",
		RequestID:      rid,
		ContributionID: row.ID.String(),
		CompanyID:      target,
		UserID:         userID,
		Link:           row.Link,
		OccurredAt:     s.now().UTC(),
	}
	if err := s.queueOutbox(ctx, tx, row.ID.String(), event.EventType, events.ContributionReceivedTopic, rid, event); err != nil {
		return ContributionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return ContributionResponse{}, err
	}

	s.logger.Info("create contribution success",
		zap.String("request_id", rid),
		zap.String("contribution_id", row.ID.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, role, companyID, window string) ([]ContributionResponse, error) {
	var (
		rows []Contribution
		err  error
	)

	switch window {
	case WindowThisWeek:
		start := ThisWeekStart(s.now())
		rows, err = s.repo.FindCreatedBetween(ctx, role, companyID, start, start.AddDate(0, 0, 7))
	case WindowLastWeek:
		start, end := LastWeekBounds(s.now())
		rows, err = s.repo.FindCreatedBetween(ctx, role, companyID, start, end)
	case WindowActiveEngineers:
		rows, err = s.repo.FindAllByActiveEngineers(ctx, role, companyID)
	default:
		rows, err = s.repo.FindAllVisible(ctx, role, companyID)
	}
	if err != nil {
		s.logger.Error("get all contributions failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ContributionResponse, error) {
	row, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ContributionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Approve(ctx context.Context, companyID, id, actorID string) (ContributionResponse, error) {
	return s.review(ctx, companyID, id, actorID, EventApprove)
}

func (s *service) Refuse(ctx context.Context, companyID, id, actorID string) (ContributionResponse, error) {
	return s.review(ctx, companyID, id, actorID, EventRefuse)
}

// review moves a contribution through the state machine and records who
// decided and when, all inside one transaction with the outbox write.
func (s *service) review(
	ctx context.Context,
	companyID, id, actorID string,
	event Event,
) (ContributionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("review contribution requested",
		zap.String("request_id", rid),
		zap.String("contribution_id", id),
		zap.String("actor_id", actorID),
		zap.String("event", string(event)),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ContributionResponse{}, contributionerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review contribution begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ContributionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ContributionResponse{}, contributionerrors.ErrContributionNotFound
		}
		return ContributionResponse{}, err
	}

	next, err := Transition(row.State, event)
	if err != nil {
		s.logger.Warn("review contribution rejected",
			zap.String("contribution_id", id),
			zap.String("state", string(row.State)),
			zap.String("event", string(event)),
		)
		return ContributionResponse{}, err
	}

	row.State = next
	row.ReviewerID = &actorUUID
	reviewedAt := s.now().UTC()
	row.ReviewedAt = &reviewedAt

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("review contribution persist failed", zap.Error(err))
		return ContributionResponse{}, mapRepositoryError(err)
	}

	reviewed := events.ContributionReviewedEvent{
		EventType:      "contribution_reviewed",
		RequestID:      rid,
		ContributionID: row.ID.String(),
		CompanyID:      row.CompanyID.String(),
		UserID:         row.UserID.String(),
		ReviewerID:     actorID,
		State:          string(next),
		OccurredAt:     reviewedAt,
	}
	if err := s.queueOutbox(ctx, tx, row.ID.String(), reviewed.EventType, events.ContributionReviewedTopic, rid, reviewed); err != nil {
		return ContributionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return ContributionResponse{}, err
	}

	s.logger.Info("review contribution success",
		zap.String("request_id", rid),
		zap.String("contribution_id", row.ID.String()),
		zap.String("state", string(next)),
	)
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) queueOutbox(
	ctx context.Context,
	tx *sql.Tx,
	aggregateID, eventType, topic, rid string,
	event any,
) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "contribution",
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("contribution outbox persist failed",
			zap.String("contribution_id", aggregateID),
			zap.Error(err),
		)
		return err
	}

	return nil
}
