package punch

import (
	"context"
	"database/sql"
	"errors"
	"time"

	puncherrors "github.com/DeboraBSilva/Punchclock/internal/punch/errors"
	"github.com/DeboraBSilva/Punchclock/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, role, companyID, userID string, req CreatePunchRequest) (PunchResponse, error)
	GetAll(ctx context.Context, role, companyID, actorID string, canReadAll bool) ([]PunchResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PunchResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdatePunchRequest) (PunchResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
	now  func() time.Time
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo, now: time.Now}
}

// NewServiceWithClock pins the clock for deterministic day defaults.
func NewServiceWithClock(db *sql.DB, repo Repository, now func() time.Time) Service {
	return &service{db: db, repo: repo, now: now}
}

func (s *service) Create(ctx context.Context, role, companyID, userID string, req CreatePunchRequest) (PunchResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PunchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	resolved, err := ResolveTimeRange(req.WhenDay, req.FromTime, req.ToTime, nil, s.now())
	if err != nil {
		return PunchResponse{}, err
	}

	// A non super caller cannot punch into another company.
	target := tenant.ResolveCompanyID(role, companyID, req.CompanyID)
	companyUUID, err := uuid.Parse(target)
	if err != nil {
		return PunchResponse{}, puncherrors.ErrInvalidCompanyID
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return PunchResponse{}, puncherrors.ErrInvalidUserID
	}

	row := &Punch{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		UserID:    userUUID,
		From:      resolved.From,
		To:        resolved.To,
		ExtraHour: req.ExtraHour,
	}

	if req.ProjectID != "" {
		projectUUID, err := uuid.Parse(req.ProjectID)
		if err != nil {
			return PunchResponse{}, puncherrors.ErrInvalidProjectID
		}
		row.ProjectID = &projectUUID
	}

	if err := qtx.Create(ctx, row); err != nil {
		return PunchResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PunchResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, role, companyID, actorID string, canReadAll bool) ([]PunchResponse, error) {
	var (
		rows []Punch
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAllVisible(ctx, role, companyID)
	} else {
		rows, err = s.repo.FindAllByCompanyAndUser(ctx, companyID, actorID)
	}
	if err != nil {
		return nil, err
	}

	res := make([]PunchResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PunchResponse, error) {
	row, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PunchResponse{}, puncherrors.ErrPunchNotFound
		}
		return PunchResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdatePunchRequest) (PunchResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PunchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PunchResponse{}, puncherrors.ErrPunchNotFound
		}
		return PunchResponse{}, err
	}

	// Partial update: the stored range fills every absent field.
	stored := row.Range()
	resolved, err := ResolveTimeRange(req.WhenDay, req.FromTime, req.ToTime, &stored, s.now())
	if err != nil {
		return PunchResponse{}, err
	}

	row.From = resolved.From
	row.To = resolved.To

	if req.ExtraHour != nil {
		row.ExtraHour = *req.ExtraHour
	}
	if req.ProjectID != "" {
		projectUUID, err := uuid.Parse(req.ProjectID)
		if err != nil {
			return PunchResponse{}, puncherrors.ErrInvalidProjectID
		}
		row.ProjectID = &projectUUID
	}

	if err := qtx.Update(ctx, row); err != nil {
		return PunchResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PunchResponse{}, err
	}
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
		return err
	}

	return tx.Commit()
}
