package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	projecterrors "github.com/DeboraBSilva/Punchclock/internal/project/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const ProjectAllKeyPrefix = "projects:all:"

func GetProjectAllKey(companyID string) string {
	return ProjectAllKeyPrefix + companyID
}

type Service interface {
	Create(ctx context.Context, companyID string, req CreateProjectRequest) (ProjectResponse, error)
	GetAll(ctx context.Context, companyID string) ([]ProjectResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ProjectResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client) Service {
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: zap.L().Named("project.service"),
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateProjectRequest,
) (ProjectResponse, error) {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidCompanyID
	}

	p := &Project{
		ID:        uuid.New(),
		Name:      req.Name,
		CompanyID: companyUUID,
		ClientID:  uuid.MustParse(req.ClientID),
	}

	if err := qtx.Create(ctx, p); err != nil {
		return ProjectResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	s.invalidateAll(ctx, companyID)

	return mapToResponse(*p), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
) ([]ProjectResponse, error) {
	cacheKey := GetProjectAllKey(companyID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []ProjectResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses concurrent cache misses into one DB query.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		projects, err := s.repo.FindAllByCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(projects)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]ProjectResponse), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (ProjectResponse, error) {

	p, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProjectResponse{}, projecterrors.ErrProjectNotFound
		}
		return ProjectResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateProjectRequest,
) (ProjectResponse, error) {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProjectResponse{}, projecterrors.ErrProjectNotFound
		}
		return ProjectResponse{}, err
	}

	p.Name = req.Name
	p.ClientID = uuid.MustParse(req.ClientID)

	if err := qtx.Update(ctx, p); err != nil {
		return ProjectResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	s.invalidateAll(ctx, companyID)

	return mapToResponse(*p), nil
}

func (s *service) Delete(
	ctx context.Context,
	companyID, id string,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateAll(ctx, companyID)

	return nil
}

func (s *service) invalidateAll(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetProjectAllKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate cache",
			zap.String("key", cacheKey),
			zap.Error(err),
		)
	}
}

func mapToResponse(p Project) ProjectResponse {
	resp := ProjectResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		CompanyID: p.CompanyID.String(),
	}
	if p.ClientID != uuid.Nil {
		resp.ClientID = p.ClientID.String()
	}
	if p.Client != nil {
		resp.ClientName = p.Client.Name
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(projects []Project) []ProjectResponse {
	res := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = mapToResponse(p)
	}
	return res
}
