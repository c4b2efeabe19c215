package company

import (
	"context"
	"errors"

	companyerrors "github.com/DeboraBSilva/Punchclock/internal/company/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*CompanyResponse, error)
	GetAll(ctx context.Context) ([]CompanyResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (*CompanyResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (*CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		return nil, err
	}

	return s.mapToResponse(comp), nil
}

func (s *service) GetAll(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		resp[i] = *s.mapToResponse(&c)
	}

	return resp, nil
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error) {
	comp := &Company{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, companyerrors.ErrCompanyAlreadyExists
		}
		return nil, err
	}

	return s.mapToResponse(comp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (*CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		comp.Name = req.Name
	}
	if req.Email != "" {
		comp.Email = req.Email
	}
	if req.IsActive != nil {
		comp.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, comp); err != nil {
		return nil, err
	}

	return s.mapToResponse(comp), nil
}

func (s *service) mapToResponse(c *Company) *CompanyResponse {
	return &CompanyResponse{
		ID:       c.ID.String(),
		Name:     c.Name,
		Email:    c.Email,
		IsActive: c.IsActive,
	}
}
