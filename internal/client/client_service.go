package client

import (
	"context"
	"database/sql"
	"errors"

	clienterrors "github.com/DeboraBSilva/Punchclock/internal/client/errors"
	"github.com/DeboraBSilva/Punchclock/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, role, companyID string, req CreateClientRequest) (ClientResponse, error)
	GetAll(ctx context.Context, role, companyID string) ([]ClientResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ClientResponse, error)
	Update(ctx context.Context, role, companyID, id string, req UpdateClientRequest) (ClientResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	role, companyID string,
	req CreateClientRequest,
) (ClientResponse, error) {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClientResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// A non super caller cannot park the client under another company.
	target := tenant.ResolveCompanyID(role, companyID, req.CompanyID)
	companyUUID, err := uuid.Parse(target)
	if err != nil {
		return ClientResponse{}, clienterrors.ErrInvalidCompanyID
	}

	cl := &Client{
		ID:        uuid.New(),
		Name:      req.Name,
		CompanyID: companyUUID,
	}

	if err := qtx.Create(ctx, cl); err != nil {
		return ClientResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ClientResponse{}, err
	}

	return mapToResponse(*cl), nil
}

func (s *service) GetAll(ctx context.Context, role, companyID string) ([]ClientResponse, error) {
	clients, err := s.repo.FindAllVisible(ctx, role, companyID)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(clients), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ClientResponse, error) {
	cl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ClientResponse{}, clienterrors.ErrClientNotFound
		}
		return ClientResponse{}, err
	}

	return mapToResponse(*cl), nil
}

func (s *service) Update(
	ctx context.Context,
	role, companyID, id string,
	req UpdateClientRequest,
) (ClientResponse, error) {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClientResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cl, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ClientResponse{}, clienterrors.ErrClientNotFound
		}
		return ClientResponse{}, err
	}

	cl.Name = req.Name

	// Super users may move a client between companies.
	if req.CompanyID != "" && role == tenant.RoleSuper {
		companyUUID, err := uuid.Parse(req.CompanyID)
		if err != nil {
			return ClientResponse{}, clienterrors.ErrInvalidCompanyID
		}
		cl.CompanyID = companyUUID
	}

	if err := qtx.Update(ctx, cl); err != nil {
		return ClientResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ClientResponse{}, err
	}

	return mapToResponse(*cl), nil
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

func mapToResponse(cl Client) ClientResponse {
	return ClientResponse{
		ID:        cl.ID.String(),
		CompanyID: cl.CompanyID.String(),
		Name:      cl.Name,
		CreatedAt: cl.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: cl.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapToListResponse(clients []Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i, cl := range clients {
		res[i] = mapToResponse(cl)
	}
	return res
}
