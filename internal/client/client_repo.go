package client

import (
	"context"
	"database/sql"

	"github.com/DeboraBSilva/Punchclock/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, cl *Client) error
	FindAllVisible(ctx context.Context, role, companyID string) ([]Client, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Client, error)
	Update(ctx context.Context, cl *Client) error
	Delete(ctx context.Context, companyID string, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, cl *Client) error {
	return r.db.WithContext(ctx).Create(cl).Error
}

func (r *repository) FindAllVisible(ctx context.Context, role, companyID string) ([]Client, error) {
	var clients []Client
	err := r.db.WithContext(ctx).
		Scopes(tenant.VisibleScope(role, companyID)).
		Order("name ASC").
		Find(&clients).Error
	return clients, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Client, error) {
	var cl Client
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&cl, "id = ?", id).Error
	return &cl, err
}

func (r *repository) Update(ctx context.Context, cl *Client) error {
	return r.db.WithContext(ctx).Save(cl).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Client{}, "id = ?", id).Error
}
