package project

import (
	"context"
	"database/sql"

	"github.com/DeboraBSilva/Punchclock/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Project) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Project, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Project, error)
	Update(ctx context.Context, p *Project) error
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

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Project, error) {
	var projects []Project
	err := r.db.WithContext(ctx).
		Preload("Client").
		Scopes(tenant.Scope(companyID)).
		Find(&projects).Error
	return projects, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).
		Preload("Client").
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	// Avoid persisting the preloaded Client association on update.
	return r.db.WithContext(ctx).Omit("Client").Save(p).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Project{}, "id = ?", id).Error
}
