package punch

import (
	"context"
	"database/sql"

	"github.com/DeboraBSilva/Punchclock/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Punch) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Punch, error)
	FindAllVisible(ctx context.Context, role, companyID string) ([]Punch, error)
	FindAllByCompanyAndUser(ctx context.Context, companyID, userID string) ([]Punch, error)
	Update(ctx context.Context, p *Punch) error
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, p *Punch) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Punch, error) {
	var p Punch
	err := r.db.WithContext(ctx).
		Preload("User").
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindAllVisible(ctx context.Context, role, companyID string) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Preload("User").
		Scopes(tenant.VisibleScope(role, companyID)).
		Order(`"from" DESC`).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByCompanyAndUser(ctx context.Context, companyID, userID string) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Preload("User").
		Scopes(tenant.Scope(companyID)).
		Where("user_id = ?", userID).
		Order(`"from" DESC`).
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, p *Punch) error {
	// Avoid persisting the preloaded User association on update.
	return r.db.WithContext(ctx).Omit("User").Save(p).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Punch{}, "id = ?", id).Error
}
