package contribution

import (
	"context"
	"database/sql"
	"time"

	"github.com/DeboraBSilva/Punchclock/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Contribution) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Contribution, error)
	FindAllVisible(ctx context.Context, role, companyID string) ([]Contribution, error)
	FindCreatedBetween(ctx context.Context, role, companyID string, from, to time.Time) ([]Contribution, error)
	FindAllByActiveEngineers(ctx context.Context, role, companyID string) ([]Contribution, error)
	Update(ctx context.Context, c *Contribution) error
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

func (r *repository) Create(ctx context.Context, c *Contribution) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Contribution, error) {
	var c Contribution
	err := r.db.WithContext(ctx).
		Preload("User").
		Scopes(tenant.Scope(companyID)).
		First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) FindAllVisible(ctx context.Context, role, companyID string) ([]Contribution, error) {
	var rows []Contribution
	err := r.db.WithContext(ctx).
		Preload("User").
		Scopes(tenant.VisibleScope(role, companyID)).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindCreatedBetween(ctx context.Context, role, companyID string, from, to time.Time) ([]Contribution, error) {
	var rows []Contribution
	err := r.db.WithContext(ctx).
		Preload("User").
		Scopes(tenant.VisibleScope(role, companyID)).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// FindAllByActiveEngineers lists contributions whose owning user is an
// active engineer. The company filter is qualified by hand because both
// joined tables carry a company_id column.
func (r *repository) FindAllByActiveEngineers(ctx context.Context, role, companyID string) ([]Contribution, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.id = contributions.user_id").
		Where("users.occupation = ? AND users.is_active = ?", "ENGINEER", true)
	if role != tenant.RoleSuper {
		q = q.Where("contributions.company_id = ?", companyID)
	}

	var rows []Contribution
	err := q.Order("contributions.created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, c *Contribution) error {
	return r.db.WithContext(ctx).Omit("User").Save(c).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Contribution{}, "id = ?", id).Error
}
