package user

import (
	"context"

	"github.com/DeboraBSilva/Punchclock/internal/tenant"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, role, companyID, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAllVisible(ctx context.Context, role, companyID string) ([]User, error)
	Update(ctx context.Context, u *User) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, role, companyID, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Scopes(tenant.VisibleScope(role, companyID)).
		First(&u, "id = ?", id).Error

	return &u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return &u, err
}

func (r *repository) FindAllVisible(ctx context.Context, role, companyID string) ([]User, error) {
	var users []User

	err := r.db.WithContext(ctx).
		Scopes(tenant.VisibleScope(role, companyID)).
		Order("name ASC").
		Find(&users).Error

	return users, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
