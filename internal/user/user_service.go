package user

import (
	"context"
	"errors"

	"github.com/DeboraBSilva/Punchclock/internal/shared/contextutil"
	"github.com/DeboraBSilva/Punchclock/internal/tenant"
	usererrors "github.com/DeboraBSilva/Punchclock/internal/user/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	GetAll(ctx context.Context, role, companyID string) ([]UserResponse, error)
	GetByID(ctx context.Context, role, companyID, id string) (UserResponse, error)
	Create(ctx context.Context, role, companyID string, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, role, companyID, id string, req UpdateUserRequest) (UserResponse, error)
	ToggleStatus(ctx context.Context, role, companyID, id string, isActive bool) error
	ChangePassword(ctx context.Context, role, companyID, userID, currentPassword, newPassword string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, role, companyID string) ([]UserResponse, error) {
	users, err := s.repo.FindAllVisible(ctx, role, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}

	return resp, nil
}

func (s *service) GetByID(ctx context.Context, role, companyID, id string) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, role, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	return mapToResponse(*u), nil
}

func (s *service) Create(ctx context.Context, role, companyID string, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	l.Info("creating user",
		zap.String("email", req.Email),
		zap.String("company_id", companyID),
	)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	// Only SUPER may place the user in another company.
	targetCompany := tenant.ResolveCompanyID(role, companyID, req.CompanyID)
	companyUUID, err := uuid.Parse(targetCompany)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidCompanyID
	}

	newRole := req.Role
	if newRole == "" {
		newRole = RoleEmployee
	}
	occupation := req.Occupation
	if occupation == "" {
		occupation = OccupationEngineer
	}

	u := &User{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         newRole,
		Occupation:   occupation,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return UserResponse{}, usererrors.ErrUserAlreadyExists
		}
		l.Error("failed to create user", zap.Error(err))
		return UserResponse{}, err
	}

	l.Info("user created successfully", zap.String("email", u.Email))
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, role, companyID, id string, req UpdateUserRequest) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, role, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Occupation != nil {
		u.Occupation = *req.Occupation
	}

	if err := s.repo.Update(ctx, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return UserResponse{}, usererrors.ErrUserAlreadyExists
		}
		return UserResponse{}, err
	}

	return mapToResponse(*u), nil
}

func (s *service) ToggleStatus(ctx context.Context, role, companyID, id string, isActive bool) error {
	l := contextutil.GetLogger(ctx, nil)

	u, err := s.repo.FindByID(ctx, role, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		l.Error("failed to find user", zap.Error(err))
		return err
	}

	u.IsActive = isActive

	if err := s.repo.Update(ctx, u); err != nil {
		l.Error("failed to update user status", zap.Error(err))
		return err
	}

	return nil
}

func (s *service) ChangePassword(ctx context.Context, role, companyID, userID, currentPassword, newPassword string) error {
	l := contextutil.GetLogger(ctx, nil)

	u, err := s.repo.FindByID(ctx, role, companyID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return usererrors.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash new password", zap.Error(err))
		return err
	}

	u.PasswordHash = string(hashed)
	return s.repo.Update(ctx, u)
}
