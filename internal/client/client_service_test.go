package client_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DeboraBSilva/Punchclock/internal/client"
	clienterrors "github.com/DeboraBSilva/Punchclock/internal/client/errors"
	"github.com/DeboraBSilva/Punchclock/internal/tenant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeClientRepo struct {
	CreateFn             func(ctx context.Context, cl *client.Client) error
	FindAllVisibleFn     func(ctx context.Context, role, companyID string) ([]client.Client, error)
	FindByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*client.Client, error)
	UpdateFn             func(ctx context.Context, cl *client.Client) error
	DeleteFn             func(ctx context.Context, companyID, id string) error
}

func (f *fakeClientRepo) WithTx(tx *sql.Tx) client.Repository { return f }

func (f *fakeClientRepo) Create(ctx context.Context, cl *client.Client) error {
	return f.CreateFn(ctx, cl)
}

func (f *fakeClientRepo) FindAllVisible(ctx context.Context, role, companyID string) ([]client.Client, error) {
	return f.FindAllVisibleFn(ctx, role, companyID)
}

func (f *fakeClientRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*client.Client, error) {
	return f.FindByIDAndCompanyFn(ctx, companyID, id)
}

func (f *fakeClientRepo) Update(ctx context.Context, cl *client.Client) error {
	return f.UpdateFn(ctx, cl)
}

func (f *fakeClientRepo) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestClientService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("employee company override", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectTx(t, mock, true)

		other := uuid.New().String()
		repo := &fakeClientRepo{
			CreateFn: func(ctx context.Context, cl *client.Client) error {
				// Requested company must be ignored for non super callers.
				assert.Equal(t, companyID, cl.CompanyID.String())
				return nil
			},
		}
		svc := client.NewService(db, repo)

		res, err := svc.Create(ctx, "EMPLOYEE", companyID, client.CreateClientRequest{
			Name:      "Acme Corp",
			CompanyID: other,
		})

		assert.NoError(t, err)
		assert.Equal(t, companyID, res.CompanyID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("super picks target company", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectTx(t, mock, true)

		other := uuid.New().String()
		repo := &fakeClientRepo{
			CreateFn: func(ctx context.Context, cl *client.Client) error {
				assert.Equal(t, other, cl.CompanyID.String())
				return nil
			},
		}
		svc := client.NewService(db, repo)

		res, err := svc.Create(ctx, tenant.RoleSuper, companyID, client.CreateClientRequest{
			Name:      "Acme Corp",
			CompanyID: other,
		})

		assert.NoError(t, err)
		assert.Equal(t, other, res.CompanyID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on repo error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectTx(t, mock, false)

		repo := &fakeClientRepo{
			CreateFn: func(ctx context.Context, cl *client.Client) error {
				return assert.AnError
			},
		}
		svc := client.NewService(db, repo)

		_, err = svc.Create(ctx, "EMPLOYEE", companyID, client.CreateClientRequest{Name: "Acme"})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClientService_GetByID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("not found", func(t *testing.T) {
		repo := &fakeClientRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*client.Client, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := client.NewService(nil, repo)

		_, err := svc.GetByID(ctx, companyID, uuid.New().String())

		assert.ErrorIs(t, err, clienterrors.ErrClientNotFound)
	})
}

func TestClientService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	clientID := uuid.New()

	t.Run("employee cannot move client to another company", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectTx(t, mock, true)

		other := uuid.New().String()
		repo := &fakeClientRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*client.Client, error) {
				return &client.Client{ID: clientID, Name: "Old", CompanyID: companyID}, nil
			},
			UpdateFn: func(ctx context.Context, cl *client.Client) error {
				assert.Equal(t, companyID, cl.CompanyID)
				assert.Equal(t, "New", cl.Name)
				return nil
			},
		}
		svc := client.NewService(db, repo)

		res, err := svc.Update(ctx, "EMPLOYEE", companyID.String(), clientID.String(), client.UpdateClientRequest{
			Name:      "New",
			CompanyID: other,
		})

		assert.NoError(t, err)
		assert.Equal(t, companyID.String(), res.CompanyID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClientService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	clientID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectTx(t, mock, true)

		repo := &fakeClientRepo{
			DeleteFn: func(ctx context.Context, cid, id string) error {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, clientID, id)
				return nil
			},
		}
		svc := client.NewService(db, repo)

		err = svc.Delete(ctx, companyID, clientID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
