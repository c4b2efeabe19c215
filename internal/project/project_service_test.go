package project_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DeboraBSilva/Punchclock/internal/project"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProjectRepo struct {
	CreateFn             func(ctx context.Context, p *project.Project) error
	FindAllByCompanyFn   func(ctx context.Context, companyID string) ([]project.Project, error)
	FindByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*project.Project, error)
	UpdateFn             func(ctx context.Context, p *project.Project) error
	DeleteFn             func(ctx context.Context, companyID, id string) error
}

func (f *fakeProjectRepo) WithTx(tx *sql.Tx) project.Repository { return f }

func (f *fakeProjectRepo) Create(ctx context.Context, p *project.Project) error {
	return f.CreateFn(ctx, p)
}

func (f *fakeProjectRepo) FindAllByCompany(ctx context.Context, companyID string) ([]project.Project, error) {
	return f.FindAllByCompanyFn(ctx, companyID)
}

func (f *fakeProjectRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*project.Project, error) {
	return f.FindByIDAndCompanyFn(ctx, companyID, id)
}

func (f *fakeProjectRepo) Update(ctx context.Context, p *project.Project) error {
	return f.UpdateFn(ctx, p)
}

func (f *fakeProjectRepo) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}

func TestProjectService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	cacheKey := project.GetProjectAllKey(companyID)

	t.Run("cache hit skips repository", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()

		expected := []project.ProjectResponse{
			{ID: "p-1", Name: "Website"},
			{ID: "p-2", Name: "Mobile App"},
		}
		jsonResp, _ := json.Marshal(expected)
		redisMock.ExpectGet(cacheKey).SetVal(string(jsonResp))

		repo := &fakeProjectRepo{
			FindAllByCompanyFn: func(ctx context.Context, cid string) ([]project.Project, error) {
				t.Fatal("repository must not be hit on cache hit")
				return nil, nil
			},
		}
		svc := project.NewService(nil, repo, rdb)

		resp, err := svc.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Website", resp[0].Name)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads from db and fills cache", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(cacheKey).RedisNil()

		projects := []project.Project{
			{ID: uuid.New(), Name: "Website", CompanyID: uuid.MustParse(companyID)},
		}
		expected := []project.ProjectResponse{
			{ID: projects[0].ID.String(), Name: "Website", CompanyID: companyID},
		}
		jsonResp, _ := json.Marshal(expected)
		redisMock.ExpectSet(cacheKey, jsonResp, 30*time.Minute).SetVal("OK")

		repo := &fakeProjectRepo{
			FindAllByCompanyFn: func(ctx context.Context, cid string) ([]project.Project, error) {
				assert.Equal(t, companyID, cid)
				return projects, nil
			},
		}
		svc := project.NewService(nil, repo, rdb)

		resp, err := svc.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Website", resp[0].Name)
	})
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("commits and invalidates cache", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectDel(project.GetProjectAllKey(companyID)).SetVal(1)

		repo := &fakeProjectRepo{
			CreateFn: func(ctx context.Context, p *project.Project) error {
				assert.Equal(t, companyID, p.CompanyID.String())
				return nil
			},
		}
		svc := project.NewService(db, repo, rdb)

		res, err := svc.Create(ctx, companyID, project.CreateProjectRequest{
			Name:     "Website",
			ClientID: uuid.New().String(),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Website", res.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("rolls back on repo error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeProjectRepo{
			CreateFn: func(ctx context.Context, p *project.Project) error {
				return assert.AnError
			},
		}
		svc := project.NewService(db, repo, nil)

		_, err = svc.Create(ctx, companyID, project.CreateProjectRequest{
			Name:     "Website",
			ClientID: uuid.New().String(),
		})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	projectID := uuid.New().String()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectDel(project.GetProjectAllKey(companyID)).SetVal(1)

	repo := &fakeProjectRepo{
		DeleteFn: func(ctx context.Context, cid, id string) error {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, projectID, id)
			return nil
		},
	}
	svc := project.NewService(db, repo, rdb)

	err = svc.Delete(ctx, companyID, projectID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
