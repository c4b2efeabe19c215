package contribution_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DeboraBSilva/Punchclock/internal/contribution"
	contributionerrors "github.com/DeboraBSilva/Punchclock/internal/contribution/errors"
	"github.com/DeboraBSilva/Punchclock/internal/events"
	"github.com/DeboraBSilva/Punchclock/internal/messaging/kafka"
	"github.com/DeboraBSilva/Punchclock/internal/tenant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeContributionRepo struct {
	CreateFn                func(ctx context.Context, c *contribution.Contribution) error
	FindByIDAndCompanyFn    func(ctx context.Context, companyID, id string) (*contribution.Contribution, error)
	FindAllVisibleFn        func(ctx context.Context, role, companyID string) ([]contribution.Contribution, error)
	FindCreatedBetweenFn    func(ctx context.Context, role, companyID string, from, to time.Time) ([]contribution.Contribution, error)
	FindByActiveEngineersFn func(ctx context.Context, role, companyID string) ([]contribution.Contribution, error)
	UpdateFn                func(ctx context.Context, c *contribution.Contribution) error
	DeleteFn                func(ctx context.Context, companyID, id string) error
}

func (f *fakeContributionRepo) WithTx(tx *sql.Tx) contribution.Repository { return f }

func (f *fakeContributionRepo) Create(ctx context.Context, c *contribution.Contribution) error {
	return f.CreateFn(ctx, c)
}

func (f *fakeContributionRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*contribution.Contribution, error) {
	return f.FindByIDAndCompanyFn(ctx, companyID, id)
}

func (f *fakeContributionRepo) FindAllVisible(ctx context.Context, role, companyID string) ([]contribution.Contribution, error) {
	return f.FindAllVisibleFn(ctx, role, companyID)
}

func (f *fakeContributionRepo) FindCreatedBetween(ctx context.Context, role, companyID string, from, to time.Time) ([]contribution.Contribution, error) {
	return f.FindCreatedBetweenFn(ctx, role, companyID, from, to)
}

func (f *fakeContributionRepo) FindAllByActiveEngineers(ctx context.Context, role, companyID string) ([]contribution.Contribution, error) {
	return f.FindByActiveEngineersFn(ctx, role, companyID)
}

func (f *fakeContributionRepo) Update(ctx context.Context, c *contribution.Contribution) error {
	return f.UpdateFn(ctx, c)
}

func (f *fakeContributionRepo) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}

type fakeOutboxRepo struct {
	created  []kafka.OutboxEvent
	failWith error
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func frozenNow(t *testing.T) func() time.Time {
	t.Helper()
	now, err := time.Parse(time.RFC3339, "2024-03-14T11:22:33Z")
	require.NoError(t, err)
	return func() time.Time { return now }
}

func TestContributionService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	userID := uuid.New().String()

	t.Run("persists row and queues received event in one tx", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeContributionRepo{
			CreateFn: func(ctx context.Context, c *contribution.Contribution) error {
				assert.Equal(t, contribution.StateReceived, c.State)
				assert.Equal(t, companyID, c.CompanyID.String())
				return nil
			},
		}
		outbox := &fakeOutboxRepo{}
		svc := contribution.NewServiceWithClock(db, repo, outbox, frozenNow(t))

		res, err := svc.Create(ctx, "EMPLOYEE", companyID, userID, contribution.CreateContributionRequest{
			Link: "https://github.com/org/repo/pull/42",
		})

		require.NoError(t, err)
		assert.Equal(t, "RECEIVED", res.State)

		require.Len(t, outbox.created, 1)
		assert.Equal(t, "contribution", outbox.created[0].AggregateType)
		assert.Equal(t, events.ContributionReceivedTopic, outbox.created[0].Topic)
		assert.Equal(t, kafka.OutboxStatusPending, outbox.created[0].Status)

		var ev events.ContributionReceivedEvent
		require.NoError(t, json.Unmarshal(outbox.created[0].Payload, &ev))
		assert.Equal(t, "contribution_received", ev.EventType)
		assert.Equal(t, res.ID, ev.ContributionID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("company override for non super", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		other := uuid.New().String()
		repo := &fakeContributionRepo{
			CreateFn: func(ctx context.Context, c *contribution.Contribution) error {
				assert.Equal(t, companyID, c.CompanyID.String())
				return nil
			},
		}
		svc := contribution.NewService(db, repo)

		res, err := svc.Create(ctx, "EMPLOYEE", companyID, userID, contribution.CreateContributionRequest{
			Link:      "https://github.com/org/repo/pull/7",
			CompanyID: other,
		})

		require.NoError(t, err)
		assert.Equal(t, companyID, res.CompanyID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("super may file into another company", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		other := uuid.New().String()
		repo := &fakeContributionRepo{
			CreateFn: func(ctx context.Context, c *contribution.Contribution) error {
				assert.Equal(t, other, c.CompanyID.String())
				return nil
			},
		}
		svc := contribution.NewService(db, repo)

		res, err := svc.Create(ctx, tenant.RoleSuper, companyID, userID, contribution.CreateContributionRequest{
			Link:      "https://github.com/org/repo/pull/8",
			CompanyID: other,
		})

		require.NoError(t, err)
		assert.Equal(t, other, res.CompanyID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate link maps to conflict and rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeContributionRepo{
			CreateFn: func(ctx context.Context, c *contribution.Contribution) error {
				return errors.New(`ERROR: duplicate key value violates unique constraint "uq_contributions_link" (SQLSTATE 23505)`)
			},
		}
		svc := contribution.NewService(db, repo)

		_, err = svc.Create(ctx, "EMPLOYEE", companyID, userID, contribution.CreateContributionRequest{
			Link: "https://github.com/org/repo/pull/42",
		})

		assert.ErrorIs(t, err, contributionerrors.ErrDuplicateLink)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls the row back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeContributionRepo{
			CreateFn: func(ctx context.Context, c *contribution.Contribution) error { return nil },
		}
		outbox := &fakeOutboxRepo{failWith: errors.New("outbox insert failed")}
		svc := contribution.NewServiceWithClock(db, repo, outbox, frozenNow(t))

		_, err = svc.Create(ctx, "EMPLOYEE", companyID, userID, contribution.CreateContributionRequest{
			Link: "https://github.com/org/repo/pull/42",
		})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContributionService_Review(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	contributionID := uuid.New()

	received := func() *contribution.Contribution {
		return &contribution.Contribution{
			ID:        contributionID,
			CompanyID: uuid.MustParse(companyID),
			UserID:    uuid.New(),
			Link:      "https://github.com/org/repo/pull/42",
			State:     contribution.StateReceived,
		}
	}

	t.Run("approve records reviewer and time", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		var saved *contribution.Contribution
		repo := &fakeContributionRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*contribution.Contribution, error) {
				return received(), nil
			},
			UpdateFn: func(ctx context.Context, c *contribution.Contribution) error {
				saved = c
				return nil
			},
		}
		outbox := &fakeOutboxRepo{}
		svc := contribution.NewServiceWithClock(db, repo, outbox, frozenNow(t))

		res, err := svc.Approve(ctx, companyID, contributionID.String(), actorID)

		require.NoError(t, err)
		assert.Equal(t, "APPROVED", res.State)
		assert.Equal(t, actorID, res.ReviewerID)

		require.NotNil(t, saved)
		require.NotNil(t, saved.ReviewerID)
		assert.Equal(t, actorID, saved.ReviewerID.String())
		require.NotNil(t, saved.ReviewedAt)
		assert.Equal(t, "2024-03-14T11:22:33Z", saved.ReviewedAt.Format(time.RFC3339))

		require.Len(t, outbox.created, 1)
		assert.Equal(t, events.ContributionReviewedTopic, outbox.created[0].Topic)

		var ev events.ContributionReviewedEvent
		require.NoError(t, json.Unmarshal(outbox.created[0].Payload, &ev))
		assert.Equal(t, "APPROVED", ev.State)
		assert.Equal(t, actorID, ev.ReviewerID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refuse moves to terminal refused", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeContributionRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*contribution.Contribution, error) {
				return received(), nil
			},
			UpdateFn: func(ctx context.Context, c *contribution.Contribution) error { return nil },
		}
		svc := contribution.NewServiceWithClock(db, repo, nil, frozenNow(t))

		res, err := svc.Refuse(ctx, companyID, contributionID.String(), actorID)

		require.NoError(t, err)
		assert.Equal(t, "REFUSED", res.State)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already reviewed rejects without update", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		approved := received()
		approved.State = contribution.StateApproved

		repo := &fakeContributionRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*contribution.Contribution, error) {
				return approved, nil
			},
			UpdateFn: func(ctx context.Context, c *contribution.Contribution) error {
				t.Fatal("update must not run for a reviewed contribution")
				return nil
			},
		}
		svc := contribution.NewServiceWithClock(db, repo, nil, frozenNow(t))

		_, err = svc.Refuse(ctx, companyID, contributionID.String(), actorID)

		assert.ErrorIs(t, err, contributionerrors.ErrInvalidStateTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing contribution", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeContributionRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*contribution.Contribution, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := contribution.NewServiceWithClock(db, repo, nil, frozenNow(t))

		_, err = svc.Approve(ctx, companyID, contributionID.String(), actorID)

		assert.ErrorIs(t, err, contributionerrors.ErrContributionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("garbage actor id", func(t *testing.T) {
		svc := contribution.NewService(nil, &fakeContributionRepo{})

		_, err := svc.Approve(ctx, companyID, contributionID.String(), "not-a-uuid")

		assert.ErrorIs(t, err, contributionerrors.ErrInvalidActorID)
	})
}

func TestContributionService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("this week window starts monday utc", func(t *testing.T) {
		repo := &fakeContributionRepo{
			FindCreatedBetweenFn: func(ctx context.Context, role, cid string, from, to time.Time) ([]contribution.Contribution, error) {
				assert.Equal(t, "2024-03-11T00:00:00Z", from.Format(time.RFC3339))
				assert.Equal(t, "2024-03-18T00:00:00Z", to.Format(time.RFC3339))
				return []contribution.Contribution{}, nil
			},
		}
		svc := contribution.NewServiceWithClock(nil, repo, nil, frozenNow(t))

		_, err := svc.GetAll(ctx, "EMPLOYEE", companyID, contribution.WindowThisWeek)

		assert.NoError(t, err)
	})

	t.Run("last week window abuts this week", func(t *testing.T) {
		repo := &fakeContributionRepo{
			FindCreatedBetweenFn: func(ctx context.Context, role, cid string, from, to time.Time) ([]contribution.Contribution, error) {
				assert.Equal(t, "2024-03-04T00:00:00Z", from.Format(time.RFC3339))
				assert.Equal(t, "2024-03-11T00:00:00Z", to.Format(time.RFC3339))
				return []contribution.Contribution{}, nil
			},
		}
		svc := contribution.NewServiceWithClock(nil, repo, nil, frozenNow(t))

		_, err := svc.GetAll(ctx, "EMPLOYEE", companyID, contribution.WindowLastWeek)

		assert.NoError(t, err)
	})

	t.Run("no window lists everything visible", func(t *testing.T) {
		repo := &fakeContributionRepo{
			FindAllVisibleFn: func(ctx context.Context, role, cid string) ([]contribution.Contribution, error) {
				assert.Equal(t, companyID, cid)
				return []contribution.Contribution{}, nil
			},
		}
		svc := contribution.NewService(nil, repo)

		_, err := svc.GetAll(ctx, "EMPLOYEE", companyID, "")

		assert.NoError(t, err)
	})
}

func TestContributionService_GetAll_ActiveEngineers(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("returns contributions owned by active engineers", func(t *testing.T) {
		engineer := &contribution.UserRef{
			ID: uuid.New(), Name: "Grace", Occupation: "ENGINEER", IsActive: true,
		}
		repo := &fakeContributionRepo{
			FindByActiveEngineersFn: func(ctx context.Context, role, cid string) ([]contribution.Contribution, error) {
				assert.Equal(t, companyID, cid)
				return []contribution.Contribution{
					{
						ID:        uuid.New(),
						CompanyID: uuid.MustParse(companyID),
						UserID:    engineer.ID,
						Link:      "https://github.com/org/repo/pull/42",
						State:     contribution.StateReceived,
						User:      engineer,
					},
				}, nil
			},
		}
		svc := contribution.NewService(nil, repo)

		res, err := svc.GetAll(ctx, "EMPLOYEE", companyID, contribution.WindowActiveEngineers)

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Grace", res[0].UserName)
		assert.Equal(t, "RECEIVED", res[0].State)
	})

	t.Run("super filter spans companies", func(t *testing.T) {
		repo := &fakeContributionRepo{
			FindByActiveEngineersFn: func(ctx context.Context, role, cid string) ([]contribution.Contribution, error) {
				assert.Equal(t, tenant.RoleSuper, role)
				return []contribution.Contribution{}, nil
			},
		}
		svc := contribution.NewService(nil, repo)

		_, err := svc.GetAll(ctx, tenant.RoleSuper, companyID, contribution.WindowActiveEngineers)

		assert.NoError(t, err)
	})
}
