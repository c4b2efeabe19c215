package punch_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DeboraBSilva/Punchclock/internal/punch"
	puncherrors "github.com/DeboraBSilva/Punchclock/internal/punch/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePunchService struct {
	CreateFn  func(ctx context.Context, role, companyID, userID string, req punch.CreatePunchRequest) (punch.PunchResponse, error)
	GetAllFn  func(ctx context.Context, role, companyID, actorID string, canReadAll bool) ([]punch.PunchResponse, error)
	GetByIDFn func(ctx context.Context, companyID, id string) (punch.PunchResponse, error)
	UpdateFn  func(ctx context.Context, companyID, id string, req punch.UpdatePunchRequest) (punch.PunchResponse, error)
	DeleteFn  func(ctx context.Context, companyID, id string) error
}

func (f *fakePunchService) Create(ctx context.Context, role, companyID, userID string, req punch.CreatePunchRequest) (punch.PunchResponse, error) {
	return f.CreateFn(ctx, role, companyID, userID, req)
}

func (f *fakePunchService) GetAll(ctx context.Context, role, companyID, actorID string, canReadAll bool) ([]punch.PunchResponse, error) {
	return f.GetAllFn(ctx, role, companyID, actorID, canReadAll)
}

func (f *fakePunchService) GetByID(ctx context.Context, companyID, id string) (punch.PunchResponse, error) {
	return f.GetByIDFn(ctx, companyID, id)
}

func (f *fakePunchService) Update(ctx context.Context, companyID, id string, req punch.UpdatePunchRequest) (punch.PunchResponse, error) {
	return f.UpdateFn(ctx, companyID, id, req)
}

func (f *fakePunchService) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}

func TestPunchHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()
		userID := uuid.New().String()

		svc := &fakePunchService{
			CreateFn: func(ctx context.Context, role, cid, uid string, req punch.CreatePunchRequest) (punch.PunchResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, userID, uid)
				assert.Equal(t, "2013-08-20", req.WhenDay)
				return punch.PunchResponse{
					ID:      uuid.New().String(),
					WhenDay: req.WhenDay,
					From:    "2013-08-20T08:00:00Z",
					To:      "2013-08-20T17:00:00Z",
				}, nil
			},
		}

		h := punch.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"when_day":"2013-08-20"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/punches", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("company_id", companyID)
		c.Set("role", "EMPLOYEE")
		c.Set("user_id_validated", userID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var envelope map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, true, envelope["ok"])
	})

	t.Run("invalid day format rejected by binding", func(t *testing.T) {
		h := punch.NewHandler(&fakePunchService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"when_day":"20/08/2013"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/punches", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("company_id", uuid.New().String())
		c.Set("role", "EMPLOYEE")
		c.Set("user_id_validated", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error surfaces mapped status", func(t *testing.T) {
		svc := &fakePunchService{
			CreateFn: func(ctx context.Context, role, cid, uid string, req punch.CreatePunchRequest) (punch.PunchResponse, error) {
				return punch.PunchResponse{}, puncherrors.ErrInvalidTimeRange
			},
		}

		h := punch.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"from_time":"17:00","to_time":"08:00"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/punches", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("company_id", uuid.New().String())
		c.Set("role", "EMPLOYEE")
		c.Set("user_id_validated", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "end after it starts")
	})
}

func TestPunchHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("super reads company wide", func(t *testing.T) {
		companyID := uuid.New().String()

		svc := &fakePunchService{
			GetAllFn: func(ctx context.Context, role, cid, actorID string, canReadAll bool) ([]punch.PunchResponse, error) {
				assert.Equal(t, "SUPER", role)
				assert.True(t, canReadAll)
				return []punch.PunchResponse{{ID: uuid.New().String(), WhenDay: "2024-03-14"}}, nil
			},
		}

		h := punch.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/punches", nil)
		c.Set("company_id", companyID)
		c.Set("role", "SUPER")
		c.Set("user_id_validated", uuid.New().String())

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "2024-03-14")
	})

	t.Run("employee reads own rows only", func(t *testing.T) {
		svc := &fakePunchService{
			GetAllFn: func(ctx context.Context, role, cid, actorID string, canReadAll bool) ([]punch.PunchResponse, error) {
				assert.False(t, canReadAll)
				return nil, nil
			},
		}

		h := punch.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/punches", nil)
		c.Set("company_id", uuid.New().String())
		c.Set("role", "EMPLOYEE")
		c.Set("user_id_validated", uuid.New().String())

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPunchHandler_GetById(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		svc := &fakePunchService{
			GetByIDFn: func(ctx context.Context, cid, id string) (punch.PunchResponse, error) {
				return punch.PunchResponse{}, puncherrors.ErrPunchNotFound
			},
		}

		h := punch.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/punches/abc", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}
		c.Set("company_id", uuid.New().String())

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPunchHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePunchService{
		DeleteFn: func(ctx context.Context, cid, id string) error {
			return nil
		},
	}

	h := punch.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodDelete, "/punches/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	c.Set("company_id", uuid.New().String())

	h.Delete(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
