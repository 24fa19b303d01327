package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"datamarket/internal/handler"
	"datamarket/internal/model"
	"datamarket/internal/router"
	"datamarket/internal/service"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, in service.NewUserInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id uint, patch service.UserPatch) (*model.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newEcho(h *handler.UserHandler) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = router.ErrorHandler
	e.Validator = router.NewValidator()
	e.GET("/api/users", h.ListUsers)
	e.GET("/api/users/:id", h.GetUser)
	e.PUT("/api/users/:id", h.UpdateUser)
	return e
}

func TestUserHandler_InternalErrorIsOpaque(t *testing.T) {
	svc := new(MockUserService)
	svc.On("ListUsers", mock.Anything).Return(nil, errors.New("dial tcp 10.0.0.5:3306: connection refused"))
	e := newEcho(handler.NewUserHandler(svc))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestUserHandler_InvalidID(t *testing.T) {
	svc := new(MockUserService)
	e := newEcho(handler.NewUserHandler(svc))

	for _, id := range []string{"abc", "0", "-1"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/"+id, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
	}
	svc.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestUserHandler_UpdatePassesThreeStatePatch(t *testing.T) {
	svc := new(MockUserService)
	svc.On("UpdateUser", mock.Anything, uint(4), mock.MatchedBy(func(p service.UserPatch) bool {
		return !p.Name.Set && p.WalletAddress.Set && p.WalletAddress.Null &&
			p.Role.Set && !p.Role.Null && p.Role.Value == ""
	})).Return(&model.User{ID: 4}, nil)
	e := newEcho(handler.NewUserHandler(svc))

	req := httptest.NewRequest(http.MethodPut, "/api/users/4", strings.NewReader(`{"wallet_address":null,"role":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	svc.AssertExpectations(t)
}
