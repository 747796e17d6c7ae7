package user_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hackfest/internal/http/api"
	"hackfest/internal/http/handlers"
	"hackfest/internal/http/handlers/mocks"
	"hackfest/internal/http/handlers/user"
	repo "hackfest/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_List(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	mockService.On("List", mock.Anything).Return([]api.UserSchema{{ID: "u1", Name: "Alice"}}, nil).Once()

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.UserListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Users, 1)
}

func TestUserHandler_List_Error(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	mockService.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	mockService.On("Get", mock.Anything, "ghost").Return(nil, repo.ErrNotFound).Once()

	req := handlers.WithURLParam(httptest.NewRequest(http.MethodGet, "/admin/users/ghost", nil), "id", "ghost")
	w := httptest.NewRecorder()

	h.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

func TestUserHandler_SetAdmin(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	mockService.On("SetAdmin", mock.Anything, "u1", false).Return(&api.UserSchema{ID: "u1", IsAdmin: false}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/admin/users/u1/admin", bytes.NewReader([]byte(`{"is_admin":false}`)))
	req = handlers.WithURLParam(req, "id", "u1")
	w := httptest.NewRecorder()

	h.SetAdmin(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.UserResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.User.IsAdmin)
}

func TestUserHandler_SetAdmin_MissingFlag(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/admin/users/u1/admin", bytes.NewReader([]byte(`{}`)))
	req = handlers.WithURLParam(req, "id", "u1")
	w := httptest.NewRecorder()

	h.SetAdmin(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestUserHandler_Delete(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	mockService.On("Delete", mock.Anything, "u1").Return(nil).Once()

	req := handlers.WithURLParam(httptest.NewRequest(http.MethodDelete, "/admin/users/u1", nil), "id", "u1")
	w := httptest.NewRecorder()

	h.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	mockService.On("Delete", mock.Anything, "ghost").Return(repo.ErrNotFound).Once()

	req := handlers.WithURLParam(httptest.NewRequest(http.MethodDelete, "/admin/users/ghost", nil), "id", "ghost")
	w := httptest.NewRecorder()

	h.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}
