package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rajkrish0608/WorkProof/internal/dto"
	"github.com/rajkrish0608/WorkProof/internal/models"
	"github.com/rajkrish0608/WorkProof/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createStaff(t *testing.T, env testEnv, token, email string) dto.AccountDTO {
	t.Helper()

	w := env.do(t, http.MethodPost, "/staff", token, map[string]any{
		"name":     "Staff " + email,
		"email":    email,
		"password": "staffpass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var staff dto.AccountDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &staff))
	return staff
}

func TestStaffHandler_CreateAndList(t *testing.T) {
	env := setupTestEnv(t)
	token, ownerID := env.registerOwner(t, "owner@example.com")

	staff := createStaff(t, env, token, "staff@example.com")
	assert.Equal(t, models.RoleStaff, staff.Role)
	require.NotNil(t, staff.ManagerID)
	assert.Equal(t, ownerID, *staff.ManagerID)
	assert.Equal(t, ownerID, staff.OrgID)

	require.Len(t, env.email.sent, 1)
	assert.Equal(t, "staff@example.com", env.email.sent[0].To)

	w := env.do(t, http.MethodGet, "/staff", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []dto.AccountDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, staff.ID, list[0].ID)
}

func TestStaffHandler_StaffActsForOwnerOrganization(t *testing.T) {
	env := setupTestEnv(t)
	ownerToken, ownerID := env.registerOwner(t, "owner@example.com")
	createStaff(t, env, ownerToken, "staff@example.com")
	worker := env.createWorker(t, ownerToken, "Ravi", "9000000001")

	login, err := env.authService.Login(context.Background(), services.LoginInput{
		Email:    "staff@example.com",
		Password: "staffpass",
	})
	require.NoError(t, err)
	staffToken := login.Token

	w := env.do(t, http.MethodGet, "/workers", staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var workers []dto.WorkerDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &workers))
	require.Len(t, workers, 1)
	assert.Equal(t, worker.ID, workers[0].ID)

	created := env.createWorker(t, staffToken, "Anil", "9000000002")
	assert.Equal(t, ownerID, created.ContractorID)

	w = env.do(t, http.MethodGet, "/staff", staffToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden: Only Owners can manage staff", decodeError(t, w))

	// Role check precedes body validation.
	w = env.do(t, http.MethodPost, "/staff", staffToken, map[string]any{"name": "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStaffHandler_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.registerOwner(t, "owner@example.com")

	w := env.do(t, http.MethodPost, "/staff", token, map[string]any{
		"name":     "Clash",
		"email":    "owner@example.com",
		"password": "staffpass",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already in use", decodeError(t, w))
}

func TestStaffHandler_Validation(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.registerOwner(t, "owner@example.com")

	cases := map[string]map[string]any{
		"short name":     {"name": "A", "email": "s@example.com", "password": "staffpass"},
		"bad email":      {"name": "Ab", "email": "nope", "password": "staffpass"},
		"short password": {"name": "Ab", "email": "s@example.com", "password": "123"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/staff", token, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestStaffHandler_UpdateAndDelete(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.registerOwner(t, "owner@example.com")
	staff := createStaff(t, env, token, "staff@example.com")
	other := createStaff(t, env, token, "other@example.com")

	w := env.do(t, http.MethodPatch, "/staff/"+staff.ID, token, map[string]any{
		"name":     "Renamed",
		"password": "newpass1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.AccountDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Renamed", updated.Name)

	_, err := env.authService.Login(context.Background(), services.LoginInput{Email: "staff@example.com", Password: "newpass1"})
	assert.NoError(t, err)

	w = env.do(t, http.MethodPatch, "/staff/"+staff.ID, token, map[string]any{"email": other.Email})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodPatch, "/staff/"+staff.ID, token, map[string]any{"email": staff.Email})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/staff/"+staff.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Staff member deleted"}`, w.Body.String())

	w = env.do(t, http.MethodDelete, "/staff/"+staff.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStaffHandler_CrossOwnerTargets(t *testing.T) {
	env := setupTestEnv(t)
	tokenA, _ := env.registerOwner(t, "a@example.com")
	tokenB, ownerB := env.registerOwner(t, "b@example.com")
	staff := createStaff(t, env, tokenA, "staff@example.com")

	w := env.do(t, http.MethodPatch, "/staff/"+staff.ID, tokenB, map[string]any{"name": "Hijack"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Staff member not found", decodeError(t, w))

	w = env.do(t, http.MethodDelete, "/staff/"+staff.ID, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// An owner is never its own staff member.
	w = env.do(t, http.MethodDelete, "/staff/"+ownerB, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
