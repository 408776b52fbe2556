package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rajkrish0608/WorkProof/internal/dto"
	"github.com/rajkrish0608/WorkProof/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerHandler_CreateAndList(t *testing.T) {
	env := setupTestEnv(t)
	token, orgID := env.registerOwner(t, "a@example.com")

	env.createWorker(t, token, "Suresh", "9000000002")
	created := env.createWorker(t, token, "Anil", "9000000001")
	assert.Equal(t, orgID, created.ContractorID)
	assert.Equal(t, 500.0, created.WageRate)

	w := env.do(t, http.MethodGet, "/workers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var workers []dto.WorkerDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &workers))
	require.Len(t, workers, 2)
	assert.Equal(t, "Anil", workers[0].Name)
	assert.Equal(t, "Suresh", workers[1].Name)
}

func TestWorkerHandler_CreateValidation(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.registerOwner(t, "a@example.com")

	cases := map[string]map[string]any{
		"short phone":   {"name": "A", "phone": "12345", "wageRate": 10},
		"negative wage": {"name": "A", "phone": "9000000001", "wageRate": -1},
		"missing name":  {"phone": "9000000001", "wageRate": 10},
		"missing wage":  {"name": "A", "phone": "9000000001"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/workers", token, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	w := env.do(t, http.MethodPost, "/workers", token, map[string]any{"name": "Zero", "phone": "9000000009", "wageRate": 0})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestWorkerHandler_PhoneUniquePerOrganization(t *testing.T) {
	env := setupTestEnv(t)
	tokenA, _ := env.registerOwner(t, "a@example.com")
	tokenB, _ := env.registerOwner(t, "b@example.com")

	env.createWorker(t, tokenA, "Ravi", "9000000001")

	w := env.do(t, http.MethodPost, "/workers", tokenA, map[string]any{"name": "Other", "phone": "9000000001", "wageRate": 1})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Worker with this phone already exists", decodeError(t, w))

	env.createWorker(t, tokenB, "Ravi", "9000000001")
}

func TestWorkerHandler_Update(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.registerOwner(t, "a@example.com")
	first := env.createWorker(t, token, "Ravi", "9000000001")
	second := env.createWorker(t, token, "Mohan", "9000000002")

	w := env.do(t, http.MethodPut, "/workers/"+first.ID, token, map[string]any{"wageRate": 650})
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.WorkerDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 650.0, updated.WageRate)
	assert.Equal(t, "Ravi", updated.Name)

	w = env.do(t, http.MethodPut, "/workers/"+first.ID, token, map[string]any{"phone": second.Phone})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodPut, "/workers/"+first.ID, token, map[string]any{"phone": first.Phone, "name": "Ravi K"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPut, "/workers/"+first.ID, token, map[string]any{"phone": "123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWorkerHandler_TenantIsolation(t *testing.T) {
	env := setupTestEnv(t)
	tokenA, _ := env.registerOwner(t, "a@example.com")
	tokenB, _ := env.registerOwner(t, "b@example.com")
	worker := env.createWorker(t, tokenA, "Ravi", "9000000001")

	w := env.do(t, http.MethodPut, "/workers/"+worker.ID, tokenB, map[string]any{"name": "Stolen"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Worker not found", decodeError(t, w))

	w = env.do(t, http.MethodDelete, "/workers/"+worker.ID, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/workers", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	var stored models.Worker
	require.NoError(t, env.db.Where("id = ?", worker.ID).First(&stored).Error)
	assert.Equal(t, "Ravi", stored.Name)
}

func TestWorkerHandler_DeleteRemovesAttendanceKeepsPayments(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.registerOwner(t, "a@example.com")
	worker := env.createWorker(t, token, "Ravi", "9000000001")

	w := env.do(t, http.MethodPost, "/attendance", token, map[string]any{
		"date":    "2024-01-15",
		"records": []map[string]any{{"workerId": worker.ID, "status": "PRESENT"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodPost, "/payments", token, map[string]any{"workerId": worker.ID, "amount": 300})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodDelete, "/workers/"+worker.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())

	var attendance, payments int64
	env.db.Model(&models.AttendanceRecord{}).Where("worker_id = ?", worker.ID).Count(&attendance)
	env.db.Model(&models.Payment{}).Where("worker_id = ?", worker.ID).Count(&payments)
	assert.Zero(t, attendance)
	assert.EqualValues(t, 1, payments)

	w = env.do(t, http.MethodDelete, "/workers/"+worker.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWorkerHandler_RequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/workers", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, w))

	w = env.do(t, http.MethodGet, "/workers", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
