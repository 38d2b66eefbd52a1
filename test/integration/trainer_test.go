package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"gymfit_backend/internal/models"
	"gymfit_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trainerPayload struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Experience   string `json:"experience"`
	Introduction string `json:"introduction"`
	UserName     string `json:"userName"`
}

func attachTrainer(t *testing.T, ts *helpers.TestServer, adminToken, userID string) trainerPayload {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/trainers", adminToken, map[string]interface{}{
		"userId":       userID,
		"experience":   "10 years of coaching",
		"introduction": "I coach strength and conditioning.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var trainer trainerPayload
	require.NoError(t, json.Unmarshal([]byte(body), &trainer))
	return trainer
}

func TestTrainerAttach_PromotesUser(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := helpers.LoginAdmin(t, ts)

	user := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "Ana Pop",
		Email:        "ana@x.com",
		PasswordHash: "Str0ng!Pass",
		Role:         models.RoleAdmin,
	})

	trainer := attachTrainer(t, ts, adminToken, user.ID)
	assert.Equal(t, user.ID, trainer.UserID)
	assert.Equal(t, "10 years of coaching", trainer.Experience)

	var reloaded models.User
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, models.RoleTrainer, reloaded.Role)
}

func TestTrainerAttach_InvalidProfileListsBothViolations(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := helpers.LoginAdmin(t, ts)

	user := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "Ana Pop",
		Email:        "ana@x.com",
		PasswordHash: "Str0ng!Pass",
		Role:         models.RoleAdmin,
	})

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/trainers", adminToken, map[string]interface{}{
		"userId":       user.ID,
		"experience":   "abc",
		"introduction": "short",
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response struct {
		Error struct {
			Details []struct {
				Field string `json:"field"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &response))
	require.Len(t, response.Error.Details, 2)

	fields := []string{response.Error.Details[0].Field, response.Error.Details[1].Field}
	assert.Contains(t, fields, "experience")
	assert.Contains(t, fields, "introduction")

	// The rejected attach left the user untouched.
	var reloaded models.User
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, models.RoleAdmin, reloaded.Role)
}

func TestTrainerAttach_ConflictsWithMemberRecord(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := helpers.LoginAdmin(t, ts)

	user := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "Ana Pop",
		Email:        "ana@x.com",
		PasswordHash: "Str0ng!Pass",
		Role:         models.RoleAdmin,
	})
	attachMember(t, ts, adminToken, user.ID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/trainers", adminToken, map[string]interface{}{
		"userId":       user.ID,
		"experience":   "10 years of coaching",
		"introduction": "I coach strength and conditioning.",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "already has a member record")
}

func TestTrainerPatch_UpdatesIntroduction(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := helpers.LoginAdmin(t, ts)

	user := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "Ana Pop",
		Email:        "ana@x.com",
		PasswordHash: "Str0ng!Pass",
		Role:         models.RoleAdmin,
	})
	trainer := attachTrainer(t, ts, adminToken, user.ID)

	res, body := ts.SendRequest(t, http.MethodPatch, "/api/v1/trainers/"+trainer.ID, adminToken, map[string]interface{}{
		"introduction": "I specialize in mobility and recovery.",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var patched trainerPayload
	require.NoError(t, json.Unmarshal([]byte(body), &patched))
	assert.Equal(t, "I specialize in mobility and recovery.", patched.Introduction)
	// The absent field kept its value.
	assert.Equal(t, "10 years of coaching", patched.Experience)
}

func TestTrainerDetach_RevertsRoleToMember(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := helpers.LoginAdmin(t, ts)

	user := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "Ana Pop",
		Email:        "ana@x.com",
		PasswordHash: "Str0ng!Pass",
		Role:         models.RoleAdmin,
	})
	trainer := attachTrainer(t, ts, adminToken, user.ID)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/trainers/"+trainer.ID, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	var reloaded models.User
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, models.RoleMember, reloaded.Role)

	var count int64
	require.NoError(t, ts.DB.Model(&models.Trainer{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestTrainerDetach_RequiresAdmin(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := helpers.LoginAdmin(t, ts)

	user := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "Ana Pop",
		Email:        "ana@x.com",
		PasswordHash: "Str0ng!Pass",
		Role:         models.RoleAdmin,
	})
	trainer := attachTrainer(t, ts, adminToken, user.ID)

	trainerToken := helpers.Login(t, ts, "ana@x.com", "Str0ng!Pass")
	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/trainers/"+trainer.ID, trainerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
