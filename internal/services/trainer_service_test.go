package services_test

import (
	"strings"
	"testing"

	"gymfit_backend/internal/apperrors"
	"gymfit_backend/internal/models"
	"gymfit_backend/internal/services"
	"gymfit_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainerCreate_SetsUserRole(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewTrainerService(db)
	user := createUser(t, db, "Ana Pop", "ana@x.com", models.RoleAdmin)

	trainer, err := svc.Create(&dto.CreateTrainerRequest{
		UserID:       user.ID,
		Experience:   "10 years of coaching",
		Introduction: "I coach strength and conditioning.",
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, trainer.UserID)
	assert.Equal(t, "10 years of coaching", trainer.Experience)
	assert.Equal(t, "Ana Pop", trainer.UserName)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, models.RoleTrainer, reloaded.Role)
}

func TestTrainerCreate_ListsEveryProfileViolation(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewTrainerService(db)
	user := createUser(t, db, "Ana Pop", "ana@x.com", models.RoleAdmin)

	_, err := svc.Create(&dto.CreateTrainerRequest{
		UserID:       user.ID,
		Experience:   "abc",
		Introduction: "short",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	violations, ok := appErr.Details.([]apperrors.FieldViolations)
	require.True(t, ok)
	require.Len(t, violations, 2)

	fields := []string{violations[0].Field, violations[1].Field}
	assert.Contains(t, fields, "experience")
	assert.Contains(t, fields, "introduction")

	// Nothing was written and the role did not move.
	var count int64
	require.NoError(t, db.Model(&models.Trainer{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, models.RoleAdmin, reloaded.Role)
}

func TestTrainerCreate_DoubleAttachConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewTrainerService(db)
	user := createUser(t, db, "Ana Pop", "ana@x.com", models.RoleAdmin)

	req := &dto.CreateTrainerRequest{
		UserID:       user.ID,
		Experience:   "10 years of coaching",
		Introduction: "I coach strength and conditioning.",
	}
	_, err := svc.Create(req)
	require.NoError(t, err)

	_, err = svc.Create(req)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, models.RoleTrainer, reloaded.Role)
}

func TestTrainerCreate_ConflictsWithMemberRecord(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "Ana Pop", "ana@x.com", models.RoleAdmin)

	_, err := services.NewMemberService(db).Create(&dto.CreateMemberRequest{UserID: user.ID})
	require.NoError(t, err)

	_, err = services.NewTrainerService(db).Create(&dto.CreateTrainerRequest{
		UserID:       user.ID,
		Experience:   "10 years of coaching",
		Introduction: "I coach strength and conditioning.",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestTrainerPatch_ValidatesPresentFields(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewTrainerService(db)
	user := createUser(t, db, "Ana Pop", "ana@x.com", models.RoleAdmin)

	created, err := svc.Create(&dto.CreateTrainerRequest{
		UserID:       user.ID,
		Experience:   "10 years of coaching",
		Introduction: "I coach strength and conditioning.",
	})
	require.NoError(t, err)

	tooShort := "abc"
	_, err = svc.Patch(created.ID, &dto.UpdateTrainerRequest{Experience: &tooShort})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	// An absent introduction is not validated, only present fields are.
	longer := strings.Repeat("trained ", 10)
	patched, err := svc.Patch(created.ID, &dto.UpdateTrainerRequest{Experience: &longer})
	require.NoError(t, err)
	assert.Equal(t, longer, patched.Experience)
	assert.Equal(t, "I coach strength and conditioning.", patched.Introduction)
}

func TestTrainerDelete_RevertsRoleToMember(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewTrainerService(db)
	user := createUser(t, db, "Ana Pop", "ana@x.com", models.RoleAdmin)

	created, err := svc.Create(&dto.CreateTrainerRequest{
		UserID:       user.ID,
		Experience:   "10 years of coaching",
		Introduction: "I coach strength and conditioning.",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, models.RoleMember, reloaded.Role)

	var count int64
	require.NoError(t, db.Model(&models.Trainer{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestTrainerDelete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewTrainerService(db)

	err := svc.Delete("c0ffee00-0000-0000-0000-000000000000")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestTrainerListAndGet(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewTrainerService(db)
	user := createUser(t, db, "Ana Pop", "ana@x.com", models.RoleAdmin)

	created, err := svc.Create(&dto.CreateTrainerRequest{
		UserID:       user.ID,
		Experience:   "10 years of coaching",
		Introduction: "I coach strength and conditioning.",
	})
	require.NoError(t, err)

	all, err := svc.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ana Pop", all[0].UserName)
	assert.NotNil(t, all[0].User)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.User)
	assert.Equal(t, user.ID, got.User.ID)
}
