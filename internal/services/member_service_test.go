package services_test

import (
	"testing"

	"gymfit_backend/internal/apperrors"
	"gymfit_backend/internal/models"
	"gymfit_backend/internal/services"
	"gymfit_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberCreate_SetsUserRole(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewMemberService(db)
	user := createUser(t, db, "Ana Pop", "ana@x.com", models.RoleAdmin)

	member, err := svc.Create(&dto.CreateMemberRequest{UserID: user.ID})
	require.NoError(t, err)

	assert.Equal(t, user.ID, member.UserID)
	assert.True(t, member.IsActive)
	assert.Equal(t, "Ana Pop", member.UserName)
	assert.Equal(t, "ana@x.com", member.UserEmail)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, models.RoleMember, reloaded.Role)
}

func TestMemberCreate_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewMemberService(db)

	_, err := svc.Create(&dto.CreateMemberRequest{UserID: "c0ffee00-0000-0000-0000-000000000000"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestMemberCreate_DoubleAttachConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewMemberService(db)
	user := createUser(t, db, "Ana Pop", "ana@x.com", models.RoleAdmin)

	_, err := svc.Create(&dto.CreateMemberRequest{UserID: user.ID})
	require.NoError(t, err)

	_, err = svc.Create(&dto.CreateMemberRequest{UserID: user.ID})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)

	// The role did not flap: still member after the failed second attach,
	// and only one row exists.
	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, models.RoleMember, reloaded.Role)

	var count int64
	require.NoError(t, db.Model(&models.Member{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMemberCreate_ConflictsWithTrainerRecord(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "Ana Pop", "ana@x.com", models.RoleAdmin)

	_, err := services.NewTrainerService(db).Create(&dto.CreateTrainerRequest{
		UserID:       user.ID,
		Experience:   "10 years of coaching",
		Introduction: "I coach strength and conditioning.",
	})
	require.NoError(t, err)

	_, err = services.NewMemberService(db).Create(&dto.CreateMemberRequest{UserID: user.ID})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestMemberPatch_OnlyPresentFields(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewMemberService(db)
	user := createUser(t, db, "Ana Pop", "ana@x.com", models.RoleAdmin)

	created, err := svc.Create(&dto.CreateMemberRequest{UserID: user.ID})
	require.NoError(t, err)
	require.True(t, created.IsActive)

	inactive := false
	patched, err := svc.Patch(created.ID, &dto.UpdateMemberRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, patched.IsActive)
}

func TestMemberPatch_EmptyRequestLeavesRecordUnchanged(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewMemberService(db)
	user := createUser(t, db, "Ana Pop", "ana@x.com", models.RoleAdmin)

	created, err := svc.Create(&dto.CreateMemberRequest{UserID: user.ID})
	require.NoError(t, err)

	var before models.Member
	require.NoError(t, db.First(&before, "id = ?", created.ID).Error)

	_, err = svc.Patch(created.ID, &dto.UpdateMemberRequest{})
	require.NoError(t, err)

	var after models.Member
	require.NoError(t, db.First(&after, "id = ?", created.ID).Error)
	assert.Equal(t, before, after)
}

func TestMemberPatch_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewMemberService(db)

	active := true
	_, err := svc.Patch("c0ffee00-0000-0000-0000-000000000000", &dto.UpdateMemberRequest{IsActive: &active})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestMemberDelete_RevertsRoleToAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewMemberService(db)
	user := createUser(t, db, "Ana Pop", "ana@x.com", models.RoleAdmin)

	created, err := svc.Create(&dto.CreateMemberRequest{UserID: user.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, models.RoleAdmin, reloaded.Role)

	var count int64
	require.NoError(t, db.Model(&models.Member{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestMemberDelete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewMemberService(db)

	err := svc.Delete("c0ffee00-0000-0000-0000-000000000000")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestMemberListAndGet(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewMemberService(db)
	userA := createUser(t, db, "Ana Pop", "ana@x.com", models.RoleAdmin)
	userB := createUser(t, db, "Bogdan Ionescu", "bogdan@x.com", models.RoleAdmin)

	createdA, err := svc.Create(&dto.CreateMemberRequest{UserID: userA.ID})
	require.NoError(t, err)
	_, err = svc.Create(&dto.CreateMemberRequest{UserID: userB.ID})
	require.NoError(t, err)

	all, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)
	// Flat fields plus the nested user come back on reads.
	assert.NotEmpty(t, all[0].UserName)
	assert.NotNil(t, all[0].User)

	got, err := svc.Get(createdA.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Pop", got.UserName)
	require.NotNil(t, got.User)
	assert.Equal(t, userA.ID, got.User.ID)
}
