package repositories

import (
	"errors"

	"gymfit_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("member already exists for user")
)

type MemberRepository interface {
	FindByID(id string) (*models.Member, error)
	FindByUserID(userID string) (*models.Member, error)
	FindAll() ([]models.Member, error)
	Create(member *models.Member) error
	Updates(id string, fields map[string]interface{}) error
	Delete(id string) error
}

type MemberRepositoryImpl struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &MemberRepositoryImpl{db: db}
}

func (r *MemberRepositoryImpl) FindByID(id string) (*models.Member, error) {
	var member models.Member
	err := r.db.Preload("User").First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepositoryImpl) FindByUserID(userID string) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepositoryImpl) FindAll() ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Preload("User").Order("created_at").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Create relies on the unique index on user_id as the real one-member-per-user
// enforcement.
func (r *MemberRepositoryImpl) Create(member *models.Member) error {
	if err := r.db.Create(member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrMemberAlreadyExists
		}
		return err
	}
	return nil
}

func (r *MemberRepositoryImpl) Updates(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.Model(&models.Member{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepositoryImpl) Delete(id string) error {
	res := r.db.Delete(&models.Member{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}
