package repositories

import (
	"errors"

	"gymfit_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTrainerNotFound      = errors.New("trainer not found")
	ErrTrainerAlreadyExists = errors.New("trainer already exists for user")
)

type TrainerRepository interface {
	FindByID(id string) (*models.Trainer, error)
	FindByUserID(userID string) (*models.Trainer, error)
	FindAll() ([]models.Trainer, error)
	Create(trainer *models.Trainer) error
	Updates(id string, fields map[string]interface{}) error
	Delete(id string) error
}

type TrainerRepositoryImpl struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &TrainerRepositoryImpl{db: db}
}

func (r *TrainerRepositoryImpl) FindByID(id string) (*models.Trainer, error) {
	var trainer models.Trainer
	err := r.db.Preload("User").First(&trainer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *TrainerRepositoryImpl) FindByUserID(userID string) (*models.Trainer, error) {
	var trainer models.Trainer
	err := r.db.First(&trainer, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *TrainerRepositoryImpl) FindAll() ([]models.Trainer, error) {
	var trainers []models.Trainer
	if err := r.db.Preload("User").Order("created_at").Find(&trainers).Error; err != nil {
		return nil, err
	}
	return trainers, nil
}

func (r *TrainerRepositoryImpl) Create(trainer *models.Trainer) error {
	if err := r.db.Create(trainer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrTrainerAlreadyExists
		}
		return err
	}
	return nil
}

func (r *TrainerRepositoryImpl) Updates(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.Model(&models.Trainer{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTrainerNotFound
	}
	return nil
}

func (r *TrainerRepositoryImpl) Delete(id string) error {
	res := r.db.Delete(&models.Trainer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTrainerNotFound
	}
	return nil
}
