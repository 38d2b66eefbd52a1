package services

import (
	"gymfit_backend/internal/apperrors"
	"gymfit_backend/internal/logger"
	"gymfit_backend/internal/models"
	"gymfit_backend/internal/repositories"
	"gymfit_backend/internal/services/dto"
	"gymfit_backend/internal/validator"

	"gorm.io/gorm"
)

type TrainerService interface {
	List() ([]dto.TrainerResponse, error)
	Get(id string) (*dto.TrainerResponse, error)
	Create(req *dto.CreateTrainerRequest) (*dto.TrainerResponse, error)
	Patch(id string, req *dto.UpdateTrainerRequest) (*dto.TrainerResponse, error)
	Delete(id string) error
}

type TrainerServiceImpl struct {
	db *gorm.DB
}

func NewTrainerService(db *gorm.DB) TrainerService {
	return &TrainerServiceImpl{db: db}
}

func (s *TrainerServiceImpl) List() ([]dto.TrainerResponse, error) {
	trainers, err := repositories.NewTrainerRepository(s.db).FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.TrainerResponse, 0, len(trainers))
	for i := range trainers {
		responses = append(responses, dto.NewTrainerResponse(&trainers[i], true))
	}
	return responses, nil
}

func (s *TrainerServiceImpl) Get(id string) (*dto.TrainerResponse, error) {
	trainer, err := repositories.NewTrainerRepository(s.db).FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTrainerNotFound) {
			return nil, apperrors.ErrTrainerNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewTrainerResponse(trainer, true)
	return &resp, nil
}

// Create attaches a trainer record to an existing user and promotes the user
// to the trainer role in the same transaction. Both profile text bounds are
// validated up front so the response lists every violation.
func (s *TrainerServiceImpl) Create(req *dto.CreateTrainerRequest) (*dto.TrainerResponse, error) {
	if err := validateTrainerProfile(req.Experience, req.Introduction); err != nil {
		return nil, err
	}

	var trainer *models.Trainer

	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository(tx)
		memberRepo := repositories.NewMemberRepository(tx)
		trainerRepo := repositories.NewTrainerRepository(tx)

		user, err := userRepo.FindByID(req.UserID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}

		// A user carries at most one specialization record.
		if _, err := trainerRepo.FindByUserID(user.ID); err == nil {
			return apperrors.ErrAlreadyTrainer
		} else if !apperrors.Is(err, repositories.ErrTrainerNotFound) {
			return err
		}
		if _, err := memberRepo.FindByUserID(user.ID); err == nil {
			return apperrors.ErrAlreadyMember
		} else if !apperrors.Is(err, repositories.ErrMemberNotFound) {
			return err
		}

		trainer = &models.Trainer{
			UserID:       user.ID,
			Experience:   req.Experience,
			Introduction: req.Introduction,
		}
		if err := trainerRepo.Create(trainer); err != nil {
			if apperrors.Is(err, repositories.ErrTrainerAlreadyExists) {
				return apperrors.ErrAlreadyTrainer
			}
			return err
		}

		user.Role = models.RoleTrainer
		if err := userRepo.Update(user); err != nil {
			return err
		}

		trainer.User = user
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	logger.Info("trainer created", "trainer_id", trainer.ID, "user_id", trainer.UserID)

	resp := dto.NewTrainerResponse(trainer, false)
	return &resp, nil
}

// Patch overwrites only the fields present in the request; present fields are
// still held to the profile text bounds.
func (s *TrainerServiceImpl) Patch(id string, req *dto.UpdateTrainerRequest) (*dto.TrainerResponse, error) {
	var violations []apperrors.FieldViolations
	if req.Experience != nil {
		if errs := validator.ValidateExperience(*req.Experience); len(errs) > 0 {
			violations = append(violations, apperrors.FieldViolations{Field: "experience", Errors: errs})
		}
	}
	if req.Introduction != nil {
		if errs := validator.ValidateIntroduction(*req.Introduction); len(errs) > 0 {
			violations = append(violations, apperrors.FieldViolations{Field: "introduction", Errors: errs})
		}
	}
	if len(violations) > 0 {
		return nil, apperrors.ValidationError(violations)
	}

	trainerRepo := repositories.NewTrainerRepository(s.db)

	if err := trainerRepo.Updates(id, req.Fields()); err != nil {
		if apperrors.Is(err, repositories.ErrTrainerNotFound) {
			return nil, apperrors.ErrTrainerNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	trainer, err := trainerRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTrainerNotFound) {
			return nil, apperrors.ErrTrainerNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewTrainerResponse(trainer, false)
	return &resp, nil
}

// Delete removes the trainer record and reverts the user to the member base
// role, atomically.
func (s *TrainerServiceImpl) Delete(id string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository(tx)
		trainerRepo := repositories.NewTrainerRepository(tx)

		trainer, err := trainerRepo.FindByID(id)
		if err != nil {
			if apperrors.Is(err, repositories.ErrTrainerNotFound) {
				return apperrors.ErrTrainerNotFound
			}
			return err
		}

		if err := trainerRepo.Delete(trainer.ID); err != nil {
			return err
		}

		trainer.User.Role = models.RoleMember
		return userRepo.Update(trainer.User)
	})
	if err != nil {
		return asAppError(err)
	}

	logger.Info("trainer deleted", "trainer_id", id)
	return nil
}

func validateTrainerProfile(experience, introduction string) error {
	var violations []apperrors.FieldViolations
	if errs := validator.ValidateExperience(experience); len(errs) > 0 {
		violations = append(violations, apperrors.FieldViolations{Field: "experience", Errors: errs})
	}
	if errs := validator.ValidateIntroduction(introduction); len(errs) > 0 {
		violations = append(violations, apperrors.FieldViolations{Field: "introduction", Errors: errs})
	}
	if len(violations) > 0 {
		return apperrors.ValidationError(violations)
	}
	return nil
}
