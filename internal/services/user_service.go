package services

import (
	"gymfit_backend/internal/apperrors"
	"gymfit_backend/internal/logger"
	"gymfit_backend/internal/repositories"
	"gymfit_backend/internal/services/dto"
	"gymfit_backend/internal/validator"
)

type UserService interface {
	List() ([]dto.UserResponse, error)
	Get(id string) (*dto.UserResponse, error)
	Patch(id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) List() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(0, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *UserServiceImpl) Get(id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Patch overwrites only the fields present in the request. Present fields go
// through the same credential rules as registration, all violations reported
// together.
func (s *UserServiceImpl) Patch(id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var violations []apperrors.FieldViolations
	collect := func(field string, errs []string) {
		if len(errs) > 0 {
			violations = append(violations, apperrors.FieldViolations{Field: field, Errors: errs})
		}
	}

	if req.Name != nil {
		collect("name", validator.ValidateName(*req.Name))
	}
	if req.Email != nil {
		collect("email", validator.ValidateEmail(*req.Email))
	}
	if req.PhoneNumber != nil {
		collect("phoneNumber", validator.ValidatePhoneNumber(*req.PhoneNumber))
	}
	if req.DateOfBirth != nil {
		collect("dateOfBirth", validator.ValidateDateOfBirth(*req.DateOfBirth))
	}

	if len(violations) > 0 {
		return nil, apperrors.ValidationError(violations)
	}

	if req.Email != nil {
		taken, err := s.userRepo.ExistsByEmail(*req.Email, id)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	if err := s.userRepo.Updates(id, req.Fields()); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrUserNotFound):
			return nil, apperrors.ErrUserNotFound
		case apperrors.Is(err, repositories.ErrUserAlreadyExists):
			return nil, apperrors.ErrEmailAlreadyExists
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Delete removes a user. Users still referenced by a member or trainer record
// are protected by the restrict foreign key and reported as a conflict.
func (s *UserServiceImpl) Delete(id string) error {
	if err := s.userRepo.Delete(id); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrUserNotFound):
			return apperrors.ErrUserNotFound
		case apperrors.Is(err, repositories.ErrUserReferenced):
			return apperrors.ErrUserSpecialized
		default:
			return apperrors.InternalError(err)
		}
	}

	logger.Info("user deleted", "user_id", id)
	return nil
}
