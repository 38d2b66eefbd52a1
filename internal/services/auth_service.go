package services

import (
	"time"

	"gymfit_backend/internal/apperrors"
	"gymfit_backend/internal/auth"
	"gymfit_backend/internal/logger"
	"gymfit_backend/internal/models"
	"gymfit_backend/internal/repositories"
	"gymfit_backend/internal/services/dto"
	"gymfit_backend/internal/validator"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenService
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenService) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register validates every field, collecting all violations before rejecting,
// then hashes the password and persists the user.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	var violations []apperrors.FieldViolations
	collect := func(field string, errs []string) {
		if len(errs) > 0 {
			violations = append(violations, apperrors.FieldViolations{Field: field, Errors: errs})
		}
	}

	collect("name", validator.ValidateName(req.Name))
	collect("email", validator.ValidateEmail(req.Email))
	collect("password", validator.ValidatePassword(req.Password))
	collect("phoneNumber", validator.ValidatePhoneNumber(req.PhoneNumber))
	collect("dateOfBirth", validator.ValidateDateOfBirth(req.DateOfBirth))

	// The registration default is the member base role, chosen explicitly
	// rather than through the enum zero value. Self-registration as admin is
	// rejected.
	role := models.RoleMember
	if req.UserRole != "" {
		requested := models.UserRole(req.UserRole)
		if !models.ValidRole(requested) || requested == models.RoleAdmin {
			collect("userRole", []string{"User role must be member or trainer"})
		} else {
			role = requested
		}
	}

	if len(violations) > 0 {
		return nil, apperrors.ValidationError(violations)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	dob, _ := time.Parse(validator.DateLayout, req.DateOfBirth)

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
		DateOfBirth:  dob,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "email", user.Email, "role", user.Role)

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable from the outside.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user logged in", "user_id", user.ID)

	return &dto.LoginResponse{Token: token}, nil
}
