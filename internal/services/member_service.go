package services

import (
	"gymfit_backend/internal/apperrors"
	"gymfit_backend/internal/logger"
	"gymfit_backend/internal/models"
	"gymfit_backend/internal/repositories"
	"gymfit_backend/internal/services/dto"

	"gorm.io/gorm"
)

type MemberService interface {
	List() ([]dto.MemberResponse, error)
	Get(id string) (*dto.MemberResponse, error)
	Create(req *dto.CreateMemberRequest) (*dto.MemberResponse, error)
	Patch(id string, req *dto.UpdateMemberRequest) (*dto.MemberResponse, error)
	Delete(id string) error
}

// MemberServiceImpl holds the DB handle rather than prebuilt repositories:
// attach and detach must change the member row and the user role as one
// atomic unit, so repositories are constructed over the transaction.
type MemberServiceImpl struct {
	db *gorm.DB
}

func NewMemberService(db *gorm.DB) MemberService {
	return &MemberServiceImpl{db: db}
}

func (s *MemberServiceImpl) List() ([]dto.MemberResponse, error) {
	members, err := repositories.NewMemberRepository(s.db).FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, dto.NewMemberResponse(&members[i], true))
	}
	return responses, nil
}

func (s *MemberServiceImpl) Get(id string) (*dto.MemberResponse, error) {
	member, err := repositories.NewMemberRepository(s.db).FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMemberNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewMemberResponse(member, true)
	return &resp, nil
}

// Create attaches a member record to an existing user and promotes the user
// to the member role in the same transaction.
func (s *MemberServiceImpl) Create(req *dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	var member *models.Member

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
		if _, err := memberRepo.FindByUserID(user.ID); err == nil {
			return apperrors.ErrAlreadyMember
		} else if !apperrors.Is(err, repositories.ErrMemberNotFound) {
			return err
		}
		if _, err := trainerRepo.FindByUserID(user.ID); err == nil {
			return apperrors.ErrAlreadyTrainer
		} else if !apperrors.Is(err, repositories.ErrTrainerNotFound) {
			return err
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		member = &models.Member{
			UserID:   user.ID,
			IsActive: isActive,
		}
		if err := memberRepo.Create(member); err != nil {
			if apperrors.Is(err, repositories.ErrMemberAlreadyExists) {
				return apperrors.ErrAlreadyMember
			}
			return err
		}

		user.Role = models.RoleMember
		if err := userRepo.Update(user); err != nil {
			return err
		}

		member.User = user
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	logger.Info("member created", "member_id", member.ID, "user_id", member.UserID)

	resp := dto.NewMemberResponse(member, false)
	return &resp, nil
}

// Patch overwrites only the fields present in the request.
func (s *MemberServiceImpl) Patch(id string, req *dto.UpdateMemberRequest) (*dto.MemberResponse, error) {
	memberRepo := repositories.NewMemberRepository(s.db)

	if err := memberRepo.Updates(id, req.Fields()); err != nil {
		if apperrors.Is(err, repositories.ErrMemberNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	member, err := memberRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMemberNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewMemberResponse(member, false)
	return &resp, nil
}

// Delete removes the member record and reverts the user to the administrative
// default role, atomically.
func (s *MemberServiceImpl) Delete(id string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository(tx)
		memberRepo := repositories.NewMemberRepository(tx)

		member, err := memberRepo.FindByID(id)
		if err != nil {
			if apperrors.Is(err, repositories.ErrMemberNotFound) {
				return apperrors.ErrMemberNotFound
			}
			return err
		}

		if err := memberRepo.Delete(member.ID); err != nil {
			return err
		}

		member.User.Role = models.RoleAdmin
		return userRepo.Update(member.User)
	})
	if err != nil {
		return asAppError(err)
	}

	logger.Info("member deleted", "member_id", id)
	return nil
}

// asAppError passes AppErrors through and masks everything else as internal.
func asAppError(err error) error {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		return appErr
	}
	return apperrors.InternalError(err)
}
