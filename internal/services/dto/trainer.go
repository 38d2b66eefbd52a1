package dto

import "gymfit_backend/internal/models"

type CreateTrainerRequest struct {
	UserID       string `json:"userId" binding:"required" validate:"required,uuid"`
	Experience   string `json:"experience"`
	Introduction string `json:"introduction"`
}

// UpdateTrainerRequest is a partial update: nil means "leave unchanged".
type UpdateTrainerRequest struct {
	Experience   *string `json:"experience"`
	Introduction *string `json:"introduction"`
}

func (r *UpdateTrainerRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Experience != nil {
		fields["experience"] = *r.Experience
	}
	if r.Introduction != nil {
		fields["introduction"] = *r.Introduction
	}
	return fields
}

type TrainerResponse struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	Experience   string        `json:"experience"`
	Introduction string        `json:"introduction"`
	UserName     string        `json:"userName"`
	UserEmail    string        `json:"userEmail"`
	UserPhone    string        `json:"userPhone,omitempty"`
	User         *UserResponse `json:"user,omitempty"`
}

func NewTrainerResponse(t *models.Trainer, withUser bool) TrainerResponse {
	resp := TrainerResponse{
		ID:           t.ID,
		UserID:       t.UserID,
		Experience:   t.Experience,
		Introduction: t.Introduction,
	}
	if t.User != nil {
		resp.UserName = t.User.Name
		resp.UserEmail = t.User.Email
		resp.UserPhone = t.User.PhoneNumber
		if withUser {
			user := NewUserResponse(t.User)
			resp.User = &user
		}
	}
	return resp
}
