package dto

import "gymfit_backend/internal/models"

type CreateMemberRequest struct {
	UserID   string `json:"userId" binding:"required" validate:"required,uuid"`
	IsActive *bool  `json:"isActive"`
}

// UpdateMemberRequest is a partial update: nil means "leave unchanged".
type UpdateMemberRequest struct {
	IsActive *bool `json:"isActive"`
}

func (r *UpdateMemberRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	return fields
}

// MemberResponse mirrors the flat-plus-nested shape the frontend consumes:
// flat user fields for list rendering, the nested user for detail views.
type MemberResponse struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	IsActive  bool          `json:"isActive"`
	UserName  string        `json:"userName"`
	UserEmail string        `json:"userEmail"`
	UserPhone string        `json:"userPhone,omitempty"`
	User      *UserResponse `json:"user,omitempty"`
}

func NewMemberResponse(m *models.Member, withUser bool) MemberResponse {
	resp := MemberResponse{
		ID:       m.ID,
		UserID:   m.UserID,
		IsActive: m.IsActive,
	}
	if m.User != nil {
		resp.UserName = m.User.Name
		resp.UserEmail = m.User.Email
		resp.UserPhone = m.User.PhoneNumber
		if withUser {
			user := NewUserResponse(m.User)
			resp.User = &user
		}
	}
	return resp
}
