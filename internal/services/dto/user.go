package dto

import (
	"time"

	"gymfit_backend/internal/models"
)

const dateLayout = "2006-01-02"

// UserResponse is the public projection of a user. The password hash never
// appears here.
type UserResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phoneNumber"`
	Role        models.UserRole `json:"userRole"`
	DateOfBirth string          `json:"dateOfBirth"`
}

func NewUserResponse(u *models.User) UserResponse {
	dob := ""
	if !u.DateOfBirth.IsZero() {
		dob = u.DateOfBirth.Format(dateLayout)
	}
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		DateOfBirth: dob,
	}
}

// UpdateUserRequest is a partial update: nil means "leave unchanged". The
// role is deliberately absent: it mirrors the member/trainer rows and is only
// ever mutated inside the attach/detach transactions.
type UpdateUserRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	DateOfBirth *string `json:"dateOfBirth"`
}

// Fields converts the request into an explicit field-update set, so the
// absent-means-unchanged contract is applied in one place instead of per-field
// writes. DateOfBirth is included only when it parses; validation has already
// rejected malformed dates by the time this runs.
func (r *UpdateUserRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.PhoneNumber != nil {
		fields["phone_number"] = *r.PhoneNumber
	}
	if r.DateOfBirth != nil {
		if parsed, err := time.Parse(dateLayout, *r.DateOfBirth); err == nil {
			fields["date_of_birth"] = parsed
		}
	}
	return fields
}
