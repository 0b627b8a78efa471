package dto

import "medstock/internal/entity"

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	PhoneNo  string `json:"phoneNo" validate:"required,inphone"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	Password    string `json:"password" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,strongpw"`
}

// UserResponse is the public shape of a user; the password hash never leaves
// the service layer.
type UserResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	PhoneNo  string  `json:"phoneNo"`
	PhotoURL *string `json:"photoUrl"`
	Role     string  `json:"role"`
	Status   bool    `json:"status"`
}

func UserResponseFromEntity(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		PhoneNo:  user.PhoneNo,
		PhotoURL: user.PhotoURL,
		Role:     string(user.Role),
		Status:   user.Status,
	}
}

func UserResponsesFromEntities(users []entity.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, UserResponseFromEntity(&users[i]))
	}
	return responses
}
