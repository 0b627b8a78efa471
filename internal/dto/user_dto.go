package dto

type ListUsersRequest struct {
	SearchQuery string `query:"searchQuery"`
}

type UpdateStatusBulkRequest struct {
	UserIDs []string `json:"userIds" validate:"required,min=1,dive,required"`
	Status  *bool    `json:"status" validate:"required"`
}

type UpdateUserDetailsRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=3"`
	PhoneNo  *string `json:"phoneNo" validate:"omitempty,inphone"`
	Password string  `json:"password" validate:"required"`
}

// UpdateRoleOrStatusRequest updates exactly one field: when Role is present
// the status value is ignored, matching the admin UI's two controls.
type UpdateRoleOrStatusRequest struct {
	Role   *string `json:"role" validate:"omitempty,oneof=user admin"`
	Status *bool   `json:"status"`
}

type DeleteUsersRequest struct {
	UserIDs []string `json:"userIds" validate:"required,min=1,dive,required"`
}

type UserDetailsResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	PhoneNo string `json:"phoneNo"`
}

type UserRoleResponse struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type UserStatusResponse struct {
	ID     string `json:"id"`
	Status bool   `json:"status"`
}
