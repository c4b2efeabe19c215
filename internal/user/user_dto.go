package user

type CreateUserRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"omitempty,oneof=SUPER EMPLOYEE"`
	Occupation string `json:"occupation" binding:"omitempty,oneof=ADMINISTRATOR ENGINEER"`
	CompanyID  string `json:"company_id" binding:"omitempty,uuid"`
}

type UpdateUserRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Occupation *string `json:"occupation" binding:"omitempty,oneof=ADMINISTRATOR ENGINEER"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type UserResponse struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Occupation string `json:"occupation"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID.String(),
		CompanyID:  u.CompanyID.String(),
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Occupation: u.Occupation,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
