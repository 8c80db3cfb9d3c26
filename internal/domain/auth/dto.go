package auth

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required,oneof=admin manager sales"`
}

type UserPublic struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type LoginResponse struct {
	User        UserPublic `json:"user"`
	AccessToken string     `json:"access_token"`
}

func toPublic(u *User) UserPublic {
	return UserPublic{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
