package models

// UserStatus is an admin account state. Disable is one-directional: the
// backend exposes no re-enable operation.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusDisabled UserStatus = "DISABLED"
)

// User is an admin account. Only ACTIVE users may authenticate.
type User struct {
	ID           int64      `json:"id"`
	ProfilePhoto string     `json:"profilePhoto"`
	Name         string     `json:"name"`
	Surname      string     `json:"surname"`
	Username     string     `json:"username"`
	Password     string     `json:"password"`
	Status       UserStatus `json:"status"`
	CreatedDate  string     `json:"createdDate"`
	UpdatedDate  string     `json:"updatedDate"`
}

// Me is the authenticated user's own profile, as returned by /auth/me.
type Me = User

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// UpdateProfileRequest patches the caller's own profile.
type UpdateProfileRequest struct {
	Name         *string `json:"name,omitempty"`
	Surname      *string `json:"surname,omitempty"`
	ProfilePhoto *string `json:"profilePhoto,omitempty"`
}

type ResetPasswordRequest struct {
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}
