package model

// User is a stored admin credential. The password field holds a bcrypt hash,
// never plaintext. The user document is never served over the API.
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}

// UserStore maps username to credential. Email uniqueness is not enforced;
// login takes the first match found while iterating, which is unspecified
// order when two entries share an email.
type UserStore map[string]User

// Settings is the single site-wide settings record.
type Settings struct {
	RestaurantName string `json:"restaurantName"`
}

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// ToggleRequest is the POST /menus/{type}/toggle body. Enabled is a pointer
// so a missing or non-boolean value is distinguishable from false.
type ToggleRequest struct {
	Enabled *bool `json:"enabled"`
}

// SettingsRequest is the POST /settings body.
type SettingsRequest struct {
	RestaurantName string `json:"restaurantName"`
}
