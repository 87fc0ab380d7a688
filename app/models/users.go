package models

// User is identified by its api key alone; the key is an opaque bearer
// string generated at registration time.
type User struct {
	APIKey string `json:"api_key"`
}

type RegisterUserRequest struct{}

type RegisterUserResponse struct {
	APIKey string `json:"api_key"`
}
