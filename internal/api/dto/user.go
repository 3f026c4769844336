package dto

// UserRefDTO is the short user reference embedded in tweets and profiles.
type UserRefDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// UserProfileDTO is the GET /users/me and GET /users/:user_id body.
type UserProfileDTO struct {
	ID        uint64       `json:"id"`
	Name      string       `json:"name"`
	Followers []UserRefDTO `json:"followers"`
	Following []UserRefDTO `json:"following"`
}
