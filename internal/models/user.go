package models

// User представляет профиль пользователя
type User struct {
	Location     *string  `json:"location,omitempty"`
	Bio          *string  `json:"bio,omitempty"`
	Website      *string  `json:"website,omitempty"`
	AvatarExists *bool    `json:"avatarExists,omitempty"`
	ID           string   `json:"_id"`
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Followers    []string `json:"followers"`
	Following    []string `json:"following"`
}

// HasAvatar сообщает, загружен ли у пользователя аватар
func (u User) HasAvatar() bool {
	return u.AvatarExists != nil && *u.AvatarExists
}
