package model

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Ctime        int64  `json:"createdAt"`
	Mtime        int64  `json:"updatedAt"`
}
