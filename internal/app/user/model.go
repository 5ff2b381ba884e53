package user

import "time"

type User struct {
	ID           uint64    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Fullname     string    `json:"fullname" gorm:"not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Active       bool      `json:"-" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// Summary is the nested user representation embedded in board, task and
// comment responses.
type Summary struct {
	ID       uint64 `json:"id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
}

func (u *User) Summary() Summary {
	return Summary{ID: u.ID, Email: u.Email, Fullname: u.Fullname}
}

type ErrorResponse struct {
	Error string `json:"error"`
}
