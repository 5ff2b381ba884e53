package auth

import "time"

// Token is an opaque bearer credential, one row per user. The key itself is
// the only thing clients ever see.
type Token struct {
	ID        uint64    `gorm:"primaryKey"`
	Key       string    `gorm:"uniqueIndex;not null"`
	UserID    uint64    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Token) TableName() string {
	return "auth_tokens"
}

// Actor is the resolved identity a request acts as. Handlers receive it from
// the auth middleware; it is never read from ambient state.
type Actor struct {
	ID       uint64 `json:"id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
}

type RegistrationRequest struct {
	Fullname         string `json:"fullname" binding:"required,max=200"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	RepeatedPassword string `json:"repeated_password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Credentials is the response shape shared by registration and login.
type Credentials struct {
	Token    string `json:"token"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	UserID   uint64 `json:"user_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
