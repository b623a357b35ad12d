package models

import "time"

// User is a registered account. PasswordHash is a bcrypt hash and never leaves the server.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Avatar       string     `json:"avatar"`
	Bio          string     `json:"bio"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	MessageCount int        `json:"messageCount"`
}

// 응답에 노출되는 사용자 요약
type PublicUser struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Avatar   string `json:"avatar" example:"🐱"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email, Avatar: u.Avatar}
}

// NewUser carries the fields written at registration.
type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
	Avatar       string
	Bio          string
	CreatedAt    time.Time
}
