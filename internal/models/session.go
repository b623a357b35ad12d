package models

import "time"

// Session binds an opaque token to a user until ExpiresAt. ExpiresAt never changes after creation.
type Session struct {
	ID        int64
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) ExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
