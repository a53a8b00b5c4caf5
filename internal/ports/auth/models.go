package auth

import "time"

// Claims es lo que nos importa del token: UserID es el owner del Record Store.
type Claims struct {
	UserID    string
	Email     string
	ExpiresAt *time.Time
}
