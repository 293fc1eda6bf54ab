package auth

import "time"

// Claims es lo que viaja dentro del token de sesión.
type Claims struct {
	VetID  string
	Email  string
	Region string

	ExpiresAt time.Time
}
