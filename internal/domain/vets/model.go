package vets

import "time"

// Vet es el principal autenticado. Opera solo dentro de su región.
type Vet struct {
	ID string

	Email        string // siempre en minúsculas
	PasswordHash string

	Name          string
	Region        string
	LicenseNumber string

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile es la vista pública del vet (sin hash).
type Profile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Region        string `json:"region"`
	LicenseNumber string `json:"licenseNumber"`
}

func (v Vet) Profile() Profile {
	return Profile{
		ID:            v.ID,
		Email:         v.Email,
		Name:          v.Name,
		Region:        v.Region,
		LicenseNumber: v.LicenseNumber,
	}
}
