package auth

// Principal es el vet ya resuelto contra el Credential Store (sin password).
// Vive en ports para que middleware y dominios lo compartan sin ciclos de imports.
type Principal struct {
	VetID         string
	Email         string
	Name          string
	Region        string
	LicenseNumber string
}
