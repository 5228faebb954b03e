package domain

// User represents an application account
type User struct {
	ID           uint
	Nombre       string
	Email        string
	PasswordHash string
}

// Driver represents a fleet driver
type Driver struct {
	ID                  uint
	Nombre              string
	Apellido            string
	DNI                 int64
	Licencia            string
	LicenciaVencimiento string // YYYY-MM-DD
}

// Vehicle represents a fleet vehicle
type Vehicle struct {
	ID             uint
	Marca          string
	Modelo         string
	Patente        string
	Anio           int
	CapacidadCarga int
}

// Trip relates a vehicle and a driver over a route
type Trip struct {
	ID           uint
	VehiculoID   uint
	ConductorID  uint
	FechaSalida  string
	FechaLlegada string
	Origen       string
	Destino      string
	Kilometros   float64
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User  *User
	Token string
}

// Identity is the verified caller the auth gate attaches to a request.
// Roles come from the store at verification time, not from the token.
type Identity struct {
	UserID uint
	Roles  []string
}

// HasRole reports whether the identity carries the given role.
func (i *Identity) HasRole(role string) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}
