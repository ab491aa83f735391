package domain

// Role enumerates the portal roles carried by a logged-in identity.
type Role string

const (
	RoleColaborador   Role = "colaborador"
	RoleAtendente     Role = "atendente"
	RoleDesenvolvedor Role = "desenvolvedor"
)

// Elevated reports whether the role may work records directly.
func (r Role) Elevated() bool {
	return r == RoleAtendente || r == RoleDesenvolvedor
}

// Identity is the authenticated caller handed to the rest of the system by
// the login step.
type Identity struct {
	ID         string
	Username   string
	Name       string
	Email      string
	Role       Role
	Department string
	Tag        string
}

// UserDetail is a reference directory entry. Record people fields join
// against Name; the directory is never mutated at runtime.
type UserDetail struct {
	ID         string
	Name       string
	Tag        string
	Email      string
	Department string
	Superior   string
}
