package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/grancoffee/helpdesk-service/internal/domain"
)

func TestAuthenticateKnownAccounts(t *testing.T) {
	table, err := NewCredentialTable(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("credential table: %v", err)
	}

	cases := []struct {
		username string
		password string
		name     string
		role     domain.Role
	}{
		{"atendente", "suporte", "Lucas Matias Ferreira", domain.RoleAtendente},
		{"colaborador", "senha123", "João Silva", domain.RoleColaborador},
		{"desenvolvedor", "dev123", "Carlos Souza", domain.RoleDesenvolvedor},
	}
	for _, tc := range cases {
		identity, err := table.Authenticate(tc.username, tc.password)
		if err != nil {
			t.Fatalf("%s: %v", tc.username, err)
		}
		if identity.Name != tc.name || identity.Role != tc.role {
			t.Fatalf("%s resolved to %+v", tc.username, identity)
		}
	}
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	table, err := NewCredentialTable(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("credential table: %v", err)
	}

	if _, err := table.Authenticate("colaborador", "errada"); err != ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := table.Authenticate("convidado", "senha123"); err != ErrInvalidCredentials {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateReturnsCopy(t *testing.T) {
	table, err := NewCredentialTable(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("credential table: %v", err)
	}

	first, err := table.Authenticate("atendente", "suporte")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	first.Name = "alterado"

	second, err := table.Authenticate("atendente", "suporte")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if second.Name != "Lucas Matias Ferreira" {
		t.Fatalf("mutating a result leaked into the table: %s", second.Name)
	}
}
