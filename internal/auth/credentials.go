package auth

import (
	"errors"

	"github.com/grancoffee/helpdesk-service/internal/domain"
)

// ErrInvalidCredentials is returned for any failed login. The message does
// not distinguish unknown users from wrong passwords.
var ErrInvalidCredentials = errors.New("credenciais inválidas")

// Account binds a username and password hash to an identity.
type Account struct {
	Username     string
	PasswordHash string
	Identity     domain.Identity
}

// CredentialTable is the fixed account table that stands in for a real
// authentication provider. It satisfies login(username, password) and is the
// single pluggable seam for swapping in an external one.
type CredentialTable struct {
	accounts map[string]Account
}

type seedAccount struct {
	username string
	password string
	identity domain.Identity
}

var seedAccounts = []seedAccount{
	{
		username: "atendente",
		password: "suporte",
		identity: domain.Identity{
			ID:         "att1",
			Username:   "atendente",
			Name:       "Lucas Matias Ferreira",
			Email:      "lucas.ferreira@grancoffee.com",
			Role:       domain.RoleAtendente,
			Department: "Suporte Técnico",
			Tag:        "LUCAS.FERREIRA",
		},
	},
	{
		username: "colaborador",
		password: "senha123",
		identity: domain.Identity{
			ID:         "col1",
			Username:   "colaborador",
			Name:       "João Silva",
			Email:      "joao.silva@grancoffee.com",
			Role:       domain.RoleColaborador,
			Department: "Tecnologia da Informação",
			Tag:        "JOAO.SILVA",
		},
	},
	{
		username: "desenvolvedor",
		password: "dev123",
		identity: domain.Identity{
			ID:         "dev1",
			Username:   "desenvolvedor",
			Name:       "Carlos Souza",
			Email:      "carlos.souza@grancoffee.com",
			Role:       domain.RoleDesenvolvedor,
			Department: "Desenvolvimento",
			Tag:        "CARLOS.SOUZA",
		},
	},
}

// NewCredentialTable hashes the fixed demo passwords at startup so only
// bcrypt digests are held in memory afterwards.
func NewCredentialTable(bcryptCost int) (*CredentialTable, error) {
	table := &CredentialTable{accounts: make(map[string]Account, len(seedAccounts))}
	for _, seed := range seedAccounts {
		hash, err := HashPassword(seed.password, bcryptCost)
		if err != nil {
			return nil, err
		}
		table.accounts[seed.username] = Account{
			Username:     seed.username,
			PasswordHash: hash,
			Identity:     seed.identity,
		}
	}
	return table, nil
}

// Authenticate checks the username/password pair and returns the identity.
func (t *CredentialTable) Authenticate(username, password string) (*domain.Identity, error) {
	account, ok := t.accounts[username]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := ComparePassword(account.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	identity := account.Identity
	return &identity, nil
}
