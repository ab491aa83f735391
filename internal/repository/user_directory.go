package repository

import (
	"context"

	"github.com/grancoffee/helpdesk-service/internal/domain"
)

// UserDirectory resolves display names against the static user table.
type UserDirectory interface {
	GetByName(ctx context.Context, name string) (*domain.UserDetail, error)
	List(ctx context.Context) ([]domain.UserDetail, error)
}

type memoryUserDirectory struct {
	users  []domain.UserDetail
	byName map[string]int
}

// NewMemoryUserDirectory builds a directory over the seeded user table.
func NewMemoryUserDirectory(users []domain.UserDetail) UserDirectory {
	dir := &memoryUserDirectory{
		users:  append([]domain.UserDetail(nil), users...),
		byName: make(map[string]int, len(users)),
	}
	for i := range dir.users {
		dir.byName[dir.users[i].Name] = i
	}
	return dir
}

func (d *memoryUserDirectory) GetByName(ctx context.Context, name string) (*domain.UserDetail, error) {
	pos, ok := d.byName[name]
	if !ok {
		return nil, ErrNotFound
	}
	user := d.users[pos]
	return &user, nil
}

func (d *memoryUserDirectory) List(ctx context.Context) ([]domain.UserDetail, error) {
	return append([]domain.UserDetail(nil), d.users...), nil
}
