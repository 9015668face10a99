package repo

import (
	"context"
	"sync"

	"github.com/hyeonbin/boardhub/internal/domain"
	"github.com/hyeonbin/boardhub/internal/models"
)

// MemoryDirectory is the map-backed user directory. It satisfies the same
// contract as GormRepo, so the auth service never knows which one it talks to.
type MemoryDirectory struct {
	mu      sync.Mutex
	nextID  uint
	byEmail map[string]models.User
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{byEmail: make(map[string]models.User)}
}

func (d *MemoryDirectory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (d *MemoryDirectory) ExistsByEmail(_ context.Context, email string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.byEmail[email]
	return ok, nil
}

func (d *MemoryDirectory) CreateUser(_ context.Context, u *models.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.byEmail[u.Email]; ok {
		return domain.ErrEmailTaken
	}
	d.nextID++
	u.ID = d.nextID
	d.byEmail[u.Email] = *u
	return nil
}

// Delete is only needed by tests that exercise the deleted-account path.
func (d *MemoryDirectory) Delete(email string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.byEmail, email)
}
