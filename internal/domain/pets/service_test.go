package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	seq  int64
	byID map[int64]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) Create(_ context.Context, p Pet) (Pet, error) {
	r.seq++
	p.ID = r.seq
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, errRepoNotFound
	}
	return p, nil
}

func (r *testRepo) Update(_ context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) ListActiveByOwner(_ context.Context, ownerID int64) ([]WithOwner, error) {
	out := make([]WithOwner, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID && p.Active {
			out = append(out, WithOwner{Pet: p, OwnerName: "Ana García"})
		}
	}
	return out, nil
}

// ownerDir simula el módulo de usuarios: un único dueño conocido.
type ownerDir struct {
	id    int64
	email string
	name  string
}

func (d ownerDir) OwnerIDByEmail(_ context.Context, email string) (int64, error) {
	if email != d.email {
		return 0, errRepoNotFound
	}
	return d.id, nil
}

func (d ownerDir) OwnerEmail(_ context.Context, ownerID int64) (string, error) {
	if ownerID != d.id {
		return "", errRepoNotFound
	}
	return d.email, nil
}

func (d ownerDir) OwnerName(_ context.Context, ownerID int64) (string, error) {
	if ownerID != d.id {
		return "", errRepoNotFound
	}
	return d.name, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_ResolvesOwnerFromEmail(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, ownerDir{id: 3, email: "ana@example.com", name: "Ana García"})

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), "ana@example.com", CreateInput{Name: "  Milo  "})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.OwnerID != 3 {
		t.Fatalf("expected owner id 3, got %d", p.OwnerID)
	}
	if p.Name != "Milo" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
	if !p.Active {
		t.Fatalf("expected new pet to be active")
	}
	if p.OwnerName != "Ana García" {
		t.Fatalf("expected owner name resolved, got %q", p.OwnerName)
	}
	if p.CreatedAt != now || p.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
}

func TestService_Create_EmptyName(t *testing.T) {
	svc := NewService(newTestRepo(), ownerDir{id: 3, email: "ana@example.com"})

	_, err := svc.Create(context.Background(), "ana@example.com", CreateInput{Name: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_UnknownRequester(t *testing.T) {
	svc := NewService(newTestRepo(), ownerDir{id: 3, email: "ana@example.com"})

	_, err := svc.Create(context.Background(), "otro@example.com", CreateInput{Name: "Milo"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown requester, got %v", err)
	}
}

func TestService_Delete_SoftDeletesForOwner(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, ownerDir{id: 3, email: "ana@example.com", name: "Ana García"})

	p, err := svc.Create(context.Background(), "ana@example.com", CreateInput{Name: "Milo"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), p.ID, "Ana@Example.com"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	// Borrado lógico: el registro sigue existiendo pero inactivo.
	stored, err := repo.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("expected pet to remain in repo after delete")
	}
	if stored.Active {
		t.Fatalf("expected pet to be inactive after delete")
	}

	// Y deja de aparecer en el listado del dueño.
	list, err := svc.ListByOwner(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(list))
	}
}

func TestService_Delete_OnlyOwnerCanDelete(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, ownerDir{id: 3, email: "ana@example.com"})

	p, err := svc.Create(context.Background(), "ana@example.com", CreateInput{Name: "Milo"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	err = svc.Delete(context.Background(), p.ID, "intruso@example.com")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	stored, _ := repo.GetByID(context.Background(), p.ID)
	if !stored.Active {
		t.Fatalf("expected pet to stay active after forbidden delete")
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := NewService(newTestRepo(), ownerDir{id: 3, email: "ana@example.com"})

	err := svc.Delete(context.Background(), 99, "ana@example.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
