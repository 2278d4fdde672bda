package treatments

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	seq  int64
	byID map[int64]Treatment
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Treatment{}}
}

func (r *testRepo) Create(_ context.Context, t Treatment) (Treatment, error) {
	r.seq++
	t.ID = r.seq
	r.byID[t.ID] = t
	return t, nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Treatment, error) {
	t, ok := r.byID[id]
	if !ok {
		return Treatment{}, ErrNotFound
	}
	return t, nil
}

func (r *testRepo) Update(_ context.Context, t Treatment) error {
	if _, ok := r.byID[t.ID]; !ok {
		return ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) ListActive(_ context.Context) ([]Treatment, error) {
	out := make([]Treatment, 0)
	for _, t := range r.byID {
		if t.Active {
			out = append(out, t)
		}
	}
	return out, nil
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), CreateInput{Name: "  ", DurationMinutes: 20}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Consulta", DurationMinutes: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero duration, got %v", err)
	}

	tr, err := svc.Create(context.Background(), CreateInput{Name: " Consulta general ", DurationMinutes: 20})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if tr.Name != "Consulta general" || !tr.Active {
		t.Fatalf("unexpected treatment: %+v", tr)
	}
}

func TestService_Deactivate_RemovesFromCatalogue(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	tr, err := svc.Create(context.Background(), CreateInput{Name: "Vacunación", DurationMinutes: 15})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Deactivate(context.Background(), tr.ID); err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}

	// Sale del catálogo pero el registro sigue para las citas ya creadas.
	list, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty catalogue, got %d", len(list))
	}
	if _, err := svc.GetByID(context.Background(), tr.ID); err != nil {
		t.Fatalf("expected deactivated treatment to remain readable, got %v", err)
	}

	// RequireActive sí lo rechaza.
	if err := svc.RequireActive(context.Background(), tr.ID); !errors.Is(err, ErrInactive) {
		t.Fatalf("expected ErrInactive, got %v", err)
	}
	if err := svc.RequireActive(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
