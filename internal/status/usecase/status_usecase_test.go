package usecase

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"genesis-backend/internal/status/domain"
)

type fakeStatusRepo struct {
	stages []*domain.Status
}

func (f *fakeStatusRepo) List() ([]*domain.Status, error) {
	out := make([]*domain.Status, len(f.stages))
	copy(out, f.stages)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (f *fakeStatusRepo) FindByID(id string) (*domain.Status, error) {
	for _, s := range f.stages {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStatusRepo) FindByName(name string) (*domain.Status, error) {
	for _, s := range f.stages {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStatusRepo) Count() (int64, error) {
	return int64(len(f.stages)), nil
}

func (f *fakeStatusRepo) Create(status *domain.Status) error {
	f.stages = append(f.stages, status)
	return nil
}

func (f *fakeStatusRepo) Update(status *domain.Status) error {
	for i, s := range f.stages {
		if s.ID == status.ID {
			f.stages[i] = status
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeStatusRepo) Delete(id string) error {
	for i, s := range f.stages {
		if s.ID == id {
			f.stages = append(f.stages[:i], f.stages[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeStatusRepo) Reorder(orderedIDs []string) error {
	for pos, id := range orderedIDs {
		for _, s := range f.stages {
			if s.ID == id {
				s.Position = pos
			}
		}
	}
	return nil
}

type fakeLeadCounter struct {
	counts map[string]int64
}

func (f *fakeLeadCounter) CountByStatus(statusID string) (int64, error) {
	return f.counts[statusID], nil
}

func newStatusUsecaseForTest(repo *fakeStatusRepo, counts map[string]int64) StatusUsecase {
	return NewStatusUsecase(repo, &fakeLeadCounter{counts: counts}, nil)
}

func TestStatusCreate(t *testing.T) {
	t.Run("assigns slug id and appends at the end", func(t *testing.T) {
		repo := &fakeStatusRepo{}
		uc := newStatusUsecaseForTest(repo, nil)

		first, err := uc.Create("Novo Lead", "")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if first.ID != "novo_lead" {
			t.Errorf("expected slug id novo_lead, got %q", first.ID)
		}
		if first.Position != 0 {
			t.Errorf("expected position 0, got %d", first.Position)
		}
		if first.Color != domain.DefaultColor {
			t.Errorf("expected default color, got %q", first.Color)
		}

		second, err := uc.Create("Contato", "bg-primary")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if second.Position != 1 {
			t.Errorf("expected position 1, got %d", second.Position)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc := newStatusUsecaseForTest(&fakeStatusRepo{}, nil)
		if _, err := uc.Create("   ", ""); !errors.Is(err, ErrNameRequired) {
			t.Errorf("expected ErrNameRequired, got %v", err)
		}
	})

	t.Run("rejects duplicate name case-insensitively", func(t *testing.T) {
		repo := &fakeStatusRepo{}
		uc := newStatusUsecaseForTest(repo, nil)

		if _, err := uc.Create("Proposta", ""); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := uc.Create("PROPOSTA", ""); !errors.Is(err, ErrNameTaken) {
			t.Errorf("expected ErrNameTaken, got %v", err)
		}
		if len(repo.stages) != 1 {
			t.Errorf("registry changed on rejected create: %d stages", len(repo.stages))
		}
	})
}

func TestStatusDelete(t *testing.T) {
	t.Run("removes an unreferenced stage", func(t *testing.T) {
		repo := &fakeStatusRepo{stages: []*domain.Status{{ID: "lost", Name: "Perdido"}}}
		uc := newStatusUsecaseForTest(repo, nil)

		if err := uc.Delete("lost"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(repo.stages) != 0 {
			t.Errorf("stage not removed")
		}
	})

	t.Run("refuses while leads reference the stage", func(t *testing.T) {
		repo := &fakeStatusRepo{stages: []*domain.Status{{ID: "new", Name: "Novo"}}}
		uc := newStatusUsecaseForTest(repo, map[string]int64{"new": 2})

		if err := uc.Delete("new"); !errors.Is(err, ErrStatusInUse) {
			t.Errorf("expected ErrStatusInUse, got %v", err)
		}
		if len(repo.stages) != 1 {
			t.Errorf("stage removed despite references")
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		uc := newStatusUsecaseForTest(&fakeStatusRepo{}, nil)
		if err := uc.Delete("missing"); !errors.Is(err, ErrStatusNotFound) {
			t.Errorf("expected ErrStatusNotFound, got %v", err)
		}
	})
}

func TestStatusReorder(t *testing.T) {
	repo := &fakeStatusRepo{stages: []*domain.Status{
		{ID: "a", Position: 0},
		{ID: "b", Position: 1},
		{ID: "c", Position: 2},
	}}
	uc := newStatusUsecaseForTest(repo, nil)

	t.Run("renumbers to the given order", func(t *testing.T) {
		if err := uc.Reorder([]string{"c", "a", "b"}); err != nil {
			t.Fatalf("Reorder: %v", err)
		}
		stages, _ := repo.List()
		got := []string{stages[0].ID, stages[1].ID, stages[2].ID}
		want := []string{"c", "a", "b"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order %v, want %v", got, want)
			}
		}
	})

	t.Run("rejects unknown ids", func(t *testing.T) {
		if err := uc.Reorder([]string{"a", "nope", "b"}); !errors.Is(err, ErrStatusNotFound) {
			t.Errorf("expected ErrStatusNotFound, got %v", err)
		}
	})

	t.Run("rejects a partial ordering", func(t *testing.T) {
		if err := uc.Reorder([]string{"c", "a"}); !errors.Is(err, ErrBadOrdering) {
			t.Errorf("expected ErrBadOrdering, got %v", err)
		}

		// The rejected call must leave positions dense and unique
		stages, _ := repo.List()
		held := map[int][]string{}
		for _, s := range stages {
			held[s.Position] = append(held[s.Position], s.ID)
		}
		for pos, ids := range held {
			if len(ids) != 1 {
				t.Errorf("position %d held by %v", pos, ids)
			}
		}
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		if err := uc.Reorder([]string{"a", "a", "b"}); !errors.Is(err, ErrBadOrdering) {
			t.Errorf("expected ErrBadOrdering, got %v", err)
		}
	})
}

func TestStatusEnsureDefaults(t *testing.T) {
	repo := &fakeStatusRepo{}
	uc := newStatusUsecaseForTest(repo, nil)

	if err := uc.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults: %v", err)
	}
	if len(repo.stages) != len(defaultStages) {
		t.Fatalf("seeded %d stages, want %d", len(repo.stages), len(defaultStages))
	}
	if repo.stages[0].ID != "new" || repo.stages[len(repo.stages)-1].ID != "lost" {
		t.Errorf("unexpected seed order: first %q last %q", repo.stages[0].ID, repo.stages[len(repo.stages)-1].ID)
	}

	// A populated registry is left alone
	if err := uc.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults: %v", err)
	}
	if len(repo.stages) != len(defaultStages) {
		t.Errorf("reseeded a populated registry")
	}
}

func TestStatusUpdate(t *testing.T) {
	t.Run("merges partial fields", func(t *testing.T) {
		repo := &fakeStatusRepo{stages: []*domain.Status{{ID: "new", Name: "Novo", Color: "bg-info", Position: 0}}}
		uc := newStatusUsecaseForTest(repo, nil)

		name := "Entrada"
		updated, err := uc.Update("new", StatusUpdate{Name: &name})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Name != "Entrada" || updated.Color != "bg-info" {
			t.Errorf("unexpected merge result: %+v", updated)
		}
	})

	t.Run("rejects rename onto an existing name", func(t *testing.T) {
		repo := &fakeStatusRepo{stages: []*domain.Status{
			{ID: "new", Name: "Novo"},
			{ID: "lost", Name: "Perdido"},
		}}
		uc := newStatusUsecaseForTest(repo, nil)

		name := "perdido"
		if _, err := uc.Update("new", StatusUpdate{Name: &name}); !errors.Is(err, ErrNameTaken) {
			t.Errorf("expected ErrNameTaken, got %v", err)
		}
	})
}
