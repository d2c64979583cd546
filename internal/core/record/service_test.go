package record

import (
	"context"
	"errors"
	"testing"
	"time"
)

type note struct {
	Record
	Title string
	Body  string
}

type noteDTO struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
	CreatedBy string
	UpdatedBy string
}

var noteMapper = Mapper[*note, noteDTO]{
	ToDTO: func(n *note) noteDTO {
		return noteDTO{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			CreatedAt: n.CreatedAt,
			CreatedBy: n.CreatedBy,
			UpdatedBy: n.UpdatedBy,
		}
	},
	ToEntity: func(d noteDTO) *note {
		n := &note{Title: d.Title, Body: d.Body}
		n.ID = d.ID
		n.CreatedAt = d.CreatedAt
		n.CreatedBy = d.CreatedBy
		n.UpdatedBy = d.UpdatedBy
		return n
	},
}

type fakeNoteRepo struct {
	notes map[string]*note
	order []string
	now   time.Time
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{
		notes: make(map[string]*note),
		now:   time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *fakeNoteRepo) ListActive(_ context.Context) ([]*note, error) {
	var active []*note
	for _, id := range r.order {
		n := r.notes[id]
		if n.State != StateActive {
			continue
		}
		active = append(active, cloneNote(n))
	}
	return active, nil
}

func (r *fakeNoteRepo) GetByID(_ context.Context, id string) (*note, error) {
	n, ok := r.notes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneNote(n), nil
}

func (r *fakeNoteRepo) Create(_ context.Context, n *note) error {
	clone := cloneNote(n)
	clone.CreatedAt = r.now
	r.notes[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return nil
}

func (r *fakeNoteRepo) Update(_ context.Context, n *note) error {
	stored, ok := r.notes[n.ID]
	if !ok {
		return ErrNotFound
	}

	clone := cloneNote(n)
	clone.CreatedAt = stored.CreatedAt
	clone.CreatedBy = stored.CreatedBy
	clone.UpdatedAt = r.now
	r.notes[clone.ID] = clone
	return nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.notes[id]; !ok {
		return ErrNotFound
	}
	delete(r.notes, id)
	for i, existingID := range r.order {
		if existingID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeNoteRepo) ChangeState(_ context.Context, id string, state State) error {
	n, ok := r.notes[id]
	if !ok {
		return ErrNotFound
	}
	n.State = state
	return nil
}

func cloneNote(n *note) *note {
	if n == nil {
		return nil
	}
	clone := *n
	return &clone
}

func TestServiceAdd_AssignsServiceGeneratedID(t *testing.T) {
	t.Parallel()

	repo := newFakeNoteRepo()
	svc := NewService(repo, noteMapper)

	id, err := svc.Add(context.Background(), "user-1", noteDTO{ID: "client-chosen", Title: "hello"})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if id == "" || id == "client-chosen" {
		t.Fatalf("expected service generated id, got %q", id)
	}

	other, err := svc.Add(context.Background(), "user-1", noteDTO{Title: "second"})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if other == id {
		t.Fatalf("expected unique ids, got duplicate %q", id)
	}

	stored := repo.notes[id]
	if stored == nil {
		t.Fatalf("row not persisted under generated id")
	}
	if stored.CreatedBy != "user-1" {
		t.Fatalf("expected actor as creator, got %q", stored.CreatedBy)
	}
	if stored.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be stamped on create")
	}
}

func TestServiceGetAll_ExcludesInactiveAndKeepsOrder(t *testing.T) {
	t.Parallel()

	repo := newFakeNoteRepo()
	svc := NewService(repo, noteMapper)
	ctx := context.Background()

	first, _ := svc.Add(ctx, "user-1", noteDTO{Title: "first"})
	second, _ := svc.Add(ctx, "user-1", noteDTO{Title: "second"})
	third, _ := svc.Add(ctx, "user-1", noteDTO{Title: "third"})

	if err := svc.Deactivate(ctx, second); err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}

	dtos, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}

	if len(dtos) != 2 {
		t.Fatalf("expected 2 active rows, got %d", len(dtos))
	}
	if dtos[0].ID != first || dtos[1].ID != third {
		t.Fatalf("unexpected order: %q, %q", dtos[0].ID, dtos[1].ID)
	}

	// 非アクティブ行も ID 指定では到達できる。
	got, err := svc.GetByID(ctx, second)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Title != "second" {
		t.Fatalf("expected inactive row via GetByID, got %+v", got)
	}
}

func TestServiceUpdate_ProvenanceCannotBeForged(t *testing.T) {
	t.Parallel()

	repo := newFakeNoteRepo()
	svc := NewService(repo, noteMapper)
	ctx := context.Background()

	id, err := svc.Add(ctx, "author", noteDTO{Title: "original"})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	createdAt := repo.notes[id].CreatedAt

	forged := noteDTO{
		ID:        id,
		Title:     "edited",
		CreatedAt: createdAt.Add(-24 * time.Hour),
		CreatedBy: "impostor",
	}
	if err := svc.Update(ctx, "editor", forged); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	stored := repo.notes[id]
	if stored.Title != "edited" {
		t.Fatalf("expected updated title, got %q", stored.Title)
	}
	if stored.CreatedBy != "author" {
		t.Fatalf("expected original creator preserved, got %q", stored.CreatedBy)
	}
	if !stored.CreatedAt.Equal(createdAt) {
		t.Fatalf("expected original CreatedAt preserved, got %v", stored.CreatedAt)
	}
	if stored.UpdatedBy != "editor" {
		t.Fatalf("expected actor as updater, got %q", stored.UpdatedBy)
	}
}

func TestServiceUpdate_MissingRowFailsClosed(t *testing.T) {
	t.Parallel()

	repo := newFakeNoteRepo()
	svc := NewService(repo, noteMapper)

	err := svc.Update(context.Background(), "editor", noteDTO{ID: "missing", Title: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.notes) != 0 {
		t.Fatalf("expected no row created by failed update, got %d", len(repo.notes))
	}
}

func TestServiceChangeState_IdempotentTarget(t *testing.T) {
	t.Parallel()

	repo := newFakeNoteRepo()
	svc := NewService(repo, noteMapper)
	ctx := context.Background()

	id, err := svc.Add(ctx, "user-1", noteDTO{Title: "note"})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if err := svc.Deactivate(ctx, id); err != nil {
		t.Fatalf("first Deactivate returned error: %v", err)
	}
	if err := svc.Deactivate(ctx, id); err != nil {
		t.Fatalf("second Deactivate returned error: %v", err)
	}
	if repo.notes[id].State != StateInactive {
		t.Fatalf("expected StateInactive, got %d", repo.notes[id].State)
	}

	if err := svc.ChangeState(ctx, "missing", StateInactive); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestNoteMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	dto := noteDTO{Title: "title", Body: "body", UpdatedBy: "editor"}
	back := noteMapper.ToDTO(noteMapper.ToEntity(dto))

	if back.Title != dto.Title || back.Body != dto.Body || back.UpdatedBy != dto.UpdatedBy {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, dto)
	}
}
