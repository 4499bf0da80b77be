package patient

import (
	"context"
	"errors"
	"testing"
)

type mockRepo struct {
	patients  []*Patient
	nextID    int
	createErr error
}

func (m *mockRepo) Find(_ context.Context, name, phone string) (*Patient, error) {
	for _, p := range m.patients {
		if p.Name == name && p.Phone == phone {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	stored := *p
	stored.ID = m.nextID
	m.patients = append(m.patients, &stored)
	return nil
}

func TestFind_Miss(t *testing.T) {
	svc := NewService(&mockRepo{})

	_, err := svc.Find(context.Background(), "Alice", "555-0100")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFind_RequiresBothNameAndPhone(t *testing.T) {
	repo := &mockRepo{patients: []*Patient{{ID: 1, Name: "Alice", Phone: "555-0100"}}}
	svc := NewService(repo)

	if _, err := svc.Find(context.Background(), "Alice", "555-0199"); !errors.Is(err, ErrNotFound) {
		t.Errorf("same name, different phone: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Find(context.Background(), "Alicia", "555-0100"); !errors.Is(err, ErrNotFound) {
		t.Errorf("same phone, different name: expected ErrNotFound, got %v", err)
	}
}

func TestRegisterThenFind(t *testing.T) {
	svc := NewService(&mockRepo{})

	in := &Patient{
		Name:    "Alice",
		Phone:   "555-0100",
		Email:   "alice@example.com",
		Age:     34,
		Gender:  "female",
		Address: "12 Main St",
	}
	if err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	p, err := svc.Find(context.Background(), "Alice", "555-0100")
	if err != nil {
		t.Fatalf("find after register failed: %v", err)
	}
	if p.ID == 0 {
		t.Error("expected a store-assigned id")
	}
	if p.Email != in.Email || p.Age != in.Age || p.Gender != in.Gender || p.Address != in.Address {
		t.Errorf("attributes not carried through: %+v", p)
	}
}

func TestRegister_StoreFailure(t *testing.T) {
	repo := &mockRepo{createErr: errors.New("connection refused")}
	svc := NewService(repo)

	if err := svc.Register(context.Background(), &Patient{Name: "Alice", Phone: "555-0100"}); err == nil {
		t.Fatal("expected store failure to surface")
	}
	if len(repo.patients) != 0 {
		t.Error("expected no row on failure")
	}
}
