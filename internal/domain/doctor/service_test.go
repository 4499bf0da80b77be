package doctor

import (
	"context"
	"errors"
	"testing"
)

type mockRepo struct {
	doctors []*Doctor
	err     error
}

func (m *mockRepo) FindIDByName(_ context.Context, name string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	for _, d := range m.doctors {
		if d.Name == name {
			return d.ID, nil
		}
	}
	return 0, ErrNotFound
}

func (m *mockRepo) ListSpecialties(_ context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	seen := map[string]bool{}
	specialties := []string{}
	for _, d := range m.doctors {
		if !seen[d.Specialty] {
			seen[d.Specialty] = true
			specialties = append(specialties, d.Specialty)
		}
	}
	return specialties, nil
}

func (m *mockRepo) ListBySpecialty(_ context.Context, specialty string) ([]*Doctor, error) {
	if m.err != nil {
		return nil, m.err
	}
	matched := []*Doctor{}
	for _, d := range m.doctors {
		if d.Specialty == specialty {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := &mockRepo{doctors: []*Doctor{
		{ID: 1, Name: "Dr. Smith", Specialty: "Cardiology"},
		{ID: 2, Name: "Dr. Patel", Specialty: "Dermatology"},
		{ID: 3, Name: "Dr. Jones", Specialty: "Cardiology"},
	}}
	return NewService(repo), repo
}

func TestFindIDByName(t *testing.T) {
	svc, _ := newTestService()

	id, err := svc.FindIDByName(context.Background(), "Dr. Smith")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("expected id 1, got %d", id)
	}
}

func TestFindIDByName_IsExact(t *testing.T) {
	svc, _ := newTestService()

	for _, name := range []string{"dr. smith", "Smith", "Dr. Smith "} {
		if _, err := svc.FindIDByName(context.Background(), name); !errors.Is(err, ErrNotFound) {
			t.Errorf("lookup %q: expected ErrNotFound, got %v", name, err)
		}
	}
}

func TestListSpecialties_Distinct(t *testing.T) {
	svc, _ := newTestService()

	specialties, err := svc.ListSpecialties(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(specialties) != 2 {
		t.Fatalf("expected 2 distinct specialties, got %v", specialties)
	}
}

func TestListBySpecialty_CaseSensitive(t *testing.T) {
	svc, _ := newTestService()

	doctors, err := svc.ListBySpecialty(context.Background(), "Cardiology")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doctors) != 2 {
		t.Fatalf("expected 2 cardiologists, got %d", len(doctors))
	}

	doctors, err = svc.ListBySpecialty(context.Background(), "cardiology")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doctors) != 0 {
		t.Errorf("specialty match must be case sensitive, got %d rows", len(doctors))
	}
}
