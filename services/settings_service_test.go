package services

import (
	"errors"
	"testing"

	"github.com/kiprono589/savanna_tours/models"
	"gorm.io/datatypes"
)

type memorySettingsStore struct {
	settings map[string]*models.Setting
	failing  bool
}

func newMemoryStore() *memorySettingsStore {
	return &memorySettingsStore{settings: make(map[string]*models.Setting)}
}

func (s *memorySettingsStore) Get(key string) (*models.Setting, error) {
	if s.failing {
		return nil, errors.New("store down")
	}
	setting, ok := s.settings[key]
	if !ok {
		return nil, ErrSettingNotFound
	}
	return setting, nil
}

func (s *memorySettingsStore) Put(setting *models.Setting) error {
	if s.failing {
		return errors.New("store down")
	}
	s.settings[setting.Key] = setting
	return nil
}

func TestSettingsGetFallsBackWhenMissing(t *testing.T) {
	svc := NewSettingsService(newMemoryStore())
	fallback := datatypes.JSON([]byte(`"USD"`))

	got := svc.Get("default_currency", fallback)
	if string(got) != `"USD"` {
		t.Fatalf("expected fallback value, got %s", got)
	}
}

func TestSettingsGetFallsBackOnStoreFailure(t *testing.T) {
	store := newMemoryStore()
	store.failing = true
	svc := NewSettingsService(store)

	got := svc.Get("site_name", datatypes.JSON([]byte(`"Savanna Tours"`)))
	if string(got) != `"Savanna Tours"` {
		t.Fatalf("expected fallback value, got %s", got)
	}
}

func TestSettingsSetLastWriteWins(t *testing.T) {
	svc := NewSettingsService(newMemoryStore())

	if _, err := svc.Set("site_name", datatypes.JSON([]byte(`"First"`)), "general", ""); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if _, err := svc.Set("site_name", datatypes.JSON([]byte(`"Second"`)), "general", ""); err != nil {
		t.Fatalf("second set: %v", err)
	}

	got := svc.Get("site_name", nil)
	if string(got) != `"Second"` {
		t.Fatalf("expected last write to win, got %s", got)
	}
}

func TestSettingsSetSurfacesStoreFailure(t *testing.T) {
	store := newMemoryStore()
	store.failing = true
	svc := NewSettingsService(store)

	_, err := svc.Set("site_name", datatypes.JSON([]byte(`"x"`)), "general", "")
	if err == nil {
		t.Fatal("expected an error on a failed write")
	}
	var storeErr *StoreUnavailableError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreUnavailableError, got %T", err)
	}
}
