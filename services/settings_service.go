package services

import (
	"errors"

	"github.com/kiprono589/savanna_tours/database"
	"github.com/kiprono589/savanna_tours/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsStore abstracts the flat key -> value table so tests can substitute
// an in-memory store.
type SettingsStore interface {
	Get(key string) (*models.Setting, error)
	Put(setting *models.Setting) error
}

var ErrSettingNotFound = errors.New("setting not found")

type gormSettingsStore struct {
	db *gorm.DB
}

func (s *gormSettingsStore) Get(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return &setting, nil
}

func (s *gormSettingsStore) Put(setting *models.Setting) error {
	// Last write wins, keyed on the unique setting key.
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "category", "description", "updated_at"}),
	}).Create(setting).Error
}

type SettingsService struct {
	store SettingsStore
}

func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Settings returns the service bound to the live database.
func Settings() *SettingsService {
	return NewSettingsService(&gormSettingsStore{db: database.DB})
}

// Get reads a setting value, degrading to the fallback when the key is absent
// or the store fails.
func (s *SettingsService) Get(key string, fallback datatypes.JSON) datatypes.JSON {
	setting, err := s.store.Get(key)
	if err != nil {
		return fallback
	}
	return setting.Value
}

// Set upserts a setting. Write failures surface as StoreUnavailableError.
func (s *SettingsService) Set(key string, value datatypes.JSON, category, description string) (*models.Setting, error) {
	setting := &models.Setting{
		Key:         key,
		Value:       value,
		Category:    category,
		Description: description,
	}
	if err := s.store.Put(setting); err != nil {
		return nil, &StoreUnavailableError{Op: "save setting", Err: err}
	}
	return setting, nil
}

