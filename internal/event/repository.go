package event

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by any Store when the requested event does not exist.
var ErrNotFound = errors.New("event not found")

// Store abstracts event persistence so the API can run against Postgres or
// the in-memory array depending on configuration.
type Store interface {
	List() ([]Event, error)
	GetByID(id uint) (*Event, error)
	ListByCreator(email string) ([]Event, error)
	Create(e *Event) error
	Replace(e *Event) error
	Delete(id uint) (*Event, error)
	Ping() error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns the gorm-backed Store.
func NewRepository(db *gorm.DB) Store {
	return &repository{db: db}
}

// ===========================
// 📄 List all events, newest first
func (r *repository) List() ([]Event, error) {
	var events []Event
	err := r.db.
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}

// ===========================
// 🔍 Get Event By ID
func (r *repository) GetByID(id uint) (*Event, error) {
	var e Event
	err := r.db.First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// 👤 List events created by a given email
func (r *repository) ListByCreator(email string) ([]Event, error) {
	var events []Event
	err := r.db.
		Where("created_by = ?", email).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}

// ===========================
// 🎯 Create Event
func (r *repository) Create(e *Event) error {
	return r.db.Create(e).Error
}

// ===========================
// 🛠 Replace Event (full update, identity preserved)
func (r *repository) Replace(e *Event) error {
	return r.db.Save(e).Error
}

// ===========================
// ❌ Delete Event, returning the removed record
func (r *repository) Delete(id uint) (*Event, error) {
	e, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&Event{}, id).Error; err != nil {
		return nil, err
	}
	return e, nil
}

func (r *repository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
