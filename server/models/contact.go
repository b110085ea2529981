package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrDuplicateEmail is returned by Create when a contact with the
// same email already exists.
var ErrDuplicateEmail = errors.New("a contact with this email already exists")

type Contact struct {
	ID    uint   `json:"id" gorm:"primarykey"`
	Name  string `json:"name" validate:"required" gorm:"not null"`
	Email string `json:"email" validate:"required" gorm:"not null;unique"`
	Phone string `json:"phone" validate:"required" gorm:"not null"`
}

// ContactStore wraps the shared db handle with the contact queries the
// server needs. Handlers receive a store instead of reaching for a
// package-level db, so tests can point them at their own db.
type ContactStore struct {
	db *gorm.DB
}

func NewContactStore(db *gorm.DB) *ContactStore {
	return &ContactStore{db: db}
}

// Create inserts the contact & fills in its assigned ID. Uniqueness of
// email is enforced by the sqlite constraint, so concurrent creates with
// the same email cannot both succeed.
func (store *ContactStore) Create(contact *Contact) error {
	err := store.db.Create(contact).Error
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: contacts.email") {
		return ErrDuplicateEmail
	}

	return err
}

func (store *ContactStore) Count() (int64, error) {
	var total int64
	err := store.db.Model(&Contact{}).Count(&total).Error

	return total, err
}

// ListPage returns up to limit contacts starting at offset, ordered by
// name with id as the tie-break. An offset past the end of the table
// yields an empty slice.
func (store *ContactStore) ListPage(limit, offset int) ([]Contact, error) {
	contacts := []Contact{}
	err := store.db.Order("name ASC, id ASC").Limit(limit).Offset(offset).Find(&contacts).Error

	return contacts, err
}

// DeleteByID removes the contact with the given id & reports how many
// rows that affected. A missing id is not an error; it affects zero rows.
func (store *ContactStore) DeleteByID(id string) (int64, error) {
	result := store.db.Delete(&Contact{}, "id = ?", id)

	return result.RowsAffected, result.Error
}
