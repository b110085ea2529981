package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAssignsID(t *testing.T) {
	store := NewContactStore(InitializeTestDb())

	contact := Contact{Name: "Ada", Email: "ada@x.com", Phone: "1234567890"}
	err := store.Create(&contact)

	assert.Nil(t, err)
	assert.NotZero(t, contact.ID, "The store should assign an id on insert")
}

func TestCreateDuplicateEmail(t *testing.T) {
	store := NewContactStore(InitializeTestDb())

	err := store.Create(&Contact{Name: "Ada", Email: "dup@x.com", Phone: "1234567890"})
	assert.Nil(t, err)

	err = store.Create(&Contact{Name: "Grace", Email: "dup@x.com", Phone: "0987654321"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The original record is untouched & remains the only one with that email
	total, err := store.Count()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), total)

	contacts, err := store.ListPage(10, 0)
	assert.Nil(t, err)
	assert.Equal(t, "Ada", contacts[0].Name)
}

func TestListPageOrdering(t *testing.T) {
	store := NewContactStore(InitializeTestDb())

	for i, name := range []string{"Charlie", "Ada", "Bob"} {
		err := store.Create(&Contact{
			Name:  name,
			Email: fmt.Sprintf("contact%v@x.com", i),
			Phone: "1234567890",
		})
		assert.Nil(t, err)
	}

	contacts, err := store.ListPage(10, 0)
	assert.Nil(t, err)
	assert.Len(t, contacts, 3)
	assert.Equal(t, "Ada", contacts[0].Name)
	assert.Equal(t, "Bob", contacts[1].Name)
	assert.Equal(t, "Charlie", contacts[2].Name)
}

func TestListPageOffsetPastEnd(t *testing.T) {
	store := NewContactStore(InitializeTestDb())

	err := store.Create(&Contact{Name: "Ada", Email: "ada@x.com", Phone: "1234567890"})
	assert.Nil(t, err)

	contacts, err := store.ListPage(10, 50)
	assert.Nil(t, err)
	assert.Empty(t, contacts, "An offset past the table size should yield an empty page, not an error")
}

func TestDeleteByID(t *testing.T) {
	store := NewContactStore(InitializeTestDb())

	contact := Contact{Name: "Ada", Email: "ada@x.com", Phone: "1234567890"}
	err := store.Create(&contact)
	assert.Nil(t, err)

	rowsAffected, err := store.DeleteByID(fmt.Sprint(contact.ID))
	assert.Nil(t, err)
	assert.Equal(t, int64(1), rowsAffected)

	// Deleting the same id again is not an error, it just affects nothing
	rowsAffected, err = store.DeleteByID(fmt.Sprint(contact.ID))
	assert.Nil(t, err)
	assert.Equal(t, int64(0), rowsAffected)
}

func TestCount(t *testing.T) {
	store := NewContactStore(InitializeTestDb())

	total, err := store.Count()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), total)

	for i := 0; i < 3; i++ {
		err := store.Create(&Contact{
			Name:  fmt.Sprintf("C%v", i),
			Email: fmt.Sprintf("c%v@x.com", i),
			Phone: "1234567890",
		})
		assert.Nil(t, err)
	}

	total, err = store.Count()
	assert.Nil(t, err)
	assert.Equal(t, int64(3), total)
}
