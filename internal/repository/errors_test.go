package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageError_Categories(t *testing.T) {
	cause := errors.New("duplicate key")

	tests := []struct {
		name       string
		err        error
		category   Category
		isUnique   bool
		isNotFound bool
	}{
		{
			name:     "unique",
			err:      NewStorageError("create place", CategoryUnique, cause),
			category: CategoryUnique,
			isUnique: true,
		},
		{
			name:       "not found",
			err:        NewStorageError("delete place", CategoryNotFound, nil),
			category:   CategoryNotFound,
			isNotFound: true,
		},
		{
			name:     "wrapped unique",
			err:      fmt.Errorf("save: %w", NewStorageError("create place", CategoryUnique, cause)),
			category: CategoryUnique,
			isUnique: true,
		},
		{
			name:     "plain error",
			err:      cause,
			category: CategoryOther,
		},
		{
			name:     "nil",
			err:      nil,
			category: CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, CategoryOf(tt.err))
			assert.Equal(t, tt.isUnique, IsUnique(tt.err))
			assert.Equal(t, tt.isNotFound, IsNotFound(tt.err))
		})
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStorageError("get user", CategoryOther, cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "get user: storage failure: connection refused", err.Error())
	assert.Equal(t, "delete user: not found", NewStorageError("delete user", CategoryNotFound, nil).Error())
}
