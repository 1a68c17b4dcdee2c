package repository

import (
	"errors"
	"fmt"
)

// Category classifies a storage failure
type Category int

const (
	CategoryOther Category = iota
	CategoryUnique
	CategoryForeignKey
	CategoryNotFound
)

func (c Category) String() string {
	switch c {
	case CategoryUnique:
		return "unique violation"
	case CategoryForeignKey:
		return "foreign key violation"
	case CategoryNotFound:
		return "not found"
	default:
		return "storage failure"
	}
}

// StorageError wraps every failure returned by a repository
type StorageError struct {
	Op       string
	Category Category
	Err      error
}

// NewStorageError creates a storage error for the given operation
func NewStorageError(op string, category Category, err error) *StorageError {
	return &StorageError{Op: op, Category: category, Err: err}
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Category)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Category, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// CategoryOf returns the category of a storage error, CategoryOther otherwise
func CategoryOf(err error) Category {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Category
	}
	return CategoryOther
}

// IsUnique reports whether err is a uniqueness violation
func IsUnique(err error) bool {
	return err != nil && CategoryOf(err) == CategoryUnique
}

// IsNotFound reports whether err means the target row does not exist
func IsNotFound(err error) bool {
	return err != nil && CategoryOf(err) == CategoryNotFound
}
