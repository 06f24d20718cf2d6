package templet

import (
	"context"
	"fmt"
	"time"
)

// StoredTemplate is a template record held in a storage backend.
// Backends are an alternative template source: RenderStored renders one
// by name, and includes fall back to storage when no file resolves.
type StoredTemplate struct {
	// Name is the lookup key.
	Name string `json:"name" yaml:"name"`

	// Source is the raw template source.
	Source string `json:"source" yaml:"source"`

	// Metadata holds arbitrary user-defined key-value pairs.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// CreatedAt is when the record was first stored.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is when the record was last overwritten.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// copyStoredTemplate returns a deep copy so callers cannot mutate
// backend state through a returned record.
func copyStoredTemplate(t *StoredTemplate) *StoredTemplate {
	if t == nil {
		return nil
	}
	c := *t
	if t.Metadata != nil {
		c.Metadata = make(map[string]string, len(t.Metadata))
		for k, v := range t.Metadata {
			c.Metadata[k] = v
		}
	}
	return &c
}

// TemplateStorage is a named template source backend.
type TemplateStorage interface {
	// Get returns the template stored under name.
	Get(ctx context.Context, name string) (*StoredTemplate, error)

	// Put stores a template, overwriting any existing record of the
	// same name.
	Put(ctx context.Context, tmpl *StoredTemplate) error

	// Delete removes the template stored under name.
	Delete(ctx context.Context, name string) error

	// List returns the stored template names.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

// StorageError wraps a storage backend failure
type StorageError struct {
	Message string
	Cause   error
}

// Error returns the error message
func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// Storage error message constants
const (
	ErrMsgStorageClosed       = "storage is closed"
	ErrMsgStorageEmptyName    = "template name cannot be empty"
	ErrMsgStorageNilTemplate  = "template cannot be nil"
	ErrMsgStorageEmptySource  = "template source cannot be empty"
	ErrMsgStorageReadFailed   = "storage read failed"
	ErrMsgStorageWriteFailed  = "storage write failed"
	ErrMsgStorageDeleteFailed = "storage delete failed"
)

// NewStorageClosedError reports an operation on a closed backend
func NewStorageClosedError() error {
	return &StorageError{Message: ErrMsgStorageClosed}
}

// validateStoredTemplate checks the invariants shared by every backend
func validateStoredTemplate(tmpl *StoredTemplate) error {
	if tmpl == nil {
		return &StorageError{Message: ErrMsgStorageNilTemplate}
	}
	if tmpl.Name == "" {
		return &StorageError{Message: ErrMsgStorageEmptyName}
	}
	if tmpl.Source == "" {
		return &StorageError{Message: ErrMsgStorageEmptySource}
	}
	return nil
}
