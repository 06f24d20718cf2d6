package templet

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStorage is an in-memory TemplateStorage, useful for tests and
// for registering inline include targets.
type MemoryStorage struct {
	mu        sync.RWMutex
	templates map[string]*StoredTemplate
	closed    bool
}

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		templates: make(map[string]*StoredTemplate),
	}
}

// Get returns the template stored under name.
func (s *MemoryStorage) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, NewStorageClosedError()
	}
	tmpl, ok := s.templates[name]
	if !ok {
		return nil, NewStoredTemplateNotFoundError(name)
	}
	return copyStoredTemplate(tmpl), nil
}

// Put stores a template, overwriting any existing record of the same name.
func (s *MemoryStorage) Put(ctx context.Context, tmpl *StoredTemplate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateStoredTemplate(tmpl); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return NewStorageClosedError()
	}
	record := copyStoredTemplate(tmpl)
	now := time.Now().UTC()
	if existing, ok := s.templates[tmpl.Name]; ok {
		record.CreatedAt = existing.CreatedAt
	} else if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	s.templates[tmpl.Name] = record
	return nil
}

// Delete removes the template stored under name.
func (s *MemoryStorage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return NewStorageClosedError()
	}
	if _, ok := s.templates[name]; !ok {
		return NewStoredTemplateNotFoundError(name)
	}
	delete(s.templates, name)
	return nil
}

// List returns the stored template names, sorted.
func (s *MemoryStorage) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, NewStorageClosedError()
	}
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close marks the storage closed; subsequent operations fail.
func (s *MemoryStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.templates = nil
	return nil
}
