package templet

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// FileSystem storage constants
const (
	fsIndexFileName  = "index.yaml"
	fsFilePermission = 0o644
	fsDirPermission  = 0o755
)

// fsIndexEntry is one record in the on-disk YAML index
type fsIndexEntry struct {
	File      string            `yaml:"file"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
	CreatedAt time.Time         `yaml:"created_at"`
	UpdatedAt time.Time         `yaml:"updated_at"`
}

// fsIndex is the on-disk YAML index mapping template names to files
type fsIndex struct {
	Templates map[string]fsIndexEntry `yaml:"templates"`
}

// FileSystemStorage is a directory-backed TemplateStorage. Each template
// lives in its own file under the base directory; names, metadata, and
// timestamps live in a YAML index file. Writes go through a temp file
// and rename so a crash never leaves a half-written index.
type FileSystemStorage struct {
	baseDir string
	mu      sync.Mutex
	index   fsIndex
	closed  bool
}

// NewFileSystemStorage opens (creating if needed) a directory-backed
// storage rooted at baseDir.
func NewFileSystemStorage(baseDir string) (*FileSystemStorage, error) {
	if baseDir == "" {
		return nil, &StorageError{Message: ErrMsgStorageEmptyName}
	}
	if err := os.MkdirAll(baseDir, fsDirPermission); err != nil {
		return nil, &StorageError{Message: ErrMsgStorageWriteFailed, Cause: err}
	}
	s := &FileSystemStorage{
		baseDir: baseDir,
		index:   fsIndex{Templates: make(map[string]fsIndexEntry)},
	}
	if err := s.loadIndex(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadIndex reads the YAML index if one exists. Caller holds no lock yet.
func (s *FileSystemStorage) loadIndex() error {
	data, err := os.ReadFile(filepath.Join(s.baseDir, fsIndexFileName))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &StorageError{Message: ErrMsgStorageReadFailed, Cause: err}
	}
	var index fsIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		return &StorageError{Message: ErrMsgStorageReadFailed, Cause: err}
	}
	if index.Templates == nil {
		index.Templates = make(map[string]fsIndexEntry)
	}
	s.index = index
	return nil
}

// persistIndex writes the YAML index atomically. Caller holds the lock.
func (s *FileSystemStorage) persistIndex() error {
	data, err := yaml.Marshal(&s.index)
	if err != nil {
		return &StorageError{Message: ErrMsgStorageWriteFailed, Cause: err}
	}
	target := filepath.Join(s.baseDir, fsIndexFileName)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, fsFilePermission); err != nil {
		return &StorageError{Message: ErrMsgStorageWriteFailed, Cause: err}
	}
	if err := os.Rename(tmp, target); err != nil {
		return &StorageError{Message: ErrMsgStorageWriteFailed, Cause: err}
	}
	return nil
}

// templateFileName derives a safe file name for a template name
func templateFileName(name string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_").Replace(name)
	return safe + DefaultTemplateExt
}

// Get returns the template stored under name.
func (s *FileSystemStorage) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, NewStorageClosedError()
	}
	entry, ok := s.index.Templates[name]
	if !ok {
		return nil, NewStoredTemplateNotFoundError(name)
	}
	source, err := os.ReadFile(filepath.Join(s.baseDir, entry.File))
	if err != nil {
		return nil, &StorageError{Message: ErrMsgStorageReadFailed, Cause: err}
	}
	metadata := make(map[string]string, len(entry.Metadata))
	for k, v := range entry.Metadata {
		metadata[k] = v
	}
	return &StoredTemplate{
		Name:      name,
		Source:    string(source),
		Metadata:  metadata,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}, nil
}

// Put stores a template, overwriting any existing record of the same name.
func (s *FileSystemStorage) Put(ctx context.Context, tmpl *StoredTemplate) error {
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

	file := templateFileName(tmpl.Name)
	if err := os.WriteFile(filepath.Join(s.baseDir, file), []byte(tmpl.Source), fsFilePermission); err != nil {
		return &StorageError{Message: ErrMsgStorageWriteFailed, Cause: err}
	}

	now := time.Now().UTC()
	entry := fsIndexEntry{
		File:      file,
		Metadata:  tmpl.Metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, ok := s.index.Templates[tmpl.Name]; ok {
		entry.CreatedAt = existing.CreatedAt
	}
	s.index.Templates[tmpl.Name] = entry
	return s.persistIndex()
}

// Delete removes the template stored under name.
func (s *FileSystemStorage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return NewStorageClosedError()
	}
	entry, ok := s.index.Templates[name]
	if !ok {
		return NewStoredTemplateNotFoundError(name)
	}
	if err := os.Remove(filepath.Join(s.baseDir, entry.File)); err != nil && !os.IsNotExist(err) {
		return &StorageError{Message: ErrMsgStorageDeleteFailed, Cause: err}
	}
	delete(s.index.Templates, name)
	return s.persistIndex()
}

// List returns the stored template names, sorted.
func (s *FileSystemStorage) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, NewStorageClosedError()
	}
	names := make([]string, 0, len(s.index.Templates))
	for name := range s.index.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close marks the storage closed; subsequent operations fail.
func (s *FileSystemStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
