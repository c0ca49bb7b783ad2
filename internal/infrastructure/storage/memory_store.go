package storage

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

var _ procurementapp.DocumentStore = (*MemoryDocumentStore)(nil)

// MemoryDocumentStore keeps documents in process memory. Used in development
// and tests when no bucket is configured; contents are lost on restart.
type MemoryDocumentStore struct {
	// BaseURL prefixes generated download links
	BaseURL string
	Expiry  time.Duration

	mu      sync.RWMutex
	objects map[string]memoryObject
}

type memoryObject struct {
	data        []byte
	contentType string
}

// NewMemoryDocumentStore creates an empty store
func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{
		BaseURL: "http://localhost:8080/files",
		Expiry:  defaultPresignExpiry,
		objects: make(map[string]memoryObject),
	}
}

func (s *MemoryDocumentStore) Upload(_ context.Context, storageKey string, data []byte, contentType string) error {
	if storageKey == "" {
		return ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[storageKey] = memoryObject{data: append([]byte(nil), data...), contentType: contentType}
	return nil
}

func (s *MemoryDocumentStore) GenerateDownloadURL(_ context.Context, storageKey, fileName string) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, ErrEmptyKey
	}
	expiresAt := shared.Now().Add(s.Expiry)
	q := url.Values{}
	q.Set("expires", expiresAt.UTC().Format(time.RFC3339))
	if fileName != "" {
		q.Set("filename", fileName)
	}
	return strings.TrimRight(s.BaseURL, "/") + "/" + storageKey + "?" + q.Encode(), expiresAt, nil
}

func (s *MemoryDocumentStore) ObjectExists(_ context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, ErrEmptyKey
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[storageKey]
	return ok, nil
}

// Get returns a stored object and its content type
func (s *MemoryDocumentStore) Get(storageKey string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[storageKey]
	if !ok {
		return nil, "", false
	}
	return append([]byte(nil), obj.data...), obj.contentType, true
}
