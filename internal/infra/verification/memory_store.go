// Package verification provides storage for pending one-time codes.
//
// The in-memory store below is suitable for a single-instance deployment;
// running multiple replicas requires an external store behind the same
// interface.
package verification

import (
	"context"
	"sync"

	"clinica/internal/domain/entity"
	"clinica/internal/domain/service"
)

type codeKey struct {
	subject string
	purpose entity.CodePurpose
}

// memoryStore is a concrete implementation of the CodeStore interface backed
// by a mutex-guarded map.
type memoryStore struct {
	mu    sync.RWMutex
	codes map[codeKey]entity.VerificationCode
}

// NewMemoryStore is the constructor for memoryStore.
func NewMemoryStore() service.CodeStore {
	return &memoryStore{
		codes: make(map[codeKey]entity.VerificationCode),
	}
}

// Put stores a code, replacing any existing one for the same subject and purpose.
func (s *memoryStore) Put(_ context.Context, code *entity.VerificationCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[codeKey{subject: code.Subject, purpose: code.Purpose}] = *code

	return nil
}

// Get retrieves the pending code for a subject and purpose.
func (s *memoryStore) Get(_ context.Context, subject string, purpose entity.CodePurpose) (*entity.VerificationCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	code, ok := s.codes[codeKey{subject: subject, purpose: purpose}]
	if !ok {
		return nil, service.ErrCodeNotFound
	}

	return &code, nil
}

// Delete removes the pending code for a subject and purpose, if any.
func (s *memoryStore) Delete(_ context.Context, subject string, purpose entity.CodePurpose) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.codes, codeKey{subject: subject, purpose: purpose})

	return nil
}
