package store

import "sync"

// MockBackend wraps a MemoryBackend and lets tests inject failures.
type MockBackend struct {
	*MemoryBackend

	mu        sync.Mutex
	ReadErr   error
	WriteErr  error
	Writes    int
	CloseHits int
}

// NewMockBackend returns an empty MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{MemoryBackend: NewMemoryBackend()}
}

// FailWrites makes every subsequent Write return err (nil restores).
func (m *MockBackend) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteErr = err
}

// Read returns ReadErr when set.
func (m *MockBackend) Read(key string) ([]byte, error) {
	m.mu.Lock()
	err := m.ReadErr
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return m.MemoryBackend.Read(key)
}

// Write returns WriteErr when set.
func (m *MockBackend) Write(key string, data []byte) error {
	m.mu.Lock()
	err := m.WriteErr
	if err == nil {
		m.Writes++
	}
	m.mu.Unlock()
	if err != nil {
		return err
	}
	return m.MemoryBackend.Write(key, data)
}

// Close counts calls.
func (m *MockBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseHits++
	return nil
}
