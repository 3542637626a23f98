package storage

import (
	"strings"
	"sync"
)

// Fixed keys under which the game persists its blobs.
const (
	KeyState   = "t2048_state"
	KeyLeaders = "t2048_leaders"
)

// Gateway is an opaque string key-value store.
// Get reports ok=false when the key has never been written.
type Gateway interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Memory is an in-process Gateway. The zero value is ready to use.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory creates an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

// Prefixed namespaces every key of an underlying gateway.
// The SSH server uses it to give each user their own session blob.
type Prefixed struct {
	inner  Gateway
	prefix string
}

// WithPrefix wraps g so that every key is stored as prefix+key.
func WithPrefix(g Gateway, prefix string) *Prefixed {
	return &Prefixed{inner: g, prefix: prefix}
}

// Get reads prefix+key from the wrapped gateway.
func (p *Prefixed) Get(key string) (string, bool, error) {
	return p.inner.Get(p.prefix + key)
}

// Set writes prefix+key to the wrapped gateway.
func (p *Prefixed) Set(key, value string) error {
	return p.inner.Set(p.prefix+key, value)
}

// UserPrefix builds a key namespace for a user name.
// Separators in the name are replaced so one user cannot address another's keys.
func UserPrefix(user string) string {
	user = strings.TrimSpace(user)
	if user == "" {
		user = "anonymous"
	}
	user = strings.ReplaceAll(user, ":", "_")
	return "user:" + user + ":"
}

// SplitUserKey reverses UserPrefix: it returns the user and the unprefixed
// key of a stored key. ok is false for keys outside any user namespace.
func SplitUserKey(key string) (user, base string, ok bool) {
	rest, found := strings.CutPrefix(key, "user:")
	if !found {
		return "", key, false
	}
	user, base, ok = strings.Cut(rest, ":")
	if !ok || user == "" {
		return "", key, false
	}
	return user, base, true
}

var (
	_ Gateway = (*Memory)(nil)
	_ Gateway = (*Prefixed)(nil)
	_ Gateway = (*Store)(nil)
)
