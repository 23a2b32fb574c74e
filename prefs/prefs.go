package prefs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Memory is an in-process store. The zero value is ready to use.
type Memory struct {
	mu     sync.Mutex
	values map[string]int
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]int)}
}

func (m *Memory) GetInt(key string, def int) int {
	if m == nil {
		return def
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

func (m *Memory) SetInt(key string, value int) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]int)
	}
	m.values[key] = value
}

func (m *Memory) HasKey(key string) bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok
}

func (m *Memory) DeleteKey(key string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

func (m *Memory) snapshot() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// File is a Memory mirrored to a YAML document on disk. Every SetInt
// rewrites the file; write failures are logged and the in-memory value kept.
type File struct {
	Memory
	path string
}

type fileDoc struct {
	Values map[string]int `yaml:"values"`
}

// OpenFile loads path if it exists. A missing file starts empty.
func OpenFile(path string) (*File, error) {
	f := &File{path: path}
	f.values = make(map[string]int)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("prefs: read %s: %w", path, err)
	}

	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("prefs: unmarshal %s: %w", path, err)
	}
	for k, v := range doc.Values {
		f.values[k] = v
	}
	return f, nil
}

func (f *File) SetInt(key string, value int) {
	if f == nil {
		return
	}
	f.Memory.SetInt(key, value)
	if err := f.Save(); err != nil {
		log.Printf("prefs: %v", err)
	}
}

func (f *File) DeleteKey(key string) {
	if f == nil {
		return
	}
	f.Memory.DeleteKey(key)
	if err := f.Save(); err != nil {
		log.Printf("prefs: %v", err)
	}
}

func (f *File) Save() error {
	if f == nil || f.path == "" {
		return nil
	}
	data, err := yaml.Marshal(fileDoc{Values: f.snapshot()})
	if err != nil {
		return fmt.Errorf("prefs: marshal %s: %w", f.path, err)
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("prefs: mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("prefs: write %s: %w", f.path, err)
	}
	return nil
}

func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}
