package identity

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrMalformedID файл существует, но не содержит UUID
var ErrMalformedID = errors.New("malformed user identifier")

// Provider выдает стабильный идентификатор владельца ссылок
type Provider interface {
	OwnerID() (uuid.UUID, error)
}

// FileProvider хранит идентификатор пользователя в текстовом файле.
// Если файла нет, генерирует новый UUID и записывает его.
type FileProvider struct {
	filePath string

	mu     sync.Mutex
	cached uuid.UUID
	loaded bool
}

// NewFileProvider создаёт новый FileProvider
func NewFileProvider(filePath string) *FileProvider {
	return &FileProvider{
		filePath: filePath,
	}
}

// OwnerID возвращает идентификатор из файла, создавая его при первом обращении
func (p *FileProvider) OwnerID() (uuid.UUID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded {
		return p.cached, nil
	}

	id, err := p.load()
	if errors.Is(err, os.ErrNotExist) {
		id, err = p.create()
	}
	if err != nil {
		return uuid.Nil, err
	}

	p.cached = id
	p.loaded = true

	return id, nil
}

func (p *FileProvider) load() (uuid.UUID, error) {
	data, err := os.ReadFile(p.filePath)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to read file: %w", err)
	}

	id, err := uuid.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w in %s: %w", ErrMalformedID, p.filePath, err)
	}

	return id, nil
}

func (p *FileProvider) create() (uuid.UUID, error) {
	id := uuid.New()

	if dir := filepath.Dir(p.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return uuid.Nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(p.filePath, []byte(id.String()), 0o600); err != nil {
		return uuid.Nil, fmt.Errorf("failed to write file: %w", err)
	}

	return id, nil
}
