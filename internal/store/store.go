package store

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrAlreadyExists = errors.New("key already exists")
)

// Op решение UpdateFunc о судьбе записи
type Op int

const (
	// Keep оставляет запись без изменений
	Keep Op = iota
	// Put заменяет запись возвращённым значением
	Put
	// Remove удаляет запись
	Remove
)

// UpdateFunc получает текущее значение ключа (found=false, если записи нет)
// и возвращает новое значение вместе с операцией над ним.
// Вызывается под эксклюзивной блокировкой, поэтому не должна блокироваться.
type UpdateFunc func(current model.Link, found bool) (model.Link, Op)

type entry struct {
	link model.Link
	seq  uint64
}

// Store потокобезопасное in-memory хранилище ссылок.
// Все изменения одного ключа сериализуются на уровне map.
type Store struct {
	store map[model.Code]entry
	seq   uint64
	mutex sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		store: make(map[model.Code]entry),
	}
}

// Exists проверяет наличие ссылки с указанным кодом
func (s *Store) Exists(key model.Code) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, ok := s.store[key]
	return ok
}

func (s *Store) Get(key model.Code) (model.Link, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	e, ok := s.store[key]
	if !ok {
		return model.Link{}, fmt.Errorf("key %s: %w", key, ErrNotFound)
	}

	return e.link, nil
}

// Insert сохраняет новую ссылку, если код ещё свободен
func (s *Store) Insert(link model.Link) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.store[link.ID]; exists {
		return fmt.Errorf("key %s: %w", link.ID, ErrAlreadyExists)
	}

	s.put(link)

	return nil
}

// Upsert целиком заменяет ссылку по её коду или создаёт новую
func (s *Store) Upsert(link model.Link) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.put(link)
}

// Delete удаляет ссылку; отсутствие ключа ошибкой не считается
func (s *Store) Delete(key model.Code) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.store, key)
}

// DeleteIf удаляет ссылку, только если pred подтверждает это под блокировкой.
// Возвращает удалённое значение и признак удаления.
func (s *Store) DeleteIf(key model.Code, pred func(model.Link) bool) (model.Link, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, ok := s.store[key]
	if !ok || !pred(e.link) {
		return model.Link{}, false
	}

	delete(s.store, key)

	return e.link, true
}

// Update атомарно выполняет чтение-изменение-запись одного ключа
func (s *Store) Update(key model.Code, fn UpdateFunc) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, found := s.store[key]

	next, op := fn(e.link, found)
	switch op {
	case Put:
		// код ссылки неизменяем
		next.ID = key
		s.put(next)
	case Remove:
		delete(s.store, key)
	}
}

// ListByOwner возвращает ссылки владельца от новых к старым.
// При равном времени создания первой идёт ссылка, вставленная позже.
func (s *Store) ListByOwner(owner uuid.UUID) []model.Link {
	s.mutex.RLock()
	entries := make([]entry, 0)
	for _, e := range s.store {
		if e.link.Owner == owner {
			entries = append(entries, e)
		}
	}
	s.mutex.RUnlock()

	slices.SortFunc(entries, func(a, b entry) int {
		if c := b.link.CreatedAt.Compare(a.link.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})

	links := make([]model.Link, len(entries))
	for i, e := range entries {
		links[i] = e.link
	}

	return links
}

// ListAll возвращает снимок всех ссылок на момент вызова
func (s *Store) ListAll() []model.Link {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	links := make([]model.Link, 0, len(s.store))
	for _, e := range s.store {
		links = append(links, e.link)
	}

	return links
}

// Len возвращает количество ссылок в хранилище
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.store)
}

// put требует удерживаемой блокировки на запись
func (s *Store) put(link model.Link) {
	if e, ok := s.store[link.ID]; ok {
		s.store[link.ID] = entry{link: link, seq: e.seq}
		return
	}

	s.seq++
	s.store[link.ID] = entry{link: link, seq: s.seq}
}
