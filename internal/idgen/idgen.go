// Package idgen assigns identifiers to newly created entities.
package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator выдает уникальные идентификаторы для новых сущностей
type Generator interface {
	NewID() string
}

// UUID генерирует случайные UUID v4. Используется по умолчанию.
type UUID struct{}

// NewUUID creates the default generator.
func NewUUID() UUID {
	return UUID{}
}

// NewID returns a fresh random UUID string.
func (UUID) NewID() string {
	return uuid.New().String()
}

// Sequence представляет монотонный счетчик с пространством имен.
// Идентификаторы имеют вид "<namespace>-<n>" и не повторяются в пределах
// одного экземпляра. Удобен для детерминированных тестов.
type Sequence struct {
	namespace string     // префикс идентификаторов
	counter   int64      // монотонно возрастающий счетчик
	mu        sync.Mutex // мьютекс для потокобезопасности
}

// NewSequence creates a sequence with the given namespace.
// An empty namespace gets a random one so two sequences never collide.
func NewSequence(namespace string) *Sequence {
	if namespace == "" {
		namespace = uuid.New().String()[:8]
	}
	return &Sequence{namespace: namespace}
}

// NewID увеличивает счетчик и возвращает новый идентификатор
func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	return fmt.Sprintf("%s-%d", s.namespace, s.counter)
}

// Current returns the last issued counter value without advancing it.
func (s *Sequence) Current() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counter
}

// Namespace returns the prefix of issued ids.
func (s *Sequence) Namespace() string {
	return s.namespace
}
