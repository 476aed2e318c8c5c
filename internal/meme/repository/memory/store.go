package memory

import (
	"fmt"
	"sync"

	"meme-studio/internal/meme"
	"meme-studio/internal/meme/repository"
)

type implStore struct {
	mu    sync.RWMutex
	memes []meme.Meme
}

var _ repository.Store = (*implStore)(nil)

// New creates an empty in-memory Store. Contents live as long as the process.
func New() *implStore {
	return &implStore{}
}

func (s *implStore) Append(m meme.Meme) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memes = append(s.memes, m)
	return len(s.memes) - 1
}

func (s *implStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.memes)
}

func (s *implStore) At(i int) meme.Meme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.memes) {
		panic(fmt.Sprintf("meme/repository/memory: index %d out of range [0,%d)", i, len(s.memes)))
	}
	return s.memes[i]
}

func (s *implStore) All() []meme.Meme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]meme.Meme, len(s.memes))
	copy(out, s.memes)
	return out
}
