package lee

import "sync"

// Shared serializes access to one GridSearch so several goroutines can
// query the same board size. Each call holds the lock for the whole
// search, so the board left behind belongs to whichever call ran last.
type Shared struct {
	mu sync.Mutex
	gs *GridSearch
}

// NewShared builds a GridSearch with New and wraps it.
func NewShared(width, height int, opts ...Option) (*Shared, error) {
	gs, err := New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	return &Shared{gs: gs}, nil
}

// FindPath is GridSearch.FindPath under the lock.
func (s *Shared) FindPath(src, dst Cell, obstacles []Cell) (Path, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gs.FindPath(src, dst, obstacles)
}

// IsReachable is GridSearch.IsReachable under the lock.
func (s *Shared) IsReachable(src, dst Cell, obstacles []Cell) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gs.IsReachable(src, dst, obstacles)
}

// TraceAndRender runs FindPath and renders the resulting board without
// releasing the lock in between, so the picture matches the path.
func (s *Shared) TraceAndRender(src, dst Cell, obstacles []Cell, st Style) (Path, bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	path, ok, err := s.gs.FindPath(src, dst, obstacles)
	if err != nil {
		return nil, false, "", err
	}
	return path, ok, s.gs.Render(path, st), nil
}
