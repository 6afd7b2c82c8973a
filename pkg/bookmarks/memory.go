package bookmarks

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store. It backs tests and ephemeral sessions
// that should not touch disk.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]Bookmark
	order []string
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{items: make(map[string]Bookmark)}
	s.items[ToolbarID] = Bookmark{ID: ToolbarID, Title: "Bookmarks Toolbar", Folder: true}
	s.order = append(s.order, ToolbarID)
	return s
}

func (s *MemoryStore) snapshot(filter func(Bookmark) bool) []Bookmark {
	var out []Bookmark
	for _, id := range s.order {
		b := s.items[id]
		if filter == nil || filter(b) {
			out = append(out, b)
		}
	}
	return out
}

func (s *MemoryStore) Search(ctx context.Context, query string) ([]Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.ToLower(query)
	return s.snapshot(func(b Bookmark) bool {
		return strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.URL), q)
	}), nil
}

func (s *MemoryStore) All(ctx context.Context) ([]Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(nil), nil
}

func (s *MemoryStore) Fetch(ctx context.Context, id string) (*Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (s *MemoryStore) Insert(ctx context.Context, b Bookmark) (*Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.ParentID == "" {
		b.ParentID = ToolbarID
	}
	s.items[b.ID] = b
	s.order = append(s.order, b.ID)
	return &b, nil
}

func (s *MemoryStore) Update(ctx context.Context, b Bookmark) (*Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.items[b.ID]
	if !ok {
		return nil, ErrNotFound
	}
	if b.Title == "" {
		b.Title = old.Title
	}
	if b.URL == "" {
		b.URL = old.URL
	}
	if b.ParentID == "" {
		b.ParentID = old.ParentID
	}
	b.Folder = old.Folder
	s.items[b.ID] = b
	return &b, nil
}

func (s *MemoryStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	for idx, v := range s.order {
		if v == id {
			s.order = append(s.order[:idx], s.order[idx+1:]...)
			break
		}
	}
	return nil
}
