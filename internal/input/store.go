package input

import "sync"

// Store owns the workspace's open source files and loaded catalogs. Lock
// order, when a caller must hold more than one, is always:
// db -> Sources -> Catalogs -> OpenedFiles; callers that violate this order
// risk deadlocking against the indexer's own locking.
type Store struct {
	sourcesMu sync.RWMutex
	sources   map[string]*SourceFile

	catalogsMu sync.RWMutex
	catalogs   []*Catalog

	openedMu sync.RWMutex
	opened   map[string]bool
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		sources: make(map[string]*SourceFile),
		opened:  make(map[string]bool),
	}
}

func (s *Store) SetSource(uri string, f *SourceFile) {
	s.sourcesMu.Lock()
	defer s.sourcesMu.Unlock()
	s.sources[uri] = f
}

func (s *Store) Source(uri string) (*SourceFile, bool) {
	s.sourcesMu.RLock()
	defer s.sourcesMu.RUnlock()
	f, ok := s.sources[uri]
	return f, ok
}

func (s *Store) Sources() []*SourceFile {
	s.sourcesMu.RLock()
	defer s.sourcesMu.RUnlock()
	out := make([]*SourceFile, 0, len(s.sources))
	for _, f := range s.sources {
		out = append(out, f)
	}
	return out
}

func (s *Store) AppendCatalogs(cats ...*Catalog) {
	s.catalogsMu.Lock()
	defer s.catalogsMu.Unlock()
	s.catalogs = append(s.catalogs, cats...)
}

func (s *Store) Catalogs() []*Catalog {
	s.catalogsMu.RLock()
	defer s.catalogsMu.RUnlock()
	out := make([]*Catalog, len(s.catalogs))
	copy(out, s.catalogs)
	return out
}

// MarkOpened records that the editor has an in-memory buffer for uri, so the
// indexer does not clobber unsaved edits with a disk re-read.
func (s *Store) MarkOpened(uri string) {
	s.openedMu.Lock()
	defer s.openedMu.Unlock()
	s.opened[uri] = true
}

func (s *Store) MarkClosed(uri string) {
	s.openedMu.Lock()
	defer s.openedMu.Unlock()
	delete(s.opened, uri)
}

func (s *Store) IsOpened(uri string) bool {
	s.openedMu.RLock()
	defer s.openedMu.RUnlock()
	return s.opened[uri]
}

// Reset drops every source and catalog; used between indexing runs and in
// tests that construct a fresh instance.
func (s *Store) Reset() {
	s.sourcesMu.Lock()
	s.sources = make(map[string]*SourceFile)
	s.sourcesMu.Unlock()

	s.catalogsMu.Lock()
	s.catalogs = nil
	s.catalogsMu.Unlock()

	s.openedMu.Lock()
	s.opened = make(map[string]bool)
	s.openedMu.Unlock()
}
