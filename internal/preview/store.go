package preview

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/inamate/motion/internal/document"
	"github.com/inamate/motion/internal/scene"
)

var ErrSceneNotFound = errors.New("scene not found")

// SceneSummary describes a stored scene.
type SceneSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	FPS     int    `json:"fps"`
	Frames  int    `json:"frames"`
	Objects int    `json:"objects"`
}

func summarize(doc *document.Document) SceneSummary {
	return SceneSummary{
		ID:      doc.Scene.ID,
		Name:    doc.Scene.Name,
		Width:   doc.Scene.Width,
		Height:  doc.Scene.Height,
		FPS:     doc.Scene.FPS,
		Frames:  doc.Scene.Frames,
		Objects: len(doc.Objects),
	}
}

// Store keeps validated documents in memory, keyed by scene ID. Stored
// documents are never mutated; every caller that renders gets its own
// compiled scene from Build, since scenes carry per-frame state.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*document.Document
}

func NewStore() *Store {
	return &Store{docs: make(map[string]*document.Document)}
}

// Put validates doc and stores it, replacing any scene with the same ID.
// It reports whether a scene was replaced.
func (s *Store) Put(doc *document.Document) (SceneSummary, bool, error) {
	if err := doc.Normalize(); err != nil {
		return SceneSummary{}, false, err
	}
	// Compile once up front so broken references are rejected on upload.
	if _, err := scene.Build(doc); err != nil {
		return SceneSummary{}, false, fmt.Errorf("%w: %v", document.ErrInvalid, err)
	}

	s.mu.Lock()
	_, replaced := s.docs[doc.Scene.ID]
	s.docs[doc.Scene.ID] = doc
	s.mu.Unlock()

	return summarize(doc), replaced, nil
}

// Get returns the stored document.
func (s *Store) Get(id string) (*document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSceneNotFound, id)
	}
	return doc, nil
}

// Build compiles a fresh scene from the stored document.
func (s *Store) Build(id string) (*scene.Scene, error) {
	doc, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return scene.Build(doc)
}

// List returns every stored scene ordered by name.
func (s *Store) List() []SceneSummary {
	s.mu.RLock()
	out := make([]SceneSummary, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, summarize(doc))
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}
