package preview

import (
	"context"
	"log/slog"
	"sync"
)

// room groups the sessions previewing one scene.
type room struct {
	sceneID  string
	sessions map[string]*Session // clientID -> session
}

// Hub tracks live preview sessions and pushes rebuilt scenes to them when a
// scene is replaced. Membership changes and reloads are serialized on the
// Run goroutine.
type Hub struct {
	store *Store

	mu    sync.RWMutex
	rooms map[string]*room // sceneID -> room

	register   chan *Session
	unregister chan *Session
	reload     chan string
	done       chan struct{}
}

func NewHub(store *Store) *Hub {
	return &Hub{
		store:      store,
		rooms:      make(map[string]*room),
		register:   make(chan *Session),
		unregister: make(chan *Session),
		reload:     make(chan string, 16),
		done:       make(chan struct{}),
	}
}

// Run processes hub events until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case s := <-h.register:
			h.addSession(s)
		case s := <-h.unregister:
			h.removeSession(s)
		case id := <-h.reload:
			h.reloadScene(id)
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

// Register adds a session. It reports false once the hub has stopped.
func (h *Hub) Register(s *Session) bool {
	select {
	case h.register <- s:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(s *Session) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// Reload asks every session on sceneID to switch to the stored version.
func (h *Hub) Reload(sceneID string) {
	select {
	case h.reload <- sceneID:
	case <-h.done:
	}
}

// Sessions returns the number of sessions previewing sceneID.
func (h *Hub) Sessions(sceneID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if r, ok := h.rooms[sceneID]; ok {
		return len(r.sessions)
	}
	return 0
}

func (h *Hub) addSession(s *Session) {
	h.mu.Lock()
	r, ok := h.rooms[s.SceneID]
	if !ok {
		r = &room{sceneID: s.SceneID, sessions: make(map[string]*Session)}
		h.rooms[s.SceneID] = r
	}
	r.sessions[s.ClientID] = s
	h.mu.Unlock()

	slog.Info("preview session joined", "client", s.ClientID, "scene", s.SceneID)
}

func (h *Hub) removeSession(s *Session) {
	h.mu.Lock()
	r, ok := h.rooms[s.SceneID]
	if !ok {
		h.mu.Unlock()
		return
	}
	if _, ok := r.sessions[s.ClientID]; !ok {
		h.mu.Unlock()
		return
	}

	delete(r.sessions, s.ClientID)
	s.stop()
	if len(r.sessions) == 0 {
		delete(h.rooms, s.SceneID)
	}
	h.mu.Unlock()

	slog.Info("preview session left", "client", s.ClientID, "scene", s.SceneID)
}

func (h *Hub) reloadScene(sceneID string) {
	h.mu.RLock()
	r, ok := h.rooms[sceneID]
	if !ok {
		h.mu.RUnlock()
		return
	}
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	for _, s := range sessions {
		sc, err := h.store.Build(sceneID)
		if err != nil {
			slog.Error("rebuild scene", "scene", sceneID, "error", err)
			return
		}
		s.Reload(sc)
	}
	slog.Info("scene reloaded", "scene", sceneID, "sessions", len(sessions))
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, r := range h.rooms {
		for _, s := range r.sessions {
			s.stop()
		}
		delete(h.rooms, id)
	}
}
