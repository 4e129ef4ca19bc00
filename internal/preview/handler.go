package preview

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/inamate/motion/internal/document"
	"github.com/inamate/motion/internal/scene"
)

const maxUploadSize = 4 << 20

type Handler struct {
	store          *Store
	hub            *Hub
	originPatterns []string
}

// NewHandler serves scenes from store. originPatterns are host patterns
// allowed to open preview websockets.
func NewHandler(store *Store, hub *Hub, originPatterns []string) *Handler {
	return &Handler{store: store, hub: hub, originPatterns: originPatterns}
}

// Routes registers the preview API on r. Uploads go through protect.
func (h *Handler) Routes(r *mux.Router, protect mux.MiddlewareFunc) {
	r.HandleFunc("/health", h.Health).Methods("GET")

	r.HandleFunc("/scenes", h.List).Methods("GET")
	r.Handle("/scenes", protect(http.HandlerFunc(h.Create))).Methods("POST", "OPTIONS")
	r.HandleFunc("/scenes/{sceneId}", h.Get).Methods("GET")
	r.HandleFunc("/scenes/{sceneId}/frames/{frame}", h.Frame).Methods("GET")

	r.HandleFunc("/ws/scenes/{sceneId}", h.WebSocket)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// Create stores a JSON or YAML document, chosen by Content-Type. Posting a
// document whose scene ID already exists replaces it and reloads every
// open preview of it.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	format := document.FormatJSON
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = document.FormatYAML
	}

	doc, err := document.Decode(http.MaxBytesReader(w, r.Body, maxUploadSize), format)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	summary, replaced, err := h.store.Put(doc)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	status := http.StatusCreated
	if replaced {
		status = http.StatusOK
		h.hub.Reload(summary.ID)
	}
	slog.Info("scene stored", "scene", summary.ID, "name", summary.Name, "replaced", replaced)
	writeJSON(w, status, summary)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Get(mux.Vars(r)["sceneId"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Frame renders a single frame, 1-based.
func (h *Handler) Frame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	frame, err := strconv.Atoi(vars["frame"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "frame must be an integer"})
		return
	}

	sc, err := h.store.Build(vars["sceneId"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if frame < 1 || frame > sc.Frames {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "frame out of range"})
		return
	}

	p := scene.NewPlayer(sc)
	p.SetPlayhead(frame)
	out, err := p.Render()
	if err != nil {
		slog.Error("render frame", "scene", sc.ID, "frame", frame, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "render failed"})
		return
	}

	writeJSON(w, http.StatusOK, FramePayload{Frame: frame, Commands: json.RawMessage(out)})
}

func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	sceneID := mux.Vars(r)["sceneId"]

	doc, err := h.store.Get(sceneID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	sc, err := scene.Build(doc)
	if err != nil {
		slog.Error("build scene", "scene", sceneID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "build failed"})
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	session := NewSession(h.hub, conn, sc, summarize(doc), uuid.New().String())
	if !h.hub.Register(session) {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}

	ctx := r.Context()
	go session.WritePump(ctx)
	session.ReadPump(ctx)
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrSceneNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "scene not found"})
		return
	}
	slog.Error("scene store", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
