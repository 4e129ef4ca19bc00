package preview

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/inamate/motion/internal/scene"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 16 * 1024
)

// Session streams one scene to one websocket client. The player is owned by
// the WritePump goroutine; ReadPump hands it control messages.
type Session struct {
	hub     *Hub
	conn    *websocket.Conn
	player  *scene.Player
	summary SceneSummary

	send     chan []byte
	controls chan Message
	reloads  chan *scene.Scene
	quit     chan struct{}
	stopOnce sync.Once

	SceneID  string
	ClientID string
}

func NewSession(hub *Hub, conn *websocket.Conn, sc *scene.Scene, summary SceneSummary, clientID string) *Session {
	return &Session{
		hub:      hub,
		conn:     conn,
		player:   scene.NewPlayer(sc),
		summary:  summary,
		send:     make(chan []byte, 64),
		controls: make(chan Message, 16),
		reloads:  make(chan *scene.Scene, 1),
		quit:     make(chan struct{}),
		SceneID:  summary.ID,
		ClientID: clientID,
	}
}

func (s *Session) stop() {
	s.stopOnce.Do(func() { close(s.quit) })
}

// Reload hands the session a rebuilt scene, replacing any still pending.
func (s *Session) Reload(sc *scene.Scene) {
	for {
		select {
		case s.reloads <- sc:
			return
		default:
		}
		select {
		case <-s.reloads:
		default:
		}
	}
}

func (s *Session) ReadPump(ctx context.Context) {
	defer func() {
		s.hub.Unregister(s)
		s.stop()
		s.conn.Close(websocket.StatusNormalClosure, "")
	}()

	s.conn.SetReadLimit(maxMsgSize)

	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			slog.Debug("read error", "error", err, "client", s.ClientID)
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("invalid message", "error", err, "client", s.ClientID)
			s.sendError("invalid message")
			continue
		}

		select {
		case s.controls <- msg:
		case <-s.quit:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) WritePump(ctx context.Context) {
	frameTicker := time.NewTicker(frameInterval(s.player.FPS()))
	pingTicker := time.NewTicker(pingPeriod)
	defer func() {
		frameTicker.Stop()
		pingTicker.Stop()
		s.conn.Close(websocket.StatusNormalClosure, "")
	}()

	welcome, _ := json.Marshal(WelcomePayload{
		ClientID: s.ClientID,
		Scene:    s.summary,
		State:    json.RawMessage(s.player.PlaybackState()),
	})
	if !s.write(ctx, &Message{Type: TypeWelcome, Payload: welcome}) || !s.writeFrame(ctx, false) {
		return
	}

	for {
		select {
		case <-frameTicker.C:
			if !s.player.IsPlaying() {
				continue
			}
			if !s.writeFrame(ctx, true) {
				return
			}

		case msg := <-s.controls:
			if !s.handleControl(ctx, msg) {
				return
			}

		case sc := <-s.reloads:
			s.player.Update(sc)
			frameTicker.Reset(frameInterval(s.player.FPS()))
			if !s.write(ctx, &Message{Type: TypeReload}) || !s.writeState(ctx) || !s.writeFrame(ctx, false) {
				return
			}

		case data := <-s.send:
			if !s.writeRaw(ctx, data) {
				return
			}

		case <-pingTicker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := s.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-s.quit:
			return

		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) handleControl(ctx context.Context, msg Message) bool {
	switch msg.Type {
	case TypePlay:
		s.player.Play()
	case TypePause:
		s.player.Pause()
	case TypeToggle:
		s.player.TogglePlay()
	case TypeSeek:
		var seek SeekPayload
		if err := json.Unmarshal(msg.Payload, &seek); err != nil {
			return s.writeError(ctx, "invalid seek payload")
		}
		s.player.SetPlayhead(seek.Frame)
	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", s.ClientID)
		return s.writeError(ctx, "unknown message type "+msg.Type)
	}
	return s.writeState(ctx) && s.writeFrame(ctx, false)
}

// writeFrame renders the current frame, advancing first when tick is set.
func (s *Session) writeFrame(ctx context.Context, tick bool) bool {
	render := s.player.Render
	if tick {
		render = s.player.Tick
	}
	out, err := render()
	if err != nil {
		slog.Error("render frame", "scene", s.SceneID, "frame", s.player.Frame(), "error", err)
		return s.writeError(ctx, err.Error())
	}

	payload, _ := json.Marshal(FramePayload{
		Frame:    s.player.Frame(),
		Commands: json.RawMessage(out),
	})
	return s.write(ctx, &Message{Type: TypeFrame, Payload: payload})
}

func (s *Session) writeState(ctx context.Context) bool {
	return s.write(ctx, &Message{Type: TypeState, Payload: json.RawMessage(s.player.PlaybackState())})
}

func (s *Session) writeError(ctx context.Context, text string) bool {
	payload, _ := json.Marshal(ErrorPayload{Message: text})
	return s.write(ctx, &Message{Type: TypeError, Payload: payload})
}

func (s *Session) write(ctx context.Context, msg *Message) bool {
	msg.SceneID = s.SceneID
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshal message", "error", err)
		return true
	}
	return s.writeRaw(ctx, data)
}

func (s *Session) writeRaw(ctx context.Context, data []byte) bool {
	writeCtx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	if err := s.conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		slog.Debug("write error", "error", err, "client", s.ClientID)
		return false
	}
	return true
}

// sendError queues an error for the WritePump. Safe from any goroutine.
func (s *Session) sendError(text string) {
	payload, _ := json.Marshal(ErrorPayload{Message: text})
	data, err := json.Marshal(&Message{Type: TypeError, SceneID: s.SceneID, Payload: payload})
	if err != nil {
		return
	}

	select {
	case s.send <- data:
	case <-s.quit:
	default:
		slog.Warn("session send buffer full, dropping message", "client", s.ClientID)
	}
}

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 24
	}
	return time.Second / time.Duration(fps)
}
