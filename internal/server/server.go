// Package server exposes the voice pipeline over a WebSocket endpoint: each
// transcription message is parsed, validated against the game, and answered
// with the resulting game state.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/voicechess/internal/board"
	"github.com/hailam/voicechess/internal/command"
	"github.com/hailam/voicechess/internal/storage"
)

// Transcription is the upstream speech-to-text message.
type Transcription struct {
	Text string `json:"text"`
}

// Reply describes the outcome of one processed utterance.
type Reply struct {
	Outcome  string `json:"outcome"` // applied, resigned, parse_error, no_match, ambiguous, rejected, game_over, noop
	Command  string `json:"command,omitempty"`
	Move     string `json:"move,omitempty"`
	Matches  int    `json:"matches"`
	FEN      string `json:"fen"`
	Terminal string `json:"terminal"`
	Error    string `json:"error,omitempty"`
}

// Server owns the game session and serves the transcription endpoint.
// A single mutex orders all access to the position; the engine itself is
// single-threaded by contract.
type Server struct {
	mu       sync.Mutex
	pos      *board.Position
	moves    []string
	resigned bool
	store    *storage.Storage // nil disables persistence

	upgrader websocket.Upgrader
}

// New creates a server, restoring the saved game from storage when one
// exists.
func New(store *storage.Storage) *Server {
	s := &Server{
		pos:   board.NewPosition(),
		store: store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	if store != nil {
		saved, err := store.LoadGame()
		if err != nil {
			log.Printf("load game: %v", err)
		} else if saved != nil {
			pos, err := board.ParseFEN(saved.FEN)
			if err != nil {
				log.Printf("saved game is corrupt, starting fresh: %v", err)
			} else {
				s.pos = pos
				s.moves = saved.Moves
				s.resigned = saved.Resigned
			}
		}
	}

	return s
}

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("listening on %s", addr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// routes configures the ServeMux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/api/reset", s.handleReset)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// handleWS upgrades the connection and processes transcription messages
// until the client disconnects.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		var msg Transcription
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("websocket read: %v", err)
			}
			return
		}

		reply := s.Handle(msg.Text)
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("websocket write: %v", err)
			return
		}
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	state := s.stateLocked("")
	s.mu.Unlock()
	writeJSON(w, state)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	s.pos = board.NewPosition()
	s.moves = nil
	s.resigned = false
	if s.store != nil {
		if err := s.store.ClearGame(); err != nil {
			log.Printf("clear game: %v", err)
		}
	}
	state := s.stateLocked("")
	s.mu.Unlock()

	writeJSON(w, state)
}

// Handle runs one utterance through the parse/validate/execute pipeline.
func (s *Server) Handle(text string) Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resigned || s.pos.TerminalState() != board.Running {
		return s.replyLocked("game_over", "", "the game is over; reset to start a new one")
	}

	cmd, err := command.Parse(text)
	if err != nil {
		s.persistOutcome("parse_error")
		return s.replyLocked("parse_error", "", err.Error())
	}

	switch cmd.Action {
	case command.ActionResign:
		s.resigned = true
		s.persistLocked("resigned")
		return s.replyLocked("resigned", "", "")

	case command.ActionPromote:
		if !command.Validate(cmd, s.pos) {
			return s.replyLocked("rejected", "", "no pawn can promote")
		}
		// Promotion is automatic on the pawn's move; nothing to apply here.
		return s.replyLocked("noop", "", "promotion is automatic")

	case command.ActionShortCastle, command.ActionLongCastle:
		m, ok := command.Resolve(cmd, s.pos)
		if !ok {
			return s.replyLocked("rejected", "", "castling is not legal here")
		}
		return s.applyLocked(cmd, m)

	case command.ActionMove, command.ActionCapture:
		matches := command.MatchingMoves(cmd, s.pos)
		switch len(matches) {
		case 0:
			r := s.replyLocked("no_match", "", "no legal move matches")
			r.Command = cmd.String()
			s.persistOutcome("no_match")
			return r
		case 1:
			return s.applyLocked(cmd, matches[0])
		default:
			r := s.replyLocked("ambiguous", "", "more than one legal move matches")
			r.Command = cmd.String()
			r.Matches = len(matches)
			s.persistOutcome("ambiguous")
			return r
		}

	default:
		return s.replyLocked("rejected", "", "could not understand the command")
	}
}

// applyLocked executes a resolved move and persists the session.
func (s *Server) applyLocked(cmd command.Command, m board.Move) Reply {
	if !s.pos.ExecuteMove(m) {
		return s.replyLocked("no_match", "", "move is not legal")
	}
	s.moves = append(s.moves, m.String())
	s.persistLocked("applied")

	r := s.replyLocked("applied", m.String(), "")
	r.Command = cmd.String()
	r.Matches = 1
	return r
}

// replyLocked builds a Reply with the current game state attached.
func (s *Server) replyLocked(outcome, move, errMsg string) Reply {
	r := s.stateLocked(outcome)
	r.Move = move
	r.Error = errMsg
	return r
}

func (s *Server) stateLocked(outcome string) Reply {
	terminal := s.pos.TerminalState().String()
	if s.resigned {
		terminal = "resigned"
	}
	return Reply{
		Outcome:  outcome,
		FEN:      s.pos.ToFEN(),
		Terminal: terminal,
	}
}

// persistLocked saves the game snapshot and records the outcome.
func (s *Server) persistLocked(outcome string) {
	if s.store == nil {
		return
	}
	err := s.store.SaveGame(&storage.SavedGame{
		FEN:      s.pos.ToFEN(),
		Moves:    s.moves,
		Resigned: s.resigned,
	})
	if err != nil {
		log.Printf("save game: %v", err)
	}
	s.persistOutcome(outcome)
}

func (s *Server) persistOutcome(outcome string) {
	if s.store == nil {
		return
	}
	if err := s.store.RecordOutcome(outcome); err != nil {
		log.Printf("record outcome: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write json: %v", err)
	}
}
