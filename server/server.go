// Package server exposes the soundness driver over HTTP: POST /check
// verifies and validates a presentation against an already-attached
// proof, while the /prove WebSocket endpoint runs ProveComposite and
// streams one progress message per ProofStep as saturation finds it,
// instead of blocking silently until the whole search finishes.
package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/prove"
	"github.com/dock-labs/rdf2020soundness/rule"
	"github.com/dock-labs/rdf2020soundness/soundness"
	"github.com/dock-labs/rdf2020soundness/term"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Server serves the soundness driver over HTTP and WebSocket.
type Server struct {
	driver    *soundness.Driver
	rulesMu   sync.RWMutex
	rules     []rule.Rule
	log       *zap.SugaredLogger
	rateLimit *rateLimiter
	origins   map[string]bool
}

// New builds a Server backed by driver. perSecond/burst configure the
// per-remote-address token bucket; allowedOrigins restricts which
// Origin headers a WebSocket upgrade accepts (empty means allow all).
func New(driver *soundness.Driver, rules []rule.Rule, log *zap.SugaredLogger, perSecond float64, burst int, allowedOrigins []string) *Server {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &Server{
		driver:    driver,
		rules:     rules,
		log:       log,
		rateLimit: newRateLimiter(perSecond, burst),
		origins:   origins,
	}
}

// SetRules replaces the rule set subsequent requests saturate against.
func (s *Server) SetRules(rules []rule.Rule) {
	s.rulesMu.Lock()
	defer s.rulesMu.Unlock()
	s.rules = rules
}

func (s *Server) currentRules() []rule.Rule {
	s.rulesMu.RLock()
	defer s.rulesMu.RUnlock()
	return s.rules
}

func (s *Server) allowedOrigin(r *http.Request) bool {
	if len(s.origins) == 0 {
		return true
	}
	return s.origins[r.Header.Get("Origin")]
}

// Handler returns the HTTP handler for this server, with rate
// limiting applied to every route.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/check", s.handleCheck)
	mux.HandleFunc("/prove", s.handleProve)
	return s.rateLimit.middleware(mux)
}

type checkRequest struct {
	Presentation json.RawMessage `json:"presentation"`
}

type checkResponse struct {
	AcceptedCount int    `json:"accepted_count"`
	Error         string `json:"error,omitempty"`
}

// handleCheck verifies and validates a presentation already carrying
// an attached proof. It is a plain, single-shot POST: replaying a
// proof is cheap relative to finding one, so it has no streaming form.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	accepted, err := s.driver.CheckSoundness(req.Presentation, s.currentRules())
	resp := checkResponse{}
	if err != nil {
		resp.Error = describeError(err)
	} else {
		resp.AcceptedCount = accepted.Len()
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

type proveRequest struct {
	Presentation json.RawMessage `json:"presentation"`
	Goals        []term.Triple   `json:"goals"`
}

// progressMessage is one line of the /prove websocket stream: either
// a "step" carrying a freshly applied ProofStep, or a final "done"
// carrying the completed witness (or an error).
type progressMessage struct {
	Type    string           `json:"type"`
	Step    *prove.ProofStep `json:"step,omitempty"`
	Witness prove.Proof      `json:"witness,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// handleProve upgrades to a WebSocket and streams saturation progress
// for a single ProveComposite call.
func (s *Server) handleProve(w http.ResponseWriter, r *http.Request) {
	if !s.allowedOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logf("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	var req proveRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(progressMessage{Type: "done", Error: "malformed request: " + err.Error()})
		return
	}

	var writeMu sync.Mutex
	driver := *s.driver
	driver.OnProofStep = func(step prove.ProofStep) {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.WriteJSON(progressMessage{Type: "step", Step: &step})
	}

	goals := term.NewClaimGraph(req.Goals...)
	witness, err := driver.ProveComposite(req.Presentation, goals, s.currentRules())

	writeMu.Lock()
	defer writeMu.Unlock()
	if err != nil {
		_ = conn.WriteJSON(progressMessage{Type: "done", Error: describeError(err)})
		return
	}
	_ = conn.WriteJSON(progressMessage{Type: "done", Witness: witness})
}

func describeError(err error) string {
	return errors.KindOf(err).String() + ": " + err.Error()
}

func (s *Server) logf(msg string, kv ...any) {
	if s.log == nil {
		return
	}
	s.log.Warnw(msg, kv...)
}
