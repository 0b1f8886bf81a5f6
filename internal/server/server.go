// Package server exposes the labyrinth over WebSocket. Each
// connection gets its own freshly generated labyrinth and runs the
// same game engine the terminal client uses.
package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"golang.org/x/crypto/bcrypt"

	"github.com/emberhall/labyrinth/internal/config"
	"github.com/emberhall/labyrinth/internal/content"
	"github.com/emberhall/labyrinth/internal/game"
	"github.com/emberhall/labyrinth/internal/logger"
	"github.com/emberhall/labyrinth/internal/save"
)

const maxPasswordAttempts = 3

// Server accepts WebSocket players and runs a game session per
// connection.
type Server struct {
	cfg         *config.GameConfig
	catalog     *content.Catalog
	store       *save.Store
	connLimiter *ConnLimiter
}

// New creates a server. store may be nil to disable saved games.
func New(cfg *config.GameConfig, catalog *content.Catalog, store *save.Store) *Server {
	return &Server{
		cfg:         cfg,
		catalog:     catalog,
		store:       store,
		connLimiter: NewConnLimiter(cfg.Server.MaxConnections),
	}
}

// Start listens for WebSocket connections on the given address. It
// blocks until the listener fails.
func (s *Server) Start(address string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocketUpgrade)

	logger.Info("WebSocket server listening", "address", address)
	return http.ListenAndServe(address, mux)
}

// handleWebSocketUpgrade upgrades an HTTP connection to WebSocket.
func (s *Server) handleWebSocketUpgrade(w http.ResponseWriter, r *http.Request) {
	// Get the real client IP (supports X-Forwarded-For from reverse proxies)
	clientIP := getRealIP(r)

	// Check connection limits before upgrading
	if !s.connLimiter.TryAcquire(clientIP) {
		logger.Warning("Connection rejected - limit exceeded",
			"remote_addr", r.RemoteAddr,
			"client_ip", clientIP)
		http.Error(w, "Too many connections. Please try again later.", http.StatusTooManyRequests)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			// Non-browser clients send no Origin header; the
			// allowlist only constrains browsers.
			if origin == "" {
				return true
			}
			allowed := s.cfg.Server.IsOriginAllowed(origin)
			if !allowed {
				logger.Warning("Connection rejected - origin not allowed",
					"origin", origin,
					"remote_addr", r.RemoteAddr)
			}
			return allowed
		},
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", "error", err)
		s.connLimiter.Release(clientIP)
		return
	}

	go s.handleConnection(wsConn, clientIP)
}

// handleConnection runs one client connection to completion.
func (s *Server) handleConnection(wsConn *websocket.Conn, clientIP string) {
	defer func() {
		s.connLimiter.Release(clientIP)
		wsConn.Close()
	}()

	client := NewWebSocketClient(wsConn)
	logger.Info("Client connected", "client_ip", clientIP)

	if !s.authenticate(client, clientIP) {
		return
	}

	gen, err := s.cfg.GenerationParams()
	if err != nil {
		logger.Error("Invalid generation settings", "error", err)
		client.WriteLine("The labyrinth is misconfigured. Try again later.")
		return
	}

	// A configured seed is for reproducible single-player runs; on a
	// shared server every connection gets its own labyrinth.
	gen.Seed = 0

	nav, seed, err := game.BuildWorld(gen, s.catalog, s.cfg.Generation.Difficulty)
	if err != nil {
		logger.Error("Failed to build labyrinth", "error", err)
		client.WriteLine("The labyrinth could not be built. Try again later.")
		return
	}

	session := game.NewSession(nav, client, s.store, seed, s.cfg.Generation.Difficulty)
	if err := session.Run(); err != nil {
		logger.Debug("Session closed", "client_ip", clientIP, "error", err)
		return
	}
	logger.Info("Session finished", "client_ip", clientIP)
}

// authenticate enforces the optional access password. Returns true
// when the client may play.
func (s *Server) authenticate(client *WebSocketClient, clientIP string) bool {
	hash := s.cfg.Server.AccessPasswordHash
	if hash == "" {
		return true
	}

	for attempt := 1; attempt <= maxPasswordAttempts; attempt++ {
		client.WriteLine("Password:")
		answer, err := client.ReadLine()
		if err != nil {
			return false
		}

		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(answer)) == nil {
			return true
		}

		logger.Warning("Failed password attempt",
			"client_ip", clientIP,
			"attempt", attempt)
		client.WriteLine(fmt.Sprintf("Incorrect password (%d/%d).", attempt, maxPasswordAttempts))
	}

	client.WriteLine("Too many failed attempts. Goodbye.")
	return false
}

// getRealIP extracts the real client IP from an HTTP request. It
// checks proxy headers first, then falls back to the direct remote
// address.
func getRealIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs: "client, proxy1, proxy2"
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			clientIP := strings.TrimSpace(ips[0])
			if clientIP != "" {
				return clientIP
			}
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	return extractIP(r.RemoteAddr)
}
