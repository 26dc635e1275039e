package main

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ipRateLimiter tracks last connection time per IP to prevent abuse
type ipRateLimiter struct {
	mu    sync.Mutex
	times map[string]time.Time
}

func newIPRateLimiter() *ipRateLimiter {
	rl := &ipRateLimiter{times: make(map[string]time.Time)}
	// Cleanup stale entries every 60s
	go func() {
		for range time.Tick(60 * time.Second) {
			rl.mu.Lock()
			cutoff := time.Now().Add(-time.Duration(IPCooldownSec) * time.Second)
			for ip, t := range rl.times {
				if t.Before(cutoff) {
					delete(rl.times, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()
	return rl
}

// allow returns true if this IP can connect, and records the attempt
func (rl *ipRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if last, ok := rl.times[ip]; ok {
		if time.Since(last) < time.Duration(IPCooldownSec)*time.Second {
			return false
		}
	}
	rl.times[ip] = time.Now()
	return true
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for development; tighten in production
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// sendErrorAndClose sends an error message via WebSocket then closes the connection
func sendErrorAndClose(ws *websocket.Conn, msg string) {
	data, _ := json.Marshal(ErrorMsg{Type: MsgError, Message: msg})
	_ = ws.WriteMessage(websocket.TextMessage, data)
	ws.Close()
}

func main() {
	settings := LoadSettings()
	conns := NewConnManager()
	rateLimiter := newIPRateLimiter()

	// Each connection gets its own independent game and session loop.
	http.HandleFunc(WebSocketPath, func(w http.ResponseWriter, r *http.Request) {
		// Extract client IP (handle X-Forwarded-For for reverse proxies)
		ip := r.Header.Get("X-Forwarded-For")
		if ip == "" {
			ip, _, _ = net.SplitHostPort(r.RemoteAddr)
		}

		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("ws upgrade error: %v", err)
			return
		}

		// Check limits after upgrade so client can receive error messages
		if conns.Count() >= MaxSessions {
			sendErrorAndClose(ws, "Server full. Please try again later.")
			return
		}
		if !rateLimiter.allow(ip) {
			sendErrorAndClose(ws, "Too many connections. Please wait a moment.")
			return
		}

		conn := NewConn(ws)
		conns.Add(conn)
		defer conns.Remove(conn.ID)
		log.Printf("player connected: %s", conn.ID)

		// Send welcome immediately so the client can size its canvas
		_ = conn.Send(WelcomeMsg{
			Type:       MsgWelcome,
			ID:         conn.ID,
			GridSize:   GridSize,
			CellPixels: CellPixels,
		})

		session := NewSession(conn, NewGame())
		go session.Run()

		// Blocking read loop — runs until client disconnects, then stops
		// the session so its ticker cannot outlive the connection.
		conn.ReadLoop(session)
		log.Printf("player disconnected: %s", conn.ID)
	})

	// Serve the static canvas client
	http.Handle("/", http.FileServer(http.Dir(settings.StaticDir)))

	log.Printf("server listening on %s (grid %dx%d, tick %s)", settings.Addr, GridSize, GridSize, TickInterval)
	if err := http.ListenAndServe(settings.Addr, nil); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
