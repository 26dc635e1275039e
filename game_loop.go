package main

import (
	"log"
	"sync"
	"time"
)

type commandKind int

const (
	cmdStart commandKind = iota
	cmdPause
	cmdRestart
	cmdDirection
)

// command is one input event for a session: a control action or a
// direction change.
type command struct {
	kind commandKind
	dir  Point
}

// sessionConn is the slice of Conn the session loop needs. Tests substitute
// a recording implementation.
type sessionConn interface {
	Send(msg interface{}) error
	Close()
}

// Session drives one game for one connection. Timer ticks and client
// commands are serialized through a single select loop, so the game state
// has exactly one writer and every event runs to completion before the next.
type Session struct {
	id       string
	conn     sessionConn
	game     *Game
	interval time.Duration
	commands chan command
	done     chan struct{}
	stopOnce sync.Once
}

// NewSession creates a session for a connection with a fresh game.
func NewSession(conn *Conn, game *Game) *Session {
	return &Session{
		id:       conn.ID,
		conn:     conn,
		game:     game,
		interval: TickInterval,
		commands: make(chan command, 16),
		done:     make(chan struct{}),
	}
}

// Enqueue hands a command to the session loop. Safe to call from the read
// goroutine; drops nothing unless the session has stopped.
func (s *Session) Enqueue(cmd command) {
	select {
	case s.commands <- cmd:
	case <-s.done:
	}
}

// Stop shuts the session loop down. Idempotent.
func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Run processes commands and ticks until Stop. The tick timer exists only
// while the game is running: it is armed on entering the running phase and
// stopped the moment the phase leaves it (pause, game over) or the session
// ends, so no orphaned tick can fire into a halted game.
func (s *Session) Run() {
	var ticker *time.Ticker
	var tickC <-chan time.Time

	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
		s.conn.Close()
		log.Printf("session %s ended", s.id)
	}()

	s.pushState()

	for {
		before := s.game.Snapshot()

		select {
		case <-s.done:
			return

		case cmd := <-s.commands:
			s.apply(cmd)

		case <-tickC:
			s.game.Tick()
			if before.Phase == PhaseRunning && s.game.Phase == PhaseGameOver {
				log.Printf("session %s game over, score %d", s.id, s.game.Score)
			}
		}

		if s.game.Phase == PhaseRunning && ticker == nil {
			ticker = time.NewTicker(s.interval)
			tickC = ticker.C
		}
		if s.game.Phase != PhaseRunning && ticker != nil {
			ticker.Stop()
			ticker = nil
			tickC = nil
		}

		// Rejected commands leave the state as it was; send nothing then.
		if !snapshotsEqual(before, s.game.Snapshot()) {
			s.pushState()
		}
	}
}

// apply executes one command against the game. Illegal transitions and
// rejected direction changes are no-ops inside the engine.
func (s *Session) apply(cmd command) {
	switch cmd.kind {
	case cmdStart:
		s.game.Start()
	case cmdPause:
		s.game.TogglePause()
	case cmdRestart:
		s.game.Restart()
	case cmdDirection:
		s.game.SetDirection(cmd.dir)
	}
}

// pushState sends the current snapshot to the client.
func (s *Session) pushState() {
	if err := s.conn.Send(stateMsgFor(s.game.Snapshot())); err != nil {
		log.Printf("send error to %s: %v", s.id, err)
	}
}

// snapshotsEqual reports whether two snapshots render identically.
func snapshotsEqual(a, b Snapshot) bool {
	if a.Phase != b.Phase || a.Score != b.Score || a.Food != b.Food || len(a.Snake) != len(b.Snake) {
		return false
	}
	for i := range a.Snake {
		if a.Snake[i] != b.Snake[i] {
			return false
		}
	}
	return true
}
