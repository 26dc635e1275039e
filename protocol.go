package main

// Protocol uses single-character JSON keys to minimize wire size.
//
// Message type constants (value of "t" field):
//   Client → Server:
//     "c" = control {"t":"c","a":"start"}        (a = start | pause | restart)
//     "k" = key     {"t":"k","k":"ArrowUp"}      (k = browser key name)
//   Server → Client:
//     "w" = welcome {"t":"w","i":"id","g":15,"p":24}  (g = grid size, p = cell px)
//     "s" = state   {"t":"s","b":[[x,y],...],"f":[x,y],"p":score,"h":"running"}
//     "e" = error   {"t":"e","m":"message"}
//
// Snake body cells are flat [x,y] int pairs to save bytes vs {"x":..,"y":..}
// objects. The phase string is one of not_started/running/paused/game_over.

// Message type identifiers — single-char for compact protocol
const (
	MsgControl = "c"
	MsgKey     = "k"
	MsgWelcome = "w"
	MsgState   = "s"
	MsgError   = "e"
)

// Control action names (value of "a" in a control message)
const (
	ActionStart   = "start"
	ActionPause   = "pause"
	ActionRestart = "restart"
)

// ClientMessage is the base incoming message from the browser.
//   {"t":"c","a":"start"}       control
//   {"t":"k","k":"ArrowLeft"}   key event
type ClientMessage struct {
	Type   string `json:"t"`
	Action string `json:"a,omitempty"`
	Key    string `json:"k,omitempty"`
}

// WelcomeMsg is sent once on WebSocket connect so the client can size its
// canvas before the first state arrives.
// {"t":"w","i":"uuid","g":15,"p":24}
type WelcomeMsg struct {
	Type       string `json:"t"`
	ID         string `json:"i"`
	GridSize   int    `json:"g"`
	CellPixels int    `json:"p"`
}

// StateMsg carries a full render snapshot. Sent after every state change.
// {"t":"s","b":[[7,7],[6,7]],"f":[10,10],"p":10,"h":"running"}
type StateMsg struct {
	Type  string   `json:"t"`
	Snake [][2]int `json:"b"`
	Food  [2]int   `json:"f"`
	Score int      `json:"p"`
	Phase string   `json:"h"`
}

// ErrorMsg tells the client why it is being turned away.
// {"t":"e","m":"Server full"}
type ErrorMsg struct {
	Type    string `json:"t"`
	Message string `json:"m"`
}

// stateMsgFor converts a snapshot into its wire form.
func stateMsgFor(snap Snapshot) StateMsg {
	body := make([][2]int, len(snap.Snake))
	for i, p := range snap.Snake {
		body[i] = [2]int{p.X, p.Y}
	}
	return StateMsg{
		Type:  MsgState,
		Snake: body,
		Food:  [2]int{snap.Food.X, snap.Food.Y},
		Score: snap.Score,
		Phase: snap.Phase.String(),
	}
}
