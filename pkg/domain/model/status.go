package model

// GameStatus tells which CS2 processes are currently running
type GameStatus struct {
	ClientRunning    bool `json:"client_running"`
	DedicatedRunning bool `json:"dedicated_running"`
}

// Status is the body of GET /status
type Status struct {
	Game    GameStatus `json:"game"`
	Buttons []string   `json:"buttons"`
}
