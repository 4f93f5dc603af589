package collector

// Status is the session state machine position.
//
// Transitions: menu -> playing -> {game over, level complete, game won,
// time up}. A terminal status re-enters playing only through an explicit
// Start or NextLevel call, never automatically.
type Status uint8

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusGameOver
	StatusLevelComplete
	StatusGameWon // maze variant only
	StatusTimeUp  // survival variant only
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	case StatusLevelComplete:
		return "level_complete"
	case StatusGameWon:
		return "game_won"
	case StatusTimeUp:
		return "time_up"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the current level.
func (s Status) Terminal() bool {
	switch s {
	case StatusGameOver, StatusLevelComplete, StatusGameWon, StatusTimeUp:
		return true
	default:
		return false
	}
}

// Final reports whether the status ends the whole playthrough.
// Level complete is terminal for the level but the run continues.
func (s Status) Final() bool {
	switch s {
	case StatusGameOver, StatusGameWon, StatusTimeUp:
		return true
	default:
		return false
	}
}
