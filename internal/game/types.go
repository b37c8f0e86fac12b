package game

// State is the top-level mode of the application.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// QuicksaveName is the display name given to saves made with the quick-save
// key.
const QuicksaveName = "Quicksave"

// maxListedSaves caps how many named saves the title menu offers.
const maxListedSaves = 5
