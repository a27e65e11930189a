package game

import "fmt"

// Agent identifies one of the two match participants.
type Agent int

const (
	CaptainAgent Agent = iota
	AlienAgent
)

// Agents lists both participants in a fixed order.
var Agents = [...]Agent{CaptainAgent, AlienAgent}

// String returns the display name. These are also the keys of the
// persisted score file, so they must stay stable.
func (a Agent) String() string {
	switch a {
	case CaptainAgent:
		return "Captain"
	case AlienAgent:
		return "Alien"
	default:
		return fmt.Sprintf("Unknown(%d)", int(a))
	}
}

// Opponent returns the other participant.
func (a Agent) Opponent() Agent {
	if a == CaptainAgent {
		return AlienAgent
	}
	return CaptainAgent
}
