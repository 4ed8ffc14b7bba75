package ipc

// These constants must stay in sync with the game client's message types.
const (
	TypeHello      = "hello"
	TypeAck        = "ack"
	TypeWorldState = "world_state"
	TypeGoals      = "goals"
	TypeError      = "error"
)

type HelloMessage struct {
	Player string `json:"player"`
}

type AckMessage struct {
	Status string `json:"status"`
}

// ErrorMessage tells the client a message of Type could not be handled.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// GoalsMessage answers a world_state with the goals of every behavior.
type GoalsMessage struct {
	Day   int           `json:"day"`
	Goals []GoalMessage `json:"goals"`
}

// GoalMessage is the wire form of a plan.Goal. Steps is set for
// compositions only; Ratio and Cost for hero chains only.
type GoalMessage struct {
	Kind     string        `json:"kind"`
	Behavior string        `json:"behavior,omitempty"`
	HeroID   int           `json:"heroId,omitempty"`
	ObjectID int           `json:"objectId,omitempty"`
	Action   string        `json:"action,omitempty"`
	Ratio    float64       `json:"ratio,omitempty"`
	Cost     float64       `json:"cost,omitempty"`
	Steps    []GoalMessage `json:"steps,omitempty"`
}
