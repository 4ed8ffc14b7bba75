package model

// WorldState is the snapshot the game client sends once per planning pass.
// Everything in it is read-only for the planner.
type WorldState struct {
	Day          int         `json:"day"`
	Player       string      `json:"player"`
	Resources    Resources   `json:"resources"`
	Heroes       []Hero      `json:"heroes"`
	Objects      []Object    `json:"objects"`
	Quests       []Quest     `json:"quests"`
	Keys         []int       `json:"keys"` // keymaster sub-ids visited by the player
	Paths        []PathInfo  `json:"paths"`
	LockedHeroes []int       `json:"lockedHeroes"`
	Danger       *DangerData `json:"danger,omitempty"`
}

// PathInfo is a pathfinder result as it arrives on the wire. The agent resolves
// hero ids and blocked actions into plan.Path values.
type PathInfo struct {
	HeroID        int          `json:"heroId"`
	ChainHeroIDs  []int        `json:"chainHeroIds,omitempty"`
	Target        Pos          `json:"target"`
	Nodes         []PathNode   `json:"nodes"`
	Cost          float64      `json:"cost"`
	ArmyStrength  int64        `json:"armyStrength"`
	Danger        int64        `json:"danger"`
	ArmyLoss      int64        `json:"armyLoss"`
	ExchangeCount int          `json:"exchangeCount"`
	Blocked       *BlockedInfo `json:"blocked,omitempty"`
}

// PathNode is one step of a route. Turns counts days from now until the hero
// stands on the tile.
type PathNode struct {
	Pos   Pos `json:"pos"`
	Turns int `json:"turns"`
}

// Blocked action kinds reported by the pathfinder.
const (
	BlockedQuest    = "quest"
	BlockedGarrison = "garrison"
	BlockedGate     = "border_gate"
)

// BlockedInfo names the first action on a path that cannot run directly.
type BlockedInfo struct {
	Kind     string `json:"kind"`
	ObjectID int    `json:"objectId"`
	Strength int64  `json:"strength,omitempty"` // guard strength for garrisons
}

// DangerData carries the coarse danger grid from the client.
// Optional: without it the planner assumes no enemy can reach our heroes.
// Levels > 1 stacks one Cols x Rows layer per map level (surface first);
// a single layer is applied to every level.
type DangerData struct {
	Cols   int          `json:"cols"`
	Rows   int          `json:"rows"`
	Levels int          `json:"levels,omitempty"`
	CellW  int          `json:"cellW"`
	CellH  int          `json:"cellH"`
	Cells  []DangerCell `json:"cells"`
}

// Hero returns the hero with the given id, or nil.
func (ws *WorldState) Hero(id int) *Hero {
	for i := range ws.Heroes {
		if ws.Heroes[i].ID == id {
			return &ws.Heroes[i]
		}
	}
	return nil
}

// OwnHeroes returns the heroes belonging to the snapshot's player. Allied
// and enemy heroes are left out.
func (ws *WorldState) OwnHeroes() []Hero {
	var own []Hero
	for _, h := range ws.Heroes {
		if h.Owner == ws.Player {
			own = append(own, h)
		}
	}
	return own
}

// Object returns the object with the given id, or nil.
func (ws *WorldState) Object(id int) *Object {
	for i := range ws.Objects {
		if ws.Objects[i].ID == id {
			return &ws.Objects[i]
		}
	}
	return nil
}

// Quest returns the quest tracked for the given object.
func (ws *WorldState) Quest(objectID int) (Quest, bool) {
	for _, q := range ws.Quests {
		if q.ObjectID == objectID {
			return q, true
		}
	}
	return Quest{}, false
}
