package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nstehr/vimy/vimy-hero/config"
	"github.com/nstehr/vimy/vimy-hero/ipc"
	"github.com/nstehr/vimy/vimy-hero/model"
	"github.com/nstehr/vimy/vimy-hero/observe"
	"github.com/nstehr/vimy/vimy-hero/plan"
	"github.com/nstehr/vimy/vimy-hero/rules"
)

// Agent owns the decision-making for a single player session.
type Agent struct {
	Conn     *ipc.Connection
	Player   string
	Engine   *rules.Engine
	Settings func() *config.Config // current config; may change between passes
	Metrics  *observe.Metrics
}

func New(conn *ipc.Connection, engine *rules.Engine, settings func() *config.Config, met *observe.Metrics) *Agent {
	return &Agent{
		Conn:     conn,
		Engine:   engine,
		Settings: settings,
		Metrics:  met,
	}
}

// HandleHello completes the handshake so the client knows the sidecar is ready.
func (a *Agent) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return nil, fmt.Errorf("unmarshal hello: %w", err)
	}

	a.Player = hello.Player
	if a.Conn != nil {
		a.Conn.Player = hello.Player
	}
	slog.Info("player identified", "player", a.Player)

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok"})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// HandleWorldState runs one planning pass and replies with the goals.
func (a *Agent) HandleWorldState(env ipc.Envelope) (*ipc.Envelope, error) {
	var ws model.WorldState
	if err := json.Unmarshal(env.Data, &ws); err != nil {
		return nil, fmt.Errorf("unmarshal WorldState: %w", err)
	}
	if ws.Player == "" {
		ws.Player = a.Player
	}

	slog.Info("world state received",
		"player", ws.Player,
		"day", ws.Day,
		"gold", ws.Resources[model.Gold],
		"heroes", len(ws.Heroes),
		"objects", len(ws.Objects),
		"paths", len(ws.Paths),
		"locked", len(ws.LockedHeroes),
	)

	goals := a.Plan(context.Background(), &ws)

	resp, err := ipc.NewEnvelope(ipc.TypeGoals, ipc.GoalsMessage{Day: ws.Day, Goals: goals})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Plan runs every configured capture behavior against the snapshot.
func (a *Agent) Plan(ctx context.Context, ws *model.WorldState) []ipc.GoalMessage {
	cfg := a.Settings()
	svc := newServices(ws, cfg.Policy, a.Engine, a.Metrics)

	out := []ipc.GoalMessage{}
	for _, nb := range buildBehaviors(cfg.Behaviors, ws) {
		goals := nb.behavior.Decompose(ctx, svc)
		slog.Info("behavior decomposed",
			"behavior", nb.name,
			"kind", nb.behavior.String(),
			"specific", nb.behavior.Specific(),
			"goals", len(goals),
		)
		for _, g := range goals {
			msg := encodeGoal(g)
			msg.Behavior = nb.name
			out = append(out, msg)
		}
	}
	return out
}

// encodeGoal converts a goal to its wire form.
func encodeGoal(g plan.Goal) ipc.GoalMessage {
	switch g := g.(type) {
	case *plan.ExecuteHeroChain:
		msg := ipc.GoalMessage{
			Kind:   string(g.Kind()),
			HeroID: g.Path.Hero.ID,
			Ratio:  g.ClosestWayRatio,
			Cost:   g.Path.Cost,
		}
		if g.Object != nil {
			msg.ObjectID = g.Object.ID
		}
		return msg
	case *plan.Composition:
		msg := ipc.GoalMessage{Kind: string(g.Kind())}
		for _, s := range g.Steps {
			msg.Steps = append(msg.Steps, encodeGoal(s))
		}
		return msg
	case *plan.Prerequisite:
		return ipc.GoalMessage{
			Kind:     string(g.Kind()),
			HeroID:   g.Hero.ID,
			ObjectID: g.ObjectID,
			Action:   g.Action,
		}
	case plan.Invalid:
		return ipc.GoalMessage{Kind: string(g.Kind())}
	}
	return ipc.GoalMessage{Kind: string(plan.KindInvalid)}
}
