package match

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/orbitalgames/cosmic-standoff/internal/game"
	"github.com/orbitalgames/cosmic-standoff/internal/game/events"
	"github.com/orbitalgames/cosmic-standoff/internal/game/states"
	"github.com/orbitalgames/cosmic-standoff/internal/score"
)

// Controller drives the session loop: load the scoreboard, play matches
// until the player quits, persist the totals after every match.
type Controller struct {
	input    InputProvider
	renderer Renderer
	store    *score.Store
	bus      *events.EventBus
	rng      game.Rand
	logger   zerolog.Logger

	mu     sync.Mutex
	totals map[string]int

	// newEngine is swapped in tests to pin agent placement.
	newEngine func(cfg game.BoardConfig, rng game.Rand) (*game.Engine, error)
}

// NewController wires the session dependencies together.
func NewController(input InputProvider, renderer Renderer, store *score.Store, bus *events.EventBus, rng game.Rand, logger zerolog.Logger) *Controller {
	return &Controller{
		input:     input,
		renderer:  renderer,
		store:     store,
		bus:       bus,
		rng:       rng,
		logger:    logger.With().Str("component", "match_controller").Logger(),
		totals:    make(map[string]int),
		newEngine: game.NewEngine,
	}
}

// Run plays matches until the player declines a rematch or the context is
// cancelled. It returns an error only for failures the session cannot
// recover from, such as an unreadable score location or closed input.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.loadTotals(); err != nil {
		return err
	}

	c.renderer.Intro()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		again, err := c.playMatch(ctx)
		if err != nil {
			return err
		}
		if !again {
			c.renderer.Farewell(c.Totals())
			return nil
		}
	}
}

// playMatch runs one full match lifecycle and reports whether the player
// wants another.
func (c *Controller) playMatch(ctx context.Context) (bool, error) {
	matchID := uuid.NewString()
	sctx := states.NewMatchContext(matchID, c.logger)
	machine := states.NewMachine(sctx, c.bus)

	c.renderer.Score(c.Totals())

	engine, err := c.setupEngine(sctx)
	if err != nil {
		return false, err
	}
	state := engine.State()

	if err := machine.TransitionTo(states.PhaseInProgress, "agents placed"); err != nil {
		return false, fmt.Errorf("start match: %w", err)
	}

	c.publish(events.NewMatchStartedEvent(matchID, state.Config, state.Starter, state.Captain, state.Alien))
	c.renderer.Starter(state.Starter)
	c.renderer.InitialPositions(state)

	start := time.Now()
	if err := c.runTurnLoop(ctx, matchID, engine); err != nil {
		return false, err
	}

	result, ok := engine.Result()
	if !ok {
		return false, fmt.Errorf("turn loop ended without a result")
	}

	sctx.DeclareWinner(result.Winner)
	if err := machine.TransitionTo(states.PhaseOver, fmt.Sprintf("%s distance reached zero", result.Axis)); err != nil {
		return false, fmt.Errorf("finish match: %w", err)
	}
	c.publish(events.NewMatchEndedEvent(matchID, result, time.Since(start)))

	if result.Winner == game.CaptainAgent {
		if err := c.input.AwaitShot(); err != nil {
			return false, fmt.Errorf("await winning shot: %w", err)
		}
		c.renderer.CaptainWon(result)
	} else {
		c.renderer.AlienWon(result)
	}

	c.recordWin(matchID, result.Winner)
	c.renderer.Score(c.Totals())

	again, err := c.input.PlayAgain()
	if err != nil {
		return false, fmt.Errorf("ask for rematch: %w", err)
	}
	if again {
		if err := machine.TransitionTo(states.PhaseAwaitingStart, "play again"); err != nil {
			return false, fmt.Errorf("reset for rematch: %w", err)
		}
	}
	return again, nil
}

// setupEngine prompts for board bounds until they describe a playable
// board, then places the agents.
func (c *Controller) setupEngine(sctx *states.MatchContext) (*game.Engine, error) {
	for {
		minCoord, maxCoord, err := c.input.BoardBounds()
		if err != nil {
			return nil, fmt.Errorf("read board bounds: %w", err)
		}

		cfg, err := game.NewBoardConfig(minCoord, maxCoord)
		if err != nil {
			c.renderer.InvalidBoard(err)
			continue
		}

		engine, err := c.newEngine(cfg, c.rng)
		if err != nil {
			return nil, fmt.Errorf("place agents: %w", err)
		}

		sctx.Board = cfg
		sctx.Starter = engine.State().Starter
		return engine, nil
	}
}

// runTurnLoop alternates half-turns in starter order until an axis closes.
func (c *Controller) runTurnLoop(ctx context.Context, matchID string, engine *game.Engine) error {
	state := engine.State()
	order := [2]game.Agent{state.Starter, state.Starter.Opponent()}
	policy := game.NewAlienPolicy(c.rng)

	for engine.TurnPossible() {
		for _, agent := range order {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !engine.TurnPossible() {
				break
			}

			var move game.Move
			if agent == game.CaptainAgent {
				m, err := c.input.CaptainMove()
				if err != nil {
					return fmt.Errorf("read captain move: %w", err)
				}
				move = m
			} else {
				c.renderer.AlienThinking()
				move = policy.Decide(state)
			}

			if err := engine.ApplyMove(agent, move); err != nil {
				return fmt.Errorf("apply %s move: %w", agent, err)
			}

			c.publish(events.NewMoveAppliedEvent(matchID, agent, move, state.Position(agent), state.Dist))
			c.renderer.MoveApplied(agent, move, state)
		}
	}
	return nil
}

// loadTotals reads the persisted scoreboard. A missing or unreadable file
// starts the session at zero and is written back immediately so later
// saves have a sane base. Genuine I/O failures abort the session.
func (c *Controller) loadTotals() error {
	totals, err := c.store.Load()
	switch {
	case err == nil:
	case errors.Is(err, score.ErrNotFound):
		c.logger.Info().Str("path", c.store.Path()).Msg("No score file yet, starting fresh")
		totals = c.freshTotals()
	default:
		var decodeErr *score.DecodeError
		if !errors.As(err, &decodeErr) {
			return fmt.Errorf("load score: %w", err)
		}
		c.logger.Warn().Err(err).Msg("Score file unreadable, resetting totals")
		totals = c.freshTotals()
	}

	c.mu.Lock()
	c.totals = totals
	c.mu.Unlock()
	return nil
}

func (c *Controller) freshTotals() map[string]int {
	totals := map[string]int{
		game.CaptainAgent.String(): 0,
		game.AlienAgent.String():   0,
	}
	if err := c.store.Save(totals); err != nil {
		c.logger.Warn().Err(err).Msg("Could not write fresh score file")
	}
	return totals
}

// recordWin bumps the winner's total and flushes the scoreboard. A failed
// save costs only this match's persistence, not the session.
func (c *Controller) recordWin(matchID string, winner game.Agent) {
	c.mu.Lock()
	c.totals[winner.String()]++
	totals := c.snapshotLocked()
	c.mu.Unlock()

	if err := c.store.Save(totals); err != nil {
		c.logger.Warn().Err(err).Msg("Could not save score file")
		return
	}
	c.publish(events.NewScoreSavedEvent(matchID, c.store.Path(), totals))
}

// FlushScore persists the current totals. It backs the signal handler so
// an interrupted session still keeps its wins.
func (c *Controller) FlushScore() error {
	c.mu.Lock()
	totals := c.snapshotLocked()
	c.mu.Unlock()
	return c.store.Save(totals)
}

// Totals returns a copy of the current win totals.
func (c *Controller) Totals() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() map[string]int {
	totals := make(map[string]int, len(c.totals))
	for k, v := range c.totals {
		totals[k] = v
	}
	return totals
}

func (c *Controller) publish(e events.Event) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
