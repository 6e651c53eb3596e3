// Package engine provides the encounter state machine that wires together
// the word bank, candidate generation, the match automaton, effects, and
// events into one catch-or-escape duel.
package engine

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nathoo/hookline/engine/candidates"
	"github.com/nathoo/hookline/engine/effects"
	"github.com/nathoo/hookline/engine/events"
	"github.com/nathoo/hookline/engine/matcher"
	"github.com/nathoo/hookline/engine/state"
	"github.com/nathoo/hookline/engine/wordbank"
	"github.com/nathoo/hookline/types"
)

// Defaults for the per-word damage and per-miss countdown penalty.
const (
	DefaultDamage      = 10
	DefaultMissPenalty = 1
)

// Engine owns at most one live encounter. It is not safe for concurrent use;
// call it from the host's input loop.
type Engine struct {
	Bank  *wordbank.Bank
	Table candidates.Table
	RNG   *RNG

	log       zerolog.Logger
	policy    matcher.MissPolicy
	damage    int
	penalty   int
	listeners []events.Listener
	enc       *state.Encounter
}

// Option configures an Engine.
type Option func(*Engine)

// WithRNG sets the random source used to draw words.
func WithRNG(rng *RNG) Option {
	return func(e *Engine) { e.RNG = rng }
}

// WithLogger sets the structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithMissPolicy sets how the automaton reacts to a wrong keystroke.
func WithMissPolicy(p matcher.MissPolicy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithDamage sets the health removed per completed word.
func WithDamage(n int) Option {
	return func(e *Engine) { e.damage = n }
}

// WithMissPenalty sets the countdown removed per miss.
func WithMissPenalty(n int) Option {
	return func(e *Engine) { e.penalty = n }
}

// New creates an idle engine. Words in bank with more spellings under
// table than candidates.MaxCandidates are pruned and logged.
func New(bank *wordbank.Bank, table candidates.Table, opts ...Option) *Engine {
	e := &Engine{
		Bank:    bank,
		Table:   table,
		RNG:     NewRNG(0),
		log:     zerolog.Nop(),
		damage:  DefaultDamage,
		penalty: DefaultMissPenalty,
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, w := range bank.Prune(table) {
		e.log.Warn().
			Int("level", w.Level).
			Str("word", w.Display).
			Str("romaji", w.Romanization).
			Msg("word dropped: too many spellings")
	}
	return e
}

// Subscribe registers l for captured and escaped events.
func (e *Engine) Subscribe(l events.Listener) {
	e.listeners = append(e.listeners, l)
}

// Phase returns Idle or Presenting.
func (e *Engine) Phase() types.Phase {
	if e.enc == nil {
		return types.Idle
	}
	return types.Presenting
}

// Target returns the hooked target, or nil when idle.
func (e *Engine) Target() *types.Target {
	if e.enc == nil {
		return nil
	}
	return e.enc.Target
}

// Encounter returns the live encounter, or nil when idle.
func (e *Engine) Encounter() *state.Encounter {
	return e.enc
}

// Hook starts an encounter with t. A nil target, an encounter already in
// progress, or a level with no words leaves the engine idle and returns false.
func (e *Engine) Hook(t *types.Target) bool {
	if t == nil {
		e.log.Warn().Msg("hook ignored: nil target")
		return false
	}
	if e.enc != nil {
		e.log.Warn().Str("encounter", e.enc.ID).Str("fish", t.Name).Msg("hook ignored: encounter in progress")
		return false
	}

	word, ok := e.Bank.SampleRandom(t.Level, e.RNG)
	if !ok {
		e.log.Warn().Str("fish", t.Name).Int("level", t.Level).Msg("no word for level")
		e.Reset()
		return false
	}

	e.enc = state.NewEncounter(uuid.NewString(), t)
	e.present(word)
	e.log.Info().
		Str("encounter", e.enc.ID).
		Str("fish", t.Name).
		Int("level", t.Level).
		Int("health", t.Health).
		Int("countdown", t.Countdown).
		Msg("fish hooked")
	return true
}

// Input feeds one keystroke. It is ignored while idle.
func (e *Engine) Input(r rune) types.Result {
	if e.enc == nil {
		return types.Result{Outcome: types.Ignored}
	}

	enc := e.enc
	result := types.Result{Outcome: enc.Matcher.Submit(r)}

	switch result.Outcome {
	case types.Miss:
		result.Effects = []types.Effect{{Type: effects.Tick, Amount: e.penalty}}
	case types.Complete:
		result.Effects = []types.Effect{{Type: effects.Damage, Amount: e.damage}}
	default:
		return result
	}

	evts, output := effects.Apply(enc, result.Effects)
	result.Events = evts
	result.Output = output

	if len(evts) > 0 {
		for _, ev := range evts {
			e.log.Info().
				Str("encounter", enc.ID).
				Str("fish", enc.Target.Name).
				Str("event", ev.Type).
				Int("words", enc.Words).
				Int("misses", enc.Misses).
				Msg("encounter ended")
		}
		// Idle before listeners run so they may hook the next target.
		e.enc = nil
		events.Dispatch(evts, e.listeners)
		return result
	}

	if result.Outcome == types.Complete {
		word, ok := e.Bank.SampleRandom(enc.Target.Level, e.RNG)
		if !ok {
			e.log.Warn().Str("encounter", enc.ID).Int("level", enc.Target.Level).Msg("no word for level")
			e.Reset()
			return result
		}
		e.present(word)
		result.Word = &word
	}
	return result
}

// Reset discards any encounter without raising an event.
func (e *Engine) Reset() {
	if e.enc != nil {
		e.log.Debug().Str("encounter", e.enc.ID).Msg("encounter reset")
	}
	e.enc = nil
}

// present installs word as the current prompt.
func (e *Engine) present(word types.WordEntry) {
	cands := candidates.Generate(e.Table, word.Romanization)
	state.SetWord(e.enc, word, cands, e.policy)
	e.log.Debug().
		Str("encounter", e.enc.ID).
		Str("word", word.Display).
		Str("romaji", word.Romanization).
		Int("candidates", len(cands)).
		Msg("word presented")
}

// View is the read-only presentation of the current encounter.
type View struct {
	Phase        types.Phase
	Target       types.Target
	Display      string
	Romanization string
	Typed        string
	Remaining    string
	Live         int
}

// View returns what a host needs to draw the prompt.
func (e *Engine) View() View {
	if e.enc == nil {
		return View{Phase: types.Idle}
	}
	m := e.enc.Matcher
	return View{
		Phase:        types.Presenting,
		Target:       *e.enc.Target,
		Display:      e.enc.Word.Display,
		Romanization: e.enc.Word.Romanization,
		Typed:        m.Typed(),
		Remaining:    m.Remaining(),
		Live:         len(m.Live()),
	}
}
