// Package race implements the word-building horse race: a tick-driven
// simulation where the player's horse is propelled by valid words built
// from a letter rack while computer opponents advance on their own.
package race

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

// State is the lifecycle state of a race engine.
type State string

const (
	StateReady    State = "ready"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateFinished State = "finished"
	StateStopped  State = "stopped"
)

// SubmitStatus classifies the outcome of a word submission.
type SubmitStatus string

const (
	StatusAccepted      SubmitStatus = "accepted"
	StatusTooShort      SubmitStatus = "too-short"
	StatusTooLong       SubmitStatus = "too-long"
	StatusInvalidWord   SubmitStatus = "invalid-word"
	StatusDuplicateWord SubmitStatus = "duplicate-word"
)

// SubmitResult is returned from Submit for UI feedback.
type SubmitResult struct {
	Status     SubmitStatus
	Word       string
	ScoreDelta int
	// Suggestion holds a near-miss pool word on invalid-word rejections.
	Suggestion string
}

// Winner identifies who crossed the finish line first.
type Winner struct {
	IsPlayer bool
	Opponent int // opponent index, valid only when IsPlayer is false
}

// Snapshot is a consistent copy of the race state for rendering.
type Snapshot struct {
	State            State
	Rack             []rune
	Selection        []int
	Word             string
	Score            int
	PlayerProgress   float64
	OpponentProgress [OpponentCount]float64
	Winner           *Winner
}

const (
	defaultTickPeriod = 50 * time.Millisecond

	minWordLength  = 2
	scorePerLetter = 10

	boostBase          = 12.0
	boostPerLetter     = 6.0
	boostBaseDuration  = 900 * time.Millisecond
	boostPerLetterTime = 160 * time.Millisecond

	// Every regenEvery accepted words the rack is rebuilt to keep letters fresh.
	regenEvery = 3
)

// Options configures a race engine. Zero-value fields get sensible defaults;
// Clock and Rand are injectable so tests can script time and randomness.
type Options struct {
	Tier       Tier
	Pool       *Pool
	Clock      func() time.Time
	Rand       *rand.Rand
	Logger     *zap.Logger
	TickPeriod time.Duration
}

type loopHandle struct {
	stop chan struct{}
	done chan struct{}
}

// Engine runs one race session. All exported methods are safe for
// concurrent use; a single mutex guards the whole state since contention
// is UI-frequency only.
type Engine struct {
	tier       Tier
	pool       *Pool
	clock      func() time.Time
	rng        *rand.Rand
	logger     *zap.Logger
	tickPeriod time.Duration

	mu        sync.Mutex
	state     State
	rack      []rune
	selection []int
	used      map[string]struct{}
	score     int
	accepted  int

	playerDist   float64
	opponentDist [OpponentCount]float64
	boostMag     float64
	boostExpiry  time.Time
	lastTick     time.Time
	winner       *Winner

	loop *loopHandle
}

// NewEngine creates a race engine in the ready state with a generated rack.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		tier:       opts.Tier,
		pool:       opts.Pool,
		clock:      opts.Clock,
		rng:        opts.Rand,
		logger:     opts.Logger,
		tickPeriod: opts.TickPeriod,
		state:      StateReady,
		used:       make(map[string]struct{}),
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.tickPeriod <= 0 {
		e.tickPeriod = defaultTickPeriod
	}
	e.regenerateRack()
	return e
}

// Start begins ticking. It may only be called once, from the ready state.
func (e *Engine) Start() error {
	e.mu.Lock()
	if e.state != StateReady {
		state := e.state
		e.mu.Unlock()
		return fmt.Errorf("cannot start race in state %q", state)
	}
	e.state = StateRunning
	e.lastTick = e.clock()
	l := e.startLoopLocked()
	e.mu.Unlock()

	go e.run(l)
	return nil
}

// Pause suspends ticking. Paused wall time is never integrated into the
// simulation. Pause is a no-op unless the race is running.
func (e *Engine) Pause() {
	e.mu.Lock()
	if e.state != StateRunning {
		e.mu.Unlock()
		return
	}
	e.state = StatePaused
	l := e.loop
	e.loop = nil
	e.mu.Unlock()

	stopLoop(l)
}

// Resume continues a paused race. The next tick measures its delta from
// the resume instant, so the pause gap contributes no distance.
func (e *Engine) Resume() {
	e.mu.Lock()
	if e.state != StatePaused {
		e.mu.Unlock()
		return
	}
	e.state = StateRunning
	e.lastTick = e.clock()
	l := e.startLoopLocked()
	e.mu.Unlock()

	go e.run(l)
}

// Stop tears the engine down. No tick fires after Stop returns.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.state == StateStopped {
		e.mu.Unlock()
		return
	}
	e.state = StateStopped
	l := e.loop
	e.loop = nil
	e.mu.Unlock()

	stopLoop(l)
}

// Restart resets distances, boost, score and used words, regenerates the
// rack and re-enters the running state. Tier parameters are kept as fixed
// at session start.
func (e *Engine) Restart() error {
	e.mu.Lock()
	if e.state == StateStopped {
		e.mu.Unlock()
		return fmt.Errorf("cannot restart a stopped race")
	}

	e.playerDist = 0
	for i := range e.opponentDist {
		e.opponentDist[i] = 0
	}
	e.boostMag = 0
	e.boostExpiry = time.Time{}
	e.score = 0
	e.accepted = 0
	e.used = make(map[string]struct{})
	e.winner = nil
	e.regenerateRack()

	e.state = StateRunning
	e.lastTick = e.clock()

	var l *loopHandle
	if e.loop == nil {
		l = e.startLoopLocked()
	}
	e.mu.Unlock()

	if l != nil {
		go e.run(l)
	}
	return nil
}

// SelectTile appends a rack tile to the current selection.
func (e *Engine) SelectTile(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= len(e.rack) {
		return fmt.Errorf("tile index %d out of range", index)
	}
	for _, sel := range e.selection {
		if sel == index {
			return fmt.Errorf("tile %d already selected", index)
		}
	}
	e.selection = append(e.selection, index)
	return nil
}

// ClearSelection drops the current tile selection.
func (e *Engine) ClearSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selection = nil
}

// Shuffle reorders the rack letters without changing their multiset.
// The selection is cleared because tile indices no longer point at the
// letters the player picked.
func (e *Engine) Shuffle() {
	e.mu.Lock()
	defer e.mu.Unlock()
	shuffleRack(e.rack, e.rng)
	e.selection = nil
}

// Submit validates the word assembled from the selected tiles.
// Checks run in a fixed order: too short, too long, not in the pool,
// already used. On acceptance the player is granted a score delta and a
// transient speed boost proportional to word length.
func (e *Engine) Submit() SubmitResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	word := e.candidateWordLocked()

	if len(word) < minWordLength {
		return SubmitResult{Status: StatusTooShort, Word: word}
	}
	if len(word) > e.tier.RackSize {
		return SubmitResult{Status: StatusTooLong, Word: word}
	}
	if !e.pool.Contains(word) {
		return SubmitResult{
			Status:     StatusInvalidWord,
			Word:       word,
			Suggestion: e.pool.Nearest(word),
		}
	}
	if _, ok := e.used[word]; ok {
		return SubmitResult{Status: StatusDuplicateWord, Word: word}
	}

	e.used[word] = struct{}{}
	length := len(word)
	delta := length * scorePerLetter
	e.score += delta

	now := e.clock()
	e.boostMag = boostBase + boostPerLetter*float64(length)
	e.boostExpiry = now.Add(boostBaseDuration + time.Duration(length)*boostPerLetterTime)

	e.selection = nil
	e.accepted++
	if e.accepted%regenEvery == 0 {
		e.regenerateRack()
	}

	e.logger.Debug("word accepted",
		zap.String("word", word),
		zap.Int("score_delta", delta),
		zap.Float64("boost", e.boostMag),
	)

	return SubmitResult{Status: StatusAccepted, Word: word, ScoreDelta: delta}
}

// Snapshot returns a consistent copy of the race state for rendering.
// Progress values are normalized to [0,1].
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Snapshot{
		State:          e.state,
		Rack:           append([]rune(nil), e.rack...),
		Selection:      append([]int(nil), e.selection...),
		Word:           e.candidateWordLocked(),
		Score:          e.score,
		PlayerProgress: clamp01(e.playerDist / e.tier.FinishDistance),
	}
	for i, d := range e.opponentDist {
		s.OpponentProgress[i] = clamp01(d / e.tier.FinishDistance)
	}
	if e.winner != nil {
		w := *e.winner
		s.Winner = &w
	}
	return s
}

// step advances the simulation to now. Caller must hold e.mu and the
// engine must be running.
func (e *Engine) step(now time.Time) {
	delta := now.Sub(e.lastTick).Seconds()
	e.lastTick = now
	if delta <= 0 {
		return
	}

	speed := e.tier.PlayerBaseSpeed
	if now.Before(e.boostExpiry) {
		speed += e.boostMag
	}
	e.playerDist += speed * delta

	for i := range e.opponentDist {
		// Jitter is biased slightly negative, so opponents trail their
		// base speed on average but can still burst ahead.
		jitter := (e.rng.Float64() - 0.4) * 6.0
		e.opponentDist[i] += (e.tier.OpponentBaseSpeeds[i] + jitter) * delta
	}

	// Finish order matters for same-tick ties: the player is checked
	// before any opponent, opponents in ascending index order.
	if e.playerDist >= e.tier.FinishDistance {
		e.finishLocked(Winner{IsPlayer: true})
		return
	}
	for i := range e.opponentDist {
		if e.opponentDist[i] >= e.tier.FinishDistance {
			e.finishLocked(Winner{Opponent: i})
			return
		}
	}
}

func (e *Engine) finishLocked(w Winner) {
	e.state = StateFinished
	e.winner = &w
	e.loop = nil
	e.logger.Info("race finished",
		zap.Bool("player_won", w.IsPlayer),
		zap.Int("opponent", w.Opponent),
		zap.Int("score", e.score),
	)
}

// tick runs one scheduled step. It reports whether the loop should keep going.
func (e *Engine) tick() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateRunning {
		return false
	}
	e.step(e.clock())
	return e.state == StateRunning
}

func (e *Engine) startLoopLocked() *loopHandle {
	l := &loopHandle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	e.loop = l
	return l
}

func (e *Engine) run(l *loopHandle) {
	defer close(l.done)

	ticker := time.NewTicker(e.tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			if !e.tick() {
				return
			}
		}
	}
}

// stopLoop cancels a loop and waits until its goroutine has exited, so no
// tick can fire after the caller returns.
func stopLoop(l *loopHandle) {
	if l == nil {
		return
	}
	close(l.stop)
	<-l.done
}

func (e *Engine) candidateWordLocked() string {
	word := make([]rune, 0, len(e.selection))
	for _, idx := range e.selection {
		word = append(word, e.rack[idx])
	}
	return string(word)
}

// regenerateRack replaces the rack and clears any in-progress selection.
// Caller must hold e.mu (or be the constructor).
func (e *Engine) regenerateRack() {
	rack, seed := generateRack(e.pool, e.tier.RackSize, e.tier.MaxWordLength, e.rng)
	if !e.pool.Contains(seed) {
		e.logger.Debug("no short seed word in pool, using fallback",
			zap.String("seed", seed),
		)
	}
	e.rack = rack
	e.selection = nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
