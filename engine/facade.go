package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/book"
)

// State is one of the engine facade's three externally observable states
// (§4.11).
type State int

const (
	Idle State = iota
	Searching
	Terminated
)

// Engine is the facade of §4.1: it owns the canonical position, the book
// cursor, the killer table, the transposition table, and the nodes
// counter, and implements go/stop/update/restart/evaluate by composing the
// search, book, and time-manager components.
type Engine struct {
	pos     board.Position
	killers *killerTable
	tt      *TranspositionTable
	book    *book.Book
	cursor  *book.Cursor
	options Options

	state   State
	gameID  uuid.UUID
	log     zerolog.Logger
	lastCtx *SearchContext
}

// New constructs an engine facade with the given options and base logger.
// The book file named in opts, if any, is loaded eagerly; a missing or
// empty path degrades to no book (§4.2, §7).
func New(opts Options, logger zerolog.Logger) (*Engine, error) {
	b, err := book.Load(opts.BookFile)
	if err != nil {
		logger.Warn().Err(err).Str("book_file", opts.BookFile).Msg("failed to load book, continuing without one")
		b = &book.Book{}
	}
	e := &Engine{
		pos:     board.MustParseFEN(StartFEN),
		killers: newKillerTable(),
		tt:      NewTranspositionTable(opts.Hash),
		book:    b,
		options: opts,
		state:   Idle,
		gameID:  uuid.New(),
	}
	e.cursor = e.book.NewCursor()
	e.log = logger.With().Str("game_id", e.gameID.String()).Logger()
	e.log.Info().Int("hash_mb", opts.Hash).Bool("own_book", opts.OwnBook).Str("book_file", opts.BookFile).Msg("engine constructed")
	return e, nil
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position returns the facade's current position (for UCI display/testing).
func (e *Engine) Position() board.Position { return e.pos }

// findMove resolves a UCI long-algebraic move string against the legal
// moves of the current position.
func (e *Engine) findMove(uciStr string) (board.Move, bool) {
	for _, m := range e.pos.GenerateLegalMoves() {
		if m.ToUCI() == uciStr {
			return m, true
		}
	}
	return board.Move{}, false
}

// Update implements §4.1's update(position_spec, moves[]): reinitialize
// from FEN or the start position, then replay moves in order. If replaying
// from the start position, the book cursor advances along each played move
// so it stays in sync with game play (§4.2); replaying from an arbitrary
// FEN has no well-defined book continuation, so the cursor goes null.
func (e *Engine) Update(fen string, moves []string, fromStart bool) error {
	var pos board.Position
	if fen == "" {
		pos, _ = board.ParseFEN(StartFEN)
	} else {
		p, err := board.ParseFEN(fen)
		if err != nil {
			return err
		}
		pos = p
	}
	e.pos = pos

	if fromStart {
		e.cursor = e.book.NewCursor()
	} else {
		e.cursor = &book.Cursor{}
	}

	for _, uciStr := range moves {
		m, ok := e.findMove(uciStr)
		if !ok {
			e.log.Warn().Str("move", uciStr).Msg("move is not legal in current position, ignoring rest")
			break
		}
		e.pos = e.pos.Apply(m)
		if fromStart {
			e.cursor.Advance(uciStr)
		}
	}
	return nil
}

// Restart implements §4.1's restart(): reset position to start, clear TT,
// reset killers, reset book cursor to root, and start a fresh game id so
// subsequent log lines correlate to the new game.
func (e *Engine) Restart() {
	e.pos = board.MustParseFEN(StartFEN)
	e.tt.Clear()
	e.killers.clear()
	e.cursor = e.book.NewCursor()
	e.gameID = uuid.New()
	e.log = e.log.With().Str("game_id", e.gameID.String()).Logger()
	e.state = Idle
	e.log.Info().Msg("engine restarted")
}

// Evaluate implements §4.1's evaluate(): the static evaluator's score of
// the current position from side-to-move's perspective.
func (e *Engine) Evaluate() int {
	score := Evaluate(e.pos)
	if e.pos.SideToMove() == board.ColorBlack {
		score = -score
	}
	return score
}

// Go implements §4.1's go(time_budget_ms). onBestMove is called exactly
// once with the chosen move's UCI string, the output collaborator's hook
// (§6's `bestmove` line is the UCI package's concern, not this one's).
func (e *Engine) Go(budgetMS int, onInfo func(IterativeResult), onBestMove func(string)) {
	e.state = Searching
	defer func() { e.state = Idle }()

	legalMoves := e.pos.GenerateLegalMoves()
	if len(legalMoves) == 0 {
		e.log.Warn().Msg("go called with no legal moves")
		onBestMove("0000")
		return
	}

	if e.options.OwnBook {
		if mv, ok := e.cursor.Best(); ok {
			if played, ok := e.findMove(mv); ok {
				e.pos = e.pos.Apply(played)
				e.cursor.Advance(mv)
				e.log.Info().Str("move", mv).Msg("book hit")
				onBestMove(mv)
				return
			}
		}
	}

	deadline := AllocateTime(budgetMS)
	ctx := NewSearchContext(deadline)
	e.lastCtx = ctx

	s := &searcher{
		tt:          e.tt,
		killers:     e.killers,
		ctx:         ctx,
		useNullMove: true,
		useQuiesce:  true,
	}

	result := s.iterativeDeepen(e.pos, MaxDepth, onInfo)

	var chosen board.Move
	if result.HasMove {
		chosen = result.Move
	} else {
		chosen = legalMoves[0]
	}

	e.pos = e.pos.Apply(chosen)
	moveUCI := chosen.ToUCI()
	e.cursor.Advance(moveUCI)
	e.log.Info().Str("move", moveUCI).Int("depth", result.Depth).Int("score", result.Score).Int64("nodes", ctx.Nodes()).Msg("bestmove")
	onBestMove(moveUCI)
}

// Stop implements §4.1's stop(): equivalent to go(0), emitting the best
// move discovered so far. Per §4.11, this engine's search loop is
// cooperative and single-threaded, so there is no separate in-flight
// search to interrupt concurrently — stop and go(0) are one and the same
// operation here, and simultaneous async stop during go is a non-goal.
func (e *Engine) Stop(onInfo func(IterativeResult), onBestMove func(string)) {
	if e.lastCtx != nil {
		e.lastCtx.Stop()
	}
	e.Go(0, onInfo, onBestMove)
}

// State reports the facade's current externally observable state (§4.11).
func (e *Engine) State() State { return e.state }

// Terminate moves the facade to its terminal state (§4.11), reached on the
// UCI `quit` command. No further operations are valid after this.
func (e *Engine) Terminate() {
	if e.lastCtx != nil {
		e.lastCtx.Stop()
	}
	e.state = Terminated
}

// SetOption applies a UCI setoption name/value pair (§4.13). Hash changes
// rebuild the transposition table at the new size; BookFile changes reload
// the book and reset the cursor to its root.
func (e *Engine) SetOption(name, value string) {
	prevHash := e.options.Hash
	prevBookFile := e.options.BookFile

	if !e.options.SetOption(name, value) {
		e.log.Warn().Str("name", name).Str("value", value).Msg("unknown option, ignored")
		return
	}

	if e.options.Threads != 1 {
		e.log.Warn().Int("threads", e.options.Threads).Msg("multithreaded search is a non-goal; ignoring")
	}

	if e.options.Hash != prevHash {
		e.tt = NewTranspositionTable(e.options.Hash)
		e.log.Info().Int("hash_mb", e.options.Hash).Msg("transposition table resized")
	}

	if e.options.BookFile != prevBookFile {
		b, err := book.Load(e.options.BookFile)
		if err != nil {
			e.log.Warn().Err(err).Str("book_file", e.options.BookFile).Msg("failed to load book, keeping previous")
			return
		}
		e.book = b
		e.cursor = e.book.NewCursor()
		e.log.Info().Str("book_file", e.options.BookFile).Msg("book reloaded")
	}
}

// LastElapsed returns the wall-clock time spent on the most recent go/stop
// cycle's search, or zero if none has run yet.
func (e *Engine) LastElapsed() time.Duration {
	if e.lastCtx == nil {
		return 0
	}
	return e.lastCtx.Elapsed()
}

// LastNodes returns the node count of the most recent go/stop cycle.
func (e *Engine) LastNodes() int64 {
	if e.lastCtx == nil {
		return 0
	}
	return e.lastCtx.Nodes()
}

// Hashfull reports the transposition table's fill level in permille,
// sampled the way blunext-chess's engine/tt.go already does it (§9
// Supplemented features).
func (e *Engine) Hashfull() int {
	return e.tt.Hashfull()
}
