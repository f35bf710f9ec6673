// Package uci implements the line-oriented protocol loop of spec.md §6: it
// translates textual commands read from stdin into calls on an
// engine.Engine and writes bestmove/info/id lines to stdout. Nothing but
// protocol lines goes to stdout; diagnostics go through the engine's
// logger, which is configured to write to stderr.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/engine"
)

// EngineName is emitted in response to the "uci" command.
const EngineName = "Corvid"

// EngineAuthor is emitted alongside EngineName.
const EngineAuthor = "corvidchess"

// Loop reads UCI commands from in and writes protocol output to out until
// "quit" is received or in reaches EOF.
type Loop struct {
	eng *engine.Engine
	out io.Writer
}

// NewLoop builds a protocol loop around an already-constructed engine.
func NewLoop(eng *engine.Engine, out io.Writer) *Loop {
	return &Loop{eng: eng, out: out}
}

// Run is the blocking stdin/stdout loop. It returns when "quit" is read or
// the input stream ends.
func (l *Loop) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if l.dispatch(line) {
			return
		}
	}
}

// dispatch handles one line, returning true if the loop should terminate.
func (l *Loop) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "uci":
		l.handleUCI()
	case "isready":
		l.println("readyok")
	case "ucinewgame":
		l.eng.Restart()
	case "position":
		l.handlePosition(args)
	case "go":
		l.handleGo(args)
	case "stop":
		l.eng.Stop(l.emitInfo, l.emitBestMove)
	case "setoption":
		l.handleSetOption(args)
	case "quit":
		l.eng.Terminate()
		return true
	default:
		l.println(fmt.Sprintf("Unknown command |%s|", line))
	}
	return false
}

func (l *Loop) handleUCI() {
	l.println(fmt.Sprintf("id name %s", EngineName))
	l.println(fmt.Sprintf("id author %s", EngineAuthor))
	l.println("option name Hash type spin default 64 min 1 max 4096")
	l.println("option name OwnBook type check default true")
	l.println("option name BookFile type string default <empty>")
	l.println("option name Threads type spin default 1 min 1 max 1")
	l.println("uciok")
}

// handlePosition implements §6's "position startpos|fen ... [moves ...]".
func (l *Loop) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var fen string
	var rest []string
	switch args[0] {
	case "startpos":
		rest = args[1:]
	case "fen":
		if len(args) < 7 {
			l.println(fmt.Sprintf("Unknown command |position %s|", strings.Join(args, " ")))
			return
		}
		fen = strings.Join(args[1:7], " ")
		rest = args[7:]
	default:
		l.println(fmt.Sprintf("Unknown command |position %s|", strings.Join(args, " ")))
		return
	}

	var moves []string
	if len(rest) > 0 && rest[0] == "moves" {
		moves = rest[1:]
	}

	if err := l.eng.Update(fen, moves, fen == ""); err != nil {
		l.println(fmt.Sprintf("Unknown command |position %s|: %v", strings.Join(args, " "), err))
	}
}

// handleGo implements §6's "go [wtime W] [btime B] [movetime M]": M wins
// if present, else the clock for the side to move.
func (l *Loop) handleGo(args []string) {
	var wtime, btime, movetime int
	hasMovetime := false
	for i := 0; i+1 < len(args); i += 2 {
		v, err := strconv.Atoi(args[i+1])
		if err != nil {
			continue
		}
		switch args[i] {
		case "wtime":
			wtime = v
		case "btime":
			btime = v
		case "movetime":
			movetime = v
			hasMovetime = true
		}
	}

	budget := movetime
	if !hasMovetime {
		if l.eng.Position().SideToMove() == board.ColorWhite {
			budget = wtime
		} else {
			budget = btime
		}
	}

	l.eng.Go(budget, l.emitInfo, l.emitBestMove)
}

// handleSetOption implements §6's "setoption name <k> [value <v>]".
func (l *Loop) handleSetOption(args []string) {
	name, value, ok := parseSetOption(args)
	if !ok {
		l.println(fmt.Sprintf("Unknown command |setoption %s|", strings.Join(args, " ")))
		return
	}
	l.eng.SetOption(name, value)
}

// parseSetOption splits "name <k...> value <v...>" into the name and value
// tokens, supporting multi-word names and values as UCI allows.
func parseSetOption(args []string) (name, value string, ok bool) {
	if len(args) == 0 || args[0] != "name" {
		return "", "", false
	}
	i := 1
	var nameParts []string
	for i < len(args) && args[i] != "value" {
		nameParts = append(nameParts, args[i])
		i++
	}
	name = strings.Join(nameParts, " ")
	if i < len(args) && args[i] == "value" {
		value = strings.Join(args[i+1:], " ")
	}
	return name, value, name != ""
}

func (l *Loop) emitBestMove(moveUCI string) {
	l.println(fmt.Sprintf("bestmove %s", moveUCI))
}

// emitInfo formats one iteration's result per SPEC_FULL §6: depth, score,
// nodes, time, nps, and a single-move pv.
func (l *Loop) emitInfo(r engine.IterativeResult) {
	scoreField := fmt.Sprintf("cp %d", r.Score)
	if r.Score <= -engine.SubMateThreshold || r.Score >= engine.SubMateThreshold {
		mateIn := (engine.Mate - abs(r.Score)) / 100
		if r.Score < 0 {
			mateIn = -mateIn
		}
		scoreField = fmt.Sprintf("mate %d", mateIn)
	}

	elapsedMS := l.eng.LastElapsed().Milliseconds()
	if elapsedMS == 0 {
		elapsedMS = 1
	}
	nodes := l.eng.LastNodes()
	hashfull := l.eng.Hashfull()
	nps := nodes * 1000 / elapsedMS

	pv := ""
	if r.HasMove {
		pv = r.Move.ToUCI()
	}

	l.println(fmt.Sprintf("info depth %d score %s nodes %d time %d nps %d hashfull %d pv %s",
		r.Depth, scoreField, nodes, elapsedMS, nps, hashfull, pv))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (l *Loop) println(s string) {
	fmt.Fprintln(l.out, s)
}
