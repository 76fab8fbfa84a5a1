/*
PURPOSE:
  Owns one interactive engine process end to end: launch, protocol
  handshake, bounded response reads, orderly termination.
  The tactical flavor drives a single session through a whole suite.

REQUIREMENTS:
  User-specified:
  - Handshake: send the capability command, wait for its acknowledgement,
    then probe readiness and wait for the readiness token.
  - Best-move queries: new game, set position, search to depth, take the
    first token after the completion marker.
  - Termination must happen on every exit path and tolerate a peer that
    already went away.

  Implementation-discovered:
  - Protocol tokens are matched against stdout only. Stderr is drained to
    the diagnostic log; an engine that prints "readyok" on stderr has not
    said readyok.
  - Every blocking read is bounded by a per-read timeout, so a hung engine
    stalls one read, not the whole run. A line of output resets the clock;
    a thinking engine that keeps talking stays alive.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (tactical scorer), internal/cli
  - Uses: internal/output for diagnostics

ERROR HANDLING:
  - End-of-stream while waiting for a best move is NOT an error: it yields
    an empty move, which the scorer counts as a miss.
  - End-of-stream during the handshake IS an error; the engine never came up.
  - Read timeouts surface as TimeoutError with the configured bound.

IMPLEMENTATION RULES:
  - States: Idle -> Ready -> Closed. Query before handshake is an error.
  - Terminate is idempotent: quit, bounded grace wait, kill on overrun.

USAGE:
  s, err := engine.StartSession(bin, cfg.ReadTimeout)
  defer s.Terminate()
  err = s.Initialise()
  move, err := s.BestMove(fen, depth)

SELF-HEALING INSTRUCTIONS:
  - A handshake timeout usually means the binary is not a protocol engine
    at all; run it by hand and type "uci".

RELATED FILES:
  - internal/engine/tactical.go - the only production driver.

MAINTENANCE:
  - Keep the protocol strings in one place here; nothing else knows them.
*/

package engine

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/daryltucker/rook-runner/internal/output"
)

// quitGrace bounds how long Terminate waits for the engine to exit after
// being told to quit.
const quitGrace = 5 * time.Second

type sessionState int

const (
	stateIdle sessionState = iota
	stateReady
	stateClosed
)

func (s sessionState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateReady:
		return "ready"
	default:
		return "closed"
	}
}

// Session wraps exactly one live engine process. It is not safe for
// concurrent use; suite execution is strictly sequential.
type Session struct {
	stdin   io.WriteCloser
	lines   <-chan string
	done    chan struct{}
	proc    *exec.Cmd
	timeout time.Duration
	state   sessionState
}

// NewSession wires a session around explicit pipes. Production code goes
// through StartSession; tests drive this directly with in-memory pipes.
// The reader goroutine parks on done once Terminate runs, so a line that
// arrives after its wait was abandoned cannot pin the goroutine for the
// process lifetime.
func NewSession(stdin io.WriteCloser, stdout io.Reader, timeout time.Duration) *Session {
	lines := make(chan string, 16)
	done := make(chan struct{})
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return &Session{stdin: stdin, lines: lines, done: done, timeout: timeout, state: stateIdle}
}

// StartSession launches the engine binary with no arguments and connects
// its pipes. Stderr is drained into the debug log, never parsed.
func StartSession(bin string, timeout time.Duration) (*Session, error) {
	cmd := exec.Command(bin)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start engine %s: %w", bin, err)
	}
	output.Logger.Debug("engine session started", "bin", bin, "pid", cmd.Process.Pid)

	go func() {
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			output.Logger.Debug("engine stderr", "line", scanner.Text())
		}
	}()

	s := NewSession(stdin, stdout, timeout)
	s.proc = cmd
	return s, nil
}

func (s *Session) send(command string) error {
	if _, err := io.WriteString(s.stdin, command+"\n"); err != nil {
		return fmt.Errorf("write %q: %w", command, err)
	}
	return nil
}

// waitFor consumes stdout lines until one contains token. Receiving any
// line resets the read clock.
func (s *Session) waitFor(token string) error {
	timer := time.NewTimer(s.timeout)
	defer timer.Stop()
	for {
		select {
		case line, ok := <-s.lines:
			if !ok {
				return fmt.Errorf("engine closed its output while waiting for %q", token)
			}
			if strings.Contains(line, token) {
				return nil
			}
			timer.Reset(s.timeout)
		case <-timer.C:
			return &TimeoutError{Op: fmt.Sprintf("wait for %q", token), Timeout: s.timeout}
		}
	}
}

// Initialise performs the capability handshake and the readiness probe,
// moving the session from Idle to Ready.
func (s *Session) Initialise() error {
	if s.state != stateIdle {
		return fmt.Errorf("cannot initialise a %s session", s.state)
	}
	if err := s.send("uci"); err != nil {
		return err
	}
	if err := s.waitFor("uciok"); err != nil {
		return err
	}
	if err := s.send("isready"); err != nil {
		return err
	}
	if err := s.waitFor("readyok"); err != nil {
		return err
	}
	s.state = stateReady
	return nil
}

// BestMove asks the engine for its move on fen at depth and returns the
// first token after the completion marker. An engine that closes its output
// without answering yields an empty move, not an error.
func (s *Session) BestMove(fen string, depth int) (string, error) {
	if s.state != stateReady {
		return "", fmt.Errorf("cannot query a %s session", s.state)
	}
	commands := []string{
		"ucinewgame",
		"position fen " + fen,
		fmt.Sprintf("go depth %d", depth),
	}
	for _, c := range commands {
		if err := s.send(c); err != nil {
			return "", err
		}
	}

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()
	for {
		select {
		case line, ok := <-s.lines:
			if !ok {
				return "", nil
			}
			if strings.HasPrefix(line, "bestmove") {
				fields := strings.Fields(line)
				if len(fields) >= 2 {
					return fields[1], nil
				}
				return "", nil
			}
			timer.Reset(s.timeout)
		case <-timer.C:
			return "", &TimeoutError{Op: fmt.Sprintf("bestmove at depth %d", depth), Timeout: s.timeout}
		}
	}
}

// Terminate tells the engine to quit and reaps it, killing after a bounded
// grace period. Safe to call more than once and on every exit path; a write
// failure here just means the engine beat us to it.
func (s *Session) Terminate() error {
	if s.state == stateClosed {
		return nil
	}
	s.state = stateClosed
	close(s.done)

	if err := s.send("quit"); err != nil {
		output.Logger.Debug("quit write failed, engine already gone", "error", err)
	}
	s.stdin.Close()

	if s.proc == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- s.proc.Wait() }()
	select {
	case err := <-done:
		return err
	case <-time.After(quitGrace):
		_ = s.proc.Process.Kill()
		<-done
		return fmt.Errorf("engine did not exit within %s of quit; killed", quitGrace)
	}
}
