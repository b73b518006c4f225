// Package recorder writes each game to a JSONL event log and reads it back.
package recorder

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/nxncube"
)

const logVersion = "1.0"

// EventType identifies the type of logged event
type EventType string

const (
	EventShuffleTurn EventType = "shuffle_turn"
	EventTurn        EventType = "turn"
	EventState       EventType = "state_change"
	EventGameEnd     EventType = "game_end"
)

// Event represents a single logged event
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	ElapsedMs int64     `json:"elapsed_ms"`
	EventType EventType `json:"event_type"`
	Turn      string    `json:"turn,omitempty"`
	Moves     int       `json:"moves,omitempty"`
	State     string    `json:"state,omitempty"`
}

// Header is the first line of every log.
type Header struct {
	Type         string    `json:"type"`
	Version      string    `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	GameID       uuid.UUID `json:"game_id"`
	Width        int       `json:"width"`
	ShuffleCount int       `json:"shuffle_count"`
}

// GameLog is a complete game read back from disk.
type GameLog struct {
	Header
	Events []Event
}

// Logger appends the events of one cube to a JSONL stream.
type Logger struct {
	mu   sync.Mutex
	w    io.Writer
	file *os.File
	err  error
	cube *nxncube.Cube
	now  func() time.Time
}

// Start creates a log file for c in logDir and attaches to it.
func Start(logDir string, c *nxncube.Cube) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	filename := fmt.Sprintf("game_%s_%s.jsonl", time.Now().Format("20060102_150405"), c.ID().String()[:8])
	file, err := os.Create(filepath.Join(logDir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	l, err := NewLogger(file, c)
	if err != nil {
		file.Close()
		return nil, err
	}
	l.file = file
	return l, nil
}

// NewLogger writes the header for c to w and subscribes to its events.
func NewLogger(w io.Writer, c *nxncube.Cube) (*Logger, error) {
	l := &Logger{w: w, cube: c, now: time.Now}
	header := Header{
		Type:         "header",
		Version:      logVersion,
		CreatedAt:    l.now(),
		GameID:       c.ID(),
		Width:        c.Width(),
		ShuffleCount: c.ShuffleCount(),
	}
	if err := l.writeJSON(header); err != nil {
		return nil, fmt.Errorf("failed to write log header: %w", err)
	}

	c.OnRotationEnd().Add(l.rotationEnded)
	c.OnStateChange().Add(func(s nxncube.GameState) {
		l.write(Event{EventType: EventState, State: s.String()})
	})
	c.OnGameEnd().Add(func(struct{}) {
		l.write(Event{EventType: EventGameEnd, Moves: c.Moves()})
	})
	return l, nil
}

func (l *Logger) rotationEnded(r *nxncube.Rotation) {
	if !r.Counted() {
		l.write(Event{EventType: EventShuffleTurn, Turn: r.Turn().Notation()})
		return
	}
	// the counter is bumped after rotation observers run
	l.write(Event{EventType: EventTurn, Turn: r.Turn().Notation(), Moves: l.cube.Moves() + 1})
}

func (l *Logger) write(e Event) {
	e.Timestamp = l.now()
	e.ElapsedMs = l.cube.Elapsed().Milliseconds()
	l.writeJSON(e)
}

func (l *Logger) writeJSON(v any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil {
		return l.err
	}
	data, err := json.Marshal(v)
	if err != nil {
		l.err = err
		return err
	}
	if _, err := l.w.Write(append(data, '\n')); err != nil {
		l.err = err
		return err
	}
	return nil
}

// Err returns the first write error, if any. Writing stops after it.
func (l *Logger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close closes the log file
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// FilePath returns the current log file path
func (l *Logger) FilePath() string {
	if l.file != nil {
		return l.file.Name()
	}
	return ""
}

// LoadLog loads a game log from a JSONL file
func LoadLog(path string) (*GameLog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	return ReadLog(file)
}

// ReadLog parses a game log from r.
func ReadLog(r io.Reader) (*GameLog, error) {
	log := &GameLog{Events: make([]Event, 0)}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		// First line is the header
		if lineNum == 1 {
			if err := json.Unmarshal(line, &log.Header); err != nil {
				return nil, fmt.Errorf("failed to parse header: %w", err)
			}
			if log.Type != "header" {
				return nil, fmt.Errorf("line 1 is %q, not a header", log.Type)
			}
			continue
		}

		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("failed to parse event at line %d: %w", lineNum, err)
		}
		log.Events = append(log.Events, event)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}
	if lineNum == 0 {
		return nil, fmt.Errorf("log is empty")
	}

	return log, nil
}

// Turns returns every turn in the log, shuffle turns included, in the order
// they were committed.
func (g *GameLog) Turns() ([]nxncube.Turn, error) {
	var turns []nxncube.Turn
	for _, e := range g.Events {
		if e.EventType != EventTurn && e.EventType != EventShuffleTurn {
			continue
		}
		t, err := nxncube.ParseTurn(e.Turn)
		if err != nil {
			return nil, fmt.Errorf("bad turn %q: %w", e.Turn, err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// PlayerTurns returns the counted turns only.
func (g *GameLog) PlayerTurns() []Event {
	var out []Event
	for _, e := range g.Events {
		if e.EventType == EventTurn {
			out = append(out, e)
		}
	}
	return out
}

// Replay applies every logged turn to a fresh cube of the logged width and
// returns it, so callers can compare the end state. Turns commit instantly.
func (g *GameLog) Replay(opts ...nxncube.Option) (*nxncube.Cube, error) {
	turns, err := g.Turns()
	if err != nil {
		return nil, err
	}
	opts = append(opts, nxncube.WithAnimationDuration(0))
	c, err := nxncube.New(g.Width, g.ShuffleCount, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cube: %w", err)
	}
	for i, t := range turns {
		if _, ok := c.Begin(t, 1); !ok {
			return nil, fmt.Errorf("turn %d (%s) rejected", i+1, t.Notation())
		}
	}
	return c, nil
}
