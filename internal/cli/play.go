package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/config"
	"github.com/SeamusWaldron/nxncube/internal/recorder"
	"github.com/SeamusWaldron/nxncube/internal/sound"
	"github.com/SeamusWaldron/nxncube/pkg/loop"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in the terminal",
	Long: `Start an interactive TUI showing the cube unfolded as a cross.

Press the mouse on a sticker and drag onto a neighbouring sticker to turn
that layer. The timer starts once the shuffle finishes.

Keyboard shortcuts:
  n       - New game with the current settings
  +/-     - Change the cube width (2-7) for the next game
  ]/[     - Change the shuffle count for the next game
  u       - Undo the last turn (counts as a move)
  q/Esc   - Quit`,
	RunE: runPlay,
}

var (
	playWidth   int
	playShuffle int
	playSeed    uint64
	playSound   bool
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVarP(&playWidth, "width", "w", 0, "Cube width (default from config)")
	playCmd.Flags().IntVarP(&playShuffle, "shuffle", "s", -1, "Shuffle turns (default from config)")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "Shuffle seed (0 picks one at random)")
	playCmd.Flags().BoolVar(&playSound, "sound", false, "Enable sound effects")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// headerLines is how many lines View prints above the net.
const headerLines = 4

// Messages
type frameMsg time.Time

// Model
type playModel struct {
	cfg     *config.Config
	game    *nxncube.Game
	loop    *loop.Loop
	log     *slog.Logger
	sounds  *sound.Manager
	tracker *nxncube.Tracker
	events  *recorder.Logger

	// Player turns that can still be undone, and the rotations that are
	// undoing one
	undoStack []nxncube.Turn
	undoing   bool
	undoRots  map[*nxncube.Rotation]bool

	// Settings for the next game
	width   int
	shuffle int

	// Readouts, updated from cube events
	moves  int
	clock  string
	solved bool

	lastFrame time.Time
	dragging  bool
	err       error
	quitting  bool
}

func newPlayModel(cfg *config.Config, logger *slog.Logger, sounds *sound.Manager) *playModel {
	start := time.Now()
	l := loop.New(start)
	opts := cubeOptions(cfg, cfg.Game.Seed, logger)
	opts = append(opts, nxncube.WithLoop(l))

	m := &playModel{
		cfg:       cfg,
		game:      nxncube.NewGame(opts...),
		loop:      l,
		log:       logger,
		sounds:    sounds,
		width:     cfg.Game.Width,
		shuffle:   cfg.Game.ShuffleCount,
		clock:     nxncube.FormatClock(0),
		lastFrame: start,
	}
	if m.log == nil {
		m.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m.game.OnCubeCreated().Add(m.bind)
	return m
}

// bind subscribes the readouts, sounds and event log to a new cube.
func (m *playModel) bind(c *nxncube.Cube) {
	m.solved = false
	m.dragging = false
	m.undoStack = nil
	m.undoRots = make(map[*nxncube.Rotation]bool)

	c.OnMoveMade().Add(func(n int) { m.moves = n })
	c.OnClockTick().Add(func(s string) { m.clock = s })
	c.OnRotationStart().Add(func(r *nxncube.Rotation) {
		if m.undoing {
			m.undoRots[r] = true
		}
		m.sounds.PlayRotate()
	})
	c.OnRotationEnd().Add(func(r *nxncube.Rotation) {
		switch {
		case m.undoRots[r]:
			delete(m.undoRots, r)
		case r.Counted():
			m.undoStack = append(m.undoStack, r.Turn())
		}
	})
	c.OnGameEnd().Add(func(struct{}) {
		m.solved = true
		m.sounds.PlayWin()
	})
	m.tracker = nxncube.NewTracker(c)

	if m.events != nil {
		m.events.Close()
		m.events = nil
	}
	if m.cfg.Log.Dir != "" {
		events, err := recorder.Start(m.cfg.Log.Dir, c)
		if err != nil {
			m.err = err
			return
		}
		m.events = events
		m.log.Info("logging game", slog.String("path", events.FilePath()))
	}
}

func (m *playModel) newGame() {
	if _, err := m.game.New(m.width, m.shuffle); err != nil {
		m.err = err
		return
	}
	m.err = nil
}

func (m *playModel) Init() tea.Cmd {
	m.newGame()
	return m.frameCmd()
}

func (m *playModel) frameCmd() tea.Cmd {
	return tea.Tick(m.cfg.Timing.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quit()
			return m, tea.Quit

		case "n":
			m.sounds.PlayClick()
			m.newGame()

		case "+", "=":
			if m.width < config.MaxWidth {
				m.width++
			}

		case "-", "_":
			if m.width > config.MinWidth {
				m.width--
			}

		case "]":
			m.shuffle = min(m.shuffle+5, config.MaxShuffle)

		case "[":
			m.shuffle = max(m.shuffle-5, 0)

		case "u":
			m.undo()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case frameMsg:
		// Advance the cube loop by the real time since the last frame
		now := time.Time(msg)
		m.loop.Advance(now.Sub(m.lastFrame))
		m.lastFrame = now
		return m, m.frameCmd()
	}

	return m, nil
}

func (m *playModel) handleMouse(msg tea.MouseMsg) {
	c := m.game.Cube()
	if c == nil {
		return
	}
	f := NewNet(c).At(msg.X, msg.Y-headerLines)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = c.PointerDown(f)

	case msg.Action == tea.MouseActionMotion && m.dragging:
		if f == nil {
			return
		}
		for _, a := range c.PointerMove(f) {
			m.log.Debug("drag turn", slog.String("turn", a.Turn.Notation()), slog.Bool("accepted", a.Accepted))
		}

	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
		c.PointerUp()
	}
}

// undo turns back the most recent player turn that has committed and has
// not been undone yet.
func (m *playModel) undo() {
	c := m.game.Cube()
	if c == nil || !c.Enabled() || len(m.undoStack) == 0 {
		return
	}
	last := m.undoStack[len(m.undoStack)-1]

	m.undoing = true
	_, ok := c.Begin(last.Inverse(), 1)
	m.undoing = false
	if !ok {
		m.log.Debug("undo rejected", slog.String("turn", last.Notation()))
		return
	}
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
}

func (m *playModel) quit() {
	m.quitting = true
	m.game.Close()
	if m.events != nil {
		if err := m.events.Close(); err != nil {
			m.log.Warn("failed to close game log", slog.Any("error", err))
		}
	}
	m.sounds.Cleanup()
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	c := m.game.Cube()

	// Header: must stay headerLines tall so mouse rows line up with the net
	b.WriteString(titleStyle.Render("nxncube"))
	b.WriteString("\n")
	b.WriteString(readout("MOVES", fmt.Sprintf("%d", m.moves)))
	b.WriteString(readout("TIMER", m.clock))
	b.WriteString(readout("WIDTH", fmt.Sprintf("%d", m.width)))
	b.WriteString(readout("SHUFFLE", fmt.Sprintf("%d", m.shuffle)))
	b.WriteString("\n")
	status := ""
	if c != nil {
		status = labelStyle.Render(c.State().DisplayName())
		if m.tracker != nil && c.State() == nxncube.StatePlaying {
			status += labelStyle.Render(fmt.Sprintf("  faces %d/6", m.tracker.SolvedFaces()))
		}
	}
	b.WriteString(status)
	b.WriteString("\n\n")

	if c != nil {
		b.WriteString(NewNet(c).Render())
		b.WriteString("\n\n")
	}

	if m.solved {
		b.WriteString(winStyle.Render("You solved it!"))
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %d moves in %s", m.moves, m.clock)))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("drag stickers to turn | n=new +/-=width [/]=shuffle u=undo q=quit"))
	b.WriteString("\n")
	return b.String()
}

func readout(label, value string) string {
	return labelStyle.Render(label+" ") + valueStyle.Render(value) + "   "
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if playWidth != 0 {
		cfg.Game.Width = playWidth
	}
	if playShuffle >= 0 {
		cfg.Game.ShuffleCount = playShuffle
	}
	if playSeed != 0 {
		cfg.Game.Seed = playSeed
	}
	if playSound {
		cfg.Sound.Enabled = true
	}
	if err := validateGame(cfg.Game.Width, cfg.Game.ShuffleCount); err != nil {
		return err
	}

	// The TUI owns the terminal, so verbose output goes to a file
	var logger *slog.Logger
	if verbose && cfg.Log.Debug != "" {
		f, err := os.OpenFile(cfg.Log.Debug, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
		logger = newLogger(f, cfg.Log.Level)
	}

	sounds := sound.NewManager(cfg.Sound.Volume)
	if cfg.Sound.Enabled {
		if err := sounds.Initialize(); err != nil {
			// Sound is optional
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		}
	}

	model := newPlayModel(cfg, logger, sounds)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
