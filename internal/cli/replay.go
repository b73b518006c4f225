package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/recorder"
)

var replayCmd = &cobra.Command{
	Use:   "replay [log-file]",
	Short: "Replay a logged game",
	Long: `Replay a game from its JSONL log and print the resulting cube.

If no log file is specified, lists available log files.

Usage:
  nxncube replay                    # List available logs
  nxncube replay <log-file>         # Replay specific log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logDir := cfg.Log.Dir

	// If no args, list available logs
	if len(args) == 0 {
		return listLogs(cmd, logDir)
	}

	logPath := args[0]
	// If not an absolute path, look in log directory
	if !filepath.IsAbs(logPath) && logDir != "" {
		if _, err := os.Stat(logPath); err != nil {
			logPath = filepath.Join(logDir, logPath)
		}
	}

	log, err := recorder.LoadLog(logPath)
	if err != nil {
		return fmt.Errorf("failed to load log: %w", err)
	}
	c, err := log.Replay()
	if err != nil {
		return fmt.Errorf("failed to replay: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Loaded log: %s\n", logPath)
	fmt.Fprintf(w, "Game:    %s\n", log.GameID)
	fmt.Fprintf(w, "Created: %s\n", log.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Cube:    %dx%dx%d, shuffle %d\n", log.Width, log.Width, log.Width, log.ShuffleCount)

	player := log.PlayerTurns()
	fmt.Fprintf(w, "Moves:   %d\n", len(player))
	if n := len(player); n > 0 {
		last := time.Duration(player[n-1].ElapsedMs) * time.Millisecond
		fmt.Fprintf(w, "Time:    %s\n", nxncube.FormatClock(last))
	}
	fmt.Fprintf(w, "Solved:  %v\n", c.IsSolved())
	fmt.Fprintln(w)

	var notations []string
	for _, e := range player {
		notations = append(notations, e.Turn)
	}
	if len(notations) > 0 {
		fmt.Fprintln(w, wrapTurns(notations, 60))
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, NewNet(c).PlainText())
	return nil
}

func listLogs(cmd *cobra.Command, logDir string) error {
	w := cmd.OutOrStdout()
	if logDir == "" {
		fmt.Fprintln(w, "Game logging is off. Set log.dir in the config file to enable it.")
		return nil
	}

	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, "No log files found. Play a game first with: nxncube play")
			return nil
		}
		return err
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl") {
			logs = append(logs, e.Name())
		}
	}

	if len(logs) == 0 {
		fmt.Fprintln(w, "No log files found. Play a game first with: nxncube play")
		return nil
	}

	// Sort by name (which includes timestamp, so newest last)
	sort.Strings(logs)

	fmt.Fprintln(w, "Available log files:")
	fmt.Fprintln(w)
	for _, log := range logs {
		fmt.Fprintf(w, "  %s\n", log)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: nxncube replay <filename>")

	return nil
}

// wrapTurns groups notations into lines of about width characters.
func wrapTurns(notations []string, width int) string {
	var lines []string
	var line string
	for _, n := range notations {
		switch {
		case line == "":
			line = n
		case len(line)+len(n)+1 > width:
			lines = append(lines, line)
			line = n
		default:
			line += " " + n
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
