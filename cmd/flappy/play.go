package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cli-flappy/internal/config"
	"github.com/vovakirdan/cli-flappy/internal/core"
	"github.com/vovakirdan/cli-flappy/internal/games/flappy"
	"github.com/vovakirdan/cli-flappy/internal/platform/tui"
	"github.com/vovakirdan/cli-flappy/internal/storage"
)

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	highscores := openHighscores(cfg.Storage.Dir)

	if show, _ := cmd.Flags().GetBool("highscore"); show {
		return printHighscore(cmd.OutOrStdout(), highscores)
	}

	seed, _ := cmd.Flags().GetInt64("seed")
	rt := core.RuntimeConfig{
		Resolution: resolveTerminal(),
		HeaderRows: cfg.Loop.HeaderRows,
		Seed:       resolveSeed(seed),
	}
	if err := rt.CheckFits(cfg.Player.X+1, flappy.MinGridHeight); err != nil {
		if errors.Is(err, core.ErrNoTerminal) {
			return fmt.Errorf("%w: run flappy in an interactive terminal", err)
		}
		return err
	}
	logger.Debug("terminal", "size", rt.Resolution, "seed", rt.Seed)

	history := openHistory(cfg.Storage.HistoryPath)
	if history != nil {
		defer history.Close()
	}

	a := &app{
		cfg:        cfg,
		rt:         rt,
		highscores: highscores,
		history:    history,
		out:        cmd.OutOrStdout(),
	}

	if skip, _ := cmd.Flags().GetBool("skip-menu"); skip {
		return a.play()
	}
	return a.menu()
}

// app holds everything a run of the program needs between screens.
type app struct {
	cfg        config.FlappyConfig
	rt         core.RuntimeConfig
	highscores storage.Highscores
	history    *storage.History // nil when history is disabled
	out        io.Writer
}

// menu shows the start menu until the player starts a game or leaves.
func (a *app) menu() error {
	for {
		choice, err := tui.RunMenu(a.best(), a.history != nil, a.rt.Resolution.Width, a.rt.Resolution.Height)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		logger.Debug("menu", "choice", choice)

		switch choice {
		case tui.ChoiceStart:
			return a.play()

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(a.history, a.rt.Resolution.Width, a.rt.Resolution.Height)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}

// play runs one game and prints the summary.
func (a *app) play() error {
	session, err := flappy.NewSession(a.cfg, a.rt)
	if err != nil {
		return err
	}

	res, err := tui.RunGame(session)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	score := res.State.Score
	logger.Debug("run finished", "score", score, "ticks", res.State.Tick, "cause", res.Cause)

	previous := a.best()
	best, err := a.highscores.Submit(score)
	if err != nil {
		logger.Warn("could not save highscore", "error", err)
	}
	a.recordRun(res)

	_, err = fmt.Fprint(a.out, tui.RenderSummary(score, best, score > previous))
	return err
}

// best returns the stored highscore, or 0 when it cannot be read.
func (a *app) best() int {
	best, err := a.highscores.Highscore()
	if err != nil {
		logger.Warn("could not read highscore", "error", err)
		return 0
	}
	return best
}

// recordRun appends the finished run to the history.
func (a *app) recordRun(res flappy.StepResult) {
	if a.history == nil {
		return
	}
	if _, err := a.history.SaveRun(res.State.Score, res.State.Tick, res.Cause.String()); err != nil {
		logger.Warn("could not record run", "error", err)
	}
}

// printHighscore writes the stored highscore to w.
func printHighscore(w io.Writer, store storage.Highscores) error {
	best, err := store.Highscore()
	if err != nil {
		logger.Warn("could not read highscore", "error", err)
	}
	_, err = fmt.Fprintf(w, "Highscore: %d\n", best)
	return err
}

// openHighscores returns the highscore file store for dir. When the file
// cannot be located the score is kept in memory for this run only.
func openHighscores(dir string) storage.Highscores {
	fs, err := storage.NewFileStore(dir)
	if err != nil {
		logger.Warn("highscore will not be saved", "error", err)
		return &storage.MemoryStore{}
	}
	logger.Debug("highscore file", "path", fs.Path())
	return fs
}

// openHistory opens the run history. It returns nil when history is
// disabled or cannot be opened; the game runs without it.
func openHistory(path string) *storage.History {
	if path == "" {
		logger.Debug("run history disabled")
		return nil
	}
	h, err := storage.OpenHistory(path)
	if err != nil {
		logger.Warn("could not open run history", "path", path, "error", err)
		return nil
	}
	return h
}

// resolveTerminal reports the terminal size at startup.
var resolveTerminal = terminalResolution

// terminalResolution returns the size of the terminal on stdout, or a zero
// resolution when stdout is not a terminal.
func terminalResolution() core.Resolution {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return core.Resolution{}
	}
	return core.Resolution{Width: w, Height: h}
}

// resolveSeed returns seed, or a time based seed when it is 0.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
