package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"agentdeck/internal/config"
	"agentdeck/internal/deck"
	"agentdeck/internal/slides"
	"agentdeck/internal/telemetry"
	"agentdeck/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

const shutdownTimeout = 5 * time.Second

// loadConfig applies the layered config, then the command-line flags, then validates.
func loadConfig(opts options, stderr io.Writer) (*config.Config, error) {
	loader := config.NewLoader(warnLogger(stderr))
	loader.Explicit = opts.configPath
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, opts options) {
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.inline {
		cfg.Display.AltScreen = false
	}
	if opts.noMouse {
		cfg.Display.Mouse = false
	}
	if opts.noTransitions {
		cfg.Display.Transitions = false
	}
}

// session is everything one run of the deck needs, wired together.
type session struct {
	deck     *deck.Deck
	model    *ui.Model
	recorder *telemetry.Recorder
}

func newSession(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*session, error) {
	talk := slides.Talk()
	d, err := deck.NewDeck(slides.StepCounts(talk))
	if err != nil {
		return nil, fmt.Errorf("build deck: %w", err)
	}

	exp, err := telemetry.NewExporter(ctx, cfg.Telemetry)
	if err != nil {
		logger.Warn("Telemetry disabled", "error", err)
		exp, _ = telemetry.NewExporter(ctx, config.TelemetryConfig{})
	}
	titles := make([]string, len(talk))
	for i, s := range talk {
		titles[i] = s.Title
	}
	rec := telemetry.NewRecorder(ctx, exp, titles)
	d.Observe(rec.Observe)

	model, err := ui.NewModel(d, talk, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Deck ready",
		"slides", d.Total(),
		"session_id", rec.SessionID(),
		"telemetry", exp.Enabled(),
	)
	return &session{deck: d, model: model, recorder: rec}, nil
}

func (s *session) programOptions(ctx context.Context, cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.Display.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Display.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

// close releases the deck and flushes telemetry.
func (s *session) close(logger *slog.Logger) {
	s.deck.Close()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.recorder.Close(ctx); err != nil {
		logger.Warn("Failed to flush telemetry", "error", err)
	}
}

func run(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(opts, stderr)
	if err != nil {
		return err
	}

	logger, closer, err := config.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	s, err := newSession(ctx, cfg, logger)
	if err != nil {
		return err
	}

	_, runErr := tea.NewProgram(s.model, s.programOptions(ctx, cfg)...).Run()
	s.close(logger)
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("run deck: %w", runErr)
	}
	logger.Info("Deck closed", "slide", s.deck.Index())

	if opts.rehearse {
		fmt.Fprintln(stdout, telemetry.RenderSummary(s.recorder.Summary()))
	}
	return nil
}
