package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// gameFlags are shared by the commands that start a game.
type gameFlags struct {
	difficulty string
	randomizer string
	sound      bool
}

// settings resolves the configuration for a session: file, then preset,
// then command-line overrides.
func settings(gf gameFlags, soundSet bool) (config.TetrisConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(gf.difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if gf.randomizer != "" {
		cfg.Randomizer = gf.randomizer
	}
	if soundSet {
		cfg.Sound = gf.sound
	}
	return cfg, cfg.Validate()
}

// newLogger builds the session logger. Without --log-file logs are discarded,
// since the game owns the terminal. The returned closer releases the file.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// runtimeConfig returns the platform settings taken from the persistent flags.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	return rc
}

// newEngine creates an engine for the config and wires its observers.
// A zero rc.Seed seeds from the clock.
func newEngine(cfg config.TetrisConfig, rc core.RuntimeConfig, logger *log.Logger, player *audio.Player) (*tetris.Engine, error) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine, err := tetris.New(
		tetris.WithSeed(seed),
		tetris.WithRules(tetris.RulesFromConfig(cfg)),
		tetris.WithRandomizer(cfg.Randomizer),
	)
	if err != nil {
		return nil, err
	}

	engine.Subscribe(logEvents(logger))
	if player != nil {
		engine.Subscribe(player.Observe)
	}

	logger.Info("game started",
		"seed", seed,
		"randomizer", cfg.Randomizer,
		"interval", engine.Interval(),
		"sound", cfg.Sound,
	)
	return engine, nil
}

// logEvents returns an observer that records placements and state changes.
func logEvents(logger *log.Logger) tetris.Observer {
	return func(ev tetris.Event, snap tetris.Snapshot) {
		switch ev.Kind {
		case tetris.EventMoved, tetris.EventRotated, tetris.EventDropped:
			// too frequent to be useful
		case tetris.EventPlaced:
			logger.Debug("piece placed", "piece", ev.Piece, "lines", ev.Lines, "points", ev.Points)
			if ev.LevelUp {
				logger.Info("level up", "level", snap.Level, "interval", snap.Interval)
			}
		case tetris.EventGameOver:
			logger.Info("game over", "score", snap.Score, "level", snap.Level, "lines", snap.Lines)
		default:
			logger.Debug(ev.Kind.String(), "score", snap.Score)
		}
	}
}

// startAudio opens the speaker when sound is enabled. Failure degrades to silence.
func startAudio(cfg config.TetrisConfig, logger *log.Logger) *audio.Player {
	player := audio.NewPlayer()
	if !cfg.Sound {
		return player
	}
	if err := player.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		logger.Warn("sound disabled", "err", err)
	}
	return player
}
