package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/asteroids-arcade/internal/audio"
	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/loop"
	"github.com/tomz197/asteroids-arcade/internal/session"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rng, seed := config.NewRand()
	logger.Info("starting terminal game", "seed", seed)

	var soundtrack session.Soundtrack
	if config.GetEnvBool(config.EnvAudio) {
		st := audio.NewSoundtrack()
		if err := st.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer st.Close()
			soundtrack = st
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(ctx, reader, os.Stdout, loop.Options{
		Rand:       rng,
		Soundtrack: soundtrack,
		Logger:     logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		_ = term.Restore(fd, oldState)
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// openLogger logs to ARCADE_LOG_FILE when set. The terminal itself is the
// game screen, so logs are discarded otherwise.
func openLogger() (*log.Logger, func(), error) {
	path := config.GetEnv(config.EnvLogFile, "")
	if path == "" {
		return config.DiscardLogger(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return config.NewLogger(f, "game"), func() { _ = f.Close() }, nil
}
