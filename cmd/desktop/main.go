package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/asteroids-arcade/internal/audio"
	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/desktop"
	"github.com/tomz197/asteroids-arcade/internal/loop"
	"github.com/tomz197/asteroids-arcade/internal/session"
)

func main() {
	logger := config.NewLogger(os.Stderr, "desktop")
	if err := config.LoadDotEnv(); err != nil {
		logger.Fatal("failed to load .env", "err", err)
	}

	rng, seed := config.NewRand()
	logger.Info("starting desktop game", "seed", seed)

	// Music is on by default in a window; ARCADE_AUDIO=0 silences it.
	var soundtrack session.Soundtrack
	if config.GetEnv(config.EnvAudio, "1") != "0" {
		st := audio.NewSoundtrack()
		if err := st.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer st.Close()
			soundtrack = st
		}
	}

	game := loop.NewGame(loop.GameOptions{
		Rand:       rng,
		Soundtrack: soundtrack,
		Logger:     logger,
	})

	ebiten.SetWindowSize(config.FieldWidth, config.FieldHeight)
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetTPS(config.TickRate)
	if err := ebiten.RunGame(desktop.New(game)); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
