package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/portfolio-fx/internal/audio"
	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/game"
	"github.com/iburimskiy/portfolio-fx/internal/terminal"
)

func main() {
	log.SetPrefix("[portfolio-fx] ")
	log.SetFlags(log.Ltime)

	cfg, err := config.Load(".env", os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	switch cfg.Host {
	case config.HostTerminal:
		err = runTerminal(cfg, rng)
	default:
		err = runWindow(cfg, rng)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runWindow(cfg config.Config, rng *rand.Rand) error {
	var cues *audio.Player
	if cfg.Sound {
		p, err := audio.NewPlayer()
		if err != nil {
			// Non-fatal, the page works without sound
			log.Printf("audio disabled: %v", err)
		} else {
			cues = p
			defer cues.Close()
		}
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title + " - Esc/Q: Quit, M: Menu, Wheel/PgDn: Scroll")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(cfg, rng, cues)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		if derr := zenity.Error(err.Error(), zenity.Title(cfg.Title), zenity.ErrorIcon); derr != nil {
			log.Printf("error dialog: %v", derr)
		}
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func runTerminal(cfg config.Config, rng *rand.Rand) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = terminal.New(screen, cfg, rng).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
