// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: main.go
// Summary: Stratus entry point: terminal weather card dashboard.
// Usage: Run `stratus`; cards for the configured cities appear and can
//        be dragged into a new order.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/stratuswx/stratus/board"
	"github.com/stratuswx/stratus/config"
	"github.com/stratuswx/stratus/storage"
	"github.com/stratuswx/stratus/tui"
	"github.com/stratuswx/stratus/weather"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("stratus", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config.toml (default: user config dir)")
	dbPath := fs.String("db", "", "Path to the city database (default: next to the config)")
	logPath := fs.String("log", "", "Log file path (default: from config, else stratus.log)")
	debug := fs.Bool("debug", false, "Log discarded operations and scheduler noise")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	// Config first; the log destination may come from it.
	if *configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		*configPath = p
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	// Logging goes to a file so the tcell screen stays clean.
	dest := *logPath
	if dest == "" {
		dest = cfg.Log.FilePath
	}
	if dest == "" {
		dest = "stratus.log"
	}
	logFile, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	board.Debug = *debug
	log.Println("Stratus starting...")

	if *dbPath == "" {
		*dbPath = filepath.Join(filepath.Dir(*configPath), "cities.db")
	}
	store, err := storage.Open(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scr, err := tui.NewScreen()
	if err != nil {
		return err
	}
	defer scr.Close()

	watcher, err := config.Watch(*configPath, cfg, nil)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	b := board.New(board.Options{
		ContainerWidth: scr.GridWidth(),
		CardWidth:      cfg.UI.CardWidth,
		Gap:            cfg.UI.Gap,
		Prefs:          watcher,
		Persist:        persistOrder(store),
		Invalidate:     scr.RequestRefresh,
	})
	defer b.Close()
	scr.SetBoard(b)

	provider := &weather.Simulator{}
	if err := seedCards(b, scr, store, provider, cfg); err != nil {
		return err
	}

	interval, _ := cfg.RefreshInterval()
	refresher := weather.NewRefresher(provider, b, interval)
	refresher.OnObservation = scr.UpdateObservation
	if err := refresher.Start(); err != nil {
		return err
	}
	defer refresher.Stop()

	// Signals tear the screen down, which unblocks Run.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		scr.Close()
	}()

	if err := scr.Run(); err != nil {
		return err
	}
	log.Println("Stratus stopped cleanly.")
	return nil
}

// persistOrder adapts the store to the board's persistence hook.
func persistOrder(store *storage.Store) board.PersistFunc {
	return func(ids []string) {
		if err := store.SaveOrder(ids); err != nil {
			log.Printf("Storage: save order failed: %v", err)
		}
	}
}

// seedCards restores the saved city list, falling back to the
// configured seed cities on first run, and fetches an initial
// observation for each so cards have data on the first frame.
func seedCards(b *board.Board, scr *tui.Screen, store *storage.Store, provider weather.Provider, cfg *config.Config) error {
	saved, err := store.Load()
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		for i, name := range cfg.Weather.Cities {
			city := storage.City{ID: board.NormalizeID(name), Name: name, Position: i}
			if city.ID == "" {
				continue
			}
			if err := store.Upsert(city); err != nil {
				return err
			}
			saved = append(saved, city)
		}
	}

	for _, city := range saved {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		obs, err := provider.Observe(ctx, city.Name)
		cancel()

		data := board.CardData{City: city.Name, Country: city.Country}
		if err != nil {
			log.Printf("Weather: initial fetch failed for %s: %v", city.Name, err)
		} else {
			data = obs.CardData()
			data.City = city.Name
			if city.Country != "" {
				data.Country = city.Country
			}
			scr.UpdateObservation(obs)
		}
		b.AddCard(data, false)
	}
	return nil
}
