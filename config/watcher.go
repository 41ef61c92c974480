// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/watcher.go
// Summary: Settings hot-reload. Watches the config file and republishes
//          the parsed configuration on every valid edit.

package config

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher holds the current configuration and reloads it when the file
// changes on disk. Current is safe to call from any goroutine, so the
// watcher doubles as the board's animation preference provider.
type Watcher struct {
	path     string
	onChange func(*Config)

	mu  sync.RWMutex
	cfg *Config

	fsw  *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching path. initial is served until the first
// successful reload; onChange (optional) runs after every reload.
func Watch(path string, initial *Config, onChange func(*Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors replace the file on save, which would
	// drop a watch on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		onChange: onChange,
		cfg:      initial,
		fsw:      fsw,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Current returns the most recently loaded configuration.
func (w *Watcher) Current() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cfg
}

// AnimationsEnabled reports the current animation preference.
func (w *Watcher) AnimationsEnabled() bool {
	return w.Current().UI.AnimationsEnabled
}

// Stop shuts the watcher down.
func (w *Watcher) Stop() {
	close(w.done)
	w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Config: watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		// Keep serving the previous config over a half-saved file.
		log.Printf("Config: reload of %s failed: %v", w.path, err)
		return
	}

	w.mu.Lock()
	w.cfg = cfg
	w.mu.Unlock()
	log.Printf("Config: reloaded %s", w.path)

	if w.onChange != nil {
		w.onChange(cfg)
	}
}
