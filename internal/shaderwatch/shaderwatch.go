// Package shaderwatch reports edits to shader source files.
package shaderwatch

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher collects edits to shader files so programs can be rebuilt between frames.
// Events arrive on a background goroutine; the render loop drains Changed on the GL thread.
type Watcher struct {
	fs *fsnotify.Watcher

	mu      sync.Mutex
	changed map[string]struct{}
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// New watches dirs for writes
func New(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create shader watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("could not watch %s: %w", dir, err)
		}
	}
	w := &Watcher{
		fs:      fw,
		changed: make(map[string]struct{}),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			// editors often replace the file instead of writing it
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			w.changed[filepath.Clean(event.Name)] = struct{}{}
			w.mu.Unlock()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("shaderwatch: %v", err)
		}
	}
}

// Changed returns the set of files modified since the last call and resets it
func (w *Watcher) Changed() map[string]struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.changed) == 0 {
		return nil
	}
	out := w.changed
	w.changed = make(map[string]struct{})
	return out
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() {
	w.once.Do(func() {
		close(w.done)
		w.fs.Close()
		w.wg.Wait()
	})
}

// Dirs returns the distinct parent directories of paths, in first-seen order
func Dirs(paths ...string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		d := filepath.Dir(filepath.Clean(p))
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}
