// Package watch reports edits to files in a directory tree so shaders can be
// rebuilt while a lab is running.
package watch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"render-labs/core"
)

// Watcher delivers the paths of created or written files over Changes.
// Its goroutine only forwards paths; reloading is left to the receiver.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	exts     map[string]bool

	changes chan string
	done    chan struct{}
	wg      sync.WaitGroup

	closeOnce sync.Once
}

// New watches dir and its sub-directories. When exts is non-empty only files
// with one of those extensions (".vert", ".frag") are reported.
func New(dir string, exts ...string) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsnotify: fsWatch,
		exts:     make(map[string]bool, len(exts)),
		changes:  make(chan string, 64),
		done:     make(chan struct{}),
	}
	for _, ext := range exts {
		w.exts[strings.ToLower(ext)] = true
	}

	if err := w.addRecursive(dir); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.start()
	return w, nil
}

// Changes is closed after Close returns.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsnotify.Close()
		w.wg.Wait()
		close(w.changes)
	})
	return err
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fsnotify.Add(path)
		}
		return nil
	})
}

func (w *Watcher) start() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&fsnotify.Create != 0 {
				if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
					if err := w.addRecursive(e.Name); err != nil {
						core.LogWarn("watch %s: %v", e.Name, err)
					}
					continue
				}
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 || !w.wanted(e.Name) {
				continue
			}
			select {
			case w.changes <- filepath.Clean(e.Name):
			case <-w.done:
				return
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			if !errors.Is(err, fsnotify.ErrEventOverflow) {
				core.LogError("watch: %v", err)
			}

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) wanted(path string) bool {
	if len(w.exts) == 0 {
		return true
	}
	return w.exts[strings.ToLower(filepath.Ext(path))]
}

// Drain collects every pending path without blocking, dropping duplicates.
func Drain(changes <-chan string) []string {
	var out []string
	seen := map[string]bool{}
	for {
		select {
		case path, ok := <-changes:
			if !ok {
				return out
			}
			if !seen[path] {
				seen[path] = true
				out = append(out, path)
			}
		default:
			return out
		}
	}
}
