package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bassmanitram/envlog/resolver"
)

// debounceDelay is how long the watcher lets a burst of file events
// settle before reloading.
const debounceDelay = 100 * time.Millisecond

// Watcher applies a YAML configuration file to a Resolver and keeps it
// applied: every change to the file is loaded, compiled and swapped in
// atomically, so running loggers pick the new thresholds up on their
// next call. Editors that replace the file instead of rewriting it are
// handled by watching the containing directory, and the burst of events
// one save produces is coalesced into a single reload once the file has
// settled.
type Watcher struct {
	path     string
	resolver *resolver.Resolver
	fw       *fsnotify.Watcher
	onReload func(*Config)
	onError  func(error)
	wg       sync.WaitGroup
}

// WatchConfig holds configuration for a Watcher
type WatchConfig struct {
	// Path is the YAML file to watch
	Path string
	// Resolver receives each loaded Ruleset
	Resolver *resolver.Resolver
	// OnReload, if set, runs after a file change has been applied.
	// It is called from the watcher's goroutine.
	OnReload func(*Config)
	// OnError, if set, receives load and validation problems. A load
	// failure leaves the previous Ruleset in effect; a validation
	// failure is diagnostic only, the parseable rest still applies.
	// It is called from the watcher's goroutine.
	OnError func(error)
}

// NewWatcher loads the file once, applies it to the resolver, and
// starts watching for changes. It fails if the initial load fails, so a
// missing or unreadable file is caught at startup rather than silently
// ignored.
func NewWatcher(cfg WatchConfig) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if cfg.Resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}

	w := &Watcher{
		path:     filepath.Clean(cfg.Path),
		resolver: cfg.Resolver,
		onReload: cfg.OnReload,
		onError:  cfg.OnError,
	}

	initial, err := Load(w.path)
	if err != nil {
		return nil, err
	}
	if err := initial.Validate(); err != nil {
		w.fail(err)
	}
	w.resolver.SetRuleset(initial.Ruleset())

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return nil, err
	}
	w.fw = fw

	w.wg.Add(1)
	go w.watch()
	return w, nil
}

// Close stops watching the file. The last applied configuration stays
// in effect on the resolver.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	w.wg.Wait()
	return err
}

// watch runs until Close shuts the event channel down. Events for the
// watched path arm a short timer instead of reloading directly: a plain
// rewrite truncates before it writes, and a reload on the first event
// of that pair would read a half-written file.
func (w *Watcher) watch() {
	defer w.wg.Done()
	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				pending = time.After(debounceDelay)
			}
		case <-pending:
			pending = nil
			w.reload()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.fail(err)
		}
	}
}

// reload loads the file and swaps the result in. An unreadable or
// unparseable file keeps the previous Ruleset; semantically invalid
// entries are reported and excluded at compile time while the rest
// takes effect.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.fail(err)
		return
	}
	if err := cfg.Validate(); err != nil {
		w.fail(err)
	}
	w.resolver.SetRuleset(cfg.Ruleset())
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

func (w *Watcher) fail(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
