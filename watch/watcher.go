// Package watch hot-reloads a rule bundle directory: whenever a rule
// file is created, written, or removed, it re-parses every *.yaml file
// in the directory and hands the new rule set to a reload callback,
// so a long-running verifier never has to restart to pick up an
// updated rule bundle.
package watch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/rule"
)

// ReloadCallback is called with the freshly reloaded rule set whenever
// the watched directory changes. An error return is logged but does
// not stop the watcher.
type ReloadCallback func(rules []rule.Rule) error

// Watcher watches a rule bundle directory and reloads its rules on
// change, debouncing rapid successive edits (an editor's save-as-temp-
// then-rename dance can otherwise fire several events per save).
type Watcher struct {
	dir       string
	fsw       *fsnotify.Watcher
	log       *zap.SugaredLogger
	debounce  time.Duration
	mu        sync.Mutex
	callbacks []ReloadCallback
	timer     *time.Timer
}

// New starts watching dir for rule file changes. Call Start to begin
// delivering reloads and Stop to release the underlying fsnotify
// watcher.
func New(dir string, log *zap.SugaredLogger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create rule bundle watcher")
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "watch rule bundle directory %s", dir)
	}

	return &Watcher{
		dir:      dir,
		fsw:      fsw,
		log:      log,
		debounce: 300 * time.Millisecond,
	}, nil
}

// OnReload registers a callback to run after each successful reload.
func (w *Watcher) OnReload(cb ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// Start begins watching in the background.
func (w *Watcher) Start() {
	go w.loop()
}

// Stop releases the underlying fsnotify watcher.
func (w *Watcher) Stop() error {
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !isRuleFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logf("rule bundle watcher error", "error", err)
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		rules, err := LoadDir(w.dir)
		if err != nil {
			w.logf("rule bundle reload failed", "error", err)
			return
		}

		w.mu.Lock()
		callbacks := make([]ReloadCallback, len(w.callbacks))
		copy(callbacks, w.callbacks)
		w.mu.Unlock()

		for _, cb := range callbacks {
			if err := cb(rules); err != nil {
				w.logf("rule bundle reload callback failed", "error", err)
			}
		}
	})
}

func (w *Watcher) logf(msg string, kv ...any) {
	if w.log == nil {
		return
	}
	w.log.Warnw(msg, kv...)
}

// LoadDir parses every *.yaml/*.yml file in dir into a single rule
// set, in filename-sorted order so rule indices (what a ProofStep's
// RuleIndex refers to) stay stable across reloads as long as file names
// don't change.
func LoadDir(dir string) ([]rule.Rule, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read rule bundle directory %s", dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !isRuleFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var rules []rule.Rule
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, errors.Wrapf(err, "read rule file %s", name)
		}

		parsed, _, err := rule.ParseYAML(data)
		if err != nil {
			return nil, errors.Wrapf(err, "parse rule file %s", name)
		}
		rules = append(rules, parsed...)
	}

	return rules, nil
}

func isRuleFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
