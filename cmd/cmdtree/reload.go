// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/cmdtree/cmdtree/internal/discovery"
	"github.com/cmdtree/cmdtree/internal/watch"
)

// liveSession holds the session the REPL executes against. A reload swaps
// it between two lines.
type liveSession struct {
	current atomic.Pointer[session]
}

func newLiveSession(s *session) *liveSession {
	live := &liveSession{}
	live.current.Store(s)
	return live
}

func (l *liveSession) Load() *session   { return l.current.Load() }
func (l *liveSession) Store(s *session) { l.current.Store(s) }

// startReload watches the working directory and rebuilds the session when a
// command file or the local configuration changes. The returned function
// stops the watcher and waits for it to exit.
func (a *App) startReload(ctx context.Context, live *liveSession) (func(), error) {
	s := live.Load()
	w, err := watch.New(watch.Config{
		BaseDir:  a.workDir,
		Patterns: reloadPatterns(a.workDir, s.files),
		Logger:   s.logger,
		OnChange: func(ctx context.Context, changed []string) error {
			a.reload(ctx, live, changed)
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to watch command files: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	return func() {
		cancel()
		if err := <-done; err != nil {
			s.logger.Warn("command file watcher stopped", "err", err)
		}
	}, nil
}

// reload replaces the live session. A failed reload is reported and the
// previous commands stay in effect.
func (a *App) reload(ctx context.Context, live *liveSession, changed []string) {
	next, err := a.openSession(ctx)
	if err != nil {
		msg := err.Error()
		var svcErr *ServiceError
		if errors.As(err, &svcErr) && svcErr.StyledMessage != "" {
			msg = strings.TrimRight(svcErr.StyledMessage, "\n")
		}
		fmt.Fprintln(a.stderr, msg)
		fmt.Fprintln(a.stderr, WarningStyle.Render("Reload failed, keeping the previous commands"))
		return
	}
	live.Store(next)
	fmt.Fprintf(a.stderr, "%s %s\n", SuccessStyle.Render("Reloaded commands after changes to"), strings.Join(changed, ", "))
}

// reloadPatterns lists the files under dir whose changes trigger a reload:
// the loaded command files, the default command file names and the local
// configuration. Files outside dir are not watched.
func reloadPatterns(dir string, files []discovery.CommandFile) []string {
	names := append([]string{"config.cue"}, discovery.DefaultCommandFileNames...)
	for _, f := range files {
		rel, err := filepath.Rel(dir, f.Path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		names = append(names, filepath.ToSlash(rel))
	}

	seen := make(map[string]bool, len(names))
	patterns := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		patterns = append(patterns, escapeGlob(n))
	}
	return patterns
}

func escapeGlob(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if strings.ContainsRune(`*?[]{}\`, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
