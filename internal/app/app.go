// Package app owns the task and reward stores for the life of the process.
// Build one App at start, pass its stores to whoever needs them, and Close
// it on the way out; any store call after Close panics.
package app

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/raygaledev/gold-starz/internal/config"
	"github.com/raygaledev/gold-starz/internal/logx"
	"github.com/raygaledev/gold-starz/internal/reward"
	"github.com/raygaledev/gold-starz/internal/task"
)

type App struct {
	Tasks   *task.MemoryStore
	Rewards *reward.MemoryStore

	logger    *log.Logger
	closeOnce sync.Once
	closed    atomic.Bool
}

type Options struct {
	Seed   config.Seed
	Logger *log.Logger
}

// New builds both stores and loads the seed entries. Seeds are validated
// like screen input; the first bad entry fails the whole start.
func New(opts Options) (*App, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	a := &App{
		Tasks:   task.NewMemoryStore(),
		Rewards: reward.NewMemoryStore(),
		logger:  opts.Logger,
	}

	for i, st := range opts.Seed.Tasks {
		d, err := task.Validate(task.Form{
			Title:       st.Title,
			Description: st.Description,
			Stars:       st.Stars,
			Category:    st.Category,
		})
		if err != nil {
			return nil, fmt.Errorf("seed task %d: %w", i, err)
		}
		a.Tasks.Add(d)
	}
	for i, sr := range opts.Seed.Rewards {
		d, err := reward.Validate(reward.Form{
			Description: sr.Description,
			Stars:       sr.Stars,
		})
		if err != nil {
			return nil, fmt.Errorf("seed reward %d: %w", i, err)
		}
		a.Rewards.Add(d)
	}

	a.Tasks.Subscribe(func(ts []task.Task) {
		logx.Info(a.logger, "tasks_changed", logx.Fields{"count": len(ts)})
	})
	a.Rewards.Subscribe(func(rs []reward.Reward) {
		logx.Info(a.logger, "rewards_changed", logx.Fields{"count": len(rs)})
	})

	logx.Info(a.logger, "app_started", logx.Fields{
		"seed_tasks":   len(opts.Seed.Tasks),
		"seed_rewards": len(opts.Seed.Rewards),
	})
	return a, nil
}

// Close ends the stores' lifetime. It is safe to call more than once.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		a.closed.Store(true)
		a.Tasks.Close()
		a.Rewards.Close()
		logx.Info(a.logger, "app_closed", nil)
	})
	return nil
}

// Closed reports whether Close has run.
func (a *App) Closed() bool {
	return a.closed.Load()
}
