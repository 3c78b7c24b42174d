// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package schedule provides one-shot delayed callbacks for Bubble Tea models
// that can be cancelled when the owning screen is torn down.
package schedule

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

// FiredMsg is delivered when a task's delay elapses without cancellation.
type FiredMsg struct {
	ID int64
}

// Task is a cancelable one-shot timer.
type Task struct {
	id    int64
	delay time.Duration
	done  chan struct{}
	once  sync.Once
}

// New creates a task that fires after delay once its Cmd runs.
func New(delay time.Duration) *Task {
	return &Task{
		id:    atomic.AddInt64(&lastID, 1),
		delay: delay,
		done:  make(chan struct{}),
	}
}

// ID is unique per process.
func (t *Task) ID() int64 {
	return t.id
}

// Delay returns the configured delay.
func (t *Task) Delay() time.Duration {
	return t.delay
}

// Cmd waits for the delay and yields a FiredMsg. If the task is cancelled
// first, the command returns immediately with no message.
func (t *Task) Cmd() tea.Cmd {
	return func() tea.Msg {
		timer := time.NewTimer(t.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			if t.Cancelled() {
				return nil
			}
			return FiredMsg{ID: t.id}
		case <-t.done:
			return nil
		}
	}
}

// Cancel stops the task. Safe to call more than once.
func (t *Task) Cancel() {
	t.once.Do(func() { close(t.done) })
}

// Cancelled reports whether Cancel has been called.
func (t *Task) Cancelled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Owns reports whether msg belongs to this task and should still be acted on.
func (t *Task) Owns(msg FiredMsg) bool {
	return t != nil && msg.ID == t.id && !t.Cancelled()
}
