// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package fade

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var lastID int64

// FrameMsg advances a running fade. Frames for another fade are ignored.
type FrameMsg struct {
	ID   int64
	Time time.Time
}

// Model animates opacity linearly from 0 to 1.
type Model struct {
	id       int64
	duration time.Duration
	interval time.Duration
	start    time.Time
	opacity  float64
	running  bool
}

// New creates a stopped fade lasting duration, redrawn every interval.
func New(duration, interval time.Duration) Model {
	return Model{
		duration: duration,
		interval: interval,
	}
}

// Start restarts the fade at opacity 0. Frames from an earlier run are dropped.
func (m Model) Start(now time.Time) Model {
	m.id = atomic.AddInt64(&lastID, 1)
	m.start = now
	m.opacity = 0
	m.running = true
	return m
}

// Stop freezes the fade at its current opacity.
func (m Model) Stop() Model {
	m.running = false
	return m
}

func (m Model) Init() tea.Cmd {
	if m.running {
		return m.frame()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != m.id || !m.running {
		return m, nil
	}

	m.opacity = Progress(frame.Time.Sub(m.start), m.duration)
	if m.opacity >= 1 {
		m.running = false
		return m, nil
	}
	return m, m.frame()
}

// Opacity is in [0, 1].
func (m Model) Opacity() float64 {
	return m.opacity
}

// Running reports whether more frames are expected.
func (m Model) Running() bool {
	return m.running
}

// ID identifies the current run.
func (m Model) ID() int64 {
	return m.id
}

func (m Model) frame() tea.Cmd {
	id := m.id
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

// Progress maps elapsed time onto [0, 1].
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(duration)
}

// Blend mixes two hex colours; t=0 gives from, t=1 gives to.
// Unparseable colours fall back to to.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	a, err := colorful.Hex(string(from))
	if err != nil {
		return to
	}
	b, err := colorful.Hex(string(to))
	if err != nil {
		return to
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return lipgloss.Color(a.BlendRgb(b, t).Clamped().Hex())
}
