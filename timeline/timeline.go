// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timeline implements the playback control that steps a chart
// through date-keyed slices of its data.
//
// A Player tracks a sorted set of distinct dates, the index of the
// date being shown, and whether playback is running. While playing, a
// timer owned by the Player advances the index at a fixed cadence and
// wraps from the last date back to the first. A Player owns at most
// one live timer at any time, and Close stops it.
package timeline

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// DefaultSpeed is the playback cadence used when Options.Speed is 0.
const DefaultSpeed = time.Second

// Status is the playback state of a Player.
type Status int

const (
	// Idle is the state of a Player that has never played. It shows
	// the last date.
	Idle Status = iota
	Playing
	Paused
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// State is a snapshot of a Player.
type State struct {
	Dates  []time.Time
	Index  int
	Status Status
}

// Playing reports whether s is the Playing state.
func (s State) Playing() bool {
	return s.Status == Playing
}

// Current returns the date at s.Index. ok is false if there are no
// dates.
func (s State) Current() (date time.Time, ok bool) {
	if len(s.Dates) == 0 {
		return time.Time{}, false
	}
	return s.Dates[s.Index], true
}

// Options configures a Player.
type Options struct {
	// Autoplay starts playback at the first date. Otherwise the
	// Player starts Idle at the last date.
	Autoplay bool

	// Speed is the time between automatic advances.
	Speed time.Duration

	// OnChange, if non-nil, is called with the new state after
	// every change. It is called without the Player's lock held,
	// possibly from the timer goroutine, so it must not call
	// Toggle, SetSpeed or Close.
	OnChange func(State)
}

// Player is a timeline playback state machine.
type Player struct {
	mu       sync.Mutex
	dates    []time.Time
	index    int
	status   Status
	speed    time.Duration
	onChange func(State)
	closed   bool

	// stop is closed to stop the running timer; done is closed by
	// the timer goroutine when it exits. Both are nil when no timer
	// is running.
	stop, done chan struct{}
}

// Keys returns the distinct dates in dates, sorted.
func Keys(dates []time.Time) []time.Time {
	out := append([]time.Time(nil), dates...)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	n := 0
	for i, d := range out {
		if i > 0 && d.Equal(out[n-1]) {
			continue
		}
		out[n] = d
		n++
	}
	return out[:n]
}

// Slice returns the elements of items whose date equals key.
func Slice[T any](items []T, date func(T) time.Time, key time.Time) []T {
	var out []T
	for _, it := range items {
		if date(it).Equal(key) {
			out = append(out, it)
		}
	}
	return out
}

// New returns a Player over the distinct dates in dates. If
// o.Autoplay is set and there is at least one date, the Player starts
// playing at index 0 and its timer is running; the caller must Close
// it.
func New(dates []time.Time, o Options) *Player {
	p := &Player{
		dates:    Keys(dates),
		speed:    o.Speed,
		onChange: o.OnChange,
	}
	if p.speed <= 0 {
		p.speed = DefaultSpeed
	}
	if len(p.dates) > 0 {
		p.index = len(p.dates) - 1
		if o.Autoplay {
			p.index = 0
			p.status = Playing
			p.startLocked()
		}
	}
	return p
}

// State returns a snapshot of p.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

func (p *Player) stateLocked() State {
	return State{Dates: p.dates, Index: p.index, Status: p.status}
}

// Index returns the current index.
func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// Speed returns the playback cadence.
func (p *Player) Speed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speed
}

// Toggle switches between Playing and Paused, keeping the index. An
// Idle Player starts playing from its current index. Toggle does
// nothing if there are no dates or p is closed.
func (p *Player) Toggle() {
	p.mu.Lock()
	if len(p.dates) == 0 || p.closed {
		p.mu.Unlock()
		return
	}
	var done chan struct{}
	if p.status == Playing {
		p.status = Paused
		done = p.stopLocked()
	} else {
		p.status = Playing
		p.startLocked()
	}
	s := p.stateLocked()
	p.mu.Unlock()

	if done != nil {
		<-done
	}
	p.notify(s)
}

// Tick advances the index by one, wrapping from the last date to the
// first. The timer calls Tick while playing; callers may also step a
// paused Player with it.
func (p *Player) Tick() {
	p.mu.Lock()
	if len(p.dates) == 0 {
		p.mu.Unlock()
		return
	}
	p.index = (p.index + 1) % len(p.dates)
	s := p.stateLocked()
	p.mu.Unlock()
	p.notify(s)
}

// Scrub sets the index directly, clamped to the valid range, without
// changing the play state. Scrubs and timer ticks write the same
// field; the most recent one wins.
func (p *Player) Scrub(i int) {
	p.mu.Lock()
	if len(p.dates) == 0 {
		p.mu.Unlock()
		return
	}
	if i < 0 {
		i = 0
	} else if i >= len(p.dates) {
		i = len(p.dates) - 1
	}
	p.index = i
	s := p.stateLocked()
	p.mu.Unlock()
	p.notify(s)
}

// SetSpeed changes the playback cadence. If p is playing, its timer
// is restarted at the new cadence.
func (p *Player) SetSpeed(d time.Duration) {
	if d <= 0 {
		d = DefaultSpeed
	}
	p.mu.Lock()
	p.speed = d
	var done chan struct{}
	if p.status == Playing && !p.closed {
		done = p.stopLocked()
	}
	p.mu.Unlock()
	if done == nil {
		return
	}
	<-done

	p.mu.Lock()
	if p.status == Playing && !p.closed && p.stop == nil {
		p.startLocked()
	}
	p.mu.Unlock()
}

// Close stops p's timer and waits for it to exit. A playing p is
// left Paused. After Close, p no longer plays, though its state can
// still be read. Close is idempotent.
func (p *Player) Close() {
	p.mu.Lock()
	p.closed = true
	done := p.stopLocked()
	paused := p.status == Playing
	if paused {
		p.status = Paused
	}
	s := p.stateLocked()
	p.mu.Unlock()
	if done != nil {
		<-done
	}
	if paused {
		p.notify(s)
	}
}

// startLocked starts the timer goroutine. p.mu must be held and no
// timer may be running.
func (p *Player) startLocked() {
	stop, done := make(chan struct{}), make(chan struct{})
	p.stop, p.done = stop, done
	go p.run(p.speed, stop, done)
}

// stopLocked signals the running timer, if any, to stop and returns a
// channel that is closed once it has exited. p.mu must be held; the
// caller must release it before waiting.
func (p *Player) stopLocked() chan struct{} {
	if p.stop == nil {
		return nil
	}
	close(p.stop)
	done := p.done
	p.stop, p.done = nil, nil
	return done
}

func (p *Player) run(speed time.Duration, stop, done chan struct{}) {
	defer close(done)
	t := time.NewTicker(speed)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
		}

		p.mu.Lock()
		select {
		case <-stop:
			// Stopped while waiting for the lock.
			p.mu.Unlock()
			return
		default:
		}
		p.index = (p.index + 1) % len(p.dates)
		s := p.stateLocked()
		p.mu.Unlock()
		p.notify(s)
	}
}

func (p *Player) notify(s State) {
	if p.onChange != nil {
		p.onChange(s)
	}
}
