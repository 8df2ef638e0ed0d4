package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/drawerkit/core/drawer"
)

const DefaultFPS = 60

// FrameMsg advances every running track.
type FrameMsg struct {
	At time.Time
}

type track struct {
	anim    drawer.Animation
	done    func()
	started time.Time
	spring  *springProgress
}

// Animator implements drawer.Animator on top of bubbletea ticks. One track
// runs per property; a new animation on a busy property replaces the track
// and its completion is dropped.
type Animator struct {
	fps     int
	now     func() time.Time
	tracks  map[drawer.Property]*track
	order   []drawer.Property
	ticking bool
}

func New(fps int) *Animator {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Animator{fps: fps, now: time.Now, tracks: map[drawer.Property]*track{}}
}

func (a *Animator) Animate(an drawer.Animation, done func()) {
	t := &track{anim: an, done: done, started: a.now()}
	if an.Curve == drawer.CurveSpring {
		t.spring = newSpringProgress(a.fps, an.Duration.Seconds())
	}
	if _, ok := a.tracks[an.Property]; !ok {
		a.order = append(a.order, an.Property)
	}
	a.tracks[an.Property] = t
}

func (a *Animator) Active() bool { return len(a.tracks) > 0 }

func (a *Animator) frameInterval() time.Duration {
	return time.Second / time.Duration(a.fps)
}

// Tick schedules the next frame when tracks are running and no frame is
// already pending.
func (a *Animator) Tick() tea.Cmd {
	if a.ticking || !a.Active() {
		return nil
	}
	a.ticking = true
	return tea.Tick(a.frameInterval(), func(t time.Time) tea.Msg { return FrameMsg{At: t} })
}

// Update consumes FrameMsg and reports whether msg was a frame.
func (a *Animator) Update(msg tea.Msg) (tea.Cmd, bool) {
	frame, ok := msg.(FrameMsg)
	if !ok {
		return nil, false
	}
	a.ticking = false
	a.Step(frame.At)
	return a.Tick(), true
}

// Step applies the value for now to every track and completes finished
// tracks in launch order.
func (a *Animator) Step(now time.Time) {
	var finished []*track
	for _, p := range a.order {
		t, ok := a.tracks[p]
		if !ok {
			continue
		}
		elapsed := now.Sub(t.started)
		d := t.anim.Duration
		if elapsed >= d {
			t.anim.Apply(t.anim.To)
			delete(a.tracks, p)
			finished = append(finished, t)
			continue
		}
		progress := float64(elapsed) / float64(d)
		var eased float64
		if t.spring != nil {
			eased = t.spring.step()
		} else {
			eased = Ease(t.anim.Curve, progress)
		}
		t.anim.Apply(lerp(t.anim.From, t.anim.To, eased))
	}
	a.compact()
	for _, t := range finished {
		if t.done != nil {
			t.done()
		}
	}
}

func (a *Animator) compact() {
	kept := a.order[:0]
	for _, p := range a.order {
		if _, ok := a.tracks[p]; ok {
			kept = append(kept, p)
		}
	}
	a.order = kept
}
