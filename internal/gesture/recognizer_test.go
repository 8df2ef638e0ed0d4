package gesture

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/drawerkit/core/drawer"
)

var t0 = time.Unix(1_700_000_000, 0)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease}
}

func TestRecognizerDragSequence(t *testing.T) {
	r := NewRecognizer()
	var got []drawer.GestureSample
	r.SubscribeGestures(func(s drawer.GestureSample) { got = append(got, s) })

	r.HandleMouse(press(5, 20), true, t0)
	r.HandleMouse(motion(5, 18), true, t0.Add(20*time.Millisecond))
	r.HandleMouse(motion(5, 15), true, t0.Add(40*time.Millisecond))
	r.HandleMouse(release(5, 15), true, t0.Add(50*time.Millisecond))

	require.Len(t, got, 4)
	require.Equal(t, drawer.PhaseBegan, got[0].Phase)
	require.Equal(t, drawer.GestureSample{Phase: drawer.PhaseChanged, TranslationDelta: -2}, got[1])
	require.Equal(t, drawer.GestureSample{Phase: drawer.PhaseChanged, TranslationDelta: -3}, got[2])
	require.Equal(t, drawer.PhaseEnded, got[3].Phase)
	require.InDelta(t, -100, got[3].Velocity, 1e-6)
	require.False(t, r.Dragging())
}

func TestRecognizerHeldStillReleasesWithZeroVelocity(t *testing.T) {
	r := NewRecognizer()
	var last drawer.GestureSample
	r.SubscribeGestures(func(s drawer.GestureSample) { last = s })

	r.HandleMouse(press(5, 20), true, t0)
	r.HandleMouse(motion(5, 10), true, t0.Add(30*time.Millisecond))
	r.HandleMouse(release(5, 10), true, t0.Add(time.Second))
	require.Equal(t, drawer.PhaseEnded, last.Phase)
	require.Zero(t, last.Velocity)
}

func TestRecognizerPressOffDrawerNeverDrags(t *testing.T) {
	r := NewRecognizer()
	drags := 0
	taps := 0
	r.SubscribeGestures(func(drawer.GestureSample) { drags++ })
	r.SubscribeTaps(1, func(drawer.Point) { taps++ })

	r.HandleMouse(press(5, 2), false, t0)
	r.HandleMouse(motion(5, 8), false, t0.Add(10*time.Millisecond))
	r.HandleMouse(release(5, 8), false, t0.Add(20*time.Millisecond))
	require.Zero(t, drags)
	require.Zero(t, taps, "a swipe on the background is not a tap")
}

func TestRecognizerSwipeIsNotATap(t *testing.T) {
	r := NewRecognizer()
	var taps []drawer.Point
	r.SubscribeTaps(1, func(p drawer.Point) { taps = append(taps, p) })

	r.HandleMouse(press(5, 2), false, t0)
	r.HandleMouse(motion(5, 10), false, t0.Add(10*time.Millisecond))
	r.HandleMouse(motion(5, 2), false, t0.Add(20*time.Millisecond))
	r.HandleMouse(release(5, 2), false, t0.Add(30*time.Millisecond))
	require.Empty(t, taps, "returning to the press cell does not revive the tap")

	r.HandleMouse(press(5, 2), false, t0.Add(time.Second))
	r.HandleMouse(release(5, 20), false, t0.Add(time.Second))
	require.Empty(t, taps, "release far from the press")

	r.HandleMouse(press(5, 2), false, t0.Add(2*time.Second))
	r.HandleMouse(motion(6, 2), false, t0.Add(2*time.Second))
	r.HandleMouse(release(6, 2), false, t0.Add(2*time.Second))
	require.Equal(t, []drawer.Point{{X: 5, Y: 2}}, taps, "sideways jitter still taps")
}

func TestRecognizerCountsTapRuns(t *testing.T) {
	r := NewRecognizer()
	var singles, doubles []drawer.Point
	r.SubscribeTaps(1, func(p drawer.Point) { singles = append(singles, p) })
	r.SubscribeTaps(2, func(p drawer.Point) { doubles = append(doubles, p) })

	r.HandleMouse(press(3, 4), false, t0)
	r.HandleMouse(release(3, 4), false, t0)
	r.HandleMouse(press(3, 4), false, t0.Add(100*time.Millisecond))
	r.HandleMouse(release(3, 4), false, t0.Add(100*time.Millisecond))
	require.Len(t, singles, 1)
	require.Equal(t, []drawer.Point{{X: 3, Y: 4}}, doubles)

	r.HandleMouse(press(3, 4), false, t0.Add(2*time.Second))
	r.HandleMouse(release(3, 4), false, t0.Add(2*time.Second))
	require.Len(t, singles, 2, "slow tap starts a new run")
}

func TestRecognizerCancel(t *testing.T) {
	r := NewRecognizer()
	var phases []drawer.Phase
	r.SubscribeGestures(func(s drawer.GestureSample) { phases = append(phases, s.Phase) })

	r.Cancel()
	require.Empty(t, phases, "cancel without drag emits nothing")

	r.HandleMouse(press(5, 20), true, t0)
	r.HandleMouse(motion(5, 25), true, t0.Add(10*time.Millisecond))
	r.Cancel()
	r.HandleMouse(release(5, 25), true, t0.Add(20*time.Millisecond))
	require.Equal(t, []drawer.Phase{drawer.PhaseBegan, drawer.PhaseChanged, drawer.PhaseCancelled}, phases)
}

func TestRecognizerUnsubscribe(t *testing.T) {
	r := NewRecognizer()
	taps := 0
	sub := r.SubscribeTaps(1, func(drawer.Point) { taps++ })
	sub.Unsubscribe()
	r.HandleMouse(press(1, 1), false, t0)
	r.HandleMouse(release(1, 1), false, t0)
	require.Zero(t, taps)
}
