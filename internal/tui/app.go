package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/jask/drawerkit/core/drawer"
	"github.com/jask/drawerkit/internal/anim"
	"github.com/jask/drawerkit/internal/config"
	"github.com/jask/drawerkit/internal/gesture"
	"github.com/jask/drawerkit/internal/service"
	"github.com/jask/drawerkit/widgets"
)

const footerRows = 1

// ConfigReloadedMsg carries a config file change. It applies from the next
// presentation on.
type ConfigReloadedMsg struct {
	Config config.Config
	Err    error
}

type journalStartedMsg struct {
	cfg drawer.Configuration
	id  string
	err error
}

type journalFlushedMsg struct {
	err error
}

type Options struct {
	Config config.Config
	// Recorder journals every presentation; nil disables the journal.
	Recorder *service.Recorder
	Logger   zerolog.Logger
}

// App hosts one drawer over a demo dashboard. Each presentation gets a fresh
// controller built from the latest config; the animator and recognizer live
// for the whole program.
type App struct {
	ctx      context.Context
	cfg      config.Config
	log      zerolog.Logger
	recorder *service.Recorder
	keys     keyMap
	help     help.Model
	now      func() time.Time

	surface    *surface
	content    demoContent
	animator   *anim.Animator
	recognizer *gesture.Recognizer
	ctrl       *drawer.Controller

	starting   bool
	journaling bool
	flushing   bool

	events   *widgets.EventsPane
	releases map[drawer.Rest]int
	sessions int
	status   string
	failed   bool
	width    int
	height   int
	quitting bool
}

func New(ctx context.Context, opts Options) *App {
	return &App{
		ctx:        ctx,
		cfg:        opts.Config,
		log:        opts.Logger,
		recorder:   opts.Recorder,
		keys:       defaultKeys(),
		help:       newHelp(),
		now:        time.Now,
		surface:    &surface{},
		animator:   anim.New(opts.Config.UI.FPS),
		recognizer: gesture.NewRecognizer(),
		events:     widgets.NewEventsPane("Events", 200),
		releases:   map[drawer.Rest]int{},
		status:     "press p to present the drawer",
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	if a.quitting {
		return a, cmd
	}
	return a, tea.Batch(cmd, a.afterUpdate(), a.animator.Tick())
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resize()
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		a.handleMouse(msg)
	case anim.FrameMsg:
		cmd, _ := a.animator.Update(msg)
		return cmd
	case journalStartedMsg:
		a.starting = false
		if msg.err != nil {
			a.log.Warn().Err(msg.err).Msg("journal session not started")
			a.setError("journal unavailable: " + msg.err.Error())
		}
		a.startSession(msg.cfg, msg.err == nil)
		if msg.err == nil && a.ctrl != nil {
			a.status += " (journal " + msg.id[:8] + ")"
		}
	case journalFlushedMsg:
		a.flushing = false
		if msg.err != nil {
			a.setError("journal flush failed: " + msg.err.Error())
		}
	case ConfigReloadedMsg:
		if msg.Err != nil {
			a.log.Warn().Err(msg.Err).Msg("config reload failed")
			a.setError("config reload failed: " + msg.Err.Error())
			return nil
		}
		a.cfg = msg.Config
		a.setStatus("config reloaded; applies to the next presentation")
		a.log.Info().Msg("config reloaded")
	}
	return nil
}

// afterUpdate turns a pending dismissal request into a slide out and ends
// the presentation once the drawer has settled hidden.
func (a *App) afterUpdate() tea.Cmd {
	if a.ctrl == nil {
		a.surface.takeDismiss()
		return nil
	}
	if a.surface.takeDismiss() {
		a.ctrl.Dismiss()
	}
	if a.ctrl.Settled() {
		return a.endSession()
	}
	if a.recorder != nil && !a.flushing && a.recorder.ShouldFlush() {
		a.flushing = true
		return a.flush()
	}
	return nil
}

// resize cancels any drag against the old geometry, then re-seats the
// drawer at its rest for the new one.
func (a *App) resize() {
	if a.ctrl != nil {
		a.recognizer.Cancel()
	}
	a.surface.width = a.width
	a.surface.height = max(0, a.height-footerRows)
	a.surface.attached = a.surface.height > 0
	a.help.Width = a.width
	if a.ctrl != nil {
		a.ctrl.Relayout()
	}
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		if a.ctrl != nil {
			a.ctrl.Detach()
			a.ctrl = nil
		}
		if flush := a.flush(); flush != nil {
			return tea.Sequence(flush, tea.Quit)
		}
		return tea.Quit
	case key.Matches(msg, a.keys.Present):
		return a.present()
	case key.Matches(msg, a.keys.Dismiss):
		if a.ctrl != nil {
			a.ctrl.Dismiss()
		}
	case key.Matches(msg, a.keys.Expand):
		if a.ctrl != nil {
			a.ctrl.Transition(0, false)
		}
	case key.Matches(msg, a.keys.Cancel):
		a.recognizer.Cancel()
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	if a.ctrl == nil {
		return
	}
	if msg.Action == tea.MouseActionPress && msg.Y >= a.surface.height {
		return
	}
	top := int(math.Round(a.ctrl.Position()))
	onDrawer := msg.Y >= top && msg.Y < a.surface.height
	a.recognizer.HandleMouse(msg, onDrawer, a.now())
}

func (a *App) present() tea.Cmd {
	if a.ctrl != nil {
		if a.ctrl.Rest() == drawer.RestHidden {
			a.ctrl.Present()
		}
		return nil
	}
	if a.starting {
		return nil
	}
	if !a.surface.attached {
		a.setStatus("waiting for the terminal size")
		return nil
	}
	dc, err := a.cfg.DrawerConfiguration()
	if err != nil {
		a.log.Warn().Err(err).Msg("invalid drawer configuration")
		a.setError(err.Error())
		return nil
	}
	if a.recorder == nil {
		a.startSession(dc, false)
		return nil
	}
	a.starting = true
	ctx, rec := a.ctx, a.recorder
	h, partial := float64(a.surface.height), a.cfg.Drawer.PartialHeight
	return func() tea.Msg {
		id, err := rec.Begin(ctx, dc, h, partial)
		return journalStartedMsg{cfg: dc, id: id, err: err}
	}
}

func (a *App) startSession(dc drawer.Configuration, journaling bool) {
	content := demoContent{partialHeight: a.cfg.Drawer.PartialHeight}
	ctrl, err := drawer.New(dc, a.surface, content, a.animator,
		drawer.WithLogger(a.log.With().Str("component", "drawer").Logger()),
		drawer.WithObserver(drawer.ObserverFunc(a.observe)),
	)
	if err != nil {
		a.log.Error().Err(err).Msg("drawer controller")
		a.setError(err.Error())
		return
	}
	a.content = content
	a.ctrl = ctrl
	a.journaling = journaling
	a.sessions++
	ctrl.Attach(a.recognizer, a.recognizer)
	if ctrl.Present() {
		a.setStatus(fmt.Sprintf("presentation %d", a.sessions))
	}
	a.log.Info().Int("presentation", a.sessions).Bool("journal", journaling).Msg("presentation started")
}

func (a *App) endSession() tea.Cmd {
	a.ctrl.Detach()
	a.ctrl = nil
	a.journaling = false
	a.setStatus("drawer dismissed; press p to present again")
	a.log.Info().Int("presentation", a.sessions).Msg("presentation ended")
	return a.flush()
}

func (a *App) flush() tea.Cmd {
	if a.recorder == nil {
		return nil
	}
	ctx, rec := a.ctx, a.recorder
	return func() tea.Msg {
		return journalFlushedMsg{err: rec.Flush(ctx)}
	}
}

func (a *App) observe(e drawer.Event) {
	a.events.Push(widgets.EventRow{
		Kind:     string(e.Kind),
		Position: fmt.Sprintf("%.1f", e.Position),
		Velocity: fmt.Sprintf("%.2f", e.Velocity),
		Target:   fmt.Sprintf("%.1f", e.Target),
		Rest:     e.Rest.String(),
	})
	if e.Kind == drawer.EventRelease {
		a.releases[e.Rest]++
	}
	if a.journaling {
		a.recorder.Observe(e)
	}
}

func (a *App) View() string {
	if a.quitting || a.width <= 0 || a.height <= 0 {
		return ""
	}
	h := a.surface.height
	base := a.dashboard().Render(a.width, h)
	var screen string
	if a.ctrl != nil {
		top := int(math.Round(a.ctrl.Position()))
		screen = widgets.RenderDrawer(base, a.panel(), a.width, h, top)
	} else {
		screen = widgets.RenderDrawer(base, nil, a.width, h, h)
	}
	if h == 0 {
		return a.footer()
	}
	return screen + "\n" + a.footer()
}

func (a *App) dashboard() widgets.Widget {
	return widgets.VStack{
		Ratios: []float64{0.4, 0.6},
		Widgets: []widgets.Widget{
			widgets.HStack{
				Gap:    1,
				Ratios: []float64{0.5, 0.5},
				Widgets: []widgets.Widget{
					boxed{title: "Drawer", inner: a.stateList()},
					boxed{title: "Releases", inner: widgets.BarChart{Title: "by rest", Data: a.releaseData()}},
				},
			},
			a.events,
		},
	}
}

func (a *App) stateList() widgets.List {
	l := widgets.List{Title: "State", Marked: -1}
	if a.ctrl == nil {
		l.Items = []string{"hidden", "presentations: " + fmt.Sprint(a.sessions)}
		return l
	}
	m := a.ctrl.Model()
	l.Items = []string{
		fmt.Sprintf("y %.1f of %.0f", a.ctrl.Position(), m.ContainerHeight()),
		fmt.Sprintf("radius %.2f", a.ctrl.CornerRadius()),
		"rest " + a.ctrl.Rest().String(),
		fmt.Sprintf("marks %.1f / %.1f", m.UpperMarkY(), m.LowerMarkY()),
	}
	switch {
	case a.ctrl.Dragging():
		l.Items = append(l.Items, "dragging")
		l.Marked = len(l.Items) - 1
	case a.ctrl.Transitioning():
		l.Items = append(l.Items, "transitioning")
		l.Marked = len(l.Items) - 1
	}
	return l
}

func (a *App) releaseData() []widgets.ChartPoint {
	rests := []drawer.Rest{drawer.RestExpanded, drawer.RestPartial, drawer.RestHidden}
	data := make([]widgets.ChartPoint, 0, len(rests))
	for _, r := range rests {
		data = append(data, widgets.ChartPoint{Label: r.String(), Value: float64(a.releases[r])})
	}
	return data
}

func (a *App) panel() widgets.DrawerPanel {
	return widgets.DrawerPanel{
		Title:      "Drawer",
		Body:       a.content.lines(a.ctrl.Rest()),
		Radius:     a.ctrl.CornerRadius(),
		ShowHandle: a.cfg.UI.ShowHandle,
		Accent:     lipgloss.Color(a.cfg.UI.Accent),
	}
}

func (a *App) footer() string {
	style := statusStyle
	if a.failed {
		style = statusErrStyle
	}
	line := a.help.View(a.keys) + "  " + style.Render(a.status)
	line = ansi.Truncate(strings.TrimRight(line, " "), a.width, "…")
	return footerStyle.Width(a.width).Render(line)
}

func (a *App) setStatus(msg string) {
	a.status, a.failed = msg, false
}

func (a *App) setError(msg string) {
	a.status, a.failed = msg, true
}

// boxed frames any widget in a titled Box.
type boxed struct {
	title string
	inner widgets.Widget
}

func (b boxed) Render(width, height int) string {
	return widgets.Box{Title: b.title, Content: b.inner.Render(max(1, width-4), max(1, height-2))}.Render(width, height)
}
