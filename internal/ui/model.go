package ui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"agentdeck/internal/config"
	"agentdeck/internal/deck"
	"agentdeck/internal/slides"
	"agentdeck/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

// chromeRows is the controls row plus the progress bar row.
const chromeRows = 2

// Model is the root tea.Model of the presentation.
type Model struct {
	deck       *deck.Deck
	slides     []slides.Slide
	keys       KeyMap
	dispatch   *Dispatcher
	controls   *Controls
	stage      Stage
	transition *Transition
	bar        ProgressBar
	overlays   OverlayStack
	logger     *slog.Logger

	fps        int
	elapsed    time.Duration
	fullscreen bool
	width      int
	height     int
}

var _ tea.Model = (*Model)(nil)

// NewModel wires a deck and its slides to the terminal. d must have been built
// from slides.StepCounts(s).
func NewModel(d *deck.Deck, s []slides.Slide, cfg *config.Config, logger *slog.Logger) (*Model, error) {
	if d.Total() != len(s) {
		return nil, fmt.Errorf("deck has %d slides, content has %d", d.Total(), len(s))
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	fps := cfg.Display.FPS
	if fps <= 0 {
		fps = config.DefaultConfig().Display.FPS
	}
	m := &Model{
		deck:       d,
		slides:     s,
		keys:       NewKeyMap(cfg.Keys),
		dispatch:   NewDispatcher(d, logger),
		controls:   NewControls(),
		stage:      Stage{CellAspect: cfg.Display.CellAspect},
		transition: NewTransition(fps, cfg.Display.Transitions),
		bar:        NewProgressBar(),
		logger:     logger,
		fps:        fps,
		fullscreen: cfg.Display.AltScreen,
	}
	m.controls.Focus.OnChange = m.onFocus
	d.Observe(m.onChange)
	return m, nil
}

func (m *Model) onFocus(from, to string) {
	m.logger.Debug("focus", "from", from, "to", to)
}

func (m *Model) onChange(c deck.Change) {
	m.transition.Start(c)
	m.logger.Info("slide change",
		"from", c.From,
		"to", c.To,
		"direction", c.Direction.String(),
		"title", m.slides[c.To].Title,
	)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return frameTick(m.fps)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case frameMsg:
		m.elapsed += time.Second / time.Duration(m.fps)
		m.transition.Tick()
		return m, frameTick(m.fps)
	case DismissOverlayMsg:
		m.overlays.Pop()
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keys.Lookup(msg)
	if m.overlays.Len() > 0 {
		if ok && action == ActionQuit {
			return tea.Quit
		}
		cmd, _ := m.overlays.HandleKey(msg)
		return cmd
	}
	if !ok {
		return nil
	}
	return m.perform(action)
}

func (m *Model) perform(a Action) tea.Cmd {
	switch a {
	case ActionAdvance, ActionRetreat:
		m.dispatch.Navigate(a)
	case ActionFullscreen:
		return m.toggleFullscreen()
	case ActionHelp:
		m.overlays.Push(NewHelpView(m.keys))
	case ActionQuit:
		return tea.Quit
	case ActionFocusNext:
		m.controls.Focus.Next()
	case ActionFocusPrev:
		m.controls.Focus.Prev()
	case ActionPress:
		return m.press(m.controls.Focus.Current)
	}
	return nil
}

// press activates a button. Disabled buttons ignore presses.
func (m *Model) press(id string) tea.Cmd {
	if !Enabled(id, m.controlsState()) {
		return nil
	}
	switch id {
	case ButtonPrev:
		m.dispatch.Navigate(ActionRetreat)
	case ButtonNext:
		m.dispatch.Navigate(ActionAdvance)
	case ButtonFullscreen:
		return m.toggleFullscreen()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.overlays.Len() > 0 {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	id, ok := m.controls.HitTest(msg.X, msg.Y)
	if !ok {
		// Clicking anywhere off the buttons blurs them.
		m.controls.Focus.Clear()
		return nil
	}
	m.controls.Focus.SetFocus(id)
	return m.press(id)
}

func (m *Model) toggleFullscreen() tea.Cmd {
	m.fullscreen = !m.fullscreen
	m.logger.Info("fullscreen", "enabled", m.fullscreen)
	if m.fullscreen {
		return tea.EnterAltScreen
	}
	return tea.ExitAltScreen
}

func (m *Model) controlsState() ControlsState {
	ctrl := m.deck.Controller()
	return ControlsState{
		CanPrev:    ctrl.CanPrev(),
		CanNext:    ctrl.CanNext(),
		Fullscreen: m.fullscreen,
	}
}

// Fullscreen reports whether the deck is on the alternate screen.
func (m *Model) Fullscreen() bool { return m.fullscreen }

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= chromeRows {
		return ""
	}
	rows := m.height - chromeRows
	canvas := m.stage.Fit(m.width, rows)

	var body string
	if top, ok := m.overlays.Peek(); ok {
		body = top.Render(m.width, rows)
	} else {
		body = m.stage.Place(canvas, m.width, rows, m.renderCanvas(canvas))
	}

	idx, total := m.deck.Index(), m.deck.Total()
	m.controls.SetOrigin(1, rows)
	status := statusRow(" "+m.controls.View(m.controlsState()), m.bar.Counter(idx, total)+" ", m.width)

	return strings.Join([]string{
		body,
		textutil.FitLine(status, m.width),
		m.bar.View(idx, total, m.width),
	}, "\n")
}

// renderCanvas draws the visible slide, or both slides mid-transition.
func (m *Model) renderCanvas(c Canvas) string {
	current := m.renderSlide(m.deck.Index(), m.deck.Step(), c)
	if !m.transition.Active() || m.transition.To() != m.deck.Index() {
		return current
	}
	from := m.transition.From()
	outgoing := m.renderSlide(from, m.outgoingStep(from), c)
	if m.transition.Direction() == deck.Backward {
		return textutil.Pan(current, outgoing, c.Width, m.transition.Window(c.Width))
	}
	return textutil.Pan(outgoing, current, c.Width, m.transition.Window(c.Width))
}

// outgoingStep is the step the outgoing slide was showing when it left.
// A stepper only hands off forward from its last step, and it never lets the
// deck move backward out of it.
func (m *Model) outgoingStep(index int) int {
	if m.transition.Direction() == deck.Forward {
		return m.slides[index].Steps
	}
	return 0
}

func (m *Model) renderSlide(index, step int, c Canvas) string {
	return m.slides[index].Render(slides.Frame{
		Width:   c.Width,
		Height:  c.Height,
		Step:    step,
		Elapsed: m.elapsed,
	})
}
