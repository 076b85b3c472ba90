package viz

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/rsvp/internal/playback"
)

const (
	rateStep    = 25
	pivotColumn = 18
	barWidth    = 40
	maxPresets  = 4
)

// TickMsg delivers a scheduled clock tick back to the update loop.
type TickMsg struct {
	Tick playback.Tick
}

// Preset is a named rate bound to a number key.
type Preset struct {
	Name string
	Rate int
}

type Options struct {
	Title    string
	Theme    Theme
	SeekStep int
	Presets  []Preset
	Logger   *slog.Logger
}

// Model is the reader UI. It forwards keys to the controller and turns the
// controller's pending tick into a tea.Tick command.
type Model struct {
	ctrl     *playback.Controller
	title    string
	theme    Theme
	styles   Styles
	seekStep int
	presets  []Preset
	logger   *slog.Logger
	width    int
	showHelp bool
}

func NewModel(ctrl *playback.Controller, opts Options) Model {
	if opts.Theme.Name == "" {
		opts.Theme = ThemeCyberpunk
	}
	if opts.SeekStep <= 0 {
		opts.SeekStep = playback.DefaultSeek
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if len(opts.Presets) > maxPresets {
		opts.Presets = opts.Presets[:maxPresets]
	}
	return Model{
		ctrl:     ctrl,
		title:    opts.Title,
		theme:    opts.Theme,
		styles:   NewStyles(opts.Theme),
		seekStep: opts.SeekStep,
		presets:  opts.Presets,
		logger:   opts.Logger,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd { return m.schedule() }

// schedule arms at most one tea.Tick per clock cycle.
func (m Model) schedule() tea.Cmd {
	tick, ok := m.ctrl.NextTick()
	if !ok {
		return nil
	}
	return tea.Tick(tick.Interval, func(time.Time) tea.Msg { return TickMsg{Tick: tick} })
}

// Update handles input events and clock ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case TickMsg:
		if !m.ctrl.Advance(msg.Tick) {
			m.logger.Debug("stale tick dropped", "gen", msg.Tick.Gen)
		}
		return m, m.schedule()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case KeyQuit, KeyCtrlC:
		m.ctrl.Pause()
		return m, tea.Quit
	case KeyToggle:
		m.ctrl.Toggle()
	case KeyRestart:
		m.ctrl.Restart()
	case KeyBack, KeyBackH:
		m.ctrl.SeekBackward(m.seekStep)
	case KeyForward, KeyForwardL:
		m.ctrl.SeekForward(m.seekStep)
	case KeyFaster, KeyFasterK:
		m.ctrl.SetRate(m.ctrl.Rate() + rateStep)
	case KeySlower, KeySlowerJ:
		m.ctrl.SetRate(m.ctrl.Rate() - rateStep)
	case KeyTheme:
		m.theme = NextTheme(m.theme.Name)
		m.styles = NewStyles(m.theme)
	case KeyHelp:
		m.showHelp = !m.showHelp
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(m.presets) {
			p := m.presets[key[0]-'1']
			m.ctrl.SetRate(p.Rate)
			m.logger.Debug("preset", "name", p.Name, "rate", p.Rate)
		}
	}
	return m, m.schedule()
}

// View renders the reader.
func (m Model) View() string {
	s := m.styles
	snap := m.ctrl.Snapshot()

	bw := max(10, min(barWidth, m.width-8))

	var b strings.Builder
	title := m.title
	if title == "" {
		title = "rsvp"
	}
	b.WriteString(GradientText(strings.ToUpper(title), m.theme.Title, m.theme.Pivot) + "\n")
	b.WriteString(Separator(bw, s) + "\n\n")

	b.WriteString(Marker(pivotColumn, s) + "\n")
	if snap.State == playback.Idle {
		b.WriteString(strings.Repeat(" ", pivotColumn-6) + s.Help.Render("nothing loaded") + "\n")
	} else {
		b.WriteString(RenderWord(snap.Token, pivotColumn, s) + "\n")
	}
	b.WriteString(Marker(pivotColumn, s) + "\n\n")

	b.WriteString(ProgressBar(snap.Progress, bw, s) + "\n\n")
	b.WriteString(m.status(snap) + "\n")
	b.WriteString(s.Label.Render("Word") + s.Value.Render(fmt.Sprintf("%d / %d", snap.Position+1, snap.Len)) + "\n")
	b.WriteString(s.Label.Render("Rate") + s.Value.Render(fmt.Sprintf("%d wpm", snap.Rate)) + "\n")
	b.WriteString(s.Label.Render("Time") + s.Value.Render(fmt.Sprintf("%s / %s (-%s)", formatDuration(snap.Elapsed), formatDuration(snap.Total), formatDuration(snap.Remaining))) + "\n")
	if len(m.presets) > 0 {
		b.WriteString(s.Label.Render("Presets") + s.Value.Render(m.presetLine(snap.Rate)) + "\n")
	}
	b.WriteString("\n" + s.Help.Render("SP:Play/Pause ←→:Seek ↑↓:Rate R:Restart T:Theme ?:Help Q:Quit"))

	main := s.Panel.Render(b.String())
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, main, s.Panel.Render(helpText(m.seekStep)))
	}
	return main
}

func (m Model) status(snap playback.Snapshot) string {
	switch snap.State {
	case playback.Playing:
		return m.styles.Playing.Render("▶ PLAYING")
	case playback.Finished:
		return m.styles.Playing.Render("■ FINISHED")
	case playback.Ready:
		return m.styles.Paused.Render("❚❚ PAUSED")
	}
	return m.styles.Help.Render("IDLE")
}

func (m Model) presetLine(rate int) string {
	parts := make([]string, len(m.presets))
	for i, p := range m.presets {
		label := fmt.Sprintf("%d:%s", i+1, p.Name)
		if p.Rate == rate {
			label = m.styles.Pivot.Render(label)
		}
		parts[i] = label
	}
	return strings.Join(parts, " ")
}

func helpText(seek int) string {
	return fmt.Sprintf(`KEYBOARD SHORTCUTS
  Space    play / pause
  R        restart from the first word
  ← / H    back %[1]d words
  → / L    forward %[1]d words
  ↑ / K    faster (+%[2]d wpm)
  ↓ / J    slower (-%[2]d wpm)
  1-4      rate presets
  T        cycle themes
  ?        toggle this help
  Q        quit`, seek, rateStep)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Run starts the reader full-screen and blocks until the user quits.
func Run(ctrl *playback.Controller, opts Options) error {
	_, err := tea.NewProgram(NewModel(ctrl, opts), tea.WithAltScreen()).Run()
	return err
}
