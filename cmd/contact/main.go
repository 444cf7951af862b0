// Command contact is a terminal version of the portfolio contact form.
package main

import (
	"context"
	"errors"
	"image/color"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/EaheaMozumder/my-portfolio/internal/chime"
	"github.com/EaheaMozumder/my-portfolio/internal/config"
	"github.com/EaheaMozumder/my-portfolio/internal/contact"
	"github.com/EaheaMozumder/my-portfolio/internal/particles"
	"github.com/EaheaMozumder/my-portfolio/internal/theme"
)

const inputWidth = 48

// readClipboard is swapped out in tests.
var readClipboard = clipboard.ReadAll

type submittedMsg struct{ err error }

type styles struct {
	title, label, input, focused, errText, muted lipgloss.Style
	status                                       map[contact.Kind]lipgloss.Style
}

func hex(c color.NRGBA) lipgloss.Color {
	cf, _ := colorful.MakeColor(c)
	return lipgloss.Color(cf.Hex())
}

func newStyles(p theme.Palette) styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(hex(p.Muted)).
		Padding(0, 1).
		Width(inputWidth)
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(hex(p.Accent)),
		label:   lipgloss.NewStyle().Foreground(hex(p.Text)),
		input:   box,
		focused: box.Copy().BorderForeground(hex(p.Accent)),
		errText: lipgloss.NewStyle().Foreground(hex(p.Error)),
		muted:   lipgloss.NewStyle().Foreground(hex(p.Muted)),
		status: map[contact.Kind]lipgloss.Style{
			contact.Pending: lipgloss.NewStyle().Foreground(hex(p.Accent)),
			contact.Sent:    lipgloss.NewStyle().Foreground(hex(p.Success)),
			contact.Failed:  lipgloss.NewStyle().Foreground(hex(p.Error)),
			contact.Invalid: lipgloss.NewStyle().Foreground(hex(p.Error)),
		},
	}
}

type model struct {
	ctx       context.Context
	submitter *contact.Submitter
	chime     *chime.Player
	styles    styles

	form   contact.Form
	focus  int
	errs   contact.Errors
	status contact.Status
	note   string
}

func newModel(ctx context.Context, cfg *config.Config, submitter *contact.Submitter) model {
	m := model{
		ctx:       ctx,
		submitter: submitter,
		styles:    newStyles(theme.Resolve(theme.FileStore{Path: cfg.ThemeFile}, cfg.PreferDark).Palette()),
	}
	if cfg.SoundCues {
		m.chime = chime.NewPlayer()
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) field() contact.Field { return contact.Fields[m.focus] }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		m.status = contact.StatusFor(msg.err)
		m.errs = contact.FieldErrors(msg.err)
		if msg.err == nil {
			m.form = contact.Form{}
			m.focus = 0
		}
		m.playCue(msg.err)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "down":
			m.focus = (m.focus + 1) % len(contact.Fields)
		case "shift+tab", "up":
			m.focus = (m.focus + len(contact.Fields) - 1) % len(contact.Fields)
		case "enter":
			return m.submit()
		case "ctrl+v":
			text, err := readClipboard()
			if err != nil {
				m.note = "Clipboard unavailable: " + err.Error()
				return m, nil
			}
			m.appendText(text)
		case "backspace":
			if v := []rune(m.form.Get(m.field())); len(v) > 0 {
				m.form.Set(m.field(), string(v[:len(v)-1]))
			}
		default:
			switch msg.Type {
			case tea.KeyRunes:
				m.appendText(string(msg.Runes))
			case tea.KeySpace:
				m.appendText(" ")
			}
		}
	}
	return m, nil
}

func (m *model) appendText(s string) {
	// single-line fields drop pasted newlines
	if m.field() != contact.FieldMessage {
		s = strings.Join(strings.Fields(s), " ")
	}
	m.form.Set(m.field(), m.form.Get(m.field())+s)
}

func (m model) submit() (tea.Model, tea.Cmd) {
	if m.status.Kind == contact.Pending {
		return m, nil
	}
	if errs := contact.Validate(m.form); errs != nil {
		m.errs = errs
		m.status = contact.StatusFor(contact.ErrInvalid)
		return m, nil
	}
	m.errs = nil
	m.status = contact.StatusPending
	form, ctx, s := m.form, m.ctx, m.submitter
	return m, func() tea.Msg {
		return submittedMsg{err: s.Submit(ctx, form)}
	}
}

func (m *model) playCue(err error) {
	if m.chime == nil || errors.Is(err, context.Canceled) {
		return
	}
	cue := chime.Success
	if err != nil {
		cue = chime.Failure
	}
	if perr := m.chime.Play(cue); perr != nil {
		m.note = "Sound disabled: " + perr.Error()
		m.chime = nil
	}
}

func (m model) View() string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.title.Render("Contact") + "\n\n")

	for i, f := range contact.Fields {
		label := s.label.Render(strings.ToUpper(string(f[:1])) + string(f[1:]))
		if msg := m.errs[f]; msg != "" {
			label += "  " + s.errText.Render(msg)
		}
		value := m.form.Get(f)
		box := s.input
		if i == m.focus {
			box = s.focused
			value += "_"
		}
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, label, box.Render(value)) + "\n")
	}

	if m.status.Text != "" {
		b.WriteString("\n" + s.status[m.status.Kind].Render(m.status.Text) + "\n")
	}
	if m.note != "" {
		b.WriteString(s.muted.Render(m.note) + "\n")
	}
	b.WriteString("\n" + s.muted.Render("tab: next field  enter: send  ctrl+v: paste  esc: quit"))
	return b.String()
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// cancelling abandons a submission still in flight on quit
	ctx, cancel := context.WithCancel(context.Background())
	submitter := contact.NewSubmitter(cfg.ContactDelay, cfg.ContactFailureRate, particles.NewRand(cfg.RandSeed()))
	_, err = tea.NewProgram(newModel(ctx, cfg, submitter)).Run()
	cancel()
	if err != nil {
		log.Fatal(err)
	}
}
