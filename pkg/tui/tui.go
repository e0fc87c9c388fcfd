// Package tui provides a terminal project browser for m8codec.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/m8kit/m8codec/pkg/project"
	"github.com/m8kit/m8codec/pkg/track"
)

// Acid-inspired color scheme (303/acid aesthetic)
var (
	acidGreen  = lipgloss.Color("#39FF14")
	acidYellow = lipgloss.Color("#FFFF00")
	silverGray = lipgloss.Color("#C0C0C0")
	darkGray   = lipgloss.Color("#333333")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(acidGreen).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	menuStyle = lipgloss.NewStyle().
			Foreground(silverGray).
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(acidGreen).
			Bold(true).
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(acidYellow).
			PaddingTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(acidGreen).
			Padding(1, 2)
)

// Section is a browsable top-level region of a project.
type Section int

const (
	SectionSong Section = iota
	SectionChains
	SectionPhrases
	SectionInstruments
)

var sectionNames = []string{"SONG", "CHAINS", "PHRASES", "INSTRUMENTS"}

// State represents the current TUI state.
type State int

const (
	StateFilePicker State = iota
	StateBrowsing
	StateDetail
)

// Model is the bubbletea model for the project browser.
type Model struct {
	state      State
	filePicker filepicker.Model
	project    *project.Project
	path       string
	err        error

	section Section
	cursor  int
	width   int
	height  int
}

// New builds a browser model. A nil project starts the picker at the
// current directory so a project file can be chosen interactively.
func New(p *project.Project) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".m8s"}
	fp.CurrentDirectory, _ = os.Getwd()

	m := Model{filePicker: fp, project: p}
	if p != nil {
		m.state = StateBrowsing
	} else {
		m.state = StateFilePicker
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.state == StateFilePicker {
		return m.filePicker.Init()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateFilePicker {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}

		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
			data, err := os.ReadFile(path)
			if err != nil {
				m.err = err
				return m, nil
			}
			p, err := project.Read(data)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.project = p
			m.path = path
			m.state = StateBrowsing
			return m, nil
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.state {
		case StateBrowsing:
			return m.updateBrowsing(msg)
		case StateDetail:
			return m.updateDetail(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		if m.section > SectionSong {
			m.section--
			m.cursor = 0
		}
	case "right", "l":
		if m.section < SectionInstruments {
			m.section++
			m.cursor = 0
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.sectionLen()-1 {
			m.cursor++
		}
	case "enter":
		m.state = StateDetail
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.state = StateBrowsing
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) sectionLen() int {
	switch m.section {
	case SectionSong:
		return track.SongRowCount
	case SectionChains:
		return track.ChainCount
	case SectionPhrases:
		return track.PhraseCount
	default:
		return m.project.Instruments.Len()
	}
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(" M8CODEC PROJECT BROWSER "))
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("error: %s\n", m.err.Error())))
	}

	switch m.state {
	case StateFilePicker:
		s.WriteString(m.viewFilePicker())
	case StateBrowsing:
		s.WriteString(m.viewBrowsing())
	case StateDetail:
		s.WriteString(m.viewDetail())
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("h/l: switch section • j/k: move • enter: detail • esc: back • q: quit"))
	return s.String()
}

func (m Model) viewFilePicker() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(" SELECT A PROJECT FILE "))
	s.WriteString("\n\n")
	s.WriteString(m.filePicker.View())
	return s.String()
}

func (m Model) viewBrowsing() string {
	var s strings.Builder

	header := fmt.Sprintf(" %s ", m.project.Metadata.Name())
	s.WriteString(statusStyle.Render(header))
	s.WriteString("\n\n")

	for i, name := range sectionNames {
		label := fmt.Sprintf("  %s", name)
		if Section(i) == m.section {
			label = fmt.Sprintf("▸ %s", name)
			s.WriteString(selectedStyle.Render(label))
		} else {
			s.WriteString(menuStyle.Render(label))
		}
		s.WriteString("\n")
	}
	s.WriteString("\n")
	s.WriteString(m.viewRows())

	return boxStyle.Render(s.String())
}

// viewRows renders a short scrolling window of the current section's
// entries around the cursor, each summarized on one line.
func (m Model) viewRows() string {
	const window = 10
	start := m.cursor - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > m.sectionLen() {
		end = m.sectionLen()
	}

	var s strings.Builder
	for i := start; i < end; i++ {
		line := fmt.Sprintf("%3d  %s", i, m.rowSummary(i))
		if i == m.cursor {
			s.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			s.WriteString(menuStyle.Render("  " + line))
		}
		s.WriteString("\n")
	}
	return s.String()
}

func (m Model) rowSummary(i int) string {
	switch m.section {
	case SectionSong:
		row := m.project.Song.Row(i)
		if row.IsEmpty() {
			return "empty"
		}
		return fmt.Sprintf("chain %02X", row.Cell(0))
	case SectionChains:
		ch := m.project.Chains.Get(i)
		step := ch.Step(0)
		if step.IsEmpty() {
			return "empty"
		}
		return fmt.Sprintf("phrase %02X", step.Phrase)
	case SectionPhrases:
		ph := m.project.Phrases.Get(i)
		step := ph.Step(0)
		if step.Note == track.NoteEmpty {
			return "empty"
		}
		return fmt.Sprintf("note %d instr %02X", step.Note, step.Instrument)
	default:
		inst := m.project.Instruments.Get(i)
		if inst.IsEmpty() {
			return "empty"
		}
		return fmt.Sprintf("%-10s %q", inst.FamilyName(), inst.Name())
	}
}

func (m Model) viewDetail() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(fmt.Sprintf(" %s %d ", sectionNames[m.section], m.cursor)))
	s.WriteString("\n\n")

	switch m.section {
	case SectionSong:
		row := m.project.Song.Row(m.cursor)
		for col := 0; col < track.SongColumnCount; col++ {
			s.WriteString(fmt.Sprintf("track %d: chain %02X\n", col, row.Cell(col)))
		}
	case SectionChains:
		ch := m.project.Chains.Get(m.cursor)
		for i := 0; i < track.ChainStepCount; i++ {
			step := ch.Step(i)
			if step.IsEmpty() {
				continue
			}
			s.WriteString(fmt.Sprintf("step %2d: phrase %02X transpose %d\n", i, step.Phrase, step.Transpose))
		}
	case SectionPhrases:
		ph := m.project.Phrases.Get(m.cursor)
		for i := 0; i < track.StepCount; i++ {
			step := ph.Step(i)
			if step.Note == track.NoteEmpty {
				continue
			}
			s.WriteString(fmt.Sprintf("step %2d: note %3d vel %3d instr %02X\n", i, step.Note, step.Velocity, step.Instrument))
		}
	default:
		inst := m.project.Instruments.Get(m.cursor)
		s.WriteString(fmt.Sprintf("family: %s\nname: %q\n\n", inst.FamilyName(), inst.Name()))
		for _, name := range inst.ParamNames() {
			v, err := inst.GetParam(name)
			if err != nil {
				continue
			}
			s.WriteString(fmt.Sprintf("%s: %d\n", name, v))
		}
	}

	return boxStyle.Render(s.String())
}

// Run starts the interactive project browser. A nil project opens the
// file picker first; a non-nil project starts directly in browse mode.
func Run(p *project.Project) error {
	prog := tea.NewProgram(New(p), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
