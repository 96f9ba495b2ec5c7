package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/take"
	"github.com/wippyai/take/alloc"
	"github.com/wippyai/take/taketest"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	consumedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Strikethrough(true)

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type containerKind int

const (
	kindBox containerKind = iota
	kindRc
	kindVec
	kindOwnedToken
	kindOwnedVec
)

func (k containerKind) String() string {
	switch k {
	case kindBox:
		return "box"
	case kindRc:
		return "rc"
	case kindVec:
		return "vec"
	case kindOwnedToken:
		return "owned"
	case kindOwnedVec:
		return "owned-vec"
	}
	return "?"
}

// entry is one live handle shown in the inspector.
type entry struct {
	box      *take.Box[*taketest.Token]
	rc       *take.Rc[*taketest.Token]
	vec      *take.Vec[*taketest.Token]
	owned    *taketest.Token
	label    string
	kind     containerKind
	consumed bool
}

type modelState int

const (
	stateList modelState = iota
	stateNaming
)

type inspectModel struct {
	arena    *alloc.Arena
	rec      *taketest.Recorder
	entries  []*entry
	log      []string
	input    textinput.Model
	pending  containerKind
	selected int
	seq      int
	state    modelState
}

func newInspectModel() *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "label"
	ti.CharLimit = 24

	return &inspectModel{
		arena: alloc.NewArena(),
		rec:   taketest.NewRecorder(),
		input: ti,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateNaming {
		switch key.Type {
		case tea.KeyEnter:
			label := strings.TrimSpace(m.input.Value())
			if label == "" {
				label = fmt.Sprintf("tok-%d", m.seq)
			}
			m.seq++
			m.create(m.pending, label)
			m.input.Reset()
			m.state = stateList
			return m, nil
		case tea.KeyEsc:
			m.input.Reset()
			m.state = stateList
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
	case "b":
		m.startNaming(kindBox)
		return m, textinput.Blink
	case "r":
		m.startNaming(kindRc)
		return m, textinput.Blink
	case "v":
		m.startNaming(kindVec)
		return m, textinput.Blink
	case "c":
		m.cloneSelected()
	case "t":
		m.takeSelected()
	case "d":
		m.dropSelected()
	}
	return m, nil
}

func (m *inspectModel) startNaming(kind containerKind) {
	m.pending = kind
	m.state = stateNaming
	m.input.Focus()
}

func (m *inspectModel) create(kind containerKind, label string) {
	e := &entry{kind: kind, label: label}
	switch kind {
	case kindBox:
		e.box = take.NewBoxIn(m.rec.Token(label), m.arena)
	case kindRc:
		e.rc = take.NewRcIn(m.rec.Token(label), m.arena)
	case kindVec:
		e.vec = take.NewVecIn[*taketest.Token](0, m.arena)
		for i := 0; i < 3; i++ {
			e.vec.Push(m.rec.Token(fmt.Sprintf("%s-%d", label, i)))
		}
	}
	m.entries = append(m.entries, e)
	m.logf("created %s %q", kind, label)
}

func (m *inspectModel) current() *entry {
	if m.selected < 0 || m.selected >= len(m.entries) {
		return nil
	}
	return m.entries[m.selected]
}

func (m *inspectModel) cloneSelected() {
	e := m.current()
	if e == nil || e.consumed || e.kind != kindRc {
		m.logf("clone: select a live rc handle")
		return
	}
	m.entries = append(m.entries, &entry{
		kind:  kindRc,
		label: e.label,
		rc:    e.rc.Clone(),
	})
	m.logf("cloned rc %q, owners=%d", e.label, e.rc.StrongCount())
}

func (m *inspectModel) takeSelected() {
	e := m.current()
	if e == nil || e.consumed {
		m.logf("take: select a live handle")
		return
	}

	switch e.kind {
	case kindBox:
		out := e.box.Take()
		e.consumed = true
		m.entries = append(m.entries, &entry{kind: kindOwnedToken, label: e.label, owned: out})
		m.logf("took %q out of box, shell freed", e.label)
	case kindRc:
		owners := e.rc.StrongCount()
		out := e.rc.Take()
		e.consumed = true
		m.entries = append(m.entries, &entry{kind: kindOwnedToken, label: e.label, owned: out})
		if owners > 1 {
			m.logf("took %q from shared rc: payload cloned, sibling untouched", e.label)
		} else {
			m.logf("took %q from sole-owner rc: no clone", e.label)
		}
	case kindVec:
		out := e.vec.Take()
		e.consumed = true
		m.entries = append(m.entries, &entry{kind: kindOwnedVec, label: e.label, vec: out})
		m.logf("took %d elements of %q, zero drops fired", out.Len(), e.label)
	case kindOwnedToken, kindOwnedVec:
		m.logf("take: %q is already owned", e.label)
	}
}

func (m *inspectModel) dropSelected() {
	e := m.current()
	if e == nil || e.consumed {
		m.logf("drop: select a live handle")
		return
	}

	e.consumed = true
	switch e.kind {
	case kindBox:
		e.box.Drop()
	case kindRc:
		e.rc.Drop()
	case kindVec, kindOwnedVec:
		e.vec.Drop()
	case kindOwnedToken:
		e.owned.Drop()
	}
	m.logf("dropped %s %q", e.kind, e.label)
}

func (m *inspectModel) logf(format string, args ...any) {
	m.log = append(m.log, fmt.Sprintf(format, args...))
	if len(m.log) > 8 {
		m.log = m.log[len(m.log)-8:]
	}
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("take-inspect"))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(helpStyle.Render("no handles yet — press b, r or v to create one"))
		b.WriteString("\n")
	}

	for i, e := range m.entries {
		line := fmt.Sprintf("%-9s %s", kindStyle.Render(e.kind.String()), e.label)
		if e.kind == kindRc && !e.consumed {
			line += fmt.Sprintf("  owners=%d", e.rc.StrongCount())
		}
		if e.kind == kindVec && !e.consumed {
			line += fmt.Sprintf("  len=%d", e.vec.Len())
		}
		switch {
		case e.consumed:
			line = consumedStyle.Render(line + "  (consumed)")
		case i == m.selected:
			line = selectedStyle.Render("> " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	st := m.arena.Stats()
	b.WriteString("\n")
	b.WriteString(statStyle.Render(fmt.Sprintf(
		"shells: allocs=%d frees=%d live=%d   drops=%d double-drops=%d",
		st.Allocs, st.Frees, st.LiveBlocks, m.rec.TotalDrops(), m.rec.DoubleDrops())))
	b.WriteString("\n\n")

	if m.rec.DoubleDrops() > 0 {
		b.WriteString(errorStyle.Render("DOUBLE DROP DETECTED"))
		b.WriteString("\n")
	}

	for _, l := range m.log {
		b.WriteString(logStyle.Render("• " + l))
		b.WriteString("\n")
	}

	if m.state == stateNaming {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("label for new %s: %s\n", m.pending, m.input.View()))
		b.WriteString(helpStyle.Render("enter: create • esc: cancel"))
	} else {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("b: box • r: rc • v: vec • c: clone rc • t: take • d: drop • ↑/↓: select • q: quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInspectModel())
	_, err := p.Run()
	return err
}
