package main

import (
	"fmt"
	"sort"
	"strings"
	"unsafe"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nativekit/block-runtime/encoding"
	"github.com/nativekit/block-runtime/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD580"))

	selStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	classes  []classInfo
	inputs   []textinput.Model
	result   string
	class    int
	method   int
	focusIdx int
	state    modelState
}

type classInfo struct {
	name    string
	obj     unsafe.Pointer
	methods []methodInfo
}

type methodInfo struct {
	name   string
	sel    engine.Sel
	sig    encoding.Signature
	params []paramInfo
}

type paramInfo struct {
	name    string
	enc     encoding.Encoding
	typeStr string
}

type modelState int

const (
	stateSelectClass modelState = iota
	stateSelectMethod
	stateInputArgs
	stateShowResult
)

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{state: stateSelectClass}
}

type loadedMsg struct {
	err     error
	classes []classInfo
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadClasses
}

func (m *interactiveModel) loadClasses() tea.Msg {
	var classes []classInfo
	for name, obj := range demoObjects {
		cls, ok := engine.LookupClass(name)
		if !ok {
			return loadedMsg{err: fmt.Errorf("class %q not registered", name)}
		}
		ci := classInfo{name: name, obj: obj}
		for _, sel := range cls.Selectors() {
			method, _ := cls.InstanceMethod(sel)
			mi := methodInfo{name: sel.Name(), sel: sel, sig: method.Signature()}
			for i := 2; i < mi.sig.NumArgs(); i++ {
				enc, _ := mi.sig.Arg(i)
				mi.params = append(mi.params, paramInfo{
					name:    fmt.Sprintf("arg%d", i-2),
					enc:     enc,
					typeStr: encTypeStr(enc),
				})
			}
			ci.methods = append(ci.methods, mi)
		}
		classes = append(classes, ci)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].name < classes[j].name })

	return loadedMsg{classes: classes}
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.classes = msg.classes
		return m, nil

	case callResultMsg:
		m.err = msg.err
		m.result = msg.result
		m.state = stateShowResult
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateSelectClass:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "up", "k":
				if m.class > 0 {
					m.class--
				}
			case "down", "j":
				if m.class < len(m.classes)-1 {
					m.class++
				}
			case "enter":
				if len(m.classes) > 0 {
					m.method = 0
					m.state = stateSelectMethod
				}
			}

		case stateSelectMethod:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.state = stateSelectClass
			case "up", "k":
				if m.method > 0 {
					m.method--
				}
			case "down", "j":
				if m.method < len(m.currentClass().methods)-1 {
					m.method++
				}
			case "enter":
				mi := m.currentMethod()
				if len(mi.params) == 0 {
					return m, m.callMethod
				}
				m.prepareInputs()
				m.state = stateInputArgs
			}

		case stateInputArgs:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.state = stateSelectMethod
				return m, nil
			case "tab", "down":
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.refocus()
				return m, nil
			case "shift+tab", "up":
				m.focusIdx = (m.focusIdx - 1 + len(m.inputs)) % len(m.inputs)
				m.refocus()
				return m, nil
			case "enter":
				return m, m.callMethod
			}
			var cmds []tea.Cmd
			for i := range m.inputs {
				var cmd tea.Cmd
				m.inputs[i], cmd = m.inputs[i].Update(msg)
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)

		case stateShowResult:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "enter", "esc":
				m.err = nil
				m.state = stateSelectMethod
			}
		}
	}

	return m, nil
}

func (m *interactiveModel) currentClass() classInfo {
	return m.classes[m.class]
}

func (m *interactiveModel) currentMethod() methodInfo {
	return m.classes[m.class].methods[m.method]
}

func (m *interactiveModel) prepareInputs() {
	mi := m.currentMethod()
	m.inputs = make([]textinput.Model, len(mi.params))
	for i, p := range mi.params {
		ti := textinput.New()
		ti.Placeholder = p.typeStr
		ti.Prompt = p.name + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) refocus() {
	for i := range m.inputs {
		if i == m.focusIdx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *interactiveModel) callMethod() tea.Msg {
	ci := m.currentClass()
	mi := m.currentMethod()

	args := make([]any, len(mi.params))
	for i := range mi.params {
		args[i] = convertArg(m.inputs[i].Value(), mi.params[i].enc)
	}

	result, err := engine.Send(ci.obj, mi.sel, args...)
	if err != nil {
		return callResultMsg{err: err}
	}
	if mi.sig.Ret == encoding.Void {
		return callResultMsg{result: "(void)"}
	}

	return callResultMsg{result: fmt.Sprintf("%v", result)}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if len(m.classes) == 0 {
		return "Loading classes..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Block Runtime Explorer"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectClass:
		b.WriteString("Select a class:\n\n")
		for i, ci := range m.classes {
			cursor := "  "
			line := classStyle.Render(ci.name) + helpStyle.Render(fmt.Sprintf("  (%d selectors)", len(ci.methods)))
			if i == m.class {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + ci.name))
				b.WriteString(helpStyle.Render(fmt.Sprintf("  (%d selectors)", len(ci.methods))))
			} else {
				b.WriteString(cursor + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • q quit"))

	case stateSelectMethod:
		ci := m.currentClass()
		b.WriteString(classStyle.Render(ci.name))
		b.WriteString("  select a selector:\n\n")
		for i, mi := range ci.methods {
			cursor := "  "
			if i == m.method {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatMethod(mi)))
			} else {
				b.WriteString(cursor + m.formatMethod(mi))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter send • esc back • q quit"))

	case stateInputArgs:
		mi := m.currentMethod()
		b.WriteString(fmt.Sprintf("Sending %s\n\n", selStyle.Render(mi.name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(mi.params[i].typeStr))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter send • esc back"))

	case stateShowResult:
		ci := m.currentClass()
		mi := m.currentMethod()
		b.WriteString(fmt.Sprintf("Result of [%s %s]:\n\n", classStyle.Render(ci.name), selStyle.Render(mi.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatMethod(mi methodInfo) string {
	var params []string
	for _, p := range mi.params {
		params = append(params, p.name+": "+typeStyle.Render(p.typeStr))
	}
	result := ""
	if mi.sig.Ret != encoding.Void {
		result = " -> " + typeStyle.Render(encTypeStr(mi.sig.Ret))
	}
	return selStyle.Render(mi.name) + "(" + strings.Join(params, ", ") + ")" + result
}
