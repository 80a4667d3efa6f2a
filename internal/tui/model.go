package tui

import (
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"go.ypath.dev/ypath"
	"go.ypath.dev/ypath/node"
)

// method is one of the package ypath operations the original dialog's
// method combo box let a user pick between.
type method int

const (
	methodSelect method = iota
	methodRequire
	methodPathResolve
	methodPathValidate
	methodEnsure
)

func (m method) String() string {
	switch m {
	case methodSelect:
		return "Select"
	case methodRequire:
		return "Require"
	case methodPathResolve:
		return "PathResolve"
	case methodPathValidate:
		return "PathValidate"
	case methodEnsure:
		return "Ensure"
	default:
		return "?"
	}
}

var methods = []method{methodSelect, methodRequire, methodPathResolve, methodPathValidate, methodEnsure}

// Model is a Bubble Tea program over an already-loaded document: a path
// input line, a method selector, and a live result pane, updated on every
// keystroke the same way the original dialog's OnEnChangeEdPath did.
type Model struct {
	doc      *node.Node
	filename string

	path   []rune
	cursor int

	methodIdx int

	result   string
	duration time.Duration

	width  int
	height int
}

// New builds a [Model] over an already-loaded document.
func New(doc *node.Node, filename string) *Model {
	m := &Model{doc: doc, filename: filename}
	m.reevaluate()

	return m
}

// Init satisfies [tea.Model]; nothing needs to happen before the first key.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model interface method.
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.methodIdx = (m.methodIdx + 1) % len(methods)
			m.reevaluate()

		case "shift+tab":
			m.methodIdx = (m.methodIdx - 1 + len(methods)) % len(methods)
			m.reevaluate()

		case "left":
			if m.cursor > 0 {
				m.cursor--
			}

		case "right":
			if m.cursor < len(m.path) {
				m.cursor++
			}

		case "home":
			m.cursor = 0

		case "end":
			m.cursor = len(m.path)

		case "backspace":
			if m.cursor > 0 {
				m.path = append(m.path[:m.cursor-1], m.path[m.cursor:]...)
				m.cursor--
				m.reevaluate()
			}

		case "delete":
			if m.cursor < len(m.path) {
				m.path = append(m.path[:m.cursor], m.path[m.cursor+1:]...)
				m.reevaluate()
			}

		case "ctrl+u":
			m.path = nil
			m.cursor = 0
			m.reevaluate()

		default:
			if r := []rune(msg.String()); len(r) == 1 {
				m.path = append(m.path[:m.cursor:m.cursor], append([]rune{r[0]}, m.path[m.cursor:]...)...)
				m.cursor++
				m.reevaluate()
			}
		}
	}

	return m, nil
}

// reevaluate runs the selected method against the current path text and
// stores the rendered result, mirroring UpdateOutput's per-method dispatch.
func (m *Model) reevaluate() {
	start := time.Now()

	path := string(m.path)

	switch methods[m.methodIdx] {
	case methodSelect:
		result, err := ypath.Select(m.doc, path)
		m.result = reportNode("Select", result, err)

	case methodRequire:
		result, err := ypath.Require(m.doc, path)
		m.result = reportNode("Require", result, err)

	case methodPathResolve:
		result, _, code, diag := ypath.PathResolve(m.doc, path)
		if code == ypath.OK {
			m.result = "PathResolve: OK (entire path could be resolved)\n---\n" + renderNode(result)
		} else {
			m.result = fmt.Sprintf("PathResolve:\n%s\nthe last matched node was:\n---\n%s",
				diag.Report(), renderNode(result))
		}

	case methodPathValidate:
		prefix, offset, code := ypath.PathValidate(path)
		if code == ypath.OK {
			m.result = "path is valid"
		} else {
			m.result = fmt.Sprintf("Invalid path: %s\n  valid part: %q\n  error offset: %d", code, prefix, offset)
		}

	case methodEnsure:
		result, err := ypath.Ensure(m.doc, path)
		m.result = reportNode("Ensure", result, err)
	}

	m.duration = time.Since(start)
}

// reportNode renders a Select/Require/Ensure-shaped result the way the
// original's UpdateOutput did for its emSelect/emRequire branches.
func reportNode(label string, result *node.Node, err error) string {
	if err != nil {
		var pe *ypath.Error
		if errors.As(err, &pe) {
			return fmt.Sprintf("%s:\n%s", label, pe.Detail())
		}

		return fmt.Sprintf("%s: %v", label, err)
	}

	return label + ": OK\n---\n" + renderNode(result)
}

// renderNode is ToString from the original dialog: distinguish "nothing
// matched" from an explicit null from a node that serializes to nothing.
func renderNode(n *node.Node) string {
	if !n.IsDefined() {
		return "<<empty>>"
	}

	if n.Kind() == node.KindNull {
		return "<<null>>"
	}

	s := n.String()
	if s == "" {
		return "<<??>>"
	}

	return s
}
