package main

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cnichte/npm-dependency-switcher/internal/config"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			val := m.textInput.Value()
			if m.validate != nil {
				if err := m.validate(val); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.errMsg = ""
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// --- confirmModel: bubbletea model for yes/no confirmation ---

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes := " Yes "
	no := " No "
	if m.value {
		yes = selectedStyle.Render(" Yes ")
	} else {
		no = selectedStyle.Render(" No ")
	}
	return fmt.Sprintf("%s %s / %s\n", titleStyle.Render(m.title), yes, no)
}

// --- prompt helpers ---

func promptInput(title, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	m := inputModel{
		textInput: ti,
		title:     title,
		validate:  validate,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return rm.textInput.Value(), nil
}

func promptConfirm(title string) (bool, error) {
	m := confirmModel{
		title: title,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, err
	}
	rm := result.(confirmModel)
	if rm.aborted {
		return false, fmt.Errorf("user aborted")
	}
	return rm.value, nil
}

// npm package names: optional @scope/, lowercase, URL-safe characters.
var packageNameRe = regexp.MustCompile(`^(@[a-z0-9~-][a-z0-9._~-]*/)?[a-z0-9~-][a-z0-9._~-]*$`)

const maxPackageNameLen = 214

// packageNameValidator returns a validation function for package names.
func packageNameValidator(seen map[string]bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return fmt.Errorf("package name is required")
		}
		if len(s) > maxPackageNameLen {
			return fmt.Errorf("package name must be at most %d characters", maxPackageNameLen)
		}
		if !packageNameRe.MatchString(s) {
			return fmt.Errorf("invalid package name %q", s)
		}
		if seen[s] {
			return fmt.Errorf("package %q is already added", s)
		}
		return nil
	}
}

// defaultLocalPath suggests a sibling directory named after the package,
// dropping any scope.
func defaultLocalPath(name string) string {
	return "../" + path.Base(name)
}

// interactiveAddPackages runs an interactive loop using bubbletea to collect
// package names and local paths from the user.
func interactiveAddPackages(existing map[string]bool) ([]config.Package, error) {
	var pkgs []config.Package
	seen := make(map[string]bool, len(existing))
	for name := range existing {
		seen[name] = true
	}

	for {
		name, err := promptInput("Package name", "my-library", packageNameValidator(seen))
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)

		fallback := defaultLocalPath(name)
		localPath, err := promptInput("Local path (used in dev mode)", fallback, nil)
		if err != nil {
			return nil, err
		}
		localPath = strings.TrimSpace(localPath)
		if localPath == "" {
			localPath = fallback
		}
		fmt.Printf("  → %s: file:%s\n", name, localPath)

		seen[name] = true
		pkgs = append(pkgs, config.Package{Name: name, LocalPath: localPath})

		addMore, err := promptConfirm("Add another package?")
		if err != nil {
			return nil, err
		}
		if !addMore {
			break
		}
	}

	return pkgs, nil
}
