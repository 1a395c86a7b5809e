package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel asks for the article number before the reader starts. It lists the
// server's laws and the articles of the chosen law when they are known.
type promptModel struct {
	textInput textinput.Model
	law       string
	laws      []string
	articles  []string
	Quitting  bool
	Done      bool
}

func newPromptModel(law string, laws, articles []string) promptModel {
	ti := textinput.New()
	ti.Placeholder = "Art. 5º"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 20

	return promptModel{
		textInput: ti,
		law:       law,
		laws:      laws,
		articles:  articles,
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.Value() == "" {
				return m, nil
			}
			m.Done = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// Value is the trimmed article number typed so far.
func (m promptModel) Value() string {
	return strings.TrimSpace(m.textInput.Value())
}

func (m promptModel) View() string {
	if m.Quitting {
		return "\n  See you later!\n\n"
	}

	law := m.law
	if law == "" {
		law = "(server default)"
	}

	var b strings.Builder
	if len(m.laws) > 0 {
		fmt.Fprintf(&b, "Laws: %s\n", strings.Join(m.laws, ", "))
	}
	fmt.Fprintf(&b, "Law: %s\n", law)
	if len(m.articles) > 0 {
		fmt.Fprintf(&b, "Articles: %s\n", strings.Join(m.articles, ", "))
	}

	fmt.Fprintf(&b, "\nEnter article number:\n\n%s\n\n%s\n", m.textInput.View(), "(esc to quit)")
	return b.String()
}

// promptArticle runs the prompt and returns the article number, or "" if the user quit.
func promptArticle(law string, laws, articles []string) (string, error) {
	p := tea.NewProgram(newPromptModel(law, laws, articles))

	final, err := p.StartReturningModel()
	if err != nil {
		return "", err
	}

	m, ok := final.(promptModel)
	if !ok || !m.Done {
		return "", nil
	}
	return m.Value(), nil
}
