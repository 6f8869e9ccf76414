// Package tui provides the interactive command loop.
package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/colonyops/daybook/internal/core/config"
	"github.com/colonyops/daybook/internal/core/styles"
	"github.com/colonyops/daybook/internal/daybook"
)

// ErrNotATerminal is returned when the REPL is started without a TTY.
var ErrNotATerminal = errors.New("interactive mode requires a terminal")

// ParsedCommand represents a parsed line of REPL input.
type ParsedCommand struct {
	Keyword string
	Args    []string
}

// ParseInput splits a line of input into keyword and arguments by
// whitespace.
func ParseInput(input string) ParsedCommand {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return ParsedCommand{}
	}
	return ParsedCommand{Keyword: parts[0], Args: parts[1:]}
}

// Run starts the interactive loop over the service, dispatching keywords
// through the table bound in cfg. It blocks until the user quits.
func Run(svc *daybook.Service, cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotATerminal
	}

	// Show the working list before the first prompt.
	listing, err := svc.Execute(config.OpList, nil)
	if err != nil {
		return err
	}
	fmt.Print(listing)

	m := newModel(svc, cfg)
	_, err = tea.NewProgram(m).Run()
	return err
}

type model struct {
	svc   *daybook.Service
	cfg   *config.Config
	table map[string]string
	input textinput.Model
}

func newModel(svc *daybook.Service, cfg *config.Config) model {
	input := textinput.New()
	input.Prompt = styles.Prompt.Render("> ")
	input.Focus()

	return model{
		svc:   svc,
		cfg:   cfg,
		table: cfg.KeywordTable(),
		input: input,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			return m.dispatch(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// dispatch resolves one line of input. Every failure becomes a single
// printed line; the loop always continues to the next prompt.
func (m model) dispatch(line string) (tea.Model, tea.Cmd) {
	parsed := ParseInput(line)
	if parsed.Keyword == "" {
		return m, m.report(errors.New("empty command"))
	}

	op, ok := m.table[parsed.Keyword]
	if !ok {
		return m, m.report(fmt.Errorf("unknown command %q", parsed.Keyword))
	}

	switch op {
	case config.OpQuit:
		return m, tea.Quit
	case config.OpHelp:
		return m, tea.Println(m.helpScreen())
	}

	out, err := m.svc.Execute(op, parsed.Args)
	if err != nil {
		return m, m.report(err)
	}
	return m, tea.Println(echoInput(line) + "\n" + strings.TrimRight(out, "\n"))
}

func (m model) report(err error) tea.Cmd {
	return tea.Println(styles.Err.Render(err.Error()))
}

func (m model) helpScreen() string {
	guide, err := styles.RenderMarkdown(daybook.SyntaxGuide)
	if err != nil {
		// Fall back to the raw markdown source.
		guide = daybook.SyntaxGuide
	}
	return guide + "\n" + styles.Header.Render("Commands") + "\n" + daybook.KeywordHelp(m.cfg)
}

func echoInput(line string) string {
	return styles.Muted.Render("> " + strings.TrimSpace(line))
}

func (m model) View() string {
	return m.input.View() + "\n"
}
