package ui

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type SignalForwarder interface {
	ForwardSignal(sig os.Signal) bool
}

type spinnerDoneMsg struct{}

type spinnerModel struct {
	spinner   spinner.Model
	message   string
	label     string
	done      bool
	start     time.Time
	forwarder SignalForwarder
}

var spinnerMessages = []string{
	"Generating commit message...",
	"Summarizing working-tree changes...",
	"Reading diff hunks...",
	"Composing change description...",
	"Asking the model nicely...",
}

var spinnerStyles = []spinner.Spinner{
	spinner.Line,
	spinner.Dot,
	spinner.MiniDot,
	spinner.Jump,
	spinner.Pulse,
	spinner.Points,
	spinner.Globe,
	spinner.Moon,
	spinner.Monkey,
}

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render

var (
	terminalOutput     io.Writer
	terminalOutputOnce sync.Once
)

// getTerminalOutput writes the spinner straight to the terminal so that
// stdout stays clean for the generated text.
func getTerminalOutput() io.Writer {
	terminalOutputOnce.Do(func() {
		if runtime.GOOS == "windows" {
			terminalOutput = os.Stderr
			return
		}
		f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			terminalOutput = io.Discard
			return
		}
		terminalOutput = f
	})
	return terminalOutput
}

// StartSpinner shows a progress spinner until the returned stop function is
// called. Ctrl+C inside the spinner is forwarded so the in-flight request
// gets cancelled.
func StartSpinner(message string, label string, forwarder SignalForwarder) func() {
	_ = os.Setenv("CLICOLOR_FORCE", "1")
	lipgloss.SetColorProfile(termenv.ANSI)
	p := tea.NewProgram(newSpinnerModel(message, label, forwarder), tea.WithOutput(getTerminalOutput()))
	done := make(chan struct{})
	go func() {
		_, _ = p.Run()
		close(done)
	}()
	var stopOnce sync.Once
	return func() {
		stopOnce.Do(func() {
			p.Send(spinnerDoneMsg{})
			<-done
		})
	}
}

func RandomSpinnerMessage() string {
	seed := time.Now().UnixNano()
	return spinnerMessages[int(seed%int64(len(spinnerMessages)))]
}

func newSpinnerModel(message string, label string, forwarder SignalForwarder) spinnerModel {
	s := spinner.New()
	s.Spinner = randomSpinnerStyle()
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return spinnerModel{spinner: s, message: message, label: label, start: time.Now(), forwarder: forwarder}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && m.forwarder != nil {
			m.forwarder.ForwardSignal(os.Interrupt)
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	if m.done {
		return "\r\033[2K"
	}
	elapsed := fmt.Sprintf("%.1fs", time.Since(m.start).Seconds())
	labelTag := ""
	if m.label != "" {
		labelTag = " " + labelStyle("(using "+m.label+")")
	}
	return fmt.Sprintf("\n  %s %s%s (%s)\n", m.spinner.View(), m.message, labelTag, elapsed)
}

func randomSpinnerStyle() spinner.Spinner {
	seed := time.Now().UnixNano()
	return spinnerStyles[int(seed%int64(len(spinnerStyles)))]
}
