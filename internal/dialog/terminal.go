package dialog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
)

const progressBarWidth = 30

var ErrNoAnswer = errors.New("no answer to confirmation")

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	textStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
	iconStyles = map[Icon]lipgloss.Style{
		IconSuccess:  lipgloss.NewStyle().Foreground(lipgloss.Color("#a5dc86")).Bold(true),
		IconWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f8bb86")).Bold(true),
		IconError:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f27474")).Bold(true),
		IconInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("#3fc3ee")).Bold(true),
		IconQuestion: lipgloss.NewStyle().Foreground(lipgloss.Color("#87adbd")).Bold(true),
	}
)

// TerminalPresenter renders dialogs as boxes on a terminal and reads
// confirmation answers line by line.
//
// At most one line read is in flight. A line typed after a Confirm gave up
// on its ctx stays buffered and answers the next Confirm.
type TerminalPresenter struct {
	in          *bufio.Reader
	out         io.Writer
	answerHint  string
	progressFPS int

	mutex   sync.Mutex
	reading bool
	answers chan readResult
}

func NewTerminalPresenter(in io.Reader, out io.Writer, texts Texts) *TerminalPresenter {
	return &TerminalPresenter{
		in:          bufio.NewReader(in),
		out:         out,
		answerHint:  texts.AnswerHint,
		progressFPS: 15,
		answers:     make(chan readResult, 1),
	}
}

type readResult struct {
	line string
	err  error
}

func (p *TerminalPresenter) Confirm(ctx context.Context, c Confirmation) (bool, error) {
	p.print(p.renderBox(c.Icon, c.Title, c.Text))

	confirmStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(c.ConfirmColor)).Bold(true)
	cancelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(c.CancelColor)).Bold(true)
	p.print(fmt.Sprintf(
		"%s / %s %s ",
		confirmStyle.Render(c.ConfirmText),
		cancelStyle.Render(c.CancelText),
		p.answerHint,
	))

	p.readAnswer()

	select {
	case <-ctx.Done():
		p.print("\n")
		return false, ctx.Err()
	case res := <-p.answers:
		p.mutex.Lock()
		p.reading = false
		p.mutex.Unlock()

		if res.err != nil {
			if errors.Is(res.err, io.EOF) && strings.TrimSpace(res.line) != "" {
				return IsAffirmative(res.line), nil
			}
			if errors.Is(res.err, io.EOF) {
				return false, ErrNoAnswer
			}
			return false, fmt.Errorf("read confirmation answer: %w", res.err)
		}
		return IsAffirmative(res.line), nil
	}
}

// readAnswer starts reading the next input line unless a read is already
// pending. The result lands in p.answers, which has room for exactly one.
func (p *TerminalPresenter) readAnswer() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.reading {
		return
	}
	p.reading = true

	go func() {
		line, err := p.in.ReadString('\n')
		p.answers <- readResult{line: line, err: err}
	}()
}

// Notify shows n and, for timed notifications with a progress bar, keeps
// drawing the bar until the timer runs out or ctx is done.
func (p *TerminalPresenter) Notify(ctx context.Context, n Notification) {
	p.print(p.renderBox(n.Icon, n.Title, n.Text))

	if n.Timer <= 0 || !n.TimerProgressBar {
		return
	}

	steps := int(n.Timer.Seconds() * float64(p.progressFPS))
	if steps < 1 {
		steps = 1
	}
	tick := n.Timer / time.Duration(steps)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for step := 1; step <= steps; step++ {
		select {
		case <-ctx.Done():
			p.print("\n")
			return
		case <-ticker.C:
			p.print("\r" + ProgressBar(steps-step, steps, progressBarWidth))
		}
	}
	p.print("\n")
}

func (p *TerminalPresenter) renderBox(icon Icon, title, text string) string {
	iconStyle, ok := iconStyles[icon]
	if !ok {
		iconStyle = lipgloss.NewStyle()
	}
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		iconStyle.Render(icon.Glyph())+" "+titleStyle.Render(title),
		textStyle.Render(text),
	)
	return boxStyle.Render(content) + "\n"
}

func (p *TerminalPresenter) print(s string) {
	if _, err := io.WriteString(p.out, s); err != nil {
		log.Errorf("write dialog output: %s", err)
	}
}

// ProgressBar draws the remaining share of a countdown, full at the start.
func ProgressBar(remaining, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	if remaining < 0 {
		remaining = 0
	}
	if remaining > total {
		remaining = total
	}
	filled := remaining * width / total
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// IsAffirmative reports whether an answer line accepts the confirmation.
// Anything unrecognized, including an empty line, declines.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "si", "sí", "ok":
		return true
	default:
		return false
	}
}
