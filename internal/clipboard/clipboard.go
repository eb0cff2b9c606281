// Package clipboard places template text on the system clipboard and tracks
// the short-lived "Copied!" confirmation shown next to each copy button.
package clipboard

import (
	"log/slog"
	"time"

	atotto "github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmWindow is how long an indicator stays set after a successful copy.
const ConfirmWindow = 2 * time.Second

// Writer puts plain text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

func (f WriterFunc) WriteAll(text string) error { return f(text) }

// System writes to the OS clipboard.
var System Writer = WriterFunc(atotto.WriteAll)

// Result is the outcome of one copy attempt.
type Result struct {
	Copied bool
	Err    error
}

// Helper performs copies and reports failures to a diagnostic logger.
type Helper struct {
	writer Writer
	logger *slog.Logger
}

// NewHelper returns a Helper. A nil writer uses System; a nil logger
// discards diagnostics.
func NewHelper(w Writer, logger *slog.Logger) *Helper {
	if w == nil {
		w = System
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Helper{writer: w, logger: logger}
}

// Copy writes text to the clipboard. Failures are logged and returned in
// the Result; they never panic.
func (h *Helper) Copy(text string) Result {
	if err := h.writer.WriteAll(text); err != nil {
		h.logger.Error("clipboard_copy", "success", false, "bytes", len(text), "error", err.Error())
		return Result{Err: err}
	}
	h.logger.Info("clipboard_copy", "success", true, "bytes", len(text))
	return Result{Copied: true}
}

// Token identifies one Mark call so a stale reset timer can be ignored.
type Token uint64

// Indicator is the copied flag of a single copy button. It is owned by one
// goroutine (the TUI update loop) and is not safe for concurrent use.
type Indicator struct {
	current Token
	on      bool
}

// Mark sets the flag and returns the token its reset timer must present.
func (i *Indicator) Mark() Token {
	i.current++
	i.on = true
	return i.current
}

// Expire clears the flag if tok is from the most recent Mark. It reports
// whether the flag was cleared.
func (i *Indicator) Expire(tok Token) bool {
	if !i.on || tok != i.current {
		return false
	}
	i.on = false
	return true
}

// Copied reports whether the confirmation should be shown.
func (i *Indicator) Copied() bool {
	return i.on
}

// CopiedMsg is delivered when an asynchronous copy finishes.
type CopiedMsg struct {
	Target string
	Result Result
}

// ExpiredMsg is delivered when a confirmation window ends.
type ExpiredMsg struct {
	Target string
	Token  Token
}

// CopyCmd runs the copy off the update loop.
func (h *Helper) CopyCmd(target, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Target: target, Result: h.Copy(text)}
	}
}

// ExpireAfter schedules the reset of target's indicator.
func ExpireAfter(target string, tok Token) tea.Cmd {
	return tea.Tick(ConfirmWindow, func(time.Time) tea.Msg {
		return ExpiredMsg{Target: target, Token: tok}
	})
}
