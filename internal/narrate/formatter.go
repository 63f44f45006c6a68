package narrate

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/mattn/go-isatty"
)

// Formatter formats events for output.
type Formatter struct {
	showEmoji     bool
	showTimestamp bool
	showTips      bool
	topic         string
	template      *template.Template
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithEmoji enables emoji output.
func WithEmoji(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showEmoji = enabled
	}
}

// WithTimestamp enables timestamp output.
func WithTimestamp(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showTimestamp = enabled
	}
}

// WithTips prints a step's tip on its own line.
func WithTips(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showTips = enabled
	}
}

// WithTopic names the topic in start and finish lines.
func WithTopic(title string) FormatterOption {
	return func(f *Formatter) {
		f.topic = title
	}
}

// WithTemplate sets a custom format template.
func WithTemplate(tmpl string) FormatterOption {
	return func(f *Formatter) {
		if tmpl != "" {
			t, err := template.New("format").Parse(tmpl)
			if err == nil {
				f.template = t
			}
		}
	}
}

// EmojiDefault reports whether emoji should be on for out: only when it is
// a terminal.
func EmojiDefault(out *os.File) bool {
	fd := out.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewFormatter creates a new formatter with the given options.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		showEmoji: true,
		showTips:  true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format formats an event as a string.
func (f *Formatter) Format(e Event) string {
	if f.template != nil {
		return f.formatTemplate(e)
	}
	return f.formatLine(e)
}

// formatLine formats an event as a simple line.
func (f *Formatter) formatLine(e Event) string {
	var parts []string

	// Timestamp
	if f.showTimestamp {
		parts = append(parts, e.Timestamp.Format("15:04:05"))
	}

	// Emoji
	if f.showEmoji {
		parts = append(parts, eventEmoji(e.Type))
	}

	// Event description
	parts = append(parts, f.eventDescription(e))

	line := strings.Join(parts, " ")
	if e.Type == EventStep && f.showTips && e.Current.Step.HasTip() {
		indent := ""
		if f.showEmoji {
			indent = "   "
		}
		line += "\n" + indent + "Tip: " + e.Current.Step.Tip
	}
	return line
}

// formatTemplate formats an event using a custom template.
func (f *Formatter) formatTemplate(e Event) string {
	data := templateData{
		Type:        eventTypeName(e.Type),
		Emoji:       eventEmoji(e.Type),
		Timestamp:   e.Timestamp,
		Time:        e.Timestamp.Format("15:04:05"),
		Topic:       f.topic,
		Index:       e.Current.Index + 1,
		Total:       e.Current.Len,
		Title:       e.Current.Step.Title,
		Description: e.Current.Step.Description,
		Tip:         e.Current.Step.Tip,
	}

	var buf bytes.Buffer
	if err := f.template.Execute(&buf, data); err != nil {
		return f.formatLine(e)
	}
	return buf.String()
}

type templateData struct {
	Type        string
	Emoji       string
	Timestamp   time.Time
	Time        string
	Topic       string
	Index       int
	Total       int
	Title       string
	Description string
	Tip         string
}

// eventDescription returns a human-readable description of the event.
func (f *Formatter) eventDescription(e Event) string {
	switch e.Type {
	case EventStart:
		if f.topic != "" {
			return fmt.Sprintf("Playing: %s (%d steps)", f.topic, e.Current.Len)
		}
		return fmt.Sprintf("Playing %d steps", e.Current.Len)

	case EventStep:
		s := e.Current.Step
		return fmt.Sprintf("[%d/%d] %s: %s", e.Current.Index+1, e.Current.Len, s.Title, s.Description)

	case EventPause:
		return fmt.Sprintf("Paused at step %d", e.Current.Index+1)

	case EventResume:
		return fmt.Sprintf("Resumed at step %d", e.Current.Index+1)

	case EventFinish:
		if f.topic != "" {
			return fmt.Sprintf("Finished: %s", f.topic)
		}
		return "Finished"

	case EventStop:
		return "Stopped"

	default:
		return "Unknown event"
	}
}

// eventEmoji returns an emoji for the event type.
func eventEmoji(t EventType) string {
	switch t {
	case EventStart:
		return "▶️"
	case EventStep:
		return "👉"
	case EventPause:
		return "⏸️"
	case EventResume:
		return "⏯️"
	case EventFinish:
		return "✅"
	case EventStop:
		return "⏹️"
	default:
		return "❓"
	}
}

// eventTypeName returns the name of the event type.
func eventTypeName(t EventType) string {
	switch t {
	case EventStart:
		return "start"
	case EventStep:
		return "step"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventFinish:
		return "finish"
	case EventStop:
		return "stop"
	default:
		return "unknown"
	}
}
