package sink

import (
	"fmt"
	"io"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/modlog/internal/domain/entity"
	"github.com/amirhossein-jamali/modlog/internal/domain/port/core"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	_ core.RichSink       = (*ConsoleSink)(nil)
	_ core.DiagnosticSink = (*ConsoleSink)(nil)
)

const indentUnit = "  "

// ConsoleSink renders output as lines on a writer, indented by the current
// group depth, with a styled level tag. Colors are only emitted when the
// writer is a color capable terminal.
type ConsoleSink struct {
	timeProvider core.TimeProvider

	mu       sync.Mutex
	w        io.Writer
	depth    int
	timers   map[string]time.Time
	profiles map[string]time.Time
	counts   map[string]int
	tags     [entity.MethodCount]lipgloss.Style
	group    lipgloss.Style
}

// NewConsoleSink creates a console sink writing to w
func NewConsoleSink(w io.Writer, timeProvider core.TimeProvider) *ConsoleSink {
	r := lipgloss.NewRenderer(w)
	s := &ConsoleSink{
		timeProvider: timeProvider,
		w:            w,
		timers:       make(map[string]time.Time),
		profiles:     make(map[string]time.Time),
		counts:       make(map[string]int),
		group:        r.NewStyle().Bold(true).Underline(true),
	}
	colors := [entity.MethodCount]string{"9", "11", "12", "8", "7"}
	for _, m := range entity.Methods() {
		s.tags[m] = r.NewStyle().Bold(true).Foreground(lipgloss.Color(colors[m]))
	}
	return s
}

// Emit writes one ranked line
func (s *ConsoleSink) Emit(method entity.Method, args ...any) {
	if !method.Valid() {
		method = entity.MethodLog
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tag := s.tags[method].Render(strings.ToUpper(method.String()))
	s.writeLocked(tag + " " + render(args))
}

// Supports reports true for every known diagnostic
func (s *ConsoleSink) Supports(d entity.Diagnostic) bool {
	return d.Valid()
}

func (s *ConsoleSink) Diagnose(d entity.Diagnostic, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch d {
	case entity.DiagnosticGroup, entity.DiagnosticGroupCollapsed:
		s.writeLocked(s.group.Render(label(args)))
		s.depth++
	case entity.DiagnosticGroupEnd:
		if s.depth > 0 {
			s.depth--
		}
	case entity.DiagnosticClear:
		s.depth = 0
		io.WriteString(s.w, "\033[H\033[2J")
	case entity.DiagnosticCount:
		name := label(args)
		s.counts[name]++
		s.writeLocked(fmt.Sprintf("%s: %d", name, s.counts[name]))
	case entity.DiagnosticTime:
		s.timers[label(args)] = s.timeProvider.Now()
	case entity.DiagnosticTimeEnd:
		name := label(args)
		start, ok := s.timers[name]
		if !ok {
			s.writeLocked(fmt.Sprintf("Timer '%s' does not exist", name))
			return
		}
		delete(s.timers, name)
		s.writeLocked(fmt.Sprintf("%s: %s", name, s.timeProvider.Since(start)))
	case entity.DiagnosticProfile:
		name := label(args)
		s.profiles[name] = s.timeProvider.Now()
		s.writeLocked(fmt.Sprintf("Profile '%s' started", name))
	case entity.DiagnosticProfileEnd:
		name := label(args)
		if start, ok := s.profiles[name]; ok {
			delete(s.profiles, name)
			s.writeLocked(fmt.Sprintf("Profile '%s' finished after %s", name, s.timeProvider.Since(start)))
		}
	case entity.DiagnosticAssert:
		if !asserted(args) {
			s.writeLocked(s.tags[entity.MethodError].Render("Assertion failed:") + " " + render(args[min(1, len(args)):]))
		}
	case entity.DiagnosticException:
		s.writeLocked(s.tags[entity.MethodError].Render("ERROR") + " " + render(args))
	case entity.DiagnosticTrace:
		s.writeLocked("Trace: " + render(args))
		for _, line := range strings.Split(strings.TrimSpace(string(debug.Stack())), "\n") {
			s.writeLocked(indentUnit + line)
		}
	case entity.DiagnosticTable:
		for _, arg := range args {
			for _, line := range strings.Split(renderTable(arg), "\n") {
				s.writeLocked(line)
			}
		}
	case entity.DiagnosticDir, entity.DiagnosticDirXML:
		for _, arg := range args {
			s.writeLocked(fmt.Sprintf("%+v", arg))
		}
	}
}

func (s *ConsoleSink) writeLocked(line string) {
	io.WriteString(s.w, strings.Repeat(indentUnit, s.depth)+line+"\n")
}

// renderTable draws [][]string and map values as a table; anything else is
// printed as is
func renderTable(v any) string {
	switch data := v.(type) {
	case [][]string:
		if len(data) == 0 {
			return ""
		}
		return table.New().Headers(data[0]...).Rows(data[1:]...).String()
	case map[string]string:
		rows := make([][]string, 0, len(data))
		for k, val := range data {
			rows = append(rows, []string{k, val})
		}
		return keyValueTable(rows)
	case map[string]any:
		rows := make([][]string, 0, len(data))
		for k, val := range data {
			rows = append(rows, []string{k, fmt.Sprint(val)})
		}
		return keyValueTable(rows)
	default:
		return fmt.Sprintf("%+v", v)
	}
}

func keyValueTable(rows [][]string) string {
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
	return table.New().Headers("(index)", "Value").Rows(rows...).String()
}
