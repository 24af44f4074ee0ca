package sink

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/modlog/internal/domain/entity"
	coremocks "github.com/amirhossein-jamali/modlog/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func consoleLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestConsoleSinkEmit(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewConsoleSink(buf, coremocks.NewMockTimeProvider(t))

	s.Emit(entity.MethodInfo, "[net]", "connect", 1)
	s.Emit(entity.MethodError, "fail")

	lines := consoleLines(buf)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "INFO")
	assert.True(t, strings.HasSuffix(lines[0], "[net] connect 1"), "got %q", lines[0])
	assert.Contains(t, lines[1], "ERROR")
	assert.True(t, strings.HasSuffix(lines[1], "fail"))
}

func TestConsoleSinkGroups(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewConsoleSink(buf, coremocks.NewMockTimeProvider(t))

	s.Diagnose(entity.DiagnosticGroupCollapsed, "Loggers Dump")
	s.Diagnose(entity.DiagnosticGroup, "net")
	s.Emit(entity.MethodWarn, "slow")
	s.Diagnose(entity.DiagnosticGroupEnd)
	s.Diagnose(entity.DiagnosticGroupEnd)
	s.Diagnose(entity.DiagnosticGroupEnd) // unbalanced end is ignored
	s.Emit(entity.MethodLog, "after")

	lines := consoleLines(buf)
	require.Len(t, lines, 4)
	assert.False(t, strings.HasPrefix(lines[0], " "))
	assert.Contains(t, lines[0], "Loggers Dump")
	assert.True(t, strings.HasPrefix(lines[1], "  "))
	assert.Contains(t, lines[1], "net")
	assert.True(t, strings.HasPrefix(lines[2], "    "))
	assert.Contains(t, lines[2], "slow")
	assert.False(t, strings.HasPrefix(lines[3], " "))
}

func TestConsoleSinkCounterAndTimer(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(start).Once()
	mockTime.EXPECT().Since(start).Return(1500 * time.Millisecond).Once()

	buf := &bytes.Buffer{}
	s := NewConsoleSink(buf, mockTime)

	s.Diagnose(entity.DiagnosticCount, "hits")
	s.Diagnose(entity.DiagnosticCount, "hits")
	s.Diagnose(entity.DiagnosticCount)
	s.Diagnose(entity.DiagnosticTime, "load")
	s.Diagnose(entity.DiagnosticTimeEnd, "load")
	s.Diagnose(entity.DiagnosticTimeEnd, "load")

	assert.Equal(t, []string{
		"hits: 1",
		"hits: 2",
		"default: 1",
		"load: 1.5s",
		"Timer 'load' does not exist",
	}, consoleLines(buf))
}

func TestConsoleSinkAssert(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewConsoleSink(buf, coremocks.NewMockTimeProvider(t))

	s.Diagnose(entity.DiagnosticAssert, true, "never shown")
	assert.Empty(t, buf.String())

	s.Diagnose(entity.DiagnosticAssert, false, "x must be positive")
	assert.Contains(t, buf.String(), "Assertion failed:")
	assert.Contains(t, buf.String(), "x must be positive")
}

func TestConsoleSinkTable(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewConsoleSink(buf, coremocks.NewMockTimeProvider(t))

	s.Diagnose(entity.DiagnosticTable, map[string]any{"beta": 2, "alpha": 1})

	out := buf.String()
	assert.Contains(t, out, "Value")
	require.Contains(t, out, "alpha")
	assert.Less(t, strings.Index(out, "alpha"), strings.Index(out, "beta"))
}

func TestConsoleSinkProfile(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(start).Once()
	mockTime.EXPECT().Since(mock.Anything).Return(2 * time.Second).Once()

	buf := &bytes.Buffer{}
	s := NewConsoleSink(buf, mockTime)

	s.Diagnose(entity.DiagnosticProfile, "render")
	s.Diagnose(entity.DiagnosticProfileEnd, "render")

	assert.Equal(t, []string{
		"Profile 'render' started",
		"Profile 'render' finished after 2s",
	}, consoleLines(buf))
}

func TestConsoleSinkSupportsEveryDiagnostic(t *testing.T) {
	s := NewConsoleSink(&bytes.Buffer{}, coremocks.NewMockTimeProvider(t))

	for _, d := range entity.Diagnostics() {
		assert.True(t, s.Supports(d), "diagnostic %s", d)
	}
	assert.False(t, s.Supports(entity.Diagnostic(99)))
}
