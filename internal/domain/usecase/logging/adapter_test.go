package logging

import (
	"testing"

	"github.com/amirhossein-jamali/modlog/internal/domain/entity"
	"github.com/amirhossein-jamali/modlog/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/modlog/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSinkAdapterMissingSink(t *testing.T) {
	a := NewSinkAdapter(nil, logger.NewNoopLogger())

	assert.False(t, a.Present())
	assert.False(t, a.Supports(entity.DiagnosticGroup))
	assert.NotPanics(t, func() {
		a.Forward(entity.MethodError, []any{"x"})
		a.Diagnose(entity.DiagnosticGroup, []any{"x"})
	})
}

func TestSinkAdapterFallbackChain(t *testing.T) {
	t.Run("Rich variant is preferred", func(t *testing.T) {
		rich := coremocks.NewMockRichSink(t)
		rich.EXPECT().Emit(entity.MethodWarn, "[net]", "slow").Once()

		a := NewSinkAdapter(rich, logger.NewNoopLogger())
		a.Forward(entity.MethodWarn, []any{"[net]", "slow"})
	})

	t.Run("Named method when available", func(t *testing.T) {
		console := coremocks.NewMockConsoleSink(t)
		console.EXPECT().Debug("detail", 42).Once()

		a := NewSinkAdapter(console, logger.NewNoopLogger())
		a.Forward(entity.MethodDebug, []any{"detail", 42})
	})

	t.Run("Generic log when the named method is missing", func(t *testing.T) {
		s := &logOnlySink{}
		a := NewSinkAdapter(s, logger.NewNoopLogger())

		a.Forward(entity.MethodError, []any{"fail"})
		a.Forward(entity.MethodLog, []any{"plain"})

		assert.Equal(t, [][]any{{"fail"}, {"plain"}}, s.calls)
	})

	t.Run("Dropped when neither exists", func(t *testing.T) {
		s := &infoOnlySink{}
		a := NewSinkAdapter(s, logger.NewNoopLogger())

		a.Forward(entity.MethodError, []any{"lost"})
		a.Forward(entity.MethodInfo, []any{"kept"})

		assert.Equal(t, [][]any{{"kept"}}, s.calls)
		assert.False(t, a.Supports(entity.DiagnosticGroup))
	})
}

func TestSinkAdapterDiagnostics(t *testing.T) {
	console := coremocks.NewMockConsoleSink(t)
	console.EXPECT().Supports(entity.DiagnosticCount).Return(true).Once()
	console.EXPECT().Supports(entity.DiagnosticProfile).Return(false).Once()
	console.EXPECT().Diagnose(entity.DiagnosticCount, "hits").Once()

	a := NewSinkAdapter(console, logger.NewNoopLogger())

	require.True(t, a.Supports(entity.DiagnosticCount))
	a.Diagnose(entity.DiagnosticCount, []any{"hits"})
	assert.False(t, a.Supports(entity.DiagnosticProfile))
}

func TestSinkAdapterRecoversPanics(t *testing.T) {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Error("Sink panicked", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["call"] == "info" && fields["recovered"] == "sink exploded"
	})).Once()
	mockLogger.EXPECT().Error("Sink panicked", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["call"] == "group"
	})).Once()

	a := NewSinkAdapter(panickingSink{}, mockLogger)

	assert.NotPanics(t, func() {
		a.Forward(entity.MethodInfo, []any{"x"})
		a.Diagnose(entity.DiagnosticGroup, []any{"x"})
	})
}
