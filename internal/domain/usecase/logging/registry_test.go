package logging

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	errs "github.com/amirhossein-jamali/modlog/internal/domain/error"
	"github.com/amirhossein-jamali/modlog/internal/domain/usecase/gate"
	coremocks "github.com/amirhossein-jamali/modlog/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegister(t *testing.T) {
	t.Run("Same module returns the same logger", func(t *testing.T) {
		reg, _ := newTestRegistry(t, nil)

		first := reg.Register("net")
		second := reg.Register("net")

		assert.Same(t, first, second)
		assert.Equal(t, []string{"net"}, reg.Modules())
	})

	t.Run("New module starts with an empty log", func(t *testing.T) {
		reg, _ := newTestRegistry(t, nil)
		reg.Register("db")

		entries, ok := reg.Entries("db")
		require.True(t, ok)
		assert.Empty(t, entries)

		logs := reg.Logs()
		assert.Contains(t, logs, "db")
	})

	t.Run("Registration order is kept", func(t *testing.T) {
		reg, _ := newTestRegistry(t, nil)
		for _, m := range []string{"c", "a", "b", "a"} {
			reg.Register(m)
		}

		assert.Equal(t, []string{"c", "a", "b"}, reg.Modules())
	})

	t.Run("Logs of different modules are independent", func(t *testing.T) {
		reg, _ := newTestRegistry(t, nil)
		reg.Register("a").Info("1")
		reg.Register("b").Warn("2")
		reg.Register("a").Error("3")

		logs := reg.Logs()
		assert.Equal(t, [][]any{{"info", "1"}, {"error", "3"}}, entryValues(logs["a"]))
		assert.Equal(t, [][]any{{"warn", "2"}}, entryValues(logs["b"]))
	})

	t.Run("Empty name is accepted with a warning", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Module registered with empty name", mock.Anything).Once()
		mockLogger.EXPECT().Debug("Module registered", map[string]any{"module": ""}).Once()

		global := NewGlobal(gate.New(), NewSinkAdapter(nil, mockLogger))
		reg := NewRegistry(global, newFixedTimeProvider(t), mockLogger)

		l := reg.Register("")
		l.Info("x")

		_, ok := reg.GetModule("")
		assert.True(t, ok)
	})

	t.Run("Concurrent registration creates one logger", func(t *testing.T) {
		reg, _ := newTestRegistry(t, nil)

		const workers = 16
		got := make([]*ModuleLogger, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				got[i] = reg.Register("shared")
				got[i].Info(i)
			}(i)
		}
		wg.Wait()

		for _, l := range got {
			assert.Same(t, got[0], l)
		}
		entries, _ := reg.Entries("shared")
		assert.Len(t, entries, workers)
	})
}

func TestRegistryLookup(t *testing.T) {
	reg, _ := newTestRegistry(t, nil)
	reg.Register("net")

	_, ok := reg.GetModule("missing")
	assert.False(t, ok)

	entries, ok := reg.Entries("missing")
	assert.False(t, ok)
	assert.Nil(t, entries)

	l, ok := reg.GetModule("net")
	require.True(t, ok)
	assert.Equal(t, "net", l.Module())
}

func TestRegistrySnapshots(t *testing.T) {
	reg, _ := newTestRegistry(t, nil)
	net := reg.Register("net")
	net.Info("a")

	entries, _ := reg.Entries("net")
	entries[0].Args[0] = "mutated"
	logs := reg.Logs()
	logs["net"] = nil

	fresh, _ := reg.Entries("net")
	assert.Equal(t, [][]any{{"info", "a"}}, entryValues(fresh))

	modules := reg.Modules()
	modules[0] = "other"
	assert.Equal(t, []string{"net"}, reg.Modules())
}

func TestRegistryClear(t *testing.T) {
	t.Run("Clear keeps the registration", func(t *testing.T) {
		reg, _ := newTestRegistry(t, nil)
		net := reg.Register("net")
		net.Info("a")
		reg.Register("db").Info("b")

		require.NoError(t, reg.Clear("net"))

		entries, ok := reg.Entries("net")
		require.True(t, ok)
		assert.Empty(t, entries)
		dbEntries, _ := reg.Entries("db")
		assert.Len(t, dbEntries, 1)

		net.Info("again")
		entries, _ = reg.Entries("net")
		assert.Len(t, entries, 1)
	})

	t.Run("Clear of unknown module", func(t *testing.T) {
		reg, _ := newTestRegistry(t, nil)

		err := reg.Clear("ghost")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrModuleNotFound))
		var moduleErr *errs.ModuleError
		require.True(t, errors.As(err, &moduleErr))
		assert.Equal(t, "ghost", moduleErr.Module)
		assert.Equal(t, "clear", moduleErr.Operation)
	})

	t.Run("ClearAll", func(t *testing.T) {
		reg, _ := newTestRegistry(t, nil)
		for i := 0; i < 3; i++ {
			reg.Register(fmt.Sprintf("m%d", i)).Log(i)
		}

		reg.ClearAll()

		for name, entries := range reg.Logs() {
			assert.Empty(t, entries, name)
		}
		assert.Len(t, reg.Modules(), 3)
	})
}
