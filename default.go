package modlog

import (
	"strings"
	"sync"

	"github.com/amirhossein-jamali/modlog/internal/domain/port/core"
	"github.com/amirhossein-jamali/modlog/internal/domain/usecase/gate"
	"github.com/amirhossein-jamali/modlog/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/modlog/internal/infrastructure/adapter/sink"
	timeProvider "github.com/amirhossein-jamali/modlog/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/modlog/internal/infrastructure/config"
)

var (
	defaultOnce   sync.Once
	defaultMu     sync.RWMutex
	defaultFacade *Facade
)

// Default returns the process-wide façade, building it from configuration
// on first use. Configuration errors fall back to a console sink at
// DefaultLevel.
func Default() *Facade {
	defaultOnce.Do(func() {
		f := fromConfig()
		defaultMu.Lock()
		if defaultFacade == nil {
			defaultFacade = f
		}
		defaultMu.Unlock()
	})

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultFacade
}

// SetDefault replaces the process-wide façade and returns the previous one.
// A nil f installs a fresh New().
func SetDefault(f *Facade) *Facade {
	defaultOnce.Do(func() {})
	if f == nil {
		f = New()
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultFacade
	defaultFacade = f
	return prev
}

func fromConfig() *Facade {
	cfg, v, err := config.Load()
	if err != nil {
		return New()
	}

	appLogger := newOperationalLogger(cfg)
	tp := timeProvider.NewRealTimeProvider()

	s, err := sink.New(cfg.Facade.Sink, sink.Options{TimeProvider: tp})
	if err != nil {
		appLogger.Error("Failed to build sink, using console", map[string]any{
			"sink":  cfg.Facade.Sink,
			"error": err.Error(),
		})
		s, _ = sink.New(sink.KindConsole, sink.Options{TimeProvider: tp})
	}

	f := New(
		WithSink(s),
		WithLogger(appLogger),
		WithTimeProvider(tp),
		WithLevel(gate.ParseLevel(cfg.Facade.Level)),
		WithFilter(cfg.Facade.Filter),
	)

	if cfg.Facade.Watch && v.ConfigFileUsed() != "" {
		config.Watch(v, f.applyConfig)
		appLogger.Info("Watching configuration", map[string]any{
			"file": v.ConfigFileUsed(),
		})
	}
	return f
}

func newOperationalLogger(cfg *config.Config) core.Logger {
	production := cfg.Environment == config.Production || strings.EqualFold(cfg.Logger.Format, "json")
	l, err := logger.NewZapLogger(production, cfg.Logger.Output, core.ParseLogLevel(strings.ToLower(cfg.Logger.Level)))
	if err != nil {
		return logger.NewNoopLogger()
	}
	return l
}

// applyConfig re-applies the level and the filter of cfg. The filter is
// replaced as a whole. The sink is kept.
func (f *Facade) applyConfig(cfg *config.Config) {
	f.gate.SetLevel(gate.ParseLevel(cfg.Facade.Level))
	filter := f.gate.ReplaceFilter(cfg.Facade.Filter)
	f.logger.Info("Configuration applied", map[string]any{
		"level":    f.gate.GetLevel(),
		"filtered": len(filter),
	})
}

// SetLevel sets the level of the default façade
func SetLevel(level any) { Default().SetLevel(level) }

// GetLevel returns the level of the default façade
func GetLevel() int { return Default().GetLevel() }

// SetFilter suppresses live output of the listed modules on the default façade
func SetFilter(names string) (map[string]bool, bool) { return Default().SetFilter(names) }

// UnsetFilter restores live output of the listed modules on the default façade
func UnsetFilter(names string) (map[string]bool, bool) { return Default().UnsetFilter(names) }

// Reset restores the level and filter of the default façade
func Reset() { Default().Reset() }

// GetFilter returns the filter of the default façade
func GetFilter() map[string]bool { return Default().GetFilter() }

// Register returns the logger of module on the default façade
func Register(module string) *ModuleLogger { return Default().Register(module) }

// GetModule looks module up on the default façade
func GetModule(module string) (*ModuleLogger, bool) { return Default().GetModule(module) }

// Dump replays buffered entries of the default façade
func Dump(module string) error { return Default().Dump(module) }

// Logs returns every module buffer of the default façade
func Logs() map[string][]Entry { return Default().Logs() }

func Error(args ...any) { Default().Error(args...) }
func Warn(args ...any)  { Default().Warn(args...) }
func Info(args ...any)  { Default().Info(args...) }
func Debug(args ...any) { Default().Debug(args...) }
func Log(args ...any)   { Default().Log(args...) }

func Assert(args ...any)         { Default().Assert(args...) }
func Clear(args ...any)          { Default().Clear(args...) }
func Count(args ...any)          { Default().Count(args...) }
func Dir(args ...any)            { Default().Dir(args...) }
func DirXML(args ...any)         { Default().DirXML(args...) }
func Exception(args ...any)      { Default().Exception(args...) }
func Group(args ...any)          { Default().Group(args...) }
func GroupCollapsed(args ...any) { Default().GroupCollapsed(args...) }
func GroupEnd(args ...any)       { Default().GroupEnd(args...) }
func Profile(args ...any)        { Default().Profile(args...) }
func ProfileEnd(args ...any)     { Default().ProfileEnd(args...) }
func Table(args ...any)          { Default().Table(args...) }
func Time(args ...any)           { Default().Time(args...) }
func TimeEnd(args ...any)        { Default().TimeEnd(args...) }
func Trace(args ...any)          { Default().Trace(args...) }
