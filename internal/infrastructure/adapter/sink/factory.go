package sink

import (
	"fmt"
	"io"
	"os"

	errs "github.com/amirhossein-jamali/modlog/internal/domain/error"
	"github.com/amirhossein-jamali/modlog/internal/domain/port/core"
	timeProvider "github.com/amirhossein-jamali/modlog/internal/infrastructure/adapter/time"
	"github.com/apex/log"
	"go.uber.org/zap"
)

// Sink kinds understood by New
const (
	KindConsole = "console"
	KindZap     = "zap"
	KindApex    = "apex"
	KindNone    = "none"
)

// Kinds lists every sink kind
var Kinds = []string{KindConsole, KindZap, KindApex, KindNone}

// Options carries the collaborators a sink kind may need. Unset fields get
// defaults: stderr, a development zap logger, the apex default logger and the
// wall clock.
type Options struct {
	Writer       io.Writer
	Zap          *zap.Logger
	Apex         log.Interface
	TimeProvider core.TimeProvider
}

// New builds the sink of the given kind. KindNone yields a nil sink, which
// the logging engine treats as "no sink".
func New(kind string, opts Options) (core.Sink, error) {
	if opts.TimeProvider == nil {
		opts.TimeProvider = timeProvider.NewRealTimeProvider()
	}

	switch kind {
	case KindConsole, "":
		w := opts.Writer
		if w == nil {
			w = os.Stderr
		}
		return NewConsoleSink(w, opts.TimeProvider), nil
	case KindZap:
		logger := opts.Zap
		if logger == nil {
			var err error
			logger, err = zap.NewDevelopment()
			if err != nil {
				return nil, fmt.Errorf("building zap sink: %w", err)
			}
		}
		return NewZapSink(logger, opts.TimeProvider), nil
	case KindApex:
		return NewApexSink(opts.Apex), nil
	case KindNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownSinkKind, kind)
	}
}

// ValidKind reports whether kind is understood by New
func ValidKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return kind == ""
}
