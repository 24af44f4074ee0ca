package config

// Config holds all configuration for the logging façade
type Config struct {
	Environment string       `mapstructure:"environment"`
	Logger      LoggerConfig `mapstructure:"logger"`
	Facade      FacadeConfig `mapstructure:"facade"`
}

// LoggerConfig contains settings of the operational logger that reports the
// façade's own events
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// FacadeConfig contains the initial gate state and sink selection
type FacadeConfig struct {
	Level  string `mapstructure:"level"`  // parsed with gate.ParseLevel
	Filter string `mapstructure:"filter"` // whitespace separated module names
	Sink   string `mapstructure:"sink"`   // console, zap, apex or none
	Watch  bool   `mapstructure:"watch"`
}
