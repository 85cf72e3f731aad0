package internal

import (
	"errors"
)

// Options - public options from CLI.
type Options struct {
	Query      string
	Root       string
	IgnoreCase bool
	Regex      bool
	Threads    int
	LogFile    string
	LogLevel   string
}

// Validate checks invariants.
func (o *Options) Validate() error {
	if o.Query == "" {
		return errors.New("query must not be empty")
	}
	if o.Root == "" {
		return errors.New("search path must not be empty")
	}
	if o.Threads < 0 {
		return errors.New("threads must be >= 0")
	}
	return nil
}

// EngineConfig maps CLI options onto the engine configuration.
func (o *Options) EngineConfig() Config {
	return Config{
		IgnoreCase: o.IgnoreCase,
		Regex:      o.Regex,
		Workers:    o.Threads,
	}
}
