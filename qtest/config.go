package qtest

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/arloliu/go-strqueue/logger"
)

const (
	// MaxStringLength is the largest remove buffer the console accepts, terminator included.
	MaxStringLength = 1024
	maxTimeLimit    = 60 * time.Second
)

// Config represents the configuration of a Console.
type Config struct {
	// timeLimit bounds every queue operation. Zero disables the limit.
	// Defaults to 1 second.
	timeLimit time.Duration

	// failProbability is the probability, in percent, that the allocator refuses a block.
	// Defaults to 0.
	failProbability int

	// seed seeds the allocator's fault injection when seeded is true.
	seed   uint64
	seeded bool

	// stringLength is the size of the buffer removed values are copied into, terminator included.
	// Longer values are truncated. Defaults to MaxStringLength.
	stringLength int

	// echo prints every command before it runs, which helps reading the output of a script.
	// Defaults to false.
	echo bool

	// output receives command results. Defaults to os.Stdout.
	output io.Writer

	logger logger.Logger
}

// NewConfig creates a console configuration with default values, then applies opts.
func NewConfig(opts ...ConfigOption) (*Config, error) {
	cfg := &Config{
		timeLimit:    1 * time.Second,
		stringLength: MaxStringLength,
		output:       os.Stdout,
		logger:       logger.GetLogger(),
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

func (cfg *Config) TimeLimit() time.Duration {
	return cfg.timeLimit
}

func (cfg *Config) FailProbability() int {
	return cfg.failProbability
}

func (cfg *Config) StringLength() int {
	return cfg.stringLength
}

func (cfg *Config) Echo() bool {
	return cfg.echo
}

// ConfigOption represents a functional option for configuring a Config.
type ConfigOption interface {
	apply(*Config) error
}

type configOptFunc struct {
	name      string
	applyFunc func(*Config) error
}

func (o *configOptFunc) apply(cfg *Config) error { return o.applyFunc(cfg) }

func newConfigOptFunc(name string, f func(*Config) error) *configOptFunc {
	return &configOptFunc{name: name, applyFunc: f}
}

// WithTimeLimit sets the time limit of each queue operation.
// It should be 0, which disables the limit, or between 1 millisecond and 60 seconds.
func WithTimeLimit(val time.Duration) ConfigOption {
	return newConfigOptFunc("WithTimeLimit", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if val != 0 && (val < time.Millisecond || val > maxTimeLimit) {
			return errors.New("time limit out of range [1ms, 60s]")
		}
		cfg.timeLimit = val

		return nil
	})
}

// WithFailProbability sets the probability, in percent, that an allocation is refused.
// It should be between 0 and 100.
func WithFailProbability(percent int) ConfigOption {
	return newConfigOptFunc("WithFailProbability", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if percent < 0 || percent > 100 {
			return errors.New("fail probability out of range [0, 100]")
		}
		cfg.failProbability = percent

		return nil
	})
}

// WithSeed makes allocation refusals reproducible.
func WithSeed(seed uint64) ConfigOption {
	return newConfigOptFunc("WithSeed", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		cfg.seed = seed
		cfg.seeded = true

		return nil
	})
}

// WithStringLength sets the size of the remove buffer, terminator included.
// It should be between 1 and MaxStringLength.
func WithStringLength(n int) ConfigOption {
	return newConfigOptFunc("WithStringLength", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if n < 1 || n > MaxStringLength {
			return errors.New("string length out of range [1, 1024]")
		}
		cfg.stringLength = n

		return nil
	})
}

// WithEcho sets whether commands are printed before they run.
func WithEcho(val bool) ConfigOption {
	return newConfigOptFunc("WithEcho", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		cfg.echo = val

		return nil
	})
}

// WithOutput sets the writer that receives command results.
func WithOutput(w io.Writer) ConfigOption {
	return newConfigOptFunc("WithOutput", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if w == nil {
			return ErrOutputNil
		}
		cfg.output = w

		return nil
	})
}

// WithLogger sets the logger of the console and of the queues it creates.
func WithLogger(l logger.Logger) ConfigOption {
	return newConfigOptFunc("WithLogger", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if l == nil {
			return ErrLoggerNil
		}
		cfg.logger = l

		return nil
	})
}
