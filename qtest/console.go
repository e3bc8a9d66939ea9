package qtest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/arloliu/go-strqueue/alloc"
	"github.com/arloliu/go-strqueue/internal/pool"
	"github.com/arloliu/go-strqueue/logger"
	"github.com/arloliu/go-strqueue/queue"
)

// Console runs commands against one queue at a time.
//
// A Console is not safe for concurrent use.
type Console struct {
	cfg      *Config
	out      io.Writer
	log      logger.Logger
	tracker  *alloc.Tracker
	commands map[string]*command

	q       *queue.Queue
	errors  int
	aborted bool
}

// NewConsole creates a console with no queue. The first command of a session is usually "new".
func NewConsole(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	trackerOpts := []alloc.TrackerOption{alloc.WithFailProbability(cfg.failProbability)}
	if cfg.seeded {
		trackerOpts = append(trackerOpts, alloc.WithSeed(cfg.seed))
	}
	tracker, err := alloc.NewTracker(trackerOpts...)
	if err != nil {
		return nil, err
	}

	c := &Console{
		cfg:     cfg,
		out:     cfg.output,
		log:     cfg.logger.With("component", "qtest"),
		tracker: tracker,
	}
	c.commands = c.commandTable()

	return c, nil
}

// Errors returns the number of errors reported so far.
func (c *Console) Errors() int {
	return c.errors
}

// Run reads commands from r until "quit", the end of input, or ctx is done.
//
// When the input ends the current queue is destroyed and checked for leaks. Run returns an
// error wrapping ErrCommandsFailed if any command reported an error, ErrTimeLimitExceeded if
// an operation ran out of time, or the context's error if ctx was canceled.
func (c *Console) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		quit, err := c.Exec(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}

	c.freeQueue()

	if c.errors > 0 {
		return fmt.Errorf("%w: %d errors", ErrCommandsFailed, c.errors)
	}

	return nil
}

// Exec runs a single command line. It returns true when the command asks to stop.
//
// Command failures are reported to the output and counted; the returned error is non-nil
// only when the session cannot continue.
func (c *Console) Exec(ctx context.Context, line string) (bool, error) {
	if c.aborted {
		return true, ErrTimeLimitExceeded
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	if c.cfg.echo {
		fmt.Fprintf(c.out, "cmd> %s\n", strings.Join(fields, " "))
	}

	name, args := fields[0], fields[1:]
	cmd, ok := c.commands[name]
	if !ok {
		c.reportError(fmt.Errorf("%w '%s'", ErrUnknownCommand, name))
		return false, nil
	}

	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		c.reportError(fmt.Errorf("%w: usage: %s", ErrInvalidArgs, cmd.usage))
		return false, nil
	}

	c.log.Debug("run command", "cmd", name, "args", args)

	if err := cmd.run(c, ctx, args); err != nil {
		if errors.Is(err, errQuit) {
			return true, nil
		}
		c.log.Error("command aborted", "cmd", name, "error", err)
		return true, err
	}

	return false, nil
}

// timed runs op under the configured time limit. After a timeout op may still be running
// in the background and owns the queue, so the console is marked aborted and never touches
// the queue again.
func (c *Console) timed(ctx context.Context, op func()) error {
	if c.cfg.timeLimit == 0 {
		op()
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		op()
	}()

	timer := pool.GetTimer(c.cfg.timeLimit)
	defer pool.PutTimer(timer)

	select {
	case <-done:
		return nil
	case <-timer.C:
		c.abort()
		return fmt.Errorf("%w: %s", ErrTimeLimitExceeded, c.cfg.timeLimit)
	case <-ctx.Done():
		c.abort()
		return ctx.Err()
	}
}

func (c *Console) abort() {
	c.aborted = true
	c.q = nil
}

// freeQueue destroys the current queue, if any, and checks that nothing leaked.
func (c *Console) freeQueue() {
	if c.q == nil {
		return
	}

	c.q.Destroy()
	c.q = nil

	if err := c.tracker.Leaks(); err != nil {
		c.reportError(err)
		c.log.Warn("queue leaked blocks", "error", err)
	}
	c.tracker.Reset()
}

func (c *Console) faultInjection() bool {
	return c.tracker.FailProbability() > 0
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) reportError(err error) {
	c.errors++
	c.printf("ERROR: %v\n", err)
}

func (c *Console) sortedCommandNames() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
