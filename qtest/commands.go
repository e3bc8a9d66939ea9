package qtest

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/arloliu/go-strqueue/internal/util"
	"github.com/arloliu/go-strqueue/queue"
)

var errQuit = errors.New("quit")

type command struct {
	usage   string
	help    string
	minArgs int
	maxArgs int
	// run returns an error only when the session has to stop.
	run func(c *Console, ctx context.Context, args []string) error
}

func (c *Console) commandTable() map[string]*command {
	return map[string]*command{
		"new":     {usage: "new", help: "Create new queue", run: (*Console).cmdNew},
		"free":    {usage: "free", help: "Delete queue", run: (*Console).cmdFree},
		"ih":      {usage: "ih str [n]", help: "Insert string str at head of queue n times (default: n == 1)", minArgs: 1, maxArgs: 2, run: (*Console).cmdInsertHead},
		"it":      {usage: "it str [n]", help: "Insert string str at tail of queue n times (default: n == 1)", minArgs: 1, maxArgs: 2, run: (*Console).cmdInsertTail},
		"rh":      {usage: "rh [str]", help: "Remove from head of queue, optionally compare to expected value str", maxArgs: 1, run: (*Console).cmdRemoveHead},
		"rhq":     {usage: "rhq", help: "Remove from head of queue without reporting value", run: (*Console).cmdRemoveHeadQuiet},
		"size":    {usage: "size [n]", help: "Compute queue size, optionally compare to expected size n", maxArgs: 1, run: (*Console).cmdSize},
		"reverse": {usage: "reverse", help: "Reverse queue", run: (*Console).cmdReverse},
		"sort":    {usage: "sort", help: "Sort queue in ascending order", run: (*Console).cmdSort},
		"option":  {usage: "option [name value]", help: "Display or set options", maxArgs: 2, run: (*Console).cmdOption},
		"help":    {usage: "help", help: "Show documentation", run: (*Console).cmdHelp},
		"quit":    {usage: "quit", help: "Exit program", run: (*Console).cmdQuit},
	}
}

func (c *Console) cmdNew(ctx context.Context, _ []string) error {
	c.freeQueue()

	var q *queue.Queue
	var err error
	if terr := c.timed(ctx, func() {
		q, err = queue.New(queue.WithAllocator(c.tracker), queue.WithLogger(c.log))
	}); terr != nil {
		return terr
	}

	if err != nil {
		if errors.Is(err, queue.ErrAllocationFailure) && c.faultInjection() {
			c.printf("queue creation refused by allocator\n")
			return nil
		}
		c.reportError(err)
		return nil
	}

	c.q = q
	c.printf("q = []\n")

	return nil
}

func (c *Console) cmdFree(_ context.Context, _ []string) error {
	if c.q == nil {
		c.printf("Warning: calling free on null queue\n")
		return nil
	}

	c.freeQueue()
	c.printf("q = NULL\n")

	return nil
}

func (c *Console) cmdInsertHead(ctx context.Context, args []string) error {
	return c.insert(ctx, args, "ih", (*queue.Queue).InsertHead)
}

func (c *Console) cmdInsertTail(ctx context.Context, args []string) error {
	return c.insert(ctx, args, "it", (*queue.Queue).InsertTail)
}

func (c *Console) insert(ctx context.Context, args []string, name string, insertFn func(*queue.Queue, string) bool) error {
	value := args[0]
	reps := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			c.reportError(fmt.Errorf("%w: invalid number of insertions '%s'", ErrInvalidArgs, args[1]))
			return nil
		}
		reps = n
	}

	if c.q == nil {
		c.reportError(fmt.Errorf("calling %s on null queue", name))
		return nil
	}

	q := c.q
	refused := 0
	if err := c.timed(ctx, func() {
		for i := 0; i < reps; i++ {
			if !insertFn(q, value) {
				refused++
			}
		}
	}); err != nil {
		return err
	}

	if refused > 0 {
		if c.faultInjection() {
			c.printf("insertion of %q refused %d of %d times\n", value, refused, reps)
		} else {
			c.reportError(fmt.Errorf("insertion of %q failed %d of %d times", value, refused, reps))
		}
	}
	c.printf("q size = %d\n", q.Size())

	return nil
}

func (c *Console) cmdRemoveHead(ctx context.Context, args []string) error {
	if c.q == nil {
		c.reportError(errors.New("calling rh on null queue"))
		return nil
	}

	q := c.q
	buf := make([]byte, c.cfg.stringLength)
	var ok bool
	if err := c.timed(ctx, func() {
		ok = q.RemoveHead(buf)
	}); err != nil {
		return err
	}

	if !ok {
		if len(args) == 1 {
			c.reportError(fmt.Errorf("removal from empty queue, expected %q", args[0]))
		} else {
			c.printf("Warning: removal from empty queue\n")
		}
		return nil
	}

	got := string(util.Terminated(buf))
	c.printf("Removed %s from queue\n", got)

	if len(args) == 1 {
		// the expected value is compared the way the buffer truncates it
		want := args[0]
		if len(want) > c.cfg.stringLength-1 {
			want = want[:c.cfg.stringLength-1]
		}
		if got != want {
			c.reportError(fmt.Errorf("removed value %s does not match expected value %s", got, want))
		}
	}

	return nil
}

func (c *Console) cmdRemoveHeadQuiet(ctx context.Context, _ []string) error {
	if c.q == nil {
		c.reportError(errors.New("calling rhq on null queue"))
		return nil
	}

	q := c.q
	var ok bool
	if err := c.timed(ctx, func() {
		ok = q.RemoveHead(nil)
	}); err != nil {
		return err
	}

	if !ok {
		c.printf("Warning: removal from empty queue\n")
		return nil
	}
	c.printf("Removed element from queue\n")

	return nil
}

func (c *Console) cmdSize(ctx context.Context, args []string) error {
	want := -1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			c.reportError(fmt.Errorf("%w: invalid size '%s'", ErrInvalidArgs, args[0]))
			return nil
		}
		want = n
	}

	q := c.q
	var size int
	if err := c.timed(ctx, func() {
		size = q.Size()
	}); err != nil {
		return err
	}

	if q == nil {
		c.printf("Warning: calling size on null queue\n")
	}
	c.printf("Queue size = %d\n", size)

	if want >= 0 && size != want {
		c.reportError(fmt.Errorf("computed queue size as %d, but expected %d", size, want))
	}

	return nil
}

func (c *Console) cmdReverse(ctx context.Context, _ []string) error {
	return c.relink(ctx, "reverse", (*queue.Queue).Reverse)
}

func (c *Console) cmdSort(ctx context.Context, _ []string) error {
	return c.relink(ctx, "sort", (*queue.Queue).Sort)
}

// relink runs an operation that must neither acquire nor release any block.
func (c *Console) relink(ctx context.Context, name string, op func(*queue.Queue)) error {
	if c.q == nil {
		c.printf("Warning: calling %s on null queue\n", name)
		return nil
	}

	q := c.q
	acquired, released := c.tracker.Acquired(), c.tracker.Released()
	if err := c.timed(ctx, func() {
		op(q)
	}); err != nil {
		return err
	}

	if c.tracker.Acquired() != acquired || c.tracker.Released() != released {
		c.reportError(fmt.Errorf("%s allocated or released queue storage", name))
	}
	c.printf("q size = %d\n", q.Size())

	return nil
}

func (c *Console) cmdOption(_ context.Context, args []string) error {
	switch len(args) {
	case 0:
		c.printf("Options:\n")
		c.printf("\techo\t\t%t\tDo/don't echo commands\n", c.cfg.echo)
		c.printf("\tfail\t\t%d\tProbability (percent) that an allocation is refused\n", c.tracker.FailProbability())
		c.printf("\tlength\t\t%d\tSize of the buffer removed strings are copied into\n", c.cfg.stringLength)
		c.printf("\ttimelimit\t%d\tMaximum number of milliseconds per operation, 0 disables\n", c.cfg.timeLimit.Milliseconds())
		return nil
	case 1:
		c.reportError(fmt.Errorf("%w: usage: option [name value]", ErrInvalidArgs))
		return nil
	}

	name, raw := args[0], args[1]
	var err error
	switch name {
	case "echo":
		var val bool
		if val, err = strconv.ParseBool(raw); err == nil {
			err = WithEcho(val).apply(c.cfg)
		}
	case "fail":
		var val int
		if val, err = strconv.Atoi(raw); err == nil {
			if err = WithFailProbability(val).apply(c.cfg); err == nil {
				err = c.tracker.SetFailProbability(val)
			}
		}
	case "length":
		var val int
		if val, err = strconv.Atoi(raw); err == nil {
			err = WithStringLength(val).apply(c.cfg)
		}
	case "timelimit":
		var val int
		if val, err = strconv.Atoi(raw); err == nil {
			err = WithTimeLimit(time.Duration(val) * time.Millisecond).apply(c.cfg)
		}
	default:
		err = fmt.Errorf("unknown option '%s'", name)
	}

	if err != nil {
		c.reportError(fmt.Errorf("option %s: %w", name, err))
	}

	return nil
}

func (c *Console) cmdHelp(_ context.Context, _ []string) error {
	c.printf("Commands:\n")
	for _, name := range c.sortedCommandNames() {
		cmd := c.commands[name]
		c.printf("\t%-20s| %s\n", cmd.usage, cmd.help)
	}

	return nil
}

func (c *Console) cmdQuit(_ context.Context, _ []string) error {
	return errQuit
}
