package maintenance

import (
	"context"
	"fmt"
	"time"

	"jobboard/internal/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	defaultSchedule      = "@daily"
	defaultRetentionDays = 30
)

// NotificationPurger deletes read notifications created before cutoff.
type NotificationPurger interface {
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type task struct {
	name string
	run  func(ctx context.Context) error
}

// Cleaner runs periodic housekeeping on a cron schedule.
type Cleaner struct {
	notifications NotificationPurger
	extra         []task
	cron          *cron.Cron
	schedule      string
	retention     int
	now           func() time.Time
	log           *zap.Logger
	metrics       *metrics.Metrics
}

type Option func(*Cleaner)

func WithCron(c *cron.Cron) Option {
	return func(cl *Cleaner) {
		if c != nil {
			cl.cron = c
		}
	}
}

func WithNow(now func() time.Time) Option {
	return func(cl *Cleaner) {
		if now != nil {
			cl.now = now
		}
	}
}

func WithSchedule(spec string) Option {
	return func(cl *Cleaner) {
		if spec != "" {
			cl.schedule = spec
		}
	}
}

// WithRetentionDays sets how long read notifications are kept.
func WithRetentionDays(days int) Option {
	return func(cl *Cleaner) {
		if days > 0 {
			cl.retention = days
		}
	}
}

// WithTask adds a named job that runs on the same schedule.
func WithTask(name string, fn func(ctx context.Context) error) Option {
	return func(cl *Cleaner) {
		if fn != nil {
			cl.extra = append(cl.extra, task{name: name, run: fn})
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(cl *Cleaner) {
		cl.metrics = m
	}
}

// NewCleaner names logger "maintenance"; pass the parent logger.
func NewCleaner(notifications NotificationPurger, logger *zap.Logger, opts ...Option) *Cleaner {
	if logger == nil {
		logger = zap.NewNop()
	}
	cl := &Cleaner{
		notifications: notifications,
		schedule:      defaultSchedule,
		retention:     defaultRetentionDays,
		now:           time.Now,
		log:           logger.Named("maintenance"),
	}
	for _, opt := range opts {
		opt(cl)
	}
	if cl.cron == nil {
		cl.cron = cron.New(cron.WithLogger(cron.DiscardLogger))
	}
	return cl
}

func (c *Cleaner) tasks() []task {
	out := make([]task, 0, len(c.extra)+1)
	if c.notifications != nil {
		out = append(out, task{name: "notification-retention", run: c.purgeNotifications})
	}
	return append(out, c.extra...)
}

// Start registers every task with the scheduler and starts it. It is a no-op
// when there is nothing to run.
func (c *Cleaner) Start() error {
	tasks := c.tasks()
	if len(tasks) == 0 {
		return nil
	}

	for _, t := range tasks {
		t := t
		if _, err := c.cron.AddFunc(c.schedule, func() {
			if err := t.run(context.Background()); err != nil {
				c.log.Warn("maintenance task failed", zap.String("task", t.name), zap.Error(err))
			}
		}); err != nil {
			return fmt.Errorf("schedule %s: %w", t.name, err)
		}
	}

	c.cron.Start()
	c.log.Info("maintenance scheduled", zap.String("schedule", c.schedule), zap.Int("tasks", len(tasks)))
	return nil
}

// Stop halts the scheduler; the returned context is done once running jobs finish.
func (c *Cleaner) Stop() context.Context {
	if c.cron == nil {
		return context.Background()
	}
	return c.cron.Stop()
}

// RunOnce executes every task sequentially and reports all failures together.
func (c *Cleaner) RunOnce(ctx context.Context) error {
	var errs error
	for _, t := range c.tasks() {
		if err := t.run(ctx); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", t.name, err))
		}
	}
	return errs
}

func (c *Cleaner) purgeNotifications(ctx context.Context) error {
	cutoff := c.now().UTC().AddDate(0, 0, -c.retention)
	n, err := c.notifications.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	c.metrics.NotificationsPurged(n)
	if n > 0 {
		c.log.Info("read notifications purged", zap.Int64("deleted", n), zap.Time("cutoff", cutoff))
	}
	return nil
}
