package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakePurger struct {
	cutoffs []time.Time
	deleted int64
	err     error
}

func (f *fakePurger) DeleteReadBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.deleted, f.err
}

func TestRunOnce_UsesRetentionCutoff(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	purger := &fakePurger{deleted: 4}
	cl := NewCleaner(purger, nil, WithNow(func() time.Time { return now }), WithRetentionDays(7))

	require.NoError(t, cl.RunOnce(context.Background()))
	require.Equal(t, []time.Time{now.AddDate(0, 0, -7)}, purger.cutoffs)
}

func TestRunOnce_DefaultRetention(t *testing.T) {
	now := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	purger := &fakePurger{}
	cl := NewCleaner(purger, nil, WithNow(func() time.Time { return now }), WithRetentionDays(0))

	require.NoError(t, cl.RunOnce(context.Background()))
	require.Equal(t, now.AddDate(0, 0, -defaultRetentionDays), purger.cutoffs[0])
}

func TestRunOnce_CollectsEveryFailure(t *testing.T) {
	purger := &fakePurger{err: errors.New("db down")}
	ran := false
	cl := NewCleaner(purger, nil,
		WithTask("cache", func(context.Context) error { return errors.New("redis down") }),
		WithTask("noop", func(context.Context) error { ran = true; return nil }),
	)

	err := cl.RunOnce(context.Background())
	require.Error(t, err)
	require.True(t, ran)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	require.Contains(t, errs[0].Error(), "notification-retention: db down")
	require.Contains(t, errs[1].Error(), "cache: redis down")
}

func TestStart_RejectsBadSchedule(t *testing.T) {
	cl := NewCleaner(&fakePurger{}, nil, WithSchedule("not a schedule"))
	require.Error(t, cl.Start())
}

func TestStart_NothingToRun(t *testing.T) {
	cl := NewCleaner(nil, nil)
	require.NoError(t, cl.Start())
	<-cl.Stop().Done()
}

func TestNewCleaner_NamesLoggerOnce(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	cl := NewCleaner(&fakePurger{deleted: 2}, zap.New(core))

	require.NoError(t, cl.RunOnce(context.Background()))
	entries := logs.FilterMessage("read notifications purged").All()
	require.Len(t, entries, 1)
	require.Equal(t, "maintenance", entries[0].LoggerName)
}
