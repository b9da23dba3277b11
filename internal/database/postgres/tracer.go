package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type traceStartKey struct{}

type traceStart struct {
	sql string
	at  time.Time
}

// queryTracer logs failed statements at debug and statements slower than
// slow at warn. Arguments are never logged.
type queryTracer struct {
	logger *zap.Logger
	slow   time.Duration
	now    func() time.Time
}

func (t *queryTracer) clock() time.Time {
	if t.now != nil {
		return t.now()
	}
	return time.Now()
}

func (t *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceStartKey{}, traceStart{sql: data.SQL, at: t.clock()})
}

func (t *queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(traceStartKey{}).(traceStart)
	if !ok {
		return
	}
	elapsed := t.clock().Sub(start.at)
	fields := []zap.Field{
		zap.String("sql", compactSQL(start.sql)),
		zap.Duration("elapsed", elapsed),
	}

	if data.Err != nil && !errors.Is(data.Err, pgx.ErrNoRows) {
		t.logger.Debug("query failed", append(fields, zap.Error(data.Err))...)
		return
	}
	if t.slow > 0 && elapsed >= t.slow {
		t.logger.Warn("slow query", append(fields, zap.Int64("rows", data.CommandTag.RowsAffected()))...)
	}
}

func compactSQL(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}
