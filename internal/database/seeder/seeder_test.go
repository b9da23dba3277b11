package seeder

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/config"
	"jobboard/internal/database"

	"github.com/stretchr/testify/require"
)

type stubDB struct {
	database.DB
}

type recordingSeeder struct {
	name string
	err  error
	ran  *[]string
}

func (s recordingSeeder) Name() string { return s.name }

func (s recordingSeeder) Run(context.Context, database.DB) error {
	*s.ran = append(*s.ran, s.name)
	return s.err
}

func TestRunner_StopsOnFirstError(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	r := Runner{Seeders: []Seeder{
		recordingSeeder{name: "a", ran: &ran},
		nil,
		recordingSeeder{name: "b", err: boom, ran: &ran},
		recordingSeeder{name: "c", ran: &ran},
	}}

	err := r.Run(context.Background(), stubDB{})
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "seed b")
	require.Equal(t, []string{"a", "b"}, ran)
}

func TestRunner_NilDB(t *testing.T) {
	require.Error(t, Runner{}.Run(context.Background(), nil))
}

func TestAdminSeeder_RequiresCredentials(t *testing.T) {
	err := AdminSeeder{Email: "", Password: "secret123"}.Run(context.Background(), stubDB{})
	require.ErrorIs(t, err, errAdminCredentials)

	err = AdminSeeder{Email: "root@example.test", Password: "short"}.Run(context.Background(), stubDB{})
	require.Error(t, err)
}

func TestDefaults(t *testing.T) {
	cfg := config.SeedConfig{AdminEmail: "root@example.test", AdminUsername: "root", AdminPassword: "secret123"}

	only := Defaults(cfg, false)
	require.Len(t, only, 1)
	require.Equal(t, AdminSeeder{Email: "root@example.test", Username: "root", Password: "secret123"}, only[0])

	withDemo := Defaults(cfg, true)
	require.Len(t, withDemo, 2)
	require.Equal(t, "demo", withDemo[1].Name())
}

type columnsDB struct {
	database.DB
	cols []string
}

func (d columnsDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return &columnRows{cols: d.cols, i: -1}, nil
}

type columnRows struct {
	cols []string
	i    int
}

func (r *columnRows) Close()     {}
func (r *columnRows) Err() error { return nil }
func (r *columnRows) Next() bool {
	r.i++
	return r.i < len(r.cols)
}
func (r *columnRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.cols[r.i]
	return nil
}

func TestEnsureTableColumns_ReportsEveryMissingColumn(t *testing.T) {
	db := columnsDB{cols: []string{"id", "email"}}

	require.NoError(t, EnsureTableColumns(context.Background(), db, "users", "id", "email"))

	err := EnsureTableColumns(context.Background(), db, "users", "id", "role", "username")
	require.ErrorIs(t, err, errSchemaMismatch)
	require.Contains(t, err.Error(), "users.role")
	require.Contains(t, err.Error(), "users.username")
}
