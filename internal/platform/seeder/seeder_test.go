package seeder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philly/posts-api/internal/platform/seeder"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}

type fakeSeeder struct {
	name string
	err  error
	runs *[]string
}

func (f fakeSeeder) Name() string { return f.name }

func (f fakeSeeder) Seed(ctx context.Context) error {
	*f.runs = append(*f.runs, f.name)
	return f.err
}

func TestOrchestrator_RunsInOrder(t *testing.T) {
	var runs []string
	o := seeder.NewOrchestrator(nopLogger{}, []seeder.Seeder{
		fakeSeeder{name: "first", runs: &runs},
		fakeSeeder{name: "second", runs: &runs},
	})

	require.NoError(t, o.RunAll(context.Background()))
	assert.Equal(t, []string{"first", "second"}, runs)
}

func TestOrchestrator_StopsAtFirstFailure(t *testing.T) {
	var runs []string
	boom := errors.New("boom")
	o := seeder.NewOrchestrator(nopLogger{}, []seeder.Seeder{
		fakeSeeder{name: "first", err: boom, runs: &runs},
		fakeSeeder{name: "second", runs: &runs},
	})

	err := o.RunAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "seeder first failed")
	assert.Equal(t, []string{"first"}, runs)
}

func TestOrchestrator_NoSeeders(t *testing.T) {
	o := seeder.NewOrchestrator(nopLogger{}, nil)
	assert.NoError(t, o.RunAll(context.Background()))
}
