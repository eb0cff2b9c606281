package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestLogUseCaseObserver_Format(t *testing.T) {
	var logs bytes.Buffer
	obs := NewLogUseCaseObserver(&logs)

	observe(context.Background(), obs, "theme-set", time.Now(), nil, map[string]any{"theme": "dark", "attempt": 1})
	observe(context.Background(), obs, "checklist-toggle", time.Now(), errors.New("disk full"), nil)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "level=INFO")
	assert.Contains(t, lines[0], "use_case=theme-set")
	assert.Contains(t, lines[0], "success=true")
	assert.Less(t, strings.Index(lines[0], "attempt=1"), strings.Index(lines[0], "theme=dark"))

	assert.Contains(t, lines[1], "level=WARN")
	assert.Contains(t, lines[1], "success=false")
	assert.Contains(t, lines[1], `error="disk full"`)

	// Both lines share one run id.
	runID := func(line string) string {
		i := strings.Index(line, "run_id=")
		require.GreaterOrEqual(t, i, 0)
		return strings.Fields(line[i:])[0]
	}
	assert.Equal(t, runID(lines[0]), runID(lines[1]))
}

func TestCombineObservers(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, combineObservers(nil))
	assert.Equal(t, NoopUseCaseObserver{}, combineObservers([]UseCaseObserver{nil}))

	a, b := &recordingObserver{}, &recordingObserver{}
	assert.Same(t, a, combineObservers([]UseCaseObserver{nil, a}))

	obs := combineObservers([]UseCaseObserver{a, nil, b})
	observe(context.Background(), obs, "prefs-import", time.Now(), nil, nil)
	require.Len(t, a.events, 1)
	require.Len(t, b.events, 1)
	assert.True(t, a.events[0].Success())
	assert.Equal(t, "prefs-import", b.events[0].Name)
}

func TestNilLoggerIsNoop(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
	assert.Equal(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
