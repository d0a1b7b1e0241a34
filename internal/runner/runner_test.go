package runner

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scriptripper/internal/llm"
	"scriptripper/internal/logger"
	"scriptripper/internal/profile"
)

// fakeInvoker records every session it receives and replies from a script.
type fakeInvoker struct {
	sessions []string
	reply    func(call int, sessionText string) (string, error)
}

func (f *fakeInvoker) Invoke(ctx context.Context, sessionText string) (string, error) {
	call := len(f.sessions)
	f.sessions = append(f.sessions, sessionText)
	if f.reply == nil {
		return "ok", nil
	}
	return f.reply(call, sessionText)
}

type recordingObserver struct {
	events []string
}

func (o *recordingObserver) TaskStarted(ctx context.Context, task string, index, total int) {
	o.events = append(o.events, fmt.Sprintf("start %s %d/%d", task, index, total))
}

func (o *recordingObserver) TaskFinished(ctx context.Context, task string, index, total int, err error) {
	status := "ok"
	if err != nil {
		status = "err"
	}
	o.events = append(o.events, fmt.Sprintf("finish %s %d/%d %s", task, index, total, status))
}

func tasks(names ...string) []profile.TaskDefinition {
	defs := make([]profile.TaskDefinition, len(names))
	for i, n := range names {
		defs[i] = profile.TaskDefinition{Name: n, Prompt: "prompt for " + n}
	}
	return defs
}

func quietLogger() logger.Logger {
	return logger.NewWithWriter(&strings.Builder{}, "error")
}

func TestRunOrder(t *testing.T) {
	inv := &fakeInvoker{}
	r := New(inv, "guide", quietLogger(), Options{})

	selected := tasks("c", "a", "b")
	results := r.Run(context.Background(), "transcript", selected)

	require.Len(t, results, 3)
	for i, task := range selected {
		assert.Equal(t, task.Name, results[i].Task)
		assert.Contains(t, inv.sessions[i], task.Prompt,
			"call %d was not for task %s", i, task.Name)
	}
}

func TestRunContinuesPastFailure(t *testing.T) {
	inv := &fakeInvoker{
		reply: func(call int, _ string) (string, error) {
			if call == 2 { // third task
				return "", &llm.APIError{Code: 429, Message: "too many requests"}
			}
			return fmt.Sprintf("reply %d", call), nil
		},
	}
	r := New(inv, "guide", quietLogger(), Options{})

	results := r.Run(context.Background(), "transcript", tasks("t1", "t2", "t3", "t4", "t5"))

	require.Len(t, results, 5)
	for i, res := range results {
		if i == 2 {
			assert.False(t, res.Succeeded(), "task 3 should have failed")
			var apiErr *llm.APIError
			require.ErrorAs(t, res.Err, &apiErr)
			assert.Equal(t, 429, apiErr.Code)
		} else {
			assert.True(t, res.Succeeded(), "task %d should have succeeded", i+1)
			assert.Equal(t, fmt.Sprintf("reply %d", i), res.Output)
		}
	}
}

func TestRunCancellationBetweenTasks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	inv := &fakeInvoker{
		reply: func(call int, _ string) (string, error) {
			if call == 1 {
				cancel() // signalled while task 2 is in flight
			}
			return "ok", nil
		},
	}
	r := New(inv, "guide", quietLogger(), Options{})

	results := r.Run(ctx, "transcript", tasks("t1", "t2", "t3", "t4", "t5"))

	// The in-flight task finishes; nothing after it starts.
	require.Len(t, results, 2)
	assert.Len(t, inv.sessions, 2)
	assert.True(t, results[1].Succeeded())
}

func TestRunProgressNotifications(t *testing.T) {
	obs := &recordingObserver{}
	inv := &fakeInvoker{
		reply: func(call int, _ string) (string, error) {
			if call == 1 {
				return "", &llm.APIError{Message: "boom"}
			}
			return "ok", nil
		},
	}
	r := New(inv, "guide", quietLogger(), Options{Observer: obs})

	r.Run(context.Background(), "transcript", tasks("alpha", "beta"))

	assert.Equal(t, []string{
		"start alpha 1/2",
		"finish alpha 1/2 ok",
		"start beta 2/2",
		"finish beta 2/2 err",
	}, obs.events)
}

func TestRunEmptySelection(t *testing.T) {
	inv := &fakeInvoker{}
	r := New(inv, "guide", quietLogger(), Options{})

	results := r.Run(context.Background(), "transcript", nil)
	assert.Empty(t, results)
	assert.Empty(t, inv.sessions)
}

func TestRunFullTranscriptInSession(t *testing.T) {
	inv := &fakeInvoker{}
	r := New(inv, "guide", quietLogger(), Options{})

	transcript := strings.Repeat("every word matters. ", 500)
	r.Run(context.Background(), transcript, tasks("summary"))

	require.Len(t, inv.sessions, 1)
	assert.Contains(t, inv.sessions[0], transcript,
		"session must contain the full transcript verbatim")
}

func TestRunChunkedMode(t *testing.T) {
	inv := &fakeInvoker{
		reply: func(call int, sessionText string) (string, error) {
			if strings.Contains(sessionText, "RAW CHUNK RESULTS") {
				return "final report", nil
			}
			return fmt.Sprintf("chunk finding %d", call), nil
		},
	}
	r := New(inv, "the master guide", quietLogger(), Options{ChunkSize: 100, ChunkOverlap: 10})

	transcript := strings.Repeat("spoken line of the meeting\n", 20) // > 100 chars
	results := r.Run(context.Background(), transcript, tasks("summary"))

	require.Len(t, results, 1)
	require.True(t, results[0].Succeeded())
	assert.Equal(t, "final report", results[0].Output)

	// One call per chunk plus the synthesis call.
	require.Greater(t, len(inv.sessions), 2)
	last := inv.sessions[len(inv.sessions)-1]
	assert.Contains(t, last, "the master guide")
	assert.Contains(t, last, "chunk finding 0")
	for _, s := range inv.sessions[:len(inv.sessions)-1] {
		assert.Contains(t, s, "TRANSCRIPT CHUNK")
	}
}

func TestRunChunkedModeDisabledBelowThreshold(t *testing.T) {
	inv := &fakeInvoker{}
	r := New(inv, "guide", quietLogger(), Options{ChunkSize: 10_000})

	r.Run(context.Background(), "short transcript", tasks("summary"))

	require.Len(t, inv.sessions, 1)
	assert.Contains(t, inv.sessions[0], "short transcript")
	assert.NotContains(t, inv.sessions[0], "TRANSCRIPT CHUNK")
}

func TestRunChunkFailureFailsTask(t *testing.T) {
	inv := &fakeInvoker{
		reply: func(call int, _ string) (string, error) {
			if call == 1 {
				return "", &llm.APIError{Code: 503, Message: "unavailable"}
			}
			return "ok", nil
		},
	}
	r := New(inv, "guide", quietLogger(), Options{ChunkSize: 50})

	transcript := strings.Repeat("line of dialogue\n", 20)
	results := r.Run(context.Background(), transcript, tasks("summary", "actions"))

	require.Len(t, results, 2)
	assert.False(t, results[0].Succeeded())
	// The second task still runs.
	assert.True(t, results[1].Succeeded())
}
