package log

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetDefaultSwitchesSink(t *testing.T) {
	prev := Default()
	defer ResetDefault(prev)

	var buf bytes.Buffer
	ResetDefault(New(&buf, InfoLevel))
	Info("switched", String("k", "v"))
	assert.Contains(t, buf.String(), "switched")

	var second bytes.Buffer
	ResetDefault(New(&second, InfoLevel))
	Info("again")
	assert.NotContains(t, buf.String(), "again")
	assert.Contains(t, second.String(), "again")
}

// the config watcher swaps the default logger while handlers keep logging;
// run with -race
func TestResetDefaultConcurrentWithLogging(t *testing.T) {
	prev := Default()
	defer ResetDefault(prev)
	ResetDefault(New(io.Discard, InfoLevel))

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					Info("in flight", Int("n", 1))
					Default().Debug("named", String("sub", "sql"))
				}
			}
		}()
	}
	for range 50 {
		ResetDefault(New(io.Discard, InfoLevel))
	}
	close(stop)
	wg.Wait()
}

func TestGetLoggerByNameUsesCurrentDefault(t *testing.T) {
	prev := Default()
	defer ResetDefault(prev)

	var buf bytes.Buffer
	ResetDefault(New(&buf, DebugLevel))
	GetLoggerByName("sql").Debug("query")
	assert.Contains(t, buf.String(), "sql")
	assert.Contains(t, buf.String(), "query")
}
