package pkgmanager

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// fakeRunner answers commands from a table keyed by the command line.
type fakeRunner struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	calls     []Command
}

type fakeResponse struct {
	stdout string
	code   int
	err    error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{responses: make(map[string]fakeResponse)}
}

func (f *fakeRunner) on(cmdline string, resp fakeResponse) *fakeRunner {
	f.responses[cmdline] = resp
	return f
}

func (f *fakeRunner) Run(_ context.Context, c Command) (int, error) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	resp, ok := f.responses[c.String()]
	f.mu.Unlock()

	if !ok {
		return -1, fmt.Errorf("exec: %q: %w", c.Name, errors.New("executable file not found in $PATH"))
	}
	if resp.err != nil {
		return -1, resp.err
	}
	if c.Stdout != nil && resp.stdout != "" {
		fmt.Fprint(c.Stdout, resp.stdout)
	}
	return resp.code, nil
}
