package collector

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// Runner executes a platform utility and returns its complete stdout.
type Runner interface {
	Run(name string, args ...string) (string, error)
}

// ExecRunner runs each command as a one-shot subprocess bounded by Timeout.
type ExecRunner struct {
	Timeout time.Duration
}

func (r ExecRunner) Run(name string, args ...string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%s: timed out after %s", name, timeout)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(out), nil
}
