package browser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// CommandRunner executes a command with its stdout and stderr merged into a
// single stream, mirroring that stream to w line by line as it is produced.
// The returned status is the command's own exit status, never that of the
// mirroring. A non-nil error means the command could not be run at all.
type CommandRunner interface {
	Run(ctx context.Context, w io.Writer, env []string, argv ...string) (int, error)
}

// ExecRunner runs commands through the operating system.
type ExecRunner struct{}

// Run wires the child's stdout and stderr to the same pipe, so the merged
// stream keeps the exact order the child produced, then copies it to w one
// line at a time.
func (ExecRunner) Run(ctx context.Context, w io.Writer, env []string, argv ...string) (int, error) {
	if len(argv) == 0 {
		return 0, errors.New("empty command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = env

	pr, pw, err := os.Pipe()
	if err != nil {
		return 0, err
	}
	cmd.Stdout = pw
	cmd.Stderr = pw
	if err := cmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		return 0, fmt.Errorf("start %s: %w", argv[0], err)
	}
	// The child holds its own copies of the write end.
	pw.Close()

	scanner := bufio.NewScanner(pr)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		fmt.Fprintln(w, scanner.Text())
	}
	pr.Close()

	err = cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 0, err
	}
	return 0, nil
}
