package browser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySink struct {
	bytes.Buffer
	sections int
}

func (s *memorySink) BeginSection(t time.Time) error {
	s.sections++
	fmt.Fprintf(&s.Buffer, "\n--- %s ---\n", t.Format(sectionTimeLayout))
	return nil
}

func (s *memorySink) Close() error { return nil }

type captureRunner struct {
	code   int
	err    error
	output string

	calls int
	argv  []string
	env   []string
}

func (r *captureRunner) Run(ctx context.Context, w io.Writer, env []string, argv ...string) (int, error) {
	r.calls++
	r.argv = argv
	r.env = env
	if r.output != "" {
		fmt.Fprintln(w, r.output)
	}
	return r.code, r.err
}

var testFrontEnds = map[FrontEnd][]string{
	Pacman: {"pacman", "-S", "--needed", "--noconfirm"},
	Pamac:  {"pamac", "install", "--no-confirm"},
}

func newTestInstaller(out io.Writer, sink Sink, runner CommandRunner) *Installer {
	return &Installer{
		Out:             out,
		Sink:            sink,
		Runner:          runner,
		FrontEndCommand: testFrontEnds,
		Now:             func() time.Time { return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC) },
		Env:             func() []string { return []string{"LANG=en_US.UTF-8", "LANGUAGE=en_US"} },
		HostLocale:      func() string { return "pt-BR" },
	}
}

func statusLines(output string) []string {
	var markers []string
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "STATUS:") {
			markers = append(markers, line)
		}
	}
	return markers
}

func TestInstallBuildsFrontEndCommand(t *testing.T) {
	for _, entry := range Catalog {
		runner := &captureRunner{}
		installer := newTestInstaller(io.Discard, &memorySink{}, runner)

		code := installer.Install(context.Background(), entry.ID)
		require.Equal(t, 0, code, "install %s", entry.ID)
		require.Equal(t, 1, runner.calls, "install %s", entry.ID)

		want := append(append([]string{}, testFrontEnds[entry.FrontEnd]...), entry.Package)
		assert.Equal(t, want, runner.argv, "command for %s", entry.ID)
	}
}

func TestInstallUnknownBrowser(t *testing.T) {
	runner := &captureRunner{}
	out := &bytes.Buffer{}
	installer := newTestInstaller(out, &memorySink{}, runner)

	code := installer.Install(context.Background(), "opera-gx")

	assert.Equal(t, 1, code)
	assert.Zero(t, runner.calls, "no installer must run for an unknown browser")
	assert.Contains(t, out.String(), "Unknown browser: opera-gx")
	assert.Equal(t, []string{MarkerStarted, MarkerError}, statusLines(out.String()))
}

func TestInstallMarkerOrder(t *testing.T) {
	runner := &captureRunner{output: "resolving dependencies..."}
	out := &bytes.Buffer{}
	installer := newTestInstaller(out, &memorySink{}, runner)

	code := installer.Install(context.Background(), Firefox)
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, MarkerStarted, lines[0], "started must be the first line")
	assert.Equal(t, MarkerSuccess, lines[len(lines)-1], "terminal marker must be last")
	assert.Equal(t, []string{MarkerStarted, MarkerSuccess}, statusLines(out.String()))
	assert.Contains(t, out.String(), "resolving dependencies...")
}

func TestInstallPropagatesFailureCode(t *testing.T) {
	runner := &captureRunner{code: 7, output: "error: target not found"}
	out := &bytes.Buffer{}
	installer := newTestInstaller(out, &memorySink{}, runner)

	code := installer.Install(context.Background(), Vivaldi)

	assert.Equal(t, 7, code, "the front-end's own code must pass through")
	assert.Equal(t, []string{MarkerStarted, MarkerError}, statusLines(out.String()))
}

func TestInstallSpawnFailure(t *testing.T) {
	runner := &captureRunner{err: fmt.Errorf("start pacman: executable not found")}
	out := &bytes.Buffer{}
	installer := newTestInstaller(out, &memorySink{}, runner)

	code := installer.Install(context.Background(), Chromium)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Failed to run pacman")
	assert.Equal(t, []string{MarkerStarted, MarkerError}, statusLines(out.String()))
}

func TestInstallPinsLocaleEnv(t *testing.T) {
	runner := &captureRunner{}
	installer := newTestInstaller(io.Discard, &memorySink{}, runner)

	installer.Install(context.Background(), Brave)

	assert.Contains(t, runner.env, "LANG=en_US.UTF-8")
	assert.Contains(t, runner.env, "LANGUAGE=en_US")
}

func TestInstallMirrorsTranscriptToSink(t *testing.T) {
	runner := &captureRunner{output: "installing firefox..."}
	out := &bytes.Buffer{}
	sink := &memorySink{}
	installer := newTestInstaller(out, sink, runner)

	installer.Install(context.Background(), Firefox)
	installer.Install(context.Background(), Firefox)

	assert.Equal(t, 2, sink.sections, "each invocation appends its own section")
	assert.Equal(t, 2, strings.Count(sink.String(), MarkerStarted))
	assert.Equal(t, 2, strings.Count(sink.String(), "installing firefox..."))
	assert.Contains(t, sink.String(), "Host locale pt-BR")
}
