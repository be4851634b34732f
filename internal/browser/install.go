package browser

import (
	"context"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

// Status markers, emitted on the output stream for the calling application
// to parse. Started is always first and exactly one of Success or Error is
// always last.
const (
	MarkerStarted = "STATUS:started"
	MarkerSuccess = "STATUS:success"
	MarkerError   = "STATUS:error"
)

// Installer runs one browser installation: it picks the front-end command
// for the identifier, executes it with a pinned locale, and mirrors the
// merged output live to both the output stream and the transcript sink.
type Installer struct {
	// Out is the caller-visible stream (stdout in production). Status
	// markers and mirrored installer output appear here.
	Out io.Writer
	// Sink receives the same transcript, durably appended.
	Sink Sink
	// Runner executes the front-end command.
	Runner CommandRunner
	// FrontEndCommand maps each front-end to its argv prefix; the package
	// name is appended as the final argument.
	FrontEndCommand map[FrontEnd][]string

	// Overridable in tests.
	Now        func() time.Time
	Env        func() []string
	HostLocale func() string
}

// NewInstaller assembles an installer with real clock, environment and
// locale detection. The front-end argv prefixes come from configuration.
func NewInstaller(out io.Writer, sink Sink, frontEnds map[FrontEnd][]string) *Installer {
	return &Installer{
		Out:             out,
		Sink:            sink,
		Runner:          ExecRunner{},
		FrontEndCommand: frontEnds,
		Now:             time.Now,
		Env:             InstallEnv,
		HostLocale:      HostLocale,
	}
}

// Install runs the whole install operation for one identifier and returns
// the process exit code: 0 on success, 1 for an unknown identifier or a
// front-end that could not be spawned, otherwise the front-end's own
// nonzero code, verbatim.
//
// A single attempt is made. Retrying is the calling application's business,
// via a fresh invocation.
func (inst *Installer) Install(ctx context.Context, id ID) int {
	if err := inst.Sink.BeginSection(inst.Now()); err != nil {
		// Keep going: the caller-visible stream is the contract, the log
		// is best effort from here on.
		log.Warnf("transcript log unavailable: %v", err)
	}
	out := io.MultiWriter(inst.Out, inst.Sink)

	fmt.Fprintln(out, MarkerStarted)
	fmt.Fprintf(out, "Preparing to install %s...\n", id)
	if host := inst.HostLocale(); host != "" {
		fmt.Fprintf(out, "Host locale %s, output forced to %s\n", host, installLanguage)
	}

	entry, err := Lookup(id)
	if err != nil {
		fmt.Fprintf(out, "Unknown browser: %s\n", id)
		fmt.Fprintln(out, MarkerError)
		return 1
	}

	prefix, ok := inst.FrontEndCommand[entry.FrontEnd]
	if !ok || len(prefix) == 0 {
		fmt.Fprintf(out, "No command configured for %s\n", entry.FrontEnd)
		fmt.Fprintln(out, MarkerError)
		return 1
	}
	argv := append(append([]string{}, prefix...), entry.Package)

	log.WithFields(log.Fields{"browser": id, "frontend": entry.FrontEnd.String()}).
		Infof("running %v", argv)
	code, err := inst.Runner.Run(ctx, out, inst.Env(), argv...)
	if err != nil {
		fmt.Fprintf(out, "Failed to run %s: %v\n", argv[0], err)
		fmt.Fprintln(out, MarkerError)
		return 1
	}

	if code == 0 {
		fmt.Fprintln(out, MarkerSuccess)
	} else {
		fmt.Fprintln(out, MarkerError)
	}
	return code
}
