package engine

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
)

// invocation is one recorded subprocess call.
type invocation struct {
	name string
	args []string
}

// commandRecorder captures engine subprocess calls and simulates their
// execution through the helper-process pattern, so no real engine is needed.
type commandRecorder struct {
	invocations []invocation
	exitCode    int
	stdout      string
	stderr      string
}

// execCommand returns an ExecCommandFunc that records each call and swaps in
// the test binary running TestHelperProcess.
func (r *commandRecorder) execCommand(t *testing.T) ExecCommandFunc {
	t.Helper()
	return func(_ context.Context, name string, arg ...string) *exec.Cmd {
		r.invocations = append(r.invocations, invocation{name: name, args: arg})

		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, arg...)
		cmd := exec.Command(os.Args[0], cs...)
		cmd.Env = []string{
			"GO_WANT_HELPER_PROCESS=1",
			fmt.Sprintf("GO_HELPER_EXIT_CODE=%d", r.exitCode),
			"GO_HELPER_STDOUT=" + r.stdout,
			"GO_HELPER_STDERR=" + r.stderr,
		}
		return cmd
	}
}

// last returns the most recent invocation.
func (r *commandRecorder) last(t *testing.T) invocation {
	t.Helper()
	if len(r.invocations) == 0 {
		t.Fatal("no commands were invoked")
	}
	return r.invocations[len(r.invocations)-1]
}

// TestHelperProcess stands in for the engine binary. It is only active when
// launched by commandRecorder, never as part of the normal test run.
func TestHelperProcess(_ *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	if out := os.Getenv("GO_HELPER_STDOUT"); out != "" {
		fmt.Fprint(os.Stdout, out)
	}
	if errOut := os.Getenv("GO_HELPER_STDERR"); errOut != "" {
		fmt.Fprint(os.Stderr, errOut)
	}

	code := 0
	if v := os.Getenv("GO_HELPER_EXIT_CODE"); v != "" {
		fmt.Sscanf(v, "%d", &code)
	}
	os.Exit(code)
}
