/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRootCmdHelp(t *testing.T) {
	for _, flag := range []string{"--help", "-h"} {
		t.Run(flag, func(t *testing.T) {
			var buf bytes.Buffer
			cmd := rootCmd()
			cmd.Writer = &buf

			err := cmd.Run(context.Background(), []string{name, flag})
			if !errors.Is(err, errHelpShown) {
				t.Fatalf("help must surface errHelpShown so the process exits non-zero, got: %v", err)
			}

			out := buf.String()
			if !strings.Contains(out, name) {
				t.Errorf("help output should name the command, got:\n%s", out)
			}
			if !strings.Contains(out, "--tag") {
				t.Errorf("help output should list the tag flag, got:\n%s", out)
			}
			if !strings.Contains(out, "--latest") || !strings.Contains(out, "--edge") {
				t.Errorf("help output should list the release tag flags, got:\n%s", out)
			}
		})
	}
}

func TestRootCmdUnknownFlag(t *testing.T) {
	var buf bytes.Buffer
	cmd := rootCmd()
	cmd.Writer = &buf

	err := cmd.Run(context.Background(), []string{name, "--bogus"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if errors.Is(err, errHelpShown) {
		t.Error("unknown flag is a parse error, not a help request")
	}
}
