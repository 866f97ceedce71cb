// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package whiptui

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creack/pty"
)

func writeStubEngine(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fakewhiptail")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write stub engine: %v", err)
	}
	return path
}

// The engine draws on the inherited terminal and answers on stderr; the
// runner must keep the two channels apart.
func TestRunEngineExecSeparatesAnswerFromTerminal(t *testing.T) {
	stub := writeStubEngine(t, "printf 'drawing ui'\nprintf 'item2' >&2\nexit 0\n")

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Fatalf("open pty: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	drawn := make(chan []byte, 1)
	go func() {
		buf := make([]byte, len("drawing ui"))
		if _, err := io.ReadFull(ptmx, buf); err != nil {
			drawn <- nil
			return
		}
		drawn <- buf
	}()

	status, captured, err := runEngineExec(
		[]string{stub, "--menu", "--", "pick one", "20", "40", "10", "item2", "description2"},
		nil, tty, tty)
	if err != nil {
		t.Fatalf("runEngineExec: %v", err)
	}
	if status != 0 {
		t.Fatalf("expected status 0, got %d", status)
	}
	if captured != "item2" {
		t.Fatalf("expected captured answer item2, got %q", captured)
	}
	if ui := <-drawn; string(ui) != "drawing ui" {
		t.Fatalf("expected ui on the terminal, got %q", ui)
	}
}

func TestRunEngineExecReportsExitStatus(t *testing.T) {
	stub := writeStubEngine(t, "exit 1\n")
	status, captured, err := runEngineExec([]string{stub}, nil, strings.NewReader(""), io.Discard)
	if err != nil {
		t.Fatalf("expected non-zero exit to be a status, not an error: %v", err)
	}
	if status != 1 {
		t.Fatalf("expected status 1, got %d", status)
	}
	if captured != "" {
		t.Fatalf("expected empty capture, got %q", captured)
	}
}

func TestRunEngineExecTermEnvOverride(t *testing.T) {
	stub := writeStubEngine(t, "printf '%s' \"$TERM\" >&2\nexit 0\n")
	_, captured, err := runEngineExec([]string{stub}, []string{"TERM=vt100"}, strings.NewReader(""), io.Discard)
	if err != nil {
		t.Fatalf("runEngineExec: %v", err)
	}
	if captured != "vt100" {
		t.Fatalf("expected TERM override visible to the engine, got %q", captured)
	}
}

func TestRunEngineExecMissingBinary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-engine")
	_, _, err := runEngineExec([]string{missing}, nil, strings.NewReader(""), io.Discard)
	var spawnErr *SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("expected SpawnError, got %v", err)
	}
	if spawnErr.Engine != missing {
		t.Fatalf("expected engine path in error, got %q", spawnErr.Engine)
	}
}
