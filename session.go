// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import (
	"io"
	"os"
	"sync"
)

// DefaultEngine is the binary a Session runs when Engine is unset. It is
// resolved through the process search path.
const DefaultEngine = "whiptail"

// Session owns the terminal for the duration of each Show call. Show
// calls on one Session are serialized: the engine is a modal, single
// focus process and two dialogs sharing a terminal would corrupt its
// state. The zero value runs whiptail on the process's own terminal.
type Session struct {
	mu sync.Mutex

	// Engine is the dialog binary to run, DefaultEngine when empty.
	Engine string
	// Stdin and Stdout replace the process terminal when set. They must
	// refer to a real terminal for the engine to draw on.
	Stdin  io.Reader
	Stdout io.Writer

	// run is a seam for tests.
	run func(argv []string, extraEnv []string, stdin io.Reader, stdout io.Writer) (int, string, error)
}

var defaultSession Session

// Show validates the box, runs the engine, resolves the exit into a
// Result and fires the matching callback. The returned error is non-nil
// only for an invalid descriptor, which is reported before any process
// is spawned. Spawn failures and engine protocol violations never
// propagate as errors: they resolve to a Failed result and flow through
// the box's OnFailed handler, so an engine-environment problem cannot
// crash the hosting program.
func (s *Session) Show(b *Box) (Result, error) {
	args, err := buildArgs(b)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	engine := s.Engine
	if engine == "" {
		engine = DefaultEngine
	}
	run := s.run
	if run == nil {
		run = runEngineExec
	}
	stdin := s.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := s.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	var extraEnv []string
	if b.termEnv != "" {
		extraEnv = []string{"TERM=" + b.termEnv}
	}

	argv := append([]string{engine}, args...)
	status, captured, err := run(argv, extraEnv, stdin, stdout)
	if err != nil {
		res := Result{Outcome: OutcomeFailed, Status: status, Captured: captured, Err: err}
		dispatch(b, res)
		return res, nil
	}
	res := resolve(b, status, captured)
	dispatch(b, res)
	return res, nil
}
