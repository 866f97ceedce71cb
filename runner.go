// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
)

// runEngineExec starts the engine with stdin and stdout attached to the
// caller's terminal so it can draw and read keys, and captures stderr,
// the channel whiptail writes its answer to, separately. It blocks until
// the engine exits. A non-zero exit is a status, not an error; the only
// errors are spawn failures.
func runEngineExec(argv []string, extraEnv []string, stdin io.Reader, stdout io.Writer) (int, string, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	var captured bytes.Buffer
	cmd.Stderr = &captured
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}
	if err := cmd.Start(); err != nil {
		return 0, "", &SpawnError{Engine: argv[0], Err: err}
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), captured.String(), nil
		}
		return 0, captured.String(), &SpawnError{Engine: argv[0], Err: err}
	}
	return 0, captured.String(), nil
}
