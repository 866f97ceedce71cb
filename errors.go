// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import "fmt"

// InvalidDescriptorError reports a malformed Box. It is returned by Show
// before any process is spawned.
type InvalidDescriptorError struct {
	Kind   Kind
	Reason string
}

func (e *InvalidDescriptorError) Error() string {
	return fmt.Sprintf("invalid %s descriptor: %s", e.Kind, e.Reason)
}

// SpawnError reports that the engine binary could not be started. It is
// never returned from Show; it arrives as the Err of a Failed result.
type SpawnError struct {
	Engine string
	Err    error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Engine, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ProtocolError reports an engine reply that violates the whiptail
// contract, such as an unexpected exit status or a menu answer that
// matches no declared item. It arrives as the Err of a Failed result.
type ProtocolError struct {
	Kind     Kind
	Status   int
	Captured string
}

func (e *ProtocolError) Error() string {
	if e.Captured != "" {
		return fmt.Sprintf("%s engine protocol violation: status %d, captured %q", e.Kind, e.Status, e.Captured)
	}
	return fmt.Sprintf("%s engine protocol violation: status %d", e.Kind, e.Status)
}
