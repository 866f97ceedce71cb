// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package whiptui drives the whiptail dialog engine as a subordinate
// process. A Box describes one dialog declaratively; Show translates it
// into a whiptail invocation, runs the engine attached to the caller's
// terminal, and resolves the exit status and the answer whiptail writes
// on stderr into a typed Result, firing at most one registered callback.
//
// The terminal is a modal singleton: a Session serializes Show calls
// within a process, and callers sharing one terminal across processes
// must serialize themselves.
package whiptui
