// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

// Whiptail exit statuses. Anything else, including 255 for ESC or an
// engine error, resolves to a Failed outcome.
const (
	statusOK     = 0
	statusCancel = 1
)

// Outcome tags the resolved result of one dialog interaction.
type Outcome int

const (
	// OutcomeOK means the affirmative button was pushed. For a yes/no
	// box both buttons resolve to OK; Result.Confirmed tells them apart.
	OutcomeOK Outcome = iota
	// OutcomeCancel means the cancel or ESC-equivalent negative button
	// was pushed.
	OutcomeCancel
	// OutcomeSelected means a menu entry was chosen; Result.Key holds it.
	OutcomeSelected
	// OutcomeFailed means the engine could not be started, exited with
	// an unexpected status, or answered outside the contract.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeCancel:
		return "cancel"
	case OutcomeSelected:
		return "selected"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Result is the resolved outcome of one Show call.
type Result struct {
	Outcome Outcome
	// Confirmed reports which yes/no button was pushed on an OK outcome.
	Confirmed bool
	// Key is the selected menu entry on a Selected outcome.
	Key string
	// Status is the engine's raw exit status.
	Status int
	// Captured is the text the engine wrote on its answer channel.
	Captured string
	// Err explains a Failed outcome.
	Err error
}

// resolve classifies an engine exit per dialog kind. The status table is
// applied literally: an info box has no cancel button, yet status 1
// still resolves to Cancel under the shared message-box rule.
func resolve(b *Box, status int, captured string) Result {
	res := Result{Status: status, Captured: captured}
	switch b.kind {
	case KindMessage, KindInfo:
		switch status {
		case statusOK:
			res.Outcome = OutcomeOK
		case statusCancel:
			res.Outcome = OutcomeCancel
		default:
			res.fail(b, status, captured)
		}
	case KindYesNo:
		switch status {
		case statusOK:
			res.Outcome = OutcomeOK
			res.Confirmed = true
		case statusCancel:
			res.Outcome = OutcomeOK
		default:
			res.fail(b, status, captured)
		}
	case KindText:
		// Status 1 covers the engine failing to open or view the file.
		if status == statusOK {
			res.Outcome = OutcomeOK
		} else {
			res.fail(b, status, captured)
		}
	case KindMenu:
		switch status {
		case statusOK:
			if _, ok := b.item(captured); !ok {
				// An answer matching no declared key is an engine
				// contract violation, not a user action; it must stay
				// distinguishable from Cancel.
				res.fail(b, status, captured)
				return res
			}
			res.Outcome = OutcomeSelected
			res.Key = captured
		case statusCancel:
			res.Outcome = OutcomeCancel
		default:
			res.fail(b, status, captured)
		}
	}
	return res
}

func (r *Result) fail(b *Box, status int, captured string) {
	r.Outcome = OutcomeFailed
	r.Err = &ProtocolError{Kind: b.kind, Status: status, Captured: captured}
}
