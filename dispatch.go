// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

// dispatch fires the one handler registered for the resolved outcome.
// An unregistered handler is a no-op, never an error. A selected menu
// entry dispatches to the owning item's OnSelected with the item's own
// payload; the box-level handlers cover Cancel and Failed only.
func dispatch(b *Box, res Result) {
	switch res.Outcome {
	case OutcomeOK:
		if b.kind == KindYesNo {
			if res.Confirmed {
				if b.onYes != nil {
					b.onYes()
				}
			} else if b.onNo != nil {
				b.onNo()
			}
			return
		}
		if b.onOK != nil {
			b.onOK()
		}
	case OutcomeCancel:
		if b.onCancel != nil {
			b.onCancel()
		}
	case OutcomeSelected:
		if it, ok := b.item(res.Key); ok && it.OnSelected != nil {
			it.OnSelected(it.Data)
		}
	case OutcomeFailed:
		if b.onFailed != nil {
			b.onFailed(res.Err)
		}
	}
}
