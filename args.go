// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import "strconv"

// menuChromeRows is the vertical space the dialog frame, message and
// buttons take away from a menu's list region.
const menuChromeRows = 10

// Args returns the whiptail argument vector the box will be shown with,
// excluding the engine binary itself.
func (b *Box) Args() ([]string, error) {
	return buildArgs(b)
}

// buildArgs maps a Box to the whiptail argument vector, excluding the
// binary itself. It is pure: the same box always yields the same vector.
// General options come first in a fixed order, with button label
// overrides ahead of --defaultno to match the engine's parsing order,
// then the box flag, the "--" separator, the positional text and
// geometry, and for menus the list height and the tag/description pairs
// in declaration order.
func buildArgs(b *Box) ([]string, error) {
	if err := validate(b); err != nil {
		return nil, err
	}

	var args []string
	if b.clearOnExit {
		args = append(args, "--clear")
	}
	if b.fullButtons {
		args = append(args, "--fullbuttons")
	}
	if b.noCancel {
		args = append(args, "--nocancel")
	}
	if b.yesButton != "" {
		args = append(args, "--yes-button", b.yesButton)
	}
	if b.noButton != "" {
		args = append(args, "--no-button", b.noButton)
	}
	if b.okButton != "" {
		args = append(args, "--ok-button", b.okButton)
	}
	if b.cancelButton != "" {
		args = append(args, "--cancel-button", b.cancelButton)
	}
	if b.defaultNo {
		args = append(args, "--defaultno")
	}
	if b.defaultItem != "" {
		args = append(args, "--default-item", b.defaultItem)
	}
	if b.noTags {
		args = append(args, "--notags")
	}
	if b.scrollText {
		args = append(args, "--scrolltext")
	}
	if b.topLeft {
		args = append(args, "--topleft")
	}
	if b.title != "" {
		args = append(args, "--title", b.title)
	}
	if b.backtitle != "" {
		args = append(args, "--backtitle", b.backtitle)
	}

	text := b.message
	if b.kind == KindText {
		text = b.textFile
	}
	args = append(args, b.kind.flag(), "--", text,
		strconv.Itoa(b.height), strconv.Itoa(b.width))

	if b.kind == KindMenu {
		args = append(args, strconv.Itoa(b.menuListHeight()))
		for _, it := range b.items {
			args = append(args, it.Key, b.itemText(it))
		}
	}
	return args, nil
}

func (b *Box) menuListHeight() int {
	if b.listHeight > 0 {
		return b.listHeight
	}
	rows := b.height - menuChromeRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (b *Box) itemText(it MenuItem) string {
	if b.hideDesc {
		return ""
	}
	return b.itemPrefix + it.Description
}

func validate(b *Box) error {
	invalid := func(reason string) error {
		return &InvalidDescriptorError{Kind: b.kind, Reason: reason}
	}
	if b.height <= 0 || b.width <= 0 {
		return invalid("height and width must be positive")
	}
	if b.listHeight < 0 {
		return invalid("list height must not be negative")
	}
	switch b.kind {
	case KindText:
		if b.textFile == "" {
			return invalid("text file path is required")
		}
	default:
		if b.message == "" {
			return invalid("message is required")
		}
	}
	if b.kind == KindYesNo {
		if b.okButton != "" || b.cancelButton != "" {
			return invalid("ok/cancel button labels do not apply to yes/no boxes")
		}
		if b.noCancel {
			return invalid("nocancel does not apply to yes/no boxes")
		}
	} else {
		if b.defaultNo {
			return invalid("defaultno applies to yes/no boxes only")
		}
		if b.yesButton != "" || b.noButton != "" {
			return invalid("yes/no button labels apply to yes/no boxes only")
		}
	}
	if b.kind != KindMenu {
		if b.defaultItem != "" || b.noTags || b.listHeight > 0 || b.itemPrefix != "" || b.hideDesc {
			return invalid("menu options apply to menu boxes only")
		}
		return nil
	}
	if len(b.items) == 0 {
		return invalid("menu requires at least one item")
	}
	seen := make(map[string]bool, len(b.items))
	for _, it := range b.items {
		if it.Key == "" {
			return invalid("menu item key must not be empty")
		}
		if seen[it.Key] {
			return invalid("duplicate menu item key " + strconv.Quote(it.Key))
		}
		seen[it.Key] = true
	}
	return nil
}
