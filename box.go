// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

// Kind identifies which whiptail box a descriptor renders.
type Kind int

const (
	KindMessage Kind = iota
	KindYesNo
	KindInfo
	KindText
	KindMenu
)

// flag returns the whiptail box-selection flag for the kind.
func (k Kind) flag() string {
	switch k {
	case KindMessage:
		return "--msgbox"
	case KindYesNo:
		return "--yesno"
	case KindInfo:
		return "--infobox"
	case KindText:
		return "--textbox"
	case KindMenu:
		return "--menu"
	}
	return ""
}

func (k Kind) String() string {
	switch k {
	case KindMessage:
		return "msgbox"
	case KindYesNo:
		return "yesno"
	case KindInfo:
		return "infobox"
	case KindText:
		return "textbox"
	case KindMenu:
		return "menu"
	}
	return "unknown"
}

// MenuItem is one selectable entry of a menu box. The item owns its
// selection callback; Data is an opaque payload handed back to OnSelected
// when the user picks this entry.
type MenuItem struct {
	Key         string
	Description string
	Data        any
	OnSelected  func(data any)
}

// Box describes one dialog. Construct it with Message, YesNo, Info,
// TextFile or Menu, refine it with the fluent setters, then call Show.
// A Box may be shown again; every Show runs the engine fresh.
type Box struct {
	kind     Kind
	message  string
	textFile string
	height   int
	width    int

	title        string
	backtitle    string
	clearOnExit  bool
	fullButtons  bool
	noCancel     bool
	yesButton    string
	noButton     string
	okButton     string
	cancelButton string
	defaultNo    bool
	defaultItem  string
	noTags       bool
	scrollText   bool
	topLeft      bool
	termEnv      string

	listHeight int
	itemPrefix string
	hideDesc   bool
	items      []MenuItem

	onOK     func()
	onYes    func()
	onNo     func()
	onCancel func()
	onFailed func(error)
}

// Message describes a message box: text plus a single OK button.
func Message(message string, height, width int) *Box {
	return &Box{kind: KindMessage, message: message, height: height, width: width}
}

// YesNo describes a yes/no box. The engine reports the No button as exit
// status 1, which resolves to an OK outcome with Confirmed unset, not to
// Cancel.
func YesNo(message string, height, width int) *Box {
	return &Box{kind: KindYesNo, message: message, height: height, width: width}
}

// Info describes an info box. Whiptail paints it and exits without
// waiting for input; status 1 still resolves to Cancel per the shared
// message-box rule even though an info box has no cancel button.
func Info(message string, height, width int) *Box {
	return &Box{kind: KindInfo, message: message, height: height, width: width}
}

// TextFile describes a text box viewing the file at path. The path is
// handed to the engine unchecked; a missing or unreadable file surfaces
// as a Failed outcome via the engine's exit status.
func TextFile(path string, height, width int) *Box {
	return &Box{kind: KindText, textFile: path, height: height, width: width}
}

// Menu describes a single-select menu. Item keys must be unique; display
// order follows declaration order.
func Menu(message string, height, width int, items ...MenuItem) *Box {
	return &Box{kind: KindMenu, message: message, height: height, width: width, items: items}
}

// Title sets the box title (--title).
func (b *Box) Title(title string) *Box {
	b.title = title
	return b
}

// Backtitle sets the backdrop title (--backtitle).
func (b *Box) Backtitle(backtitle string) *Box {
	b.backtitle = backtitle
	return b
}

// ClearOnExit clears the screen when the engine exits (--clear).
func (b *Box) ClearOnExit() *Box {
	b.clearOnExit = true
	return b
}

// FullButtons uses whiptail's full-width buttons (--fullbuttons).
func (b *Box) FullButtons() *Box {
	b.fullButtons = true
	return b
}

// NoCancel hides the cancel button (--nocancel).
func (b *Box) NoCancel() *Box {
	b.noCancel = true
	return b
}

// YesButton overrides the yes button label.
func (b *Box) YesButton(label string) *Box {
	b.yesButton = label
	return b
}

// NoButton overrides the no button label.
func (b *Box) NoButton(label string) *Box {
	b.noButton = label
	return b
}

// OkButton overrides the ok button label.
func (b *Box) OkButton(label string) *Box {
	b.okButton = label
	return b
}

// CancelButton overrides the cancel button label.
func (b *Box) CancelButton(label string) *Box {
	b.cancelButton = label
	return b
}

// DefaultNo preselects the no button of a yes/no box. The flag is emitted
// after any button label overrides, matching the engine's parsing order.
func (b *Box) DefaultNo() *Box {
	b.defaultNo = true
	return b
}

// DefaultItem preselects the menu entry with the given key.
func (b *Box) DefaultItem(key string) *Box {
	b.defaultItem = key
	return b
}

// NoTags hides menu entry keys, showing descriptions only (--notags).
func (b *Box) NoTags() *Box {
	b.noTags = true
	return b
}

// ScrollText forces a vertical scrollbar on the text region (--scrolltext).
func (b *Box) ScrollText() *Box {
	b.scrollText = true
	return b
}

// TopLeft places the box in the top-left corner (--topleft).
func (b *Box) TopLeft() *Box {
	b.topLeft = true
	return b
}

// TermEnv overrides the TERM variable for the engine process. Some
// terminals need this for whiptail's newt backend to draw correctly.
func (b *Box) TermEnv(term string) *Box {
	b.termEnv = term
	return b
}

// ListHeight overrides the visible menu list height. When unset the list
// gets the box height minus the dialog chrome.
func (b *Box) ListHeight(rows int) *Box {
	b.listHeight = rows
	return b
}

// ItemPrefix prepends a glyph to every menu entry description.
func (b *Box) ItemPrefix(prefix string) *Box {
	b.itemPrefix = prefix
	return b
}

// HideDescriptions renders menu entries with empty descriptions.
func (b *Box) HideDescriptions() *Box {
	b.hideDesc = true
	return b
}

// OnOK registers the handler fired on an OK outcome. For a yes/no box use
// OnYes and OnNo instead.
func (b *Box) OnOK(fn func()) *Box {
	b.onOK = fn
	return b
}

// OnYes registers the handler fired when the yes button is pushed.
func (b *Box) OnYes(fn func()) *Box {
	b.onYes = fn
	return b
}

// OnNo registers the handler fired when the no button is pushed.
func (b *Box) OnNo(fn func()) *Box {
	b.onNo = fn
	return b
}

// OnCancel registers the handler fired on a Cancel outcome.
func (b *Box) OnCancel(fn func()) *Box {
	b.onCancel = fn
	return b
}

// OnFailed registers the handler fired on a Failed outcome. It receives
// the spawn or protocol error that caused the failure.
func (b *Box) OnFailed(fn func(error)) *Box {
	b.onFailed = fn
	return b
}

// item returns the declared menu item with the given key.
func (b *Box) item(key string) (MenuItem, bool) {
	for _, it := range b.items {
		if it.Key == key {
			return it, true
		}
	}
	return MenuItem{}, false
}

// Show displays the box on the default session. See Session.Show.
func (b *Box) Show() (Result, error) {
	return defaultSession.Show(b)
}
