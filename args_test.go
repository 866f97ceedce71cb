// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import (
	"errors"
	"slices"
	"testing"
)

func indexOf(args []string, want string) int {
	for i, arg := range args {
		if arg == want {
			return i
		}
	}
	return -1
}

func hasPair(args []string, key, value string) bool {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == key && args[i+1] == value {
			return true
		}
	}
	return false
}

func threeItemMenu() *Box {
	return Menu("pick one", 20, 40,
		MenuItem{Key: "item1", Description: "description1"},
		MenuItem{Key: "item2", Description: "description2"},
		MenuItem{Key: "item3", Description: "description3"},
	)
}

func TestBuildArgsMessage(t *testing.T) {
	box := Message("message box content", 10, 40)
	args, err := buildArgs(box)
	if err != nil {
		t.Fatalf("buildArgs: %v", err)
	}
	want := []string{"--msgbox", "--", "message box content", "10", "40"}
	if !slices.Equal(args, want) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildArgsDeterministic(t *testing.T) {
	box := threeItemMenu().Title("menu").DefaultItem("item2").ClearOnExit()
	first, err := buildArgs(box)
	if err != nil {
		t.Fatalf("buildArgs: %v", err)
	}
	second, err := buildArgs(box)
	if err != nil {
		t.Fatalf("buildArgs again: %v", err)
	}
	if !slices.Equal(first, second) {
		t.Fatalf("args differ between builds: %v vs %v", first, second)
	}
}

func TestBuildArgsMenuPreservesDeclarationOrder(t *testing.T) {
	args, err := buildArgs(threeItemMenu())
	if err != nil {
		t.Fatalf("buildArgs: %v", err)
	}
	i1 := indexOf(args, "item1")
	i2 := indexOf(args, "item2")
	i3 := indexOf(args, "item3")
	if i1 < 0 || i2 < 0 || i3 < 0 {
		t.Fatalf("expected all menu keys in args: %v", args)
	}
	if !(i1 < i2 && i2 < i3) {
		t.Fatalf("menu keys out of declaration order: %v", args)
	}
	for _, pair := range [][2]string{
		{"item1", "description1"},
		{"item2", "description2"},
		{"item3", "description3"},
	} {
		if !hasPair(args, pair[0], pair[1]) {
			t.Fatalf("expected %s followed by %s in args: %v", pair[0], pair[1], args)
		}
	}
}

func TestBuildArgsMenuGeometryAndListHeight(t *testing.T) {
	args, err := buildArgs(threeItemMenu())
	if err != nil {
		t.Fatalf("buildArgs: %v", err)
	}
	want := []string{"--menu", "--", "pick one", "20", "40", "10",
		"item1", "description1", "item2", "description2", "item3", "description3"}
	if !slices.Equal(args, want) {
		t.Fatalf("unexpected args: %v", args)
	}

	args, err = buildArgs(threeItemMenu().ListHeight(5))
	if err != nil {
		t.Fatalf("buildArgs with list height: %v", err)
	}
	if !hasPair(args, "40", "5") {
		t.Fatalf("expected list height 5 after width: %v", args)
	}
}

func TestBuildArgsYesNoLabelsBeforeDefaultNo(t *testing.T) {
	box := YesNo("choose yes or no", 10, 40).
		YesButton("是").
		NoButton("否").
		DefaultNo()
	args, err := buildArgs(box)
	if err != nil {
		t.Fatalf("buildArgs: %v", err)
	}
	if !hasPair(args, "--yes-button", "是") || !hasPair(args, "--no-button", "否") {
		t.Fatalf("expected custom button labels in args: %v", args)
	}
	defaultNo := indexOf(args, "--defaultno")
	if defaultNo < 0 {
		t.Fatalf("expected --defaultno in args: %v", args)
	}
	if indexOf(args, "--yes-button") > defaultNo || indexOf(args, "--no-button") > defaultNo {
		t.Fatalf("expected label flags before --defaultno: %v", args)
	}
}

func TestBuildArgsTextBox(t *testing.T) {
	args, err := buildArgs(TextFile("/etc/motd", 10, 40).ScrollText())
	if err != nil {
		t.Fatalf("buildArgs: %v", err)
	}
	want := []string{"--scrolltext", "--textbox", "--", "/etc/motd", "10", "40"}
	if !slices.Equal(args, want) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildArgsGeneralOptions(t *testing.T) {
	box := Message("hi", 10, 40).
		Title("greeting").
		Backtitle("demo").
		ClearOnExit().
		OkButton("fine").
		TopLeft()
	args, err := buildArgs(box)
	if err != nil {
		t.Fatalf("buildArgs: %v", err)
	}
	if args[0] != "--clear" {
		t.Fatalf("expected --clear first: %v", args)
	}
	if !hasPair(args, "--ok-button", "fine") {
		t.Fatalf("expected ok button override: %v", args)
	}
	if !hasPair(args, "--title", "greeting") || !hasPair(args, "--backtitle", "demo") {
		t.Fatalf("expected title and backtitle: %v", args)
	}
	if indexOf(args, "--topleft") > indexOf(args, "--title") {
		t.Fatalf("expected --topleft before --title: %v", args)
	}
}

func TestBuildArgsMenuItemPrefixAndHiddenDescriptions(t *testing.T) {
	args, err := buildArgs(threeItemMenu().ItemPrefix("- "))
	if err != nil {
		t.Fatalf("buildArgs with prefix: %v", err)
	}
	if !hasPair(args, "item1", "- description1") {
		t.Fatalf("expected prefixed description: %v", args)
	}

	args, err = buildArgs(threeItemMenu().HideDescriptions())
	if err != nil {
		t.Fatalf("buildArgs with hidden descriptions: %v", err)
	}
	if !hasPair(args, "item2", "") {
		t.Fatalf("expected empty descriptions: %v", args)
	}
}

func TestBuildArgsInvalidDescriptors(t *testing.T) {
	cases := []struct {
		name string
		box  *Box
	}{
		{"zero height", Message("hi", 0, 40)},
		{"negative width", Message("hi", 10, -1)},
		{"empty message", Message("", 10, 40)},
		{"textbox without path", TextFile("", 10, 40)},
		{"menu without items", Menu("pick", 20, 40)},
		{"empty menu key", Menu("pick", 20, 40, MenuItem{Key: ""})},
		{"duplicate menu keys", Menu("pick", 20, 40,
			MenuItem{Key: "a", Description: "one"},
			MenuItem{Key: "a", Description: "two"})},
		{"defaultno on msgbox", Message("hi", 10, 40).DefaultNo()},
		{"yes label on msgbox", Message("hi", 10, 40).YesButton("yep")},
		{"ok label on yesno", YesNo("hi", 10, 40).OkButton("fine")},
		{"cancel label on yesno", YesNo("hi", 10, 40).CancelButton("never")},
		{"nocancel on yesno", YesNo("hi", 10, 40).NoCancel()},
		{"default item on msgbox", Message("hi", 10, 40).DefaultItem("a")},
		{"list height on yesno", YesNo("hi", 10, 40).ListHeight(5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildArgs(tc.box)
			var invalid *InvalidDescriptorError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidDescriptorError, got %v", err)
			}
		})
	}
}
