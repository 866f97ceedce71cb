// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shayne/whiptui"
	"github.com/shayne/whiptui/internal/cli"
	"github.com/shayne/whiptui/internal/config"
)

const tourText = `whiptui tour

This file is being viewed through the engine's text box.
Scroll with the arrow keys, leave with enter.
`

// runTour walks through every dialog kind on one session.
func runTour(cfg config.Config) error {
	styles := cli.ForOutput(os.Stdout)
	session := newSession(cfg)
	say := func(line string) { fmt.Println(styles.Value.Render(line)) }

	msgbox := whiptui.Message("message box content", 10, 40).
		Title("msgbox").
		OnOK(func() { say("ok pushed") })
	if _, err := session.Show(msgbox); err != nil {
		return err
	}

	yesno := whiptui.YesNo("choose yes or no", 10, 40).
		Title("yesno").
		YesButton("是").
		NoButton("否").
		DefaultNo().
		OnYes(func() { say("you chose yes") }).
		OnNo(func() { say("you chose no") })
	if _, err := session.Show(yesno); err != nil {
		return err
	}

	infobox := whiptui.Info("info box content", 10, 40).Title("infobox")
	if _, err := session.Show(infobox); err != nil {
		return err
	}

	path := filepath.Join(os.TempDir(), "whiptui-tour.txt")
	if err := os.WriteFile(path, []byte(tourText), 0o644); err != nil {
		return err
	}
	defer os.Remove(path)
	textbox := whiptui.TextFile(path, 15, 60).
		Title("textbox").
		ScrollText().
		OnOK(func() { say("ok pushed") }).
		OnFailed(func(error) { say("open file failed") })
	if _, err := session.Show(textbox); err != nil {
		return err
	}

	menu := whiptui.Menu("menu box message", 20, 40,
		whiptui.MenuItem{Key: "item1", Description: "description1", Data: "hello world",
			OnSelected: func(data any) { say(fmt.Sprintf("selected item1: %v", data)) }},
		whiptui.MenuItem{Key: "item2", Description: "description2", Data: "hello world",
			OnSelected: func(data any) { say(fmt.Sprintf("selected item2: %v", data)) }},
		whiptui.MenuItem{Key: "item3", Description: "description3", Data: "hello world",
			OnSelected: func(data any) { say(fmt.Sprintf("selected item3: %v", data)) }},
	).
		Title("menu").
		ItemPrefix("- ").
		OnCancel(func() { say("menu cancelled") })
	if _, err := session.Show(menu); err != nil {
		return err
	}
	return nil
}
