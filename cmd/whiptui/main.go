// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command whiptui is a demo driver for the whiptui library: one
// subcommand per dialog kind, plus a tour of all of them.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shayne/whiptui"
	"github.com/shayne/whiptui/internal/cli"
	"github.com/shayne/whiptui/internal/config"
	"github.com/shayne/yargs"
)

var version = "dev"

func main() {
	if err := runCLI(); err != nil {
		reportCLIError(err)
	}
}

type usageError struct {
	message string
}

func (e usageError) Error() string {
	return e.message
}

func newUsageError(message string) error {
	return usageError{message: message}
}

func reportCLIError(err error) {
	styles := cli.ForOutput(os.Stderr)
	var usageErr usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(os.Stderr, usageErr.message)
		return
	}
	fmt.Fprintln(os.Stderr, styles.Error.Render(err.Error()))
}

func runCLI() error {
	args := os.Args[1:]
	handlers := map[string]yargs.SubcommandHandler{
		"msgbox":  handleMsgboxCommand,
		"yesno":   handleYesNoCommand,
		"infobox": handleInfoboxCommand,
		"textbox": handleTextboxCommand,
		"menu":    handleMenuCommand,
		"tour":    handleTourCommand,
		"config":  handleConfigCommand,
		"version": handleVersionCommand,
	}
	if err := yargs.RunSubcommands(context.Background(), args, helpConfig, struct{}{}, handlers); err != nil {
		if errors.Is(err, yargs.ErrShown) {
			return nil
		}
		return err
	}
	return nil
}

type boxFlags struct {
	Height    string `flag:"height" help:"box height in rows (default: fit terminal)"`
	Width     string `flag:"width" help:"box width in columns (default: fit terminal)"`
	Title     string `flag:"title" help:"window title"`
	Backtitle string `flag:"backtitle" help:"backdrop title"`
	Clear     bool   `flag:"clear" help:"clear the screen on exit"`
	OkLabel   string `flag:"ok-label" help:"override the ok button label"`
}

type yesnoFlags struct {
	Height    string `flag:"height" help:"box height in rows (default: fit terminal)"`
	Width     string `flag:"width" help:"box width in columns (default: fit terminal)"`
	Title     string `flag:"title" help:"window title"`
	Backtitle string `flag:"backtitle" help:"backdrop title"`
	Clear     bool   `flag:"clear" help:"clear the screen on exit"`
	YesLabel  string `flag:"yes-label" help:"override the yes button label"`
	NoLabel   string `flag:"no-label" help:"override the no button label"`
	DefaultNo bool   `flag:"default-no" help:"preselect the no button"`
}

type textboxFlags struct {
	Height    string `flag:"height" help:"box height in rows (default: fit terminal)"`
	Width     string `flag:"width" help:"box width in columns (default: fit terminal)"`
	Title     string `flag:"title" help:"window title"`
	Backtitle string `flag:"backtitle" help:"backdrop title"`
	Clear     bool   `flag:"clear" help:"clear the screen on exit"`
	Scroll    bool   `flag:"scroll" help:"force a vertical scrollbar"`
}

type menuFlags struct {
	Height    string   `flag:"height" help:"box height in rows (default: fit terminal)"`
	Width     string   `flag:"width" help:"box width in columns (default: fit terminal)"`
	Title     string   `flag:"title" help:"window title"`
	Backtitle string   `flag:"backtitle" help:"backdrop title"`
	Clear     bool     `flag:"clear" help:"clear the screen on exit"`
	Items     []string `flag:"item" short:"i" help:"menu entry as key=description (repeatable)"`
	Default   string   `flag:"default" help:"preselected entry key"`
	NoTags    bool     `flag:"notags" help:"hide entry keys"`
	Prefix    string   `flag:"prefix" help:"glyph prepended to descriptions"`
}

type configFlags struct {
	Engine string `flag:"engine" help:"path to the whiptail binary"`
	Term   string `flag:"term" help:"TERM value for the engine process"`
	Clear  bool   `flag:"clear" help:"clear the screen after every dialog"`
	Height string `flag:"height" help:"default box height"`
	Width  string `flag:"width" help:"default box width"`
}

type textArgs struct {
	Text string `pos:"0" help:"message text"`
}

type pathArgs struct {
	Path string `pos:"0" help:"file to view"`
}

var helpConfig = yargs.HelpConfig{
	Command: yargs.CommandInfo{
		Name:        "whiptui",
		Description: "Terminal dialog boxes via the whiptail engine",
		Examples: []string{
			"whiptui msgbox 'hello there'",
			"whiptui yesno 'continue?' --default-no",
			"whiptui menu 'pick one' -i red=Red -i blue=Blue",
			"whiptui textbox /etc/os-release --scroll",
			"whiptui tour",
			"whiptui config --engine /usr/bin/whiptail",
		},
	},
	SubCommands: map[string]yargs.SubCommandInfo{
		"msgbox": {
			Name:        "msgbox",
			Description: "Show a message box with a single ok button",
			Usage:       "<text>",
		},
		"yesno": {
			Name:        "yesno",
			Description: "Show a yes/no box and report the choice",
			Usage:       "<text>",
		},
		"infobox": {
			Name:        "infobox",
			Description: "Paint an info box and return immediately",
			Usage:       "<text>",
		},
		"textbox": {
			Name:        "textbox",
			Description: "View a text file",
			Usage:       "<path>",
		},
		"menu": {
			Name:        "menu",
			Description: "Show a single-select menu",
			Usage:       "<text> -i key=description ...",
		},
		"tour": {
			Name:        "tour",
			Description: "Walk through every dialog kind",
		},
		"config": {
			Name:        "config",
			Description: "Show or update the local configuration",
		},
		"version": {
			Name:        "version",
			Description: "Show CLI version",
		},
	},
}

func handleMsgboxCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, boxFlags, textArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg, _, err := config.Load()
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	height, width, err := geometry(cfg, flags.Height, flags.Width)
	if err != nil {
		return err
	}
	styles := cli.ForOutput(os.Stdout)
	box := whiptui.Message(result.Args.Text, height, width).
		OnOK(func() { fmt.Println(styles.Value.Render("ok pushed")) }).
		OnFailed(func(err error) { reportCLIError(err) })
	if flags.OkLabel != "" {
		box.OkButton(flags.OkLabel)
	}
	applyCommon(box, cfg, flags.Title, flags.Backtitle, flags.Clear)
	_, err = newSession(cfg).Show(box)
	return err
}

func handleYesNoCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, yesnoFlags, textArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg, _, err := config.Load()
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	height, width, err := geometry(cfg, flags.Height, flags.Width)
	if err != nil {
		return err
	}
	styles := cli.ForOutput(os.Stdout)
	box := whiptui.YesNo(result.Args.Text, height, width).
		OnYes(func() { fmt.Println(styles.Value.Render("yes")) }).
		OnNo(func() { fmt.Println(styles.Value.Render("no")) }).
		OnFailed(func(err error) { reportCLIError(err) })
	if flags.YesLabel != "" {
		box.YesButton(flags.YesLabel)
	}
	if flags.NoLabel != "" {
		box.NoButton(flags.NoLabel)
	}
	if flags.DefaultNo {
		box.DefaultNo()
	}
	applyCommon(box, cfg, flags.Title, flags.Backtitle, flags.Clear)
	_, err = newSession(cfg).Show(box)
	return err
}

func handleInfoboxCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, boxFlags, textArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg, _, err := config.Load()
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	height, width, err := geometry(cfg, flags.Height, flags.Width)
	if err != nil {
		return err
	}
	box := whiptui.Info(result.Args.Text, height, width).
		OnFailed(func(err error) { reportCLIError(err) })
	applyCommon(box, cfg, flags.Title, flags.Backtitle, flags.Clear)
	_, err = newSession(cfg).Show(box)
	return err
}

func handleTextboxCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, textboxFlags, pathArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg, _, err := config.Load()
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	height, width, err := geometry(cfg, flags.Height, flags.Width)
	if err != nil {
		return err
	}
	styles := cli.ForOutput(os.Stderr)
	box := whiptui.TextFile(result.Args.Path, height, width).
		OnFailed(func(err error) {
			fmt.Fprintln(os.Stderr, styles.Error.Render("open file failed: "+result.Args.Path))
		})
	if flags.Scroll {
		box.ScrollText()
	}
	applyCommon(box, cfg, flags.Title, flags.Backtitle, flags.Clear)
	_, err = newSession(cfg).Show(box)
	return err
}

func handleMenuCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, menuFlags, textArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg, _, err := config.Load()
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	height, width, err := geometry(cfg, flags.Height, flags.Width)
	if err != nil {
		return err
	}
	styles := cli.ForOutput(os.Stdout)
	items, err := parseMenuItems(flags.Items, func(key string, data any) {
		fmt.Println(styles.Label.Render("selected:") + " " + key)
		if desc, ok := data.(string); ok && desc != "" {
			fmt.Println(styles.Muted.Render(desc))
		}
	})
	if err != nil {
		return err
	}
	box := whiptui.Menu(result.Args.Text, height, width, items...).
		OnCancel(func() { fmt.Println(styles.Muted.Render("menu cancelled")) }).
		OnFailed(func(err error) { reportCLIError(err) })
	if flags.Default != "" {
		box.DefaultItem(flags.Default)
	}
	if flags.NoTags {
		box.NoTags()
	}
	if flags.Prefix != "" {
		box.ItemPrefix(flags.Prefix)
	}
	applyCommon(box, cfg, flags.Title, flags.Backtitle, flags.Clear)
	_, err = newSession(cfg).Show(box)
	return err
}

func handleTourCommand(_ context.Context, args []string) error {
	_, err := yargs.ParseAndHandleHelp[struct{}, struct{}, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg, _, err := config.Load()
	if err != nil {
		return err
	}
	return runTour(cfg)
}

func handleConfigCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, configFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg, path, err := config.Load()
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	if flags == (configFlags{}) {
		printConfig(cfg, path)
		return nil
	}
	if flags.Engine != "" {
		cfg.Engine = flags.Engine
	}
	if flags.Term != "" {
		cfg.Term = flags.Term
	}
	if flags.Clear {
		cfg.Clear = true
	}
	if flags.Height != "" {
		cfg.Height, err = parseDimension("height", flags.Height)
		if err != nil {
			return err
		}
	}
	if flags.Width != "" {
		cfg.Width, err = parseDimension("width", flags.Width)
		if err != nil {
			return err
		}
	}
	return config.Save(path, cfg)
}

func handleVersionCommand(_ context.Context, args []string) error {
	_, err := yargs.ParseAndHandleHelp[struct{}, struct{}, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println("whiptui " + version)
	return nil
}

func printConfig(cfg config.Config, path string) {
	styles := cli.ForOutput(os.Stdout)
	fmt.Println(styles.Header.Render("whiptui configuration"))
	fmt.Println(styles.Muted.Render(path))
	engine := cfg.Engine
	if engine == "" {
		engine = whiptui.DefaultEngine + " (default)"
	}
	fmt.Println(styles.Label.Render("engine:") + " " + engine)
	if cfg.Term != "" {
		fmt.Println(styles.Label.Render("term:") + " " + cfg.Term)
	}
	if cfg.Height > 0 || cfg.Width > 0 {
		fmt.Println(styles.Label.Render("geometry:") + " " +
			strconv.Itoa(cfg.Height) + "x" + strconv.Itoa(cfg.Width))
	}
	fmt.Println(styles.Label.Render("clear:") + " " + strconv.FormatBool(cfg.Clear))
}

func newSession(cfg config.Config) *whiptui.Session {
	return &whiptui.Session{Engine: cfg.Engine}
}

// applyCommon layers config defaults and shared flags onto a box.
func applyCommon(box *whiptui.Box, cfg config.Config, title, backtitle string, clear bool) {
	if title != "" {
		box.Title(title)
	}
	if backtitle != "" {
		box.Backtitle(backtitle)
	}
	if clear || cfg.Clear {
		box.ClearOnExit()
	}
	if cfg.Term != "" {
		box.TermEnv(cfg.Term)
	}
}

// geometry resolves box dimensions: explicit flags win, then config
// defaults, then the terminal size.
func geometry(cfg config.Config, heightFlag, widthFlag string) (int, int, error) {
	height, width := whiptui.TerminalSize()
	if cfg.Height > 0 {
		height = cfg.Height
	}
	if cfg.Width > 0 {
		width = cfg.Width
	}
	var err error
	if heightFlag != "" {
		if height, err = parseDimension("height", heightFlag); err != nil {
			return 0, 0, err
		}
	}
	if widthFlag != "" {
		if width, err = parseDimension("width", widthFlag); err != nil {
			return 0, 0, err
		}
	}
	return height, width, nil
}

func parseDimension(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, newUsageError("--" + name + " must be a positive integer")
	}
	return n, nil
}

// parseMenuItems turns repeated key=description flags into menu items,
// preserving flag order. The description doubles as the item payload.
func parseMenuItems(specs []string, onSelected func(key string, data any)) ([]whiptui.MenuItem, error) {
	if len(specs) == 0 {
		return nil, newUsageError("menu requires at least one --item key=description")
	}
	items := make([]whiptui.MenuItem, 0, len(specs))
	for _, spec := range specs {
		key, description, _ := strings.Cut(spec, "=")
		if key == "" {
			return nil, newUsageError("invalid --item " + strconv.Quote(spec) + ": expected key=description")
		}
		items = append(items, whiptui.MenuItem{
			Key:         key,
			Description: description,
			Data:        description,
			OnSelected:  func(data any) { onSelected(key, data) },
		})
	}
	return items, nil
}
