// Package main is an interactive tester for the shortcut engine. It maps
// terminal key events onto dispatcher events and shows which actions fire.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lumenchat/hotkeys/internal/action"
	"github.com/lumenchat/hotkeys/internal/config"
	"github.com/lumenchat/hotkeys/internal/config/codec"
	"github.com/lumenchat/hotkeys/internal/config/watcher"
	"github.com/lumenchat/hotkeys/internal/dispatcher"
	"github.com/lumenchat/hotkeys/internal/input/key"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	ConfigPath string
	Format     string
	Platform   string
	LogLevel   string
	List       bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	log := logrus.New()
	level, err := logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", opts.LogLevel)
		return 1
	}
	log.SetLevel(level)

	var c codec.Codec
	switch opts.Format {
	case "toml":
		c = codec.NewTOML()
	case "json":
		c = codec.NewJSON()
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid format %q (must be toml or json)\n", opts.Format)
		return 1
	}

	platform := key.CurrentPlatform()
	switch opts.Platform {
	case "":
		// Detected from the running OS.
	case "mac":
		platform = key.PlatformMac
	case "other":
		platform = key.PlatformOther
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid platform %q (must be mac or other)\n", opts.Platform)
		return 1
	}

	path := opts.ConfigPath
	if path == "" {
		path = filepath.Join(defaultConfigDir(), "shortcuts"+c.Ext())
	}

	store := config.NewFileStore(path, c, config.WithLogger(log))
	defer store.Close()

	if opts.List {
		printRegistry(os.Stdout, store)
		return 0
	}

	d, err := dispatcher.New(store, dispatcher.WithPlatform(platform), dispatcher.WithLogger(log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer d.Close()

	w, err := watcher.New(path, store.Reload, watcher.WithLogger(log))
	if err != nil {
		// Watching is best-effort; the tester still works without it.
		log.WithError(err).Warn("settings file watching disabled")
	} else {
		defer w.Close()
	}

	ui, err := newTester(d, store, platform)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	defer ui.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		ui.Close()
		os.Exit(0)
	}()

	ui.Run()
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to shortcut settings file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to shortcut settings file (shorthand)")
	flag.StringVar(&opts.Format, "format", "toml", "Settings file format (toml, json)")
	flag.StringVar(&opts.Platform, "platform", "", "Modifier convention (mac, other); default detects the OS")
	flag.StringVar(&opts.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.List, "list", false, "Print the effective shortcut table and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "hotkeys - keyboard shortcut tester\n\n")
		fmt.Fprintf(os.Stderr, "Usage: hotkeys [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  hotkeys                          Interactive tester with detected settings\n")
		fmt.Fprintf(os.Stderr, "  hotkeys -list                    Print the effective bindings\n")
		fmt.Fprintf(os.Stderr, "  hotkeys -c ./shortcuts.json -format json\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("hotkeys %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "hotkeys")
	}
	return "."
}

// printRegistry writes the effective shortcut table grouped by scope,
// flagging overridden, disabled, and conflicting bindings.
func printRegistry(out io.Writer, store config.Store) {
	overrides, err := store.Overrides()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	conflicts := map[action.ID]bool{}
	for _, ids := range config.ConflictsByChord(overrides) {
		if len(ids) > 1 {
			for _, id := range ids {
				conflicts[id] = true
			}
		}
	}

	for _, group := range action.GroupByScope() {
		fmt.Fprintf(out, "%s\n", group.Scope)
		for _, def := range group.Definitions {
			eff, _ := config.ResolveFrom(def.ID, overrides)

			note := ""
			switch {
			case eff.Disabled:
				note = " (disabled)"
			case !eff.IsDefault:
				note = " (custom)"
			}
			if conflicts[def.ID] {
				note += " (conflict)"
			}
			fmt.Fprintf(out, "  %-28s %-12s %s%s\n",
				def.Label, key.DisplayString(eff.Combo, false), def.ID, note)
		}
		fmt.Fprintln(out)
	}
}

// tester is the interactive screen. Every registry action is registered on
// the dispatcher; fired actions accumulate in a log pane. F1 toggles a
// simulated chat-input focus, F2 a simulated settings dialog, and q quits.
type tester struct {
	screen   tcell.Screen
	d        *dispatcher.Dispatcher
	store    config.Store
	platform key.Platform

	focused bool
	dialog  bool
	fires   []string
}

func newTester(d *dispatcher.Dispatcher, store config.Store, platform key.Platform) (*tester, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	t := &tester{screen: screen, d: d, store: store, platform: platform}

	for _, def := range action.All() {
		if _, err := d.Register(def.ID, func(key.Event) {
			t.record(def)
		}); err != nil {
			screen.Fini()
			return nil, err
		}
	}
	return t, nil
}

func (t *tester) record(def action.Definition) {
	overrides, err := t.store.Overrides()
	combo := def.Default
	if err == nil {
		if eff, ok := config.ResolveFrom(def.ID, overrides); ok {
			combo = eff.Combo
		}
	}
	line := fmt.Sprintf("%s  %s", key.DisplayString(combo, false), def.Label)
	t.fires = append(t.fires, line)
	if len(t.fires) > 12 {
		t.fires = t.fires[len(t.fires)-12:]
	}
}

func (t *tester) Run() {
	for {
		t.draw()
		ev := t.screen.PollEvent()
		keyEv, ok := ev.(*tcell.EventKey)
		if !ok {
			if _, resized := ev.(*tcell.EventResize); resized {
				t.screen.Sync()
			}
			continue
		}

		switch keyEv.Key() {
		case tcell.KeyF1:
			t.focused = !t.focused
			t.applyContext()
			continue
		case tcell.KeyF2:
			t.dialog = !t.dialog
			t.applyContext()
			continue
		}
		if keyEv.Key() == tcell.KeyRune && keyEv.Rune() == 'q' && keyEv.Modifiers() == 0 {
			return
		}

		t.d.HandleEvent(convertEvent(keyEv, t.platform))
	}
}

func (t *tester) applyContext() {
	var ctx dispatcher.Context
	if t.focused {
		ctx.FocusedInputID = "chat-input"
	}
	if t.dialog {
		ctx.ActiveDialogID = "settings"
	}
	t.d.SetContext(ctx)
}

func (t *tester) draw() {
	t.screen.Clear()

	stats := t.d.Stats()
	t.print(0, 0, fmt.Sprintf("hotkeys tester  platform=%s  F1 focus=%v  F2 dialog=%v  q quits",
		t.platform, t.focused, t.dialog))
	t.print(0, 1, fmt.Sprintf("events=%d fired=%d panics=%d",
		stats.EventsHandled, stats.CallbacksFired, stats.CallbackPanics))

	for i, line := range t.fires {
		t.print(2, 3+i, line)
	}

	t.screen.Show()
}

func (t *tester) print(x, y int, s string) {
	for i, r := range s {
		t.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func (t *tester) Close() {
	t.screen.Fini()
}

// convertEvent maps a terminal key event onto a dispatch event. The primary
// flag follows the platform convention so that Command bindings are testable
// from a terminal that only reports Meta on some emulators.
func convertEvent(ev *tcell.EventKey, platform key.Platform) key.Event {
	mods := ev.Modifiers()

	out := key.Event{
		Control: mods&tcell.ModCtrl != 0,
		Alt:     mods&tcell.ModAlt != 0,
		Shift:   mods&tcell.ModShift != 0,
	}
	if platform == key.PlatformMac {
		out.Primary = mods&tcell.ModMeta != 0
	} else {
		out.Primary = mods&tcell.ModCtrl != 0
	}

	out.Key = convertKey(ev)
	return out
}

// convertKey converts a tcell key to the engine's key token vocabulary.
func convertKey(ev *tcell.EventKey) string {
	k := ev.Key()

	// Ctrl+letter arrives as a control key code, not a rune.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return string(rune('a' + (k - tcell.KeyCtrlA)))
	}

	switch k {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyDelete:
		return "delete"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyPgUp:
		return "pageup"
	case tcell.KeyPgDn:
		return "pagedown"
	default:
		return ""
	}
}
