package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/editor"
	"github.com/iw2rmb/scribe/internal/config"
)

var (
	configPath  = flag.String("config", "scribe.toml", "Path to the TOML config file.")
	envPath     = flag.String("env", ".env", "Path to a .env file with SCRIBE_* overrides.")
	showVersion = flag.Bool("version", false, "Show version information and exit.")
)

type model struct {
	editor editor.Model
	help   help.Model
}

func newModel(cfg config.Config) model {
	ecfg := editor.Config{
		Text:         cfg.Text,
		TabWidth:     cfg.TabWidth,
		ShowLineNums: cfg.ShowLineNumbers,
		ReadOnly:     cfg.ReadOnly,
		Style:        editor.DefaultStyle(),
		OnActions: func(batch editor.ActionBatch) editor.ActionDecision {
			log.Printf("actions at %s (v%d): %v", batch.Before.Cursor, batch.Before.Version, batch.Actions)
			return editor.ActionDecision{ApplyLocally: true}
		},
	}
	return model{editor: editor.New(ecfg), help: help.New()}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() + "\n" + m.help.View(m.editor.KeyMap())
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("scribe %s\n", scribe.VersionTag())
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "scribe: %v\n", err)
		os.Exit(1)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "scribe: open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("scribe %s started: %+v", scribe.Version(), cfg)

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Printf("run: %v", err)
		fmt.Fprintf(os.Stderr, "scribe: %v\n", err)
		os.Exit(1)
	}
	log.Println("scribe exited cleanly")
}

func loadConfig() (config.Config, error) {
	if err := config.LoadDotenv(*envPath); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return config.Config{}, err
	}
	return cfg, cfg.Validate()
}
