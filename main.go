package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"weatherdeck/internal/clock"
	"weatherdeck/internal/config"
	"weatherdeck/internal/weather"
	"weatherdeck/ui/console"
	"weatherdeck/ui/tui"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	var (
		configPath   string
		readingsFile string
		logFile      string
		once         bool
		offset       float64
	)

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/weatherdeck/config.yml)")
	flag.StringVar(&readingsFile, "readings", "", "YAML readings file; switches to the file source")
	flag.StringVar(&logFile, "log", "", "write debug log to this file")
	flag.BoolVar(&once, "once", false, "print the screen state once and exit")
	flag.Float64Var(&offset, "offset", 0, "scroll offset used with -once")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if readingsFile != "" {
		cfg = cfg.WithReadingsFile(readingsFile)
	}
	if logFile != "" {
		cfg = cfg.WithLogFile(logFile)
	}

	source, err := cfg.NewSource()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if once || !term.IsTerminal(int(os.Stdout.Fd())) {
		printOnce(cfg, source, offset)
		return
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "weatherdeck")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if err := tui.Start(cfg, source); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func printOnce(cfg config.Config, source weather.Source, offset float64) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.RefreshDelay)
	defer cancel()

	reading, err := source.Current(ctx)
	if err != nil {
		reading = cfg.Reading()
	}

	console.Print(os.Stdout, console.Snapshot{
		Reading: reading,
		Offset:  offset,
		Clock:   time.Now().Format(clock.Layout),
		Err:     err,
	})
}
