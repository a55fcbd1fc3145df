// FARM-AI Crop Advisor - A terminal chat widget for crop recommendations.
//
// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uttamofficial/FARM-AI/internal/advisor"
	"github.com/uttamofficial/FARM-AI/internal/config"
	"github.com/uttamofficial/FARM-AI/internal/history"
	"github.com/uttamofficial/FARM-AI/internal/model"
	"github.com/uttamofficial/FARM-AI/internal/storage"
	"github.com/uttamofficial/FARM-AI/internal/ui/chat"
	"github.com/uttamofficial/FARM-AI/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// options holds parsed command line flags.
type options struct {
	endpoint    string
	configPath  string
	noHistory   bool
	showHistory bool
	historyN    int
	resume      bool
	version     bool
	help        bool
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(2)
	}

	if opts.help {
		printUsage()
		return
	}
	if opts.version {
		fmt.Printf("farmai %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg, err := config.LoadFrom(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if opts.endpoint != "" {
		cfg.Service.EndpointURL = opts.endpoint
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if opts.noHistory {
		cfg.History.Enabled = false
		cfg.Sessions.Enabled = false
	}
	config.SetGlobal(cfg)

	if opts.showHistory {
		if err := printHistory(cfg, opts.historyN); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs parses command line flags by hand so unknown flags produce a
// clear message instead of flag package noise.
func parseArgs(args []string) (options, error) {
	var opts options
	opts.historyN = 10

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-endpoint", "--endpoint":
			i++
			if i >= len(args) {
				return opts, fmt.Errorf("%s requires a URL", arg)
			}
			opts.endpoint = args[i]
		case "-config", "--config":
			i++
			if i >= len(args) {
				return opts, fmt.Errorf("%s requires a path", arg)
			}
			opts.configPath = args[i]
		case "-no-history", "--no-history":
			opts.noHistory = true
		case "-history", "--history":
			opts.showHistory = true
			// Optional count argument
			if i+1 < len(args) {
				if n, err := strconv.Atoi(args[i+1]); err == nil {
					opts.historyN = n
					i++
				}
			}
		case "-resume", "--resume":
			opts.resume = true
		case "-version", "--version", "-v":
			opts.version = true
		case "-help", "--help", "-h":
			opts.help = true
		default:
			return opts, fmt.Errorf("unknown flag: %s", arg)
		}
	}

	return opts, nil
}

func printUsage() {
	fmt.Println(`farmai - terminal chat widget for crop recommendations

Usage:
  farmai [flags]

Flags:
  -endpoint URL   recommendation service base URL
  -config PATH    config file (default ~/.farmai/config.toml)
  -resume         resume the most recent chat session
  -history [N]    print the N most recent submissions and exit (default 10)
  -no-history     disable session and submission persistence
  -version        print version and exit
  -help           show this help`)
}

// printHistory prints recent submissions and exits.
func printHistory(cfg *config.Config, n int) error {
	logDB, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		return err
	}
	defer logDB.Close()

	entries, err := logDB.Recent(context.Background(), n)
	if err != nil {
		return err
	}
	fmt.Println(history.FormatEntries(entries))
	return nil
}

// runTUI wires the client, persistence and chat model together and runs
// the Bubble Tea program.
func runTUI(cfg *config.Config, opts options) error {
	// Route stdlib log away from the terminal the TUI draws on.
	logFile, err := os.OpenFile(
		cfg.HistoryDBPath()+".log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	client := advisor.NewClient(cfg.Service.EndpointURL)
	if cfg.Service.TimeoutSecs > 0 {
		client = client.WithTimeout(time.Duration(cfg.Service.TimeoutSecs) * time.Second)
	}

	theme := styles.NewTheme()
	m := chat.New(client, theme).WithTimestamps(cfg.UI.ShowTimestamps)

	if cfg.Sessions.Enabled {
		store, err := storage.NewSessionStore(cfg.SessionDir(), cfg.Sessions.MaxSessions)
		if err != nil {
			return fmt.Errorf("open session store: %w", err)
		}
		saver := &sessionSaver{store: store}

		if opts.resume {
			if sess, err := store.LoadLatest(); err == nil {
				saver.id = sess.ID
				m.WithTranscript(sess.ToTranscript())
			}
		}
		m.WithSaver(saver)
	}

	if cfg.History.Enabled {
		logDB, err := history.Open(cfg.HistoryDBPath())
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer logDB.Close()
		m.WithRecorder(&submissionRecorder{log: logDB})
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// =============================================================================
// PERSISTENCE ADAPTERS
// =============================================================================

// sessionSaver persists the transcript into one session file, reusing the
// same session ID across saves.
type sessionSaver struct {
	store *storage.SessionStore
	id    string
}

// SaveTranscript implements chat.TranscriptSaver.
func (s *sessionSaver) SaveTranscript(t *model.Transcript) {
	sess := storage.FromTranscript(s.id, t)
	id, err := s.store.Save(sess)
	if err != nil {
		log.Printf("save session: %v", err)
		return
	}
	s.id = id
}

// submissionRecorder logs completed submissions to the history database.
type submissionRecorder struct {
	log *history.Log
}

// RecordSubmission implements chat.SubmissionRecorder.
func (r *submissionRecorder) RecordSubmission(req advisor.RecommendationRequest, resp *advisor.RecommendationResponse) {
	if _, err := r.log.Record(context.Background(), req, resp); err != nil {
		log.Printf("record submission: %v", err)
	}
}
