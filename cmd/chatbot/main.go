package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/gaonkarsahil14/CODTECH/internal/bot"
	"github.com/gaonkarsahil14/CODTECH/internal/config"
	"github.com/gaonkarsahil14/CODTECH/internal/knowledge"
	"github.com/gaonkarsahil14/CODTECH/internal/repl"
	"github.com/gaonkarsahil14/CODTECH/internal/tui"
	"github.com/gaonkarsahil14/CODTECH/pkg/version"
)

func main() {
	dataDirFlag := flag.String("data-dir", "", "Directory for knowledge.json and chat_log.txt (default: config)")
	plainFlag := flag.Bool("plain", false, "Force the plain line-based interface (no TUI)")
	versionFlag := flag.Bool("version", false, "Print version")
	helpFlag := flag.Bool("help", false, "Show help")
	flag.BoolVar(helpFlag, "h", false, "Show help")

	flag.Usage = showHelp
	flag.Parse()

	if *helpFlag {
		showHelp()
		os.Exit(0)
	}
	if *versionFlag {
		fmt.Printf("chatbot %s (%s)\n", version.Version, version.Commit)
		os.Exit(0)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if os.Getenv("CHATBOT_DEBUG") != "" {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("config error: %s", err)
	}
	if *dataDirFlag != "" {
		cfg.DataDir = *dataDirFlag
	}

	store := knowledge.NewStore(cfg, logger)
	handler := bot.New(store)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *plainFlag || !isTerminal() {
		if err := repl.Run(ctx, handler, store, os.Stdin, os.Stdout); err != nil {
			fatal("session error: %s", err)
		}
		return
	}

	var changes <-chan struct{}
	if cfg.WatchKnowledge {
		ch, err := store.Watch(ctx)
		if err != nil {
			logger.WithError(err).Warn("knowledge file watcher unavailable")
		} else {
			changes = ch
		}
	}

	m := tui.NewModel(handler, store, changes)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fatal("TUI error: %s", err)
	}
}

// isTerminal checks if stdin is a terminal
func isTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

func showHelp() {
	fmt.Println(`chatbot - fuzzy-matching knowledge chatbot

USAGE:
  chatbot [flags]             Start an interactive session

FLAGS:
  --data-dir <dir>            Directory for knowledge.json and chat_log.txt
  --plain                     Plain line-based interface (auto when stdin is not a TTY)
  --version                   Show version
  --help, -h                  Show this help

CHAT COMMANDS:
  help                        Show built-in commands
  show                        List known Q->A pairs
  find <text>                 Search known questions
  save                        Persist knowledge immediately
  teach: Q => A               Teach a new mapping in one line
  exit                        Quit the chatbot

CONFIG:
  config.yaml in . or $XDG_CONFIG_HOME/codtech-chatbot, env prefix CHATBOT_.`)
}
