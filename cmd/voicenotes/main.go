package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/arkdev/voicenotes/internal/config"
	"github.com/arkdev/voicenotes/internal/logger"
	"github.com/arkdev/voicenotes/internal/pipeline"
	"github.com/arkdev/voicenotes/internal/report"
	"github.com/arkdev/voicenotes/internal/session"
	"github.com/arkdev/voicenotes/internal/store"
	"github.com/arkdev/voicenotes/internal/summarizer"
	"github.com/arkdev/voicenotes/internal/transcriber"
	"github.com/arkdev/voicenotes/internal/watcher"
	"github.com/arkdev/voicenotes/pkg/executor"
)

func main() {
	ctx := context.Background()

	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Voice Notes Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Whisper: %s (model %s)", cfg.Whisper.BinaryPath, cfg.Whisper.ModelPath)
	log.Info(ctx, "Summarizer: %s (%d keys)", cfg.Gemini.Model, len(cfg.Gemini.APIKeys))
	log.Info(ctx, "Data file: %s", cfg.Paths.DataFile)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}
	if err := report.EnsureTemplate(cfg.Paths.Template); err != nil {
		log.Error(ctx, "Failed to prepare report template: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	st := store.New(cfg.Paths.DataFile)
	tr := transcriber.New(cfg.Whisper, exec, log)
	sm := summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	pipe := pipeline.New(cfg.Paths.Audio, st, tr, sm, log)
	em := report.New(cfg.Paths.Template, log)
	sessions := session.New(st, em, cfg.Paths.Documents, log)

	// Inbound voice notes are ingested for the configured console user.
	handler := func(ctx context.Context, filePath string) error {
		fileID := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		f, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("open voice note: %w", err)
		}
		defer f.Close()

		rec, err := pipe.IngestVoice(ctx, cfg.Bot.UserID, cfg.Bot.UserName, fileID, f)
		if err != nil {
			return err
		}
		fmt.Printf("\nGot your voice note (record %d).\nSummary: %s\nType 'list' to create a document.\n> ", rec.ID, rec.SummaryText)
		return nil
	}

	w, err := watcher.New(cfg.Paths.Inbound, handler, log, 1)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	go consoleLoop(ctx, cancel, cfg.Bot.UserID, sessions)

	log.Info(ctx, "========================================")
	log.Info(ctx, "Voice Notes is ready!")
	log.Info(ctx, "Drop voice notes into: %s", cfg.Paths.Inbound)
	log.Info(ctx, "Documents go to: %s", cfg.Paths.Documents)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case <-ctx.Done():
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Voice Notes stopped")
}

// consoleLoop is the interactive transport: it drives the selection/edit
// session for the configured user from stdin.
func consoleLoop(ctx context.Context, cancel context.CancelFunc, userID int64, sessions session.Manager) {
	printMenu()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Print("> ")
			continue
		}

		switch {
		case line == "quit" || line == "exit":
			cancel()
			return

		case line == "menu":
			sessions.Reset(userID)
			printMenu()

		case line == "list":
			options, err := sessions.ListOptions(userID)
			if errors.Is(err, session.ErrNoRecords) {
				fmt.Println("You have no records yet. Drop a voice note first.")
				break
			}
			fmt.Println("Pick a record to create a document from:")
			for _, opt := range options {
				fmt.Printf("  %d  %s\n", opt.RecordID, opt.Label)
			}
			fmt.Println("Type: select <id>")

		case strings.HasPrefix(line, "select "):
			id, err := strconv.ParseInt(strings.TrimSpace(strings.TrimPrefix(line, "select ")), 10, 64)
			if err != nil {
				fmt.Println("Usage: select <record id>")
				break
			}
			sel, err := sessions.Select(userID, id)
			if err != nil {
				fmt.Println("Record not found.")
				break
			}
			fmt.Printf("Transcript: %s\n", sel.RawExcerpt)
			fmt.Printf("Current summary: %s\n", sel.Summary)
			fmt.Println("Send the replacement text (or 'cancel'):")

		case line == "cancel":
			sessions.Cancel(userID)
			fmt.Println("Edit cancelled.")

		default:
			if sessions.StateOf(userID).Step == session.StepAwaitingText {
				res, err := sessions.SubmitText(ctx, userID, line)
				if err != nil {
					fmt.Printf("Could not create the document: %v\n", err)
					break
				}
				fmt.Printf("Document created: %s\n", res.DocumentPath)
			} else {
				printMenu()
			}
		}

		fmt.Print("> ")
	}
}

func printMenu() {
	fmt.Println("Commands:")
	fmt.Println("  list         show recent voice records")
	fmt.Println("  select <id>  pick a record and edit its summary")
	fmt.Println("  cancel       abandon the current edit")
	fmt.Println("  menu         back to this menu")
	fmt.Println("  quit         stop")
	fmt.Print("> ")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Inbound,
		cfg.Paths.Audio,
		cfg.Paths.Documents,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
