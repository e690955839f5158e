package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"property-matcher/book"
	"property-matcher/config"
	"property-matcher/logic"
	"property-matcher/storage"
	"property-matcher/utils"
)

func main() {
	cfg := config.Load()

	logCfg := utils.LoggerConfig{Level: utils.ParseLevel(cfg.LogLevel), Color: cfg.LogColor}
	var fluentErr error
	if cfg.FluentEnabled {
		client, err := utils.NewFluentClient(cfg.FluentHost, cfg.FluentPort, cfg.FluentTag)
		if err != nil {
			fluentErr = err
		} else {
			logCfg.Fluent = client
		}
	}
	logger := utils.NewLogger(logCfg)
	defer logger.Close()
	if fluentErr != nil {
		logger.Warn("Log forwarding disabled: %v", fluentErr)
	}

	logger.Info("=== Property Matcher starting ===")
	logger.Info("Config: storage: %s | log level: %s", cfg.StorageBackend, cfg.LogLevel)

	store, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to open %s storage: %v", cfg.StorageBackend, err)
		if cfg.StorageBackend == config.BackendPostgres {
			logger.Error("Make sure Docker is running: docker compose up -d")
		}
		os.Exit(1)
	}

	app, err := logic.New(store, logger)
	if err != nil {
		logger.Error("Failed to load address book: %v", err)
		_ = store.Close()
		os.Exit(1)
	}
	defer app.Close()

	app.Subscribe(func(v book.View) { printView(os.Stdout, v) })
	printView(os.Stdout, app.View())

	run(app, os.Stdin, os.Stdout, logger)
	logger.Info("Goodbye")
}

func openStore(cfg *config.Config, logger *utils.Logger) (storage.Storage, error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		return storage.NewPostgresStore(cfg.DSN(), &utils.RetryConfig{
			MaxAttempts: cfg.DBConnectRetries,
			BaseDelay:   time.Second,
			Logger:      logger,
		})
	case config.BackendJSON:
		return storage.NewJSONStore(cfg.DataFilePath, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// run reads one command per line until exit or end of input. A failed
// command prints its message and the loop carries on.
func run(app *logic.Logic, in io.Reader, out io.Writer, logger *utils.Logger) {
	scanner := bufio.NewScanner(in)
	prompt := func(p string) bool {
		fmt.Fprint(out, p)
		return scanner.Scan()
	}

	for prompt("> ") {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		res, err := app.Execute(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if res.RequiresFile {
			if !prompt(res.Feedback + ": ") {
				break
			}
			path := strings.TrimSpace(scanner.Text())
			if path == "" {
				fmt.Fprintln(out, "No file chosen")
				continue
			}
			if res, err = app.ExecuteWithFile(line, path); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
		}

		fmt.Fprintln(out, res.Feedback)
		if res.Exit {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("Reading input failed: %v", err)
	}
}

func printView(w io.Writer, v book.View) {
	fmt.Fprintf(w, "\n── Properties (%d) ──\n", len(v.Properties))
	for i, p := range v.Properties {
		fmt.Fprintf(w, "  %d. %s\n", i+1, p)
	}
	fmt.Fprintf(w, "── Buyers (%d) ──\n", len(v.Buyers))
	for i, b := range v.Buyers {
		fmt.Fprintf(w, "  %d. %s\n", i+1, b)
	}
	if v.Matches != nil {
		fmt.Fprintf(w, "── Matches (%d) ──\n", len(v.Matches))
		for i, m := range v.Matches {
			fmt.Fprintf(w, "  %d. %s\n", i+1, m)
		}
	}
	fmt.Fprintln(w)
}
