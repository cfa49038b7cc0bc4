package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gimalovartem2-bit/lingvobot/internal/auth"
	"github.com/gimalovartem2-bit/lingvobot/internal/cleanup"
	"github.com/gimalovartem2-bit/lingvobot/internal/config"
	"github.com/gimalovartem2-bit/lingvobot/internal/files"
	"github.com/gimalovartem2-bit/lingvobot/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	isTerminal           = term.IsTerminal
	getCredentials       = auth.GetCredentials
	getEnvCredentials    = auth.GetEnvCredentials
	hasStoredCredentials = auth.HasStoredCredentials
	promptForCredentials = auth.PromptForCredentials
)

// commonOptions are the flags shared by every command that talks upstream.
type commonOptions struct {
	allowEnv    bool
	envOnly     bool
	debug       bool
	logFilePath string
}

// resolveCredentials finds the GigaChat authorization key. Precedence:
// keychain, then environment (opt-in), then a terminal prompt. An empty
// result is not an error: the analyzer degrades to local heuristics.
func resolveCredentials(allowEnv, envOnly bool) (string, string, error) {
	if envOnly {
		if key, ok := getEnvCredentials(); ok {
			return key, "Environment Variable", nil
		}
		return "", "", fmt.Errorf("env-only set but GIGACHAT_CREDENTIALS is not set")
	}

	if key, source := getCredentials(false); key != "" {
		return key, source, nil
	}

	if allowEnv {
		if key, ok := getEnvCredentials(); ok {
			return key, "Environment Variable", nil
		}
	}

	if isTerminal(int(os.Stdin.Fd())) {
		key, err := promptForCredentials("GigaChat authorization key (press Enter for local-only mode): ")
		if err != nil {
			return "", "", fmt.Errorf("error reading authorization key: %w", err)
		}
		if strings.TrimSpace(key) != "" {
			return strings.TrimSpace(key), "Terminal Prompt", nil
		}
	}

	return "", "", nil
}

// buildConfig loads environment configuration and applies CLI overrides.
func buildConfig(opts *commonOptions) (*config.Config, error) {
	logLevel := logger.LevelInfo
	if opts.debug {
		logLevel = logger.LevelDebug
	}
	var logFileW io.Writer
	if opts.logFilePath != "" {
		if err := files.RejectSymlinkPath(opts.logFilePath); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(opts.logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		cleanup.Register(f.Close)
		logFileW = f
	}
	logger.Init(logLevel, logFileW)

	cfg := config.Load()
	if opts.debug {
		cfg.Debug = true
	}

	key, source, err := resolveCredentials(opts.allowEnv, opts.envOnly)
	if err != nil {
		return nil, err
	}
	if key != "" {
		cfg.Credentials = key
		logger.Info("Using authorization key", "source", source)
	} else if cfg.HasCredentials() {
		// config.Load picked it straight from the environment; honor the
		// same opt-in gate the resolver applies.
		if opts.allowEnv || opts.envOnly {
			logger.Info("Using authorization key", "source", "Environment Variable")
		} else {
			cfg.Credentials = ""
		}
	}

	if !cfg.HasCredentials() {
		logger.Warn("No GigaChat credentials; local heuristics only")
	}
	return cfg, nil
}

func addCommonFlags(cmd *cobra.Command, opts *commonOptions) {
	cmd.Flags().BoolVar(&opts.allowEnv, "allow-env", false, "Allow reading the authorization key from GIGACHAT_CREDENTIALS")
	cmd.Flags().BoolVar(&opts.envOnly, "env-only", false, "Use only the environment for the authorization key")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&opts.logFilePath, "log-file", "", "Path to save machine-readable JSONL logs")
}

// textFromArgs joins positional arguments into the input text.
func textFromArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func signalContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn("Cancellation requested")
		cancel()
	}()
	stop := func() {
		signal.Stop(sigCh)
		cancel()
	}
	return ctx, stop
}
