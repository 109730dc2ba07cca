package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/agencyforge/roi-proposal/internal/config"
	"github.com/agencyforge/roi-proposal/internal/document"
	"github.com/agencyforge/roi-proposal/internal/export"
	"github.com/agencyforge/roi-proposal/internal/logo"
	"github.com/agencyforge/roi-proposal/internal/server"
	"github.com/agencyforge/roi-proposal/internal/session"
	"github.com/agencyforge/roi-proposal/internal/store"
	"github.com/agencyforge/roi-proposal/pkg/constants"
	"github.com/agencyforge/roi-proposal/pkg/validation"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "console"
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: text, summary, script, pdf")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "run the web editor instead of a one-shot render")
	listen := flag.String("listen", "", "listen address override for -serve")
	copySummary := flag.Bool("copy", false, "copy the email summary to the clipboard")
	printConfig := flag.Bool("print-config", false, "print the effective configuration as YAML and exit")
	flag.Parse()

	// The logo-service API key may live in a .env file next to the binary.
	_ = godotenv.Load()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	if *printConfig {
		data, err := conf.YAML()
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to serialize configuration\", \"error\": \"%v\"}\n", err)
			return
		}
		fmt.Print(string(data))
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	policy := logo.NewPolicy(conf.Logo.Host, conf.Logo.APIKey, conf.Logo.Size)
	formStore := store.NewStore(conf.Store.Path, policy.Host, logger)
	sess := session.New(formStore, policy, conf.QuietPeriod(), logger)
	defer sess.Close()

	exporter := export.NewPDFExporter(export.DefaultOptions(), logger)

	if *serve {
		address := conf.Server.Address
		if *listen != "" {
			address = *listen
		}

		logger.Info("starting proposal editor",
			zap.String("op", "main"),
			zap.String("address", address),
		)
		if err := http.ListenAndServe(address, server.NewHandler(sess, exporter, logger, version)); err != nil {
			logger.Fatal("editor server exited",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	// One-shot mode: the session has already performed the eager startup
	// calculation against the loaded state.
	formState := sess.State()
	proj := sess.Projection()

	if *copySummary {
		if proj == nil {
			logger.Fatal("no projection available for summary",
				zap.String("op", "main"),
			)
		}
		if err := export.CopySummary(document.Summary(formState, *proj), logger); err == nil {
			fmt.Println("Copied email summary to clipboard.")
		}
		return
	}

	switch outputFormat {
	case constants.OutputFormatText:
		fmt.Print(document.Text(formState, proj))
	case constants.OutputFormatSummary:
		if proj == nil {
			logger.Fatal("no projection available for summary",
				zap.String("op", "main"),
			)
		}
		fmt.Println(document.Summary(formState, *proj))
	case constants.OutputFormatScript:
		fmt.Println(strings.Join(document.Script(formState, proj), "\n\n"))
	case constants.OutputFormatPDF:
		html, err := document.HTML(formState, proj)
		if err != nil {
			logger.Fatal("failed to render proposal",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		pdf, err := exporter.Render(html)
		if err != nil {
			logger.Fatal("failed to generate PDF",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		filename := export.Filename(formState.ClientName)
		if err := os.WriteFile(filename, pdf, 0644); err != nil {
			logger.Fatal("failed to write PDF",
				zap.String("op", "main"),
				zap.String("file", filename),
				zap.Error(err),
			)
		}
		fmt.Printf("Wrote %s\n", filename)
	}
}
