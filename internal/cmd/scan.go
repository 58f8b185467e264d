package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/harrison/kubesum/internal/config"
	"github.com/harrison/kubesum/internal/display"
	"github.com/harrison/kubesum/internal/executor"
	"github.com/harrison/kubesum/internal/fileutil"
	"github.com/harrison/kubesum/internal/logger"
	"github.com/spf13/cobra"
)

// scanCommand implements the root command logic
func scanCommand(cmd *cobra.Command, args []string) error {
	// Resolve the scan root: single optional argument, defaulting to cwd
	var dir string
	if len(args) == 1 {
		dir = args[0]
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
		dir = wd
	}

	// Load configuration from file
	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(dir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	// CLI flags override config file settings
	if cmd.Flags().Changed("ext") {
		cfg.Extensions, _ = cmd.Flags().GetStringSlice("ext")
	}
	if cmd.Flags().Changed("exclude-dir") {
		cfg.ExcludeDirs, _ = cmd.Flags().GetStringSlice("exclude-dir")
	}
	if jobs, _ := cmd.Flags().GetInt("jobs"); jobs > 0 {
		cfg.MaxConcurrency = jobs
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	// A missing or non-directory root is not fatal: warn and report zero
	// totals.
	if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
		display.WarnMissingRoot(dir).Display(cmd.ErrOrStderr())
	}

	result := fileutil.ScanDirectory(dir, fileutil.ScanOptions{
		Extensions:  cfg.Extensions,
		ExcludeDirs: cfg.ExcludeDirs,
	})
	for _, scanErr := range result.Errors {
		log.LogWarn(scanErr.Error())
	}

	runID := uuid.New().String()
	log.LogScanStart(dir, len(result.Files), runID)

	scanner := executor.NewScanner(log, cfg.MaxConcurrency)
	totals, filesRead, err := scanner.Scan(cmd.Context(), result.Files)
	if err != nil {
		return err
	}

	report := display.Report{
		Directory: dir,
		FilesRead: filesRead,
		Totals:    totals,
	}
	report.Display(cmd.OutOrStdout())

	return nil
}
