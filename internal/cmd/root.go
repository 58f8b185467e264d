package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for kubesum
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kubesum [directory]",
		Short: "Aggregate resource requests and limits across kubernetes configs",
		Long: `Kubesum scans a directory tree for kubernetes configuration files,
extracts container resource requests and limits (CPU and memory), and
prints the aggregated totals.

The directory argument is optional and defaults to the current working
directory. Configuration is loaded from .kubesum.yaml in the scan root
if present; CLI flags override configuration file settings.

Examples:
  # Scan the current directory
  kubesum

  # Scan a specific tree
  kubesum deploy/manifests

  # Include .yml files and scan 8 files at a time
  kubesum --ext .yaml --ext .yml --jobs 8 deploy/

  # Show per-file totals
  kubesum --log-level debug deploy/`,
		Version:      Version,
		Args:         cobra.MaximumNArgs(1),
		RunE:         scanCommand,
		SilenceUsage: true,
	}

	cmd.Flags().String("config", "", "Path to config file (default: <directory>/.kubesum.yaml)")
	cmd.Flags().StringSlice("ext", nil, "File extensions to scan (default: .yaml)")
	cmd.Flags().StringSlice("exclude-dir", nil, "Directory names to skip")
	cmd.Flags().Int("jobs", 0, "Number of files to summarize in parallel (0 = use config)")
	cmd.Flags().String("log-level", "", "Log verbosity: trace, debug, info, warn, error")

	return cmd
}
