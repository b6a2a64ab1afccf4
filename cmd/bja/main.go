// bja: Business Justification Assistant MCP Server
//
// An MCP server that integrates with any AI tool speaking the protocol
// (Claude Code, OpenCode, Gemini CLI, Cursor) to take a business case
// from raw facts to an approval-ready document, with a deterministic
// scoring gate between drafting and export.
//
// Usage:
//
//	bja serve           # Start MCP server (stdio transport)
//	bja score FILE      # Score a document offline, no case needed
//	bja update          # Update to the latest version
package main

import (
	"encoding/json"
	"fmt"
	"os"

	bjaserver "github.com/bordenet/business-justification-assistant/internal/server"
	"github.com/bordenet/business-justification-assistant/internal/scoring"
	"github.com/bordenet/business-justification-assistant/internal/slop"
	"github.com/bordenet/business-justification-assistant/internal/updater"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var scoreJSON bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "bja",
		Short: "Business justification assistant",
		Long: `bja turns vague asks into approval-ready business cases.

As an MCP server it orchestrates intake, LLM drafting, deterministic
scoring, and export. The score command runs the same validator standalone
against any markdown file.`,
		Version:       bjaserver.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCmd(), newScoreCmd(), newUpdateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score FILE",
		Short: "Score a business case document offline",
		Long: `Runs the deterministic validator against a markdown file and prints
the report. No case or server needed; useful in CI to gate a committed
business case, since the same document always produces the same score.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(args[0])
		},
	}
	cmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the full report as JSON")
	return cmd
}

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update bja to the latest release",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate()
		},
	}
}

func runServe() error {
	s, cleanup, err := bjaserver.New()
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// Background version check prints to stderr so it doesn't interfere
	// with MCP's stdio transport on stdout.
	go checkForUpdates()

	return server.ServeStdio(s)
}

func runScore(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	rep := scoring.New(slop.New()).Validate(string(data))

	if scoreJSON {
		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("%s: %d/100\n\n", path, rep.TotalScore)
	printDimension("Strategic evidence", rep.Strategic)
	printDimension("Financial justification", rep.Financial)
	printDimension("Options & alternatives", rep.Options)
	printDimension("Execution completeness", rep.Execution)
	if rep.Slop.Deduction > 0 {
		fmt.Printf("Language deduction        -%d\n", rep.Slop.Deduction)
		for _, issue := range rep.Slop.Issues {
			fmt.Printf("  ! %s\n", issue)
		}
	}
	return nil
}

func printDimension(label string, res scoring.DimensionResult) {
	fmt.Printf("%-25s %d/%d\n", label, res.Score, res.MaxScore)
	for _, issue := range res.Issues {
		fmt.Printf("  ! %s\n", issue)
	}
}

// checkForUpdates runs a non-blocking version check and prints a notice
// to stderr if an update is available. Best-effort; network failures are
// silently ignored.
func checkForUpdates() {
	result := updater.CheckVersion(bjaserver.Version)
	if result.UpdateAvailable {
		fmt.Fprintf(os.Stderr,
			"\n  Update available: v%s -> v%s\n"+
				"  Run: bja update\n"+
				"  Release: %s\n\n",
			result.CurrentVersion, result.LatestVersion, result.ReleaseURL,
		)
	}
}

// runUpdate performs a self-update to the latest version.
func runUpdate() error {
	fmt.Fprintf(os.Stderr, "Checking for updates...\n")

	result := updater.CheckVersion(bjaserver.Version)
	if !result.UpdateAvailable {
		fmt.Fprintf(os.Stderr, "Already at the latest version (v%s)\n", result.CurrentVersion)
		return nil
	}

	fmt.Fprintf(os.Stderr, "New version available: v%s -> v%s\nDownloading...\n",
		result.CurrentVersion, result.LatestVersion)

	if err := updater.SelfUpdate(bjaserver.Version); err != nil {
		fmt.Fprintf(os.Stderr, "You can download manually from:\n  %s\n", result.ReleaseURL)
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Updated to v%s. Restart bja to use the new version.\n", result.LatestVersion)
	return nil
}
