package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sealevel-tools/anchorscan/internal/anchor"
	"github.com/sealevel-tools/anchorscan/internal/checker"
	"github.com/sealevel-tools/anchorscan/internal/manifest"
	"github.com/sealevel-tools/anchorscan/internal/mir"
	"github.com/sealevel-tools/anchorscan/internal/report"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	ManifestDir string
	ConfigPath  string

	// RunIDGen allows overriding the report run-ID generator (for testing).
	// If nil, defaults to report.UUIDGenerator.
	RunIDGen report.RunIDGenerator
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <snapshot.json>",
		Short: "Detect duplicate mutable accounts in a MIR snapshot",
		Long: `Run the duplicate-mutable-account analysis over a MIR snapshot.

When --manifest names a crate directory, its Cargo.toml is classified first
and non-Anchor crates are skipped without analysis.

Exit codes: 0 clean, 1 findings, 2 command error.

Example:
  anchorscan check ./target/mir-snapshot.json
  anchorscan check --manifest ./programs/stake ./snapshot.json --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ManifestDir, "manifest", "", "crate directory whose Cargo.toml gates analysis")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")

	return cmd
}

func runCheck(opts *CheckOptions, snapshotPath string, cmd *cobra.Command) error {
	var cfg *Config
	if opts.ConfigPath != "" {
		loaded, err := LoadConfig(opts.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load config", err)
		}
		cfg = loaded
	}

	manifestDir := opts.ManifestDir
	if manifestDir == "" && cfg != nil {
		manifestDir = cfg.Manifest
	}
	if manifestDir != "" {
		m, err := manifest.Load(manifestDir)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read manifest", err)
		}
		if pt := m.ProgramType(); pt != manifest.ProgramAnchor {
			slog.Info("skipping non-Anchor crate", "crate", m.CrateName, "type", pt)
			fmt.Fprintf(cmd.OutOrStdout(), "skipped: %s is not an Anchor program\n", m.CrateName)
			return nil
		}
		slog.Debug("manifest classified as Anchor", "dir", manifestDir)
	}

	slog.Info("loading snapshot", "path", snapshotPath)
	prog, err := mir.LoadSnapshot(snapshotPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load snapshot", err)
	}
	slog.Debug("snapshot loaded", "crate", prog.Crate, "items", len(prog.Items))

	contexts := anchor.ExtractContexts(prog)
	facts := anchor.ExtractAccountMetas(prog)
	findings := checker.DetectDuplicateMutableAccounts(contexts, facts)
	slog.Info("analysis complete",
		"contexts", len(contexts), "facts", len(facts), "findings", len(findings))

	rep := report.Build(
		prog.Crate,
		anchor.ExtractProgramID(prog),
		anchor.ExtractDiscriminators(prog),
		findings,
		opts.RunIDGen,
	)

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		err = rep.RenderJSON(out)
	} else {
		err = rep.RenderText(out)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to render report", err)
	}

	if len(findings) > 0 && cfg.failOnFindings() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d duplicate mutable account pair(s)", len(findings)))
	}
	return nil
}
