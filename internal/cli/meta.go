package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sealevel-tools/anchorscan/internal/anchor"
	"github.com/sealevel-tools/anchorscan/internal/mir"
)

// NewMetaCommand creates the meta command, which prints the crate's
// identity constants without running the detector.
func NewMetaCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meta <snapshot.json>",
		Short: "Print a crate's program ID and account discriminators",
		Long: `Extract the declared program identifier and per-account-type
discriminator constants from a MIR snapshot.

Example:
  anchorscan meta ./snapshot.json
  anchorscan meta --format json ./snapshot.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeta(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

type metaOutput struct {
	Crate          string                `json:"crate"`
	ProgramID      string                `json:"program_id,omitempty"`
	Discriminators []discriminatorOutput `json:"discriminators"`
}

type discriminatorOutput struct {
	Account string `json:"account"`
	Bytes   string `json:"bytes"`
}

func runMeta(opts *RootOptions, snapshotPath string, cmd *cobra.Command) error {
	prog, err := mir.LoadSnapshot(snapshotPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load snapshot", err)
	}
	slog.Debug("snapshot loaded", "crate", prog.Crate, "items", len(prog.Items))

	out := metaOutput{
		Crate:          prog.Crate,
		Discriminators: []discriminatorOutput{},
	}
	if id := anchor.ExtractProgramID(prog); len(id) > 0 {
		out.ProgramID = hex.EncodeToString(id)
	}
	for _, d := range anchor.ExtractDiscriminators(prog) {
		out.Discriminators = append(out.Discriminators, discriminatorOutput{
			Account: d.Account,
			Bytes:   hex.EncodeToString(d.Bytes),
		})
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return WrapExitError(ExitCommandError, "failed to render output", err)
		}
		return nil
	}

	fmt.Fprintf(w, "crate: %s\n", out.Crate)
	if out.ProgramID != "" {
		fmt.Fprintf(w, "program id: %s\n", out.ProgramID)
	} else {
		fmt.Fprintln(w, "program id: (not declared)")
	}
	if len(out.Discriminators) == 0 {
		fmt.Fprintln(w, "no account discriminators declared")
		return nil
	}
	for _, d := range out.Discriminators {
		fmt.Fprintf(w, "discriminator %s: %s\n", d.Account, d.Bytes)
	}
	return nil
}
