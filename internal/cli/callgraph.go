package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sealevel-tools/anchorscan/internal/callgraph"
	"github.com/sealevel-tools/anchorscan/internal/mir"
)

// NewCallgraphCommand creates the callgraph command, which reports every
// function instance reachable from the crate's local non-generic functions.
func NewCallgraphCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "callgraph <snapshot.json>",
		Short: "List function instances reachable from local entry points",
		Long: `Compute whole-crate reachability over the call graph, seeded from
every local non-generic function, and list the reachable instances.

Example:
  anchorscan callgraph ./snapshot.json
  anchorscan callgraph --format json ./snapshot.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCallgraph(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

type callgraphOutput struct {
	Crate     string   `json:"crate"`
	Instances []string `json:"instances"`
}

func runCallgraph(opts *RootOptions, snapshotPath string, cmd *cobra.Command) error {
	prog, err := mir.LoadSnapshot(snapshotPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load snapshot", err)
	}

	seeds := prog.LocalInstances()
	reachable := callgraph.Reachable(prog, seeds)
	slog.Info("reachability computed", "seeds", len(seeds), "reachable", len(reachable))

	names := make([]string, 0, len(reachable))
	for inst := range reachable {
		names = append(names, prog.InstanceName(inst))
	}
	sort.Strings(names)

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(callgraphOutput{Crate: prog.Crate, Instances: names}); err != nil {
			return WrapExitError(ExitCommandError, "failed to render output", err)
		}
		return nil
	}

	fmt.Fprintf(w, "crate: %s\n", prog.Crate)
	fmt.Fprintf(w, "%d reachable instance(s):\n", len(names))
	for _, n := range names {
		fmt.Fprintf(w, "  %s\n", n)
	}
	return nil
}
