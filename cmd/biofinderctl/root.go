package main

import (
	"github.com/spf13/cobra"
)

type cliOptions struct {
	serverURL  string
	jsonOutput bool
	limit      int
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{
		serverURL: "http://localhost:8080",
	}

	root := &cobra.Command{
		Use:   "biofinderctl",
		Short: "CLI client for the biofinder catalog service",
		Long: `biofinderctl queries a running biofinder instance: look up tools,
search by functionality, and list container image versions available
on the CVMFS tree.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.serverURL, "server", opts.serverURL, "base URL of the biofinder server")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")
	root.PersistentFlags().IntVar(&opts.limit, "limit", 0, "max results (0 uses the server default)")

	root.AddCommand(
		newFindCmd(opts),
		newSearchCmd(opts),
		newVersionsCmd(opts),
		newListCmd(opts),
		newReloadCmd(opts),
		newInteractiveCmd(opts),
	)

	return root
}
