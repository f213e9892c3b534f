package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"biofinder/internal/presenter"
)

func writeJSON(value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func newFindCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "find <tool>",
		Short: "Find a tool by name and show its newest container",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient(opts.serverURL).FindTool(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(res)
			}
			fmt.Print(presenter.RenderToolResult(res))
			return nil
		},
	}
}

func newSearchCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search tools by functionality",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			res, err := newClient(opts.serverURL).Search(cmd.Context(), query, opts.limit)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(res)
			}
			fmt.Print(presenter.RenderSearchHits(query, res.Hits))
			return nil
		},
	}
}

func newVersionsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "versions <tool>",
		Short: "List all container versions of a tool, newest first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := newClient(opts.serverURL).Versions(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(listing)
			}
			fmt.Print(presenter.RenderVersionListing(listing))
			return nil
		},
	}
}

func newListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cataloged tool IDs alphabetically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient(opts.serverURL).ListTools(cmd.Context(), opts.limit)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(res)
			}
			fmt.Print(presenter.RenderToolList(res.Tools, res.Total))
			return nil
		},
	}
}

func newReloadCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Trigger a catalog reload on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := newClient(opts.serverURL).Reload(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("reload triggered")
			return nil
		},
	}
}
