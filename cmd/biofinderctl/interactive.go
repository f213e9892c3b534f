package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"biofinder/internal/presenter"
)

// newInteractiveCmd runs a small REPL over the same HTTP client, for
// poking at a catalog without retyping the server flag.
func newInteractiveCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Interactive query session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient(opts.serverURL)
			ctx := cmd.Context()

			fmt.Println("biofinder interactive session. Commands:")
			fmt.Println("  find <tool>       look up a tool")
			fmt.Println("  search <text>     search by functionality")
			fmt.Println("  versions <tool>   list container versions")
			fmt.Println("  list              list tool IDs")
			fmt.Println("  quit")

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				verb, rest, _ := strings.Cut(line, " ")
				rest = strings.TrimSpace(rest)

				switch verb {
				case "quit", "exit", "q":
					return nil
				case "find":
					res, err := c.FindTool(ctx, rest)
					if err != nil {
						fmt.Println(err)
						continue
					}
					fmt.Print(presenter.RenderToolResult(res))
				case "search":
					res, err := c.Search(ctx, rest, opts.limit)
					if err != nil {
						fmt.Println(err)
						continue
					}
					fmt.Print(presenter.RenderSearchHits(rest, res.Hits))
				case "versions":
					listing, err := c.Versions(ctx, rest)
					if err != nil {
						fmt.Println(err)
						continue
					}
					fmt.Print(presenter.RenderVersionListing(listing))
				case "list":
					res, err := c.ListTools(ctx, opts.limit)
					if err != nil {
						fmt.Println(err)
						continue
					}
					fmt.Print(presenter.RenderToolList(res.Tools, res.Total))
				default:
					// Bare input reads as a find, the common case.
					res, err := c.FindTool(ctx, line)
					if err != nil {
						fmt.Println(err)
						continue
					}
					fmt.Print(presenter.RenderToolResult(res))
				}
			}
		},
	}
}
