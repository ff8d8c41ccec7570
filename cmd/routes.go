package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cryptobook/internal/pager"
	"github.com/ziadkadry99/cryptobook/internal/routes"
)

var routesFile string

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Validate the table of contents and print it",
	Long: `Loads the route tree (the built-in one, the routes_file from the config, or
--routes), validates it, and prints every entry in reading order with its
previous and next chapter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := routesFile
		if path == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path = cfg.RoutesFile
		}

		model, err := routes.Load(path)
		if err != nil {
			return fmt.Errorf("loading routes: %w", err)
		}
		return printTOC(os.Stdout, model)
	},
}

var tocTitle = lipgloss.NewStyle().Bold(true)

// printTOC writes the numbered table of contents with each entry's neighbours.
func printTOC(out io.Writer, model *routes.Model) error {
	fmt.Fprintln(out, tocTitle.Render(fmt.Sprintf("Table of contents (%d entries)", model.Len())))

	flat := model.Flatten()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tLABEL\tPATH\tMATCH\tPAGE\tPREV\tNEXT")
	for _, r := range flat {
		links := pager.Resolve(flat, r.Path)
		label := r.Label
		if r.Depth > 1 {
			label = "  " + label
		}
		match := "exact"
		if !r.Exact {
			match = "prefix"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Number, label, r.Path, match, orDash(r.Page), linkPath(links.Prev), linkPath(links.Next))
	}
	return w.Flush()
}

func linkPath(l *pager.Link) string {
	if l == nil {
		return "-"
	}
	return l.Path
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func init() {
	routesCmd.Flags().StringVar(&routesFile, "routes", "", "routes file to check (defaults to routes_file from the config)")
	rootCmd.AddCommand(routesCmd)
}
