package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/history"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/ui"
)

// --- list ---

func newListCmd(g *globalFlags) *cobra.Command {
	var (
		q      catalog.Query
		asYAML bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog documents",
		Long: `List catalog documents, optionally filtered.

Examples:
  marquee list --search 1927
  marquee list --genre drama --year-from 1930 --year-to 1939
  marquee list --yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if q.YearFrom != 0 && q.YearTo != 0 && q.YearFrom > q.YearTo {
				return fmt.Errorf("--year-from %d is after --year-to %d", q.YearFrom, q.YearTo)
			}
			env, err := bootstrap(g, "")
			if err != nil {
				return err
			}
			defer env.Close()

			env.Session.SetHomeQuery(q)
			docs := env.Session.Snapshot().Listing

			w := cmd.OutOrStdout()
			if asYAML {
				return printYAML(w, docs)
			}
			if len(docs) == 0 {
				fmt.Fprintln(w, colorize(mutedStyle, "No documents match."))
				return nil
			}
			rows := make([][]string, 0, len(docs))
			for _, d := range docs {
				rows = append(rows, []string{strconv.Itoa(d.ID), d.Title, d.Year, d.DocumentType, d.Studio})
			}
			renderTable(w, []string{"ID", "Title", "Year", "Type", "Studio"}, rows)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&q.Text, "search", "", "match title, year or studio")
	f.StringVar(&q.Genre, "genre", "", "match genre")
	f.IntVar(&q.YearFrom, "year-from", 0, "earliest year (inclusive)")
	f.IntVar(&q.YearTo, "year-to", 0, "latest year (inclusive)")
	f.BoolVar(&asYAML, "yaml", false, "print full records as YAML")
	return cmd
}

// --- flagged ---

type flaggedOut struct {
	ID    int            `yaml:"id"`
	Title string         `yaml:"title"`
	Year  string         `yaml:"year"`
	Flags []catalog.Flag `yaml:"flags"`
}

func newFlaggedCmd(g *globalFlags) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "flagged",
		Short: "Show documents with reviewer flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := bootstrap(g, "")
			if err != nil {
				return err
			}
			defer env.Close()

			snap := env.Session.Snapshot()
			w := cmd.OutOrStdout()
			if asYAML {
				out := make([]flaggedOut, 0, len(snap.Flagged))
				for _, e := range snap.Flagged {
					out = append(out, flaggedOut{ID: e.ID, Title: e.Title, Year: e.Year, Flags: e.Flags})
				}
				return printYAML(w, out)
			}

			if len(snap.Flagged) == 0 {
				fmt.Fprintln(w, colorize(mutedStyle, "No flagged documents."))
				return nil
			}
			for _, e := range snap.Flagged {
				fmt.Fprintf(w, "%s (%s)\n", colorize(labelStyle, e.Title), e.Year)
				for _, f := range e.Flags {
					printStatus(w, f.User, "%s %s", f.Reason, colorize(mutedStyle, "["+f.Date+"]"))
				}
			}
			fmt.Fprintf(w, "\n%d document(s), %d flag(s)\n", len(snap.Flagged), snap.FlagCount)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print as YAML")
	return cmd
}

// --- history ---

func newHistoryCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or export the viewing history",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show viewed documents and recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := bootstrap(g, "")
			if err != nil {
				return err
			}
			defer env.Close()

			snap := env.Session.Snapshot()
			w := cmd.OutOrStdout()
			rows := make([][]string, 0, len(snap.Viewed))
			for _, v := range snap.Viewed {
				rows = append(rows, []string{v.Title, v.Year, v.DocumentType, v.ViewedDate})
			}
			renderTable(w, []string{"Title", "Year", "Type", "Viewed"}, rows)

			fmt.Fprintln(w)
			fmt.Fprintln(w, colorize(labelStyle, "Recent searches"))
			for _, s := range snap.Searches {
				fmt.Fprintf(w, "  %q %s\n", s.Query, colorize(mutedStyle, s.Date))
			}
			return nil
		},
	}

	var outDir string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the viewing history as CSV",
		Long: `Write the viewing history as CSV.

The file is named viewing-history.csv and replaces any earlier export in the
same directory. Without --out it goes to export_dir from the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := bootstrap(g, outDir)
			if err != nil {
				return err
			}
			defer env.Close()

			path, err := env.Session.ExportHistory()
			if err != nil {
				return err
			}
			viewed, err := history.ParseExport(env.Session.ExportText())
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Exported %d viewed document(s) to %s", len(viewed), path)
			return nil
		},
	}
	exportCmd.Flags().StringVar(&outDir, "out", "", "directory to write into (default export_dir)")

	cmd.AddCommand(showCmd, exportCmd)
	return cmd
}

// --- themes ---

func newThemesCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List UI themes; press T in the UI to switch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _ := prefs.Load(g.prefsPath)
			w := cmd.OutOrStdout()
			for _, name := range ui.ThemeNames() {
				if name == p.Theme {
					fmt.Fprintf(w, "* %s\n", colorize(labelStyle, name))
					continue
				}
				fmt.Fprintf(w, "  %s\n", name)
			}
			return nil
		},
	}
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow && !noColor {
				return labelStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(w, t.Render())
}
