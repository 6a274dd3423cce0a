package main

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"bookshelf/internal/book"
	"bookshelf/internal/catalog"
	"bookshelf/internal/logger"
	"bookshelf/internal/shelf"
)

func newRootCmd(cfg config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "shelf",
		Short:        "List, arrange and group the books of a YAML catalogue",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&cfg.Catalog, "catalog", "c", cfg.Catalog, "path to the YAML catalogue (env SHELF_CATALOG)")
	cmd.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging (env SHELF_DEBUG)")
	cmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json (env SHELF_LOG_FORMAT)")

	cmd.AddCommand(
		listCmd(&cfg),
		arrangeCmd(&cfg),
		groupCmd(&cfg),
	)
	return cmd
}

// stock reads the configured catalogue onto a fresh shelf. Failures are
// returned, not logged: cobra prints them.
func stock(cmd *cobra.Command, cfg *config) (*shelf.Shelf, error) {
	log, err := logger.New(logger.Config{
		Debug:  cfg.Debug,
		Format: cfg.LogFormat,
		Out:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	log.Debug("catalog.loading", "path", cfg.Catalog)
	s, err := shelf.NewService(catalog.NewFileSource(cfg.Catalog)).Stock(cmd.Context())
	if err != nil {
		return nil, err
	}
	log.Debug("catalog.loaded", slog.String("path", cfg.Catalog), slog.Int("books", s.Len()))
	return s, nil
}

func listCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List books in catalogue order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := stock(cmd, cfg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if s.Books().IsEmpty() {
				fmt.Fprintln(w, "(no books)")
				return nil
			}
			for _, b := range s.Books().All() {
				fmt.Fprintln(w, b)
			}
			return nil
		},
	}
}

var arrangeCriteria = map[string]book.Comparator{
	"title":     book.Compare,
	"author":    book.ByAuthor,
	"published": book.ByPublishedOn,
}

func arrangeCmd(cfg *config) *cobra.Command {
	var (
		by      string
		reverse bool
	)

	cmd := &cobra.Command{
		Use:   "arrange",
		Short: "List books sorted by title, author or publication date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			criteria, ok := arrangeCriteria[by]
			if !ok {
				return fmt.Errorf("unsupported arrange criteria %q (want title, author or published)", by)
			}
			if reverse {
				criteria = book.Reverse(criteria)
			}

			s, err := stock(cmd, cfg)
			if err != nil {
				return err
			}
			printBooks(cmd.OutOrStdout(), s.ArrangeBy(criteria))
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "title", "sort criteria: title, author or published")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "reverse the order")
	return cmd
}

func groupCmd(cfg *config) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "group",
		Short: "Group books by publication year or author",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if by != "year" && by != "author" {
				return fmt.Errorf("unsupported group criteria %q (want year or author)", by)
			}

			s, err := stock(cmd, cfg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if by == "author" {
				printGroups(w, shelf.GroupBy(s, book.Book.Author))
				return nil
			}
			printGroups(w, s.GroupByPublicationYear())
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "year", "group criteria: year or author")
	return cmd
}

func printBooks(w io.Writer, books []book.Book) {
	for _, b := range books {
		fmt.Fprintln(w, b)
	}
}

// printGroups writes groups in ascending key order.
func printGroups[K cmp.Ordered](w io.Writer, groups map[K][]book.Book) {
	for _, k := range slices.Sorted(maps.Keys(groups)) {
		fmt.Fprintf(w, "%v\n", k)
		for _, b := range groups[k] {
			fmt.Fprintf(w, "  %s\n", b)
		}
	}
}
