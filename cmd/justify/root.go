package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/justify/internal/app"
	"github.com/dshills/justify/internal/justify"
)

// rootFlags holds the flags shared by every command.
type rootFlags struct {
	configPath string
	logLevel   string
	selections []string
	write      bool
	width      int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "justify [files...]",
		Short: "justify text to a fixed column width",
		Long: `Re-wrap text so every line but the last is exactly --width bytes wide,
spreading extra spaces between words. Reads stdin when no files are given.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJustify(cmd, flags, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "path to configuration file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.BoolVarP(&flags.write, "write", "w", false, "write results back to the source files")

	f := cmd.Flags()
	f.StringArrayVarP(&flags.selections, "select", "s", nil, "byte range start:end to justify (repeatable, default whole text)")
	f.IntVar(&flags.width, "width", justify.DefaultWidth, "target line width in bytes")

	cmd.AddCommand(newScriptCmd(flags), newVersionCmd())
	return cmd
}

func newApp(cmd *cobra.Command, flags *rootFlags) (*app.Application, error) {
	return app.New(app.Options{
		ConfigPath:   flags.configPath,
		LogLevel:     flags.logLevel,
		LogOutput:    cmd.ErrOrStderr(),
		ScriptOutput: cmd.OutOrStdout(),
	})
}

func runJustify(cmd *cobra.Command, flags *rootFlags, args []string) error {
	if flags.width < 1 {
		return fmt.Errorf("invalid --width %d: must be at least 1", flags.width)
	}
	ranges, err := parseRanges(flags.selections)
	if err != nil {
		return err
	}
	if flags.write && len(args) == 0 {
		return errors.New("--write requires at least one file")
	}

	a, err := newApp(cmd, flags)
	if err != nil {
		return err
	}
	defer a.Close()

	docs, err := openDocuments(cmd, a, args)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		a.Open(doc)
		if err := selectRanges(doc, ranges); err != nil {
			return fmt.Errorf("%s: %w", doc.Name, err)
		}
		if _, err := a.Justify(flags.width); err != nil {
			return fmt.Errorf("%s: %w", doc.Name, err)
		}
		if err := emit(cmd.OutOrStdout(), doc, flags.write); err != nil {
			return err
		}
	}
	return nil
}

// openDocuments reads every file, or stdin when there are none.
func openDocuments(cmd *cobra.Command, a *app.Application, paths []string) ([]*app.Document, error) {
	if len(paths) == 0 {
		doc, err := app.ReadDocument("<stdin>", cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return []*app.Document{doc}, nil
	}

	docs := make([]*app.Document, 0, len(paths))
	for _, path := range paths {
		doc, err := a.OpenFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// selectRanges selects the given ranges, or the whole document when there are none.
func selectRanges(doc *app.Document, ranges [][2]int64) error {
	if len(ranges) == 0 {
		doc.SelectAll()
		return nil
	}
	doc.ClearSelection()
	for _, r := range ranges {
		if err := doc.Select(r[0], r[1]); err != nil {
			return err
		}
	}
	return nil
}

func emit(out io.Writer, doc *app.Document, write bool) error {
	if write {
		if !doc.IsModified() {
			return nil
		}
		return doc.Save()
	}
	_, err := fmt.Fprintln(out, doc.Text())
	return err
}

// parseRanges parses "start:end" byte ranges.
func parseRanges(specs []string) ([][2]int64, error) {
	ranges := make([][2]int64, 0, len(specs))
	for _, s := range specs {
		lo, hi, ok := strings.Cut(s, ":")
		if !ok {
			return nil, fmt.Errorf("invalid selection %q: want start:end", s)
		}
		start, err := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid selection %q: %w", s, err)
		}
		end, err := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid selection %q: %w", s, err)
		}
		if start < 0 || end < start {
			return nil, fmt.Errorf("invalid selection %q: want 0 <= start <= end", s)
		}
		ranges = append(ranges, [2]int64{start, end})
	}
	return ranges, nil
}
