// Package main provides the CLI entrypoint for freqgen.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/freqgen/internal/config"
	"github.com/verte-zerg/freqgen/internal/emit"
	"github.com/verte-zerg/freqgen/internal/model"
	"github.com/verte-zerg/freqgen/internal/pipeline"
	"github.com/verte-zerg/freqgen/internal/report"
	"github.com/verte-zerg/freqgen/internal/reviewui"
	"github.com/verte-zerg/freqgen/internal/store"
	"github.com/verte-zerg/freqgen/internal/tables"
)

const (
	defaultLang      = "en,fr"
	defaultSyntax    = "rust"
	defaultRunsLimit = 20
	dateLayout       = "2006-01-02"
)

var (
	genLang   string
	genCount  int
	genSyntax string
	genOut    string
	genDate   string
	genTables string
	genReview bool
	genNoLog  bool

	runsLimit int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "freqgen",
		Short:         "Generate typing-practice content code from frequency tables",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newGenerateCmd("words", "Generate common-word initializers", model.Words))
	rootCmd.AddCommand(newGenerateCmd("bigrams", "Generate bigram initializers", model.Bigrams))
	rootCmd.AddCommand(newGenerateCmd("trigrams", "Generate trigram initializers", model.Trigrams))
	rootCmd.AddCommand(newGenerateCmd("all", "Generate all granularities", model.Words, model.Bigrams, model.Trigrams))
	rootCmd.AddCommand(newRunsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newGenerateCmd(use, short string, granularities ...model.Granularity) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, granularities)
		},
	}
	cmd.Flags().StringVar(&genLang, "lang", defaultLang, "language codes (comma list or 'all')")
	cmd.Flags().StringVar(&genSyntax, "syntax", defaultSyntax, "target syntax (rust, go)")
	cmd.Flags().StringVar(&genOut, "out", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&genDate, "date", "", "generation date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&genTables, "tables", "", "directory with table overrides (default: embedded tables)")
	cmd.Flags().BoolVar(&genReview, "review", false, "page through the output before writing")
	cmd.Flags().BoolVar(&genNoLog, "no-log", false, "skip recording the run in the ledger")
	if len(granularities) == 1 {
		cmd.Flags().IntVar(&genCount, "count", 0, "units to select (default: per-granularity)")
	}
	return cmd
}

func runGenerate(cmd *cobra.Command, granularities []model.Granularity) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &genLang, fileCfg.Generate.Lang)
	applyStringConfig(cmd, "syntax", &genSyntax, fileCfg.Generate.Syntax)
	applyStringConfig(cmd, "tables", &genTables, fileCfg.Generate.TablesDir)
	applyLogConfig(cmd, fileCfg.Generate.LogRuns)

	syntax, err := emit.ForName(genSyntax)
	if err != nil {
		return err
	}
	date, err := resolveDate(genDate)
	if err != nil {
		return err
	}

	var blocks []string
	var reports []model.Report
	for _, granularity := range granularities {
		langs, err := resolveLangs(genLang, genTables, granularity)
		if err != nil {
			return err
		}
		opts := pipeline.ForGranularity(granularity)
		if genCount > 0 {
			opts.Count = genCount
		}
		for _, lang := range langs {
			table, err := tables.Load(genTables, granularity, lang)
			if err != nil {
				return err
			}
			logErrf("Processing %s %s...\n", table.Language, granularity)
			outcome, err := pipeline.Run(table, opts, syntax, date)
			if err != nil {
				return err
			}
			blocks = append(blocks, outcome.Block)
			reports = append(reports, outcome.Report)
		}
	}

	output := strings.Join(blocks, "\n")

	if genReview {
		program := tea.NewProgram(reviewui.NewModel("freqgen output", output), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run review pager: %w", err)
		}
	}

	if err := writeOutput(cmd, genOut, output); err != nil {
		return err
	}
	if err := report.Render(os.Stderr, reports); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	if genNoLog {
		return nil
	}
	return recordRuns(reports, syntax.Name(), blocks)
}

func resolveDate(value string) (string, error) {
	if value == "" {
		return time.Now().Format(dateLayout), nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return "", fmt.Errorf("invalid --date value: %w", err)
	}
	return parsed.Format(dateLayout), nil
}

func resolveLangs(lang, dir string, granularity model.Granularity) ([]string, error) {
	lang = strings.TrimSpace(strings.ToLower(lang))
	if lang == "" {
		return nil, fmt.Errorf("--lang must not be empty")
	}
	available, err := tables.Langs(dir, granularity)
	if err != nil {
		return nil, err
	}
	if lang == "all" {
		return available, nil
	}

	availableSet := make(map[string]struct{}, len(available))
	for _, a := range available {
		availableSet[a] = struct{}{}
	}
	var requested []string
	for _, part := range strings.Split(lang, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := availableSet[part]; !ok {
			return nil, fmt.Errorf("no %s table for %q (available: %s)", granularity, part, strings.Join(available, ", "))
		}
		requested = append(requested, part)
	}
	if len(requested) == 0 {
		return nil, fmt.Errorf("--lang must not be empty")
	}
	return requested, nil
}

func writeOutput(cmd *cobra.Command, path, output string) error {
	if path == "" {
		if _, err := fmt.Fprint(cmd.OutOrStdout(), output); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "freqgen-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp output: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	if _, err := writer.WriteString(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logErrf("Wrote %s\n", path)
	return nil
}

func recordRuns(reports []model.Report, syntax string, blocks []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open run ledger: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close run ledger: %v\n", cerr)
		}
	}()

	now := time.Now()
	for i, r := range reports {
		record := model.RunRecord{
			RanAt:       now,
			Lang:        r.Lang,
			Granularity: string(r.Granularity),
			Count:       r.Selected,
			Syntax:      syntax,
			Valid:       r.Valid(),
			Warnings:    len(r.Failures),
			Missing:     len(r.MissingExamples),
			OutputBytes: len(blocks[i]),
		}
		if _, err := st.InsertRun(context.Background(), record); err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
	}
	return nil
}

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent generation runs",
		Args:  cobra.NoArgs,
		RunE:  runRunsCmd,
	}
	cmd.Flags().IntVar(&runsLimit, "last", defaultRunsLimit, "number of runs to show")
	return cmd
}

func runRunsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open run ledger: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close run ledger: %v\n", cerr)
		}
	}()

	runs, err := st.ListRuns(context.Background(), runsLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	return report.RenderRuns(cmd.OutOrStdout(), runs)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyLogConfig(cmd *cobra.Command, logRuns *bool) {
	if logRuns == nil {
		return
	}
	if cmd.Flags().Changed("no-log") {
		return
	}
	genNoLog = !*logRuns
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# freqgen configuration
# Uncomment a value to enable it. CLI flags override config values.

[generate]
# lang = %q          # Language codes (comma list or "all")
# syntax = %q          # Target syntax (rust, go)
# tables-dir = ""          # Directory with table overrides
# log-runs = true          # Record runs in the ledger
`,
		defaultLang,
		defaultSyntax,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
