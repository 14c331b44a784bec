// Package main provides the CLI entrypoint for typist.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typist/internal/config"
	"github.com/verte-zerg/typist/internal/corpus"
	"github.com/verte-zerg/typist/internal/engine"
	"github.com/verte-zerg/typist/internal/feedback"
	"github.com/verte-zerg/typist/internal/generator"
	"github.com/verte-zerg/typist/internal/logging"
	"github.com/verte-zerg/typist/internal/model"
	"github.com/verte-zerg/typist/internal/tui"
	"github.com/verte-zerg/typist/internal/wordlist"
)

const (
	defaultSource = model.SourceBuiltin
	defaultLang   = "en"
	defaultWords  = 25
	defaultCaps   = 0.0
	defaultPunct  = 0.0
	defaultSound  = "bell,off"
)

const defaultPunctSet = ".,!?;:"

var (
	practiceSource   string
	practicePassages string
	practiceLang     string
	practiceWordlist string
	practiceWords    int
	practiceCaps     float64
	practicePunct    float64
	practicePunctSet string
	practiceSound    string

	logFile  string
	logLevel string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typist",
		Short:         "Terminal typing speed trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	addPassageFlags(rootCmd)
	rootCmd.Flags().StringVar(&practiceSound, "sound", defaultSound, "ranked feedback backends (bell, off)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPassagesCmd())

	return rootCmd
}

func addPassageFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&practiceSource, "source", defaultSource, "passage source: builtin, file or words")
	cmd.Flags().StringVar(&practicePassages, "passages", "", "passage file for --source file (text or YAML)")
	cmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "word list language for --source words")
	cmd.Flags().StringVar(&practiceWordlist, "wordlist", "", "word list path for --source words")
	cmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per generated passage")
	cmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	cmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	cmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := resolvePracticeConfig(cmd, fileCfg)
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("typist needs an interactive terminal")
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		return err
	}
	eng, err := engine.New(provider, engine.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	sink, backend := feedback.Resolve(feedback.ParseCandidates(cfg.Sound), os.Stderr)
	logger.Info("starting practice", "source", cfg.Source, "feedback", backend)

	m := tui.NewModel(eng, sink, resolveTheme(fileCfg.Theme), logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func resolvePracticeConfig(cmd *cobra.Command, fileCfg config.FileConfig) (model.Config, error) {
	applyStringConfig(cmd, "source", &practiceSource, fileCfg.Practice.Source)
	applyStringConfig(cmd, "passages", &practicePassages, fileCfg.Practice.Passages)
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyStringConfig(cmd, "wordlist", &practiceWordlist, fileCfg.Practice.Wordlist)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyFloatConfig(cmd, "caps", &practiceCaps, fileCfg.Practice.CapsPct)
	applyFloatConfig(cmd, "punct", &practicePunct, fileCfg.Practice.PunctPct)
	applyStringConfig(cmd, "punct-set", &practicePunctSet, fileCfg.Practice.PunctSet)
	applyStringConfig(cmd, "sound", &practiceSound, fileCfg.Sound.Backends)

	cfg := model.Config{
		Source:       strings.ToLower(strings.TrimSpace(practiceSource)),
		PassagesPath: practicePassages,
		Lang:         practiceLang,
		WordListPath: practiceWordlist,
		Words:        practiceWords,
		CapsPct:      practiceCaps,
		PunctPct:     practicePunct,
		PunctSet:     practicePunctSet,
		Sound:        practiceSound,
	}
	if cfg.PassagesPath == "" {
		cfg.PassagesPath = config.DefaultPassagesPath()
	}
	if cfg.WordListPath == "" {
		cfg.WordListPath = config.DefaultWordListPath(cfg.Lang)
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func openLogger(cmd *cobra.Command, fileCfg config.FileConfig) (*slog.Logger, io.Closer, error) {
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	logger, closer, err := logging.Open(logFile, logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return logger, closer, nil
}

// buildProvider returns the passage provider for cfg.Source.
func buildProvider(cfg model.Config) (engine.Provider, error) {
	switch cfg.Source {
	case model.SourceBuiltin:
		return corpus.NewFixed(corpus.Builtin, nil)
	case model.SourceFile:
		passages, err := corpus.LoadPassages(cfg.PassagesPath)
		if err != nil {
			return nil, err
		}
		return corpus.NewFixed(passages, nil)
	case model.SourceWords:
		words, err := wordlist.LoadWords(cfg.WordListPath, wordlist.FilterForLang(cfg.Lang))
		if err != nil {
			return nil, wordListLoadError(cfg.Lang, cfg.WordListPath, err)
		}
		return corpus.NewGenerated(generator.New(), words, cfg.Words, generator.Rules{
			CapsPct:  cfg.CapsPct,
			PunctPct: cfg.PunctPct,
			PunctSet: []rune(cfg.PunctSet),
		})
	default:
		return nil, fmt.Errorf("unknown passage source %q", cfg.Source)
	}
}

func resolveTheme(tc config.ThemeConfig) model.Theme {
	theme := model.DefaultTheme()
	pick := func(target *string, value *string) {
		if value != nil && strings.TrimSpace(*value) != "" {
			*target = strings.TrimSpace(*value)
		}
	}
	pick(&theme.Correct, tc.Correct)
	pick(&theme.Incorrect, tc.Incorrect)
	pick(&theme.Current, tc.Current)
	pick(&theme.Pending, tc.Pending)
	pick(&theme.Stats, tc.Stats)
	pick(&theme.Accent, tc.Accent)
	return theme
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

func newPassagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passages",
		Short: "List the passages a builtin or file source draws from",
		Args:  cobra.NoArgs,
		RunE:  runPassagesCmd,
	}
	addPassageFlags(cmd)
	return cmd
}

func runPassagesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := resolvePracticeConfig(cmd, fileCfg)
	if err != nil {
		return err
	}
	var passages []string
	switch cfg.Source {
	case model.SourceBuiltin:
		passages = corpus.Builtin
	case model.SourceFile:
		passages, err = corpus.LoadPassages(cfg.PassagesPath)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("source %q generates passages on demand; nothing to list", cfg.Source)
	}
	for _, p := range passages {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), p); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	theme := model.DefaultTheme()
	return fmt.Sprintf(`# typist configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# source = %q          # builtin, file or words
# passages = %q
# lang = %q                  # Word list language for source = "words"
# wordlist = %q
# words = %d                   # Words per generated passage
# caps = %.2f                # Probability of capitalized first letter (0-1)
# punct = %.2f               # Punctuation probability per word (0-1)
# punct-set = %q

[sound]
# backends = %q        # Tried in order; "off" disables feedback

[theme]
# correct = %q
# incorrect = %q
# current = %q
# pending = %q
# stats = %q
# accent = %q

[log]
# file = %q
# level = "info"
`,
		defaultSource,
		config.DefaultPassagesPath(),
		defaultLang,
		config.DefaultWordListPath(defaultLang),
		defaultWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
		defaultSound,
		theme.Correct,
		theme.Incorrect,
		theme.Current,
		theme.Pending,
		theme.Stats,
		theme.Accent,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	switch cfg.Source {
	case model.SourceBuiltin, model.SourceFile, model.SourceWords:
	default:
		return fmt.Errorf("--source must be one of builtin, file, words")
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func wordListLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		fmt.Sprintf("language %q not found", lang),
		"Provide one word per line, or pass --wordlist PATH",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
