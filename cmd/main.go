package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"spellchecker/internal/app"
	"spellchecker/internal/config"
	"spellchecker/internal/customdict"
	"spellchecker/internal/scan"
	"spellchecker/internal/source"
)

var (
	dictPath string
	envFile  string

	rootCmd = &cobra.Command{
		Use:   "spellcheck [file|-]",
		Short: "Report misspelled words and single-edit corrections",
		Long: `spellcheck loads a word list, reads a document (a file argument or stdin)
and prints every unknown word once, followed by the dictionary words one
deletion, substitution, insertion, transposition or split away.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheck,
	}

	wordsCmd = &cobra.Command{
		Use:   "words",
		Short: "Manage custom accepted words stored in Redis",
	}
	wordsAddCmd = &cobra.Command{
		Use:   "add [word...]",
		Short: "Add words to the custom list",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runWordsAdd,
	}
	wordsRemoveCmd = &cobra.Command{
		Use:     "remove [word...]",
		Aliases: []string{"rm"},
		Short:   "Remove words from the custom list",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runWordsRemove,
	}
	wordsListCmd = &cobra.Command{
		Use:   "list",
		Short: "Print the custom list",
		Args:  cobra.NoArgs,
		RunE:  runWordsList,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dictPath, "dict", "", "word list file (default $DICTIONARY_PATH or words.txt)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional file with environment defaults")

	wordsCmd.AddCommand(wordsAddCmd, wordsRemoveCmd, wordsListCmd)
	rootCmd.AddCommand(wordsCmd)
}

func main() {
	log.SetFlags(0)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", envFile, err)
	}
	if dictPath != "" {
		cfg.DictionaryPath = dictPath
	}
	return cfg, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var store app.WordStore
	if client := cfg.RedisClient(); client != nil {
		defer client.Close()
		store = customdict.New(client)
	}
	dict, err := app.LoadDictionary(ctx, cfg.DictionaryPath, store, log.Default())
	if err != nil {
		return err
	}

	provider, err := source.FromArgs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	return check(ctx, &scan.Checker{Dict: dict}, provider, cmd.OutOrStdout())
}

func check(ctx context.Context, checker *scan.Checker, provider source.Provider, out io.Writer) error {
	rc, name, err := provider.Open(ctx)
	if err != nil {
		return err
	}
	defer rc.Close()

	return checker.Run(ctx, name, rc, scan.NewSeen(), func(rep scan.Report) error {
		return scan.WriteReport(out, rep)
	})
}

func customStore() (*customdict.CustomDict, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	client := cfg.RedisClient()
	if client == nil {
		return nil, nil, fmt.Errorf("REDIS_ADDR is not set")
	}
	return customdict.New(client), client.Close, nil
}

func runWordsAdd(cmd *cobra.Command, args []string) error {
	cd, closeFn, err := customStore()
	if err != nil {
		return err
	}
	defer closeFn()
	for _, w := range args {
		if err := cd.Add(cmd.Context(), w); err != nil {
			return fmt.Errorf("add %q: %w", w, err)
		}
	}
	log.Printf("added %d words", len(args))
	return nil
}

func runWordsRemove(cmd *cobra.Command, args []string) error {
	cd, closeFn, err := customStore()
	if err != nil {
		return err
	}
	defer closeFn()
	for _, w := range args {
		if err := cd.Remove(cmd.Context(), w); err != nil {
			return fmt.Errorf("remove %q: %w", w, err)
		}
	}
	log.Printf("removed %d words", len(args))
	return nil
}

func runWordsList(cmd *cobra.Command, _ []string) error {
	cd, closeFn, err := customStore()
	if err != nil {
		return err
	}
	defer closeFn()
	words, err := cd.All(cmd.Context())
	if err != nil {
		return err
	}
	sort.Strings(words)
	for _, w := range words {
		fmt.Fprintln(cmd.OutOrStdout(), w)
	}
	return nil
}
