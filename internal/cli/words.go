// ABOUTME: Words command group for the vocabulary list
// ABOUTME: list, get, add, update, delete, save, and search subcommands
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/wordbook/internal/app"
	"github.com/harper/wordbook/internal/store"
)

var (
	wordsJSONOutput bool
	wordMeaning     string
	wordTranslate   string
	wordCategory    string
	wordExample     string
	searchCategory  string
)

var wordsCmd = &cobra.Command{
	Use:     "words",
	Aliases: []string{"w"},
	Short:   "Manage vocabulary words",
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all words",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, logger, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return printWords(cmd.OutOrStdout(), a.GetWords())
	},
}

var wordsGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, _, logger, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		word, err := a.GetWordByID(id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if wordsJSONOutput {
			return writeJSON(out, word)
		}
		fmt.Fprintf(out, "ID:         %d\n", word.ID)
		fmt.Fprintf(out, "Vocabulary: %s\n", word.Vocabulary)
		fmt.Fprintf(out, "Meaning:    %s\n", word.Meaning)
		fmt.Fprintf(out, "Translate:  %s\n", word.Translate)
		fmt.Fprintf(out, "Category:   %s\n", word.Category)
		if word.Example != nil {
			fmt.Fprintf(out, "Example:    %s\n", *word.Example)
		}
		return nil
	},
}

var wordsAddCmd = &cobra.Command{
	Use:     "add [vocabulary]",
	Aliases: []string{"a"},
	Short:   "Add a word",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := wordInput(cmd, args[0])
		if err := app.ValidateNewWord(in); err != nil {
			return err
		}

		a, _, logger, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		word, err := a.AddWord(cmd.Context(), in)
		if err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Word added (ID: %d): %s\n", word.ID, word.Vocabulary)
		return nil
	},
}

var wordsUpdateCmd = &cobra.Command{
	Use:   "update [id] [vocabulary]",
	Short: "Replace every field of a word",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		in := wordInput(cmd, args[1])
		if err := app.ValidateWordEdit(in); err != nil {
			return err
		}

		a, _, logger, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		if err := a.UpdateWord(cmd.Context(), id, in); err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Word updated (ID: %d)\n", id)
		return nil
	},
}

var wordsDeleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete a word",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, _, logger, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		if err := a.DeleteWord(cmd.Context(), id); err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Word deleted (ID: %d)\n", id)
		return nil
	},
}

var wordsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Rewrite words.json from the loaded list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, logger, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		if err := a.SaveWords(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", a.Files().Path(store.WordsFile))
		return nil
	},
}

var wordsSearchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search words by text and category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, logger, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		filter := store.Filter{Category: searchCategory}
		if len(args) > 0 {
			filter.Text = args[0]
		}

		return printWords(cmd.OutOrStdout(), a.SearchWords(filter))
	},
}

// wordInput builds the input from flags. The example is only set when the
// flag was given, so an omitted example is stored as null.
func wordInput(cmd *cobra.Command, vocabulary string) store.WordInput {
	in := store.WordInput{
		Vocabulary: vocabulary,
		Meaning:    wordMeaning,
		Translate:  wordTranslate,
		Category:   wordCategory,
	}
	if cmd.Flags().Changed("example") {
		example := wordExample
		in.Example = &example
	}
	return in
}

func printWords(out io.Writer, words []store.Word) error {
	if wordsJSONOutput {
		if words == nil {
			words = []store.Word{}
		}
		return writeJSON(out, words)
	}

	fmt.Fprintln(out, "ID\tVocabulary\tCategory\tTranslate\tMeaning")
	fmt.Fprintln(out, "--\t----------\t--------\t---------\t-------")
	for _, word := range words {
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%s\n", word.ID, word.Vocabulary, word.Category, word.Translate, word.Meaning)
	}
	return nil
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func init() {
	for _, c := range []*cobra.Command{wordsAddCmd, wordsUpdateCmd} {
		c.Flags().StringVarP(&wordMeaning, "meaning", "m", "", "Definition in your study language")
		c.Flags().StringVarP(&wordTranslate, "translate", "t", "", "Translation")
		c.Flags().StringVarP(&wordCategory, "category", "c", "", "Grouping label")
		c.Flags().StringVarP(&wordExample, "example", "e", "", "Usage example")
	}
	for _, c := range []*cobra.Command{wordsListCmd, wordsGetCmd, wordsSearchCmd} {
		c.Flags().BoolVar(&wordsJSONOutput, "json", false, "Output as JSON")
	}
	wordsSearchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "Filter by category")

	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsGetCmd)
	wordsCmd.AddCommand(wordsAddCmd)
	wordsCmd.AddCommand(wordsUpdateCmd)
	wordsCmd.AddCommand(wordsDeleteCmd)
	wordsCmd.AddCommand(wordsSaveCmd)
	wordsCmd.AddCommand(wordsSearchCmd)
	rootCmd.AddCommand(wordsCmd)
}
