// ABOUTME: MCP tool implementations for wordbook
// ABOUTME: One tool per command: words CRUD, date activity, and explicit saves
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/wordbook/internal/app"
	"github.com/harper/wordbook/internal/store"
)

// NoInput is the input of tools that take no arguments.
type NoInput struct{}

// WordIDInput identifies one word.
type WordIDInput struct {
	ID uint32 `json:"id" jsonschema:"The word ID"`
}

// AddWordInput defines the input for add_word tool.
type AddWordInput struct {
	Vocabulary string  `json:"vocabulary" jsonschema:"The term being learned, 2 to 20 characters"`
	Meaning    string  `json:"meaning" jsonschema:"Definition in the learner's study language, 2 to 100 characters"`
	Translate  string  `json:"translate" jsonschema:"Translation of the term, 2 to 100 characters"`
	Category   string  `json:"category" jsonschema:"Grouping label such as a part of speech"`
	Example    *string `json:"example,omitempty" jsonschema:"Optional usage example, 2 to 1000 characters"`
}

// UpdateWordInput defines the input for update_word tool.
type UpdateWordInput struct {
	ID         uint32  `json:"id" jsonschema:"The word ID to replace"`
	Vocabulary string  `json:"vocabulary" jsonschema:"The term being learned"`
	Meaning    string  `json:"meaning" jsonschema:"Definition in the learner's study language"`
	Translate  string  `json:"translate" jsonschema:"Translation of the term"`
	Category   string  `json:"category" jsonschema:"Grouping label such as a part of speech"`
	Example    *string `json:"example,omitempty" jsonschema:"Optional usage example"`
}

// SearchWordsInput defines the input for search_words tool.
type SearchWordsInput struct {
	Text     string `json:"text,omitempty" jsonschema:"Case-insensitive text to find in any field"`
	Category string `json:"category,omitempty" jsonschema:"Only words in this category"`
}

// AddDateInput defines the input for add_date tool. The counts are accepted
// but only date and mode affect the stored entry.
type AddDateInput struct {
	Date   string  `json:"date" jsonschema:"Day in YYYY-MM-DD form"`
	Add    uint32  `json:"add,omitempty" jsonschema:"Ignored"`
	Update uint32  `json:"update,omitempty" jsonschema:"Ignored"`
	Quiz   *uint32 `json:"quiz,omitempty" jsonschema:"Ignored"`
	Mode   string  `json:"mode" jsonschema:"Event kind: add, update, or quiz"`
}

// WordsOutput lists words.
type WordsOutput struct {
	Words []store.Word `json:"words" jsonschema:"Words in insertion order"`
	Count int          `json:"count" jsonschema:"Number of words returned"`
}

// WordOutput carries one word.
type WordOutput struct {
	Word store.Word `json:"word" jsonschema:"The word"`
}

// DatesOutput lists daily activity.
type DatesOutput struct {
	Dates []store.DailyActivity `json:"dates" jsonschema:"Daily activity counters"`
	Count int                   `json:"count" jsonschema:"Number of days returned"`
}

// StatusOutput reports a completed command.
type StatusOutput struct {
	Message string `json:"message" jsonschema:"What happened"`
}

// registerTools adds all MCP tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_words",
		Description: "List every vocabulary word with its meaning, translation, category and example.",
	}, s.handleGetWords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_words_by_id",
		Description: "Fetch a single vocabulary word by ID.",
	}, s.handleGetWordByID)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_words",
		Description: "Find vocabulary words by text and/or category.",
	}, s.handleSearchWords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_word",
		Description: "Add a vocabulary word. Also counts an add event for today.",
	}, s.handleAddWord)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_word",
		Description: "Replace every field of an existing vocabulary word, keeping its ID.",
	}, s.handleUpdateWord)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_word",
		Description: "Delete a vocabulary word. Deleting an unknown ID succeeds.",
	}, s.handleDeleteWord)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_words_to_file",
		Description: "Rewrite words.json from the current word list.",
	}, s.handleSaveWords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_dates",
		Description: "List daily study activity: words added, updated, and quizzes taken per day.",
	}, s.handleGetDates)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_date",
		Description: "Record one add, update, or quiz event for a day. Use mode=quiz after the user finishes a quiz.",
	}, s.handleAddDate)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_dates_to_file",
		Description: "Rewrite date.json from the current activity counters.",
	}, s.handleSaveDates)
}

func textResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
	}
}

func (s *Server) handleGetWords(ctx context.Context, req *mcp.CallToolRequest, input NoInput) (*mcp.CallToolResult, WordsOutput, error) {
	words := s.app.GetWords()
	return textResult("%d words", len(words)), WordsOutput{Words: words, Count: len(words)}, nil
}

func (s *Server) handleGetWordByID(ctx context.Context, req *mcp.CallToolRequest, input WordIDInput) (*mcp.CallToolResult, WordOutput, error) {
	word, err := s.app.GetWordByID(input.ID)
	if err != nil {
		return nil, WordOutput{}, err
	}
	return textResult("%d: %s", word.ID, word.Vocabulary), WordOutput{Word: word}, nil
}

func (s *Server) handleSearchWords(ctx context.Context, req *mcp.CallToolRequest, input SearchWordsInput) (*mcp.CallToolResult, WordsOutput, error) {
	words := s.app.SearchWords(store.Filter{Text: input.Text, Category: input.Category})
	if words == nil {
		words = []store.Word{}
	}
	return textResult("%d matching words", len(words)), WordsOutput{Words: words, Count: len(words)}, nil
}

func (s *Server) handleAddWord(ctx context.Context, req *mcp.CallToolRequest, input AddWordInput) (*mcp.CallToolResult, WordOutput, error) {
	in := store.WordInput{
		Vocabulary: input.Vocabulary,
		Meaning:    input.Meaning,
		Translate:  input.Translate,
		Category:   input.Category,
		Example:    input.Example,
	}
	if err := app.ValidateNewWord(in); err != nil {
		return nil, WordOutput{}, err
	}

	word, err := s.app.AddWord(ctx, in)
	if err != nil {
		return nil, WordOutput{}, err
	}
	return textResult("Word added successfully (ID: %d)", word.ID), WordOutput{Word: word}, nil
}

func (s *Server) handleUpdateWord(ctx context.Context, req *mcp.CallToolRequest, input UpdateWordInput) (*mcp.CallToolResult, StatusOutput, error) {
	in := store.WordInput{
		Vocabulary: input.Vocabulary,
		Meaning:    input.Meaning,
		Translate:  input.Translate,
		Category:   input.Category,
		Example:    input.Example,
	}
	if err := app.ValidateWordEdit(in); err != nil {
		return nil, StatusOutput{}, err
	}

	if err := s.app.UpdateWord(ctx, input.ID, in); err != nil {
		return nil, StatusOutput{}, err
	}
	msg := fmt.Sprintf("Word %d updated", input.ID)
	return textResult("%s", msg), StatusOutput{Message: msg}, nil
}

func (s *Server) handleDeleteWord(ctx context.Context, req *mcp.CallToolRequest, input WordIDInput) (*mcp.CallToolResult, StatusOutput, error) {
	if err := s.app.DeleteWord(ctx, input.ID); err != nil {
		return nil, StatusOutput{}, err
	}
	msg := fmt.Sprintf("Word %d deleted", input.ID)
	return textResult("%s", msg), StatusOutput{Message: msg}, nil
}

func (s *Server) handleSaveWords(ctx context.Context, req *mcp.CallToolRequest, input NoInput) (*mcp.CallToolResult, StatusOutput, error) {
	if err := s.app.SaveWords(ctx); err != nil {
		return nil, StatusOutput{}, err
	}
	msg := "Saved " + s.app.Files().Path(store.WordsFile)
	return textResult("%s", msg), StatusOutput{Message: msg}, nil
}

func (s *Server) handleGetDates(ctx context.Context, req *mcp.CallToolRequest, input NoInput) (*mcp.CallToolResult, DatesOutput, error) {
	days := s.app.GetDates()
	return textResult("%d days of activity", len(days)), DatesOutput{Dates: days, Count: len(days)}, nil
}

func (s *Server) handleAddDate(ctx context.Context, req *mcp.CallToolRequest, input AddDateInput) (*mcp.CallToolResult, StatusOutput, error) {
	err := s.app.AddDate(ctx, app.DateInput{
		Date:   input.Date,
		Add:    input.Add,
		Update: input.Update,
		Quiz:   input.Quiz,
	}, input.Mode)
	if err != nil {
		return nil, StatusOutput{}, err
	}
	msg := fmt.Sprintf("Recorded %s on %s", input.Mode, input.Date)
	return textResult("%s", msg), StatusOutput{Message: msg}, nil
}

func (s *Server) handleSaveDates(ctx context.Context, req *mcp.CallToolRequest, input NoInput) (*mcp.CallToolResult, StatusOutput, error) {
	if err := s.app.SaveDates(ctx); err != nil {
		return nil, StatusOutput{}, err
	}
	msg := "Saved " + s.app.Files().Path(store.DatesFile)
	return textResult("%s", msg), StatusOutput{Message: msg}, nil
}
