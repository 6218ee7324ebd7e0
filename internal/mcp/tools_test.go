// ABOUTME: Tests for MCP tools
// ABOUTME: Calls tool handlers directly and through an in-memory client session
package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/wordbook/internal/app"
	"github.com/harper/wordbook/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	a, err := app.Open(context.Background(), app.Options{
		DataDir: t.TempDir(),
		Now:     func() time.Time { return time.Date(2025, 6, 14, 12, 0, 0, 0, time.Local) },
	})
	require.NoError(t, err)
	return NewServer(a)
}

func TestAddWordTool(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	example := "I run every morning."
	result, output, err := server.handleAddWord(ctx, nil, AddWordInput{
		Vocabulary: "run",
		Meaning:    "(verb) move fast",
		Translate:  "courir",
		Category:   "verb",
		Example:    &example,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint32(1), output.Word.ID)

	_, words, err := server.handleGetWords(ctx, nil, NoInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, words.Count)

	_, dates, err := server.handleGetDates(ctx, nil, NoInput{})
	require.NoError(t, err)
	assert.Equal(t, []store.DailyActivity{{Date: "2025-06-14", Add: 1}}, dates.Dates)
}

func TestAddWordToolRejectsShortFields(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	_, _, err := server.handleAddWord(ctx, nil, AddWordInput{Vocabulary: "r", Meaning: "move fast", Translate: "courir"})
	assert.ErrorIs(t, err, store.ErrInvalidArgument)

	_, words, err := server.handleGetWords(ctx, nil, NoInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, words.Count)

	_, dates, err := server.handleGetDates(ctx, nil, NoInput{})
	require.NoError(t, err)
	assert.Empty(t, dates.Dates)
}

func TestWordTools(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	_, _, err := server.handleAddWord(ctx, nil, AddWordInput{Vocabulary: "run", Meaning: "move fast", Translate: "courir", Category: "verb"})
	require.NoError(t, err)

	t.Run("get by id", func(t *testing.T) {
		_, out, err := server.handleGetWordByID(ctx, nil, WordIDInput{ID: 1})
		require.NoError(t, err)
		assert.Equal(t, "run", out.Word.Vocabulary)

		_, _, err = server.handleGetWordByID(ctx, nil, WordIDInput{ID: 2})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		_, _, err := server.handleUpdateWord(ctx, nil, UpdateWordInput{ID: 1, Vocabulary: "sprint", Meaning: "run at full speed", Translate: "sprinter", Category: "verb"})
		require.NoError(t, err)

		_, out, err := server.handleGetWordByID(ctx, nil, WordIDInput{ID: 1})
		require.NoError(t, err)
		assert.Equal(t, "sprint", out.Word.Vocabulary)
	})

	t.Run("update rejects a one-letter meaning", func(t *testing.T) {
		_, _, err := server.handleUpdateWord(ctx, nil, UpdateWordInput{ID: 1, Vocabulary: "sprint", Meaning: "r", Translate: "sprinter"})
		assert.ErrorIs(t, err, store.ErrInvalidArgument)

		_, out, err := server.handleGetWordByID(ctx, nil, WordIDInput{ID: 1})
		require.NoError(t, err)
		assert.Equal(t, "run at full speed", out.Word.Meaning)
	})

	t.Run("search", func(t *testing.T) {
		_, out, err := server.handleSearchWords(ctx, nil, SearchWordsInput{Text: "SPR"})
		require.NoError(t, err)
		assert.Equal(t, 1, out.Count)

		_, out, err = server.handleSearchWords(ctx, nil, SearchWordsInput{Category: "noun"})
		require.NoError(t, err)
		assert.Equal(t, 0, out.Count)
		assert.NotNil(t, out.Words)
	})

	t.Run("delete", func(t *testing.T) {
		_, _, err := server.handleDeleteWord(ctx, nil, WordIDInput{ID: 1})
		require.NoError(t, err)
		_, _, err = server.handleDeleteWord(ctx, nil, WordIDInput{ID: 1})
		require.NoError(t, err)

		_, out, err := server.handleGetWords(ctx, nil, NoInput{})
		require.NoError(t, err)
		assert.Equal(t, 0, out.Count)
	})

	t.Run("save", func(t *testing.T) {
		_, out, err := server.handleSaveWords(ctx, nil, NoInput{})
		require.NoError(t, err)
		assert.Contains(t, out.Message, "words.json")
	})
}

func TestAddDateTool(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	_, _, err := server.handleAddDate(ctx, nil, AddDateInput{Date: "2025-06-10", Mode: "quiz"})
	require.NoError(t, err)

	_, _, err = server.handleAddDate(ctx, nil, AddDateInput{Date: "2025-06-10", Mode: "bogus"})
	assert.ErrorIs(t, err, store.ErrInvalidArgument)

	_, out, err := server.handleGetDates(ctx, nil, NoInput{})
	require.NoError(t, err)
	require.Len(t, out.Dates, 1)
	require.NotNil(t, out.Dates[0].Quiz)
	assert.Equal(t, uint32(1), *out.Dates[0].Quiz)

	_, saved, err := server.handleSaveDates(ctx, nil, NoInput{})
	require.NoError(t, err)
	assert.Contains(t, saved.Message, "date.json")
}

func TestToolsOverSession(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.mcpServer.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer func() { _ = serverSession.Close() }()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, name := range []string{
		"get_words", "get_words_by_id", "add_word", "update_word", "delete_word",
		"save_words_to_file", "get_dates", "add_date", "save_dates_to_file",
	} {
		assert.True(t, names[name], "missing tool %s", name)
	}

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "add_word",
		Arguments: map[string]any{
			"vocabulary": "run",
			"meaning":    "(verb) move fast",
			"translate":  "courir",
			"category":   "verb",
		},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_words_by_id",
		Arguments: map[string]any{"id": 42},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)

	contents, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: wordsURI})
	require.NoError(t, err)
	require.Len(t, contents.Contents, 1)
	assert.Contains(t, contents.Contents[0].Text, `"vocabulary": "run"`)
}
