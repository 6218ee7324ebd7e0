// ABOUTME: MCP prompt definitions for wordbook
// ABOUTME: Provides static context to AI assistants about wordbook capabilities
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const gettingStarted = `Wordbook is the user's personal vocabulary notebook.

Each word has a vocabulary term, a meaning in the user's study language, a
translation, a category (often a part of speech) and an optional example.
Wordbook also keeps per-day counters of words added, words updated, and
quizzes taken.

When to use wordbook:
- The user meets a new word and wants to remember it (add_word)
- The user corrects or enriches a word (update_word)
- The user wants to review or quiz themselves (get_words, search_words)
- After a quiz, record it with add_date using mode "quiz" and today's date
- The user asks how much they have studied (get_dates)

Notes:
- add_word already counts today's add event; do not call add_date for it
- IDs are integers; deleting a word does not change the daily counters`

// registerPrompts adds static prompts to the MCP server.
func (s *Server) registerPrompts() {
	prompt := &mcp.Prompt{
		Name:        "wordbook-getting-started",
		Description: "Introduction to wordbook and how AI assistants should use it",
	}

	handler := func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		result := &mcp.GetPromptResult{
			Description: "Getting started with wordbook",
			Messages: []*mcp.PromptMessage{
				{
					Role: "user",
					Content: &mcp.TextContent{
						Text: gettingStarted,
					},
				},
			},
		}

		return result, nil
	}

	s.mcpServer.AddPrompt(prompt, handler)
}
