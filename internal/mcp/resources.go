// ABOUTME: MCP resource implementations for wordbook
// ABOUTME: Read-only views of the word list, categories, and daily activity
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	wordsURI      = "wordbook://words"
	datesURI      = "wordbook://dates"
	categoriesURI = "wordbook://categories"
)

// registerResources adds all MCP resources to the server.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         wordsURI,
		Name:        "Words",
		Description: "The full vocabulary list as stored in words.json",
		MIMEType:    "application/json",
	}, s.handleWordsResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         datesURI,
		Name:        "Daily Activity",
		Description: "Study activity per day, sorted by date, as a markdown table",
		MIMEType:    "text/markdown",
	}, s.handleDatesResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         categoriesURI,
		Name:        "Categories",
		Description: "Distinct word categories in first-seen order",
		MIMEType:    "application/json",
	}, s.handleCategoriesResource)
}

func (s *Server) handleWordsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.app.GetWords(), "", "  ")
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      wordsURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

func (s *Server) handleDatesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	days := s.app.DatesInRange(nil, nil)

	var summary strings.Builder
	summary.WriteString("# Daily Activity\n\n")

	if len(days) == 0 {
		summary.WriteString("No activity recorded yet.\n")
	} else {
		summary.WriteString("| Date | Added | Updated | Quizzes |\n")
		summary.WriteString("|---|---|---|---|\n")
		for _, day := range days {
			quiz := "-"
			if day.Quiz != nil {
				quiz = fmt.Sprintf("%d", *day.Quiz)
			}
			summary.WriteString(fmt.Sprintf("| %s | %d | %d | %s |\n", day.Date, day.Add, day.Update, quiz))
		}
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      datesURI,
				MIMEType: "text/markdown",
				Text:     summary.String(),
			},
		},
	}, nil
}

func (s *Server) handleCategoriesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	categories := s.app.Categories()
	if categories == nil {
		categories = []string{}
	}

	data, err := json.MarshalIndent(categories, "", "  ")
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      categoriesURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
