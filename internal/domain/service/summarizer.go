package service

import (
	"context"
	"fmt"
	"strings"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/pkg/logger"
)

const (
	summaryPromptHeader = "Please provide a concise summary of the following conversation. Highlight key decisions and action items:\n\n---\n\n"

	// UnconfiguredSummary is returned when no text generator is set up.
	UnconfiguredSummary = "API Key is not configured. Please set the ANTHROPIC_API_KEY environment variable."

	unknownAuthor = "Unknown User"
)

// TextGenerator turns a prompt into generated text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Summarizer struct {
	generator TextGenerator
}

// NewSummarizer accepts a nil generator; summaries then return
// UnconfiguredSummary.
func NewSummarizer(generator TextGenerator) *Summarizer {
	return &Summarizer{generator: generator}
}

func (s *Summarizer) Configured() bool {
	return s != nil && s.generator != nil
}

// Summarize never fails: problems are reported in the returned text.
func (s *Summarizer) Summarize(ctx context.Context, messages []entity.Message, users []*entity.User) string {
	if !s.Configured() {
		return UnconfiguredSummary
	}

	summary, err := s.generator.Generate(ctx, BuildSummaryPrompt(messages, users))
	if err != nil {
		logger.Error("Error summarizing conversation: %v", err)
		return fmt.Sprintf("Failed to generate summary. Reason: %s", err.Error())
	}
	return summary
}

// BuildSummaryPrompt renders one "Name: text" line per message in the
// order given.
func BuildSummaryPrompt(messages []entity.Message, users []*entity.User) string {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		name, ok := names[m.UserID]
		if !ok || name == "" {
			name = unknownAuthor
		}
		lines = append(lines, name+": "+m.Text)
	}
	return summaryPromptHeader + strings.Join(lines, "\n")
}
