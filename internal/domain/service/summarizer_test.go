package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"teamsynchub/internal/domain/entity"
)

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

var (
	testUsers = []*entity.User{
		{ID: "u1", Name: "Ali Veli"},
		{ID: "u4", Name: "Zeynep Kaya"},
	}
	testMessages = []entity.Message{
		{UserID: "u1", Text: "Görseller hazır mı?"},
		{UserID: "u4", Text: "Yarın sabah sende olur."},
		{UserID: "u9", Text: "Ben de buradayım."},
	}
)

func TestSummarizer_Unconfigured(t *testing.T) {
	s := NewSummarizer(nil)
	assert.False(t, s.Configured())
	assert.Equal(t, UnconfiguredSummary, s.Summarize(context.Background(), testMessages, testUsers))
}

func TestSummarizer_SendsTranscriptPrompt(t *testing.T) {
	var got string
	s := NewSummarizer(generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		got = prompt
		return "Özet", nil
	}))

	assert.Equal(t, "Özet", s.Summarize(context.Background(), testMessages, testUsers))
	assert.Equal(t,
		"Please provide a concise summary of the following conversation. Highlight key decisions and action items:\n\n---\n\n"+
			"Ali Veli: Görseller hazır mı?\n"+
			"Zeynep Kaya: Yarın sabah sende olur.\n"+
			"Unknown User: Ben de buradayım.",
		got)
}

func TestSummarizer_FailureBecomesText(t *testing.T) {
	s := NewSummarizer(generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("quota exceeded")
	}))

	assert.Equal(t, "Failed to generate summary. Reason: quota exceeded",
		s.Summarize(context.Background(), testMessages, testUsers))
}
