// Package gemini provides LLM analysis of extracted tab content using
// Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tabread/tabread"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// defaultInstruction is used when the caller supplies no instruction.
const defaultInstruction = "Extract the key information from the page content. " +
	"Answer in a question-and-answer format a reader could scan quickly. " +
	"Base your answer only on the provided content."

// thinkingBlocks matches reasoning tags some models emit around their
// internal deliberation; those are stripped from the response.
var thinkingBlocks = regexp.MustCompile(`(?s)<think(?:ing)?>.*?</think(?:ing)?>`)

// Ensure Analyzer implements tabread.Analyzer at compile time.
var _ tabread.Analyzer = (*Analyzer)(nil)

// Analyzer implements tabread.Analyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze runs the instruction against the extracted content and returns
// the model's response with any reasoning tags removed.
func (a *Analyzer) Analyze(ctx context.Context, content string, instruction string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", tabread.Errorf(tabread.EINVALID, "no content to analyze")
	}
	if instruction == "" {
		instruction = defaultInstruction
	}

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildPrompt(content)}},
		}},
		BuildConfig(instruction),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", tabread.Errorf(tabread.EINTERNAL, "gemini returned nil result")
	}

	return StripThinking(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(instruction string) *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt wraps extracted page content for the model.
func BuildPrompt(content string) string {
	var sb strings.Builder
	sb.WriteString("<page_content>\n")
	fmt.Fprintf(&sb, "%s\n", content)
	sb.WriteString("</page_content>")
	return sb.String()
}

// StripThinking removes reasoning tag blocks from a model response.
func StripThinking(response string) string {
	return strings.TrimSpace(thinkingBlocks.ReplaceAllString(response, ""))
}
