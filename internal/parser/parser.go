// Package parser talks to the Gemini API to turn free-text input and receipt
// photos into structured transaction candidates. It is the only component
// that crosses an asynchronous collaborator boundary; every failure here is
// local and recoverable by resubmitting.
package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"pocketledger/internal/config"
	"pocketledger/internal/models"
)

// Action distinguishes the two things the assistant can do with text input.
type Action string

const (
	// ActionRecord means the input described a transaction to record.
	ActionRecord Action = "RECORD"
	// ActionAnswer means the input was a question about existing data.
	ActionAnswer Action = "ANSWER"
)

// Candidate is the assistant's proposed transaction. It is not committed;
// the client confirms it and submits through the regular transaction flow.
type Candidate struct {
	Amount      float64                `json:"amount"`
	Category    string                 `json:"category"`
	Subcategory string                 `json:"subcategory,omitempty"`
	Note        string                 `json:"note"`
	Date        string                 `json:"date"`
	Type        models.TransactionType `json:"type"`
}

// Result is the assistant's response: either a candidate transaction or an
// answer to a question. Image parses always produce a candidate.
type Result struct {
	Action      Action     `json:"action"`
	Transaction *Candidate `json:"transaction,omitempty"`
	AnswerText  string     `json:"answer_text,omitempty"`
}

// TransactionParser defines the contract with the LLM collaborator.
type TransactionParser interface {
	ParseText(ctx context.Context, input string, categories []string, history []models.Transaction) (*Result, error)
	ParseImage(ctx context.Context, data []byte, mimeType string, categories []string) (*Result, error)
}

// geminiParser implements TransactionParser over the Gemini API.
type geminiParser struct {
	client *genai.Client
	model  string
}

// NewGeminiParser creates a parser using the configured API key and model.
func NewGeminiParser(ctx context.Context, cfg *config.Config) (TransactionParser, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.GeminiAPIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &geminiParser{client: client, model: cfg.GeminiModel}, nil
}

// ParseText sends the free-text input (typed or voice transcript) with the
// known categories and recent history, and decodes the strict-JSON reply.
func (p *geminiParser) ParseText(ctx context.Context, input string, categories []string, history []models.Transaction) (*Result, error) {
	prompt := buildTextPrompt(categories, history)

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
				{Text: "User input: " + input},
			},
		},
	}

	return p.generate(ctx, contents)
}

// ParseImage sends the receipt image inline with the known categories.
// The reply is always a RECORD result.
func (p *geminiParser) ParseImage(ctx context.Context, data []byte, mimeType string, categories []string) (*Result, error) {
	prompt := buildImagePrompt(categories)

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     data,
					},
				},
			},
		},
	}

	result, err := p.generate(ctx, contents)
	if err != nil {
		return nil, err
	}
	// Image parses have no question-answering mode.
	result.Action = ActionRecord
	if result.Transaction == nil {
		return nil, fmt.Errorf("image parse returned no transaction")
	}
	return result, nil
}

func (p *geminiParser) generate(ctx context.Context, contents []*genai.Content) (*Result, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	return DecodeResult(rawText)
}

// DecodeResult decodes the model's reply into a Result, stripping any code
// fences the model wrapped it in despite instructions, and rejecting replies
// that do not form a complete, valid result. Either a full valid result comes
// back, or an error; never partial data.
func DecodeResult(raw string) (*Result, error) {
	clean := stripFences(raw)

	var result Result
	if err := json.Unmarshal([]byte(clean), &result); err != nil {
		return nil, fmt.Errorf("unmarshal model response: %w", err)
	}

	switch result.Action {
	case ActionRecord:
		tx := result.Transaction
		if tx == nil {
			return nil, fmt.Errorf("RECORD response without transaction")
		}
		if !tx.Type.Valid() {
			return nil, fmt.Errorf("invalid transaction type %q", tx.Type)
		}
		if tx.Date == "" {
			return nil, fmt.Errorf("RECORD response without date")
		}
	case ActionAnswer:
		if result.AnswerText == "" {
			return nil, fmt.Errorf("ANSWER response without answer text")
		}
	default:
		return nil, fmt.Errorf("unknown action %q", result.Action)
	}

	return &result, nil
}

// stripFences removes Markdown code fences and keeps the outermost JSON
// object when the model ignored the raw-JSON instruction.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = s[start : end+1]
		}
	}

	return strings.TrimSpace(s)
}
