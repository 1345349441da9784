package parser

import (
	"strings"
	"testing"

	"pocketledger/internal/models"
)

func TestDecodeResult(t *testing.T) {
	t.Run("record", func(t *testing.T) {
		raw := `{"action":"RECORD","transaction":{"amount":25.5,"category":"Food","note":"lunch","date":"2025-06-05","type":"Expense"}}`
		result, err := DecodeResult(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Action != ActionRecord {
			t.Errorf("expected RECORD, got %s", result.Action)
		}
		if result.Transaction == nil || result.Transaction.Amount != 25.5 {
			t.Errorf("unexpected transaction: %+v", result.Transaction)
		}
		if result.Transaction.Type != models.TransactionTypeExpense {
			t.Errorf("expected Expense, got %s", result.Transaction.Type)
		}
	})

	t.Run("answer", func(t *testing.T) {
		raw := `{"action":"ANSWER","answer_text":"You spent 120 on Food this month."}`
		result, err := DecodeResult(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Action != ActionAnswer || result.AnswerText == "" {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("fenced_json", func(t *testing.T) {
		raw := "```json\n{\"action\":\"ANSWER\",\"answer_text\":\"Nothing yet.\"}\n```"
		result, err := DecodeResult(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.AnswerText != "Nothing yet." {
			t.Errorf("unexpected answer: %q", result.AnswerText)
		}
	})

	t.Run("rejects", func(t *testing.T) {
		cases := []struct {
			name string
			raw  string
		}{
			{"not_json", "I could not parse that."},
			{"unknown_action", `{"action":"DELETE"}`},
			{"record_without_transaction", `{"action":"RECORD"}`},
			{"record_invalid_type", `{"action":"RECORD","transaction":{"amount":5,"category":"Food","date":"2025-06-05","type":"Spending"}}`},
			{"record_missing_date", `{"action":"RECORD","transaction":{"amount":5,"category":"Food","type":"Expense"}}`},
			{"answer_without_text", `{"action":"ANSWER"}`},
			{"empty", ""},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := DecodeResult(tc.raw); err == nil {
					t.Errorf("expected error for %q", tc.raw)
				}
			})
		}
	})
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced_no_lang", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"chatter_around_object", "Sure! Here you go: {\"a\":1} Hope that helps.", `{"a":1}`},
		{"whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.raw); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBuildTextPrompt(t *testing.T) {
	t.Run("includes_categories", func(t *testing.T) {
		prompt := buildTextPrompt([]string{"Food", "Transport"}, nil)
		if !strings.Contains(prompt, "Food, Transport") {
			t.Error("prompt missing category list")
		}
	})

	t.Run("caps_history", func(t *testing.T) {
		history := make([]models.Transaction, historyLimit+10)
		for i := range history {
			history[i] = models.Transaction{ID: "tx", Amount: float64(i), Type: models.TransactionTypeExpense}
		}

		prompt := buildTextPrompt(nil, history)
		if got := strings.Count(prompt, `"id":"tx"`); got != historyLimit {
			t.Errorf("expected %d history lines, got %d", historyLimit, got)
		}
	})
}

func TestBuildImagePrompt(t *testing.T) {
	prompt := buildImagePrompt([]string{"Food"})
	if !strings.Contains(prompt, "RECORD") {
		t.Error("image prompt must force the RECORD shape")
	}
	if strings.Contains(prompt, "ANSWER") {
		t.Error("image prompt must not offer the answer mode")
	}
}
