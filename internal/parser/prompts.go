package parser

import (
	"encoding/json"
	"strings"
	"time"

	"pocketledger/internal/models"
)

// historyLimit caps how many recent transactions ride along in the text
// prompt for question answering.
const historyLimit = 20

func buildTextPrompt(categories []string, history []models.Transaction) string {
	var b strings.Builder

	b.WriteString("You are an intelligent financial assistant for a personal expense tracker.\n")
	b.WriteString("Decide whether the user input RECORDS a transaction or ASKS a question about existing data.\n\n")

	b.WriteString("Current Date: " + time.Now().Format(time.RFC3339) + "\n")
	b.WriteString("Existing Categories: " + strings.Join(categories, ", ") + "\n\n")

	b.WriteString("Output STRICT JSON only (no comments, no code fences, no extra text).\n")
	b.WriteString("The JSON object must have these fields:\n")
	b.WriteString("- \"action\": \"RECORD\" or \"ANSWER\"\n")
	b.WriteString("- \"transaction\": object, required when action is RECORD, with fields:\n")
	b.WriteString("  - \"amount\": number (the numeric value, no currency symbol)\n")
	b.WriteString("  - \"category\": string (an existing category, or a new short name)\n")
	b.WriteString("  - \"subcategory\": string or omitted\n")
	b.WriteString("  - \"note\": string (short description)\n")
	b.WriteString("  - \"date\": string, ISO 8601\n")
	b.WriteString("  - \"type\": \"Expense\" or \"Income\"\n")
	b.WriteString("- \"answer_text\": string, required when action is ANSWER\n\n")

	b.WriteString("Rules:\n")
	b.WriteString("- CATEGORY MATCHING: prefer one of the existing categories when the meaning matches closely.\n")
	b.WriteString("  Only create a new category for a clearly different concept. New names are short (1-2 words) and Capitalized.\n")
	b.WriteString("- If the date is not specified, use the current date.\n")
	b.WriteString("- If currency is not specified, extract the number only.\n")
	b.WriteString("- 'Income' for earnings (salary, bonus); 'Expense' for spending.\n")
	b.WriteString("- For questions, answer concisely from the recent transactions below.\n")

	if len(history) > 0 {
		if len(history) > historyLimit {
			history = history[:historyLimit]
		}
		b.WriteString("\nRecent transactions (most recent first):\n")
		for _, tx := range history {
			line, err := json.Marshal(tx)
			if err != nil {
				continue
			}
			b.Write(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func buildImagePrompt(categories []string) string {
	var b strings.Builder

	b.WriteString("You are a receipt parser for a personal expense tracker.\n")
	b.WriteString("Extract ONE transaction from the attached receipt image.\n\n")

	b.WriteString("Current Date: " + time.Now().Format(time.RFC3339) + "\n")
	b.WriteString("Existing Categories: " + strings.Join(categories, ", ") + "\n\n")

	b.WriteString("Output STRICT JSON only (no comments, no code fences, no extra text):\n")
	b.WriteString("{\"action\": \"RECORD\", \"transaction\": {\"amount\": number, \"category\": string, ")
	b.WriteString("\"note\": string, \"date\": string (ISO 8601), \"type\": \"Expense\" or \"Income\"}}\n\n")

	b.WriteString("Rules:\n")
	b.WriteString("- Use the receipt total as the amount.\n")
	b.WriteString("- Prefer an existing category; create a new short Capitalized name only for a clearly different concept.\n")
	b.WriteString("- Use the receipt's date when visible, otherwise the current date.\n")
	b.WriteString("- Keep the note to the merchant name or a short summary.\n")

	return b.String()
}
