package validation

import (
	"fmt"
	"strings"

	"github.com/spacesedan/chatlog/internal/models"
)

// Validate groups already-validated records by conversation id and returns the
// validation section of the report. Field checks happen in the parser; this
// only restates them.
func Validate(records []models.MessageRecord) (string, *models.ConversationSet) {
	conversations := models.NewConversationSet()
	for _, record := range records {
		conversations.Add(record)
	}

	var b strings.Builder
	b.WriteString("# Data Validation Report\n")
	b.WriteString("## 1. Data Structure Check:\n")
	b.WriteString(fmt.Sprintf("- Total conversations processed: %d\n", conversations.Len()))
	b.WriteString("- Total fields per record: 4\n\n")

	b.WriteString("## 2. Required Fields Check:\n")
	b.WriteString("- conversation_id: present\n")
	b.WriteString("- sender: present\n")
	b.WriteString("- timestamp: present\n")
	b.WriteString("- message: present\n\n")

	b.WriteString("## 3. Data Content Validation:\n")
	b.WriteString("- \"message\" field not empty: validated\n\n")

	b.WriteString("Validation Summary:\n")
	b.WriteString("Data validation is successful! Proceeding with analysis...\n\n")

	return b.String(), conversations
}
