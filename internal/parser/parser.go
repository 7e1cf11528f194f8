package parser

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spacesedan/chatlog/internal/models"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"

	FieldConversationID = "conversation_id"
	FieldSender         = "sender"
	FieldTimestamp      = "timestamp"
	FieldMessage        = "message"
)

// RequiredFields is checked in this order when listing missing fields.
var RequiredFields = []string{FieldConversationID, FieldSender, FieldTimestamp, FieldMessage}

// rawRecord holds one input row before validation. A key that is absent was
// not present in the input at all.
type rawRecord map[string]string

// Parse decodes raw chat-log text and validates every record. Format and
// syntax failures return a single error and no records. Field errors are
// collected across all records; when any exist the records must not be used.
func Parse(raw, format string) ([]models.MessageRecord, []error) {
	var (
		rows []rawRecord
		err  error
	)

	switch format {
	case FormatCSV:
		rows, err = readCSV(raw)
	case FormatJSON:
		rows, err = readJSON(raw)
	default:
		return nil, []error{ErrInvalidFormat}
	}
	if err != nil {
		return nil, []error{&ParseError{Format: format, Err: err}}
	}

	var errs []error
	records := make([]models.MessageRecord, 0, len(rows))
	for i, row := range rows {
		if fieldErr := validateRow(row, i+1); fieldErr != nil {
			errs = append(errs, fieldErr)
			continue
		}
		records = append(records, models.MessageRecord{
			ConversationID: row[FieldConversationID],
			Sender:         row[FieldSender],
			Timestamp:      row[FieldTimestamp],
			Message:        row[FieldMessage],
		})
	}

	return records, errs
}

func validateRow(row rawRecord, n int) *FieldError {
	if row[FieldMessage] == "" {
		return &FieldError{Row: n, EmptyMessage: true}
	}

	var missing []string
	for _, field := range RequiredFields {
		if field == FieldMessage {
			continue
		}
		if row[field] == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &FieldError{Row: n, Missing: missing}
	}
	return nil
}

// readCSV keys every row by the header. Extra columns are ignored, short rows
// leave their trailing fields absent and a repeated header name keeps the
// last column. Bare quotes inside unquoted fields are kept as text.
func readCSV(raw string) ([]rawRecord, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows []rawRecord
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		row := make(rawRecord, len(header))
		for i, col := range header {
			if i >= len(record) {
				break
			}
			row[col] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readJSON(raw string) ([]rawRecord, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, err
	}

	list, ok := envelope["conversations"]
	if !ok || isNull(list) {
		return nil, nil
	}

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(list, &items); err != nil {
		return nil, fmt.Errorf("conversations: %w", err)
	}

	rows := make([]rawRecord, 0, len(items))
	for i, item := range items {
		row := make(rawRecord, len(item))
		for key, value := range item {
			if isEmptyValue(value) {
				continue
			}
			text, err := scalarText(value)
			if err != nil {
				return nil, fmt.Errorf("conversations[%d].%s: %w", i, key, err)
			}
			row[key] = text
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// scalarText returns strings unquoted and other scalars as their JSON text.
func scalarText(value json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(trimmed), nil
}

// isEmptyValue reports JSON values that count as an absent field: null, false,
// zero, an empty array and an empty object. Empty strings are kept so the
// empty message check can still name them.
func isEmptyValue(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 {
		return true
	}
	switch trimmed[0] {
	case 'n':
		return isNull(trimmed)
	case 'f':
		return string(trimmed) == "false"
	case '[':
		var items []json.RawMessage
		return json.Unmarshal(trimmed, &items) == nil && len(items) == 0
	case '{':
		var fields map[string]json.RawMessage
		return json.Unmarshal(trimmed, &fields) == nil && len(fields) == 0
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, err := strconv.ParseFloat(string(trimmed), 64)
		return err == nil && n == 0
	}
	return false
}

func isNull(value json.RawMessage) bool {
	return string(bytes.TrimSpace(value)) == "null"
}
