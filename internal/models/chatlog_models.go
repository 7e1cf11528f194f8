package models

// MessageRecord is one row of a chat log, CSV or JSON.
type MessageRecord struct {
	ConversationID string `json:"conversation_id" jsonschema:"required,minLength=1,description=Identifier shared by every message of one conversation"`
	Sender         string `json:"sender" jsonschema:"required,minLength=1,description=Who sent the message (e.g. customer or agent)"`
	Timestamp      string `json:"timestamp" jsonschema:"required,minLength=1,description=When the message was sent; kept as free text"`
	Message        string `json:"message" jsonschema:"required,minLength=1,description=Message body"`
}

// Document is the JSON input envelope.
type Document struct {
	Conversations []MessageRecord `json:"conversations" jsonschema:"description=Flat list of message records in conversation order"`
}

// ConversationSet groups records by conversation id. Ids iterate in the order
// they were first seen and messages keep their input order.
type ConversationSet struct {
	ids      []string
	messages map[string][]MessageRecord
}

func NewConversationSet() *ConversationSet {
	return &ConversationSet{
		messages: make(map[string][]MessageRecord),
	}
}

func (c *ConversationSet) Add(record MessageRecord) {
	if _, ok := c.messages[record.ConversationID]; !ok {
		c.ids = append(c.ids, record.ConversationID)
	}
	c.messages[record.ConversationID] = append(c.messages[record.ConversationID], record)
}

func (c *ConversationSet) IDs() []string {
	return append([]string(nil), c.ids...)
}

func (c *ConversationSet) Messages(id string) []MessageRecord {
	return c.messages[id]
}

func (c *ConversationSet) Len() int {
	return len(c.ids)
}
