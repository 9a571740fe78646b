// Package entity contains the core business objects of the project.
package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MessageKind distinguishes human messages from system-generated ones.
type MessageKind string

const (
	// MessageKindUser is a message typed by a participant.
	MessageKindUser MessageKind = "user"
	// MessageKindAuto is a message generated by the system, e.g., a payment
	// request posted when a settlement is accepted.
	MessageKindAuto MessageKind = "auto"
)

// ActionType identifies the structured action carried by an auto message.
type ActionType string

const (
	// ActionPaymentRequest asks the buyer to pay for an accepted bid.
	ActionPaymentRequest ActionType = "payment_request"
	// ActionPaymentReceipt confirms a completed payment.
	ActionPaymentReceipt ActionType = "payment_receipt"
)

// MessageAction is the machine-readable payload of an auto message. Clients
// act on this struct, never on the message text.
type MessageAction struct {
	Type   ActionType `json:"type"`             // What the client should offer to do.
	BidID  uuid.UUID  `json:"bid_id"`           // The bid this action refers to.
	Label  string     `json:"label,omitempty"`  // Display label for the action button.
	URL    string     `json:"url,omitempty"`    // Link target, e.g., the payment page.
	Amount float64    `json:"amount,omitempty"` // Amount involved, for display.
}

// ChatThread is a conversation between a buyer and a seller about one bid.
type ChatThread struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the thread.
	BidID     uuid.UUID // The bid this thread was opened for.
	ProductID uuid.UUID // The product under discussion.
	BuyerID   uuid.UUID // The buyer participant.
	SellerID  uuid.UUID // The seller participant.
	CreatedAt time.Time // Timestamp of when the thread was opened.
	UpdatedAt time.Time // Timestamp of the last message activity.
}

// Participant reports whether the given user takes part in this thread.
func (t *ChatThread) Participant(userID uuid.UUID) bool {
	return t.BuyerID == userID || t.SellerID == userID
}

// ChatMessage is a single message inside a thread. Auto messages carry a
// structured Action alongside a markdown body kept for display.
type ChatMessage struct {
	ID        uuid.UUID      // The Global Unique Identifier (GUID) for the message.
	ThreadID  uuid.UUID      // The thread this message belongs to.
	SenderID  uuid.UUID      // The user who sent it; the seller for auto messages posted on their behalf.
	Kind      MessageKind    // user or auto.
	Body      string         // Message text; markdown [label](url) for auto messages.
	Action    *MessageAction // Structured payload, nil for user messages.
	CreatedAt time.Time      // Timestamp of when the message was sent.
}

// markdownLinkPattern matches a markdown link and captures its URL.
var markdownLinkPattern = regexp.MustCompile(`\[[^\]]*\]\(([^)\s]+)\)`)

// ParsePaymentLink extracts the bid ID from the first markdown link in a
// message body, where the link URL ends in the bid ID path segment. It exists
// for older stored messages that predate the structured Action field; new
// code reads the Action directly.
func ParsePaymentLink(body string) (uuid.UUID, bool) {
	match := markdownLinkPattern.FindStringSubmatch(body)
	if match == nil {
		return uuid.Nil, false
	}

	url := strings.TrimRight(match[1], "/")
	segment := url
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		segment = url[idx+1:]
	}

	id, err := uuid.Parse(segment)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
