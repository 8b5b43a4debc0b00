package order

import (
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// HistoryEntry is an append-only audit record of a status change.
// From is Unknown for the entry written at creation.
type HistoryEntry struct {
	OrderID kernel.UUID
	From    Status
	To      Status
	ActorID *kernel.UUID
	Note    string
	At      time.Time
}

// NewHistoryEntry builds an entry stamped with the current UTC time.
func NewHistoryEntry(orderID kernel.UUID, from, to Status, actorID *kernel.UUID, note string) HistoryEntry {
	return HistoryEntry{
		OrderID: orderID,
		From:    from,
		To:      to,
		ActorID: actorID,
		Note:    note,
		At:      time.Now().UTC(),
	}
}

// NoteSeparator joins the fragments of a history note.
const NoteSeparator = "; "

const deliveryCodeNotePrefix = "delivery code: "

// DeliveryCodeNote is the history note fragment that records code.
func DeliveryCodeNote(code DeliveryCode) string {
	return deliveryCodeNotePrefix + code.String()
}

// RedactDeliveryCode removes the fragment written by DeliveryCodeNote from a
// joined note, for readers that may not learn the code.
func RedactDeliveryCode(note string) string {
	if !strings.Contains(note, deliveryCodeNotePrefix) {
		return note
	}
	parts := strings.Split(note, NoteSeparator)
	kept := parts[:0]
	for _, p := range parts {
		if !strings.HasPrefix(strings.TrimSpace(p), deliveryCodeNotePrefix) {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, NoteSeparator)
}
