package entity

import "time"

const (
	SettleStatusToGive    = "TO_GIVE"
	SettleStatusToReceive = "TO_RECEIVE"
	SettleStatusSettled   = "SETTLED"
)

// Owes is the net obligation of the requesting user in a single room.
// UnsettledAmount is the absolute value formatted to two decimal places.
type Owes struct {
	UnsettledAmount string `json:"unsettledAmount"`
	SettleStatus    string `json:"settleStatus"` // "TO_GIVE", "TO_RECEIVE", "SETTLED"
}

type RoomDetails struct {
	Members  []Member `json:"members"`
	RoomType string   `json:"roomType"`
	RoomName string   `json:"roomName"`
}

// LedgerEntry is the computed balance of one room from the requesting
// user's perspective. Derived per request, never persisted.
type LedgerEntry struct {
	ID            string      `json:"id"`
	CreatedAt     time.Time   `json:"createdAt"`
	Owes          Owes        `json:"owes"`
	TotalGiven    string      `json:"totalGiven"`
	TotalAccepted string      `json:"totalAccepted"`
	Entry         []*Message  `json:"entry"`
	RoomDetails   RoomDetails `json:"roomDetails"`
}

// Ledger aggregates a user's balances across all their rooms.
type Ledger struct {
	Ledger              map[string][]*LedgerEntry `json:"ledger"` // grouped by roomType
	UngroupedLedger     []*LedgerEntry            `json:"ungroupedLedger"`
	Groups              []*LedgerEntry            `json:"groups"`
	Journal             []*Message                `json:"journal"`
	TotalAmountGiven    string                    `json:"totalAmountGiven"`
	TotalAmountReceived string                    `json:"totalAmountReceived"`
	NetAmount           string                    `json:"netAmount"`
}
