package entity

import "time"

const (
	TransactionTypeAccept = "ACCEPT"
	TransactionTypeGive   = "GIVE"
)

type Message struct {
	ID              string    `json:"id" firestore:"id"`
	RoomID          string    `json:"roomId" firestore:"roomId"`
	Amount          string    `json:"amount" firestore:"amount"` // decimal stored as text, parsed for computation
	Currency        string    `json:"currency" firestore:"currency"`
	Note            string    `json:"note,omitempty" firestore:"note,omitempty"`
	From            string    `json:"from" firestore:"from"`
	To              string    `json:"to" firestore:"to"`
	SenderName      string    `json:"senderName" firestore:"senderName"`
	ReceiverName    string    `json:"receiverName" firestore:"receiverName"`
	TransactionType string    `json:"transactionType" firestore:"transactionType"` // "ACCEPT", "GIVE"
	Category        string    `json:"category,omitempty" firestore:"category,omitempty"`
	PaymentMode     string    `json:"paymentMode,omitempty" firestore:"paymentMode,omitempty"`
	MemberSplit     []string  `json:"memberSplit,omitempty" firestore:"memberSplit,omitempty"`
	Images          []string  `json:"images,omitempty" firestore:"images,omitempty"`
	AudioFile       string    `json:"audioFile,omitempty" firestore:"audioFile,omitempty"`
	Deleted         bool      `json:"deleted" firestore:"deleted"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt"`
}
