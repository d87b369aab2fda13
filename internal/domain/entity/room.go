package entity

import "time"

const (
	RoomTypeLedger = "LEDGER"
	RoomTypeGroup  = "GROUP"
)

type Member struct {
	Name    string `json:"name" firestore:"name"`
	Contact string `json:"contact" firestore:"contact"`
	Admin   bool   `json:"admin" firestore:"admin"`
}

type Room struct {
	ID         string   `json:"id" firestore:"id"`
	RoomName   string   `json:"roomName" firestore:"roomName"`
	RoomType   string   `json:"roomType" firestore:"roomType"` // "LEDGER", "GROUP"
	RoomHash   string   `json:"roomHash,omitempty" firestore:"roomHash,omitempty"`
	Members    []Member `json:"members" firestore:"members"`
	Contacts   []string `json:"-" firestore:"contacts"` // denormalized member contacts for participant queries
	MessageIDs []string `json:"messages" firestore:"messages"`

	// Populated at read time from the messages collection, never stored on the room doc.
	Messages []*Message `json:"-" firestore:"-"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// HasMember reports whether the given contact participates in the room.
func (r *Room) HasMember(contact string) bool {
	for _, m := range r.Members {
		if m.Contact == contact {
			return true
		}
	}
	return false
}
