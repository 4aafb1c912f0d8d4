package models

import "time"

type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"createdAt"`
}

// Message is one persisted chat message. Exactly one of Receiver and GroupID
// is set: Receiver for private messages, GroupID for group messages. Time is
// the client's display timestamp and never orders anything; CreatedAt is
// assigned by the store and orders history.
type Message struct {
	ID               int       `json:"id"`
	Sender           string    `json:"sender"`
	Receiver         string    `json:"receiver,omitempty"`
	Text             string    `json:"text"`
	Time             string    `json:"time"`
	Read             bool      `json:"read"`
	ReceiptDelivered bool      `json:"receiptDelivered"`
	GroupID          string    `json:"groupId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
