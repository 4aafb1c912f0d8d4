package ws

import (
	"encoding/json"

	"github.com/rdesai/chatrelay/internal/models"
)

// Event names accepted from clients.
const (
	EventIdentify         = "identify"
	EventJoinRoom         = "joinRoom"
	EventSendMessage      = "sendMessage"
	EventMarkAsRead       = "markAsRead"
	EventJoinGroup        = "joinGroup"
	EventSendGroupMessage = "sendGroupMessage"
	EventTyping           = "typing"
)

// Event names pushed to clients.
const (
	EventOnlineUsers         = "onlineUsers"
	EventReceiveMessage      = "receiveMessage"
	EventReceiveGroupMessage = "receiveGroupMessage"
	EventReadReceipt         = "readReceipt"
)

// Event is the wire envelope for every websocket frame in both directions.
type Event struct {
	Name string          `json:"event"`
	Data json.RawMessage `json:"data"`
}

type inbound struct {
	client *Client
	event  Event
}

// RoomPayload names the two participants of a private conversation. It is the
// payload of joinRoom, markAsRead and typing.
type RoomPayload struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
}

type MessagePayload struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Text     string `json:"text"`
	Time     string `json:"time"`
}

type GroupJoinPayload struct {
	GroupID string `json:"groupId"`
	User    string `json:"user"`
}

type GroupMessagePayload struct {
	Sender  string `json:"sender"`
	Text    string `json:"text"`
	Time    string `json:"time"`
	GroupID string `json:"groupId"`
}

type ReadReceiptPayload struct {
	Sender   string           `json:"sender"`
	Receiver string           `json:"receiver"`
	Messages []models.Message `json:"messages"`
}
