package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/rdesai/chatrelay/internal/models"
	"github.com/rdesai/chatrelay/internal/presence"
	"github.com/rdesai/chatrelay/internal/room"
	"github.com/rdesai/chatrelay/internal/store"
)

// Hub relays chat events between connected clients. A single Run goroutine
// owns all mutable state (the client set, room subscriptions and the presence
// directory), so handlers need no locking: each event runs to completion
// before the next is taken. Only message persistence leaves the loop.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	events     chan inbound

	directory *presence.Directory[*Client]
	store     store.Store

	// typingDebounce suppresses typing relays for a room arriving closer
	// together than the window. Zero forwards every event, matching the
	// reference behavior.
	typingDebounce time.Duration
	lastTyping     map[string]time.Time
}

func NewHub(store store.Store) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan inbound),
		directory:  presence.NewDirectory[*Client](),
		store:      store,
		lastTyping: make(map[string]time.Time),
	}
}

// SetTypingDebounce must be called before Run.
func (h *Hub) SetTypingDebounce(d time.Duration) {
	h.typingDebounce = d
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			if h.directory.Release(client) {
				log.Printf("user %s disconnected", client.username)
				h.broadcastPresence()
			}
		case in := <-h.events:
			h.dispatch(in.client, in.event)
		}
	}
}

func (h *Hub) dispatch(c *Client, ev Event) {
	switch ev.Name {
	case EventIdentify:
		h.handleIdentify(c, ev.Data)
	case EventJoinRoom:
		h.handleJoinRoom(c, ev.Data)
	case EventSendMessage:
		h.handleSendMessage(c, ev.Data)
	case EventMarkAsRead:
		h.handleMarkAsRead(c, ev.Data)
	case EventJoinGroup:
		h.handleJoinGroup(c, ev.Data)
	case EventSendGroupMessage:
		h.handleSendGroupMessage(c, ev.Data)
	case EventTyping:
		h.handleTyping(c, ev.Data)
	default:
		log.Printf("client %s: unknown event %q", c.id, ev.Name)
	}
}

func (h *Hub) handleIdentify(c *Client, data json.RawMessage) {
	var username string
	if err := json.Unmarshal(data, &username); err != nil {
		log.Printf("client %s: invalid identify payload: %v", c.id, err)
		return
	}
	// Last writer wins: identifying a name already bound to another
	// connection orphans that connection without closing it.
	if err := h.directory.Identify(username, c); err != nil {
		log.Printf("client %s: %v", c.id, err)
		return
	}
	c.username = username
	h.broadcastPresence()
}

func (h *Hub) handleJoinRoom(c *Client, data json.RawMessage) {
	var p RoomPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("client %s: invalid joinRoom payload: %v", c.id, err)
		return
	}
	if p.Sender == "" || p.Receiver == "" {
		log.Printf("client %s: joinRoom missing participant", c.id)
		return
	}
	c.rooms[room.Private(p.Sender, p.Receiver)] = true
}

func (h *Hub) handleSendMessage(c *Client, data json.RawMessage) {
	var p MessagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("client %s: invalid sendMessage payload: %v", c.id, err)
		return
	}
	if p.Sender == "" || p.Receiver == "" || p.Text == "" || p.Time == "" {
		log.Printf("client %s: dropping malformed private message", c.id)
		return
	}

	h.persist(&models.Message{Sender: p.Sender, Receiver: p.Receiver, Text: p.Text, Time: p.Time})
	h.broadcastToRoom(room.Private(p.Sender, p.Receiver), c, EventReceiveMessage, p)
}

func (h *Hub) handleMarkAsRead(c *Client, data json.RawMessage) {
	var p RoomPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("client %s: invalid markAsRead payload: %v", c.id, err)
		return
	}
	if p.Sender == "" || p.Receiver == "" {
		log.Printf("client %s: markAsRead missing participant", c.id)
		return
	}

	// The caller read what the other side sent, so the reverse direction is
	// the one flagged.
	if _, err := h.store.MarkConversationRead(p.Receiver, p.Sender); err != nil {
		log.Printf("mark read %s->%s: %v", p.Receiver, p.Sender, err)
		return
	}

	messages, err := h.store.GetConversationFrom(p.Receiver, p.Sender)
	if err != nil {
		// The flags are already flipped; clients stay un-notified until
		// the next interaction.
		log.Printf("read back %s->%s: %v", p.Receiver, p.Sender, err)
		return
	}

	receipt := ReadReceiptPayload{Sender: p.Sender, Receiver: p.Receiver, Messages: messages}
	h.broadcastToRoom(room.Private(p.Sender, p.Receiver), nil, EventReadReceipt, receipt)
}

func (h *Hub) handleJoinGroup(c *Client, data json.RawMessage) {
	var p GroupJoinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("client %s: invalid joinGroup payload: %v", c.id, err)
		return
	}
	if p.GroupID == "" {
		log.Printf("client %s: joinGroup missing group id", c.id)
		return
	}
	// Membership is enforced by the group API, not here.
	c.rooms[room.Group(p.GroupID)] = true
}

func (h *Hub) handleSendGroupMessage(c *Client, data json.RawMessage) {
	var p GroupMessagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("client %s: invalid sendGroupMessage payload: %v", c.id, err)
		return
	}
	if p.Sender == "" || p.Text == "" || p.Time == "" || p.GroupID == "" {
		log.Printf("client %s: dropping malformed group message", c.id)
		return
	}

	h.persist(&models.Message{Sender: p.Sender, Text: p.Text, Time: p.Time, GroupID: p.GroupID})
	h.broadcastToRoom(room.Group(p.GroupID), c, EventReceiveGroupMessage, p)
}

func (h *Hub) handleTyping(c *Client, data json.RawMessage) {
	var p RoomPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("client %s: invalid typing payload: %v", c.id, err)
		return
	}
	if p.Sender == "" || p.Receiver == "" {
		return
	}

	name := room.Private(p.Sender, p.Receiver)
	if h.typingDebounce > 0 {
		if last, ok := h.lastTyping[name]; ok && time.Since(last) < h.typingDebounce {
			return
		}
		h.lastTyping[name] = time.Now()
	}
	h.broadcastToRoom(name, c, EventTyping, p)
}

// persist hands the write to the store without blocking the relay loop. A
// slow or failing store degrades durability, not delivery.
func (h *Hub) persist(m *models.Message) {
	go func() {
		if err := h.store.SaveMessage(m); err != nil {
			log.Printf("save message from %s: %v", m.Sender, err)
		}
	}()
}

// broadcastPresence pushes the online-user list to every connection,
// identified or not.
func (h *Hub) broadcastPresence() {
	frame, ok := encodeEvent(EventOnlineUsers, h.directory.Snapshot())
	if !ok {
		return
	}
	for client := range h.clients {
		h.send(client, frame)
	}
}

// broadcastToRoom delivers an event to every connection subscribed to the
// room. except, when non-nil, is skipped so senders never see their own
// messages echoed back.
func (h *Hub) broadcastToRoom(name string, except *Client, event string, payload interface{}) {
	frame, ok := encodeEvent(event, payload)
	if !ok {
		return
	}
	for client := range h.clients {
		if client == except || !client.rooms[name] {
			continue
		}
		h.send(client, frame)
	}
}

func (h *Hub) send(client *Client, frame []byte) {
	select {
	case client.send <- frame:
	default:
		close(client.send)
		delete(h.clients, client)
	}
}

func encodeEvent(name string, payload interface{}) ([]byte, bool) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("encode %s payload: %v", name, err)
		return nil, false
	}
	frame, err := json.Marshal(Event{Name: name, Data: data})
	if err != nil {
		log.Printf("encode %s: %v", name, err)
		return nil, false
	}
	return frame, true
}
