package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client is one live websocket session. The hub loop owns username and rooms;
// the read and write pumps only touch conn and send.
type Client struct {
	id       string
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	username string
	rooms    map[string]bool
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:    uuid.NewString(),
		hub:   hub,
		conn:  conn,
		send:  make(chan []byte, 256),
		rooms: make(map[string]bool),
	}
}

// ServeWs upgrades an HTTP request to a websocket connection and attaches it
// to the hub.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}

	client := newClient(hub, conn)
	hub.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump forwards inbound frames to the hub loop. Frames that do not parse
// as an event envelope are dropped; a read error ends the session.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			break
		}
		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			log.Printf("client %s: malformed frame: %v", c.id, err)
			continue
		}
		c.hub.events <- inbound{client: c, event: ev}
	}
}

// writePump drains the send channel to the socket. The hub closes the channel
// when the client is dropped, which ends the loop.
func (c *Client) writePump() {
	defer c.conn.Close()

	for frame := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
