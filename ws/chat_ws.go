package ws

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/Silvia-kc/Project-Germany/services"
	"github.com/Silvia-kc/Project-Germany/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// InboxRoom subscribes a client to events for every listing. The seller
// inbox page uses it; buyer pages subscribe to a single car id.
const InboxRoom uint = 0

const sendBuffer = 16

// Client is one live subscription. Events are pushed to a buffered
// channel; a client that can't keep up is dropped rather than blocking
// the fan-out.
type Client struct {
	ID   string
	Room uint
	send chan services.ChatEvent
}

// Events is the stream of broadcasts delivered to this client.
func (c *Client) Events() <-chan services.ChatEvent {
	return c.send
}

// Hub is the realtime broadcaster: a mutex-guarded subscriber set keyed
// by room (= car id). Delivery is fire-and-forget; there is no backlog,
// no ack, and a client subscribing after Publish never sees the event.
type Hub struct {
	mu      sync.Mutex
	clients map[uint]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[uint]map[*Client]bool),
	}
}

// Subscribe registers a client for one room. Events published from this
// moment on are delivered; nothing is replayed.
func (h *Hub) Subscribe(room uint) *Client {
	c := &Client{
		ID:   uuid.NewString(),
		Room: room,
		send: make(chan services.ChatEvent, sendBuffer),
	}

	h.mu.Lock()
	if h.clients[room] == nil {
		h.clients[room] = make(map[*Client]bool)
	}
	h.clients[room][c] = true
	h.mu.Unlock()
	return c
}

// Unsubscribe removes the client and closes its event channel.
func (h *Hub) Unsubscribe(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c.Room][c]; ok {
		delete(h.clients[c.Room], c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Publish delivers ev to every subscriber of its car's room and to the
// inbox room, including whichever connection triggered it. A full send
// buffer drops the event for that client.
func (h *Hub) Publish(ev services.ChatEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.deliver(ev, ev.CarID)
	if ev.CarID != InboxRoom {
		h.deliver(ev, InboxRoom)
	}
}

func (h *Hub) deliver(ev services.ChatEvent, room uint) {
	for c := range h.clients[room] {
		select {
		case c.send <- ev:
		default:
			log.Printf("ws client %s too slow, dropping event", c.ID)
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsFrame is both the inbound sendMessage and outbound receiveMessage
// wire shape.
type wsFrame struct {
	Event  string `json:"event"`
	CarID  uint   `json:"carId"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Handler serves the WS endpoint and routes inbound frames through the
// chat service, so the hub only ever broadcasts persisted messages.
type Handler struct {
	hub     *Hub
	service *services.ChatService
}

func NewHandler(hub *Hub, service *services.ChatService) *Handler {
	return &Handler{hub: hub, service: service}
}

// HandleWebSocket upgrades GET /ws/chat?carId=N. carId omitted or 0
// subscribes to the all-listings inbox.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	var room uint
	if s := c.Query("carId"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid carId"})
			return
		}
		room = uint(v)
	}

	username := utils.CurrentUsername(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	client := h.hub.Subscribe(room)
	go h.writePump(conn, client)
	h.readPump(conn, client, username)
}

// readPump consumes sendMessage frames until the connection drops. Each
// frame goes through ChatService.Send: persist first, broadcast after.
// Failed frames are logged and skipped; the stream carries no error
// replies.
func (h *Handler) readPump(conn *websocket.Conn, client *Client, username string) {
	defer h.hub.Unsubscribe(client)

	for {
		var frame wsFrame
		if err := conn.ReadJSON(&frame); err != nil {
			log.Printf("ws read error: %v", err)
			return
		}
		if frame.Event != "sendMessage" {
			continue
		}

		sender := frame.Sender
		if sender == "" {
			sender = username
		}

		if _, err := h.service.Send(context.Background(), frame.CarID, sender, frame.Text); err != nil {
			log.Printf("ws send error: %v", err)
		}
	}
}

// writePump drains the client's event channel to the socket. A write
// error closes the connection; readPump then unsubscribes the client.
func (h *Handler) writePump(conn *websocket.Conn, client *Client) {
	defer conn.Close()

	for ev := range client.Events() {
		frame := wsFrame{
			Event:  "receiveMessage",
			CarID:  ev.CarID,
			Sender: ev.Sender,
			Text:   ev.Text,
		}
		if err := conn.WriteJSON(frame); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
	}
}
