package websockethub

import (
	"context"
	"net/http"
	"sync/atomic"

	"nhooyr.io/websocket"

	"github.com/iotaledger/rbviz/ierrors"
	"github.com/iotaledger/rbviz/log"
	"github.com/iotaledger/rbviz/runtime/options"
)

var (
	// ErrWebsocketServerUnavailable is returned if the hub was not started yet or was shut down.
	ErrWebsocketServerUnavailable = ierrors.New("websocket server unavailable")
	// ErrClientDisconnected is returned if a message is sent to a client that was disconnected.
	ErrClientDisconnected = ierrors.New("client was disconnected")
)

// Hub maintains the set of active clients and broadcasts messages to the clients.
type Hub struct {
	// used Logger instance.
	logger log.Logger

	// the accept options of the websocket per client.
	acceptOptions *websocket.AcceptOptions

	// registered clients (only accessed by the Run loop).
	clients map[*Client]struct{}

	// clientCount is the number of registered clients.
	clientCount atomic.Int32

	// maximum size of queued messages that should be sent to the peer.
	clientSendChannelSize int

	// indicates the max amount of bytes that will be read from a client, i.e. the max message size
	clientReadLimit int64

	// inbound messages from the clients.
	broadcast chan *message

	// register requests from the clients.
	register chan *Client

	// unregister requests from clients.
	unregister chan *Client

	// context of the websocket hub
	ctx context.Context

	// indicates that the websocket hub was shut down
	shutdownFlag atomic.Bool

	// lastClientID holds the ClientID of the last connected client
	lastClientID atomic.Uint32
}

// message is a message that is sent to the broadcast channel.
type message struct {
	data     any
	dontDrop bool
}

// NewHub creates a new Hub that accepts connections once Run was called.
func NewHub(logger log.Logger, opts ...options.Option[Hub]) *Hub {
	h := options.Apply(&Hub{
		logger:                logger,
		acceptOptions:         &websocket.AcceptOptions{},
		clients:               make(map[*Client]struct{}),
		clientSendChannelSize: 100,
		clientReadLimit:       512,
		register:              make(chan *Client, 1),
		unregister:            make(chan *Client, 1),
	}, opts, func(h *Hub) {
		if h.broadcast == nil {
			h.broadcast = make(chan *message, 100)
		}
	})
	h.shutdownFlag.Store(true)

	return h
}

// WithAcceptOptions sets the options used to accept websocket connections.
func WithAcceptOptions(acceptOptions *websocket.AcceptOptions) options.Option[Hub] {
	return func(h *Hub) {
		h.acceptOptions = acceptOptions
	}
}

// WithBroadcastQueueSize sets the number of messages that can be queued for broadcasting.
func WithBroadcastQueueSize(size int) options.Option[Hub] {
	return func(h *Hub) {
		h.broadcast = make(chan *message, size)
	}
}

// WithClientSendChannelSize sets the number of messages that can be queued per client.
func WithClientSendChannelSize(size int) options.Option[Hub] {
	return func(h *Hub) {
		h.clientSendChannelSize = size
	}
}

// WithClientReadLimit sets the max size of messages read from a client.
func WithClientReadLimit(limit int64) options.Option[Hub] {
	return func(h *Hub) {
		h.clientReadLimit = limit
	}
}

// BroadcastMsg sends a message to all clients. Messages are dropped if the queue is full unless dontDrop is set.
func (h *Hub) BroadcastMsg(ctx context.Context, data any, dontDrop ...bool) error {
	if h.shutdownFlag.Load() {
		// hub was already shut down or was not started yet
		return ErrWebsocketServerUnavailable
	}

	msg := &message{data: data, dontDrop: len(dontDrop) > 0 && dontDrop[0]}

	if msg.dontDrop {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-h.ctx.Done():
			return ErrWebsocketServerUnavailable
		case h.broadcast <- msg:
			return nil
		}
	}

	// we need to nest the broadcast into the default case because
	// the select cases are executed in random order if multiple
	// conditions are true at the time of entry in the select case.
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-h.ctx.Done():
		return ErrWebsocketServerUnavailable
	default:
		select {
		case h.broadcast <- msg:
		default:
		}

		return nil
	}
}

// Clients returns the number of websocket clients.
func (h *Hub) Clients() int {
	return int(h.clientCount.Load())
}

// Stopped returns true if the hub is not running.
func (h *Hub) Stopped() bool {
	return h.shutdownFlag.Load()
}

// Run starts the hub and blocks until the context is done.
func (h *Hub) Run(ctx context.Context) {
	// set the hub context so it can be used by the clients
	h.ctx = ctx

	// set the hub as running
	h.shutdownFlag.Store(false)

	for {
		// we need to nest the non-error cases into the default case because
		// the select cases are executed in random order if multiple
		// conditions are true at the time of entry in the select case.
		select {
		case <-ctx.Done():
			h.shutdownAndRemoveAllClients()

			return

		default:
			select {
			case <-ctx.Done():
				h.shutdownAndRemoveAllClients()

				return

			case client := <-h.register:
				h.addClient(client)

			case client := <-h.unregister:
				if _, ok := h.clients[client]; ok {
					h.removeClient(client)
					h.logger.LogDebugf("removed websocket client %d", client.id)
				}

			case msg := <-h.broadcast:
				for client := range h.clients {
					client.enqueue(ctx, msg)
				}
			}
		}
	}
}

// ServeWebsocket handles websocket requests from the peer.
// onConnect gets called when the client was registered.
func (h *Hub) ServeWebsocket(w http.ResponseWriter, r *http.Request, onConnect func(client *Client), onDisconnect func(client *Client)) error {
	if h.shutdownFlag.Load() {
		// hub was already shut down or was not started yet
		return ErrWebsocketServerUnavailable
	}

	conn, err := websocket.Accept(w, r, h.acceptOptions)
	if err != nil {
		h.logger.LogWarnf("accepting websocket connection failed: %s", err)

		return ierrors.Wrap(err, "accepting websocket connection failed")
	}

	return h.Register(newClient(h, conn, onConnect, onDisconnect))
}

// Register adds the client to the hub.
func (h *Hub) Register(client *Client) error {
	select {
	case <-h.ctx.Done():
		return ErrWebsocketServerUnavailable
	case h.register <- client:
		return nil
	}
}

// Unregister removes the client from the hub.
func (h *Hub) Unregister(client *Client) error {
	select {
	case <-h.ctx.Done():
		return ErrWebsocketServerUnavailable
	case h.unregister <- client:
		return nil
	}
}

func (h *Hub) addClient(client *Client) {
	h.clients[client] = struct{}{}
	h.clientCount.Store(int32(len(h.clients)))

	client.start()

	if client.onConnect != nil {
		client.onConnect(client)
	}
}

func (h *Hub) removeClient(client *Client) {
	delete(h.clients, client)
	h.clientCount.Store(int32(len(h.clients)))

	client.stop()

	if client.onDisconnect != nil {
		client.onDisconnect(client)
	}
}

func (h *Hub) shutdownAndRemoveAllClients() {
	h.shutdownFlag.Store(true)

	for client := range h.clients {
		h.removeClient(client)
	}
}
