package websockethub

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/iotaledger/rbviz/log"
)

const (
	// time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// time allowed to read the next pong message from the peer.
	pongWait = 5 * time.Second

	// send pings to peer with this period.
	pingPeriod = 30 * time.Second
)

// ClientID is the ID of a client.
type ClientID uint32

// Client is a middleman between the hub and the websocket connection.
type Client struct {
	log.Logger

	// the id of the client.
	id ClientID

	// the websocket hub the client is connected to.
	hub *Hub

	// the websocket connection.
	conn *websocket.Conn

	// a context which is canceled when the ping times out and the client should be dropped.
	ctx    context.Context
	cancel context.CancelFunc

	// a channel which is closed when the websocket client is disconnected.
	exitSignal chan struct{}

	// buffered channel of outbound messages.
	sendChan chan any

	// a channel which is closed when the writePump of the client exited.
	// this is used signal the hub to not send messages to sendChan anymore.
	sendChanClosed chan struct{}

	// onConnect gets called when the client was registered
	onConnect func(*Client)

	// onDisconnect gets called when the client was disconnected
	onDisconnect func(*Client)

	// shutdownWaitGroup is used wait until writePump, readPump and keepAlive stopped
	shutdownWaitGroup sync.WaitGroup

	// indicates that the client was shut down
	shutdownFlag atomic.Bool
}

func newClient(hub *Hub, conn *websocket.Conn, onConnect func(client *Client), onDisconnect func(client *Client)) *Client {
	ctx, cancel := context.WithCancel(hub.ctx)

	clientID := ClientID(hub.lastClientID.Add(1))

	return &Client{
		Logger:         hub.logger.NewChildLogger("client", true),
		id:             clientID,
		hub:            hub,
		conn:           conn,
		ctx:            ctx,
		cancel:         cancel,
		exitSignal:     make(chan struct{}),
		sendChan:       make(chan any, hub.clientSendChannelSize),
		sendChanClosed: make(chan struct{}),
		onConnect:      onConnect,
		onDisconnect:   onDisconnect,
	}
}

// ID returns the id of the client.
func (c *Client) ID() ClientID {
	return c.id
}

// Context returns the client context which is canceled when the ping times out and the client should be dropped.
func (c *Client) Context() context.Context {
	return c.ctx
}

// Send sends a message to the client. The message is dropped if the send queue of the client is full.
func (c *Client) Send(ctx context.Context, msg any) error {
	if c.hub.Stopped() {
		// hub was already shut down
		return ErrWebsocketServerUnavailable
	}

	if c.shutdownFlag.Load() {
		// client was already shutdown
		return ErrClientDisconnected
	}

	select {
	case <-c.ctx.Done():
		return c.ctx.Err()
	case <-ctx.Done():
		return ctx.Err()
	case <-c.exitSignal:
		return ErrClientDisconnected
	case <-c.sendChanClosed:
		return ErrClientDisconnected
	default:
		select {
		case c.sendChan <- msg:
		default:
		}

		return nil
	}
}

// start launches the goroutines that serve the connection.
func (c *Client) start() {
	c.shutdownWaitGroup.Add(3)

	go c.writePump()
	go c.readPump()
	go c.keepAlive()
}

// stop signals the goroutines to exit and waits until they did.
func (c *Client) stop() {
	close(c.exitSignal)

	// wait until writePump, readPump and keepAlive finished
	c.shutdownWaitGroup.Wait()

	// drain the send channel
	for {
		select {
		case <-c.sendChan:
		default:
			return
		}
	}
}

// enqueue hands a broadcast message to the client. It is called by the Run loop of the hub only.
func (c *Client) enqueue(ctx context.Context, msg *message) {
	// we need to nest the sendChan into the default case because
	// the select cases are executed in random order if multiple
	// conditions are true at the time of entry in the select case.
	select {
	case <-ctx.Done():
	case <-c.exitSignal:
	case <-c.sendChanClosed:
	default:
		if msg.dontDrop {
			select {
			case <-ctx.Done():
			case <-c.exitSignal:
			case <-c.sendChanClosed:
			case c.sendChan <- msg.data:
			}

			return
		}

		select {
		case c.sendChan <- msg.data:
		default:
		}
	}
}

// keepAlive sends ping messages to the client and waits for pong responses.
// if no pong response is received in time, the client context is canceled.
func (c *Client) keepAlive() {
	pingTicker := time.NewTicker(pingPeriod)

	defer func() {
		pingTicker.Stop()

		// always cancel the client context if we exit this function to clean up the client
		c.cancel()

		c.shutdownWaitGroup.Done()
	}()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-c.exitSignal:
			return
		case <-pingTicker.C:
			pongCtx, pongCancel := context.WithTimeout(c.ctx, pongWait)
			err := c.conn.Ping(pongCtx)
			pongCancel()

			if err != nil {
				// failed to send ping or receive pong => client seems to be unhealthy
				c.LogWarnf("websocket ping failed: %s", err)
				c.unregister()

				return
			}
		}
	}
}

// readPump reads (and discards) incoming messages which is required to process the pong answers to the pings of
// keepAlive.
//
// at most one reader per websocket connection is allowed.
func (c *Client) readPump() {
	defer func() {
		c.unregister()
		c.shutdownWaitGroup.Done()
	}()

	c.conn.SetReadLimit(c.hub.clientReadLimit)

	for {
		if _, _, err := c.conn.Read(c.ctx); err != nil {
			if status := websocket.CloseStatus(err); status == websocket.StatusGoingAway || status == websocket.StatusAbnormalClosure {
				c.LogDebugf("websocket read failed: %s", err)
			}

			return
		}
	}
}

// writePump pumps messages from the hub to the websocket connection.
//
// at most one writer per websocket connection is allowed.
func (c *Client) writePump() {
	defer func() {
		// signal the hub to not send messages to sendChan anymore
		close(c.sendChanClosed)

		// mark the client as shutdown
		c.shutdownFlag.Store(true)

		c.unregister()

		// close the websocket connection
		if err := c.conn.Close(websocket.StatusNormalClosure, ""); err != nil {
			c.LogDebugf("websocket closing error: %s", err)
		}

		c.cancel()
		c.shutdownWaitGroup.Done()
	}()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-c.exitSignal:
			return
		case msg := <-c.sendChan:
			ctx, cancel := context.WithTimeout(c.ctx, writeWait)
			err := wsjson.Write(ctx, c.conn, msg)
			cancel()

			if err != nil {
				c.LogWarnf("websocket write failed: %s", err)

				return
			}
		}
	}
}

// unregister asks the hub to remove the client unless the removal is already in progress.
func (c *Client) unregister() {
	select {
	case <-c.exitSignal:
		// the hub closed the channel
	default:
		go func() {
			_ = c.hub.Unregister(c)
		}()
	}
}
