// Package api exposes an instrumented red-black tree via HTTP. Every mutation answers with the DOT renderings of all
// intermediate steps, which are also broadcast to the connected websocket clients.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/spf13/cast"

	"github.com/iotaledger/rbviz/ds/rbtree"
	"github.com/iotaledger/rbviz/ds/rbtree/dot"
	"github.com/iotaledger/rbviz/ierrors"
	"github.com/iotaledger/rbviz/log"
	"github.com/iotaledger/rbviz/runtime/options"
	"github.com/iotaledger/rbviz/runtime/syncutils"
	"github.com/iotaledger/rbviz/web/basicauth"
	"github.com/iotaledger/rbviz/web/websockethub"
)

// Server serves the API of a single tree.
type Server struct {
	// tree is the tree that is manipulated by the API.
	tree *rbtree.Tree[int]

	// recorder collects the renderings of the steps of the current operation.
	recorder *dot.Recorder[int]

	// mutex serializes all access to the tree and the recorder.
	mutex syncutils.Mutex

	// hub broadcasts the results of all mutations (optional).
	hub *websockethub.Hub

	// basicAuth protects the mutating endpoints (optional).
	basicAuth *basicauth.BasicAuth

	// readHeaderTimeout is the time allowed to read the request headers.
	readHeaderTimeout time.Duration

	logger log.Logger
}

// New creates a new Server with an empty tree.
func New(logger log.Logger, opts ...options.Option[Server]) *Server {
	return options.Apply(&Server{
		recorder:          dot.NewRecorder[int](),
		readHeaderTimeout: 3 * time.Second,
		logger:            logger,
	}, opts, func(s *Server) {
		s.tree = rbtree.NewOrdered[int](rbtree.WithObserver[int](s.recorder, &traceObserver{Logger: logger.NewChildLogger("Tree")}))
		s.recorder.Attach(s.tree)
	})
}

// WithHub sets the websocket hub that the results of all mutations are broadcast to.
func WithHub(hub *websockethub.Hub) options.Option[Server] {
	return func(s *Server) {
		s.hub = hub
	}
}

// WithBasicAuth protects the mutating endpoints with the given credentials.
func WithBasicAuth(basicAuth *basicauth.BasicAuth) options.Option[Server] {
	return func(s *Server) {
		s.basicAuth = basicAuth
	}
}

// WithReadHeaderTimeout sets the time allowed to read the request headers.
func WithReadHeaderTimeout(timeout time.Duration) options.Option[Server] {
	return func(s *Server) {
		s.readHeaderTimeout = timeout
	}
}

// Seed inserts the keys without recording their steps.
func (s *Server) Seed(keys ...int) (inserted int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, key := range keys {
		if s.tree.Insert(key) {
			inserted++
		}
	}
	s.recorder.Drain()

	return inserted
}

// State returns the rendering of the current tree.
func (s *Server) State() *Response {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return newResponse("", []string{dot.Render(s.tree)})
}

// Graph returns the DOT document of the current tree.
func (s *Server) Graph() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return dot.Render(s.tree)
}

// Insert adds the key to the tree and returns the renderings of all steps.
func (s *Server) Insert(ctx context.Context, key int) *Response {
	return s.mutate(ctx, func() string {
		if !s.tree.Insert(key) {
			return commentKeyExists
		}

		return commentInserted
	})
}

// Delete removes the key from the tree and returns the renderings of all steps.
func (s *Server) Delete(ctx context.Context, key int) *Response {
	return s.mutate(ctx, func() string {
		if !s.tree.Delete(key) {
			return commentKeyNotFound
		}

		return commentDeleted
	})
}

// Handler returns the http.Handler that serves all endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("GET /api/graph.dot", s.handleGraph)
	mux.Handle("POST /api/insert", s.protect(s.keyHandler(s.Insert)))
	mux.Handle("POST /api/delete", s.protect(s.keyHandler(s.Delete)))

	if s.hub != nil {
		mux.HandleFunc("GET /api/ws", s.handleWebsocket)
	}

	return mux
}

// ListenAndServe serves the API on the bind address until the context is done.
func (s *Server) ListenAndServe(ctx context.Context, bindAddress string) error {
	server := &http.Server{
		Addr:              bindAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		//nolint:contextcheck // the parent context is already done
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.LogWarnf("shutting down the API server failed: %s", err)
		}
	}()

	s.logger.LogInfof("API server listening on http://%s", bindAddress)

	if err := server.ListenAndServe(); err != nil && !ierrors.Is(err, http.ErrServerClosed) {
		return ierrors.Wrap(err, "API server failed")
	}

	<-shutdownDone

	return nil
}

// mutate runs the operation and collects the renderings of its steps.
func (s *Server) mutate(ctx context.Context, operation func() (comment string)) *Response {
	s.mutex.Lock()
	response := newResponse(operation(), s.recorder.Drain())
	s.mutex.Unlock()

	if s.hub != nil {
		if err := s.hub.BroadcastMsg(ctx, response); err != nil && !ierrors.Is(err, websockethub.ErrWebsocketServerUnavailable) {
			s.logger.LogWarnf("broadcasting the result failed: %s", err)
		}
	}

	return response
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.State())
}

func (s *Server) handleGraph(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", contentTypeGraphviz)

	if _, err := w.Write([]byte(s.Graph())); err != nil {
		s.logger.LogDebugf("writing the graph failed: %s", err)
	}
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	if err := s.hub.ServeWebsocket(w, r, func(client *websockethub.Client) {
		if err := client.Send(client.Context(), s.State()); err != nil {
			client.LogDebugf("sending the initial state failed: %s", err)
		}
	}, nil); err != nil {
		if ierrors.Is(err, websockethub.ErrWebsocketServerUnavailable) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		}

		s.logger.LogDebugf("serving websocket failed: %s", err)
	}
}

// keyHandler parses the key of the request and passes it to the operation.
func (s *Server) keyHandler(operation func(ctx context.Context, key int) *Response) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawKey := r.URL.Query().Get("key")

		key, err := cast.ToIntE(rawKey)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, &Response{
				OK:      false,
				Comment: ierrors.Wrapf(err, "invalid key %q", rawKey).Error(),
				Updates: make([]string, 0),
			})

			return
		}

		s.writeJSON(w, http.StatusOK, operation(r.Context(), key))
	})
}

func (s *Server) protect(handler http.Handler) http.Handler {
	if s.basicAuth == nil {
		return handler
	}

	return s.basicAuth.Protect(basicAuthRealm, handler)
}

func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, response *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.LogDebugf("writing the response failed: %s", err)
	}
}
