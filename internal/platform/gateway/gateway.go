package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/oklog/ulid/v2"

	"github.com/Timothyfranx/ultimatebosu/internal/config"
	"github.com/Timothyfranx/ultimatebosu/internal/domain"
)

// Handler receives the inbound platform events.
type Handler interface {
	HandleMessage(ctx context.Context, ev domain.MessageEvent) error
	HandleRoleGrant(ctx context.Context, ev domain.RoleGrantEvent) error
	HandleMemberRemove(ctx context.Context, ev domain.MemberRemoveEvent) error
}

// envelope is the wire frame in both directions. Commands carry a
// correlation id; the matching ack echoes it back.
type envelope struct {
	Op    string          `json:"op"`
	ID    string          `json:"id,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

const (
	opMessage      = "message"
	opRoleGrant    = "role_grant"
	opMemberRemove = "member_remove"
	opAck          = "ack"

	opSendMessage   = "send_message"
	opCreateChannel = "create_channel"
	opDeleteChannel = "delete_channel"
	opChannelExists = "channel_exists"
	opIsMember      = "is_member"
	opHasRole       = "has_role"
	opListMembers   = "list_members"
)

// Gateway is the websocket client side of the chat platform connection.
// It satisfies the Platform interface the tracker services depend on and
// feeds inbound events to a Handler.
type Gateway struct {
	cfg     config.GatewayConfig
	handler Handler
	logger  *slog.Logger
	entropy *ulid.MonotonicEntropy

	mu      sync.Mutex
	conn    *websocket.Conn
	pending map[string]chan envelope

	readyOnce sync.Once
	ready     chan struct{}
}

func New(cfg config.GatewayConfig, logger *slog.Logger) *Gateway {
	return &Gateway{
		cfg:     cfg,
		logger:  logger.With("component", "gateway"),
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		pending: make(map[string]chan envelope),
		ready:   make(chan struct{}),
	}
}

// Ready is closed once the first connection is established.
func (g *Gateway) Ready() <-chan struct{} { return g.ready }

// SetHandler attaches the event consumer. The router depends on the
// gateway as its Platform, so the handler is bound after construction.
// Must be called before Run.
func (g *Gateway) SetHandler(h Handler) {
	g.handler = h
}

// Run dials the platform and pumps inbound frames until ctx is canceled
// or the connection drops. The caller owns reconnection policy.
func (g *Gateway) Run(ctx context.Context) error {
	conn, _, err := websocket.Dial(ctx, g.cfg.URL, &websocket.DialOptions{
		HTTPHeader: http.Header{
			"Authorization": []string{"Bearer " + g.cfg.Token},
		},
	})
	if err != nil {
		return fmt.Errorf("dial gateway: %w", err)
	}
	conn.SetReadLimit(1 << 20)

	g.mu.Lock()
	g.conn = conn
	g.mu.Unlock()
	g.readyOnce.Do(func() { close(g.ready) })

	defer func() {
		g.mu.Lock()
		g.conn = nil
		for id, ch := range g.pending {
			close(ch)
			delete(g.pending, id)
		}
		g.mu.Unlock()
		conn.Close(websocket.StatusNormalClosure, "shutting down")
	}()

	g.logger.Info("gateway connected", "url", g.cfg.URL)

	for {
		var env envelope
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("gateway read: %w", err)
		}
		if err := json.Unmarshal(data, &env); err != nil {
			g.logger.Warn("malformed frame dropped", "error", err)
			continue
		}
		g.dispatch(ctx, env)
	}
}

func (g *Gateway) dispatch(ctx context.Context, env envelope) {
	if env.Op == opAck {
		g.settleAck(env)
		return
	}

	// Handlers reply through this same connection and block on acks only
	// the read loop can deliver. Events run off the loop so it stays free
	// to pump them.
	go g.handleEvent(ctx, env)
}

func (g *Gateway) settleAck(env envelope) {
	g.mu.Lock()
	ch, ok := g.pending[env.ID]
	if ok {
		delete(g.pending, env.ID)
	}
	g.mu.Unlock()
	if ok {
		ch <- env
	}
}

func (g *Gateway) handleEvent(ctx context.Context, env envelope) {
	if g.handler == nil {
		g.logger.Warn("event dropped, no handler bound", "op", env.Op)
		return
	}

	var err error
	switch env.Op {
	case opMessage:
		var ev domain.MessageEvent
		if err = json.Unmarshal(env.Data, &ev); err == nil {
			err = g.handler.HandleMessage(ctx, ev)
		}
	case opRoleGrant:
		var ev domain.RoleGrantEvent
		if err = json.Unmarshal(env.Data, &ev); err == nil {
			err = g.handler.HandleRoleGrant(ctx, ev)
		}
	case opMemberRemove:
		var ev domain.MemberRemoveEvent
		if err = json.Unmarshal(env.Data, &ev); err == nil {
			err = g.handler.HandleMemberRemove(ctx, ev)
		}
	default:
		g.logger.Debug("unknown op ignored", "op", env.Op)
		return
	}
	if err != nil {
		g.logger.Error("event handling failed", "op", env.Op, "error", err)
	}
}

// call sends one command frame and waits for its ack.
func (g *Gateway) call(ctx context.Context, op string, payload, result any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", op, err)
	}

	g.mu.Lock()
	conn := g.conn
	if conn == nil {
		g.mu.Unlock()
		return errors.New("gateway not connected")
	}
	id := ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
	ch := make(chan envelope, 1)
	g.pending[id] = ch
	g.mu.Unlock()

	frame, err := json.Marshal(envelope{Op: op, ID: id, Data: data})
	if err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
	defer cancel()

	if err := conn.Write(callCtx, websocket.MessageText, frame); err != nil {
		g.mu.Lock()
		delete(g.pending, id)
		g.mu.Unlock()
		return fmt.Errorf("write %s: %w", op, err)
	}

	select {
	case <-callCtx.Done():
		g.mu.Lock()
		delete(g.pending, id)
		g.mu.Unlock()
		return fmt.Errorf("%s: %w", op, callCtx.Err())
	case ack, ok := <-ch:
		if !ok {
			return errors.New("gateway connection lost")
		}
		if ack.Error != "" {
			return fmt.Errorf("%s: %s", op, ack.Error)
		}
		if result != nil && len(ack.Data) > 0 {
			if err := json.Unmarshal(ack.Data, result); err != nil {
				return fmt.Errorf("decode %s ack: %w", op, err)
			}
		}
		return nil
	}
}

func (g *Gateway) SendMessage(ctx context.Context, resourceID int64, text string) error {
	return g.call(ctx, opSendMessage, map[string]any{
		"resource_id": resourceID,
		"text":        text,
	}, nil)
}

func (g *Gateway) CreatePrivateResource(ctx context.Context, ownerExternalID int64, name string) (int64, error) {
	var result struct {
		ResourceID int64 `json:"resource_id"`
	}
	err := g.call(ctx, opCreateChannel, map[string]any{
		"owner_id": ownerExternalID,
		"name":     name,
	}, &result)
	return result.ResourceID, err
}

func (g *Gateway) DeleteResource(ctx context.Context, resourceID int64, reason string) error {
	return g.call(ctx, opDeleteChannel, map[string]any{
		"resource_id": resourceID,
		"reason":      reason,
	}, nil)
}

func (g *Gateway) ResourceExists(ctx context.Context, resourceID int64) (bool, error) {
	var result struct {
		Exists bool `json:"exists"`
	}
	err := g.call(ctx, opChannelExists, map[string]any{
		"resource_id": resourceID,
	}, &result)
	return result.Exists, err
}

func (g *Gateway) IsMember(ctx context.Context, externalID int64) (bool, error) {
	var result struct {
		Member bool `json:"member"`
	}
	err := g.call(ctx, opIsMember, map[string]any{
		"member_id": externalID,
	}, &result)
	return result.Member, err
}

func (g *Gateway) HasRole(ctx context.Context, externalID int64, role string) (bool, error) {
	var result struct {
		HasRole bool `json:"has_role"`
	}
	err := g.call(ctx, opHasRole, map[string]any{
		"member_id": externalID,
		"role":      role,
	}, &result)
	return result.HasRole, err
}

func (g *Gateway) ListMembers(ctx context.Context) ([]int64, error) {
	var result struct {
		Members []int64 `json:"members"`
	}
	err := g.call(ctx, opListMembers, struct{}{}, &result)
	return result.Members, err
}
