package chat

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"cleanhurghada/models"

	"github.com/go-redis/redis/v8"
)

const (
	sessionPrefix = "chat:session:"
	orderPrefix   = "chat:order:"
	replyPrefix   = "chat:reply:"
)

// replyLockTTL bounds how long a reply lock can outlive its owner, so a
// crashed worker can never wedge a conversation.
const replyLockTTL = 2 * time.Minute

// SessionStore keeps chat sessions in Redis with a sliding TTL. Sessions are
// the only state this service holds; when the TTL lapses, the conversation,
// its draft booking and its widget state are gone.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	data, err := s.client.Get(ctx, sessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.ChatSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionStore) Save(ctx context.Context, session *models.ChatSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionPrefix+session.ID, b, s.ttl).Err()
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionPrefix+sessionID).Err()
}

// IndexOrder maps a Paymob order id to its session so the payment callback
// can find the conversation it belongs to.
func (s *SessionStore) IndexOrder(ctx context.Context, orderID int64, sessionID string) error {
	return s.client.Set(ctx, orderPrefix+strconv.FormatInt(orderID, 10), sessionID, s.ttl).Err()
}

func (s *SessionStore) SessionForOrder(ctx context.Context, orderID int64) (string, error) {
	sessionID, err := s.client.Get(ctx, orderPrefix+strconv.FormatInt(orderID, 10)).Result()
	if err == redis.Nil {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *SessionStore) DropOrder(ctx context.Context, orderID int64) error {
	return s.client.Del(ctx, orderPrefix+strconv.FormatInt(orderID, 10)).Err()
}

// AcquireReplyLock marks an assistant reply in flight for the session. The
// lock is a single SETNX, so of two concurrent sends exactly one wins.
func (s *SessionStore) AcquireReplyLock(ctx context.Context, sessionID string) (bool, error) {
	return s.client.SetNX(ctx, replyPrefix+sessionID, "1", replyLockTTL).Result()
}

// ReleaseReplyLock frees the session for the next send. It deliberately runs
// on the background context: the request that took the lock may already be
// canceled, and an unreleased lock locks the conversation out.
func (s *SessionStore) ReleaseReplyLock(sessionID string) error {
	return s.client.Del(context.Background(), replyPrefix+sessionID).Err()
}
