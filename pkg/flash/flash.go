package flash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
	"travelbuddy/pkg/cache"
	"travelbuddy/pkg/idgen"
	"travelbuddy/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Notice is a one-shot message shown on the next rendered page.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

const (
	CookieName = "tb_flash"
	keyPrefix  = "flash:"

	ctxSessionKey = "flash_session"
	ctxPendingKey = "flash_pending"
)

// Store keeps pending notices per browser session in a cache.
type Store struct {
	cache  cache.Cache
	ids    idgen.Generator
	ttl    time.Duration
	logger logger.Logger
}

func NewStore(c cache.Cache, ids idgen.Generator, ttlMinutes int, log logger.Logger) *Store {
	return &Store{
		cache:  c,
		ids:    ids,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		logger: log,
	}
}

func (s *Store) Add(ctx context.Context, sessionID string, n Notice) error {
	pending, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	pending = append(pending, n)

	raw, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("flash: marshal notices: %w", err)
	}
	if err := s.cache.Set(ctx, keyPrefix+sessionID, string(raw), s.ttl); err != nil {
		return fmt.Errorf("flash: save notices: %w", err)
	}
	return nil
}

// Pop returns and clears every pending notice for the session.
func (s *Store) Pop(ctx context.Context, sessionID string) ([]Notice, error) {
	pending, err := s.load(ctx, sessionID)
	if err != nil || len(pending) == 0 {
		return pending, err
	}
	if err := s.cache.Del(ctx, keyPrefix+sessionID); err != nil {
		return pending, fmt.Errorf("flash: clear notices: %w", err)
	}
	return pending, nil
}

func (s *Store) load(ctx context.Context, sessionID string) ([]Notice, error) {
	raw, err := s.cache.Get(ctx, keyPrefix+sessionID)
	if errors.Is(err, cache.ErrMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("flash: load notices: %w", err)
	}

	var pending []Notice
	if err := json.Unmarshal([]byte(raw), &pending); err != nil {
		s.logger.Warn("discarding corrupt flash payload", logger.Field{Key: "err", Value: err})
		return nil, nil
	}
	return pending, nil
}

// Middleware makes sure every request carries a flash session id.
func (s *Store) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(CookieName)
		if err != nil || sessionID == "" {
			sessionID = s.ids.GenerateKey()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, sessionID, 0, "/", "", false, true)
		}
		c.Set(ctxSessionKey, sessionID)
		c.Next()
	}
}

// Push queues a notice for the current session. Notices pushed during a
// request that renders a page directly are shown on that page.
func (s *Store) Push(c *gin.Context, level Level, message string) {
	n := Notice{Level: level, Message: message}

	pending, _ := c.Get(ctxPendingKey)
	list, _ := pending.([]Notice)
	c.Set(ctxPendingKey, append(list, n))

	sessionID := c.GetString(ctxSessionKey)
	if sessionID == "" {
		return
	}
	if err := s.Add(c.Request.Context(), sessionID, n); err != nil {
		s.logger.Error("failed to store flash notice", logger.Field{Key: "err", Value: err})
	}
}

// Consume drains every notice for the current session.
func (s *Store) Consume(c *gin.Context) []Notice {
	sessionID := c.GetString(ctxSessionKey)
	if sessionID == "" {
		pending, _ := c.Get(ctxPendingKey)
		list, _ := pending.([]Notice)
		return list
	}

	notices, err := s.Pop(c.Request.Context(), sessionID)
	if err != nil {
		s.logger.Error("failed to read flash notices", logger.Field{Key: "err", Value: err})
		pending, _ := c.Get(ctxPendingKey)
		list, _ := pending.([]Notice)
		return list
	}
	return notices
}
