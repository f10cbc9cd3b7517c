package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/entrext/companion/internal/pkg/config"
)

// Session keys used across controllers.
const (
	KeyWaitlistEmail = "waitlist_email"
	KeySelectedPlan  = "selected_plan"
)

var sessionStore *session.Store

// NewSessionStore creates the Redis-backed session store. Sessions carry
// only ephemeral UI state (joined-waitlist flag, last selected plan); all
// persisted truth lives in the database.
func NewSessionStore(cfg config.Config) *session.Store {
	storage := redis.New(redis.Config{
		Host:     cfg.CacheHost,
		Port:     cfg.CachePort,
		Password: cfg.CachePassword,
		Database: 1, // Separate database for sessions
		Reset:    false,
	})

	sessionStore = session.New(session.Config{
		Storage:        storage,
		CookieHTTPOnly: true,
		Expiration:     time.Hour * 1,
		KeyLookup:      "cookie:session_id",
	})

	return sessionStore
}

// GetSessionStore returns the session store
func GetSessionStore() *session.Store {
	return sessionStore
}

// SetSessionValue stores a single value in the current session
func SetSessionValue(c *fiber.Ctx, key string, value interface{}) error {
	store := GetSessionStore()
	if store == nil {
		return fiber.ErrInternalServerError
	}
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(key, value)
	return sess.Save()
}

// GetSessionValue reads a string value from the current session
func GetSessionValue(c *fiber.Ctx, key string) string {
	store := GetSessionStore()
	if store == nil {
		return ""
	}
	sess, err := store.Get(c)
	if err != nil {
		return ""
	}
	if v, ok := sess.Get(key).(string); ok {
		return v
	}
	return ""
}
