package controller

import (
	"os"
	"time"
)

const DefaultEnvKey = "APP_ENV"

type Controller struct {
	envKey    string
	lookupEnv func(string) (string, bool)
	now       func() time.Time
}

type Option func(*Controller)

// WithEnvKey sets the variable holding the deployment environment tag.
func WithEnvKey(key string) Option {
	return func(c *Controller) {
		c.envKey = key
	}
}

func WithEnvLookup(fn func(string) (string, bool)) Option {
	return func(c *Controller) {
		c.lookupEnv = fn
	}
}

func WithClock(fn func() time.Time) Option {
	return func(c *Controller) {
		c.now = fn
	}
}

func (c *Controller) IsValid() error {
	switch {
	case c.envKey == "":
		return ErrEmptyEnvKey
	case c.lookupEnv == nil:
		return ErrNilEnvLookup
	case c.now == nil:
		return ErrNilClock
	default:
		return nil
	}
}

func New(opts ...Option) (*Controller, error) {
	c := &Controller{
		envKey:    DefaultEnvKey,
		lookupEnv: os.LookupEnv,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.IsValid(); err != nil {
		return nil, err
	}
	return c, nil
}
