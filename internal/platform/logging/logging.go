// Package logging builds the service logger and the error sink used by the
// route factory, the polyline decoder and the directions service.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

// New returns a development logger for "development" and a production logger otherwise.
func New(appEnv string) (*zap.Logger, error) {
	if appEnv == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Sink receives one human-readable error message per call.
type Sink interface {
	Error(msg string)
}

type nopSink struct{}

func (nopSink) Error(string) {}

// Nop discards everything. It is the default wherever a Sink is optional.
var Nop Sink = nopSink{}

// OrNop returns s, or Nop when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop
	}
	return s
}

type zapSink struct {
	log *zap.Logger
}

// NewZapSink reports each message at error level.
func NewZapSink(log *zap.Logger) Sink {
	if log == nil {
		return Nop
	}
	return &zapSink{log: log}
}

func (s *zapSink) Error(msg string) {
	s.log.Error(msg)
}

// Collector records messages and optionally forwards them to another sink.
// It is safe for concurrent use.
type Collector struct {
	mu       sync.Mutex
	messages []string
	next     Sink
}

func NewCollector(next Sink) *Collector {
	return &Collector{next: OrNop(next)}
}

func (c *Collector) Error(msg string) {
	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.mu.Unlock()
	c.next.Error(msg)
}

func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}

// Has reports whether msg was recorded verbatim.
func (c *Collector) Has(msg string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.messages {
		if m == msg {
			return true
		}
	}
	return false
}
