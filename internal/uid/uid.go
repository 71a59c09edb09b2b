// Package uid issues globally unique external order identifiers.
package uid

import (
	"sync"

	"github.com/google/uuid"
)

// Generator produces identifiers that are unique for the process lifetime.
// Generate is safe for concurrent use.
type Generator interface {
	Generate() string
}

type uuidGenerator struct{}

func (uuidGenerator) Generate() string {
	return uuid.NewString()
}

// NewGenerator returns a random-UUID backed generator. Services take a
// Generator by injection so tests can substitute deterministic ones.
func NewGenerator() Generator {
	return uuidGenerator{}
}

var (
	defaultGen  Generator
	defaultOnce sync.Once
)

// Default returns the shared process-wide generator, created lazily on
// first use. Only creation is synchronized; Generate itself needs no lock.
func Default() Generator {
	defaultOnce.Do(func() {
		defaultGen = NewGenerator()
	})
	return defaultGen
}
