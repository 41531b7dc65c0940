package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// SimulateLatencyMiddleware delays mutating requests by a jittered interval so
// rendering layers can be tested against backend round-trip times. The engine
// itself stays synchronous; this is purely a presentation affordance.
type SimulateLatencyMiddleware struct {
	base time.Duration
}

func NewSimulateLatencyMiddleware(baseMS int) *SimulateLatencyMiddleware {
	return &SimulateLatencyMiddleware{base: time.Duration(baseMS) * time.Millisecond}
}

func (m *SimulateLatencyMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m == nil || m.base <= 0 {
			return c.Next()
		}
		if c.Method() == fiber.MethodGet {
			return c.Next()
		}

		jitterMS := time.Duration(time.Now().UnixNano()%301) * time.Millisecond
		time.Sleep(m.base + jitterMS)
		return c.Next()
	}
}
