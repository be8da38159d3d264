package time

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	t.Run("now is utc", func(t *testing.T) {
		assert.Equal(t, time.UTC, p.Now().Location())
	})

	t.Run("since is non-negative", func(t *testing.T) {
		assert.GreaterOrEqual(t, p.Since(p.Now().Add(-time.Second)), core.Second)
	})

	t.Run("with timeout sets deadline", func(t *testing.T) {
		ctx, cancel := p.WithTimeout(context.Background(), core.Minute)
		defer cancel()
		_, ok := ctx.Deadline()
		assert.True(t, ok)
	})

	t.Run("zero timeout keeps parent deadline", func(t *testing.T) {
		ctx, cancel := p.WithTimeout(context.Background(), 0)
		defer cancel()
		_, ok := ctx.Deadline()
		assert.False(t, ok)
		cancel()
		assert.Error(t, ctx.Err())
	})
}
