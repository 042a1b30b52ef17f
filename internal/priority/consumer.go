package priority

import (
	"context"
	"sync"
)

// Direction is the offset applied to an entry's index by Move.
type Direction int

const (
	MoveUp   Direction = -1
	MoveDown Direction = 1
)

// Consumer is an independent surface over the shared ordering. Each consumer
// keeps its own local copy and stays in sync with every other consumer through
// the repository's change broadcasts alone. Consumers never share memory.
type Consumer struct {
	repo        Repository
	limit       int
	notify      func(message string)
	mu          sync.Mutex
	order       []string
	unsubscribe func()
}

// NewConsumer creates a consumer with a display limit (capped at the ordering
// size). notify surfaces success messages to the user and may be nil.
func NewConsumer(repo Repository, limit int, notify func(string)) *Consumer {
	if limit <= 0 || limit > Size() {
		limit = Size()
	}
	return &Consumer{repo: repo, limit: limit, notify: notify}
}

// Activate loads the current ordering and subscribes to change broadcasts.
// Re-loading in response to a broadcast is idempotent, so the consumer also
// receiving its own save's broadcast is harmless.
func (c *Consumer) Activate(ctx context.Context) {
	order := c.repo.Load(ctx)
	c.mu.Lock()
	c.order = order
	c.mu.Unlock()

	c.unsubscribe = c.repo.Subscribe(func() {
		c.refresh()
	})
}

// Close cancels the broadcast subscription.
func (c *Consumer) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Order returns the local copy truncated to the display limit.
func (c *Consumer) Order() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	limit := c.limit
	if limit > len(c.order) {
		limit = len(c.order)
	}
	out := make([]string, limit)
	copy(out, c.order[:limit])
	return out
}

// Move swaps the entry at index with its neighbour in the given direction,
// applies the swap locally first, then saves. A move whose target falls
// outside the list is a no-op: no mutation, no save. Returns the displayed
// ordering after the move.
func (c *Consumer) Move(ctx context.Context, index int, direction Direction) []string {
	c.mu.Lock()
	target := index + int(direction)
	if index < 0 || index >= len(c.order) || target < 0 || target >= len(c.order) {
		c.mu.Unlock()
		return c.Order()
	}
	swapped := make([]string, len(c.order))
	copy(swapped, c.order)
	swapped[index], swapped[target] = swapped[target], swapped[index]
	c.order = swapped
	c.mu.Unlock()

	saved := c.repo.Save(ctx, swapped)
	c.mu.Lock()
	c.order = saved
	c.mu.Unlock()

	if c.notify != nil {
		c.notify("Priority order updated")
	}
	return c.Order()
}

// Reset restores the canonical ordering.
func (c *Consumer) Reset(ctx context.Context) []string {
	saved := c.repo.Reset(ctx)
	c.mu.Lock()
	c.order = saved
	c.mu.Unlock()

	if c.notify != nil {
		c.notify("Priority order restored to default")
	}
	return c.Order()
}

// refresh replaces the local copy after a change broadcast.
func (c *Consumer) refresh() {
	order := c.repo.Load(context.Background())
	c.mu.Lock()
	c.order = order
	c.mu.Unlock()
}
