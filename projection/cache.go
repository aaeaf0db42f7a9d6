package projection

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/frustum/glm"
)

// Cache memoizes built matrices by their parameters. It is safe for
// concurrent use.
type Cache struct {
	matrices *lru.Cache[Config, glm.Mat4f]
}

// NewCache creates a cache holding at most size matrices.
func NewCache(size int) (*Cache, error) {
	matrices, err := lru.NewWithEvict[Config, glm.Mat4f](size, logEviction)
	if err != nil {
		return nil, fmt.Errorf("create projection cache: %w", err)
	}

	return &Cache{matrices: matrices}, nil
}

// Get returns the matrix for the builders parameters, building it on a miss.
// Like Build it panics if the far clip is less than the near clip.
func (c *Cache) Get(b Builder) glm.Mat4f {
	if m, ok := c.matrices.Get(b.config); ok {
		return m
	}

	m := b.Build()
	c.matrices.Add(b.config, m)

	return m
}

// Len returns the number of cached matrices.
func (c *Cache) Len() int {
	return c.matrices.Len()
}

// Purge drops all cached matrices.
func (c *Cache) Purge() {
	c.matrices.Purge()
}

func logEviction(config Config, _ glm.Mat4f) {
	slog.Debug("Evict projection matrix",
		slog.Any("fov", config.Fov),
		slog.Uint64("width", uint64(config.Width)),
		slog.Uint64("height", uint64(config.Height)),
	)
}
