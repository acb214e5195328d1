// Package cache stores rendered content (templates, config fragments,
// computed responses) under string keys with TTL expiry.
//
// Two backends implement the same Store interface: an in-process memory
// cache with a background janitor, and Redis for multi-instance
// deployments:
//
//	c := cache.NewMemory(cache.WithDefaultTTL(5 * time.Minute))
//	defer c.Close()
//
//	if body, err := c.Get(ctx, key); err == nil {
//		return body, nil
//	}
//	body := render()
//	_ = c.Set(ctx, key, body, 0) // 0 = default TTL
//
// Absent and expired keys return ErrNotFound. A negative TTL stores the
// entry without expiry.
package cache
