package compcache

import "go.trai.ch/srccache/internal/core/domain"

// BeforeCollection is called by the collector right before a cycle starts.
// A major collection clears the whole cache so compiled code is never kept
// alive past the epoch it was last compiled in. Minor collections leave the
// cache alone; its references are fixed up through Iterate.
func (c *Cache) BeforeCollection(kind domain.CollectionKind) {
	if !kind.IsMajor() {
		return
	}

	c.mu.Lock()
	dropped := c.clearLocked()
	c.mu.Unlock()

	c.logRetired(kind, dropped)
}
