package llrb

import (
	"fmt"

	"github.com/npillmayer/ordered/order"
)

// Config configures a tree.
type Config[K any] struct {
	// Compare orders the keys. It is required.
	Compare order.Comparator[K]
	// Capacity is a hint for the number of nodes to pre-allocate.
	Capacity int
	// HibernationThreshold is the minimum arena size for Hibernate to do
	// anything. Smaller trees are left alone.
	HibernationThreshold int
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Capacity < 0 {
		cfg.Capacity = 0
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if cfg.HibernationThreshold < 0 {
		return fmt.Errorf("%w: negative hibernation threshold %d", ErrInvalidConfig,
			cfg.HibernationThreshold)
	}
	return nil
}
