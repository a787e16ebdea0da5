package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// generateID builds collection-unique identifiers that sort by creation
// order: a type prefix, the creation instant in unix millis, and a random
// suffix to break same-millisecond collisions.
func generateID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}
