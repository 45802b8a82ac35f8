package membership

import "context"

// Store holds the containment flag per (tourist, zone) pair. A pair that
// was never written reads as false (outside).
type Store interface {
	Get(ctx context.Context, touristID, zoneID string) (bool, error)
	Set(ctx context.Context, touristID, zoneID string, inside bool) error
}
