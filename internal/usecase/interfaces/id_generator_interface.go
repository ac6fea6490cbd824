package interfaces

import "context"

// IIDGenerator hands out monotonically increasing integer ids per sequence name.
type IIDGenerator interface {
	NextID(ctx context.Context, sequence string) (int64, error)
}
