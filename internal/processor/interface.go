package processor

import "context"

// Processor defines the interface for reformatting one dropped-in source file
type Processor interface {
	Process(ctx context.Context, sourcePath string) error
}
