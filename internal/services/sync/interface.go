package sync

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/vanhoutenbos/golfapp/internal/services/sync Service

import "context"

// Service defines the interface for the sync coordinator
type Service interface {
	// SyncBatch applies one device's batch of score edits. Every edit gets
	// its own result; a failing item never aborts the others.
	SyncBatch(ctx context.Context, input *SyncBatchInput) (*SyncBatchOutput, error)
}
