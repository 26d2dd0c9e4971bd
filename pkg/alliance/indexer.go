package alliance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cosmossdk.io/math"
)

// IndexerState is a point-in-time view of the module's alliances and
// validators.
type IndexerState struct {
	Assets            map[string]AllianceAsset
	Validators        map[string]ValidatorResponse
	TotalRewardWeight math.LegacyDec
	LastRefreshTime   time.Time
}

// AssetIndexer maintains a polled in-memory view of alliance assets and
// validators on top of any Querier.
type AssetIndexer struct {
	querier  Querier
	pageSize uint64

	mutex sync.RWMutex
	state IndexerState

	pollStopChannel chan struct{}
	pollDoneChannel chan struct{}
}

// NewAssetIndexer creates an indexer over the given querier. pageSize bounds
// each list request; values outside (0, MaxPageLimit] fall back to 100.
func NewAssetIndexer(querier Querier, pageSize uint64) *AssetIndexer {
	if pageSize == 0 || pageSize > MaxPageLimit {
		pageSize = 100
	}
	return &AssetIndexer{
		querier:  querier,
		pageSize: pageSize,
		state:    newEmptyIndexerState(),
	}
}

func newEmptyIndexerState() IndexerState {
	return IndexerState{
		Assets:            map[string]AllianceAsset{},
		Validators:        map[string]ValidatorResponse{},
		TotalRewardWeight: math.LegacyZeroDec(),
	}
}

// Refresh runs one full indexing cycle, following pagination until both the
// asset and validator listings are exhausted. The previous state is kept
// untouched if any page fails.
func (indexer *AssetIndexer) Refresh(ctx context.Context) error {
	assets := map[string]AllianceAsset{}
	totalRewardWeight := math.LegacyZeroDec()

	pagination := &PageRequest{Limit: indexer.pageSize}
	for pagination != nil {
		response, err := indexer.querier.Alliances(ctx, pagination)
		if err != nil {
			return fmt.Errorf("failed to list alliances: %w", err)
		}
		for _, asset := range response.Alliances {
			assets[asset.Denom] = asset
			if !asset.RewardWeight.IsNil() {
				totalRewardWeight = totalRewardWeight.Add(asset.RewardWeight)
			}
		}
		pagination = nextPageRequest(response.Pagination, indexer.pageSize)
	}

	validators := map[string]ValidatorResponse{}
	pagination = &PageRequest{Limit: indexer.pageSize}
	for pagination != nil {
		response, err := indexer.querier.Validators(ctx, pagination)
		if err != nil {
			return fmt.Errorf("failed to list alliance validators: %w", err)
		}
		for _, validator := range response.Validators {
			validators[validator.ValidatorAddr] = validator
		}
		pagination = nextPageRequest(response.Pagination, indexer.pageSize)
	}

	indexer.mutex.Lock()
	indexer.state = IndexerState{
		Assets:            assets,
		Validators:        validators,
		TotalRewardWeight: totalRewardWeight,
		LastRefreshTime:   time.Now().UTC(),
	}
	indexer.mutex.Unlock()

	return nil
}

func nextPageRequest(response *PageResponse, pageSize uint64) *PageRequest {
	if response == nil || len(response.NextKey) == 0 {
		return nil
	}
	return &PageRequest{Key: response.NextKey, Limit: pageSize}
}

// StateSnapshot returns a deep copy of the current index state.
func (indexer *AssetIndexer) StateSnapshot() IndexerState {
	indexer.mutex.RLock()
	defer indexer.mutex.RUnlock()

	assets := make(map[string]AllianceAsset, len(indexer.state.Assets))
	for denom, asset := range indexer.state.Assets {
		assets[denom] = asset
	}

	validators := make(map[string]ValidatorResponse, len(indexer.state.Validators))
	for address, validator := range indexer.state.Validators {
		validators[address] = validator
	}

	return IndexerState{
		Assets:            assets,
		Validators:        validators,
		TotalRewardWeight: indexer.state.TotalRewardWeight,
		LastRefreshTime:   indexer.state.LastRefreshTime,
	}
}

// GetAsset returns the indexed alliance asset for denom.
func (indexer *AssetIndexer) GetAsset(denom string) (AllianceAsset, bool) {
	indexer.mutex.RLock()
	defer indexer.mutex.RUnlock()
	asset, ok := indexer.state.Assets[denom]
	return asset, ok
}

// GetValidator returns the indexed validator for validatorAddr.
func (indexer *AssetIndexer) GetValidator(validatorAddr string) (ValidatorResponse, bool) {
	indexer.mutex.RLock()
	defer indexer.mutex.RUnlock()
	validator, ok := indexer.state.Validators[validatorAddr]
	return validator, ok
}

// StartPolling refreshes the index periodically until StopPolling is called
// or ctx is canceled. Refresh errors are retried on the next tick.
func (indexer *AssetIndexer) StartPolling(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	indexer.mutex.Lock()
	if indexer.pollStopChannel != nil {
		indexer.mutex.Unlock()
		return fmt.Errorf("indexer polling already running")
	}
	stopChannel := make(chan struct{})
	doneChannel := make(chan struct{})
	indexer.pollStopChannel = stopChannel
	indexer.pollDoneChannel = doneChannel
	indexer.mutex.Unlock()

	go func() {
		defer close(doneChannel)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		_ = indexer.Refresh(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-stopChannel:
				return
			case <-ticker.C:
				_ = indexer.Refresh(ctx)
			}
		}
	}()

	return nil
}

// StopPolling stops an active polling loop and waits for it to exit.
func (indexer *AssetIndexer) StopPolling() {
	indexer.mutex.Lock()
	stopChannel := indexer.pollStopChannel
	doneChannel := indexer.pollDoneChannel
	indexer.pollStopChannel = nil
	indexer.pollDoneChannel = nil
	indexer.mutex.Unlock()

	if stopChannel != nil {
		close(stopChannel)
	}
	if doneChannel != nil {
		<-doneChannel
	}
}
