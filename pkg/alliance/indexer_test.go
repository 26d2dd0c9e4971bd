package alliance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/math"
)

type fakeQuerier struct {
	assetPages     [][]AllianceAsset
	validatorPages [][]ValidatorResponse
	allianceCalls  int
	validatorCalls int
	failAlliances  bool
}

func (querier *fakeQuerier) Alliance(ctx context.Context, denom string) (*AllianceResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (querier *fakeQuerier) Alliances(ctx context.Context, pagination *PageRequest) (*AlliancesResponse, error) {
	if querier.failAlliances {
		return nil, fmt.Errorf("node unavailable")
	}
	querier.allianceCalls++
	page := pageIndex(pagination)
	response := &AlliancesResponse{Alliances: querier.assetPages[page]}
	if page < len(querier.assetPages)-1 {
		response.Pagination = &PageResponse{NextKey: []byte{byte(page + 1)}}
	}
	return response, nil
}

func (querier *fakeQuerier) AlliancesDelegations(ctx context.Context, pagination *PageRequest) (*DelegationsResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (querier *fakeQuerier) AlliancesDelegationByValidator(
	ctx context.Context,
	delegatorAddr string,
	validatorAddr string,
	pagination *PageRequest,
) (*DelegationsResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (querier *fakeQuerier) Delegation(ctx context.Context, delegatorAddr string, validatorAddr string, denom string) (*SingleDelegationResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (querier *fakeQuerier) DelegationRewards(ctx context.Context, delegatorAddr string, validatorAddr string, denom string) (*RewardsResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (querier *fakeQuerier) Params(ctx context.Context) (*ParamsResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (querier *fakeQuerier) Validator(ctx context.Context, validatorAddr string) (*ValidatorResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (querier *fakeQuerier) Validators(ctx context.Context, pagination *PageRequest) (*ValidatorsResponse, error) {
	querier.validatorCalls++
	page := pageIndex(pagination)
	response := &ValidatorsResponse{Validators: querier.validatorPages[page]}
	if page < len(querier.validatorPages)-1 {
		response.Pagination = &PageResponse{NextKey: []byte{byte(page + 1)}}
	}
	return response, nil
}

func pageIndex(pagination *PageRequest) int {
	if pagination == nil || len(pagination.Key) == 0 {
		return 0
	}
	return int(pagination.Key[0])
}

func newFixtureAsset(denom string, rewardWeight string) AllianceAsset {
	return AllianceAsset{
		Denom:        denom,
		RewardWeight: math.LegacyMustNewDecFromStr(rewardWeight),
	}
}

func TestAssetIndexerRefreshFollowsPagination(t *testing.T) {
	querier := &fakeQuerier{
		assetPages: [][]AllianceAsset{
			{newFixtureAsset("uluna", "0.5"), newFixtureAsset("uatom", "0.25")},
			{newFixtureAsset("ustake", "0.25")},
		},
		validatorPages: [][]ValidatorResponse{
			{{ValidatorAddr: testValidator}},
		},
	}
	indexer := NewAssetIndexer(querier, 2)

	if err := indexer.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if querier.allianceCalls != 2 {
		t.Fatalf("expected 2 alliance pages, got %d", querier.allianceCalls)
	}

	state := indexer.StateSnapshot()
	if len(state.Assets) != 3 {
		t.Fatalf("expected 3 assets, got %d", len(state.Assets))
	}
	if !state.TotalRewardWeight.Equal(math.LegacyOneDec()) {
		t.Fatalf("expected total reward weight 1, got %s", state.TotalRewardWeight)
	}
	if state.LastRefreshTime.IsZero() {
		t.Fatal("expected refresh time to be set")
	}

	asset, ok := indexer.GetAsset("uatom")
	if !ok {
		t.Fatal("expected uatom asset")
	}
	if !asset.RewardWeight.Equal(math.LegacyMustNewDecFromStr("0.25")) {
		t.Fatalf("unexpected reward weight: %s", asset.RewardWeight)
	}

	if _, ok := indexer.GetValidator(testValidator); !ok {
		t.Fatal("expected indexed validator")
	}
}

func TestAssetIndexerRefreshKeepsStateOnFailure(t *testing.T) {
	querier := &fakeQuerier{
		assetPages:     [][]AllianceAsset{{newFixtureAsset("uluna", "1")}},
		validatorPages: [][]ValidatorResponse{{}},
	}
	indexer := NewAssetIndexer(querier, 0)

	if err := indexer.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	querier.failAlliances = true
	if err := indexer.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}

	if _, ok := indexer.GetAsset("uluna"); !ok {
		t.Fatal("expected previous state to survive a failed refresh")
	}
}

func TestAssetIndexerSnapshotIsDeepCopy(t *testing.T) {
	querier := &fakeQuerier{
		assetPages:     [][]AllianceAsset{{newFixtureAsset("uluna", "1")}},
		validatorPages: [][]ValidatorResponse{{}},
	}
	indexer := NewAssetIndexer(querier, 10)
	if err := indexer.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot := indexer.StateSnapshot()
	delete(snapshot.Assets, "uluna")

	if _, ok := indexer.GetAsset("uluna"); !ok {
		t.Fatal("mutating a snapshot must not affect the indexer")
	}
}

func TestAssetIndexerPollingLifecycle(t *testing.T) {
	querier := &fakeQuerier{
		assetPages:     [][]AllianceAsset{{newFixtureAsset("uluna", "1")}},
		validatorPages: [][]ValidatorResponse{{}},
	}
	indexer := NewAssetIndexer(querier, 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := indexer.StartPolling(ctx, time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := indexer.StartPolling(ctx, time.Hour); err == nil {
		t.Fatal("expected error for double start")
	}

	indexer.StopPolling()

	// A second stop is a no-op, and polling can be restarted afterwards.
	indexer.StopPolling()
	if err := indexer.StartPolling(ctx, time.Hour); err != nil {
		t.Fatalf("unexpected restart error: %v", err)
	}
	indexer.StopPolling()
}
