package api

import (
	"github.com/orbitln/orbithub/history"
	"github.com/orbitln/orbithub/ingest"
	"github.com/orbitln/orbithub/ledger"
	"github.com/orbitln/orbithub/liquidity"
	"github.com/orbitln/orbithub/logger"
)

type API interface {
	ListHistory(filter history.Filter) *ListHistoryResponse
	SyncHistory(syncHistoryRequest *SyncHistoryRequest) (*ListHistoryResponse, error)
	ListLiquidityOptions() *ListLiquidityOptionsResponse
	EstimateLiquidityFee(optionId string, amountSat int64) (*EstimateFeeResponse, error)
	Health() *HealthResponse
}

type api struct {
	historySvc   history.HistoryService
	liquiditySvc liquidity.Service
}

func NewAPI(historySvc history.HistoryService, liquiditySvc liquidity.Service) *api {
	return &api{
		historySvc:   historySvc,
		liquiditySvc: liquiditySvc,
	}
}

func (api *api) ListHistory(filter history.Filter) *ListHistoryResponse {
	snapshot := api.historySvc.Current()
	entries := api.historySvc.Entries(filter)

	response := &ListHistoryResponse{
		SnapshotID:  snapshot.ID,
		RefreshedAt: snapshot.RefreshedAt.Unix(),
		Entries:     make([]HistoryEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, toApiHistoryEntry(entry))
	}
	return response
}

// SyncHistory is the ingestion boundary: the backend delivers a full set of
// raw ledger records and the current snapshot is replaced wholesale. A bad
// record rejects the whole refresh and keeps the previous snapshot current.
func (api *api) SyncHistory(syncHistoryRequest *SyncHistoryRequest) (*ListHistoryResponse, error) {
	entries, err := ingest.SnapshotFromRecords(syncHistoryRequest.Records)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Rejected wallet history refresh")
		return nil, err
	}

	api.historySvc.Replace(entries)
	return api.ListHistory(history.Filter{}), nil
}

func (api *api) ListLiquidityOptions() *ListLiquidityOptionsResponse {
	options := api.liquiditySvc.ListOptions()

	response := &ListLiquidityOptionsResponse{
		Options: make([]LiquidityOption, 0, len(options)),
	}
	for _, option := range options {
		response.Options = append(response.Options, LiquidityOption{
			ID:                  option.ID,
			Title:               option.Title,
			TradeUpToSat:        option.TradeUpTo.Units(),
			MinDepositSat:       option.MinDeposit.Units(),
			MaxDepositSat:       option.MaxDeposit.Units(),
			FeePercentage:       option.Fee.Percentage,
			FeeMinimumSat:       option.Fee.Minimum.Units(),
			CoordinatorLeverage: option.CoordinatorLeverage,
		})
	}
	return response
}

func (api *api) EstimateLiquidityFee(optionId string, amountSat int64) (*EstimateFeeResponse, error) {
	amount, err := ledger.NewAmount(amountSat)
	if err != nil {
		return nil, err
	}

	fee, err := api.liquiditySvc.EstimateFee(optionId, amount)
	if err != nil {
		return nil, err
	}

	return &EstimateFeeResponse{
		OptionID:  optionId,
		AmountSat: amount.Units(),
		FeeSat:    fee.Units(),
	}, nil
}

func (api *api) Health() *HealthResponse {
	return &HealthResponse{Status: "ok"}
}

func toApiHistoryEntry(entry ledger.HistoryEntry) HistoryEntry {
	header := entry.Header()
	sign, verb := ledger.Classify(header.Flow, header.Status)

	rows := entry.DetailRows()
	details := make([]DetailRow, 0, len(rows))
	for _, row := range rows {
		details = append(details, DetailRow{
			Label: row.Label,
			Value: row.Value,
			Hint:  string(row.Hint),
		})
	}

	return HistoryEntry{
		Kind:            entry.Kind(),
		Title:           entry.Title(),
		Flow:            string(header.Flow),
		Status:          string(header.Status),
		Timestamp:       header.Timestamp.Unix(),
		AmountSat:       header.Amount.Units(),
		SignedAmountSat: int64(sign) * int64(header.Amount.Units()),
		Verb:            verb,
		IconKind:        string(entry.IconKind()),
		OnChain:         entry.IsOnChain(),
		Details:         details,
	}
}
