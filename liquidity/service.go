package liquidity

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orbitln/orbithub/constants"
	"github.com/orbitln/orbithub/db"
	"github.com/orbitln/orbithub/ledger"
	"github.com/orbitln/orbithub/logger"
)

type notFoundError struct {
}

func NewNotFoundError() error {
	return &notFoundError{}
}

func (err *notFoundError) Error() string {
	return "The liquidity option requested was not found"
}

type Service interface {
	Start()
	Sync()
	ListOptions() []Option
	GetOption(id string) (*Option, error)
	EstimateFee(id string, amount ledger.Amount) (ledger.Amount, error)
}

type catalogService struct {
	db         *gorm.DB
	catalogUrl string
	options    []Option
	mu         sync.RWMutex
	httpClient *http.Client
}

func NewCatalogService(gormDB *gorm.DB, catalogUrl string) *catalogService {
	return &catalogService{
		db:         gormDB,
		catalogUrl: catalogUrl,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (svc *catalogService) Start() {
	go func() {
		svc.Sync()

		ticker := time.NewTicker(constants.LIQUIDITY_CATALOG_SYNC_INTERVAL)
		defer ticker.Stop()

		for range ticker.C {
			svc.Sync()
		}
	}()
}

// Sync fetches the remote catalog, replaces the in-memory options wholesale
// and refreshes the cache rows. When the fetch fails the cached catalog from
// the last successful sync is served instead.
func (svc *catalogService) Sync() {
	records, err := svc.fetchRemoteCatalog()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to fetch liquidity catalog")
		svc.mu.RLock()
		empty := len(svc.options) == 0
		svc.mu.RUnlock()
		if empty {
			if err := svc.loadFromCache(); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to load liquidity catalog from cache")
			}
		}
		return
	}

	options := make([]Option, 0, len(records))
	for _, record := range records {
		option, err := NewOptionFromCatalog(record)
		if err != nil {
			// drop the malformed tier, keep the rest of the catalog usable
			logger.Logger.Error().Err(err).Str("option_id", record.ID).Msg("Dropping malformed liquidity catalog record")
			continue
		}
		options = append(options, *option)
	}

	if err := svc.storeInCache(options); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to cache liquidity catalog")
	}

	svc.mu.Lock()
	svc.options = options
	svc.mu.Unlock()

	logger.Logger.Info().Int("options", len(options)).Msg("Liquidity catalog synced")
}

func (svc *catalogService) ListOptions() []Option {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	options := make([]Option, len(svc.options))
	copy(options, svc.options)
	return options
}

func (svc *catalogService) GetOption(id string) (*Option, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	for _, option := range svc.options {
		if option.ID == id {
			option := option
			return &option, nil
		}
	}
	return nil, NewNotFoundError()
}

// EstimateFee values a deposit against a tier's fee schedule.
func (svc *catalogService) EstimateFee(id string, amount ledger.Amount) (ledger.Amount, error) {
	option, err := svc.GetOption(id)
	if err != nil {
		return 0, err
	}
	return option.Fee.ComputeFee(amount), nil
}

func (svc *catalogService) fetchRemoteCatalog() ([]CatalogRecord, error) {
	url := svc.catalogUrl + "/liquidity-options.json"
	resp, err := svc.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	var records []CatalogRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog response: %w", err)
	}

	return records, nil
}

func (svc *catalogService) storeInCache(options []Option) error {
	rows := make([]db.LiquidityOption, 0, len(options))
	for _, option := range options {
		rows = append(rows, db.LiquidityOption{
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
	if len(rows) == 0 {
		return svc.db.Where("1 = 1").Delete(&db.LiquidityOption{}).Error
	}
	return svc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error; err != nil {
			return err
		}
		ids := make([]string, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.ID)
		}
		return tx.Where("id NOT IN ?", ids).Delete(&db.LiquidityOption{}).Error
	})
}

func (svc *catalogService) loadFromCache() error {
	var rows []db.LiquidityOption
	if err := svc.db.Order("min_deposit_sat asc").Find(&rows).Error; err != nil {
		return err
	}

	options := make([]Option, 0, len(rows))
	for _, row := range rows {
		options = append(options, Option{
			ID:         row.ID,
			Title:      row.Title,
			TradeUpTo:  ledger.Amount(row.TradeUpToSat),
			MinDeposit: ledger.Amount(row.MinDepositSat),
			MaxDeposit: ledger.Amount(row.MaxDepositSat),
			Fee: ProportionalFee{
				Percentage: row.FeePercentage,
				Minimum:    ledger.Amount(row.FeeMinimumSat),
			},
			CoordinatorLeverage: row.CoordinatorLeverage,
		})
	}

	svc.mu.Lock()
	svc.options = options
	svc.mu.Unlock()

	logger.Logger.Info().Int("options", len(options)).Msg("Liquidity catalog loaded from cache")
	return nil
}
