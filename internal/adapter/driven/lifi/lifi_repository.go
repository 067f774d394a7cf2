package lifi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/repository"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/shared/types"
)

const (
	defaultBaseURL    = "https://li.quest/v1"
	defaultIntegrator = "jumper.exchange"

	transfersPath = "/analytics/transfers"

	requestTimeout = 15 * time.Second
)

// LiFiRepositoryImpl implementa o TransferRepository sobre a API de
// analytics da LI.FI, com rate limiting do lado do cliente.
type LiFiRepositoryImpl struct {
	baseURL    string
	integrator string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewLiFiRepository cria uma nova implementação do TransferRepository.
// baseURL e integrator vazios usam os padrões públicos da LI.FI.
func NewLiFiRepository(baseURL, integrator string) repository.TransferRepository {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if integrator == "" {
		integrator = defaultIntegrator
	}

	return &LiFiRepositoryImpl{
		baseURL:    baseURL,
		integrator: integrator,
		httpClient: &http.Client{Timeout: requestTimeout},
		// A API pública tolera poucas requisições por segundo
		limiter: rate.NewLimiter(rate.Limit(2), 4),
	}
}

// Formato do payload da LI.FI: só a perna de recebimento interessa aqui.
type transfersResponse struct {
	Transfers []transferEnvelope `json:"transfers"`
}

type transferEnvelope struct {
	Receiving receivingLeg `json:"receiving"`
}

type receivingLeg struct {
	Timestamp int64       `json:"timestamp"`
	ChainID   json.Number `json:"chainId"`
	AmountUSD string      `json:"amountUSD"`
}

// FetchTransfers busca as transferências recebidas por uma carteira desde o
// instante informado e as converte em registros tipados. Campos ausentes ou
// malformados no payload produzem DataError, nunca registros parciais.
func (r *LiFiRepositoryImpl) FetchTransfers(ctx context.Context, wallet string, since time.Time) ([]entity.TransferRecord, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("integrator", r.integrator)
	query.Set("wallet", wallet)
	query.Set("fromTimestamp", strconv.FormatInt(since.Unix(), 10))

	endpoint := r.baseURL + transfersPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error building transfers request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching transfers for wallet %s: %w", wallet, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transfers request for wallet %s returned status %d", wallet, resp.StatusCode)
	}

	var payload transfersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("error decoding transfers response: %w", err)
	}

	records := make([]entity.TransferRecord, 0, len(payload.Transfers))
	for i, tx := range payload.Transfers {
		rec, err := tx.Receiving.toRecord(i)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func (leg receivingLeg) toRecord(index int) (entity.TransferRecord, error) {
	if leg.Timestamp == 0 {
		return entity.TransferRecord{}, &types.DataError{Index: index, Field: "receiving.timestamp", Reason: "is missing"}
	}

	chainID, err := leg.ChainID.Int64()
	if err != nil {
		return entity.TransferRecord{}, &types.DataError{Index: index, Field: "receiving.chainId", Reason: "is not a valid chain id"}
	}

	if leg.AmountUSD == "" {
		return entity.TransferRecord{}, &types.DataError{Index: index, Field: "receiving.amountUSD", Reason: "is missing"}
	}
	amount, err := decimal.NewFromString(leg.AmountUSD)
	if err != nil {
		return entity.TransferRecord{}, &types.DataError{Index: index, Field: "receiving.amountUSD", Reason: "is not numeric"}
	}

	return entity.TransferRecord{
		ReceivedAtUTC:      time.Unix(leg.Timestamp, 0).UTC(),
		DestinationChainID: chainID,
		AmountUSD:          amount,
	}, nil
}
