package lifi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/shared/types"
)

const samplePayload = `{
	"transfers": [
		{"receiving": {"timestamp": 1704103200, "chainId": 1, "amountUSD": "10.50"}},
		{"receiving": {"timestamp": 1704189600, "chainId": 137, "amountUSD": "5.25"}}
	]
}`

func TestFetchTransfers_DecodesReceivingLeg(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"integrator":    r.URL.Query().Get("integrator"),
			"wallet":        r.URL.Query().Get("wallet"),
			"fromTimestamp": r.URL.Query().Get("fromTimestamp"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(samplePayload))
	}))
	defer server.Close()

	repo := NewLiFiRepository(server.URL, "jumper.exchange")
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	records, err := repo.FetchTransfers(context.Background(), "0xabc", since)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "jumper.exchange", gotQuery["integrator"])
	assert.Equal(t, "0xabc", gotQuery["wallet"])
	assert.Equal(t, "1704067200", gotQuery["fromTimestamp"])

	assert.Equal(t, int64(1), records[0].DestinationChainID)
	assert.Equal(t, "10.5", records[0].AmountUSD.String())
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), records[0].ReceivedAtUTC)
	assert.Equal(t, int64(137), records[1].DestinationChainID)
}

func TestFetchTransfers_MalformedAmountIsDataError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transfers":[{"receiving":{"timestamp":1704103200,"chainId":1,"amountUSD":"not-a-number"}}]}`))
	}))
	defer server.Close()

	repo := NewLiFiRepository(server.URL, "")

	_, err := repo.FetchTransfers(context.Background(), "0xabc", time.Unix(0, 0))
	var dataErr *types.DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, "receiving.amountUSD", dataErr.Field)
}

func TestFetchTransfers_MissingTimestampIsDataError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transfers":[{"receiving":{"chainId":1,"amountUSD":"1"}}]}`))
	}))
	defer server.Close()

	repo := NewLiFiRepository(server.URL, "")

	_, err := repo.FetchTransfers(context.Background(), "0xabc", time.Unix(0, 0))
	var dataErr *types.DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, "receiving.timestamp", dataErr.Field)
}

func TestFetchTransfers_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	repo := NewLiFiRepository(server.URL, "")

	_, err := repo.FetchTransfers(context.Background(), "0xabc", time.Unix(0, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestFetchTransfers_EmptyTransfersList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transfers":[]}`))
	}))
	defer server.Close()

	repo := NewLiFiRepository(server.URL, "")

	records, err := repo.FetchTransfers(context.Background(), "0xabc", time.Unix(0, 0))
	require.NoError(t, err)
	assert.Empty(t, records)
}
