package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expresocargas/backend"
	"expresocargas/models"
)

type fakeQuoteClient struct {
	mu sync.Mutex

	searchCalls  []string
	searchDelay  time.Duration
	localities   map[string][]models.Locality
	searchErr    error
	quoteCalls   []backend.QuoteRequest
	quoteOptions []models.Quote
	quoteErr     error
}

func (f *fakeQuoteClient) SearchLocalities(ctx context.Context, term string) ([]models.Locality, error) {
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, term)
	delay := f.searchDelay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.localities[term], nil
}

func (f *fakeQuoteClient) RequestQuote(ctx context.Context, body backend.QuoteRequest) ([]models.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quoteCalls = append(f.quoteCalls, body)
	if f.quoteErr != nil {
		return nil, f.quoteErr
	}
	return f.quoteOptions, nil
}

func (f *fakeQuoteClient) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searchCalls...)
}

func newTestEngine(api QuoteClient) *Engine {
	e := NewEngine(api)
	e.debounce = 10 * time.Millisecond
	return e
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never met")
}

func TestSearchShortTermSkipsNetwork(t *testing.T) {
	api := &fakeQuoteClient{}
	e := newTestEngine(api)

	e.Search("r", SearchOrigin)
	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, api.calls())
	state := e.State(SearchOrigin)
	assert.Empty(t, state.Results)
	assert.False(t, state.HasSearched)
}

func TestSearchDebouncesToLastTerm(t *testing.T) {
	api := &fakeQuoteClient{localities: map[string][]models.Locality{
		"rosario": {{ID: 2, Name: "Rosario"}},
	}}
	e := newTestEngine(api)

	e.Search("ro", SearchOrigin)
	e.Search("ros", SearchOrigin)
	e.Search("rosario", SearchOrigin)

	waitFor(t, func() bool { return e.State(SearchOrigin).HasSearched })

	require.Equal(t, []string{"rosario"}, api.calls())
	state := e.State(SearchOrigin)
	require.Len(t, state.Results, 1)
	assert.Equal(t, "Rosario", state.Results[0].Name)
}

func TestSearchRolesAreIndependent(t *testing.T) {
	api := &fakeQuoteClient{localities: map[string][]models.Locality{
		"san":  {{ID: 1, Name: "San Rafael"}},
		"rosa": {{ID: 2, Name: "Rosario"}},
	}}
	e := newTestEngine(api)

	e.Search("san", SearchOrigin)
	e.Search("rosa", SearchDestination)

	waitFor(t, func() bool {
		return e.State(SearchOrigin).HasSearched && e.State(SearchDestination).HasSearched
	})

	assert.Equal(t, "San Rafael", e.State(SearchOrigin).Results[0].Name)
	assert.Equal(t, "Rosario", e.State(SearchDestination).Results[0].Name)
}

func TestStaleResponseDiscarded(t *testing.T) {
	api := &fakeQuoteClient{
		searchDelay: 100 * time.Millisecond,
		localities: map[string][]models.Locality{
			"vieja": {{ID: 1, Name: "Vieja"}},
		},
	}
	e := newTestEngine(api)

	e.Search("vieja", SearchOrigin)
	// let the slow search fire, then supersede it before it lands
	time.Sleep(30 * time.Millisecond)
	e.Select(models.Locality{ID: 9, Name: "Elegida", PostalCode: "5600"}, SearchOrigin)

	time.Sleep(200 * time.Millisecond)

	state := e.State(SearchOrigin)
	assert.Empty(t, state.Results, "stale response must not repopulate the dropdown")
	assert.False(t, state.HasSearched)
	require.NotNil(t, state.Selected)
	assert.Equal(t, "Elegida", state.Selected.Name)
}

func TestSelectClearsDropdown(t *testing.T) {
	api := &fakeQuoteClient{localities: map[string][]models.Locality{
		"rosario": {{ID: 2, Name: "Rosario"}},
	}}
	e := newTestEngine(api)

	e.Search("rosario", SearchOrigin)
	waitFor(t, func() bool { return e.State(SearchOrigin).HasSearched })

	e.Select(models.Locality{ID: 2, Name: "Rosario", PostalCode: "2000"}, SearchOrigin)

	state := e.State(SearchOrigin)
	assert.Empty(t, state.Results)
	assert.False(t, state.HasSearched)
	require.NotNil(t, state.Selected)
}

func TestRequestQuoteFailsFast(t *testing.T) {
	api := &fakeQuoteClient{}
	e := newTestEngine(api)

	_, err := e.RequestQuote(context.Background(), PackageSelection{Quantity: 1})
	assert.ErrorIs(t, err, ErrNoOrigin)

	e.Select(models.Locality{ID: 1, PostalCode: "5600"}, SearchOrigin)
	_, err = e.RequestQuote(context.Background(), PackageSelection{Quantity: 1})
	assert.ErrorIs(t, err, ErrNoDestination)

	e.Select(models.Locality{ID: 2, PostalCode: "2000"}, SearchDestination)
	_, err = e.RequestQuote(context.Background(), PackageSelection{Quantity: 0})
	assert.ErrorIs(t, err, ErrNoQuantity)

	assert.Empty(t, api.quoteCalls, "local failures must not reach the network")
}

func TestRequestQuoteReplicatesLine(t *testing.T) {
	api := &fakeQuoteClient{quoteOptions: []models.Quote{{ID: 1, Price: 900}}}
	e := newTestEngine(api)
	e.Select(models.Locality{ID: 1, PostalCode: "5600"}, SearchOrigin)
	e.Select(models.Locality{ID: 2, PostalCode: "2000"}, SearchDestination)

	options, err := e.RequestQuote(context.Background(), PackageSelection{
		Quantity:    3,
		PackageType: "bolsa 30x40",
		Weight:      2.5,
	})
	require.NoError(t, err)
	require.Len(t, options, 1)

	require.Len(t, api.quoteCalls, 1)
	call := api.quoteCalls[0]
	assert.Equal(t, "5600", call.OriginPostal)
	assert.Equal(t, "2000", call.DestinationPostal)
	assert.Equal(t, int64(1), call.ArticulosID)
	require.Len(t, call.Bultos, 3)
	for _, b := range call.Bultos {
		assert.Equal(t, 2.5, b.Weight)
	}
}

func TestRequestQuoteFailureClearsOptions(t *testing.T) {
	api := &fakeQuoteClient{quoteOptions: []models.Quote{{ID: 1, Price: 900}}}
	e := newTestEngine(api)
	e.Select(models.Locality{ID: 1, PostalCode: "5600"}, SearchOrigin)
	e.Select(models.Locality{ID: 2, PostalCode: "2000"}, SearchDestination)

	_, err := e.RequestQuote(context.Background(), PackageSelection{Quantity: 1, Weight: 1})
	require.NoError(t, err)
	options, msg := e.Options()
	assert.Len(t, options, 1)
	assert.Empty(t, msg)

	api.mu.Lock()
	api.quoteErr = errors.New("connection refused")
	api.mu.Unlock()

	_, err = e.RequestQuote(context.Background(), PackageSelection{Quantity: 1, Weight: 1})
	require.Error(t, err)
	options, msg = e.Options()
	assert.Empty(t, options)
	assert.NotEmpty(t, msg)

	// selections survive a failed quote
	assert.NotNil(t, e.State(SearchOrigin).Selected)
	assert.NotNil(t, e.State(SearchDestination).Selected)
}
