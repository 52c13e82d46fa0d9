package dispatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"expresocargas/backend"
	"expresocargas/models"
)

// Search roles: origin and destination keep independent debounce timers.
type SearchRole string

const (
	SearchOrigin      SearchRole = "origen"
	SearchDestination SearchRole = "destino"
)

// Quote-engine failures that never reach the network.
var (
	ErrNoOrigin      = errors.New("seleccioná la localidad de origen")
	ErrNoDestination = errors.New("seleccioná la localidad de destino")
	ErrNoQuantity    = errors.New("la cantidad de bultos debe ser al menos 1")
)

// QuoteClient is the slice of the carrier API the quote engine needs.
type QuoteClient interface {
	SearchLocalities(ctx context.Context, term string) ([]models.Locality, error)
	RequestQuote(ctx context.Context, body backend.QuoteRequest) ([]models.Quote, error)
}

const (
	defaultDebounce    = 300 * time.Millisecond
	searchTimeout      = 10 * time.Second
	defaultAgreementID = 1 // the public web-calculator agreement
)

// SearchState is an immutable snapshot of one role's search field.
type SearchState struct {
	Results     []models.Locality `json:"resultados"`
	HasSearched bool              `json:"busco"`
	Selected    *models.Locality  `json:"seleccionada,omitempty"`
}

type searchField struct {
	timer       *time.Timer
	gen         uint64
	results     []models.Locality
	hasSearched bool
	selected    *models.Locality
}

// Engine resolves localities and requests priced options. One engine exists
// per wizard session. Searches are debounced per role and each fired search
// carries a generation number: a response whose generation went stale (a
// newer keystroke or a selection happened meanwhile) is discarded instead of
// overwriting fresher state.
type Engine struct {
	mu       sync.Mutex
	api      QuoteClient
	debounce time.Duration

	fields  map[SearchRole]*searchField
	options []models.Quote
	err     string
}

func NewEngine(api QuoteClient) *Engine {
	return &Engine{
		api:      api,
		debounce: defaultDebounce,
		fields: map[SearchRole]*searchField{
			SearchOrigin:      {},
			SearchDestination: {},
		},
	}
}

func (e *Engine) field(role SearchRole) *searchField {
	f, ok := e.fields[role]
	if !ok {
		f = &searchField{}
		e.fields[role] = f
	}
	return f
}

// Search schedules a debounced locality lookup for the role. Terms shorter
// than 2 characters clear the field without touching the network.
func (e *Engine) Search(term string, role SearchRole) {
	e.mu.Lock()
	defer e.mu.Unlock()

	f := e.field(role)
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
	}

	if len([]rune(term)) < 2 {
		f.results = nil
		f.hasSearched = false
		return
	}

	gen := f.gen
	f.timer = time.AfterFunc(e.debounce, func() {
		e.runSearch(term, role, gen)
	})
}

func (e *Engine) runSearch(term string, role SearchRole, gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	results, err := e.api.SearchLocalities(ctx, term)

	e.mu.Lock()
	defer e.mu.Unlock()

	f := e.field(role)
	if f.gen != gen {
		// superseded by a newer keystroke or a selection
		return
	}
	if err != nil {
		f.results = nil
	} else {
		f.results = results
	}
	f.hasSearched = true
}

// Select commits a chosen locality for the role, clears the dropdown state
// and supersedes any in-flight search.
func (e *Engine) Select(loc models.Locality, role SearchRole) {
	e.mu.Lock()
	defer e.mu.Unlock()

	f := e.field(role)
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
	}
	f.selected = &loc
	f.results = nil
	f.hasSearched = false
}

// State returns a snapshot of the role's search field.
func (e *Engine) State(role SearchRole) SearchState {
	e.mu.Lock()
	defer e.mu.Unlock()

	f := e.field(role)
	state := SearchState{HasSearched: f.hasSearched}
	state.Results = append(state.Results, f.results...)
	if f.selected != nil {
		sel := *f.selected
		state.Selected = &sel
	}
	return state
}

// PackageSelection is the live quote form: the values quoted are always the
// current ones, never a frozen snapshot.
type PackageSelection struct {
	Quantity      int     `json:"cantidad"`
	PackageType   string  `json:"tipo,omitempty"`
	Weight        float64 `json:"peso"`
	DeclaredValue float64 `json:"valor_declarado"`
	Height        float64 `json:"alto"`
	Width         float64 `json:"ancho"`
	Length        float64 `json:"largo"`
}

// RequestQuote asks the carrier for priced options. It fails fast, without a
// network call, when origin or destination is unselected or the quantity is
// below 1. On failure the prior options clear and a localized message is
// recorded; the selected localities stay untouched.
func (e *Engine) RequestQuote(ctx context.Context, sel PackageSelection) ([]models.Quote, error) {
	e.mu.Lock()
	origin := e.fields[SearchOrigin].selected
	destination := e.fields[SearchDestination].selected
	e.mu.Unlock()

	if origin == nil {
		return nil, ErrNoOrigin
	}
	if destination == nil {
		return nil, ErrNoDestination
	}
	if sel.Quantity < 1 {
		return nil, ErrNoQuantity
	}

	line := models.BultoLine{
		Weight:        sel.Weight,
		DeclaredValue: sel.DeclaredValue,
		Height:        sel.Height,
		Width:         sel.Width,
		Length:        sel.Length,
	}
	bultos := make([]models.BultoLine, sel.Quantity)
	for i := range bultos {
		bultos[i] = line
	}

	options, err := e.api.RequestQuote(ctx, backend.QuoteRequest{
		OriginPostal:      origin.PostalCode,
		DestinationPostal: destination.PostalCode,
		AgreementID:       defaultAgreementID,
		ArticulosID:       models.CatalogID(sel.PackageType),
		Bultos:            bultos,
	})

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.options = nil
		e.err = backend.UserMessage(err)
		return nil, err
	}
	e.options = options
	e.err = ""
	return options, nil
}

// Options returns the last received priced options and the last recorded
// user-facing error, if any.
func (e *Engine) Options() ([]models.Quote, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := append([]models.Quote(nil), e.options...)
	return out, e.err
}
