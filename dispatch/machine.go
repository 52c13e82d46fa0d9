// Package dispatch implements the dispatch wizard: the draft state machine,
// the quote engine, the submission composer and the derived listing views.
package dispatch

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	"expresocargas/models"
)

// Local validation failures. These block step advancement and never reach
// the network.
var (
	ErrNoQuote      = errors.New("seleccioná una cotización antes de continuar")
	ErrNoPackages   = errors.New("cargá al menos un paquete")
	ErrBadPackage   = errors.New("cada paquete necesita descripción y peso mayor a cero")
	ErrNoSender     = errors.New("faltan los datos del remitente")
	ErrNoRecipient  = errors.New("faltan los datos del destinatario")
	ErrNoAuthToken  = errors.New("no hay una sesión activa con el operador")
	ErrFirstStep    = errors.New("ya estás en el primer paso")
	ErrLastStep     = errors.New("ya estás en el último paso")
)

// bagToken matches the "WIDTHxLENGTH" fragment of a predefined bag type.
var bagToken = regexp.MustCompile(`(\d+)\s*[xX]\s*(\d+)`)

// NewDraft returns an empty draft for the session.
func NewDraft(sessionID string) *models.DispatchDraft {
	return &models.DispatchDraft{
		SessionID:  sessionID,
		ClientType: models.ClientIndividual,
		Step:       models.StepQuote,
		UpdatedAt:  time.Now().UTC(),
	}
}

// SelectQuote commits a priced option into the draft and derives its package
// list. It is the entry point into a fresh flow: the step cursor returns to
// the quote step and any prior error clears, even when another draft was
// mid-flight.
func SelectQuote(d *models.DispatchDraft, quote models.Quote, defaultDescription string, quantity int, packageType string) {
	d.Quote = &quote
	d.Packages = buildPackages(quote, defaultDescription, quantity, packageType)
	d.Step = models.StepQuote
	d.Error = ""
	touch(d)
}

// buildPackages derives the draft's package list from the selected quote.
// A single returned bulto line is replicated N times when the requested
// quantity exceeds the returned count; otherwise the lines are taken as-is.
// Predefined bags force width/length from their size token and zero height:
// bags are treated as flat.
func buildPackages(quote models.Quote, defaultDescription string, quantity int, packageType string) []models.Package {
	lines := quote.Bultos
	if len(lines) == 1 && quantity > 1 {
		replicated := make([]models.BultoLine, quantity)
		for i := range replicated {
			replicated[i] = lines[0]
		}
		lines = replicated
	}

	var bagWidth, bagLength float64
	forceBag := false
	if packageType != "" && packageType != models.PackageTypeCustom {
		if m := bagToken.FindStringSubmatch(packageType); m != nil {
			bagWidth, _ = strconv.ParseFloat(m[1], 64)
			bagLength, _ = strconv.ParseFloat(m[2], 64)
			forceBag = true
		}
	}

	packages := make([]models.Package, len(lines))
	for i, line := range lines {
		pkg := models.Package{
			Description:   defaultDescription,
			Weight:        line.Weight,
			DeclaredValue: line.DeclaredValue,
			Height:        line.Height,
			Width:         line.Width,
			Length:        line.Length,
			Type:          packageType,
		}
		if forceBag {
			pkg.Width = bagWidth
			pkg.Length = bagLength
			pkg.Height = 0
		}
		packages[i] = pkg
	}
	return packages
}

// Field setters. Each one is a committed mutation: the orchestrating manager
// persists the draft right after.

func UpdatePackages(d *models.DispatchDraft, packages []models.Package) {
	d.Packages = packages
	touch(d)
}

func UpdateSender(d *models.DispatchDraft, p models.Person) {
	d.Sender = &p
	touch(d)
}

func UpdateRecipient(d *models.DispatchDraft, p models.Person) {
	d.Recipient = &p
	touch(d)
}

func SetClientType(d *models.DispatchDraft, clientType string) {
	d.ClientType = clientType
	touch(d)
}

func SetDeliveryTarget(d *models.DispatchDraft, target models.DeliveryTarget) {
	d.Delivery = &target
	touch(d)
}

func SetManualPrice(d *models.DispatchDraft, price *float64) {
	d.ManualPrice = price
	touch(d)
}

// FinalPrice resolves the amount to charge: the manual override wins whenever
// one is set, including an explicit 0; otherwise the quote's price; 0 when
// neither is present.
func FinalPrice(d *models.DispatchDraft) float64 {
	if d.ManualPrice != nil {
		return *d.ManualPrice
	}
	if d.Quote != nil {
		return d.Quote.Price
	}
	return 0
}

// Advance moves to the next step after the current step's local validation
// passes. Steps are never skipped.
func Advance(d *models.DispatchDraft) error {
	if d.Step >= models.StepConfirmation {
		return ErrLastStep
	}
	if err := validateStep(d); err != nil {
		return err
	}
	d.Step++
	touch(d)
	return nil
}

// Back moves one step backward without validation.
func Back(d *models.DispatchDraft) error {
	if d.Step <= models.StepQuote {
		return ErrFirstStep
	}
	d.Step--
	touch(d)
	return nil
}

func validateStep(d *models.DispatchDraft) error {
	switch d.Step {
	case models.StepQuote:
		if d.Quote == nil {
			return ErrNoQuote
		}
	case models.StepPackages:
		if len(d.Packages) == 0 {
			return ErrNoPackages
		}
		for _, p := range d.Packages {
			if p.Description == "" || p.Weight <= 0 {
				return ErrBadPackage
			}
		}
	case models.StepSenderRecipient:
		if d.Sender == nil {
			return ErrNoSender
		}
		if err := d.Sender.Validate(); err != nil {
			return err
		}
		if d.Recipient == nil {
			return ErrNoRecipient
		}
		if err := d.Recipient.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Reset restores the draft to its initial empty state.
func Reset(d *models.DispatchDraft) {
	*d = *NewDraft(d.SessionID)
}

func touch(d *models.DispatchDraft) {
	d.UpdatedAt = time.Now().UTC()
}
