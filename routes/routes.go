package routes

import (
	"net/http"
	"strings"

	"expresocargas/handlers"
	"expresocargas/models"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func public(h http.HandlerFunc) http.Handler {
	return withCORS(http.HandlerFunc(handlers.RecoverWrapper(h)))
}

func SetupRoutes(
	auth *handlers.AuthMiddleware,
	authHandler *handlers.AuthHandler,
	calculatorHandler *handlers.CalculatorHandler,
	branchHandler *handlers.BranchHandler,
	dispatchHandler *handlers.DispatchHandler,
	preorderHandler *handlers.PreorderHandler,
	containerHandler *handlers.ContainerHandler,
	transportHandler *handlers.TransportHandler,
	receiptHandler *handlers.ReceiptHandler,
) {
	protected := func(h handlers.AuthedHandler) http.Handler {
		return public(auth.Require(h))
	}

	// Public calculator
	http.Handle("/calculator/localities", public(calculatorHandler.SearchLocalities))
	http.Handle("/calculator/quote", public(calculatorHandler.Quote))

	// Branch directory
	http.Handle("/branches", public(branchHandler.ListBranches))
	http.Handle("/branches/", public(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/branches/"):]
		if id != "" {
			branchHandler.GetBranch(w, r, id)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	// Auth routes
	http.Handle("/auth/register", public(authHandler.Register))
	http.Handle("/auth/login", public(authHandler.Login))
	http.Handle("/auth/verify-email", public(authHandler.VerifyEmail))
	http.Handle("/auth/resend-verification", public(authHandler.ResendVerification))

	// Dispatch wizard routes: one draft per session, mutated step by step.
	http.Handle("/dispatch/draft", protected(func(w http.ResponseWriter, r *http.Request, e *models.Employee) {
		switch r.Method {
		case http.MethodGet:
			dispatchHandler.GetDraft(w, r, e)
		case http.MethodDelete:
			dispatchHandler.Reset(w, r, e)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	http.Handle("/dispatch/search", protected(func(w http.ResponseWriter, r *http.Request, e *models.Employee) {
		switch r.Method {
		case http.MethodPost:
			dispatchHandler.Search(w, r, e)
		case http.MethodGet:
			dispatchHandler.SearchState(w, r, e)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	http.Handle("/dispatch/locality", protected(dispatchHandler.SelectLocality))
	http.Handle("/dispatch/quote", protected(func(w http.ResponseWriter, r *http.Request, e *models.Employee) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		dispatchHandler.RequestQuote(w, r, e)
	}))
	http.Handle("/dispatch/quote/select", protected(dispatchHandler.SelectQuote))
	http.Handle("/dispatch/packages", protected(dispatchHandler.UpdatePackages))
	http.Handle("/dispatch/sender", protected(dispatchHandler.UpdateSender))
	http.Handle("/dispatch/recipient", protected(dispatchHandler.UpdateRecipient))
	http.Handle("/dispatch/client-type", protected(dispatchHandler.SetClientType))
	http.Handle("/dispatch/delivery", protected(dispatchHandler.SetDelivery))
	http.Handle("/dispatch/price", protected(dispatchHandler.SetManualPrice))
	http.Handle("/dispatch/advance", protected(dispatchHandler.Advance))
	http.Handle("/dispatch/back", protected(dispatchHandler.Back))
	http.Handle("/dispatch/submit", protected(dispatchHandler.Submit))

	// Preorder routes
	http.Handle("/voucher/preorders", protected(func(w http.ResponseWriter, r *http.Request, e *models.Employee) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		preorderHandler.ListPreorders(w, r, e)
	}))
	http.Handle("/voucher/preorders/bulk-update-status", protected(preorderHandler.BulkUpdateStatus))
	http.Handle("/voucher/preorders/", protected(func(w http.ResponseWriter, r *http.Request, e *models.Employee) {
		id := r.URL.Path[len("/voucher/preorders/"):]
		if rest, ok := strings.CutSuffix(id, "/pdf"); ok && rest != "" {
			preorderHandler.PreorderPDF(w, r, e, rest)
			return
		}
		if id == "" || strings.Contains(id, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			preorderHandler.GetPreorder(w, r, e, id)
		case http.MethodPut:
			preorderHandler.UpdatePreorder(w, r, e, id)
		case http.MethodDelete:
			preorderHandler.DeletePreorder(w, r, e, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Container (reparto) routes
	http.Handle("/containers", protected(func(w http.ResponseWriter, r *http.Request, e *models.Employee) {
		switch r.Method {
		case http.MethodPost:
			containerHandler.CreateContainer(w, r, e)
		case http.MethodGet:
			containerHandler.ListContainers(w, r, e)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	http.Handle("/containers/", protected(func(w http.ResponseWriter, r *http.Request, e *models.Employee) {
		id := r.URL.Path[len("/containers/"):]
		if rest, ok := strings.CutSuffix(id, "/preorders"); ok && rest != "" {
			switch r.Method {
			case http.MethodPost:
				containerHandler.AssignPreorders(w, r, e, rest)
			case http.MethodGet:
				containerHandler.ContainerPreorders(w, r, e, rest)
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
			return
		}
		if rest, ok := strings.CutSuffix(id, "/status"); ok && rest != "" {
			containerHandler.UpdateContainerStatus(w, r, e, rest)
			return
		}
		if id == "" || strings.Contains(id, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPatch:
			containerHandler.UpdateContainer(w, r, e, id)
		case http.MethodDelete:
			containerHandler.DeleteContainer(w, r, e, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Transport routes
	http.Handle("/transports", protected(func(w http.ResponseWriter, r *http.Request, e *models.Employee) {
		switch r.Method {
		case http.MethodPost:
			transportHandler.CreateTransport(w, r, e)
		case http.MethodGet:
			transportHandler.ListTransports(w, r, e)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	http.Handle("/transports/", protected(func(w http.ResponseWriter, r *http.Request, e *models.Employee) {
		id := r.URL.Path[len("/transports/"):]
		if id == "" || strings.Contains(id, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPut:
			transportHandler.UpdateTransport(w, r, e, id)
		case http.MethodDelete:
			transportHandler.DeleteTransport(w, r, e, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Receipt PDF
	http.Handle("/receipts", protected(receiptHandler.Receipt))
}
