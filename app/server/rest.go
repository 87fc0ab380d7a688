package server

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/LevanSamadashvili/BitcoinWallet/app/core"
	"github.com/LevanSamadashvili/BitcoinWallet/app/core/status"
	"github.com/LevanSamadashvili/BitcoinWallet/app/models"
	"github.com/LevanSamadashvili/BitcoinWallet/pkg/response"
	"github.com/LevanSamadashvili/BitcoinWallet/pkg/web"
)

const (
	apiPrefix    = "/api/v1"
	apiKeyHeader = "x-api-key"
)

// httpStatuses translates domain outcomes to http statuses. Unknown codes
// render as 500.
var httpStatuses = map[status.Code]int{
	status.UserCreatedSuccessfully:       http.StatusCreated,
	status.UserRegistrationError:         http.StatusInternalServerError,
	status.WalletCreatedSuccessfully:     http.StatusCreated,
	status.CantCreateMoreWallets:         http.StatusForbidden,
	status.WalletCreationError:           http.StatusInternalServerError,
	status.GotBalanceSuccessfully:        http.StatusOK,
	status.InvalidWallet:                 http.StatusForbidden,
	status.NotYourWallet:                 http.StatusForbidden,
	status.IncorrectAPIKey:               http.StatusNotFound,
	status.NotEnoughBalance:              452,
	status.TransactionSuccessful:         http.StatusOK,
	status.TransactionUnsuccessful:       http.StatusInternalServerError,
	status.FetchTransactionsSuccessful:   http.StatusOK,
	status.FetchTransactionsUnsuccessful: http.StatusInternalServerError,
	status.FetchStatisticsSuccessful:     http.StatusOK,
	status.FetchStatisticsUnsuccessful:   http.StatusInternalServerError,
}

type envelope struct {
	Status string      `json:"status"`
	Result interface{} `json:"result,omitempty"`
}

// Rest is a gateway for incoming HTTP requests.
type Rest struct {
	Router chi.Router
	Core   core.Service
}

func (s *Rest) Route() {
	s.Router.Route(apiPrefix, func(r chi.Router) {
		r.Post("/users", s.registerUser)

		r.Route("/wallets", func(r chi.Router) {
			r.Post("/", s.createWallet)
			r.Get("/{address}", s.getBalance)
			r.Get("/{address}/transactions", s.getWalletTransactions)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", s.makeTransaction)
			r.Get("/", s.getTransactions)
		})

		r.Get("/statistics", s.getStatistics)
	})
}

func (s *Rest) registerUser(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.Core.RegisterUser(r.Context(), &models.RegisterUserRequest{}))
}

func (s *Rest) createWallet(w http.ResponseWriter, r *http.Request) {
	in := &models.CreateWalletRequest{APIKey: r.Header.Get(apiKeyHeader)}
	if err := in.Validate(); err != nil {
		s.reject(w, r, err)
		return
	}

	s.respond(w, r, s.Core.CreateWallet(r.Context(), in))
}

func (s *Rest) getBalance(w http.ResponseWriter, r *http.Request) {
	in := &models.GetBalanceRequest{
		APIKey:  r.Header.Get(apiKeyHeader),
		Address: chi.URLParam(r, "address"),
	}
	if err := in.Validate(); err != nil {
		s.reject(w, r, err)
		return
	}

	s.respond(w, r, s.Core.GetBalance(r.Context(), in))
}

func (s *Rest) makeTransaction(w http.ResponseWriter, r *http.Request) {
	in := new(models.MakeTransactionRequest)
	if err := render.DecodeJSON(r.Body, in); err != nil {
		s.reject(w, r, err)
		return
	}
	in.APIKey = r.Header.Get(apiKeyHeader)

	if err := in.Validate(); err != nil {
		s.reject(w, r, err)
		return
	}

	s.respond(w, r, s.Core.MakeTransaction(r.Context(), in))
}

func (s *Rest) getTransactions(w http.ResponseWriter, r *http.Request) {
	in := &models.GetTransactionsRequest{APIKey: r.Header.Get(apiKeyHeader)}
	if err := in.Validate(); err != nil {
		s.reject(w, r, err)
		return
	}

	s.respond(w, r, s.Core.GetTransactions(r.Context(), in))
}

func (s *Rest) getWalletTransactions(w http.ResponseWriter, r *http.Request) {
	in := &models.GetWalletTransactionsRequest{
		APIKey:  r.Header.Get(apiKeyHeader),
		Address: chi.URLParam(r, "address"),
	}
	if err := in.Validate(); err != nil {
		s.reject(w, r, err)
		return
	}

	s.respond(w, r, s.Core.GetWalletTransactions(r.Context(), in))
}

func (s *Rest) getStatistics(w http.ResponseWriter, r *http.Request) {
	in := &models.GetStatisticsRequest{APIKey: r.Header.Get(apiKeyHeader)}
	if err := in.Validate(); err != nil {
		s.reject(w, r, err)
		return
	}

	s.respond(w, r, s.Core.GetStatistics(r.Context(), in))
}

func (s *Rest) respond(w http.ResponseWriter, r *http.Request, resp models.Response) {
	httpStatus, ok := httpStatuses[resp.StatusCode]
	if !ok {
		httpStatus = http.StatusInternalServerError
	}

	web.RenderResult(w, r, httpStatus, &envelope{
		Status: resp.StatusCode.String(),
		Result: resp.Content,
	})
}

// reject turns malformed input away with a 400 before any pipeline runs.
func (s *Rest) reject(w http.ResponseWriter, r *http.Request, err error) {
	web.RenderError(w, r, response.NewError(response.CodeBadRequest, err.Error()))
}
