package http

import (
	"encoding/json"
	"net/http"

	"github.com/attendhq/rules-engine-go/internal/domain/payperiod"
	"github.com/attendhq/rules-engine-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayPeriodHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type payPeriodHandlerImpl struct {
	payPeriodService payperiod.Service
}

func NewPayPeriodHandler(payPeriodService payperiod.Service) PayPeriodHandler {
	return &payPeriodHandlerImpl{payPeriodService: payPeriodService}
}

func (h *payPeriodHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.payPeriodService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payPeriodHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req payperiod.UpdatePayPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payPeriodService.Update(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay period updated", result)
}
