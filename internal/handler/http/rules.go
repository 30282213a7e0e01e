package http

import (
	"encoding/json"
	"net/http"

	"github.com/attendhq/rules-engine-go/internal/domain/rules"
	"github.com/attendhq/rules-engine-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RuleHandler interface {
	GetRuleSet(w http.ResponseWriter, r *http.Request)
	ApplyDirectives(w http.ResponseWriter, r *http.Request)
	DeleteRule(w http.ResponseWriter, r *http.Request)
}

type ruleHandlerImpl struct {
	ruleService rules.Service
}

func NewRuleHandler(ruleService rules.Service) RuleHandler {
	return &ruleHandlerImpl{ruleService: ruleService}
}

func (h *ruleHandlerImpl) GetRuleSet(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.ruleService.GetRuleSet(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result == nil {
		response.NotFound(w, "Salary rules not configured")
		return
	}

	response.Success(w, result)
}

func (h *ruleHandlerImpl) ApplyDirectives(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req rules.MergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	directive, err := req.Directive(employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.ruleService.ApplyDirectives(r.Context(), employeeID, directive)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary rules updated", result)
}

func (h *ruleHandlerImpl) DeleteRule(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	ruleID := chi.URLParam(r, "ruleID")

	result, err := h.ruleService.DeleteRule(r.Context(), employeeID, ruleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rule deleted", result)
}
