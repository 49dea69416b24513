/**
 * @description
 * This file contains the HTTP handlers for the banking API. Handlers decode
 * and validate the request, call the bank, and wrap the outcome in the
 * {success, ...} envelope. Domain errors surface to the caller verbatim as
 * the `error` string: 404 for the explicit not-found checks, 400 for
 * everything else.
 *
 * @dependencies
 * - go-chi/chi for URL parameters.
 * - go-playground/validator for request body validation.
 * - internal/app, internal/domain for the bank and its error taxonomy.
 */
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Moxjohn2099/banking-app/internal/app"
	"github.com/Moxjohn2099/banking-app/internal/domain"
)

// Handler holds the bank service the endpoints operate on.
type Handler struct {
	bank         *app.Bank
	validate     *validator.Validate
	logger       *slog.Logger
	frontendFile string
}

// NewHandler creates a Handler. Validation error messages use JSON field
// names rather than Go struct names.
func NewHandler(bank *app.Bank, logger *slog.Logger, frontendFile string) *Handler {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{
		bank:         bank,
		validate:     v,
		logger:       logger,
		frontendFile: frontendFile,
	}
}

type addressRequest struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
}

type createAccountRequest struct {
	FirstName      string         `json:"first_name" validate:"required"`
	LastName       string         `json:"last_name" validate:"required"`
	Email          string         `json:"email" validate:"required"`
	Phone          string         `json:"phone" validate:"required"`
	Address        addressRequest `json:"address"`
	DateOfBirth    string         `json:"date_of_birth" validate:"required"`
	AccountType    string         `json:"account_type" validate:"required"`
	InitialDeposit float64        `json:"initial_deposit"`
}

// amountRequest covers deposits and withdrawals. Amount is a pointer so a
// missing field is distinguishable from an explicit zero; zero still fails,
// but in the domain layer with its own message.
type amountRequest struct {
	Amount      *float64 `json:"amount" validate:"required"`
	Description string   `json:"description"`
}

type transferRequest struct {
	ToAccount   string   `json:"to_account" validate:"required"`
	Amount      *float64 `json:"amount" validate:"required"`
	Description string   `json:"description"`
}

// decode parses the JSON body into dst and runs struct validation,
// converting validator failures into ValidationErrors.
func (h *Handler) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("Invalid JSON body")
	}
	if err := h.validate.Struct(dst); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			missing := make([]string, 0, len(fieldErrors))
			for _, fe := range fieldErrors {
				missing = append(missing, fe.Field())
			}
			return domain.NewValidationError("Missing required field(s): " + strings.Join(missing, ", "))
		}
		return err
	}
	return nil
}

// Frontend serves the static frontend page at /.
func (h *Handler) Frontend(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(h.frontendFile); err != nil {
		h.respondJSON(w, http.StatusNotFound, map[string]string{
			"error": "Frontend file not found: " + err.Error(),
		})
		return
	}
	http.ServeFile(w, r, h.frontendFile)
}

// CreateAccount handles POST /api/accounts.
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	accountType, err := domain.ParseAccountType(req.AccountType)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	holder := domain.Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address: domain.Address{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
			Country: "USA",
		},
		DateOfBirth: req.DateOfBirth,
	}

	account, err := h.bank.CreateAccount(holder, accountType, req.InitialDeposit)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, struct {
		Success       bool   `json:"success"`
		AccountNumber string `json:"account_number"`
		Message       string `json:"message"`
	}{true, account.AccountNumber, "Account created successfully"})
}

// GetAccount handles GET /api/accounts/{accountNumber}.
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, ok := h.bank.Account(chi.URLParam(r, "accountNumber"))
	if !ok {
		h.writeError(w, http.StatusNotFound, domain.ErrAccountNotFound.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, struct {
		Success bool           `json:"success"`
		Account domain.Account `json:"account"`
	}{true, account})
}

// Deposit handles POST /api/accounts/{accountNumber}/deposit.
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	balance, err := h.bank.Deposit(chi.URLParam(r, "accountNumber"), *req.Amount, req.Description)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, struct {
		Success    bool    `json:"success"`
		NewBalance float64 `json:"new_balance"`
		Message    string  `json:"message"`
	}{true, balance, "Deposit successful"})
}

// Withdraw handles POST /api/accounts/{accountNumber}/withdraw.
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	balance, err := h.bank.Withdraw(chi.URLParam(r, "accountNumber"), *req.Amount, req.Description)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, struct {
		Success    bool    `json:"success"`
		NewBalance float64 `json:"new_balance"`
		Message    string  `json:"message"`
	}{true, balance, "Withdrawal successful"})
}

// Transfer handles POST /api/accounts/{accountNumber}/transfer. Every
// failure, including an unknown account on either side, is a 400.
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.bank.Transfer(chi.URLParam(r, "accountNumber"), req.ToAccount, *req.Amount, req.Description)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Transfer successful"})
}

// Transactions handles GET /api/accounts/{accountNumber}/transactions?days=N.
func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Query parameter days must be an integer")
			return
		}
		days = parsed
	}

	transactions, err := h.bank.TransactionHistory(chi.URLParam(r, "accountNumber"), days)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, struct {
		Success      bool                 `json:"success"`
		Transactions []domain.Transaction `json:"transactions"`
	}{true, transactions})
}

// Health handles GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, struct {
		Status         string `json:"status"`
		BankName       string `json:"bank_name"`
		TotalAccounts  int    `json:"total_accounts"`
		TotalCustomers int    `json:"total_customers"`
	}{"healthy", h.bank.Name(), h.bank.TotalAccounts(), h.bank.TotalCustomers()})
}

// writeDomainError maps a domain error to its HTTP status. Only the explicit
// account-existence check earns a 404; every other failure is a 400.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrAccountNotFound) {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	h.writeError(w, http.StatusBadRequest, err.Error())
}

// writeError sends the failure envelope.
func (h *Handler) writeError(w http.ResponseWriter, code int, message string) {
	h.respondJSON(w, code, struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{false, message})
}

// respondJSON writes a JSON response with the given status code.
func (h *Handler) respondJSON(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to marshal response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}
