package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

func setupDebtRouter(handler *DebtHandler) *gin.Engine {
	r := gin.New()
	r.POST("/debts", handler.CreateDebt)
	r.GET("/debts", handler.GetDebts)
	r.DELETE("/debts/:id", handler.DeleteDebt)
	r.POST("/debts/:id/payment", handler.TogglePayment)
	return r
}

func TestDebtHandler_CreateDebt(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		r := setupDebtRouter(NewDebtHandler(&mockLedger{}))

		rec := doRequest(r, "POST", "/debts",
			`{"name":"Visa","balance":1200,"payment":100,"member_ids":["m1"]}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rejects empty member list", func(t *testing.T) {
		r := setupDebtRouter(NewDebtHandler(&mockLedger{}))

		rec := doRequest(r, "POST", "/debts",
			`{"name":"Visa","balance":1200,"payment":100,"member_ids":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects unknown debt type", func(t *testing.T) {
		r := setupDebtRouter(NewDebtHandler(&mockLedger{}))

		rec := doRequest(r, "POST", "/debts",
			`{"name":"Visa","balance":1200,"payment":100,"type":"mortgage","member_ids":["m1"]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown type, got %d", rec.Code)
		}
	})
}

func TestDebtHandler_GetDebts(t *testing.T) {
	t.Run("annotates paid status for the month", func(t *testing.T) {
		ledger := &mockLedger{
			debtsFn: func() []models.Debt {
				return []models.Debt{{ID: "d1", Name: "Visa"}, {ID: "d2", Name: "Loan"}}
			},
			isDebtPaidFn: func(debtID, month string) bool {
				return debtID == "d1" && month == "2024-03"
			},
		}
		r := setupDebtRouter(NewDebtHandler(ledger))

		rec := doRequest(r, "GET", "/debts?month=2024-03", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := parseJSON(t, rec)
		debts, _ := body["debts"].([]interface{})
		if len(debts) != 2 {
			t.Fatalf("expected 2 debts, got %d", len(debts))
		}
		first, _ := debts[0].(map[string]interface{})
		second, _ := debts[1].(map[string]interface{})
		if first["paid"] != true || second["paid"] != false {
			t.Errorf("expected d1 paid and d2 unpaid, got: %s", rec.Body.String())
		}
	})
}

func TestDebtHandler_TogglePayment(t *testing.T) {
	t.Run("returns resulting status", func(t *testing.T) {
		var gotDebtID, gotMonth string
		ledger := &mockLedger{
			toggleDebtPaymentFn: func(debtID, month string) (bool, error) {
				gotDebtID, gotMonth = debtID, month
				return true, nil
			},
		}
		r := setupDebtRouter(NewDebtHandler(ledger))

		rec := doRequest(r, "POST", "/debts/d1/payment?month=2024-03", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotDebtID != "d1" || gotMonth != "2024-03" {
			t.Errorf("expected toggle of d1 for 2024-03, got %q %q", gotDebtID, gotMonth)
		}
		body := parseJSON(t, rec)
		if body["paid"] != true {
			t.Errorf("expected paid true, got %v", body["paid"])
		}
	})

	t.Run("returns 404 for unknown debt", func(t *testing.T) {
		ledger := &mockLedger{
			toggleDebtPaymentFn: func(string, string) (bool, error) {
				return false, apperrors.ErrDebtNotFound
			},
		}
		r := setupDebtRouter(NewDebtHandler(ledger))

		rec := doRequest(r, "POST", "/debts/nope/payment?month=2024-03", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "DEBT_NOT_FOUND" {
			t.Errorf("expected DEBT_NOT_FOUND, got %s", code)
		}
	})
}

func TestDebtHandler_DeleteDebt(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		var deletedID string
		ledger := &mockLedger{
			deleteDebtFn: func(id string) error {
				deletedID = id
				return nil
			},
		}
		r := setupDebtRouter(NewDebtHandler(ledger))

		rec := doRequest(r, "DELETE", "/debts/d1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if deletedID != "d1" {
			t.Errorf("expected delete of d1, got %q", deletedID)
		}
	})
}
