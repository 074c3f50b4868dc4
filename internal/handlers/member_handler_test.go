package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/report"
)

func setupMemberRouter(handler *MemberHandler) *gin.Engine {
	r := gin.New()
	r.POST("/members", handler.CreateMember)
	r.GET("/members", handler.GetMembers)
	r.DELETE("/members/:id", handler.DeleteMember)
	r.PUT("/members/:id/income", handler.UpsertIncome)
	r.GET("/members/:id/summary", handler.GetMemberSummary)
	return r
}

func TestMemberHandler_CreateMember(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		ledger := &mockLedger{
			addMemberFn: func(name string) (*models.Member, error) {
				return &models.Member{ID: "m1", Name: name}, nil
			},
		}
		r := setupMemberRouter(NewMemberHandler(ledger))

		rec := doRequest(r, "POST", "/members", `{"name":"Alice"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseJSON(t, rec)
		member, ok := body["member"].(map[string]interface{})
		if !ok || member["name"] != "Alice" {
			t.Errorf("expected created member Alice, got: %s", rec.Body.String())
		}
	})

	t.Run("rejects missing name", func(t *testing.T) {
		r := setupMemberRouter(NewMemberHandler(&mockLedger{}))

		rec := doRequest(r, "POST", "/members", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestMemberHandler_GetMembers(t *testing.T) {
	t.Run("includes income for the month", func(t *testing.T) {
		ledger := &mockLedger{
			membersFn: func() []models.Member {
				return []models.Member{{ID: "m1", Name: "Alice"}}
			},
			memberIncomeFn: func(memberID, month string) float64 {
				if memberID == "m1" && month == "2024-03" {
					return 3000
				}
				return 0
			},
		}
		r := setupMemberRouter(NewMemberHandler(ledger))

		rec := doRequest(r, "GET", "/members?month=2024-03", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := parseJSON(t, rec)
		members, _ := body["members"].([]interface{})
		if len(members) != 1 {
			t.Fatalf("expected 1 member, got %d", len(members))
		}
		row, _ := members[0].(map[string]interface{})
		if row["income"] != float64(3000) {
			t.Errorf("expected income 3000, got %v", row["income"])
		}
	})

	t.Run("rejects malformed month", func(t *testing.T) {
		r := setupMemberRouter(NewMemberHandler(&mockLedger{}))

		rec := doRequest(r, "GET", "/members?month=2024-3", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestMemberHandler_UpsertIncome(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotMemberID string
		var gotAmount float64
		ledger := &mockLedger{
			upsertIncomeFn: func(memberID, month string, amount float64) (*models.MonthlyIncome, error) {
				gotMemberID, gotAmount = memberID, amount
				return &models.MonthlyIncome{ID: "i1", MemberID: memberID, Month: month, Amount: amount}, nil
			},
		}
		r := setupMemberRouter(NewMemberHandler(ledger))

		rec := doRequest(r, "PUT", "/members/m1/income", `{"month":"2024-03","amount":3000}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotMemberID != "m1" || gotAmount != 3000 {
			t.Errorf("expected income for m1 of 3000, got %q %v", gotMemberID, gotAmount)
		}
	})

	t.Run("accepts zero amount", func(t *testing.T) {
		r := setupMemberRouter(NewMemberHandler(&mockLedger{}))

		rec := doRequest(r, "PUT", "/members/m1/income", `{"month":"2024-03","amount":0}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for zero income, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		r := setupMemberRouter(NewMemberHandler(&mockLedger{}))

		rec := doRequest(r, "PUT", "/members/m1/income", `{"month":"2024-03","amount":-5}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects malformed month", func(t *testing.T) {
		r := setupMemberRouter(NewMemberHandler(&mockLedger{}))

		rec := doRequest(r, "PUT", "/members/m1/income", `{"month":"March","amount":3000}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 for unknown member", func(t *testing.T) {
		ledger := &mockLedger{
			upsertIncomeFn: func(string, string, float64) (*models.MonthlyIncome, error) {
				return nil, apperrors.ErrMemberNotFound
			},
		}
		r := setupMemberRouter(NewMemberHandler(ledger))

		rec := doRequest(r, "PUT", "/members/nope/income", `{"month":"2024-03","amount":3000}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestMemberHandler_GetMemberSummary(t *testing.T) {
	t.Run("returns the member row with a category breakdown", func(t *testing.T) {
		ledger := &mockLedger{
			memberSummaryFn: func(memberID, month string) (*report.MemberRow, error) {
				return &report.MemberRow{
					MemberID:  memberID,
					Name:      "Alice",
					Income:    3000,
					Spending:  120,
					Remaining: 2880,
				}, nil
			},
			categoriesFn: func() []models.Category {
				return []models.Category{
					{ID: "c1", Name: "Groceries", Budget: 500, MemberIDs: []string{"m1"}},
					{ID: "c2", Name: "Gym", Budget: 60, MemberIDs: []string{"m2"}},
				}
			},
			monthTransactionsFn: func(month string) []models.Transaction {
				return []models.Transaction{
					{ID: "t1", CategoryID: "c1", Amount: 120, Month: month, MemberIDs: []string{"m1"}},
				}
			},
		}
		r := setupMemberRouter(NewMemberHandler(ledger))

		rec := doRequest(r, "GET", "/members/m1/summary?month=2024-03", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := parseJSON(t, rec)
		summary, ok := body["summary"].(map[string]interface{})
		if !ok || summary["remaining"] != float64(2880) {
			t.Errorf("expected remaining 2880, got: %s", rec.Body.String())
		}
		categories, _ := body["categories"].([]interface{})
		if len(categories) != 1 {
			t.Fatalf("expected only the member's category, got: %s", rec.Body.String())
		}
		row, _ := categories[0].(map[string]interface{})
		if row["category_id"] != "c1" || row["spent"] != float64(120) {
			t.Errorf("expected c1 with 120 spent, got %v", row)
		}
	})

	t.Run("returns 404 for unknown member", func(t *testing.T) {
		ledger := &mockLedger{
			memberSummaryFn: func(string, string) (*report.MemberRow, error) {
				return nil, apperrors.ErrMemberNotFound
			},
		}
		r := setupMemberRouter(NewMemberHandler(ledger))

		rec := doRequest(r, "GET", "/members/nope/summary", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
