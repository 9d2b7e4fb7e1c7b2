package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/JolyGolfqw/CashControlFront/internal/core"
)

func TestListExpenses_FilterQueryParams(t *testing.T) {
	tests := []struct {
		name      string
		filter    *ExpenseFilter
		wantQuery url.Values
	}{
		{
			name:      "nil filter sends no parameters",
			filter:    nil,
			wantQuery: url.Values{},
		},
		{
			name: "full filter",
			filter: &ExpenseFilter{
				CategoryID: 3,
				StartDate:  "2025-05-01",
				EndDate:    "2025-05-31",
				Limit:      20,
				Offset:     40,
			},
			wantQuery: url.Values{
				"category_id": {"3"},
				"start_date":  {"2025-05-01"},
				"end_date":    {"2025-05-31"},
				"limit":       {"20"},
				"offset":      {"40"},
			},
		},
		{
			name:   "partial filter omits unset fields",
			filter: &ExpenseFilter{CategoryID: 3},
			wantQuery: url.Values{
				"category_id": {"3"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery url.Values
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				w.Write([]byte(`[]`))
			}))
			defer server.Close()

			client := NewClient(server.URL, fakeTokens{token: "tok"}, nil, nil)
			if _, err := client.ListExpenses(context.Background(), tt.filter); err != nil {
				t.Fatalf("ListExpenses error: %v", err)
			}

			if gotQuery.Encode() != tt.wantQuery.Encode() {
				t.Errorf("query = %q, want %q", gotQuery.Encode(), tt.wantQuery.Encode())
			}
		})
	}
}

func TestCreateExpense_AmountTravelsAsBareNumber(t *testing.T) {
	var rawBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		rawBody = string(data)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ID":12,"amount":99.9,"description":"dinner","date":"2025-06-02","category_id":1}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, fakeTokens{token: "tok"}, nil, nil)
	created, err := client.CreateExpense(context.Background(), CreateExpenseInput{
		CategoryID:  1,
		Amount:      core.NewAmount(decimal.RequireFromString("99.9")),
		Description: "dinner",
		Date:        "2025-06-02",
	})
	if err != nil {
		t.Fatalf("CreateExpense error: %v", err)
	}

	if strings.Contains(rawBody, `"amount":"99.9"`) {
		t.Errorf("amount sent as a quoted string: %s", rawBody)
	}
	if !strings.Contains(rawBody, `"amount":99.9`) {
		t.Errorf("amount missing or malformed in body: %s", rawBody)
	}

	if created.ID != 12 {
		t.Errorf("created.ID = %d, want 12 from the ID-cased response", created.ID)
	}
	if !created.Amount.Equal(decimal.RequireFromString("99.9")) {
		t.Errorf("created.Amount = %s, want 99.9", created.Amount)
	}
}

func TestUpdateExpense_SendsOnlyPatchedFields(t *testing.T) {
	var body map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/expenses/5" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"id":5,"amount":42,"description":"updated","date":"2025-06-01","category_id":1}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, fakeTokens{token: "tok"}, nil, nil)
	description := "updated"
	if _, err := client.UpdateExpense(context.Background(), 5, core.ExpensePatch{Description: &description}); err != nil {
		t.Fatalf("UpdateExpense error: %v", err)
	}

	if len(body) != 1 {
		t.Errorf("patch body = %v, want only the description field", body)
	}
	if _, ok := body["description"]; !ok {
		t.Errorf("patch body missing description: %v", body)
	}
}

func TestDeleteExpense(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, fakeTokens{token: "tok"}, nil, nil)
	if err := client.DeleteExpense(context.Background(), 9); err != nil {
		t.Fatalf("DeleteExpense error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/expenses/9" {
		t.Errorf("request = %s %s, want DELETE /expenses/9", gotMethod, gotPath)
	}
}
