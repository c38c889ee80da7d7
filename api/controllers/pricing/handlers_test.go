package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	pricingsvc "github.com/flyerworks/flyerworks-backend/internal/pricing"
	"github.com/flyerworks/flyerworks-backend/pkg/enums"
	pkgerrors "github.com/flyerworks/flyerworks-backend/pkg/errors"
)

type stubPricingService struct {
	breakdown *pricingsvc.Breakdown
	options   *pricingsvc.PricingOptions
	err       error
	lastInput pricingsvc.CalculateInput
}

func (s *stubPricingService) CalculatePrice(_ context.Context, input pricingsvc.CalculateInput) (*pricingsvc.Breakdown, error) {
	s.lastInput = input
	return s.breakdown, s.err
}

func (s *stubPricingService) GetProductPricingOptions(context.Context, uuid.UUID) (*pricingsvc.PricingOptions, error) {
	return s.options, s.err
}

func calculateBody(productID uuid.UUID) string {
	return fmt.Sprintf(`{
		"productId": %q,
		"paperStockId": %q,
		"coatingId": %q,
		"turnaroundId": %q,
		"quantity": 500,
		"widthIn": 4,
		"heightIn": 6,
		"sides": "double",
		"addOns": [{"addOnId": %q, "subOptions": {"fold_type": "z_fold"}}]
	}`, productID, uuid.New(), uuid.New(), uuid.New(), uuid.New())
}

func TestCalculateSuccess(t *testing.T) {
	productID := uuid.New()
	stub := &stubPricingService{
		breakdown: &pricingsvc.Breakdown{
			ProductID:     productID,
			Currency:      enums.CurrencyUSD,
			SubtotalCents: 2688,
			TotalCents:    2688,
		},
	}
	handler := Calculate(stub, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/calculate", strings.NewReader(calculateBody(productID)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data pricingsvc.Breakdown `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.TotalCents != 2688 {
		t.Fatalf("unexpected total: %d", envelope.Data.TotalCents)
	}
	if stub.lastInput.Sides != enums.PrintSidesDouble {
		t.Fatalf("expected parsed sides, got %q", stub.lastInput.Sides)
	}
	if len(stub.lastInput.AddOns) != 1 || stub.lastInput.AddOns[0].SubOptions["fold_type"] != "z_fold" {
		t.Fatalf("expected add-on selection forwarded, got %+v", stub.lastInput.AddOns)
	}
}

func TestCalculateRejectsUnknownFields(t *testing.T) {
	handler := Calculate(&stubPricingService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/calculate",
		strings.NewReader(`{"productId": "not-json", "bogus": true}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCalculateInvalidSides(t *testing.T) {
	handler := Calculate(&stubPricingService{}, nil)

	body := strings.Replace(calculateBody(uuid.New()), `"double"`, `"triple"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/calculate", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCalculateServiceErrorsMapToStatus(t *testing.T) {
	cases := []struct {
		code   pkgerrors.Code
		status int
	}{
		{pkgerrors.CodeNotFound, http.StatusNotFound},
		{pkgerrors.CodeAddOnConflict, http.StatusBadRequest},
		{pkgerrors.CodeSizeConstraint, http.StatusBadRequest},
		{pkgerrors.CodeDependency, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			stub := &stubPricingService{err: pkgerrors.New(tc.code, "boom")}
			handler := Calculate(stub, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/calculate",
				strings.NewReader(calculateBody(uuid.New())))
			resp := httptest.NewRecorder()
			handler.ServeHTTP(resp, req)

			if resp.Code != tc.status {
				t.Fatalf("expected %d got %d", tc.status, resp.Code)
			}
			var envelope struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if envelope.Error.Code != string(tc.code) {
				t.Fatalf("expected code %s, got %s", tc.code, envelope.Error.Code)
			}
		})
	}
}

func TestOptionsSuccess(t *testing.T) {
	productID := uuid.New()
	stub := &stubPricingService{
		options: &pricingsvc.PricingOptions{
			Product: pricingsvc.ProductSummary{ID: productID, Slug: "flyers", Name: "Flyers"},
		},
	}

	r := chi.NewRouter()
	r.Get("/api/v1/pricing/options/{productId}", Options(stub, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pricing/options/"+productID.String(), nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data pricingsvc.PricingOptions `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Product.Slug != "flyers" {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestOptionsInvalidProductID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/pricing/options/{productId}", Options(&stubPricingService{}, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pricing/options/not-a-uuid", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
