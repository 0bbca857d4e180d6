package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
	h := NewOrderHandler(nil, nil)

	req := httptest.NewRequest("POST", "/api/orders", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.CreateOrder(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestRecordPaymentRejectsMalformedBody(t *testing.T) {
	h := NewOrderHandler(nil, nil)

	req := httptest.NewRequest("POST", "/api/orders/1/payments", strings.NewReader(""))
	rec := httptest.NewRecorder()
	h.RecordPayment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCreateCustomerRejectsMalformedBody(t *testing.T) {
	h := NewCustomerHandler(nil)

	req := httptest.NewRequest("POST", "/api/customers", strings.NewReader("[["))
	rec := httptest.NewRecorder()
	h.CreateCustomer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
