package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseSeatQueryAllowsSentinelZero(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x?seat_id=0", nil)
	got, err := parseSeatQuery(req, "seat_id")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got == nil || *got != 0 {
		t.Fatalf("expected sentinel zero, got %v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	got, err = parseSeatQuery(req, "seat_id")
	if err != nil || got != nil {
		t.Fatalf("absent parameter must be nil, got %v %v", got, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/x?seat_id=-1", nil)
	if _, err := parseSeatQuery(req, "seat_id"); err == nil {
		t.Fatal("negative seat must be rejected")
	}
}

func TestParseShiftIDs(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x?shift_ids=1,2,3", nil)
	ids, err := parseShiftIDs(req, "shift_ids")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[2] != 3 {
		t.Fatalf("unexpected ids %v", ids)
	}

	req = httptest.NewRequest(http.MethodGet, "/x?shift_ids=1,zero", nil)
	if _, err := parseShiftIDs(req, "shift_ids"); err == nil {
		t.Fatal("non-numeric shift list must be rejected")
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	ids, err = parseShiftIDs(req, "shift_ids")
	if err != nil || ids != nil {
		t.Fatalf("absent list must be nil, got %v %v", ids, err)
	}
}
