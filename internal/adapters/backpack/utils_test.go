package backpack

import (
	"strings"
	"testing"
)

func TestSymbolInformationValidity(t *testing.T) {
	cases := []struct {
		name string
		info SymbolInformation
		want bool
	}{
		{"break margin", SymbolInformation{Status: "BREAK", PermissionSets: [][]string{{"MARGIN"}}}, false},
		{"break spot", SymbolInformation{Status: "BREAK", PermissionSets: [][]string{{"SPOT"}}}, false},
		{"trading margin", SymbolInformation{Status: "TRADING", PermissionSets: [][]string{{"MARGIN"}}}, false},
		{"trading spot", SymbolInformation{Status: "TRADING", PermissionSets: [][]string{{"SPOT"}}}, true},
		{"trading mixed", SymbolInformation{Status: "TRADING", PermissionSets: [][]string{{"MARGIN"}, {"LEVERAGED", "SPOT"}}}, true},
		{"no permissions", SymbolInformation{Status: "TRADING"}, false},
	}
	for _, tc := range cases {
		if got := tc.info.Valid(); got != tc.want {
			t.Fatalf("%s: Valid() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestParseSymbolInformation(t *testing.T) {
	raw := []byte(`{"symbol":"SOL_USDC","status":"TRADING","permissionSets":[["SPOT"]]}`)
	info, err := ParseSymbolInformation(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if info.Symbol != "SOL_USDC" || !info.Valid() {
		t.Fatalf("unexpected parse result: %+v", info)
	}

	if _, err := ParseSymbolInformation([]byte(`{`)); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}

func TestDefaultFees(t *testing.T) {
	fees := DefaultFees()
	if fees.MakerPercent.String() != "0.085" {
		t.Fatalf("unexpected maker fee %s", fees.MakerPercent)
	}
	if fees.TakerPercent.String() != "0.095" {
		t.Fatalf("unexpected taker fee %s", fees.TakerPercent)
	}
	if !fees.BuyFeeDeductedFromReturns {
		t.Fatalf("buy fee must be deducted from returns")
	}
}

func TestNewClientOrderID(t *testing.T) {
	first := NewClientOrderID()
	second := NewClientOrderID()
	if !strings.HasPrefix(first, clientOrderIDPrefix) {
		t.Fatalf("expected %q prefix, got %q", clientOrderIDPrefix, first)
	}
	if first == second {
		t.Fatalf("client order ids must be unique")
	}
}
