package backpack

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SymbolInformation is the subset of the venue's market metadata the
// connector needs to decide tradability.
type SymbolInformation struct {
	Symbol         string     `json:"symbol"`
	Status         string     `json:"status"`
	PermissionSets [][]string `json:"permissionSets"`
}

// ParseSymbolInformation decodes one market entry from the venue's
// markets payload.
func ParseSymbolInformation(raw []byte) (SymbolInformation, error) {
	var info SymbolInformation
	if err := json.Unmarshal(raw, &info); err != nil {
		return SymbolInformation{}, fmt.Errorf("decode symbol information: %w", err)
	}
	return info, nil
}

// Valid reports whether the symbol is enabled for spot trading: the
// market must be in TRADING status and carry a permission set that
// includes SPOT.
func (s SymbolInformation) Valid() bool {
	if s.Status != "TRADING" {
		return false
	}
	for _, set := range s.PermissionSets {
		for _, permission := range set {
			if permission == "SPOT" {
				return true
			}
		}
	}
	return false
}

// TradeFees captures the venue's default fee schedule.
type TradeFees struct {
	MakerPercent              decimal.Decimal
	TakerPercent              decimal.Decimal
	BuyFeeDeductedFromReturns bool
}

// DefaultFees returns the venue default maker/taker percentages.
func DefaultFees() TradeFees {
	return TradeFees{
		MakerPercent:              decimal.RequireFromString("0.085"),
		TakerPercent:              decimal.RequireFromString("0.095"),
		BuyFeeDeductedFromReturns: true,
	}
}

// NewClientOrderID returns a fresh client order identifier.
func NewClientOrderID() string {
	return clientOrderIDPrefix + uuid.NewString()
}
