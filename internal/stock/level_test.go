package stock

import (
	"testing"

	"github.com/motorhub/motorhub-backend/pkg/enums"
)

func TestDeriveStockLevel(t *testing.T) {
	cases := []struct {
		name          string
		qtyAvailable  int
		recorderLevel int
		want          enums.StockLevel
	}{
		{"zero quantity is critical", 0, 5, enums.StockLevelCritical},
		{"quarter of threshold is critical", 1, 4, enums.StockLevelCritical},
		{"just above quarter is low", 2, 4, enums.StockLevelLow},
		{"at threshold is low", 4, 4, enums.StockLevelLow},
		{"above threshold is medium", 5, 4, enums.StockLevelMedium},
		{"double threshold is medium", 8, 4, enums.StockLevelMedium},
		{"above double threshold is high", 9, 4, enums.StockLevelHigh},
		{"zero threshold clamps to one", 10, 0, enums.StockLevelHigh},
		{"zero quantity with zero threshold", 0, 0, enums.StockLevelCritical},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveStockLevel(tc.qtyAvailable, tc.recorderLevel)
			if got != tc.want {
				t.Fatalf("DeriveStockLevel(%d, %d) = %s, want %s", tc.qtyAvailable, tc.recorderLevel, got, tc.want)
			}
		})
	}
}
