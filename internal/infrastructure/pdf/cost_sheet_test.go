package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/Inventario-console/internal/application/inventory"
	"github.com/jhoicas/Inventario-console/internal/domain/inventory"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":        "0,00",
		"7.25":     "7,25",
		"999":      "999,00",
		"25000":    "25.000,00",
		"1234.5":   "1.234,50",
		"1000000":  "1.000.000,00",
		"-7.25":    "-7,25",
		"-1234567": "-1.234.567,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestRenderStockInCostSheet(t *testing.T) {
	lines := inventory.Allocate([]inventory.LineItem{
		{ProductID: "P1", Quantity: 10, UnitPrice: decimal.NewFromInt(5)},
		{ProductID: "P2", Quantity: 5, UnitPrice: decimal.NewFromInt(10)},
	}, inventory.Charges{Transport: decimal.NewFromInt(30), Tax: decimal.NewFromInt(15)})

	sheet := appinventory.CostSheet{
		SellerID:    "S1",
		WarehouseID: "W1",
		BatchNumber: "W1-20240309-42",
		Notes:       "Compra mensual",
		Charges:     inventory.Charges{Transport: decimal.NewFromInt(30), Tax: decimal.NewFromInt(15)},
		Totals:      inventory.Sum(lines),
	}
	for _, l := range lines {
		sheet.Lines = append(sheet.Lines, appinventory.CostSheetLine{ProductName: "Producto " + l.ProductID, Variant: "M", LineItem: l})
	}

	doc, err := NewCostSheetGenerator().RenderStockInCostSheet(context.Background(), sheet)

	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestRenderStockInCostSheet_WithoutBatch(t *testing.T) {
	doc, err := NewCostSheetGenerator().RenderStockInCostSheet(context.Background(), appinventory.CostSheet{WarehouseID: "W1"})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}
