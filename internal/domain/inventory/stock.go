package inventory

import (
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// defaultMaxStockLevel se usa cuando el ítem no define maximumStockLevel.
const defaultMaxStockLevel = 100

// ClampStockOutQuantity limita una salida a [1, onHand]. Si onHand < 1 devuelve 1
// y la API remota decide si acepta la salida.
func ClampStockOutQuantity(requested, onHand int64) int64 {
	q := requested
	if q > onHand {
		q = onHand
	}
	if q < 1 {
		q = 1
	}
	return q
}

// GenerateBatchNumber número de lote <bodega>-<yyyymmdd>-<0..999>.
// rnd recibe el límite exclusivo, p. ej. rand.Intn.
func GenerateBatchNumber(warehouseID string, now time.Time, rnd func(int) int) string {
	return fmt.Sprintf("%s-%s-%d", warehouseID, now.Format("20060102"), rnd(1000))
}

// Level nivel de ocupación de un ítem respecto a su máximo.
type Level struct {
	OnHand       int64
	ReorderPoint int64
	MaxLevel     int64
	UsagePercent float64
	BelowReorder bool
}

// StockLevel calcula el porcentaje de uso (tope 100) y si el ítem está en o bajo el punto de reorden.
func StockLevel(item entity.InventoryItem) Level {
	maxLevel := item.MaximumStockLevel
	if maxLevel <= 0 {
		maxLevel = defaultMaxStockLevel
	}
	usage := float64(item.QuantityOnHand) / float64(maxLevel) * 100
	if usage > 100 {
		usage = 100
	}
	if usage < 0 {
		usage = 0
	}
	return Level{
		OnHand:       item.QuantityOnHand,
		ReorderPoint: item.ReorderPoint,
		MaxLevel:     maxLevel,
		UsagePercent: usage,
		BelowReorder: item.QuantityOnHand <= item.ReorderPoint,
	}
}
