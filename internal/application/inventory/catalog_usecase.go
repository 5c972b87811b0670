package inventory

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
	"github.com/jhoicas/Inventario-console/internal/domain/search"
)

// CatalogUseCase catálogo del vendedor para elegir qué variantes dar de alta en una bodega.
type CatalogUseCase struct {
	products repository.ProductRepository
	inv      repository.InventoryRepository
	log      zerolog.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository, inv repository.InventoryRepository, log zerolog.Logger) *CatalogUseCase {
	return &CatalogUseCase{products: products, inv: inv, log: log}
}

// Products lista el catálogo filtrado por nombre o marca. Con warehouseID marca las
// variantes que la bodega ya tiene; sin él solo lista.
func (uc *CatalogUseCase) Products(ctx context.Context, sess *entity.Session, warehouseID, term string) (*dto.CatalogResponse, error) {
	warehouseID = strings.TrimSpace(warehouseID)

	var (
		products []entity.Product
		items    []entity.InventoryItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = uc.products.ListBySeller(gctx, sess)
		if err != nil {
			uc.log.Error().Err(err).Str("seller_id", sess.SellerID()).Msg("catálogo: listar productos")
		}
		return err
	})
	if warehouseID != "" {
		g.Go(func() error {
			var err error
			items, err = uc.inv.ListByWarehouse(gctx, sess, warehouseID)
			if err != nil {
				uc.log.Error().Err(err).Str("warehouse_id", warehouseID).Msg("catálogo: ítems de la bodega")
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stocked := make(map[string]map[string]struct{}, len(items))
	for _, it := range items {
		vs, ok := stocked[it.ProductID]
		if !ok {
			vs = make(map[string]struct{})
			stocked[it.ProductID] = vs
		}
		vs[it.VariantID] = struct{}{}
	}

	out := &dto.CatalogResponse{
		WarehouseID: warehouseID,
		Products:    make([]dto.CatalogProductResponse, 0, len(products)),
		Query:       strings.TrimSpace(term),
	}
	for i := range products {
		p := &products[i]
		if !search.AnyContains(term, p.Name, p.Brand) {
			continue
		}
		vs, inWarehouse := stocked[p.ProductID]
		row := dto.CatalogProductResponse{
			ID:          p.StorageID,
			ProductID:   p.ProductID,
			Name:        p.Name,
			Brand:       p.Brand,
			Image:       p.FirstImage(),
			InWarehouse: inWarehouse,
			Variants:    make([]dto.CatalogVariantResponse, 0, len(p.Variants)),
		}
		for _, v := range p.Variants {
			_, has := vs[v.VariantID]
			row.Variants = append(row.Variants, dto.CatalogVariantResponse{
				VariantID:   v.VariantID,
				Label:       v.VariantType.Label(),
				InWarehouse: has,
			})
		}
		out.Products = append(out.Products, row)
	}
	out.Total = len(out.Products)
	return out, nil
}
