package inventory

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

// LookupResult resultado etiquetado de la consulta de un producto.
// Missing es true si la consulta falló o la respuesta no trae productId.
type LookupResult struct {
	ProductID string
	Product   *entity.Product
	Missing   bool
	Err       error
}

// LookupTable resultados en el orden de los ids únicos más un índice por productId.
type LookupTable struct {
	Results []LookupResult
	byID    map[string]LookupResult
}

// Get resultado de un producto.
func (t LookupTable) Get(productID string) (LookupResult, bool) {
	r, ok := t.byID[productID]
	return r, ok
}

// Product producto encontrado o nil.
func (t LookupTable) Product(productID string) *entity.Product {
	r, ok := t.byID[productID]
	if !ok || r.Missing {
		return nil
	}
	return r.Product
}

// MissingIDs ids cuya consulta no produjo producto.
func (t LookupTable) MissingIDs() []string {
	out := make([]string, 0)
	for _, r := range t.Results {
		if r.Missing {
			out = append(out, r.ProductID)
		}
	}
	return out
}

// ProductLookup consulta productos en paralelo, una petición por id único.
type ProductLookup struct {
	repo  repository.ProductRepository
	limit int
	log   zerolog.Logger
}

// NewProductLookup limit acota las peticiones simultáneas (<= 0 sin tope).
func NewProductLookup(repo repository.ProductRepository, limit int, log zerolog.Logger) *ProductLookup {
	return &ProductLookup{repo: repo, limit: limit, log: log}
}

// Lookup lanza las consultas y espera a todas. Ninguna tarea devuelve error al grupo:
// cada fallo queda capturado en su LookupResult y no interrumpe a las demás.
// Las peticiones usan ctx: se cortan al vencer el plazo de la petición entrante.
func (l *ProductLookup) Lookup(ctx context.Context, sess *entity.Session, productIDs []string) LookupTable {
	ids := uniqueIDs(productIDs)
	results := make([]LookupResult, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	if l.limit > 0 {
		g.SetLimit(l.limit)
	}
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			results[i] = l.fetch(gctx, sess, id)
			return nil
		})
	}
	_ = g.Wait()

	table := LookupTable{Results: results, byID: make(map[string]LookupResult, len(results))}
	for _, r := range results {
		table.byID[r.ProductID] = r
	}
	return table
}

func (l *ProductLookup) fetch(ctx context.Context, sess *entity.Session, productID string) LookupResult {
	p, err := l.repo.GetByID(ctx, sess, productID)
	switch {
	case err != nil:
		l.log.Warn().Err(err).Str("product_id", productID).Msg("producto: consulta fallida")
		return LookupResult{ProductID: productID, Missing: true, Err: err}
	case p == nil || p.ProductID == "":
		l.log.Warn().Str("product_id", productID).Msg("producto: respuesta sin productId")
		return LookupResult{ProductID: productID, Missing: true}
	default:
		return LookupResult{ProductID: productID, Product: p}
	}
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
