// Package catalog casos de uso del editor de categorías. Cada escritura se envía a la
// API remota y luego se reconsulta el árbol: el árbol combinado o renombrado nunca se
// construye localmente.
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
	domcatalog "github.com/jhoicas/Inventario-console/internal/domain/catalog"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

const mergeIDPrefix = "CAT-MERGE-"

// CategoryUseCase orquesta las operaciones sobre el árbol de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, log zerolog.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, log: log, now: time.Now}
}

// Tree consulta el árbol autoritativo y registra inconsistencias sin fallar.
func (uc *CategoryUseCase) Tree(ctx context.Context, sess *entity.Session) ([]entity.CategoryNode, error) {
	tree, err := uc.repo.Tree(ctx, sess)
	if err != nil {
		uc.log.Error().Err(err).Str("seller_id", sess.SellerID()).Msg("categorías: consultar árbol")
		return nil, err
	}
	for _, v := range domcatalog.Validate(tree) {
		uc.log.Warn().Str("seller_id", sess.SellerID()).Str("category_id", v.CategoryID).Msg("categorías: " + v.Reason)
	}
	return tree, nil
}

// GetTree árbol completo para GET /api/categories.
func (uc *CategoryUseCase) GetTree(ctx context.Context, sess *entity.Session) (*dto.CategoryTreeResponse, error) {
	tree, err := uc.Tree(ctx, sess)
	if err != nil {
		return nil, err
	}
	out := toTreeResponse(tree, false)
	return &out, nil
}

// View árbol desplegado según los ids expandidos y seleccionados.
func (uc *CategoryUseCase) View(ctx context.Context, sess *entity.Session, expanded, selected domcatalog.IDSet) (*dto.CategoryViewResponse, error) {
	tree, err := uc.Tree(ctx, sess)
	if err != nil {
		return nil, err
	}
	rows := domcatalog.Render(tree, expanded, selected)
	out := &dto.CategoryViewResponse{
		Rows:     make([]dto.CategoryRowResponse, 0, len(rows)),
		Count:    domcatalog.Count(tree),
		Selected: selected.Slice(),
		Options:  toOptions(domcatalog.Flatten(tree)),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.CategoryRowResponse{
			CategoryID:  r.CategoryID,
			Name:        r.Name,
			Description: r.Description,
			Depth:       r.Depth,
			HasChildren: r.HasChildren,
			Expanded:    r.Expanded,
			Selected:    r.Selected,
		})
	}
	return out, nil
}

// ParentOptions lista plana (pre-orden) para elegir la categoría padre.
func (uc *CategoryUseCase) ParentOptions(ctx context.Context, sess *entity.Session) ([]dto.CategoryOptionResponse, error) {
	tree, err := uc.Tree(ctx, sess)
	if err != nil {
		return nil, err
	}
	return toOptions(domcatalog.Flatten(tree)), nil
}

// Create crea una categoría, opcionalmente bajo un padre existente.
func (uc *CategoryUseCase) Create(ctx context.Context, sess *entity.Session, in dto.CreateCategoryRequest) (*dto.CategoryTreeResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	parent := trimmedPtr(in.ParentCategoryID)
	if parent != nil {
		tree, err := uc.Tree(ctx, sess)
		if err != nil {
			return nil, err
		}
		if _, ok := domcatalog.FindByID(tree, *parent); !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrParentNotFound, *parent)
		}
	}

	err := uc.repo.Create(ctx, sess, entity.NewCategory{
		SellerID:         sess.SellerID(),
		Name:             name,
		Description:      strings.TrimSpace(in.Description),
		ParentCategoryID: parent,
	})
	if err != nil {
		uc.log.Error().Err(err).Str("seller_id", sess.SellerID()).Str("name", name).Msg("categorías: crear")
		return nil, err
	}
	return uc.reload(ctx, sess, "crear")
}

// Merge reemplaza las categorías seleccionadas por una nueva con id CAT-MERGE-<base36>.
func (uc *CategoryUseCase) Merge(ctx context.Context, sess *entity.Session, in dto.MergeCategoriesRequest) (*dto.MergeCategoriesResponse, error) {
	ids := domcatalog.NewIDSet(in.CategoryIDs...)
	if ids.Len() < 2 {
		return nil, domain.ErrMergeSelection
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	parent := trimmedPtr(in.ParentCategoryID)
	parentName := strings.TrimSpace(in.ParentName)
	if parent != nil || parentName != "" {
		tree, err := uc.Tree(ctx, sess)
		if err != nil {
			return nil, err
		}
		switch {
		case parent != nil:
			if _, ok := domcatalog.FindByID(tree, *parent); !ok {
				return nil, fmt.Errorf("%w: %s", domain.ErrParentNotFound, *parent)
			}
		default:
			opt, ok := domcatalog.FindByName(tree, parentName)
			if !ok {
				return nil, fmt.Errorf("%w: %q", domain.ErrParentNotFound, parentName)
			}
			parent = &opt.CategoryID
		}
		if ids.Has(*parent) {
			return nil, domain.ErrParentInMerge
		}
	}

	newID := uc.mergeID()
	err := uc.repo.Merge(ctx, sess, entity.CategoryMerge{
		CategoryIDs: ids.Slice(),
		NewCategory: entity.NewCategory{
			SellerID:         sess.SellerID(),
			CategoryID:       newID,
			Name:             name,
			Description:      strings.TrimSpace(in.Description),
			ParentCategoryID: parent,
		},
	})
	if err != nil {
		uc.log.Error().Err(err).Strs("category_ids", ids.Slice()).Msg("categorías: combinar")
		return nil, err
	}
	tree, err := uc.reload(ctx, sess, "combinar")
	if err != nil {
		return nil, err
	}
	return &dto.MergeCategoriesResponse{CategoryID: newID, Tree: *tree}, nil
}

// Rename aplica el mismo nombre a todas las categorías seleccionadas.
func (uc *CategoryUseCase) Rename(ctx context.Context, sess *entity.Session, in dto.RenameCategoriesRequest) (*dto.CategoryTreeResponse, error) {
	ids := domcatalog.NewIDSet(in.CategoryIDs...)
	if ids.Len() == 0 {
		return nil, domain.ErrEmptySelection
	}
	name := strings.TrimSpace(in.NewName)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if err := uc.repo.Rename(ctx, sess, ids.Slice(), name); err != nil {
		uc.log.Error().Err(err).Strs("category_ids", ids.Slice()).Msg("categorías: renombrar")
		return nil, err
	}
	return uc.reload(ctx, sess, "renombrar")
}

// Delete borra cada id con una petición independiente y secuencial. Un fallo no detiene
// los demás; el resultado se informa por id. Si la reconsulta final falla se devuelve el
// árbol previo sin los ids borrados, marcado como Stale.
func (uc *CategoryUseCase) Delete(ctx context.Context, sess *entity.Session, categoryIDs []string) (*dto.DeleteCategoriesResponse, error) {
	ids := domcatalog.NewIDSet(categoryIDs...)
	if ids.Len() == 0 {
		return nil, domain.ErrEmptySelection
	}
	before, err := uc.Tree(ctx, sess)
	if err != nil {
		return nil, err
	}

	out := &dto.DeleteCategoriesResponse{Results: make([]dto.DeleteResult, 0, ids.Len())}
	deleted := make([]string, 0, ids.Len())
	for _, id := range ids.Slice() {
		if ctxErr := ctx.Err(); ctxErr != nil {
			out.Results = append(out.Results, dto.DeleteResult{CategoryID: id, Error: ctxErr.Error()})
			out.Failed++
			continue
		}
		if err := uc.repo.Delete(ctx, sess, id); err != nil {
			uc.log.Error().Err(err).Str("category_id", id).Msg("categorías: borrar")
			out.Results = append(out.Results, dto.DeleteResult{CategoryID: id, Error: err.Error()})
			out.Failed++
			continue
		}
		deleted = append(deleted, id)
		out.Results = append(out.Results, dto.DeleteResult{CategoryID: id, Deleted: true})
	}

	after, err := uc.repo.Tree(ctx, sess)
	if err != nil {
		uc.log.Warn().Err(err).Msg("categorías: reconsulta tras borrar; se usa árbol local")
		out.Tree = toTreeResponse(domcatalog.RemoveByIDs(before, domcatalog.NewIDSet(deleted...)), true)
		return out, nil
	}
	out.Tree = toTreeResponse(after, false)
	return out, nil
}

func (uc *CategoryUseCase) reload(ctx context.Context, sess *entity.Session, op string) (*dto.CategoryTreeResponse, error) {
	tree, err := uc.Tree(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("%s aplicado, recargar árbol: %w", op, err)
	}
	out := toTreeResponse(tree, false)
	return &out, nil
}

func (uc *CategoryUseCase) mergeID() string {
	return mergeIDPrefix + strings.ToUpper(strconv.FormatInt(uc.now().UnixMilli(), 36))
}

func trimmedPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

func toTreeResponse(tree []entity.CategoryNode, stale bool) dto.CategoryTreeResponse {
	return dto.CategoryTreeResponse{
		Categories: toNodeResponses(tree),
		Count:      domcatalog.Count(tree),
		Stale:      stale,
	}
}

func toNodeResponses(nodes []entity.CategoryNode) []dto.CategoryNodeResponse {
	out := make([]dto.CategoryNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, dto.CategoryNodeResponse{
			CategoryID:       n.CategoryID,
			Name:             n.Name,
			Description:      n.Description,
			ParentCategoryID: n.ParentCategoryID,
			Children:         toNodeResponses(n.Children),
		})
	}
	return out
}

func toOptions(opts []entity.CategoryOption) []dto.CategoryOptionResponse {
	out := make([]dto.CategoryOptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, dto.CategoryOptionResponse{CategoryID: o.CategoryID, Name: o.Name})
	}
	return out
}
