package sellerapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository árbol de categorías en /api/seller-categories.
type CategoryRepository struct {
	c *Client
}

// NewCategoryRepository construye el repositorio.
func NewCategoryRepository(c *Client) *CategoryRepository {
	return &CategoryRepository{c: c}
}

type newCategoryBody struct {
	SellerID       string  `json:"sellerId"`
	CategoryID     string  `json:"categoryId,omitempty"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	ParentCategory *string `json:"parentCategory"`
}

type mergeBody struct {
	CategoryIDs []string        `json:"categoryIds"`
	NewCategory newCategoryBody `json:"newCategory"`
}

type renameBody struct {
	CategoryIDs []string `json:"categoryIds"`
	NewName     string   `json:"newName"`
}

func toNewCategoryBody(in entity.NewCategory) newCategoryBody {
	return newCategoryBody{
		SellerID:       in.SellerID,
		CategoryID:     in.CategoryID,
		Name:           in.Name,
		Description:    in.Description,
		ParentCategory: in.ParentCategoryID,
	}
}

// Tree árbol anidado del vendedor. La API devuelve el arreglo sin envoltorio.
func (r *CategoryRepository) Tree(ctx context.Context, sess *entity.Session) ([]entity.CategoryNode, error) {
	sellerID, err := requireSeller(sess)
	if err != nil {
		return nil, err
	}
	var tree []entity.CategoryNode
	err = r.c.do(ctx, request{
		op:     "categories.tree",
		method: http.MethodGet,
		path:   "/api/seller-categories/all-categories",
		query:  url.Values{"sellerId": {sellerID}},
		token:  tokenOf(sess),
	}, &tree)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		tree = []entity.CategoryNode{}
	}
	return tree, nil
}

// Create alta de una categoría; ParentCategoryID nil la deja como raíz.
func (r *CategoryRepository) Create(ctx context.Context, sess *entity.Session, in entity.NewCategory) error {
	return r.c.do(ctx, request{
		op:     "categories.create",
		method: http.MethodPost,
		path:   "/api/seller-categories/create",
		token:  tokenOf(sess),
		body:   toNewCategoryBody(in),
	}, nil)
}

// Merge reemplaza las categorías seleccionadas por una nueva.
func (r *CategoryRepository) Merge(ctx context.Context, sess *entity.Session, in entity.CategoryMerge) error {
	return r.c.do(ctx, request{
		op:     "categories.merge",
		method: http.MethodPost,
		path:   "/api/seller-categories/merge",
		token:  tokenOf(sess),
		body:   mergeBody{CategoryIDs: in.CategoryIDs, NewCategory: toNewCategoryBody(in.NewCategory)},
	}, nil)
}

// Rename asigna newName a todas las categorías en una sola llamada.
func (r *CategoryRepository) Rename(ctx context.Context, sess *entity.Session, categoryIDs []string, newName string) error {
	return r.c.do(ctx, request{
		op:     "categories.rename",
		method: http.MethodPost,
		path:   "/api/seller-categories/rename",
		token:  tokenOf(sess),
		body:   renameBody{CategoryIDs: categoryIDs, NewName: newName},
	}, nil)
}

// Delete elimina una categoría.
func (r *CategoryRepository) Delete(ctx context.Context, sess *entity.Session, categoryID string) error {
	return r.c.do(ctx, request{
		op:     "categories.delete",
		method: http.MethodDelete,
		path:   "/api/seller-categories/" + url.PathEscape(categoryID),
		token:  tokenOf(sess),
	}, nil)
}
