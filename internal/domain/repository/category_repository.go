package repository

import (
	"context"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// CategoryRepository puerto hacia el árbol de categorías del vendedor en la API remota (DIP).
// Las escrituras no devuelven el árbol: el llamador vuelve a consultar Tree.
type CategoryRepository interface {
	Tree(ctx context.Context, sess *entity.Session) ([]entity.CategoryNode, error)
	Create(ctx context.Context, sess *entity.Session, in entity.NewCategory) error
	Merge(ctx context.Context, sess *entity.Session, in entity.CategoryMerge) error
	Rename(ctx context.Context, sess *entity.Session, categoryIDs []string, newName string) error
	Delete(ctx context.Context, sess *entity.Session, categoryID string) error
}
