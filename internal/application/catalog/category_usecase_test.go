package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
	domcatalog "github.com/jhoicas/Inventario-console/internal/domain/catalog"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de la API remota
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	tree       []entity.CategoryNode
	treeCalls  int
	treeErrAt  map[int]error // número de llamada (1-based) que falla
	createErr  error
	mergeErr   error
	deleteErrs map[string]error

	created []entity.NewCategory
	merged  []entity.CategoryMerge
	renamed [][]string
	newName string
	deleted []string
}

func (f *fakeCategoryRepo) Tree(_ context.Context, _ *entity.Session) ([]entity.CategoryNode, error) {
	f.treeCalls++
	if err, ok := f.treeErrAt[f.treeCalls]; ok {
		return nil, err
	}
	return f.tree, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, _ *entity.Session, in entity.NewCategory) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, in)
	f.tree = append(f.tree, entity.CategoryNode{CategoryID: "NEW", Name: in.Name})
	return nil
}

func (f *fakeCategoryRepo) Merge(_ context.Context, _ *entity.Session, in entity.CategoryMerge) error {
	if f.mergeErr != nil {
		return f.mergeErr
	}
	f.merged = append(f.merged, in)
	f.tree = domcatalog.RemoveByIDs(f.tree, domcatalog.NewIDSet(in.CategoryIDs...))
	f.tree = append(f.tree, entity.CategoryNode{CategoryID: in.NewCategory.CategoryID, Name: in.NewCategory.Name})
	return nil
}

func (f *fakeCategoryRepo) Rename(_ context.Context, _ *entity.Session, ids []string, newName string) error {
	f.renamed = append(f.renamed, ids)
	f.newName = newName
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, _ *entity.Session, id string) error {
	if err := f.deleteErrs[id]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, id)
	f.tree = domcatalog.RemoveByIDs(f.tree, domcatalog.NewIDSet(id))
	return nil
}

func ptr(s string) *string { return &s }

func seedTree() []entity.CategoryNode {
	return []entity.CategoryNode{
		{CategoryID: "A", Name: "Ropa", Children: []entity.CategoryNode{
			{CategoryID: "A1", Name: "Camisas", ParentCategoryID: ptr("A")},
			{CategoryID: "A2", Name: "Pantalones", ParentCategoryID: ptr("A")},
		}},
		{CategoryID: "B", Name: "Hogar"},
		{CategoryID: "C", Name: "Jardín"},
	}
}

var testSession = &entity.Session{ID: "sess", Username: "maria", Token: "tok", Seller: entity.SellerInfo{SellerID: "S-1"}}

func newUC(repo *fakeCategoryRepo) *CategoryUseCase {
	uc := NewCategoryUseCase(repo, zerolog.Nop())
	uc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Merge
// ──────────────────────────────────────────────────────────────────────────────

func TestMerge_RequiresTwoDistinctIDs(t *testing.T) {
	repo := &fakeCategoryRepo{tree: seedTree()}
	uc := newUC(repo)

	_, err := uc.Merge(context.Background(), testSession, dto.MergeCategoriesRequest{CategoryIDs: []string{"B"}, Name: "X"})
	assert.ErrorIs(t, err, domain.ErrMergeSelection)

	_, err = uc.Merge(context.Background(), testSession, dto.MergeCategoriesRequest{CategoryIDs: []string{"B", "B", " "}, Name: "X"})
	assert.ErrorIs(t, err, domain.ErrMergeSelection)

	assert.Zero(t, repo.treeCalls, "no se contacta la API remota")
	assert.Empty(t, repo.merged)
}

func TestMerge_GeneratesIDAndRefetches(t *testing.T) {
	repo := &fakeCategoryRepo{tree: seedTree()}
	uc := newUC(repo)

	out, err := uc.Merge(context.Background(), testSession, dto.MergeCategoriesRequest{
		CategoryIDs: []string{"B", "C"},
		Name:        "  Casa  ",
		ParentName:  "Ropa",
	})
	require.NoError(t, err)

	assert.Equal(t, "CAT-MERGE-LOYW3V28", out.CategoryID)
	require.Len(t, repo.merged, 1)
	m := repo.merged[0]
	assert.Equal(t, []string{"B", "C"}, m.CategoryIDs)
	assert.Equal(t, "Casa", m.NewCategory.Name)
	assert.Equal(t, "S-1", m.NewCategory.SellerID)
	require.NotNil(t, m.NewCategory.ParentCategoryID)
	assert.Equal(t, "A", *m.NewCategory.ParentCategoryID)

	ids := []string{}
	for _, n := range out.Tree.Categories {
		ids = append(ids, n.CategoryID)
	}
	assert.Equal(t, []string{"A", "CAT-MERGE-LOYW3V28"}, ids)
	assert.False(t, out.Tree.Stale)
}

func TestMerge_ParentNotFoundAborts(t *testing.T) {
	repo := &fakeCategoryRepo{tree: seedTree()}
	uc := newUC(repo)

	_, err := uc.Merge(context.Background(), testSession, dto.MergeCategoriesRequest{
		CategoryIDs: []string{"B", "C"}, Name: "Casa", ParentName: "Inexistente",
	})
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
	assert.Empty(t, repo.merged)
}

func TestMerge_ParentInsideSelection(t *testing.T) {
	repo := &fakeCategoryRepo{tree: seedTree()}
	uc := newUC(repo)

	_, err := uc.Merge(context.Background(), testSession, dto.MergeCategoriesRequest{
		CategoryIDs: []string{"B", "C"}, Name: "Casa", ParentCategoryID: ptr("C"),
	})
	assert.ErrorIs(t, err, domain.ErrParentInMerge)
}

func TestMerge_CollaboratorError(t *testing.T) {
	repo := &fakeCategoryRepo{tree: seedTree(), mergeErr: domain.ErrUpstream}
	uc := newUC(repo)

	_, err := uc.Merge(context.Background(), testSession, dto.MergeCategoriesRequest{CategoryIDs: []string{"B", "C"}, Name: "Casa"})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Rename
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Validation(t *testing.T) {
	repo := &fakeCategoryRepo{tree: seedTree()}
	uc := newUC(repo)

	_, err := uc.Create(context.Background(), testSession, dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = uc.Create(context.Background(), testSession, dto.CreateCategoryRequest{Name: "Nueva", ParentCategoryID: ptr("ZZ")})
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
	assert.Empty(t, repo.created)
}

func TestCreate_WithParent(t *testing.T) {
	repo := &fakeCategoryRepo{tree: seedTree()}
	uc := newUC(repo)

	out, err := uc.Create(context.Background(), testSession, dto.CreateCategoryRequest{
		Name: " Medias ", Description: " algodón ", ParentCategoryID: ptr("A1"),
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Medias", repo.created[0].Name)
	assert.Equal(t, "algodón", repo.created[0].Description)
	assert.Equal(t, "A1", *repo.created[0].ParentCategoryID)
	assert.Equal(t, 6, out.Count)
}

func TestCreate_BlankParentMeansRoot(t *testing.T) {
	repo := &fakeCategoryRepo{tree: seedTree()}
	uc := newUC(repo)

	_, err := uc.Create(context.Background(), testSession, dto.CreateCategoryRequest{Name: "Raíz", ParentCategoryID: ptr(" ")})
	require.NoError(t, err)
	assert.Nil(t, repo.created[0].ParentCategoryID)
	assert.Equal(t, 1, repo.treeCalls, "solo la reconsulta")
}

func TestRename_BatchSameName(t *testing.T) {
	repo := &fakeCategoryRepo{tree: seedTree()}
	uc := newUC(repo)

	_, err := uc.Rename(context.Background(), testSession, dto.RenameCategoriesRequest{NewName: "X"})
	assert.ErrorIs(t, err, domain.ErrEmptySelection)

	_, err = uc.Rename(context.Background(), testSession, dto.RenameCategoriesRequest{CategoryIDs: []string{"B"}, NewName: ""})
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = uc.Rename(context.Background(), testSession, dto.RenameCategoriesRequest{CategoryIDs: []string{"B", "C"}, NewName: " Hogar y jardín "})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"B", "C"}}, repo.renamed)
	assert.Equal(t, "Hogar y jardín", repo.newName)
}

func TestRename_RefetchFailureIsReported(t *testing.T) {
	repo := &fakeCategoryRepo{tree: seedTree(), treeErrAt: map[int]error{1: domain.ErrUpstream}}
	uc := newUC(repo)

	_, err := uc.Rename(context.Background(), testSession, dto.RenameCategoriesRequest{CategoryIDs: []string{"B"}, NewName: "Casa"})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_BestEffortPerID(t *testing.T) {
	boom := errors.New("boom")
	repo := &fakeCategoryRepo{tree: seedTree(), deleteErrs: map[string]error{"B": boom}}
	uc := newUC(repo)

	out, err := uc.Delete(context.Background(), testSession, []string{"A1", "B", "C"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A1", "C"}, repo.deleted, "se intentan todos, en orden")
	require.Len(t, out.Results, 3)
	assert.True(t, out.Results[0].Deleted)
	assert.False(t, out.Results[1].Deleted)
	assert.Equal(t, "boom", out.Results[1].Error)
	assert.True(t, out.Results[2].Deleted)
	assert.Equal(t, 1, out.Failed)

	assert.False(t, out.Tree.Stale)
	assert.Equal(t, 3, out.Tree.Count) // A, A2, B
}

func TestDelete_RefetchFailsFallsBackToLocalRemoval(t *testing.T) {
	repo := &fakeCategoryRepo{tree: seedTree(), treeErrAt: map[int]error{2: domain.ErrUpstream}}
	uc := newUC(repo)

	out, err := uc.Delete(context.Background(), testSession, []string{"A2"})
	require.NoError(t, err)
	assert.True(t, out.Tree.Stale)
	assert.Equal(t, 4, out.Tree.Count)
	require.Len(t, out.Tree.Categories[0].Children, 1)
	assert.Equal(t, "A1", out.Tree.Categories[0].Children[0].CategoryID)
}

func TestDelete_InitialFetchFailsDeletesNothing(t *testing.T) {
	repo := &fakeCategoryRepo{tree: seedTree(), treeErrAt: map[int]error{1: domain.ErrUpstream}}
	uc := newUC(repo)

	_, err := uc.Delete(context.Background(), testSession, []string{"B"})
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Empty(t, repo.deleted)

	_, err = uc.Delete(context.Background(), testSession, nil)
	assert.ErrorIs(t, err, domain.ErrEmptySelection)
}

func TestDelete_CancelledContextStopsIssuing(t *testing.T) {
	repo := &fakeCategoryRepo{tree: seedTree()}
	uc := newUC(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := uc.Delete(ctx, testSession, []string{"B", "C"})
	require.NoError(t, err)
	assert.Empty(t, repo.deleted)
	assert.Equal(t, 2, out.Failed)
}

// ──────────────────────────────────────────────────────────────────────────────
// View
// ──────────────────────────────────────────────────────────────────────────────

func TestView(t *testing.T) {
	repo := &fakeCategoryRepo{tree: seedTree()}
	uc := newUC(repo)

	out, err := uc.View(context.Background(), testSession, domcatalog.NewIDSet("A"), domcatalog.NewIDSet("A2"))
	require.NoError(t, err)
	require.Len(t, out.Rows, 5)
	assert.Equal(t, 1, out.Rows[2].Depth)
	assert.True(t, out.Rows[2].Selected)
	assert.Equal(t, 5, out.Count)
	assert.Len(t, out.Options, 5)
	assert.Equal(t, []string{"A2"}, out.Selected)
}
