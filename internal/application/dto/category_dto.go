package dto

// CategoryNodeResponse nodo del árbol de categorías.
type CategoryNodeResponse struct {
	CategoryID       string                 `json:"category_id"`
	Name             string                 `json:"name"`
	Description      string                 `json:"description,omitempty"`
	ParentCategoryID *string                `json:"parent_category_id"`
	Children         []CategoryNodeResponse `json:"children"`
}

// CategoryTreeResponse árbol completo. Stale indica que no se pudo reconsultar
// la API remota y el árbol es una actualización local.
type CategoryTreeResponse struct {
	Categories []CategoryNodeResponse `json:"categories"`
	Count      int                    `json:"count"`
	Stale      bool                   `json:"stale,omitempty"`
}

// CategoryRowResponse fila del árbol desplegado.
type CategoryRowResponse struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Depth       int    `json:"depth"`
	HasChildren bool   `json:"has_children"`
	Expanded    bool   `json:"expanded"`
	Selected    bool   `json:"selected"`
}

// CategoryOptionResponse opción para elegir categoría padre.
type CategoryOptionResponse struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// CategoryViewResponse vista desplegada más las opciones de padre.
type CategoryViewResponse struct {
	Rows     []CategoryRowResponse    `json:"rows"`
	Count    int                      `json:"count"`
	Selected []string                 `json:"selected"`
	Options  []CategoryOptionResponse `json:"options"`
}

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name             string  `json:"name" validate:"max=200"`
	Description      string  `json:"description" validate:"max=1000"`
	ParentCategoryID *string `json:"parent_category_id"`
}

// MergeCategoriesRequest combina las categorías seleccionadas en una nueva.
// El padre se indica por id o por nombre exacto.
type MergeCategoriesRequest struct {
	CategoryIDs      []string `json:"category_ids"`
	Name             string   `json:"name" validate:"max=200"`
	Description      string   `json:"description" validate:"max=1000"`
	ParentCategoryID *string  `json:"parent_category_id"`
	ParentName       string   `json:"parent_name"`
}

// RenameCategoriesRequest aplica el mismo nombre a todas las categorías seleccionadas.
type RenameCategoriesRequest struct {
	CategoryIDs []string `json:"category_ids"`
	NewName     string   `json:"new_name" validate:"max=200"`
}

// MergeCategoriesResponse id generado más el árbol reconsultado.
type MergeCategoriesResponse struct {
	CategoryID string               `json:"category_id"`
	Tree       CategoryTreeResponse `json:"tree"`
}

// DeleteResult resultado por id de un borrado.
type DeleteResult struct {
	CategoryID string `json:"category_id"`
	Deleted    bool   `json:"deleted"`
	Error      string `json:"error,omitempty"`
}

// DeleteCategoriesResponse resultados por id y árbol resultante.
type DeleteCategoriesResponse struct {
	Results []DeleteResult       `json:"results"`
	Failed  int                  `json:"failed"`
	Tree    CategoryTreeResponse `json:"tree"`
}
