package entity

import "encoding/json"

// CategoryNode nodo del árbol de categorías del vendedor.
// La identidad es CategoryID; StorageID (_id) es el identificador interno de la API remota.
type CategoryNode struct {
	CategoryID       string
	StorageID        string
	Name             string
	Description      string
	ParentCategoryID *string // nil en las raíces
	Children         []CategoryNode
}

// HasChildren indica si el nodo tiene subcategorías.
func (n CategoryNode) HasChildren() bool { return len(n.Children) > 0 }

type categoryNodeJSON struct {
	CategoryID       string         `json:"categoryId"`
	StorageID        string         `json:"_id,omitempty"`
	Name             string         `json:"name"`
	Description      string         `json:"description,omitempty"`
	ParentCategoryID *string        `json:"parentCategoryId"`
	Children         []CategoryNode `json:"children"`
}

// MarshalJSON emite siempre children y parentCategoryId.
func (n CategoryNode) MarshalJSON() ([]byte, error) {
	children := n.Children
	if children == nil {
		children = []CategoryNode{}
	}
	return json.Marshal(categoryNodeJSON{
		CategoryID:       n.CategoryID,
		StorageID:        n.StorageID,
		Name:             n.Name,
		Description:      n.Description,
		ParentCategoryID: n.ParentCategoryID,
		Children:         children,
	})
}

// UnmarshalJSON acepta los hijos bajo "children" o "subCategories"
// y el padre bajo "parentCategoryId" o "parentCategory".
func (n *CategoryNode) UnmarshalJSON(data []byte) error {
	var raw struct {
		CategoryID       string          `json:"categoryId"`
		StorageID        string          `json:"_id"`
		Name             string          `json:"name"`
		Description      string          `json:"description"`
		ParentCategoryID *string         `json:"parentCategoryId"`
		ParentCategory   json.RawMessage `json:"parentCategory"`
		Children         []CategoryNode  `json:"children"`
		SubCategories    []CategoryNode  `json:"subCategories"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = CategoryNode{
		CategoryID:       raw.CategoryID,
		StorageID:        raw.StorageID,
		Name:             raw.Name,
		Description:      raw.Description,
		ParentCategoryID: raw.ParentCategoryID,
		Children:         raw.Children,
	}
	if len(n.Children) == 0 && len(raw.SubCategories) > 0 {
		n.Children = raw.SubCategories
	}
	if n.ParentCategoryID == nil && len(raw.ParentCategory) > 0 {
		// parentCategory puede venir como string o como objeto poblado {categoryId: ...}
		var id string
		if err := json.Unmarshal(raw.ParentCategory, &id); err == nil {
			if id != "" {
				n.ParentCategoryID = &id
			}
		} else {
			var obj struct {
				CategoryID string `json:"categoryId"`
			}
			if err := json.Unmarshal(raw.ParentCategory, &obj); err == nil && obj.CategoryID != "" {
				n.ParentCategoryID = &obj.CategoryID
			}
		}
	}
	return nil
}

// CategoryOption par id/nombre para listas de selección de padre.
type CategoryOption struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
}

// NewCategory datos para crear una categoría en la API remota.
type NewCategory struct {
	SellerID         string
	CategoryID       string // vacío: lo asigna la API remota
	Name             string
	Description      string
	ParentCategoryID *string
}

// CategoryMerge combina varias categorías en una nueva.
type CategoryMerge struct {
	CategoryIDs []string
	NewCategory NewCategory
}
