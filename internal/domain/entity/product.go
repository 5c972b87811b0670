package entity

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Product producto del catálogo del vendedor tal como lo expone la API remota.
type Product struct {
	StorageID string           `json:"_id"`
	ProductID string           `json:"productId"`
	Name      string           `json:"name"`
	Brand     string           `json:"brand,omitempty"`
	Images    []string         `json:"images,omitempty"`
	Variants  []ProductVariant `json:"variants,omitempty"`
}

// ProductVariant variante de un producto (talla, color, etc.).
type ProductVariant struct {
	VariantID   string      `json:"variantId"`
	VariantType VariantType `json:"variantType"`
	VariantUnit string      `json:"variantUnit,omitempty"`
}

// VariantType atributos que distinguen la variante.
type VariantType struct {
	Size   FlexString `json:"size,omitempty"`
	Color  FlexString `json:"color,omitempty"`
	Weight FlexString `json:"weight,omitempty"`
	Volume FlexString `json:"volume,omitempty"`
}

// Label une los atributos no vacíos con " / ".
func (v VariantType) Label() string {
	parts := make([]string, 0, 4)
	for _, s := range []FlexString{v.Size, v.Color, v.Weight, v.Volume} {
		if s != "" {
			parts = append(parts, string(s))
		}
	}
	return strings.Join(parts, " / ")
}

// Variant busca la variante por id.
func (p *Product) Variant(variantID string) (ProductVariant, bool) {
	if p == nil {
		return ProductVariant{}, false
	}
	for _, v := range p.Variants {
		if v.VariantID == variantID {
			return v, true
		}
	}
	return ProductVariant{}, false
}

// FirstImage primera imagen o "".
func (p *Product) FirstImage() string {
	if p == nil || len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// FlexString acepta valores JSON string o numéricos (p. ej. weight: 250).
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}
