package dto

// AddressDTO dirección física.
type AddressDTO struct {
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country,omitempty"`
}

// SocialLinksDTO redes sociales.
type SocialLinksDTO struct {
	Facebook  string `json:"facebook,omitempty" validate:"omitempty,url"`
	Twitter   string `json:"twitter,omitempty" validate:"omitempty,url"`
	Instagram string `json:"instagram,omitempty" validate:"omitempty,url"`
	Youtube   string `json:"youtube,omitempty" validate:"omitempty,url"`
	LinkedIn  string `json:"linkedin,omitempty" validate:"omitempty,url"`
}

// StorePoliciesDTO políticas de la tienda.
type StorePoliciesDTO struct {
	Terms   string `json:"terms,omitempty"`
	Privacy string `json:"privacy,omitempty"`
	Returns string `json:"returns,omitempty"`
}

// UpdateWarehouseRequest actualización parcial: los campos nil conservan su valor.
type UpdateWarehouseRequest struct {
	WarehouseName   *string           `json:"warehouse_name" validate:"omitempty,min=1,max=200"`
	Tagline         *string           `json:"tagline" validate:"omitempty,max=200"`
	LogoURL         *string           `json:"logo_url" validate:"omitempty,url"`
	FaviconURL      *string           `json:"favicon_url" validate:"omitempty,url"`
	AboutUs         *string           `json:"about_us"`
	SupportEmail    *string           `json:"support_email" validate:"omitempty,email"`
	PhoneNumber     *string           `json:"phone_number" validate:"omitempty,max=40"`
	PhysicalAddress *AddressDTO       `json:"physical_address"`
	SocialLinks     *SocialLinksDTO   `json:"social_links"`
	EcoStatement    *string           `json:"eco_statement"`
	StorePolicies   *StorePoliciesDTO `json:"store_policies"`
	SafetyMeasures  *string           `json:"safety_measures"`
	Area            *string           `json:"area"`
}

// WarehouseResponse ficha de la bodega.
type WarehouseResponse struct {
	WarehouseID     string           `json:"warehouse_id"`
	WarehouseName   string           `json:"warehouse_name"`
	Tagline         string           `json:"tagline,omitempty"`
	LogoURL         string           `json:"logo_url,omitempty"`
	FaviconURL      string           `json:"favicon_url,omitempty"`
	AboutUs         string           `json:"about_us,omitempty"`
	SupportEmail    string           `json:"support_email,omitempty"`
	PhoneNumber     string           `json:"phone_number,omitempty"`
	PhysicalAddress AddressDTO       `json:"physical_address"`
	SocialLinks     SocialLinksDTO   `json:"social_links"`
	EcoStatement    string           `json:"eco_statement,omitempty"`
	StorePolicies   StorePoliciesDTO `json:"store_policies"`
	SafetyMeasures  string           `json:"safety_measures,omitempty"`
	Area            string           `json:"area,omitempty"`
}

// WarehouseListResponse bodegas del vendedor.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Total int                 `json:"total"`
}
