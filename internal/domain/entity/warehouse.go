package entity

// Warehouse bodega/tienda del vendedor con su ficha pública.
type Warehouse struct {
	StorageID       string          `json:"_id,omitempty"`
	WarehouseID     string          `json:"warehouseId"`
	SellerID        string          `json:"sellerId,omitempty"`
	WarehouseName   string          `json:"warehouseName"`
	Tagline         string          `json:"tagline,omitempty"`
	LogoURL         string          `json:"logoUrl,omitempty"`
	FaviconURL      string          `json:"faviconUrl,omitempty"`
	AboutUs         string          `json:"aboutUs,omitempty"`
	SupportEmail    string          `json:"supportEmail,omitempty"`
	PhoneNumber     string          `json:"phoneNumber,omitempty"`
	PhysicalAddress PhysicalAddress `json:"physicalAddress"`
	SocialLinks     SocialLinks     `json:"socialLinks"`
	EcoStatement    string          `json:"ecoStatement,omitempty"`
	StorePolicies   StorePolicies   `json:"storePolicies"`
	SafetyMeasures  string          `json:"safetyMeasures,omitempty"`
	Area            string          `json:"area,omitempty"`
}

// PhysicalAddress dirección de la bodega.
type PhysicalAddress struct {
	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Country      string `json:"country,omitempty"`
}

// SocialLinks redes sociales de la tienda.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// StorePolicies textos legales de la tienda.
type StorePolicies struct {
	Terms   string `json:"terms,omitempty"`
	Privacy string `json:"privacy,omitempty"`
	Returns string `json:"returns,omitempty"`
}
