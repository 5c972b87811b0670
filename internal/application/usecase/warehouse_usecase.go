package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

// WarehouseUseCase consulta y edición de la ficha de las bodegas del vendedor.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
	log  zerolog.Logger
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, log zerolog.Logger) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, log: log}
}

// List bodegas del vendedor de la sesión.
func (uc *WarehouseUseCase) List(ctx context.Context, sess *entity.Session) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List(ctx, sess)
	if err != nil {
		uc.log.Error().Err(err).Str("seller_id", sess.SellerID()).Msg("bodegas: listar")
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for i := range list {
		items = append(items, *toWarehouseResponse(&list[i]))
	}
	return &dto.WarehouseListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, sess *entity.Session, id string) (*dto.WarehouseResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrWarehouseNeeded
	}
	w, err := uc.repo.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(w), nil
}

// Update actualización parcial: lee la ficha, aplica los campos presentes y la envía completa.
func (uc *WarehouseUseCase) Update(ctx context.Context, sess *entity.Session, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrWarehouseNeeded
	}
	if in.WarehouseName != nil && strings.TrimSpace(*in.WarehouseName) == "" {
		return nil, fmt.Errorf("%w: warehouse_name no puede quedar vacío", domain.ErrInvalidInput)
	}
	w, err := uc.repo.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}

	applyWarehouseUpdate(w, in)
	w.SellerID = sess.SellerID()

	saved, err := uc.repo.Update(ctx, sess, w)
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", id).Msg("bodegas: actualizar")
		return nil, err
	}
	if saved == nil {
		saved = w
	}
	return toWarehouseResponse(saved), nil
}

func applyWarehouseUpdate(w *entity.Warehouse, in dto.UpdateWarehouseRequest) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&w.WarehouseName, in.WarehouseName)
	set(&w.Tagline, in.Tagline)
	set(&w.LogoURL, in.LogoURL)
	set(&w.FaviconURL, in.FaviconURL)
	set(&w.AboutUs, in.AboutUs)
	set(&w.SupportEmail, in.SupportEmail)
	set(&w.PhoneNumber, in.PhoneNumber)
	set(&w.EcoStatement, in.EcoStatement)
	set(&w.SafetyMeasures, in.SafetyMeasures)
	set(&w.Area, in.Area)

	if a := in.PhysicalAddress; a != nil {
		w.PhysicalAddress = entity.PhysicalAddress{
			AddressLine1: a.AddressLine1,
			AddressLine2: a.AddressLine2,
			City:         a.City,
			State:        a.State,
			PostalCode:   a.PostalCode,
			Country:      a.Country,
		}
	}
	if s := in.SocialLinks; s != nil {
		w.SocialLinks = entity.SocialLinks{
			Facebook:  s.Facebook,
			Twitter:   s.Twitter,
			Instagram: s.Instagram,
			Youtube:   s.Youtube,
			LinkedIn:  s.LinkedIn,
		}
	}
	if p := in.StorePolicies; p != nil {
		w.StorePolicies = entity.StorePolicies{Terms: p.Terms, Privacy: p.Privacy, Returns: p.Returns}
	}
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	id := w.WarehouseID
	if id == "" {
		id = w.StorageID
	}
	return &dto.WarehouseResponse{
		WarehouseID:   id,
		WarehouseName: w.WarehouseName,
		Tagline:       w.Tagline,
		LogoURL:       w.LogoURL,
		FaviconURL:    w.FaviconURL,
		AboutUs:       w.AboutUs,
		SupportEmail:  w.SupportEmail,
		PhoneNumber:   w.PhoneNumber,
		PhysicalAddress: dto.AddressDTO{
			AddressLine1: w.PhysicalAddress.AddressLine1,
			AddressLine2: w.PhysicalAddress.AddressLine2,
			City:         w.PhysicalAddress.City,
			State:        w.PhysicalAddress.State,
			PostalCode:   w.PhysicalAddress.PostalCode,
			Country:      w.PhysicalAddress.Country,
		},
		SocialLinks: dto.SocialLinksDTO{
			Facebook:  w.SocialLinks.Facebook,
			Twitter:   w.SocialLinks.Twitter,
			Instagram: w.SocialLinks.Instagram,
			Youtube:   w.SocialLinks.Youtube,
			LinkedIn:  w.SocialLinks.LinkedIn,
		},
		EcoStatement: w.EcoStatement,
		StorePolicies: dto.StorePoliciesDTO{
			Terms:   w.StorePolicies.Terms,
			Privacy: w.StorePolicies.Privacy,
			Returns: w.StorePolicies.Returns,
		},
		SafetyMeasures: w.SafetyMeasures,
		Area:           w.Area,
	}
}
