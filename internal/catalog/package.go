package catalog

import (
	"context"
	"encoding/json"

	"travel-backend/internal/apperr"
	"travel-backend/internal/audit"
	"travel-backend/internal/models"
)

type PackageInput struct {
	Title       *string         `json:"title"`
	Location    *string         `json:"location"`
	Description *string         `json:"description"`
	ImageURL    *string         `json:"image_url"`
	Price       json.RawMessage `json:"price"`
	Reviews     *string         `json:"reviews"`
	Rating      json.RawMessage `json:"rating"`
	Activities  json.RawMessage `json:"activities"`
}

const entityPackage = "package"

func (s *Store) CreatePackage(ctx context.Context, actor audit.Actor, in PackageInput) (*models.Package, error) {
	title, location, description := trimmed(in.Title), trimmed(in.Location), trimmed(in.Description)
	if title == "" || location == "" || description == "" || isNull(in.Price) {
		return nil, apperr.Validation("Missing required package fields (title, location, description, price).")
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	rating, err := parseRating(in.Rating)
	if err != nil {
		return nil, err
	}

	pkg := models.Package{
		Title:       title,
		Location:    location,
		Description: description,
		ImageURL:    trimmed(in.ImageURL),
		Price:       price,
		Reviews:     optionalText(in.Reviews),
		Rating:      rating,
		Activities:  attributeDocument(in.Activities),
	}
	if err := s.db.WithContext(ctx).Create(&pkg).Error; err != nil {
		return nil, apperr.Internal("Failed to add package.", err)
	}

	var created models.Package
	if err := s.findByID(ctx, &created, pkg.ID, "Package not found.", "Failed to add package."); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Entry{
		Actor: actor, EntityType: entityPackage, EntityID: created.ID,
		Action: models.AuditActionCreate, Description: "Package added: " + created.Title,
		After: created,
	})
	s.log.Info().Uint("package_id", created.ID).Msg("package created")
	return &created, nil
}

func (s *Store) ListPackages(ctx context.Context) ([]models.Package, error) {
	packages := []models.Package{}
	if err := s.db.WithContext(ctx).Order("id asc").Find(&packages).Error; err != nil {
		return nil, apperr.Internal("Failed to fetch packages.", err)
	}
	return packages, nil
}

func (s *Store) UpdatePackage(ctx context.Context, actor audit.Actor, id uint, in PackageInput) (*models.Package, error) {
	set := updates{}
	if err := set.requiredText("title", "Title", in.Title); err != nil {
		return nil, err
	}
	if err := set.requiredText("location", "Location", in.Location); err != nil {
		return nil, err
	}
	if err := set.requiredText("description", "Description", in.Description); err != nil {
		return nil, err
	}
	set.text("image_url", in.ImageURL)
	if err := set.price(in.Price); err != nil {
		return nil, err
	}
	set.nullableText("reviews", in.Reviews)
	if err := set.rating(in.Rating); err != nil {
		return nil, err
	}
	set.attributes("activities", in.Activities)

	if len(set) == 0 {
		return nil, apperr.Validation("No fields provided for update.")
	}

	var before models.Package
	if err := s.findByID(ctx, &before, id, "Package not found.", "Failed to update package."); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.Package{ID: id}).Updates(map[string]any(set)).Error; err != nil {
		return nil, apperr.Internal("Failed to update package.", err)
	}

	var after models.Package
	if err := s.findByID(ctx, &after, id, "Package not found.", "Failed to update package."); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Entry{
		Actor: actor, EntityType: entityPackage, EntityID: id,
		Action: models.AuditActionUpdate, Description: "Package updated: " + after.Title,
		Before: before, After: after,
	})
	return &after, nil
}

func (s *Store) DeletePackage(ctx context.Context, actor audit.Actor, id uint) error {
	var before models.Package
	if err := s.findByID(ctx, &before, id, "Package not found.", "Failed to delete package."); err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Delete(&models.Package{}, id)
	if res.Error != nil {
		return apperr.Internal("Failed to delete package.", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Package not found.")
	}

	s.audit.Record(ctx, audit.Entry{
		Actor: actor, EntityType: entityPackage, EntityID: id,
		Action: models.AuditActionDelete, Description: "Package deleted: " + before.Title,
		Before: before,
	})
	s.log.Info().Uint("package_id", id).Msg("package deleted")
	return nil
}
