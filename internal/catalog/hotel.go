package catalog

import (
	"context"
	"encoding/json"

	"travel-backend/internal/apperr"
	"travel-backend/internal/audit"
	"travel-backend/internal/models"
)

// HotelInput is used for both create and partial update. Pointer and raw
// fields distinguish an absent key from a present zero value.
type HotelInput struct {
	Name        *string         `json:"name"`
	Location    *string         `json:"location"`
	Description *string         `json:"description"`
	ImageURL    *string         `json:"image_url"`
	Price       json.RawMessage `json:"price"`
	Reviews     *string         `json:"reviews"`
	Rating      json.RawMessage `json:"rating"`
	Amenities   json.RawMessage `json:"amenities"`
}

const entityHotel = "hotel"

func (s *Store) CreateHotel(ctx context.Context, actor audit.Actor, in HotelInput) (*models.Hotel, error) {
	name, location := trimmed(in.Name), trimmed(in.Location)
	if name == "" || location == "" || isNull(in.Price) {
		return nil, apperr.Validation("Missing required hotel fields (name, location, price).")
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	rating, err := parseRating(in.Rating)
	if err != nil {
		return nil, err
	}

	hotel := models.Hotel{
		Name:        name,
		Location:    location,
		Description: trimmed(in.Description),
		ImageURL:    trimmed(in.ImageURL),
		Price:       price,
		Reviews:     optionalText(in.Reviews),
		Rating:      rating,
		Amenities:   attributeDocument(in.Amenities),
	}
	if err := s.db.WithContext(ctx).Create(&hotel).Error; err != nil {
		return nil, apperr.Internal("Failed to add hotel.", err)
	}

	var created models.Hotel
	if err := s.findByID(ctx, &created, hotel.ID, "Hotel not found.", "Failed to add hotel."); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Entry{
		Actor: actor, EntityType: entityHotel, EntityID: created.ID,
		Action: models.AuditActionCreate, Description: "Hotel added: " + created.Name,
		After: created,
	})
	s.log.Info().Uint("hotel_id", created.ID).Msg("hotel created")
	return &created, nil
}

func (s *Store) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	hotels := []models.Hotel{}
	if err := s.db.WithContext(ctx).Order("id asc").Find(&hotels).Error; err != nil {
		return nil, apperr.Internal("Failed to fetch hotels.", err)
	}
	return hotels, nil
}

// UpdateHotel applies every field present in the input, including zero
// values such as a price of 0.
func (s *Store) UpdateHotel(ctx context.Context, actor audit.Actor, id uint, in HotelInput) (*models.Hotel, error) {
	set := updates{}
	if err := set.requiredText("name", "Name", in.Name); err != nil {
		return nil, err
	}
	if err := set.requiredText("location", "Location", in.Location); err != nil {
		return nil, err
	}
	set.text("description", in.Description)
	set.text("image_url", in.ImageURL)
	if err := set.price(in.Price); err != nil {
		return nil, err
	}
	set.nullableText("reviews", in.Reviews)
	if err := set.rating(in.Rating); err != nil {
		return nil, err
	}
	set.attributes("amenities", in.Amenities)

	if len(set) == 0 {
		return nil, apperr.Validation("No fields provided for update.")
	}

	var before models.Hotel
	if err := s.findByID(ctx, &before, id, "Hotel not found.", "Failed to update hotel."); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.Hotel{ID: id}).Updates(map[string]any(set)).Error; err != nil {
		return nil, apperr.Internal("Failed to update hotel.", err)
	}

	var after models.Hotel
	if err := s.findByID(ctx, &after, id, "Hotel not found.", "Failed to update hotel."); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Entry{
		Actor: actor, EntityType: entityHotel, EntityID: id,
		Action: models.AuditActionUpdate, Description: "Hotel updated: " + after.Name,
		Before: before, After: after,
	})
	return &after, nil
}

func (s *Store) DeleteHotel(ctx context.Context, actor audit.Actor, id uint) error {
	var before models.Hotel
	if err := s.findByID(ctx, &before, id, "Hotel not found.", "Failed to delete hotel."); err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Delete(&models.Hotel{}, id)
	if res.Error != nil {
		return apperr.Internal("Failed to delete hotel.", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Hotel not found.")
	}

	s.audit.Record(ctx, audit.Entry{
		Actor: actor, EntityType: entityHotel, EntityID: id,
		Action: models.AuditActionDelete, Description: "Hotel deleted: " + before.Name,
		Before: before,
	})
	s.log.Info().Uint("hotel_id", id).Msg("hotel deleted")
	return nil
}
