package db

import (
	"database/sql"
	"fmt"

	"github.com/go-playground/validator/v10"

	"dateplan/internal/distance"
	"dateplan/internal/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ListVenues returns all venues in catalog order.
func ListVenues(db *sql.DB) ([]model.Venue, error) {
	rows, err := db.Query(`
		SELECT id, name, category, description, address, zone, rating, price_tier, estimated_time, image_url
		FROM venues
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer rows.Close()

	var venues []model.Venue
	for rows.Next() {
		var v model.Venue
		var category string
		var description, address, estimatedTime, imageURL sql.NullString

		err := rows.Scan(&v.ID, &v.Name, &category, &description, &address, &v.Zone, &v.Rating, &v.PriceTier, &estimatedTime, &imageURL)
		if err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}

		v.Category = model.Category(category)
		v.Description = description.String
		v.Address = address.String
		v.EstimatedTime = estimatedTime.String
		v.ImageURL = imageURL.String

		if err := validate.Struct(v); err != nil {
			return nil, fmt.Errorf("invalid venue %s: %w", v.ID, err)
		}
		venues = append(venues, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating venues: %w", err)
	}

	return venues, nil
}

// ListDistances returns every stored zone pair.
func ListDistances(db *sql.DB) ([]model.Distance, error) {
	rows, err := db.Query("SELECT from_zone, to_zone, miles FROM zone_distances ORDER BY from_zone, to_zone")
	if err != nil {
		return nil, fmt.Errorf("failed to query distances: %w", err)
	}
	defer rows.Close()

	var distances []model.Distance
	for rows.Next() {
		var d model.Distance
		if err := rows.Scan(&d.From, &d.To, &d.Miles); err != nil {
			return nil, fmt.Errorf("failed to scan distance: %w", err)
		}
		distances = append(distances, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating distances: %w", err)
	}

	return distances, nil
}

// LoadDistanceTable builds a lookup table from the stored zone pairs.
func LoadDistanceTable(db *sql.DB) (*distance.Table, error) {
	distances, err := ListDistances(db)
	if err != nil {
		return nil, err
	}
	return distance.NewTable(distances), nil
}

// ListTemplates returns all templates with their category steps, in
// catalog order.
func ListTemplates(db *sql.DB) ([]model.Template, error) {
	rows, err := db.Query(`
		SELECT t.id, t.name, t.description, t.duration, s.category
		FROM templates t
		LEFT JOIN template_steps s ON s.template_id = t.id
		ORDER BY t.position, t.id, s.step
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []model.Template
	index := make(map[string]int)
	for rows.Next() {
		var id, name string
		var description, duration, category sql.NullString
		if err := rows.Scan(&id, &name, &description, &duration, &category); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}

		i, ok := index[id]
		if !ok {
			templates = append(templates, model.Template{
				ID:          id,
				Name:        name,
				Description: description.String,
				Duration:    duration.String,
			})
			i = len(templates) - 1
			index[id] = i
		}
		if category.Valid {
			templates[i].Categories = append(templates[i].Categories, model.Category(category.String))
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating templates: %w", err)
	}

	for _, t := range templates {
		if err := validate.Struct(t); err != nil {
			return nil, fmt.Errorf("invalid template %s: %w", t.ID, err)
		}
	}

	return templates, nil
}

// LoadCatalog reads venues, distances and templates in one call.
func LoadCatalog(db *sql.DB) (model.CatalogLoadedMsg, error) {
	venues, err := ListVenues(db)
	if err != nil {
		return model.CatalogLoadedMsg{}, err
	}
	distances, err := ListDistances(db)
	if err != nil {
		return model.CatalogLoadedMsg{}, err
	}
	templates, err := ListTemplates(db)
	if err != nil {
		return model.CatalogLoadedMsg{}, err
	}
	return model.CatalogLoadedMsg{Venues: venues, Distances: distances, Templates: templates}, nil
}
