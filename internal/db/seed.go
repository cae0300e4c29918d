package db

import (
	"database/sql"
	"fmt"

	"dateplan/internal/model"
)

var seedVenues = []model.Venue{
	{ID: "1", Name: "The Garden Bistro", Category: model.CategoryDining, Description: "Intimate fine dining with seasonal farm-to-table cuisine and romantic garden seating.", Address: "123 Rose Street, Downtown", Zone: "Downtown", Rating: 4.8, PriceTier: 3, EstimatedTime: "1.5-2 hours", ImageURL: "https://images.pexels.com/photos/67468/pexels-photo-67468.jpeg"},
	{ID: "2", Name: "Sunset Rooftop", Category: model.CategoryDining, Description: "Elevated dining experience with panoramic city views and craft cocktails.", Address: "456 Sky Avenue, Midtown", Zone: "Midtown", Rating: 4.6, PriceTier: 4, EstimatedTime: "2-3 hours", ImageURL: "https://images.pexels.com/photos/941861/pexels-photo-941861.jpeg"},
	{ID: "3", Name: "Cozy Corner Café", Category: model.CategoryDining, Description: "Charming coffee house perfect for intimate conversations and artisanal pastries.", Address: "789 Maple Lane, Arts District", Zone: "Arts District", Rating: 4.4, PriceTier: 2, EstimatedTime: "1-1.5 hours", ImageURL: "https://images.pexels.com/photos/302899/pexels-photo-302899.jpeg"},
	{ID: "4", Name: "City Art Museum", Category: model.CategoryActivity, Description: "World-class contemporary art collection with interactive exhibits and guided tours.", Address: "321 Culture Boulevard, Arts District", Zone: "Arts District", Rating: 4.7, PriceTier: 2, EstimatedTime: "2-3 hours", ImageURL: "https://images.pexels.com/photos/1154723/pexels-photo-1154723.jpeg"},
	{ID: "5", Name: "Riverside Park", Category: model.CategoryActivity, Description: "Beautiful waterfront park with walking trails, paddle boat rentals, and scenic views.", Address: "654 River Drive, Waterfront", Zone: "Waterfront", Rating: 4.5, PriceTier: 1, EstimatedTime: "1-2 hours", ImageURL: "https://images.pexels.com/photos/355887/pexels-photo-355887.jpeg"},
	{ID: "6", Name: "Downtown Bowling", Category: model.CategoryActivity, Description: "Modern bowling alley with craft beer, gourmet food, and retro arcade games.", Address: "987 Strike Street, Downtown", Zone: "Downtown", Rating: 4.3, PriceTier: 2, EstimatedTime: "2-3 hours", ImageURL: "https://images.pexels.com/photos/4792065/pexels-photo-4792065.jpeg"},
	{ID: "7", Name: "The Velvet Lounge", Category: model.CategoryNightlife, Description: "Sophisticated cocktail bar with live jazz music and intimate booth seating.", Address: "159 Jazz Avenue, Downtown", Zone: "Downtown", Rating: 4.6, PriceTier: 3, EstimatedTime: "2-3 hours", ImageURL: "https://images.pexels.com/photos/274192/pexels-photo-274192.jpeg"},
	{ID: "8", Name: "Brewery Heights", Category: model.CategoryNightlife, Description: "Craft brewery with rooftop terrace, locally brewed beers, and pub-style games.", Address: "753 Hops Street, Midtown", Zone: "Midtown", Rating: 4.4, PriceTier: 2, EstimatedTime: "1.5-2 hours", ImageURL: "https://images.pexels.com/photos/1089932/pexels-photo-1089932.jpeg"},
	{ID: "9", Name: "Wine & Dine", Category: model.CategoryNightlife, Description: "Cozy wine bar featuring over 200 selections and artisanal cheese boards.", Address: "852 Vine Street, Arts District", Zone: "Arts District", Rating: 4.5, PriceTier: 3, EstimatedTime: "1.5-2.5 hours", ImageURL: "https://images.pexels.com/photos/1850595/pexels-photo-1850595.jpeg"},
	{ID: "10", Name: "Grand Theater", Category: model.CategoryEntertainment, Description: "Historic venue featuring Broadway shows, concerts, and comedy performances.", Address: "369 Theater Row, Downtown", Zone: "Downtown", Rating: 4.8, PriceTier: 3, EstimatedTime: "2.5-3 hours", ImageURL: "https://images.pexels.com/photos/713149/pexels-photo-713149.jpeg"},
	{ID: "11", Name: "Starlight Cinema", Category: model.CategoryEntertainment, Description: "Boutique movie theater with luxury recliners, gourmet snacks, and latest releases.", Address: "741 Film Street, Midtown", Zone: "Midtown", Rating: 4.2, PriceTier: 2, EstimatedTime: "2-3 hours", ImageURL: "https://images.pexels.com/photos/7991579/pexels-photo-7991579.jpeg"},
	{ID: "12", Name: "Lighthouse Marina", Category: model.CategoryActivity, Description: "Scenic harbor with boat tours, waterfront dining, and stunning sunset views.", Address: "258 Harbor Way, Waterfront", Zone: "Waterfront", Rating: 4.7, PriceTier: 2, EstimatedTime: "1-2 hours", ImageURL: "https://images.pexels.com/photos/1174732/pexels-photo-1174732.jpeg"},
}

var seedDistances = []model.Distance{
	{From: "Downtown", To: "Midtown", Miles: 1.2},
	{From: "Downtown", To: "Arts District", Miles: 0.8},
	{From: "Downtown", To: "Waterfront", Miles: 2.1},
	{From: "Midtown", To: "Downtown", Miles: 1.2},
	{From: "Midtown", To: "Arts District", Miles: 1.5},
	{From: "Midtown", To: "Waterfront", Miles: 2.8},
	{From: "Arts District", To: "Downtown", Miles: 0.8},
	{From: "Arts District", To: "Midtown", Miles: 1.5},
	{From: "Arts District", To: "Waterfront", Miles: 1.9},
	{From: "Waterfront", To: "Downtown", Miles: 2.1},
	{From: "Waterfront", To: "Midtown", Miles: 2.8},
	{From: "Waterfront", To: "Arts District", Miles: 1.9},
}

var seedTemplates = []model.Template{
	{ID: "classic-dinner", Name: "Classic Dinner Date", Description: "Traditional romantic evening with dinner and entertainment", Duration: "3-4 hours", Categories: []model.Category{model.CategoryDining, model.CategoryEntertainment}},
	{ID: "cocktails-dessert", Name: "Cocktails & Sweets", Description: "Sophisticated evening with craft cocktails and dessert", Duration: "2-3 hours", Categories: []model.Category{model.CategoryNightlife, model.CategoryDining}},
	{ID: "active-adventure", Name: "Active Adventure", Description: "Fun activity followed by drinks and food", Duration: "4-5 hours", Categories: []model.Category{model.CategoryActivity, model.CategoryNightlife, model.CategoryDining}},
	{ID: "coffee-culture", Name: "Coffee & Culture", Description: "Relaxed start with coffee, activity, then dinner", Duration: "4-6 hours", Categories: []model.Category{model.CategoryDining, model.CategoryActivity, model.CategoryDining}},
	{ID: "nightlife-tour", Name: "Nightlife Tour", Description: "Progressive evening through multiple bars and entertainment", Duration: "4-6 hours", Categories: []model.Category{model.CategoryNightlife, model.CategoryEntertainment, model.CategoryNightlife}},
	{ID: "brunch-day", Name: "Weekend Brunch Day", Description: "Leisurely brunch followed by activities and drinks", Duration: "5-6 hours", Categories: []model.Category{model.CategoryDining, model.CategoryActivity, model.CategoryNightlife}},
	{ID: "entertainment-first", Name: "Show & Tell", Description: "Start with entertainment, then dinner and drinks", Duration: "4-5 hours", Categories: []model.Category{model.CategoryEntertainment, model.CategoryDining, model.CategoryNightlife}},
	{ID: "double-date", Name: "Double Feature", Description: "Two activities with a meal break in between", Duration: "5-7 hours", Categories: []model.Category{model.CategoryActivity, model.CategoryDining, model.CategoryActivity}},
}

func seedIfEmpty(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM venues").Scan(&count); err != nil {
		return fmt.Errorf("failed to count venues: %w", err)
	}
	if count > 0 {
		return nil
	}
	return Seed(db, seedVenues, seedDistances, seedTemplates)
}

// Seed loads a catalog into the database in one transaction. Catalog order
// is the slice order.
func Seed(db *sql.DB, venues []model.Venue, distances []model.Distance, templates []model.Template) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i, v := range venues {
		_, err := tx.Exec(`
			INSERT INTO venues (id, position, name, category, description, address, zone, rating, price_tier, estimated_time, image_url)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, v.ID, i, v.Name, string(v.Category), nullString(v.Description), nullString(v.Address), v.Zone, v.Rating, v.PriceTier, nullString(v.EstimatedTime), nullString(v.ImageURL))
		if err != nil {
			return fmt.Errorf("failed to insert venue %s: %w", v.ID, err)
		}
	}

	for _, d := range distances {
		if _, err := tx.Exec("INSERT INTO zone_distances (from_zone, to_zone, miles) VALUES (?, ?, ?)", d.From, d.To, d.Miles); err != nil {
			return fmt.Errorf("failed to insert distance %s -> %s: %w", d.From, d.To, err)
		}
	}

	for i, t := range templates {
		if _, err := tx.Exec(`
			INSERT INTO templates (id, position, name, description, duration)
			VALUES (?, ?, ?, ?, ?)
		`, t.ID, i, t.Name, nullString(t.Description), nullString(t.Duration)); err != nil {
			return fmt.Errorf("failed to insert template %s: %w", t.ID, err)
		}
		for step, c := range t.Categories {
			if _, err := tx.Exec("INSERT INTO template_steps (template_id, step, category) VALUES (?, ?, ?)", t.ID, step, string(c)); err != nil {
				return fmt.Errorf("failed to insert template step %s/%d: %w", t.ID, step, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
