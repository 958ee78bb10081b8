// internal/catalog/everyday_essentials.go
package catalog

import "product-intel/internal/domain"

func EverydayEssentials() Group {
	return Group{
		Name: "everyday_essentials",
		Categories: map[string]domain.ProductIntelligence{
			"phone_accessories": {
				ID:               "phone_accessories",
				Name:             "Phone Accessories",
				Description:      "Cases, chargers, cables, mounts and screen protectors.",
				MarketGrowth:     "Mature market",
				Competition:      domain.CompetitionHigh,
				AvgMarginPercent: 55,
				PriceRange:       domain.PriceRange{Min: 3, Max: 60},
				Keywords:         []string{"phone case", "charger", "usb-c", "magsafe"},
				Audiences:        []string{"smartphone owners", "commuters"},
				SellingPoints:    []string{"Every new phone resets demand", "Low unit cost"},
			},
			"cleaning_supplies": {
				ID:               "cleaning_supplies",
				Name:             "Cleaning Supplies",
				Description:      "Tools and refills for keeping a home clean.",
				MarketGrowth:     "Stable market",
				Competition:      domain.CompetitionMedium,
				AvgMarginPercent: 30,
				PriceRange:       domain.PriceRange{Min: 2, Max: 90},
				Keywords:         []string{"mop", "microfiber", "spray bottle", "vacuum"},
				Audiences:        []string{"households", "renters", "small offices"},
				SellingPoints:    []string{"Consumable refills", "Before and after visuals"},
			},
			"stationery": {
				ID:               "stationery",
				Name:             "Stationery",
				Description:      "Notebooks, pens, planners and desk supplies.",
				MarketGrowth:     "Stable market",
				Competition:      domain.CompetitionMedium,
				AvgMarginPercent: 50,
				PriceRange:       domain.PriceRange{Min: 2, Max: 45},
				Keywords:         []string{"planner", "notebook", "gel pen", "journal"},
				Audiences:        []string{"students", "planners", "journaling hobbyists"},
				SellingPoints:    []string{"Back to school peaks", "Collectible aesthetics"},
			},
			"storage_organization": {
				ID:               "storage_organization",
				Name:             "Storage & Organization",
				Description:      "Bins, shelves, drawer dividers and closet systems.",
				MarketGrowth:     "Steady growth market",
				Competition:      domain.CompetitionMedium,
				AvgMarginPercent: 37,
				PriceRange:       domain.PriceRange{Min: 5, Max: 150},
				Keywords:         []string{"storage bin", "closet", "drawer organizer", "shelf"},
				Audiences:        []string{"apartment dwellers", "parents", "minimalists"},
				SellingPoints:    []string{"Multi-pack bundles", "Satisfying transformations"},
			},
			"travel_accessories": {
				ID:               "travel_accessories",
				Name:             "Travel Accessories",
				Description:      "Packing cubes, neck pillows, adapters and luggage tags.",
				MarketGrowth:     "High growth market",
				Competition:      domain.CompetitionMedium,
				AvgMarginPercent: 48,
				PriceRange:       domain.PriceRange{Min: 4, Max: 100},
				Keywords:         []string{"packing cubes", "travel adapter", "neck pillow", "carry-on"},
				Audiences:        []string{"frequent flyers", "backpackers", "business travelers"},
				SellingPoints:    []string{"Holiday season peaks", "Lightweight shipping"},
			},
			"jewelry": {
				ID:               "jewelry",
				Name:             "Fashion Jewelry",
				Description:      "Affordable necklaces, rings, earrings and bracelets.",
				MarketGrowth:     "Steady growth market",
				Competition:      domain.CompetitionHigh,
				AvgMarginPercent: 70,
				PriceRange:       domain.PriceRange{Min: 5, Max: 120},
				Keywords:         []string{"necklace", "earrings", "ring", "personalized"},
				Audiences:        []string{"gift buyers", "fashion shoppers"},
				SellingPoints:    []string{"Very high margins", "Personalization upsells"},
			},
		},
	}
}
