// internal/catalog/world_domination.go
package catalog

import "product-intel/internal/domain"

// WorldDomination returns the high-growth categories the app is built around.
func WorldDomination() Group {
	return Group{
		Name: "world_domination",
		Categories: map[string]domain.ProductIntelligence{
			"pet_supplies": {
				ID:               "pet_supplies",
				Name:             "Pet Supplies",
				Description:      "Food, toys, grooming and health products for dogs, cats and small animals.",
				MarketGrowth:     "High growth market",
				Competition:      domain.CompetitionHigh,
				AvgMarginPercent: 35,
				PriceRange:       domain.PriceRange{Min: 5, Max: 120},
				Keywords:         []string{"dog", "cat", "pet toys", "grooming", "pet food"},
				Audiences:        []string{"pet owners", "new puppy owners", "multi-pet households"},
				SellingPoints:    []string{"Repeat purchases", "Strong emotional buying", "Subscription friendly"},
			},
			"smart_home": {
				ID:               "smart_home",
				Name:             "Smart Home",
				Description:      "Connected plugs, cameras, lighting and sensors controlled from a phone or voice assistant.",
				MarketGrowth:     "High growth market",
				Competition:      domain.CompetitionHigh,
				AvgMarginPercent: 28,
				PriceRange:       domain.PriceRange{Min: 15, Max: 300},
				Keywords:         []string{"smart plug", "security camera", "smart bulb", "home automation"},
				Audiences:        []string{"homeowners", "renters", "tech enthusiasts"},
				SellingPoints:    []string{"Ecosystem upsells", "Gift friendly", "Clear feature comparisons"},
			},
			"fitness_equipment": {
				ID:               "fitness_equipment",
				Name:             "Home Fitness Equipment",
				Description:      "Compact gear for training at home: bands, kettlebells, mats and adjustable weights.",
				MarketGrowth:     "Steady growth market",
				Competition:      domain.CompetitionMedium,
				AvgMarginPercent: 40,
				PriceRange:       domain.PriceRange{Min: 10, Max: 400},
				Keywords:         []string{"resistance bands", "kettlebell", "yoga mat", "dumbbells"},
				Audiences:        []string{"home gym builders", "beginners", "busy professionals"},
				SellingPoints:    []string{"New year demand spikes", "Bundle opportunities"},
			},
			"skincare": {
				ID:               "skincare",
				Name:             "Skincare",
				Description:      "Cleansers, serums, moisturizers and sun protection across skin types.",
				MarketGrowth:     "High growth market",
				Competition:      domain.CompetitionHigh,
				AvgMarginPercent: 60,
				PriceRange:       domain.PriceRange{Min: 8, Max: 150},
				Keywords:         []string{"serum", "moisturizer", "spf", "acne", "anti-aging"},
				Audiences:        []string{"skincare enthusiasts", "teens", "men's grooming"},
				SellingPoints:    []string{"High margins", "Routine based repeat buying", "Influencer driven"},
			},
			"sustainable_products": {
				ID:               "sustainable_products",
				Name:             "Sustainable Products",
				Description:      "Reusable and low-waste alternatives to everyday disposable items.",
				MarketGrowth:     "Emerging market",
				Competition:      domain.CompetitionMedium,
				AvgMarginPercent: 45,
				PriceRange:       domain.PriceRange{Min: 5, Max: 80},
				Keywords:         []string{"reusable", "zero waste", "bamboo", "compostable"},
				Audiences:        []string{"eco-conscious shoppers", "millennials", "families"},
				SellingPoints:    []string{"Values driven loyalty", "Premium pricing tolerated"},
			},
			"gaming_accessories": {
				ID:               "gaming_accessories",
				Name:             "Gaming Accessories",
				Description:      "Controllers, headsets, keyboards, mice and desk setup gear for PC and console players.",
				MarketGrowth:     "High growth market",
				Competition:      domain.CompetitionHigh,
				AvgMarginPercent: 30,
				PriceRange:       domain.PriceRange{Min: 10, Max: 250},
				Keywords:         []string{"gaming headset", "mechanical keyboard", "controller", "rgb"},
				Audiences:        []string{"pc gamers", "console players", "streamers"},
				SellingPoints:    []string{"Enthusiast upgrades", "Strong community reviews"},
			},
			"home_office": {
				ID:               "home_office",
				Name:             "Home Office",
				Description:      "Desks, chairs, monitor arms and accessories for remote and hybrid workers.",
				MarketGrowth:     "Steady growth market",
				Competition:      domain.CompetitionMedium,
				AvgMarginPercent: 33,
				PriceRange:       domain.PriceRange{Min: 12, Max: 600},
				Keywords:         []string{"standing desk", "ergonomic chair", "monitor arm", "desk organizer"},
				Audiences:        []string{"remote workers", "freelancers", "students"},
				SellingPoints:    []string{"Ergonomics sells on pain points", "High ticket upsells"},
			},
			"outdoor_gear": {
				ID:               "outdoor_gear",
				Name:             "Outdoor Gear",
				Description:      "Camping, hiking and travel equipment for weekend adventurers.",
				MarketGrowth:     "Seasonal growth market",
				Competition:      domain.CompetitionMedium,
				AvgMarginPercent: 38,
				PriceRange:       domain.PriceRange{Min: 10, Max: 350},
				Keywords:         []string{"camping", "hiking", "backpack", "tent", "water bottle"},
				Audiences:        []string{"hikers", "campers", "families"},
				SellingPoints:    []string{"Seasonal peaks", "Durability storytelling"},
			},
			"baby_products": {
				ID:               "baby_products",
				Name:             "Baby Products",
				Description:      "Feeding, sleep, travel and safety products for infants and toddlers.",
				MarketGrowth:     "Stable market",
				Competition:      domain.CompetitionHigh,
				AvgMarginPercent: 32,
				PriceRange:       domain.PriceRange{Min: 6, Max: 250},
				Keywords:         []string{"baby monitor", "stroller", "bottle", "swaddle"},
				Audiences:        []string{"new parents", "gift buyers", "grandparents"},
				SellingPoints:    []string{"Safety first messaging", "Registry purchases"},
			},
			"kitchen_gadgets": {
				ID:               "kitchen_gadgets",
				Name:             "Kitchen Gadgets",
				Description:      "Small appliances and tools that make cooking faster or more fun.",
				MarketGrowth:     "Steady growth market",
				Competition:      domain.CompetitionMedium,
				AvgMarginPercent: 42,
				PriceRange:       domain.PriceRange{Min: 5, Max: 200},
				Keywords:         []string{"air fryer", "knife set", "meal prep", "coffee"},
				Audiences:        []string{"home cooks", "meal preppers", "coffee lovers"},
				SellingPoints:    []string{"Viral video demos", "Impulse buy price points"},
			},
		},
	}
}
