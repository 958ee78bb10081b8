// internal/catalog/creator_economy.go
package catalog

import "product-intel/internal/domain"

func CreatorEconomy() Group {
	return Group{
		Name: "creator_economy",
		Categories: map[string]domain.ProductIntelligence{
			"camera_gear": {
				ID:               "camera_gear",
				Name:             "Camera Gear",
				Description:      "Entry-level cameras, lenses, tripods and gimbals for content creators.",
				MarketGrowth:     "High growth market",
				Competition:      domain.CompetitionHigh,
				AvgMarginPercent: 22,
				PriceRange:       domain.PriceRange{Min: 20, Max: 1500},
				Keywords:         []string{"tripod", "gimbal", "mirrorless", "lens"},
				Audiences:        []string{"youtubers", "vloggers", "photographers"},
				SellingPoints:    []string{"Accessory attach rate", "Tutorial driven buying"},
			},
			"audio_equipment": {
				ID:               "audio_equipment",
				Name:             "Audio Equipment",
				Description:      "Microphones, interfaces and headphones for podcasting and streaming.",
				MarketGrowth:     "High growth market",
				Competition:      domain.CompetitionMedium,
				AvgMarginPercent: 27,
				PriceRange:       domain.PriceRange{Min: 15, Max: 500},
				Keywords:         []string{"podcast microphone", "audio interface", "studio headphones"},
				Audiences:        []string{"podcasters", "streamers", "musicians"},
				SellingPoints:    []string{"Sound comparison demos", "Starter kit bundles"},
			},
			"lighting_kits": {
				ID:               "lighting_kits",
				Name:             "Lighting Kits",
				Description:      "Ring lights, softboxes and LED panels for video production.",
				MarketGrowth:     "Steady growth market",
				Competition:      domain.CompetitionMedium,
				AvgMarginPercent: 41,
				PriceRange:       domain.PriceRange{Min: 15, Max: 250},
				Keywords:         []string{"ring light", "softbox", "led panel", "key light"},
				Audiences:        []string{"streamers", "video callers", "beauty creators"},
				SellingPoints:    []string{"Visible before and after", "Low return rate"},
			},
			"craft_supplies": {
				ID:               "craft_supplies",
				Name:             "Craft Supplies",
				Description:      "Materials and tools for DIY projects, resin art, knitting and scrapbooking.",
				MarketGrowth:     "Emerging market",
				Competition:      domain.CompetitionLow,
				AvgMarginPercent: 46,
				PriceRange:       domain.PriceRange{Min: 3, Max: 90},
				Keywords:         []string{"resin", "yarn", "scrapbook", "diy kit"},
				Audiences:        []string{"hobbyists", "etsy sellers", "parents"},
				SellingPoints:    []string{"Project based bundles", "Community content"},
			},
			"digital_art_tools": {
				ID:               "digital_art_tools",
				Name:             "Digital Art Tools",
				Description:      "Drawing tablets, styluses and accessories for digital illustrators.",
				MarketGrowth:     "High growth market",
				Competition:      domain.CompetitionLow,
				AvgMarginPercent: 29,
				PriceRange:       domain.PriceRange{Min: 10, Max: 800},
				Keywords:         []string{"drawing tablet", "stylus", "paperlike", "illustration"},
				Audiences:        []string{"illustrators", "art students", "animators"},
				SellingPoints:    []string{"Upgrade path from entry tablets", "Portfolio showcase content"},
			},
		},
	}
}
