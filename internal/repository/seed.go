package repository

import "propertychat/internal/model"

// DemoProperties returns the catalog served when no database is configured
func DemoProperties() []model.Property {
	return []model.Property{
		{
			ID:           "prop-001",
			Title:        "Modern Downtown Loft with City Views",
			Price:        850000,
			PricePerSqft: 680,
			Location: model.PropertyLocation{
				Address:      "123 Main Street, Unit 4B",
				City:         "San Francisco",
				State:        "CA",
				ZipCode:      "94105",
				Coordinates:  &model.Coordinates{Lat: 37.7749, Lng: -122.4194},
				Neighborhood: "SOMA",
			},
			Details: model.PropertyDetails{Bedrooms: 2, Bathrooms: 2, Sqft: 1250, Type: "Condo", YearBuilt: 2018, Parking: 1},
			Images: []string{
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800",
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800",
				"https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=800",
				"https://images.unsplash.com/photo-1600566753376-12c8ab7fb75b?w=800",
				"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800",
			},
			Features: []string{
				"Hardwood Floors", "In-unit Laundry", "City Views", "Modern Kitchen",
				"Balcony", "Gym Access", "Rooftop Terrace", "Pet Friendly",
			},
			Description: "Stunning modern loft in the heart of downtown with breathtaking city views. Features include hardwood floors throughout, a gourmet kitchen with stainless steel appliances, and a private balcony. Building amenities include a fitness center and rooftop terrace.",
			MatchScore:  94,
			AIRanking: &model.AIRanking{Factors: []string{
				"Location matches downtown preference",
				"Modern style as requested",
				"Within budget range",
				"Good size for 2-person household",
			}},
			Listing: &model.ListingInfo{
				DatePosted: "2024-01-15", DaysOnMarket: 5, Status: "Active",
				Agent: model.Agent{Name: "Sarah Johnson", Company: "Metro Realty", Phone: "(555) 123-4567", Email: "sarah@metrorealty.com"},
			},
		},
		{
			ID:           "prop-002",
			Title:        "Charming Victorian Family Home",
			Price:        1200000,
			PricePerSqft: 520,
			Location: model.PropertyLocation{
				Address:      "456 Oak Avenue",
				City:         "San Francisco",
				State:        "CA",
				ZipCode:      "94117",
				Coordinates:  &model.Coordinates{Lat: 37.7699, Lng: -122.4479},
				Neighborhood: "Haight-Ashbury",
			},
			Details: model.PropertyDetails{Bedrooms: 4, Bathrooms: 3, Sqft: 2300, Type: "House", YearBuilt: 1905, Parking: 2, LotSize: 3500},
			Images: []string{
				"https://images.unsplash.com/photo-1600047509358-9dc75507daeb?w=800",
				"https://images.unsplash.com/photo-1600210492486-724fe5c67fb0?w=800",
				"https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde?w=800",
				"https://images.unsplash.com/photo-1600121848594-d8644e57abab?w=800",
			},
			Features: []string{
				"Original Details", "Renovated Kitchen", "Private Garden", "Fireplace",
				"High Ceilings", "Period Features", "Near Schools", "Quiet Street",
			},
			Description: "Beautiful Victorian home with original period features and modern updates. Spacious family living with a large private garden. Located in a quiet residential area near excellent schools.",
			MatchScore:  88,
			AIRanking: &model.AIRanking{Factors: []string{
				"Perfect for families",
				"Great neighborhood for children",
				"Plenty of space",
				"Historic charm maintained",
			}},
			Listing: &model.ListingInfo{
				DatePosted: "2024-01-10", DaysOnMarket: 10, Status: "Active",
				Agent: model.Agent{Name: "Michael Chen", Company: "Heritage Properties", Phone: "(555) 234-5678", Email: "michael@heritageproperties.com"},
			},
		},
		{
			ID:           "prop-003",
			Title:        "Luxury Waterfront Penthouse",
			Price:        2500000,
			PricePerSqft: 1250,
			Location: model.PropertyLocation{
				Address:      "789 Bay Shore Drive, PH",
				City:         "San Francisco",
				State:        "CA",
				ZipCode:      "94158",
				Coordinates:  &model.Coordinates{Lat: 37.7575, Lng: -122.3774},
				Neighborhood: "Mission Bay",
			},
			Details: model.PropertyDetails{Bedrooms: 3, Bathrooms: 3, Sqft: 2000, Type: "Condo", YearBuilt: 2020, Parking: 2},
			Images: []string{
				"https://images.unsplash.com/photo-1600607687644-c7171b42498b?w=800",
				"https://images.unsplash.com/photo-1600607687920-4e2a09cf159d?w=800",
				"https://images.unsplash.com/photo-1600566752355-35792bedcfea?w=800",
				"https://images.unsplash.com/photo-1600585154526-990dced4db0d?w=800",
			},
			Features: []string{
				"Waterfront Views", "Floor-to-Ceiling Windows", "Private Terrace", "Concierge Service",
				"Wine Storage", "Smart Home", "Spa Access", "Valet Parking",
			},
			Description: "Exceptional penthouse with panoramic water views and luxury finishes throughout. Features include a private terrace, smart home technology, and access to world-class building amenities.",
			MatchScore:  92,
			AIRanking: &model.AIRanking{Factors: []string{
				"Luxury features as requested",
				"Stunning water views",
				"Brand new construction",
				"Premium location",
			}},
			Listing: &model.ListingInfo{
				DatePosted: "2024-01-20", DaysOnMarket: 1, Status: "Active",
				Agent: model.Agent{Name: "Emma Rodriguez", Company: "Luxury Bay Realty", Phone: "(555) 345-6789", Email: "emma@luxurybayrealty.com"},
			},
		},
		{
			ID:           "prop-004",
			Title:        "Cozy Studio in Arts District",
			Price:        425000,
			PricePerSqft: 850,
			Location: model.PropertyLocation{
				Address:      "321 Gallery Street, Unit 2A",
				City:         "San Francisco",
				State:        "CA",
				ZipCode:      "94110",
				Coordinates:  &model.Coordinates{Lat: 37.7483, Lng: -122.4154},
				Neighborhood: "Mission District",
			},
			Details: model.PropertyDetails{Bedrooms: 1, Bathrooms: 1, Sqft: 500, Type: "Condo", YearBuilt: 2015},
			Images: []string{
				"https://images.unsplash.com/photo-1600566752734-42fa46ff2a8c?w=800",
				"https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea?w=800",
				"https://images.unsplash.com/photo-1600566752429-77d0c9cdbf59?w=800",
			},
			Features: []string{
				"Open Floor Plan", "High Ceilings", "Exposed Brick", "Modern Kitchen",
				"Near Transit", "Arts Scene", "Restaurants Nearby", "Bike Storage",
			},
			Description: "Charming studio in the vibrant Arts District with exposed brick and high ceilings. Perfect for young professionals or investors. Walking distance to galleries, restaurants, and public transit.",
			MatchScore:  78,
			AIRanking: &model.AIRanking{Factors: []string{
				"Affordable starter home",
				"Great neighborhood character",
				"Good investment potential",
				"Close to amenities",
			}},
			Listing: &model.ListingInfo{
				DatePosted: "2024-01-08", DaysOnMarket: 13, Status: "Active",
				Agent: model.Agent{Name: "David Park", Company: "Urban Living Realty", Phone: "(555) 456-7890", Email: "david@urbanliving.com"},
			},
		},
		{
			ID:           "prop-005",
			Title:        "Suburban Family Haven",
			Price:        950000,
			PricePerSqft: 475,
			Location: model.PropertyLocation{
				Address:      "654 Maple Grove Lane",
				City:         "Palo Alto",
				State:        "CA",
				ZipCode:      "94301",
				Coordinates:  &model.Coordinates{Lat: 37.4419, Lng: -122.1430},
				Neighborhood: "Professorville",
			},
			Details: model.PropertyDetails{Bedrooms: 4, Bathrooms: 2, Sqft: 2000, Type: "House", YearBuilt: 1985, Parking: 2, LotSize: 6000},
			Images: []string{
				"https://images.unsplash.com/photo-1600047509358-9dc75507daeb?w=800",
				"https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde?w=800",
				"https://images.unsplash.com/photo-1600121848594-d8644e57abab?w=800",
				"https://images.unsplash.com/photo-1600210492486-724fe5c67fb0?w=800",
			},
			Features: []string{
				"Large Backyard", "Updated Kitchen", "Family Room", "Two-Car Garage",
				"Near Schools", "Quiet Neighborhood", "Swimming Pool", "Fruit Trees",
			},
			Description: "Perfect family home in excellent school district with large backyard and swimming pool. Recent kitchen updates and plenty of space for growing families. Quiet cul-de-sac location.",
			MatchScore:  85,
			AIRanking: &model.AIRanking{Factors: []string{
				"Excellent for families",
				"Top-rated schools nearby",
				"Large outdoor space",
				"Safe neighborhood",
			}},
			Listing: &model.ListingInfo{
				DatePosted: "2024-01-12", DaysOnMarket: 9, Status: "Active",
				Agent: model.Agent{Name: "Jennifer Liu", Company: "Peninsula Family Homes", Phone: "(555) 567-8901", Email: "jennifer@peninsula-homes.com"},
			},
		},
		{
			ID:           "prop-006",
			Title:        "Modern Townhouse with Tech Amenities",
			Price:        1350000,
			PricePerSqft: 675,
			Location: model.PropertyLocation{
				Address:      "987 Innovation Way",
				City:         "Mountain View",
				State:        "CA",
				ZipCode:      "94041",
				Coordinates:  &model.Coordinates{Lat: 37.3861, Lng: -122.0839},
				Neighborhood: "Whisman School",
			},
			Details: model.PropertyDetails{Bedrooms: 3, Bathrooms: 2, Sqft: 2000, Type: "Townhouse", YearBuilt: 2019, Parking: 2, LotSize: 1500},
			Images: []string{
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800",
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800",
				"https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=800",
				"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800",
			},
			Features: []string{
				"Smart Home Technology", "Solar Panels", "Electric Car Charging", "Open Floor Plan",
				"Modern Appliances", "Near Tech Companies", "Public Transit Access", "Energy Efficient",
			},
			Description: "Contemporary townhouse with cutting-edge smart home technology and sustainable features. Perfect for tech professionals with easy access to major companies and public transportation.",
			MatchScore:  90,
			AIRanking: &model.AIRanking{Factors: []string{
				"Perfect for tech workers",
				"Modern smart features",
				"Sustainable living",
				"Great commute options",
			}},
			Listing: &model.ListingInfo{
				DatePosted: "2024-01-18", DaysOnMarket: 3, Status: "Active",
				Agent: model.Agent{Name: "Alex Kumar", Company: "Silicon Valley Properties", Phone: "(555) 678-9012", Email: "alex@svproperties.com"},
			},
		},
	}
}
