package catalog

import "stays/internal/model"

// Sample returns the built-in sample catalog
func Sample() *Catalog {
	return MustNew(sampleListings)
}

var sampleListings = []model.Listing{
	{
		ID:            "prop_1",
		Title:         "Stunning Beachfront Villa",
		Description:   "Wake up to ocean views in this luxurious beachfront villa with private beach access.",
		Location:      "Malibu, California, USA",
		City:          "Malibu",
		Country:       "USA",
		PricePerNight: 450,
		MaxGuests:     8,
		Bedrooms:      4,
		Bathrooms:     3,
		PropertyType:  "Villa",
		Category:      "beachfront",
		Amenities:     model.JSONArray{"WiFi", "Pool", "Beach Access", "Parking", "Kitchen", "Air Conditioning"},
		Images:        model.JSONArray{"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800&h=600&fit=crop"},
		Latitude:      34.0259,
		Longitude:     -118.7798,
		Rating:        4.9,
		ReviewCount:   127,
		HostID:        "host_1",
	},
	{
		ID:            "prop_2",
		Title:         "Cozy Mountain Cabin",
		Description:   "Escape to the mountains in this charming cabin with fireplace and mountain views.",
		Location:      "Aspen, Colorado, USA",
		City:          "Aspen",
		Country:       "USA",
		PricePerNight: 280,
		MaxGuests:     6,
		Bedrooms:      3,
		Bathrooms:     2,
		PropertyType:  "Cabin",
		Category:      "cabins",
		Amenities:     model.JSONArray{"WiFi", "Fireplace", "Mountain View", "Parking", "Kitchen", "Heating"},
		Images:        model.JSONArray{"https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=800&h=600&fit=crop"},
		Latitude:      39.1911,
		Longitude:     -106.8175,
		Rating:        4.8,
		ReviewCount:   89,
		HostID:        "host_2",
	},
	{
		ID:            "prop_3",
		Title:         "Modern Downtown Loft",
		Description:   "Stylish loft in the heart of the city with skyline views and modern amenities.",
		Location:      "New York, NY, USA",
		City:          "New York",
		Country:       "USA",
		PricePerNight: 320,
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     2,
		PropertyType:  "Loft",
		Category:      "city",
		Amenities:     model.JSONArray{"WiFi", "City View", "Elevator", "Kitchen", "Air Conditioning", "Gym"},
		Images:        model.JSONArray{"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&h=600&fit=crop"},
		Latitude:      40.7128,
		Longitude:     -74.0060,
		Rating:        4.7,
		ReviewCount:   203,
		HostID:        "host_3",
	},
	{
		ID:            "prop_4",
		Title:         "Luxury Penthouse Suite",
		Description:   "Ultimate luxury with panoramic ocean views, private terrace, and premium amenities.",
		Location:      "Miami Beach, Florida, USA",
		City:          "Miami Beach",
		Country:       "USA",
		PricePerNight: 650,
		MaxGuests:     6,
		Bedrooms:      3,
		Bathrooms:     3,
		PropertyType:  "Penthouse",
		Category:      "luxury",
		Amenities:     model.JSONArray{"WiFi", "Ocean View", "Private Terrace", "Pool", "Concierge", "Spa", "Kitchen"},
		Images:        model.JSONArray{"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800&h=600&fit=crop"},
		Latitude:      25.7907,
		Longitude:     -80.1300,
		Rating:        4.9,
		ReviewCount:   156,
		HostID:        "host_4",
	},
	{
		ID:            "prop_5",
		Title:         "Charming Countryside Cottage",
		Description:   "Peaceful retreat surrounded by vineyards with rustic charm and modern comfort.",
		Location:      "Napa Valley, California, USA",
		City:          "Napa Valley",
		Country:       "USA",
		PricePerNight: 195,
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     1,
		PropertyType:  "Cottage",
		Category:      "countryside",
		Amenities:     model.JSONArray{"WiFi", "Garden", "Wine Tasting", "Parking", "Kitchen", "Fireplace"},
		Images:        model.JSONArray{"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&h=600&fit=crop"},
		Latitude:      38.2975,
		Longitude:     -122.2869,
		Rating:        4.6,
		ReviewCount:   74,
		HostID:        "host_5",
	},
	{
		ID:            "prop_6",
		Title:         "Unique Treehouse Experience",
		Description:   "Sleep among the trees in this magical treehouse with all modern amenities.",
		Location:      "Portland, Oregon, USA",
		City:          "Portland",
		Country:       "USA",
		PricePerNight: 175,
		MaxGuests:     2,
		Bedrooms:      1,
		Bathrooms:     1,
		PropertyType:  "Treehouse",
		Category:      "unique",
		Amenities:     model.JSONArray{"WiFi", "Forest View", "Unique Design", "Kitchen", "Heating"},
		Images:        model.JSONArray{"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=800&h=600&fit=crop"},
		Latitude:      45.5152,
		Longitude:     -122.6784,
		Rating:        4.8,
		ReviewCount:   92,
		HostID:        "host_6",
	},
	{
		ID:            "prop_7",
		Title:         "Villa with Infinity Pool",
		Description:   "Desert oasis with stunning infinity pool and mountain views.",
		Location:      "Scottsdale, Arizona, USA",
		City:          "Scottsdale",
		Country:       "USA",
		PricePerNight: 380,
		MaxGuests:     10,
		Bedrooms:      5,
		Bathrooms:     4,
		PropertyType:  "Villa",
		Category:      "pools",
		Amenities:     model.JSONArray{"WiFi", "Infinity Pool", "Mountain View", "BBQ", "Kitchen", "Air Conditioning"},
		Images:        model.JSONArray{"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&h=600&fit=crop"},
		Latitude:      33.4942,
		Longitude:     -111.9261,
		Rating:        4.9,
		ReviewCount:   118,
		HostID:        "host_7",
	},
	{
		ID:            "prop_8",
		Title:         "Trendy Urban Apartment",
		Description:   "Hip apartment in the coolest neighborhood with local cafes and music venues nearby.",
		Location:      "Austin, Texas, USA",
		City:          "Austin",
		Country:       "USA",
		PricePerNight: 220,
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     2,
		PropertyType:  "Apartment",
		Category:      "trending",
		Amenities:     model.JSONArray{"WiFi", "Local Area", "Kitchen", "Air Conditioning", "Parking"},
		Images:        model.JSONArray{"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&h=600&fit=crop"},
		Latitude:      30.2672,
		Longitude:     -97.7431,
		Rating:        4.7,
		ReviewCount:   145,
		HostID:        "host_8",
	},
	{
		ID:            "prop_9",
		Title:         "Parisian Studio Apartment",
		Description:   "Charming studio in the heart of Paris with classic French architecture.",
		Location:      "Paris, Île-de-France, France",
		City:          "Paris",
		Country:       "France",
		PricePerNight: 180,
		MaxGuests:     2,
		Bedrooms:      1,
		Bathrooms:     1,
		PropertyType:  "Studio",
		Category:      "city",
		Amenities:     model.JSONArray{"WiFi", "City Center", "Historic Building", "Kitchen", "Heating"},
		Images:        model.JSONArray{"https://images.unsplash.com/photo-1502602898536-47ad22581b52?w=800&h=600&fit=crop"},
		Latitude:      48.8566,
		Longitude:     2.3522,
		Rating:        4.5,
		ReviewCount:   89,
		HostID:        "host_9",
	},
	{
		ID:            "prop_10",
		Title:         "London Victorian House",
		Description:   "Beautiful Victorian house in trendy Notting Hill with garden.",
		Location:      "London, England, UK",
		City:          "London",
		Country:       "UK",
		PricePerNight: 350,
		MaxGuests:     6,
		Bedrooms:      3,
		Bathrooms:     2,
		PropertyType:  "House",
		Category:      "city",
		Amenities:     model.JSONArray{"WiFi", "Garden", "Historic", "Kitchen", "Heating", "Parking"},
		Images:        model.JSONArray{"https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800&h=600&fit=crop"},
		Latitude:      51.5074,
		Longitude:     -0.1278,
		Rating:        4.8,
		ReviewCount:   156,
		HostID:        "host_10",
	},
}
