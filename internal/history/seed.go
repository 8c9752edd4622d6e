package history

// SeedViewed returns the viewing history every session starts with.
func SeedViewed() []Viewed {
	return []Viewed{
		{
			ID:           1,
			Title:        "Sunset Boulevard",
			Description:  "Copyright registration documents for the classic film noir about a screenwriter and a faded silent film star.",
			Year:         "1950",
			DocumentType: "Copyright Registration",
			ViewedDate:   "Nov 15, 2025",
		},
		{
			ID:           4,
			Title:        "City Lights",
			Description:  "Charlie Chaplin's romantic comedy-drama about a tramp who falls in love with a blind flower girl.",
			Year:         "1931",
			DocumentType: "Copyright Registration",
			ViewedDate:   "Nov 14, 2025",
		},
		{
			ID:           2,
			Title:        "The Jazz Singer",
			Description:  "Historic copyright filing for the first feature-length motion picture with synchronized dialogue sequences.",
			Year:         "1927",
			DocumentType: "Copyright Registration",
			ViewedDate:   "Nov 12, 2025",
		},
	}
}

// SeedSearches returns the previous searches every session starts with.
func SeedSearches() []Search {
	return []Search{
		{ID: 1, Query: "Sunset Boulevard", Date: "Nov 15, 2025"},
		{ID: 2, Query: "Charlie Chaplin", Date: "Nov 14, 2025"},
		{ID: 3, Query: "1927 films", Date: "Nov 12, 2025"},
		{ID: 4, Query: "film noir", Date: "Nov 10, 2025"},
		{ID: 5, Query: "Gone with the Wind", Date: "Nov 8, 2025"},
	}
}
