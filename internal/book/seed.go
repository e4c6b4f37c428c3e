package book

// Seed returns the records every fresh catalog starts with.
func Seed() []Book {
	return []Book{
		{
			ID:          "f40ab425-0a36-419f-8bc1-021a634e6571",
			Title:       "The Awakening",
			Description: strPtr("The Awakening es una novela de la escritora estadounidense Kate Chopin."),
			Publisher:   "W W Norton & Co Inc.",
			Genre:       GenreNone,
			PublishYear: intPtr(1899),
			AuthorName:  "Kate Chopin",
		},
		{
			ID:                "ccd0d64a-f802-4941-b6d8-0764ff29a232",
			Title:             "City of Glass",
			Description:       strPtr("Ciudad de Cristal es el tercer libro de la saga Cazadores de Sombras."),
			ISBN:              strPtr("978-0140097313"),
			Publisher:         "Simon & Schuster",
			Genre:             GenreFantasy,
			PublishYear:       intPtr(2009),
			AuthorName:        "Paul Auster",
			AuthorNationality: strPtr("Estadounidense"),
		},
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
