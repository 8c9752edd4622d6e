package catalog

const copyrightRegistration = "Copyright Registration"

// Seed is the initial content of a session: documents plus the flags filed
// against them, keyed by document id.
type Seed struct {
	Documents []Document
	Flags     map[int][]Flag
}

// DefaultSeed returns a fresh copy of the built-in catalog. Each call
// allocates new slices so sessions never share mutable state.
func DefaultSeed() Seed {
	return Seed{
		Documents: cloneDocuments(seedDocuments),
		Flags:     cloneFlags(seedFlags),
	}
}

var seedDocuments = []Document{
	{
		ID:              1,
		Title:           "Sunset Boulevard",
		Description:     "Copyright registration documents for the classic film noir about a screenwriter and a faded silent film star.",
		FullDescription: "Sunset Boulevard is a classic American film noir that tells the story of Joe Gillis, a struggling screenwriter, who becomes entangled with Norma Desmond, a faded silent film star living in the past. The film is a dark and cynical examination of Hollywood's treatment of aging stars and the price of fame. Directed by Billy Wilder, the film received widespread critical acclaim and is considered one of the greatest films ever made. The narrative unfolds through flashback as Joe's dead body is discovered floating in Norma's swimming pool, creating a haunting and unforgettable cinematic experience.",
		Year:            "1950",
		DocumentType:    copyrightRegistration,
		Studio:          "Paramount Pictures",
		Genre:           "Film Noir / Drama",
		Director:        "Billy Wilder",
		Actors:          []string{"Gloria Swanson", "William Holden", "Erich von Stroheim", "Nancy Olson"},
		Runtime:         "110 minutes",
		Language:        "English",
	},
	{
		ID:              2,
		Title:           "The Jazz Singer",
		Description:     "Historic copyright filing for the first feature-length motion picture with synchronized dialogue sequences.",
		FullDescription: "The Jazz Singer revolutionized the film industry as the first feature-length motion picture with synchronized dialogue sequences, effectively marking the end of the silent film era. The film tells the story of Jakie Rabinowitz, a young man torn between his Jewish heritage and his dreams of becoming a jazz singer. When he defies his father, a cantor, to pursue a career in entertainment, he must reconcile his love for modern music with his family's traditional expectations. This groundbreaking film not only introduced sound to cinema but also explored themes of generational conflict, cultural identity, and the American dream.",
		Year:            "1927",
		DocumentType:    copyrightRegistration,
		Studio:          "Warner Bros.",
		Genre:           "Musical Drama",
		Director:        "Alan Crosland",
		Actors:          []string{"Al Jolson", "May McAvoy", "Warner Oland", "Eugenie Besserer"},
		Runtime:         "88 minutes",
		Language:        "English",
	},
	{
		ID:              3,
		Title:           "Metropolis",
		Description:     "Copyright documentation for Fritz Lang's influential German expressionist science-fiction film.",
		FullDescription: "Metropolis is a groundbreaking German expressionist science-fiction film set in a futuristic dystopian city where society is divided between the wealthy industrialists who live in luxury skyscrapers and the oppressed workers who toil in underground factories. The film follows Freder, the son of the city's mastermind, as he falls in love with Maria, a working-class prophet who preaches peace between the classes. With its stunning visual effects, elaborate sets, and powerful social commentary, Metropolis has influenced countless films and remains a masterpiece of early cinema.",
		Year:            "1927",
		DocumentType:    copyrightRegistration,
		Studio:          "UFA (Universum Film AG)",
		Genre:           "Science Fiction / Drama",
		Director:        "Fritz Lang",
		Actors:          []string{"Brigitte Helm", "Gustav Fröhlich", "Alfred Abel", "Rudolf Klein-Rogge"},
		Runtime:         "153 minutes",
		Language:        "Silent (German intertitles)",
	},
	{
		ID:              4,
		Title:           "City Lights",
		Description:     "Charlie Chaplin's romantic comedy-drama about a tramp who falls in love with a blind flower girl.",
		FullDescription: "City Lights is a silent romantic comedy-drama that showcases Charlie Chaplin's genius as a filmmaker and performer. The story follows the Little Tramp as he falls in love with a blind flower girl and befriends a suicidal millionaire. Determined to help the girl regain her sight, the Tramp embarks on a series of misadventures to raise money for her operation. Despite being released after the advent of sound films, Chaplin insisted on making City Lights as a silent film with a synchronized musical score, demonstrating his commitment to the art form that made him famous. The film's blend of comedy and pathos, culminating in one of cinema's most moving endings, cement its place as one of the greatest films ever made.",
		Year:            "1931",
		DocumentType:    copyrightRegistration,
		Studio:          "United Artists",
		Genre:           "Romance / Comedy",
		Director:        "Charlie Chaplin",
		Actors:          []string{"Charlie Chaplin", "Virginia Cherrill", "Florence Lee", "Harry Myers"},
		Runtime:         "87 minutes",
		Language:        "Silent with music",
	},
	{
		ID:              5,
		Title:           "King Kong",
		Description:     "Copyright records for the groundbreaking adventure film featuring revolutionary special effects.",
		FullDescription: "King Kong is a landmark adventure film that revolutionized special effects and set the standard for monster movies. The story follows filmmaker Carl Denham as he leads an expedition to the mysterious Skull Island, where they encounter the giant ape Kong. When Kong becomes infatuated with actress Ann Darrow, Denham captures him and brings him to New York City as a theatrical attraction. The film's climactic sequence atop the Empire State Building has become one of cinema's most iconic moments. Through groundbreaking stop-motion animation and innovative composite photography, King Kong brought to life a creature that captured audiences' imaginations and spawned countless imitators.",
		Year:            "1933",
		DocumentType:    copyrightRegistration,
		Studio:          "RKO Radio Pictures",
		Genre:           "Adventure / Horror",
		Director:        "Merian C. Cooper, Ernest B. Schoedsack",
		Actors:          []string{"Fay Wray", "Robert Armstrong", "Bruce Cabot"},
		Runtime:         "100 minutes",
		Language:        "English",
	},
	{
		ID:              6,
		Title:           "Gone with the Wind",
		Description:     "Epic historical romance film set during the American Civil War and Reconstruction era.",
		FullDescription: "Gone with the Wind is an epic historical romance that follows the life of Scarlett O'Hara, a strong-willed Southern belle, through the American Civil War and Reconstruction era. Set against the backdrop of the South's transformation, the film chronicles Scarlett's tumultuous relationship with roguish blockade runner Rhett Butler, her obsession with Ashley Wilkes, and her determination to save her family's plantation, Tara. With its sweeping cinematography, elaborate costumes, and memorable performances, Gone with the Wind became one of the highest-grossing films of all time and won eight Academy Awards. The film remains a cultural touchstone, though its romanticized portrayal of the antebellum South has generated significant controversy.",
		Year:            "1939",
		DocumentType:    copyrightRegistration,
		Studio:          "Metro-Goldwyn-Mayer",
		Genre:           "Historical Romance / Drama",
		Director:        "Victor Fleming",
		Actors:          []string{"Vivien Leigh", "Clark Gable", "Olivia de Havilland", "Leslie Howard"},
		Runtime:         "238 minutes",
		Language:        "English",
	},
}

var seedFlags = map[int][]Flag{
	1: {
		{ID: 1, User: "Dr. Sarah Mitchell", Reason: "Document appears to have incorrect filing date. Should be cross-referenced with studio records.", Date: "Nov 15, 2025"},
		{ID: 2, User: "James Rodriguez", Reason: "Missing signature on page 3 of the copyright registration form.", Date: "Nov 12, 2025"},
		{ID: 3, User: "Emily Chen", Reason: "Potential discrepancy in the listed production company name.", Date: "Nov 10, 2025"},
	},
	3: {
		{ID: 4, User: "Prof. Heinrich Weber", Reason: "Translation of German text may be inaccurate. Requires verification by native speaker.", Date: "Nov 14, 2025"},
		{ID: 5, User: "Anna Foster", Reason: "Document quality is poor - some text illegible. May need restoration or alternative source.", Date: "Nov 8, 2025"},
	},
	6: {
		{ID: 6, User: "Michael Thompson", Reason: "Multiple versions of this document exist in archive. Need to verify which is the original filing.", Date: "Nov 13, 2025"},
	},
}
