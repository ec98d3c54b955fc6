package schema

const iconBase = "https://cdn-icons-png.flaticon.com/512/"

func builtins() []Category {
	return []Category{
		{
			Name: "Books",
			Icon: iconBase + "29/29302.png",
			Fields: []Field{
				{Name: "title", Label: "Title"},
				{Name: "author", Label: "Author"},
				{Name: "link", Label: "Link (optional)"},
				{Name: CommentsField, Label: "Comments"},
			},
			Prompts: []string{
				"List books that changed your life.",
				"Why is reading important to you?",
				"Favorite childhood reads?",
			},
		},
		{
			Name: "Movies",
			Icon: iconBase + "744/744922.png",
			Fields: []Field{
				{Name: "film", Label: "Film Title"},
				{Name: "director", Label: "Director"},
				{Name: "link", Label: "Link (optional)"},
				{Name: CommentsField, Label: "Comments"},
			},
			Prompts: []string{
				"Which film do you rewatch the most?",
				"What movie made you cry?",
				"Movies that shaped your thinking?",
			},
		},
		{
			Name: "Music",
			Icon: iconBase + "727/727245.png",
			Fields: []Field{
				{Name: "artist", Label: "Artist"},
				{Name: "album", Label: "Album"},
				{Name: "song", Label: "Song"},
				{Name: "link", Label: "Link (optional)"},
				{Name: CommentsField, Label: "Comments"},
			},
			Prompts: []string{
				"What songs define your youth?",
				"What's a song that lifts your spirit?",
				"Who's your favorite artist?",
			},
		},
		{
			Name: "Philosophy",
			Icon: iconBase + "3221/3221893.png",
			Fields: []Field{
				{Name: "schoolOfThought", Label: "School of Thought"},
				{Name: "name", Label: "Philosopher Name"},
				{Name: "works", Label: "Works"},
				{Name: CommentsField, Label: "Comments"},
			},
			Prompts: []string{
				"What is one belief you hold deeply?",
				"What life lessons do you want to pass on?",
				"What is your personal motto?",
			},
		},
		{
			Name: "Places",
			Icon: iconBase + "684/684908.png",
			Fields: []Field{
				{Name: "placeName", Label: "Place Name"},
				{Name: "location", Label: "Location"},
				{Name: CommentsField, Label: "Comments"},
			},
			Prompts: []string{
				"Describe a place that changed your life.",
				"What place do you dream to visit?",
				"Favorite travel memories?",
			},
		},
	}
}
