package mood

// Profile is what a mood means to each catalog.
type Profile struct {
	// TMDBKeywords are keyword ids, joined with | (any of).
	TMDBKeywords []int
	// TMDBGenres are genre ids, joined with , (all of).
	TMDBGenres []int
	Games      []string
	Music      []string
	Food       []string
	Drink      []string
	Books      []string
}

// AnimeKeyword is the TMDB keyword every anime query carries.
const AnimeKeyword = 210024

var (
	DefaultGames   = []string{"game"}
	DefaultMusic   = []string{"pop"}
	DefaultPodcast = []string{"talk"}
	DefaultFood    = []string{""}
	DefaultDrink   = []string{"cocktail", "smoothie", "beverage", "drink"}
)

var profiles = map[Mood]Profile{
	Cozy: {
		TMDBKeywords: []int{10024},
		TMDBGenres:   []int{35, 10751},
		Games:        []string{"casual", "simulation", "farming"},
		Music:        []string{"acoustic", "folk", "indie-folk"},
		Food:         []string{"comfort food", "soup", "stew", "casserole", "pot pie"},
		Drink:        []string{"hot chocolate", "mulled wine", "warm cider", "herbal tea"},
		Books:        []string{"cozy", "comfort reads"},
	},
	Adventure: {
		TMDBKeywords: []int{1365},
		TMDBGenres:   []int{12, 28},
		Games:        []string{"action-adventure", "open-world", "exploration"},
		Music:        []string{"rock", "indie-rock", "alternative"},
		Food:         []string{"exotic", "spicy", "fusion", "international", "street food"},
		Drink:        []string{"exotic cocktail", "tropical smoothie", "spiced beverages", "international drinks"},
		Books:        []string{"adventure", "action"},
	},
	Heartwarming: {
		TMDBKeywords: []int{9713},
		TMDBGenres:   []int{18, 10751},
		Games:        []string{"life simulation", "story-rich", "indie"},
		Music:        []string{"pop", "feel-good", "happy"},
		Food:         []string{"homemade", "family recipe", "wholesome", "hearty"},
		Drink:        []string{"golden milk", "fruit tea", "homemade lemonade", "chai latte"},
		Books:        []string{"heartwarming", "uplifting"},
	},
	Intellectual: {
		TMDBKeywords: []int{156205},
		TMDBGenres:   []int{99, 36},
		Games:        []string{"puzzle", "strategy", "educational"},
		Music:        []string{"classical", "jazz", "instrumental"},
		Food:         []string{"gourmet", "complex", "molecular gastronomy", "artisanal"},
		Drink:        []string{"craft coffee", "complex cocktail", "artisanal tea", "nootropic drinks"},
		Books:        []string{"intellectual", "thought-provoking"},
	},
	Nostalgic: {
		TMDBKeywords: []int{6054},
		TMDBGenres:   []int{18, 10749},
		Games:        []string{"retro", "classic", "remake"},
		Music:        []string{"oldies", "vintage", "80s", "90s"},
		Food:         []string{"retro", "childhood favorite", "classic", "vintage recipe"},
		Drink:        []string{"old fashioned soda", "milkshake", "malted drink", "root beer float"},
		Books:        []string{"nostalgia", "classic"},
	},
	LaughOutLoud: {
		TMDBKeywords: []int{9675},
		TMDBGenres:   []int{35},
		Games:        []string{"comedy", "party", "mini-games"},
		Music:        []string{"comedy", "novelty", "fun"},
		Food:         []string{"fun food", "colorful", "whimsical", "party snacks"},
		Drink:        []string{"bubble tea", "crazy milkshake", "fun mocktail", "soda float"},
		Books:        []string{"humor", "comedy"},
	},
	EdgeOfSeat: {
		TMDBKeywords: []int{10944},
		TMDBGenres:   []int{53, 80},
		Games:        []string{"action", "shooter", "battle royale"},
		Music:        []string{"metal", "punk", "hard-rock"},
		Food:         []string{"bold flavors", "extreme spicy", "unusual combinations"},
		Drink:        []string{"energy drink", "strong coffee", "spicy tomato juice", "ginger shot"},
		Books:        []string{"thriller", "suspense"},
	},
	Mysterious: {
		TMDBKeywords: []int{9725},
		TMDBGenres:   []int{9648, 80},
		Games:        []string{"mystery", "detective", "hidden object"},
		Music:        []string{"ambient", "electronic", "trip-hop"},
		Food:         []string{"secret ingredient", "surprising flavor", "hidden vegetable"},
		Drink:        []string{"color-changing drink", "smoke-infused beverage", "CBD drink", "kombucha"},
		Books:        []string{"mystery", "detective"},
	},
	FeelGood: {
		TMDBKeywords: []int{5615},
		TMDBGenres:   []int{35, 10749},
		Games:        []string{"relaxing", "atmospheric", "sandbox"},
		Music:        []string{"tropical", "summer", "dance-pop"},
		Food:         []string{"tropical", "vacation food", "beach snacks", "resort cuisine"},
		Drink:        []string{"pina colada", "tropical punch", "coconut water", "fruit smoothie"},
		Books:        []string{"feel-good", "escapism"},
	},
	Romantic: {
		TMDBKeywords: []int{9748},
		TMDBGenres:   []int{10749},
		Games:        []string{"visual novel", "dating sim", "romance"},
		Music:        []string{"r-n-b", "soul", "love"},
		Food:         []string{"aphrodisiac", "intimate dinner", "chocolate", "strawberries"},
		Drink:        []string{"rose latte", "champagne cocktail", "aphrodisiac elixir", "berry smoothie"},
		Books:        []string{"romance", "love story"},
	},
	Epic: {
		TMDBKeywords: []int{4344},
		TMDBGenres:   []int{12, 14},
		Games:        []string{"rpg", "mmorpg", "epic"},
		Music:        []string{"epic", "soundtrack", "orchestral"},
		Food:         []string{"feast", "banquet", "luxurious", "gourmet spread"},
		Drink:        []string{"elaborate cocktail", "premium spirits", "aged wine", "luxury coffee"},
		Books:        []string{"epic", "saga"},
	},
	Reflective: {
		TMDBKeywords: []int{156218},
		TMDBGenres:   []int{18},
		Games:        []string{"narrative", "philosophical", "art game"},
		Music:        []string{"singer-songwriter", "indie", "chill"},
		Food:         []string{"slow food", "mindful eating", "balanced meal", "buddha bowl"},
		Drink:        []string{"matcha tea", "meditation tonic", "adaptogen latte", "blue lotus tea"},
		Books:        []string{"philosophical", "reflective"},
	},
	Playful: {
		TMDBKeywords: []int{9663},
		TMDBGenres:   []int{35, 16},
		Games:        []string{"platformer", "arcade", "family"},
		Music:        []string{"party", "dance", "disco"},
		Food:         []string{"finger food", "interactive meal", "DIY food", "colorful dishes"},
		Drink:        []string{"slushie", "milkshake", "bubble tea", "rainbow drink"},
		Books:        []string{"playful", "fun"},
	},
	ThrillSeeker: {
		TMDBKeywords: []int{10663},
		TMDBGenres:   []int{28, 53},
		Games:        []string{"horror", "survival", "roguelike"},
		Music:        []string{"edm", "dubstep", "drum-and-bass"},
		Food:         []string{"extreme cuisine", "dare food", "unusual ingredients"},
		Drink:        []string{"extreme caffeine", "strange flavor combination", "dare shot challenge"},
		Books:        []string{"thriller", "action"},
	},
	Inspirational: {
		TMDBKeywords: []int{165194},
		TMDBGenres:   []int{18, 36},
		Games:        []string{"sports", "fitness", "management"},
		Music:        []string{"power-pop", "gospel", "motivational"},
		Food:         []string{"superfood", "energy boosting", "protein-rich", "clean eating"},
		Drink:        []string{"green juice", "protein shake", "pre-workout drink", "vitamin-infused water"},
		Books:        []string{"inspirational", "self-help"},
	},
	Relaxed: {
		TMDBKeywords: []int{245728},
		TMDBGenres:   []int{35, 10402},
		Games:        []string{"walking simulator", "idle", "zen"},
		Music:        []string{"lofi", "chillout", "relaxative"},
		Food:         []string{"easy recipes", "no-cook meals", "grazing platter", "picnic food"},
		Drink:        []string{"iced tea", "lemonade", "spritzer", "decaf latte"},
		Books:        []string{"relaxing", "light read"},
	},
	Imaginative: {
		TMDBKeywords: []int{9716},
		TMDBGenres:   []int{14, 878},
		Games:        []string{"fantasy", "sci-fi", "creative"},
		Music:        []string{"psychedelic", "prog-rock", "art rock"},
		Food:         []string{"themed food", "food art", "edible landscape", "fairytale inspired"},
		Drink:        []string{"unicorn latte", "galaxy drink", "magic potion", "color-changing cocktail"},
		Books:        []string{"fantasy", "science fiction"},
	},
	Somber: {
		TMDBKeywords: []int{15096},
		TMDBGenres:   []int{18},
		Games:        []string{"drama", "psychological", "choice matter"},
		Music:        []string{"sad", "melancholy", "blues"},
		Food:         []string{"comfort food", "soul food", "nostalgic dishes"},
		Drink:        []string{"black coffee", "dark tea", "bitter aperitif", "smoky whiskey"},
		Books:        []string{"literary fiction", "drama"},
	},
	Lighthearted: {
		TMDBKeywords: []int{246716},
		TMDBGenres:   []int{35, 10751},
		Games:        []string{"cute", "colorful", "casual"},
		Music:        []string{"bossa-nova", "reggae", "ska"},
		Food:         []string{"fresh salads", "light bites", "summer dishes", "refreshing meals"},
		Drink:        []string{"fruit-infused water", "sparkling juice", "iced green tea", "cucumber cooler"},
		Books:        []string{"lighthearted", "feel-good"},
	},
	MindBending: {
		TMDBKeywords: []int{10052},
		TMDBGenres:   []int{53, 9648},
		Games:        []string{"puzzle-platformer", "experimental", "surreal"},
		Music:        []string{"experimental", "avant-garde", "idm"},
		Food:         []string{"deconstructed dishes", "illusion food", "surprise inside", "color-changing"},
		Drink:        []string{"molecular mixology", "deconstructed coffee", "flavor-tripping cocktail", "unexpected pairings"},
		Books:        []string{"psychological thriller", "twist ending"},
	},
}

// ProfileOf returns the tables for m. Unknown moods get an empty profile.
func ProfileOf(m Mood) Profile {
	return profiles[m]
}

func (p Profile) GameKeywords() []string {
	return orDefault(p.Games, DefaultGames)
}

func (p Profile) MusicKeywords() []string {
	return orDefault(p.Music, DefaultMusic)
}

// PodcastKeywords reuse the music vocabulary.
func (p Profile) PodcastKeywords() []string {
	return orDefault(p.Music, DefaultPodcast)
}

func (p Profile) FoodKeywords() []string {
	return orDefault(p.Food, DefaultFood)
}

func (p Profile) DrinkKeywords() []string {
	return orDefault(p.Drink, DefaultDrink)
}

// BookKeywords has no default: an unknown mood searches with an empty query.
func (p Profile) BookKeywords() []string {
	return p.Books
}

func orDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}
