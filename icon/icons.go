package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Mark
	Link
	Mood
	Saved
	Catalog
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Mark: {
		emoji:   "⭐",
		nerd:    "",
		plain:   "*",
		kaomoji: "(★‿★)",
		squares: "🟪",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(☞ﾟヮﾟ)☞",
		squares: "🟦",
	},
	Mood: {
		emoji:   "🎭",
		nerd:    "",
		plain:   "~",
		kaomoji: "(◕‿◕)",
		squares: "🟧",
	},
	Saved: {
		emoji:   "💾",
		nerd:    "",
		plain:   "+",
		kaomoji: "(っ˘ω˘ς)",
		squares: "🟫",
	},
	Catalog: {
		emoji:   "📚",
		nerd:    "",
		plain:   "#",
		kaomoji: "(⌐■_■)",
		squares: "⬛",
	},
}
