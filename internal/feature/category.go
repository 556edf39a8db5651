package feature

// DefaultCategoryCode is the YouTube "People & Blogs" category id, used when
// the API returns no category for a video.
const DefaultCategoryCode = "22"

// categoryByCode maps YouTube Data API category ids onto the model vocabulary.
var categoryByCode = map[string]Category{
	"1":  CategoryEntertainment, // Film & Animation
	"2":  CategoryTech,          // Autos & Vehicles
	"10": CategoryMusic,         // Music
	"20": CategoryGaming,        // Gaming
	"22": CategoryLifestyle,     // People & Blogs
	"23": CategoryEntertainment, // Comedy
	"24": CategoryEntertainment, // Entertainment
	"27": CategoryEducation,     // Education
	"28": CategoryTech,          // Science & Technology
}

// CategoryFromCode translates a raw platform category id into the model's
// six-category vocabulary. Unrecognized codes map to Entertainment, so the
// translation is total over all string inputs.
func CategoryFromCode(code string) Category {
	if c, ok := categoryByCode[code]; ok {
		return c
	}
	return CategoryEntertainment
}
