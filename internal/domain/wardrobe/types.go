package wardrobe

import "time"

// ClothingType is the closed set of garment categories the app understands.
type ClothingType string

const (
	TypeTShirt    ClothingType = "T-Shirt"
	TypeShirt     ClothingType = "Shirt"
	TypeSweater   ClothingType = "Sweater"
	TypeJacket    ClothingType = "Jacket"
	TypeCoat      ClothingType = "Coat"
	TypeJeans     ClothingType = "Jeans"
	TypePants     ClothingType = "Pants"
	TypeShorts    ClothingType = "Shorts"
	TypeSkirt     ClothingType = "Skirt"
	TypeDress     ClothingType = "Dress"
	TypeShoes     ClothingType = "Shoes"
	TypeAccessory ClothingType = "Accessory"
	TypeOther     ClothingType = "Other"
)

// Valid reports whether t is one of the known garment categories.
func (t ClothingType) Valid() bool {
	switch t {
	case TypeTShirt, TypeShirt, TypeSweater, TypeJacket, TypeCoat,
		TypeJeans, TypePants, TypeShorts, TypeSkirt, TypeDress,
		TypeShoes, TypeAccessory, TypeOther:
		return true
	}
	return false
}

// WeatherTag marks the weather an item is suitable for.
type WeatherTag string

const (
	TagHot   WeatherTag = "Hot"
	TagWarm  WeatherTag = "Warm"
	TagCool  WeatherTag = "Cool"
	TagCold  WeatherTag = "Cold"
	TagRainy WeatherTag = "Rainy"
	TagSnowy WeatherTag = "Snowy"
	TagWindy WeatherTag = "Windy"
)

// StyleTag marks the style moods an item fits.
type StyleTag string

const (
	StyleCasual      StyleTag = "Casual"
	StyleFormal      StyleTag = "Formal"
	StyleBusiness    StyleTag = "Business"
	StyleElegant     StyleTag = "Elegant"
	StyleAthletic    StyleTag = "Athletic"
	StyleSporty      StyleTag = "Sporty"
	StyleComfortable StyleTag = "Comfortable"
	StyleTrendy      StyleTag = "Trendy"
	StyleStylish     StyleTag = "Stylish"
	StyleEveryday    StyleTag = "Everyday"
	StyleWarm        StyleTag = "Warm"
)

// ClothingItem is a single wardrobe entry. Items are value objects compared
// by ID; soiled items never enter a recommendation.
type ClothingItem struct {
	ID          string       `json:"id"`
	OwnerID     string       `json:"user_id"`
	Type        ClothingType `json:"type"`
	Color       string       `json:"color"`
	Name        string       `json:"name"`
	ImageURL    string       `json:"image_url,omitempty"`
	WeatherTags []WeatherTag `json:"weather_tags"`
	StyleTags   []StyleTag   `json:"style_tags"`
	Soiled      bool         `json:"dirty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// HasWeatherTag reports whether the item carries the given tag.
func (c ClothingItem) HasWeatherTag(tag WeatherTag) bool {
	for _, t := range c.WeatherTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Label renders the item the way outfit descriptions reference it,
// e.g. "blue t-shirt".
func (c ClothingItem) Label() string {
	return c.Color + " " + lowered(c.Type)
}

func lowered(t ClothingType) string {
	out := make([]rune, 0, len(t))
	for _, r := range string(t) {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}
