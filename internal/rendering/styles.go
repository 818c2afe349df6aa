package rendering

// Style is the visual token record for one template variant. Every style is
// rendered by the same layout; only these values differ. Values are trusted
// CSS/markup fragments and are inserted without escaping.
type Style struct {
	Name              string
	FontFamily        string
	FontSize          string
	LineHeight        string
	TextColor         string
	MutedColor        string
	AccentColor       string
	HeadingColor      string
	HeadingSize       string
	HeadingTransform  string
	HeadingBorder     string
	NameSize          string
	NameLetterSpacing string
	HeaderAlign       string
	SectionSpacing    string
	PagePadding       string
	MaxWidth          string
	BulletStyle       string
	ContactSeparator  string
}

// Built-in style names.
const (
	StyleClassic      = "classic"
	StyleModern       = "modern"
	StyleMinimal      = "minimal"
	StyleProfessional = "professional"
)

// DefaultStyles returns the built-in style variants in registration order.
func DefaultStyles() []Style {
	return []Style{
		{
			Name:              StyleClassic,
			FontFamily:        "Georgia, Times, serif",
			FontSize:          "11pt",
			LineHeight:        "1.4",
			TextColor:         "#222222",
			MutedColor:        "#555555",
			AccentColor:       "#222222",
			HeadingColor:      "#222222",
			HeadingSize:       "12pt",
			HeadingTransform:  "uppercase",
			HeadingBorder:     "1px solid #222222",
			NameSize:          "22pt",
			NameLetterSpacing: "1px",
			HeaderAlign:       "center",
			SectionSpacing:    "16px",
			PagePadding:       "32px 40px",
			MaxWidth:          "800px",
			BulletStyle:       "disc",
			ContactSeparator:  " | ",
		},
		{
			Name:              StyleModern,
			FontFamily:        "Helvetica, Arial, sans-serif",
			FontSize:          "10.5pt",
			LineHeight:        "1.5",
			TextColor:         "#1f2933",
			MutedColor:        "#52606d",
			AccentColor:       "#1d4ed8",
			HeadingColor:      "#1d4ed8",
			HeadingSize:       "12.5pt",
			HeadingTransform:  "none",
			HeadingBorder:     "2px solid #1d4ed8",
			NameSize:          "26pt",
			NameLetterSpacing: "0",
			HeaderAlign:       "left",
			SectionSpacing:    "18px",
			PagePadding:       "36px 44px",
			MaxWidth:          "820px",
			BulletStyle:       "circle",
			ContactSeparator:  " &middot; ",
		},
		{
			Name:              StyleMinimal,
			FontFamily:        "Arial, sans-serif",
			FontSize:          "10pt",
			LineHeight:        "1.35",
			TextColor:         "#000000",
			MutedColor:        "#444444",
			AccentColor:       "#000000",
			HeadingColor:      "#000000",
			HeadingSize:       "11pt",
			HeadingTransform:  "none",
			HeadingBorder:     "none",
			NameSize:          "18pt",
			NameLetterSpacing: "0",
			HeaderAlign:       "left",
			SectionSpacing:    "12px",
			PagePadding:       "24px 32px",
			MaxWidth:          "760px",
			BulletStyle:       "square",
			ContactSeparator:  " / ",
		},
		{
			Name:              StyleProfessional,
			FontFamily:        "Calibri, Carlito, sans-serif",
			FontSize:          "11pt",
			LineHeight:        "1.45",
			TextColor:         "#2d3748",
			MutedColor:        "#4a5568",
			AccentColor:       "#1a365d",
			HeadingColor:      "#1a365d",
			HeadingSize:       "12pt",
			HeadingTransform:  "uppercase",
			HeadingBorder:     "1px solid #cbd5e0",
			NameSize:          "24pt",
			NameLetterSpacing: "0.5px",
			HeaderAlign:       "left",
			SectionSpacing:    "16px",
			PagePadding:       "32px 40px",
			MaxWidth:          "800px",
			BulletStyle:       "disc",
			ContactSeparator:  " &bull; ",
		},
	}
}
