// Package prompt builds the instruction string sent to the image generation
// model from a set of discrete style options. Composition is deterministic:
// the same selection always yields the same string.
package prompt

import "fmt"

const (
	DefaultBackground = "white-marble"
	DefaultAngle      = "45-degree"
	DefaultLighting   = "soft-studio"
	DefaultFormat     = "website"
)

// Selection describes one edit request. Unknown option keys fall back to the
// package defaults, they never fail.
type Selection struct {
	Background string
	Angle      string
	Lighting   string
	Format     string
	Feedback   string
}

type FormatSpec struct {
	Ratio       string
	Composition string
}

var backgroundPrompts = map[string]string{
	"white-marble":  "Replace the background with an elegant white marble surface with subtle natural gray veining. The marble should look luxurious and high-end.",
	"dark-wood":     "Replace the background with a rich, dark walnut wood surface with visible natural grain patterns. The wood should look warm and inviting.",
	"concrete":      "Replace the background with a smooth gray concrete surface with subtle texture. Modern industrial look.",
	"black-slate":   "Replace the background with a dramatic black slate surface with subtle natural texture. Luxurious and moody.",
	"natural-linen": "Replace the background with a natural beige linen fabric texture. Homey and rustic feeling.",
}

var anglePrompts = map[string]string{
	"top-down":  "Adjust the perspective to a perfect top-down view (90 degrees from above), looking straight down at the dish.",
	"45-degree": "Adjust the perspective to a 45-degree angle view, the classic food photography angle.",
	"eye-level": "Adjust the perspective to eye-level view, looking straight at the dish from the side.",
}

var lightingPrompts = map[string]string{
	"soft-studio": "Apply soft, diffused studio lighting from above. Even illumination with very soft shadows. Professional restaurant menu style.",
	"natural":     "Apply natural window light from the side. Warm, inviting daylight feeling with gentle shadows.",
	"dramatic":    "Apply dramatic directional lighting with deeper shadows and highlights. Moody and artistic.",
}

var formatSettings = map[string]FormatSpec{
	"website": {
		Ratio:       "1:1",
		Composition: "Center the plate in a square frame. The plate should fill approximately 85% of the image.",
	},
	"wolt": {
		Ratio:       "16:9",
		Composition: "Center the plate in a wide horizontal frame (16:9). Leave some space on the sides for a delivery app layout.",
	},
	"instagram": {
		Ratio:       "4:5",
		Composition: "Center the plate in a portrait frame (4:5). Perfect for Instagram feed.",
	},
}

// Format resolves the format key to its aspect ratio and composition
// instruction, falling back to the default format on an unknown key.
func Format(key string) FormatSpec {
	if spec, ok := formatSettings[key]; ok {
		return spec
	}
	return formatSettings[DefaultFormat]
}

func lookup(table map[string]string, key, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return table[fallback]
}

// Compose assembles the model instruction for one edit attempt. Section
// order is fixed: food-preservation rules, background, camera angle,
// lighting, composition, closing directive, then user feedback if present.
func Compose(sel Selection) string {
	background := lookup(backgroundPrompts, sel.Background, DefaultBackground)
	angle := lookup(anglePrompts, sel.Angle, DefaultAngle)
	lighting := lookup(lightingPrompts, sel.Lighting, DefaultLighting)
	format := Format(sel.Format)

	out := fmt.Sprintf(`Edit this food photograph to create a professional restaurant-quality image.

CRITICAL RULES - DO NOT CHANGE THE FOOD:
- DO NOT modify the plate itself - keep the exact same plate
- DO NOT rearrange or modify the food placement on the plate
- DO NOT change any garnishes, sauces, or decorations
- Keep every detail of the dish exactly as it appears

BACKGROUND:
%s

CAMERA ANGLE:
%s

LIGHTING:
%s

COMPOSITION:
%s

Make it look like a high-end professional food photography shot.
Output only the edited image, no text.`, background, angle, lighting, format.Composition)

	if sel.Feedback != "" {
		out += fmt.Sprintf(`

ADDITIONAL USER FEEDBACK - PLEASE ADDRESS THESE ISSUES:
%s

Please fix these issues while maintaining all the other rules above.`, sel.Feedback)
	}

	return out
}
