package weight

// Profile describes how heavy a task category is.
//
// BaseWeight is on a 1-10 scale. The three dimensions range 0.0-1.0 and feed
// the complexity multiplier 1 + 0.2*energy + 0.3*mental + 0.2*time.
type Profile struct {
	// BaseWeight is the category's default load weight (1-10).
	BaseWeight float64

	// EnergyCost is the physical effort dimension (0-1).
	EnergyCost float64

	// MentalLoad is the cognitive/organizational burden dimension (0-1).
	MentalLoad float64

	// TimeRequired is the typical time commitment dimension (0-1).
	TimeRequired float64
}

// ComplexityMultiplier returns the profile's complexity multiplier.
//
// Mental load weighs heaviest: organizing and remembering costs more than
// the hands-on part of most household tasks.
//
// Returns:
//   - float64: 1 + 0.2*EnergyCost + 0.3*MentalLoad + 0.2*TimeRequired
func (p Profile) ComplexityMultiplier() float64 {
	return 1 + 0.2*p.EnergyCost + 0.3*p.MentalLoad + 0.2*p.TimeRequired
}

// DefaultCategory is the fallback profile key for unknown categories.
const DefaultCategory = "autre"

// builtinProfiles are the weight profiles of the standard household
// categories. Keys match the product's category identifiers.
func builtinProfiles() map[string]Profile {
	return map[string]Profile{
		"menage":        {BaseWeight: 3, EnergyCost: 0.6, MentalLoad: 0.3, TimeRequired: 0.5},
		"courses":       {BaseWeight: 3, EnergyCost: 0.5, MentalLoad: 0.4, TimeRequired: 0.4},
		"cuisine":       {BaseWeight: 4, EnergyCost: 0.6, MentalLoad: 0.4, TimeRequired: 0.6},
		"sante":         {BaseWeight: 4, EnergyCost: 0.3, MentalLoad: 0.7, TimeRequired: 0.4},
		"administratif": {BaseWeight: 5, EnergyCost: 0.2, MentalLoad: 0.9, TimeRequired: 0.5},
		"enfants":       {BaseWeight: 6, EnergyCost: 0.8, MentalLoad: 0.8, TimeRequired: 0.7},
		"exterieur":     {BaseWeight: 3, EnergyCost: 0.7, MentalLoad: 0.2, TimeRequired: 0.5},
		DefaultCategory: {BaseWeight: 2, EnergyCost: 0.4, MentalLoad: 0.4, TimeRequired: 0.4},
	}
}
