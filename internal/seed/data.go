package seed

// Country is a seeded country and its first-level subdivisions.
type Country struct {
	Code         string
	Name         string
	Subdivisions []Subdivision
}

type Subdivision struct {
	Code string
	Name string
	Type string
}

// Icon is a seeded single-path SVG glyph.
type Icon struct {
	Name    string
	ViewBox string
	Path    string
}

// Dataset is the reference data written by Run.
type Dataset struct {
	Countries []Country
	Icons     []Icon
}

// DefaultDataset returns the reference data shipped with the calculator.
func DefaultDataset() Dataset {
	return Dataset{
		Countries: []Country{
			{Code: "US", Name: "United States", Subdivisions: states("state", usStates)},
			{Code: "CA", Name: "Canada", Subdivisions: states("province", caProvinces)},
			{Code: "AU", Name: "Australia", Subdivisions: states("state", auStates)},
			{Code: "GB", Name: "United Kingdom", Subdivisions: states("country", gbCountries)},
			{Code: "SG", Name: "Singapore"},
		},
		Icons: icons,
	}
}

func states(kind string, pairs [][2]string) []Subdivision {
	out := make([]Subdivision, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, Subdivision{Code: p[0], Name: p[1], Type: kind})
	}
	return out
}

var usStates = [][2]string{
	{"AL", "Alabama"}, {"AK", "Alaska"}, {"AZ", "Arizona"}, {"AR", "Arkansas"},
	{"CA", "California"}, {"CO", "Colorado"}, {"CT", "Connecticut"}, {"DE", "Delaware"},
	{"DC", "District of Columbia"}, {"FL", "Florida"}, {"GA", "Georgia"}, {"HI", "Hawaii"},
	{"ID", "Idaho"}, {"IL", "Illinois"}, {"IN", "Indiana"}, {"IA", "Iowa"},
	{"KS", "Kansas"}, {"KY", "Kentucky"}, {"LA", "Louisiana"}, {"ME", "Maine"},
	{"MD", "Maryland"}, {"MA", "Massachusetts"}, {"MI", "Michigan"}, {"MN", "Minnesota"},
	{"MS", "Mississippi"}, {"MO", "Missouri"}, {"MT", "Montana"}, {"NE", "Nebraska"},
	{"NV", "Nevada"}, {"NH", "New Hampshire"}, {"NJ", "New Jersey"}, {"NM", "New Mexico"},
	{"NY", "New York"}, {"NC", "North Carolina"}, {"ND", "North Dakota"}, {"OH", "Ohio"},
	{"OK", "Oklahoma"}, {"OR", "Oregon"}, {"PA", "Pennsylvania"}, {"RI", "Rhode Island"},
	{"SC", "South Carolina"}, {"SD", "South Dakota"}, {"TN", "Tennessee"}, {"TX", "Texas"},
	{"UT", "Utah"}, {"VT", "Vermont"}, {"VA", "Virginia"}, {"WA", "Washington"},
	{"WV", "West Virginia"}, {"WI", "Wisconsin"}, {"WY", "Wyoming"},
}

var caProvinces = [][2]string{
	{"AB", "Alberta"}, {"BC", "British Columbia"}, {"MB", "Manitoba"},
	{"NB", "New Brunswick"}, {"NL", "Newfoundland and Labrador"}, {"NS", "Nova Scotia"},
	{"NT", "Northwest Territories"}, {"NU", "Nunavut"}, {"ON", "Ontario"},
	{"PE", "Prince Edward Island"}, {"QC", "Quebec"}, {"SK", "Saskatchewan"},
	{"YT", "Yukon"},
}

var auStates = [][2]string{
	{"ACT", "Australian Capital Territory"}, {"NSW", "New South Wales"},
	{"NT", "Northern Territory"}, {"QLD", "Queensland"}, {"SA", "South Australia"},
	{"TAS", "Tasmania"}, {"VIC", "Victoria"}, {"WA", "Western Australia"},
}

var gbCountries = [][2]string{
	{"ENG", "England"}, {"NIR", "Northern Ireland"}, {"SCT", "Scotland"}, {"WLS", "Wales"},
}

var icons = []Icon{
	{
		Name:    "facebook",
		ViewBox: "0 0 24 24",
		Path:    "M14 8h3V4h-3c-2.8 0-5 2.2-5 5v2H7v4h2v9h4v-9h3l1-4h-4V9c0-.6.4-1 1-1z",
	},
	{
		Name:    "instagram",
		ViewBox: "0 0 24 24",
		Path:    "M7 2h10a5 5 0 0 1 5 5v10a5 5 0 0 1-5 5H7a5 5 0 0 1-5-5V7a5 5 0 0 1 5-5zm0 2a3 3 0 0 0-3 3v10a3 3 0 0 0 3 3h10a3 3 0 0 0 3-3V7a3 3 0 0 0-3-3H7zm5 3.5a4.5 4.5 0 1 1 0 9 4.5 4.5 0 0 1 0-9zm0 2a2.5 2.5 0 1 0 0 5 2.5 2.5 0 0 0 0-5zM17.5 5.5a1 1 0 1 1 0 2 1 1 0 0 1 0-2z",
	},
	{
		Name:    "pinterest",
		ViewBox: "0 0 24 24",
		Path:    "M12 2a10 10 0 0 0-3.6 19.3c-.1-.8-.2-2 0-2.9l1.3-5.4s-.3-.7-.3-1.6c0-1.5.9-2.7 2-2.7.9 0 1.4.7 1.4 1.5 0 .9-.6 2.3-.9 3.6-.3 1.1.5 2 1.6 2 1.9 0 3.4-2 3.4-5 0-2.6-1.9-4.4-4.5-4.4-3.1 0-4.9 2.3-4.9 4.7 0 .9.4 1.9.8 2.5.1.1.1.2.1.3l-.3 1.2c0 .2-.2.3-.4.2-1.4-.7-2.2-2.7-2.2-4.3 0-3.5 2.5-6.7 7.3-6.7 3.8 0 6.8 2.7 6.8 6.4 0 3.8-2.4 6.9-5.8 6.9-1.1 0-2.2-.6-2.6-1.3l-.7 2.7c-.3 1-1 2.2-1.4 2.9A10 10 0 1 0 12 2z",
	},
	{
		Name:    "tiktok",
		ViewBox: "0 0 24 24",
		Path:    "M16.5 2h-3.4v13.2a2.9 2.9 0 1 1-2.1-2.8V8.9a6.3 6.3 0 1 0 5.5 6.3V8.6a7.9 7.9 0 0 0 4.5 1.4V6.6a4.5 4.5 0 0 1-4.5-4.6z",
	},
	{
		Name:    "reddit",
		ViewBox: "0 0 24 24",
		Path:    "M22 12a2.2 2.2 0 0 0-3.7-1.6 10.8 10.8 0 0 0-5.8-1.8l1-4.6 3.2.7a1.6 1.6 0 1 0 .2-1l-3.6-.8a.5.5 0 0 0-.6.4l-1.1 5.3a10.8 10.8 0 0 0-5.9 1.8A2.2 2.2 0 1 0 3.3 14a4 4 0 0 0 0 .7c0 3.4 3.9 6.1 8.7 6.1s8.7-2.7 8.7-6.1a4 4 0 0 0 0-.7A2.2 2.2 0 0 0 22 12zM7 13.6a1.6 1.6 0 1 1 3.2 0 1.6 1.6 0 0 1-3.2 0zm8.9 4.2c-1.1.8-2.5 1.2-3.9 1.2s-2.8-.4-3.9-1.2a.4.4 0 0 1 .5-.6c.9.6 2.1 1 3.4 1s2.5-.3 3.4-1a.4.4 0 0 1 .5.6zm-.3-2.6a1.6 1.6 0 1 1 0-3.2 1.6 1.6 0 0 1 0 3.2z",
	},
}
