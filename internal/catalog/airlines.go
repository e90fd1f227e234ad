package catalog

// Airline identifies a carrier partner. LogoHost is the third-party logo
// source; terminal surfaces fall back to an initials badge on Color.
type Airline struct {
	Name     string
	LogoHost string
	Color    string // hex brand color
}

// Airlines is the fixed carrier catalog the flight generator draws from.
var Airlines = []Airline{
	{Name: "PIA", LogoHost: "logo.clearbit.com/piac.aero", Color: "#006400"},
	{Name: "Airblue", LogoHost: "logo.clearbit.com/airblue.com", Color: "#0066CC"},
	{Name: "Serene Air", LogoHost: "logo.clearbit.com/sereneair.com", Color: "#00BFFF"},
	{Name: "AirSial", LogoHost: "logo.clearbit.com/airsial.com", Color: "#8B0000"},
	{Name: "Emirates", LogoHost: "logo.clearbit.com/emirates.com", Color: "#C60C30"},
	{Name: "Qatar Airways", LogoHost: "logo.clearbit.com/qatarairways.com", Color: "#5C0D11"},
	{Name: "Etihad Airways", LogoHost: "logo.clearbit.com/etihad.com", Color: "#C8A415"},
	{Name: "Turkish Airlines", LogoHost: "logo.clearbit.com/turkishairlines.com", Color: "#C60C30"},
	{Name: "Saudia", LogoHost: "logo.clearbit.com/saudia.com", Color: "#006400"},
	{Name: "Flydubai", LogoHost: "logo.clearbit.com/flydubai.com", Color: "#F26522"},
	{Name: "Air Arabia", LogoHost: "logo.clearbit.com/airarabia.com", Color: "#E31837"},
	{Name: "Gulf Air", LogoHost: "logo.clearbit.com/gulfair.com", Color: "#8B0000"},
	{Name: "British Airways", LogoHost: "logo.clearbit.com/britishairways.com", Color: "#003B7E"},
	{Name: "Lufthansa", LogoHost: "logo.clearbit.com/lufthansa.com", Color: "#05164D"},
	{Name: "Air France", LogoHost: "logo.clearbit.com/airfrance.com", Color: "#002157"},
	{Name: "KLM", LogoHost: "logo.clearbit.com/klm.com", Color: "#00A1E4"},
}

// AirlineByName returns the catalog entry for name, or nil when unknown.
func AirlineByName(name string) *Airline {
	for i := range Airlines {
		if Airlines[i].Name == name {
			return &Airlines[i]
		}
	}
	return nil
}

// AirlineNames returns the carrier names in catalog order.
func AirlineNames() []string {
	names := make([]string, len(Airlines))
	for i, a := range Airlines {
		names[i] = a.Name
	}
	return names
}
