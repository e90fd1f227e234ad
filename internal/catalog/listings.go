package catalog

// Destination is a featured city on the home page carousel.
type Destination struct {
	City          string
	Country       string
	StartingPrice int
}

// Hotel is one mock property on the hotel listing page.
type Hotel struct {
	ID        string
	Name      string
	Location  string
	Stars     int
	Rating    float64
	Reviews   int
	Price     int // per night
	Amenities []string
}

// Package is one mock holiday bundle on the packages page.
type Package struct {
	ID          string
	Title       string
	Destination string
	Duration    string
	Price       int
	Rating      float64
	Reviews     int
	Inclusions  []string
}

// Deal is a promotional offer with a redeemable code.
type Deal struct {
	ID         string
	Title      string
	Details    string
	Discount   int // percent
	Code       string
	ValidUntil string
}

// Testimonial is one customer quote on the home page.
type Testimonial struct {
	Name     string
	Location string
	Rating   int
	Review   string
}

var Destinations = []Destination{
	{City: "Dubai", Country: "UAE", StartingPrice: 28000},
	{City: "Istanbul", Country: "Turkey", StartingPrice: 65000},
	{City: "London", Country: "United Kingdom", StartingPrice: 125000},
	{City: "Kuala Lumpur", Country: "Malaysia", StartingPrice: 72000},
	{City: "Jeddah", Country: "Saudi Arabia", StartingPrice: 48000},
	{City: "Bangkok", Country: "Thailand", StartingPrice: 68000},
	{City: "Doha", Country: "Qatar", StartingPrice: 35000},
	{City: "Paris", Country: "France", StartingPrice: 135000},
}

var Hotels = []Hotel{
	{ID: "HTL001", Name: "Pearl Continental", Location: "Karachi, Pakistan", Stars: 5, Rating: 4.6, Reviews: 1284, Price: 24500, Amenities: []string{"Pool", "Spa", "Free WiFi", "Breakfast"}},
	{ID: "HTL002", Name: "Atlantis The Palm", Location: "Dubai, UAE", Stars: 5, Rating: 4.8, Reviews: 5120, Price: 89000, Amenities: []string{"Waterpark", "Beach", "Free WiFi", "Breakfast"}},
	{ID: "HTL003", Name: "Serena Hotel", Location: "Islamabad, Pakistan", Stars: 5, Rating: 4.7, Reviews: 986, Price: 31000, Amenities: []string{"Pool", "Gym", "Free WiFi"}},
	{ID: "HTL004", Name: "Rove Downtown", Location: "Dubai, UAE", Stars: 3, Rating: 4.4, Reviews: 3210, Price: 21000, Amenities: []string{"Gym", "Free WiFi"}},
	{ID: "HTL005", Name: "Sultanahmet Palace", Location: "Istanbul, Turkey", Stars: 4, Rating: 4.5, Reviews: 742, Price: 27500, Amenities: []string{"Terrace", "Breakfast", "Free WiFi"}},
	{ID: "HTL006", Name: "Avari Towers", Location: "Karachi, Pakistan", Stars: 4, Rating: 4.3, Reviews: 1105, Price: 18500, Amenities: []string{"Pool", "Free WiFi", "Breakfast"}},
}

var Packages = []Package{
	{ID: "PKG001", Title: "Dubai City Break", Destination: "Dubai, UAE", Duration: "4 days / 3 nights", Price: 95000, Rating: 4.7, Reviews: 318, Inclusions: []string{"Return flights", "4-star hotel", "Desert safari", "City tour"}},
	{ID: "PKG002", Title: "Turkish Delight", Destination: "Istanbul & Cappadocia", Duration: "7 days / 6 nights", Price: 185000, Rating: 4.8, Reviews: 204, Inclusions: []string{"Return flights", "Hotels", "Balloon ride", "Guided tours"}},
	{ID: "PKG003", Title: "Umrah Economy", Destination: "Makkah & Madinah", Duration: "10 days / 9 nights", Price: 240000, Rating: 4.9, Reviews: 1520, Inclusions: []string{"Return flights", "Hotels near Haram", "Visa processing", "Transport"}},
	{ID: "PKG004", Title: "Malaysia Explorer", Destination: "Kuala Lumpur & Langkawi", Duration: "6 days / 5 nights", Price: 155000, Rating: 4.6, Reviews: 167, Inclusions: []string{"Return flights", "Hotels", "Island hopping", "Breakfast"}},
	{ID: "PKG005", Title: "Thailand Getaway", Destination: "Bangkok & Phuket", Duration: "6 days / 5 nights", Price: 145000, Rating: 4.5, Reviews: 289, Inclusions: []string{"Return flights", "Hotels", "Phi Phi tour", "Breakfast"}},
}

var Deals = []Deal{
	{ID: "DEAL001", Title: "Early Bird International", Details: "Book 60 days ahead on any international route.", Discount: 15, Code: "EARLY15", ValidUntil: "2025-03-31"},
	{ID: "DEAL002", Title: "Dubai Shopping Festival", Details: "Special fares to Dubai for the festival season.", Discount: 20, Code: "DSF20", ValidUntil: "2025-01-31"},
	{ID: "DEAL003", Title: "Student Saver", Details: "Valid student ID required at check-in.", Discount: 10, Code: "STUDENT10", ValidUntil: "2025-06-30"},
	{ID: "DEAL004", Title: "Family Package", Details: "Minimum 4 travelers on one booking.", Discount: 12, Code: "FAMILY12", ValidUntil: "2025-04-30"},
}

var Testimonials = []Testimonial{
	{Name: "Ayesha Khan", Location: "Karachi", Rating: 5, Review: "Booked my whole family's Umrah trip in minutes. The fare breakdown was clear and the confirmation arrived instantly."},
	{Name: "Omar Farooq", Location: "Lahore", Rating: 5, Review: "Found a direct Emirates flight cheaper than anywhere else. The filters made comparing carriers painless."},
	{Name: "Sara Ahmed", Location: "Dubai", Rating: 4, Review: "Smooth checkout and the refundable-ticket filter saved me when my plans changed."},
	{Name: "Bilal Hussain", Location: "Islamabad", Rating: 5, Review: "The Istanbul package was exactly as described. Will book again."},
}
