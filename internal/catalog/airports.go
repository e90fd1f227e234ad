package catalog

// Airport describes one entry in the airport directory.
type Airport struct {
	Code    string
	City    string
	Country string
	Name    string
}

// Airports is the directory the search form offers for origin/destination.
var Airports = []Airport{
	{Code: "KHI", City: "Karachi", Country: "Pakistan", Name: "Jinnah International Airport"},
	{Code: "LHE", City: "Lahore", Country: "Pakistan", Name: "Allama Iqbal International Airport"},
	{Code: "ISB", City: "Islamabad", Country: "Pakistan", Name: "Islamabad International Airport"},
	{Code: "PEW", City: "Peshawar", Country: "Pakistan", Name: "Bacha Khan International Airport"},
	{Code: "MUX", City: "Multan", Country: "Pakistan", Name: "Multan International Airport"},
	{Code: "SKT", City: "Sialkot", Country: "Pakistan", Name: "Sialkot International Airport"},
	{Code: "DXB", City: "Dubai", Country: "UAE", Name: "Dubai International Airport"},
	{Code: "AUH", City: "Abu Dhabi", Country: "UAE", Name: "Zayed International Airport"},
	{Code: "SHJ", City: "Sharjah", Country: "UAE", Name: "Sharjah International Airport"},
	{Code: "DOH", City: "Doha", Country: "Qatar", Name: "Hamad International Airport"},
	{Code: "JED", City: "Jeddah", Country: "Saudi Arabia", Name: "King Abdulaziz International Airport"},
	{Code: "RUH", City: "Riyadh", Country: "Saudi Arabia", Name: "King Khalid International Airport"},
	{Code: "IST", City: "Istanbul", Country: "Turkey", Name: "Istanbul Airport"},
	{Code: "LHR", City: "London", Country: "United Kingdom", Name: "Heathrow Airport"},
	{Code: "CDG", City: "Paris", Country: "France", Name: "Charles de Gaulle Airport"},
	{Code: "AMS", City: "Amsterdam", Country: "Netherlands", Name: "Schiphol Airport"},
	{Code: "KUL", City: "Kuala Lumpur", Country: "Malaysia", Name: "Kuala Lumpur International Airport"},
	{Code: "BKK", City: "Bangkok", Country: "Thailand", Name: "Suvarnabhumi Airport"},
}

// AirportByCode returns the directory entry for code, or nil when unknown.
func AirportByCode(code string) *Airport {
	for i := range Airports {
		if Airports[i].Code == code {
			return &Airports[i]
		}
	}
	return nil
}
