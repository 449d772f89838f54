package shared

import (
	"github.com/shopspring/decimal"

	"hotel_compare/internal/domain"
)

// SeedHotels is the demo catalogue loaded by cmd/seeder. Slugs are derived
// at seed time.
var SeedHotels = []domain.Hotel{
	seedHotel("Le Grand Hotel Paris", "Paris", "France", 5, "250", 4.6, 1840, "Luxury 5-star hotel in the heart of Paris near the Louvre", "Hotel"),
	seedHotel("Hotel Eiffel Tower View", "Paris", "France", 4, "180", 4.3, 1120, "Charming 4-star hotel with stunning Eiffel Tower views", "Hotel"),
	seedHotel("Paris City Center Inn", "Paris", "France", 3, "120", 3.9, 640, "Comfortable 3-star hotel in central Paris", "Hotel"),
	seedHotel("Montmartre Boutique Hotel", "Paris", "France", 4, "160", 4.4, 512, "Artistic boutique hotel in charming Montmartre district", "Boutique"),
	seedHotel("The Royal London", "London", "United Kingdom", 5, "300", 4.7, 2010, "Iconic 5-star luxury hotel near Buckingham Palace", "Hotel"),
	seedHotel("Tower Bridge Hotel", "London", "United Kingdom", 4, "200", 4.2, 980, "Modern hotel with views of Tower Bridge", "Hotel"),
	seedHotel("Westminster Inn", "London", "United Kingdom", 3, "140", 3.8, 430, "Cozy hotel in Westminster area", "Inn"),
	seedHotel("Soho Boutique London", "London", "United Kingdom", 4, "220", 4.5, 705, "Trendy boutique hotel in vibrant Soho", "Boutique"),
	seedHotel("Manhattan Grand Hotel", "New York", "United States", 5, "350", 4.6, 1650, "Luxury hotel in Midtown Manhattan", "Hotel"),
	seedHotel("Times Square Plaza", "New York", "United States", 4, "250", 4.1, 1390, "Modern hotel in the heart of Times Square", "Hotel"),
	seedHotel("Brooklyn Heights Inn", "New York", "United States", 3, "180", 4.0, 560, "Charming inn in historic Brooklyn Heights", "Inn"),
	seedHotel("Chelsea Boutique NYC", "New York", "United States", 4, "280", 4.4, 820, "Stylish boutique hotel in Chelsea neighborhood", "Boutique"),
	seedHotel("Tokyo Imperial Palace Hotel", "Tokyo", "Japan", 5, "320", 4.8, 1210, "Prestigious hotel near the Imperial Palace", "Hotel"),
	seedHotel("Shibuya Crossing Hotel", "Tokyo", "Japan", 4, "200", 4.3, 1475, "Modern hotel overlooking famous Shibuya Crossing", "Hotel"),
	seedHotel("Asakusa Traditional Ryokan", "Tokyo", "Japan", 4, "180", 4.5, 390, "Traditional Japanese inn in historic Asakusa", "Ryokan"),
	seedHotel("Ginza Business Hotel", "Tokyo", "Japan", 3, "150", 3.9, 660, "Efficient business hotel in upscale Ginza", "Hotel"),
	seedHotel("Dubai Luxury Resort", "Dubai", "United Arab Emirates", 5, "400", 4.9, 1930, "Ultra-luxury resort on the Palm Jumeirah", "Resort"),
	seedHotel("Marina Bay Hotel Dubai", "Dubai", "United Arab Emirates", 4, "220", 4.2, 870, "Stunning hotel in Dubai Marina", "Hotel"),
	seedHotel("Old Dubai Heritage Hotel", "Dubai", "United Arab Emirates", 3, "160", 3.7, 310, "Traditional hotel in historic Old Dubai", "Hotel"),
	seedHotel("Downtown Dubai Tower", "Dubai", "United Arab Emirates", 5, "380", 4.6, 1580, "Sky-high hotel near Burj Khalifa", "Hotel"),
}

func seedHotel(name, city, country string, stars int, base string, score float64, reviews int, desc, ptype string) domain.Hotel {
	return domain.Hotel{
		Name:         name,
		City:         city,
		Country:      country,
		StarRating:   stars,
		BasePrice:    decimal.RequireFromString(base),
		ReviewScore:  &score,
		ReviewCount:  reviews,
		Description:  &desc,
		PropertyType: &ptype,
	}
}

// SeedPartners returns a copy of the partner set so callers can edit it.
func SeedPartners() []domain.Partner {
	return append([]domain.Partner(nil), domain.Partners...)
}

var SeedDestinations = []domain.Destination{
	{City: "Paris", Country: "France", Region: "Europe", Latitude: 48.8566, Longitude: 2.3522, Population: 2161000, IsPopular: true},
	{City: "London", Country: "United Kingdom", Region: "Europe", Latitude: 51.5074, Longitude: -0.1278, Population: 9002488, IsPopular: true},
	{City: "Rome", Country: "Italy", Region: "Europe", Latitude: 41.9028, Longitude: 12.4964, Population: 2873000, IsPopular: true},
	{City: "Barcelona", Country: "Spain", Region: "Europe", Latitude: 41.3851, Longitude: 2.1734, Population: 1636000, IsPopular: true},
	{City: "Amsterdam", Country: "Netherlands", Region: "Europe", Latitude: 52.3676, Longitude: 4.9041, Population: 872680, IsPopular: true},
	{City: "Venice", Country: "Italy", Region: "Europe", Latitude: 45.4408, Longitude: 12.3155, Population: 261905, IsPopular: true},
	{City: "Prague", Country: "Czech Republic", Region: "Europe", Latitude: 50.0755, Longitude: 14.4378, Population: 1309000, IsPopular: true},
	{City: "Vienna", Country: "Austria", Region: "Europe", Latitude: 48.2082, Longitude: 16.3738, Population: 1911000, IsPopular: true},
	{City: "Berlin", Country: "Germany", Region: "Europe", Latitude: 52.5200, Longitude: 13.4050, Population: 3769000, IsPopular: true},
	{City: "Munich", Country: "Germany", Region: "Europe", Latitude: 48.1351, Longitude: 11.5820, Population: 1472000, IsPopular: true},
	{City: "Dubai", Country: "United Arab Emirates", Region: "Asia", Latitude: 25.2048, Longitude: 55.2708, Population: 3331000, IsPopular: true},
	{City: "Tokyo", Country: "Japan", Region: "Asia", Latitude: 35.6762, Longitude: 139.6503, Population: 13960000, IsPopular: true},
	{City: "Singapore", Country: "Singapore", Region: "Asia", Latitude: 1.3521, Longitude: 103.8198, Population: 5686000, IsPopular: true},
	{City: "Bangkok", Country: "Thailand", Region: "Asia", Latitude: 13.7563, Longitude: 100.5018, Population: 10722000, IsPopular: true},
	{City: "Hong Kong", Country: "China", Region: "Asia", Latitude: 22.3193, Longitude: 114.1694, Population: 7482000, IsPopular: true},
	{City: "Mumbai", Country: "India", Region: "Asia", Latitude: 19.0760, Longitude: 72.8777, Population: 20411000, IsPopular: true},
	{City: "Delhi", Country: "India", Region: "Asia", Latitude: 28.7041, Longitude: 77.1025, Population: 30291000, IsPopular: true},
	{City: "Goa", Country: "India", Region: "Asia", Latitude: 15.2993, Longitude: 74.1240, Population: 1458000, IsPopular: true},
	{City: "Jaipur", Country: "India", Region: "Asia", Latitude: 26.9124, Longitude: 75.7873, Population: 3046000, IsPopular: true},
	{City: "Agra", Country: "India", Region: "Asia", Latitude: 27.1767, Longitude: 78.0081, Population: 1585000, IsPopular: true},
	{City: "New York", Country: "United States", Region: "North America", Latitude: 40.7128, Longitude: -74.0060, Population: 8336000, IsPopular: true},
	{City: "Las Vegas", Country: "United States", Region: "North America", Latitude: 36.1699, Longitude: -115.1398, Population: 641903, IsPopular: true},
	{City: "Los Angeles", Country: "United States", Region: "North America", Latitude: 34.0522, Longitude: -118.2437, Population: 3979000, IsPopular: true},
	{City: "San Francisco", Country: "United States", Region: "North America", Latitude: 37.7749, Longitude: -122.4194, Population: 883305, IsPopular: true},
	{City: "Miami", Country: "United States", Region: "North America", Latitude: 25.7617, Longitude: -80.1918, Population: 467963, IsPopular: true},
	{City: "Cancun", Country: "Mexico", Region: "North America", Latitude: 21.1619, Longitude: -86.8515, Population: 888797, IsPopular: true},
	{City: "Toronto", Country: "Canada", Region: "North America", Latitude: 43.6532, Longitude: -79.3832, Population: 2931000, IsPopular: true},
	{City: "Vancouver", Country: "Canada", Region: "North America", Latitude: 49.2827, Longitude: -123.1207, Population: 675218, IsPopular: true},
	{City: "Rio de Janeiro", Country: "Brazil", Region: "South America", Latitude: -22.9068, Longitude: -43.1729, Population: 6748000, IsPopular: true},
	{City: "Buenos Aires", Country: "Argentina", Region: "South America", Latitude: -34.6037, Longitude: -58.3816, Population: 3075000, IsPopular: true},
	{City: "Lima", Country: "Peru", Region: "South America", Latitude: -12.0464, Longitude: -77.0428, Population: 10719000, IsPopular: true},
	{City: "Sydney", Country: "Australia", Region: "Oceania", Latitude: -33.8688, Longitude: 151.2093, Population: 5312000, IsPopular: true},
	{City: "Melbourne", Country: "Australia", Region: "Oceania", Latitude: -37.8136, Longitude: 144.9631, Population: 5078000, IsPopular: true},
	{City: "Auckland", Country: "New Zealand", Region: "Oceania", Latitude: -36.8485, Longitude: 174.7633, Population: 1657000, IsPopular: true},
	{City: "Istanbul", Country: "Turkey", Region: "Middle East", Latitude: 41.0082, Longitude: 28.9784, Population: 15460000, IsPopular: true},
	{City: "Doha", Country: "Qatar", Region: "Middle East", Latitude: 25.2854, Longitude: 51.5310, Population: 2382000, IsPopular: true},
	{City: "Abu Dhabi", Country: "United Arab Emirates", Region: "Middle East", Latitude: 24.4539, Longitude: 54.3773, Population: 1450000, IsPopular: true},
	{City: "Cape Town", Country: "South Africa", Region: "Africa", Latitude: -33.9249, Longitude: 18.4241, Population: 4618000, IsPopular: true},
	{City: "Marrakech", Country: "Morocco", Region: "Africa", Latitude: 31.6295, Longitude: -7.9811, Population: 928850, IsPopular: true},
	{City: "Cairo", Country: "Egypt", Region: "Africa", Latitude: 30.0444, Longitude: 31.2357, Population: 20901000, IsPopular: true},
	{City: "Bali", Country: "Indonesia", Region: "Asia", Latitude: -8.4095, Longitude: 115.1889, Population: 4317000, IsPopular: true},
	{City: "Phuket", Country: "Thailand", Region: "Asia", Latitude: 7.8804, Longitude: 98.3923, Population: 416582, IsPopular: true},
	{City: "Seoul", Country: "South Korea", Region: "Asia", Latitude: 37.5665, Longitude: 126.9780, Population: 9776000, IsPopular: true},
	{City: "Kyoto", Country: "Japan", Region: "Asia", Latitude: 35.0116, Longitude: 135.7681, Population: 1475000, IsPopular: true},
	{City: "Shanghai", Country: "China", Region: "Asia", Latitude: 31.2304, Longitude: 121.4737, Population: 27058000, IsPopular: true},
	{City: "Beijing", Country: "China", Region: "Asia", Latitude: 39.9042, Longitude: 116.4074, Population: 21540000, IsPopular: true},
	{City: "Athens", Country: "Greece", Region: "Europe", Latitude: 37.9838, Longitude: 23.7275, Population: 3154000, IsPopular: true},
	{City: "Lisbon", Country: "Portugal", Region: "Europe", Latitude: 38.7223, Longitude: -9.1393, Population: 505526, IsPopular: true},
	{City: "Budapest", Country: "Hungary", Region: "Europe", Latitude: 47.4979, Longitude: 19.0402, Population: 1752000, IsPopular: false},
	{City: "Dublin", Country: "Ireland", Region: "Europe", Latitude: 53.3498, Longitude: -6.2603, Population: 1387000, IsPopular: false},
	{City: "Bangalore", Country: "India", Region: "Asia", Latitude: 12.9716, Longitude: 77.5946, Population: 12765000, IsPopular: false},
	{City: "Hyderabad", Country: "India", Region: "Asia", Latitude: 17.3850, Longitude: 78.4867, Population: 10004000, IsPopular: false},
	{City: "Chennai", Country: "India", Region: "Asia", Latitude: 13.0827, Longitude: 80.2707, Population: 10971000, IsPopular: false},
	{City: "Kolkata", Country: "India", Region: "Asia", Latitude: 22.5726, Longitude: 88.3639, Population: 14850000, IsPopular: false},
	{City: "Pune", Country: "India", Region: "Asia", Latitude: 18.5204, Longitude: 73.8567, Population: 7764000, IsPopular: false},
	{City: "Udaipur", Country: "India", Region: "Asia", Latitude: 24.5854, Longitude: 73.7125, Population: 475000, IsPopular: true},
	{City: "Kerala", Country: "India", Region: "Asia", Latitude: 10.8505, Longitude: 76.2711, Population: 34699000, IsPopular: true},
	{City: "Manali", Country: "India", Region: "Asia", Latitude: 32.2396, Longitude: 77.1887, Population: 8000, IsPopular: true},
	{City: "Shimla", Country: "India", Region: "Asia", Latitude: 31.1048, Longitude: 77.1734, Population: 171817, IsPopular: true},
	{City: "Darjeeling", Country: "India", Region: "Asia", Latitude: 27.0360, Longitude: 88.2627, Population: 119000, IsPopular: true},
	{City: "Maldives", Country: "Maldives", Region: "Asia", Latitude: 3.2028, Longitude: 73.2207, Population: 540544, IsPopular: true},
	{City: "Kuala Lumpur", Country: "Malaysia", Region: "Asia", Latitude: 3.1390, Longitude: 101.6869, Population: 1982000, IsPopular: true},
	{City: "Manila", Country: "Philippines", Region: "Asia", Latitude: 14.5995, Longitude: 120.9842, Population: 13923000, IsPopular: false},
	{City: "Hanoi", Country: "Vietnam", Region: "Asia", Latitude: 21.0285, Longitude: 105.8542, Population: 8246000, IsPopular: true},
	{City: "Ho Chi Minh City", Country: "Vietnam", Region: "Asia", Latitude: 10.8231, Longitude: 106.6297, Population: 8993000, IsPopular: true},
	{City: "Kathmandu", Country: "Nepal", Region: "Asia", Latitude: 27.7172, Longitude: 85.3240, Population: 1442271, IsPopular: true},
	{City: "Colombo", Country: "Sri Lanka", Region: "Asia", Latitude: 6.9271, Longitude: 79.8612, Population: 752993, IsPopular: false},
	{City: "Madrid", Country: "Spain", Region: "Europe", Latitude: 40.4168, Longitude: -3.7038, Population: 3223000, IsPopular: true},
	{City: "Milan", Country: "Italy", Region: "Europe", Latitude: 45.4642, Longitude: 9.1900, Population: 1396000, IsPopular: false},
	{City: "Florence", Country: "Italy", Region: "Europe", Latitude: 43.7696, Longitude: 11.2558, Population: 382808, IsPopular: true},
	{City: "Zurich", Country: "Switzerland", Region: "Europe", Latitude: 47.3769, Longitude: 8.5417, Population: 415367, IsPopular: false},
	{City: "Geneva", Country: "Switzerland", Region: "Europe", Latitude: 46.2044, Longitude: 6.1432, Population: 203856, IsPopular: false},
	{City: "Brussels", Country: "Belgium", Region: "Europe", Latitude: 50.8503, Longitude: 4.3517, Population: 2081000, IsPopular: false},
	{City: "Copenhagen", Country: "Denmark", Region: "Europe", Latitude: 55.6761, Longitude: 12.5683, Population: 1345000, IsPopular: false},
	{City: "Stockholm", Country: "Sweden", Region: "Europe", Latitude: 59.3293, Longitude: 18.0686, Population: 975904, IsPopular: false},
	{City: "Oslo", Country: "Norway", Region: "Europe", Latitude: 59.9139, Longitude: 10.7522, Population: 697010, IsPopular: false},
	{City: "Helsinki", Country: "Finland", Region: "Europe", Latitude: 60.1699, Longitude: 24.9384, Population: 655281, IsPopular: false},
	{City: "Reykjavik", Country: "Iceland", Region: "Europe", Latitude: 64.1466, Longitude: -21.9426, Population: 131136, IsPopular: true},
	{City: "Edinburgh", Country: "United Kingdom", Region: "Europe", Latitude: 55.9533, Longitude: -3.1883, Population: 524930, IsPopular: true},
	{City: "Glasgow", Country: "United Kingdom", Region: "Europe", Latitude: 55.8642, Longitude: -4.2518, Population: 635640, IsPopular: false},
	{City: "Manchester", Country: "United Kingdom", Region: "Europe", Latitude: 53.4808, Longitude: -2.2426, Population: 553230, IsPopular: false},
	{City: "Chicago", Country: "United States", Region: "North America", Latitude: 41.8781, Longitude: -87.6298, Population: 2716000, IsPopular: false},
	{City: "Boston", Country: "United States", Region: "North America", Latitude: 42.3601, Longitude: -71.0589, Population: 694583, IsPopular: false},
	{City: "Seattle", Country: "United States", Region: "North America", Latitude: 47.6062, Longitude: -122.3321, Population: 753675, IsPopular: false},
	{City: "Orlando", Country: "United States", Region: "North America", Latitude: 28.5383, Longitude: -81.3792, Population: 307573, IsPopular: true},
	{City: "Hawaii", Country: "United States", Region: "North America", Latitude: 19.8968, Longitude: -155.5828, Population: 1455271, IsPopular: true},
	{City: "San Diego", Country: "United States", Region: "North America", Latitude: 32.7157, Longitude: -117.1611, Population: 1423851, IsPopular: true},
	{City: "Washington D.C.", Country: "United States", Region: "North America", Latitude: 38.9072, Longitude: -77.0369, Population: 705749, IsPopular: true},
	{City: "Nashville", Country: "United States", Region: "North America", Latitude: 36.1627, Longitude: -86.7816, Population: 689447, IsPopular: false},
	{City: "New Orleans", Country: "United States", Region: "North America", Latitude: 29.9511, Longitude: -90.0715, Population: 391006, IsPopular: true},
	{City: "Montreal", Country: "Canada", Region: "North America", Latitude: 45.5017, Longitude: -73.5673, Population: 1780000, IsPopular: false},
	{City: "Mexico City", Country: "Mexico", Region: "North America", Latitude: 19.4326, Longitude: -99.1332, Population: 21672000, IsPopular: false},
	{City: "Playa del Carmen", Country: "Mexico", Region: "North America", Latitude: 20.6296, Longitude: -87.0739, Population: 319815, IsPopular: true},
	{City: "Tulum", Country: "Mexico", Region: "North America", Latitude: 20.2114, Longitude: -87.4654, Population: 18233, IsPopular: true},
}
