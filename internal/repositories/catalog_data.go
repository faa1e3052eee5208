package repositories

import (
	"campusnav/internal/models/domain_models"
)

// campusLocations is the curated venue table for the University of Ibadan
// main campus. IDs are stable slugs; coordinates were read off the campus
// survey map and are accurate to roughly a building footprint.
func campusLocations() []domain_models.CampusLocation {
	return []domain_models.CampusLocation{
		{
			ID:          "kenneth-dike-library",
			Name:        "Kenneth Dike Library",
			Description: "Main university library holding the central research and lending collections",
			Category:    domain_models.CategoryAcademic,
			Coordinates: domain_models.Coordinate{Latitude: 7.44430, Longitude: 3.89730},
			Keywords:    []string{"library", "kdl", "books", "reading", "study", "research"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "trenchard-hall",
			Name:        "Trenchard Hall",
			Description: "Historic assembly hall used for convocations, public lectures and concerts",
			Category:    domain_models.CategoryLandmarks,
			Coordinates: domain_models.Coordinate{Latitude: 7.44100, Longitude: 3.89850},
			Keywords:    []string{"hall", "convocation", "events", "lecture", "ceremony"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "senate-building",
			Name:        "Senate Building",
			Description: "Central administration block housing the Vice-Chancellor's office and the registry",
			Category:    domain_models.CategoryAdministration,
			Coordinates: domain_models.Coordinate{Latitude: 7.44160, Longitude: 3.89960},
			Keywords:    []string{"admin", "registry", "vice chancellor", "bursary", "offices"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "student-union-building",
			Name:        "Student Union Building",
			Description: "Seat of the Students' Union with meeting rooms, shops and the union cafeteria",
			Category:    domain_models.CategoryStudentServices,
			Coordinates: domain_models.Coordinate{Latitude: 7.44510, Longitude: 3.89620},
			Keywords:    []string{"sub", "union", "students", "cafeteria", "meetings"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "jaja-clinic",
			Name:        "Jaja Clinic",
			Description: "University health service providing outpatient care to students and staff",
			Category:    domain_models.CategoryHealthServices,
			Coordinates: domain_models.Coordinate{Latitude: 7.44620, Longitude: 3.89480},
			Keywords:    []string{"clinic", "health", "hospital", "medical", "pharmacy", "emergency"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "faculty-of-science",
			Name:        "Faculty of Science",
			Description: "Science faculty complex with the departments of chemistry, physics and mathematics",
			Category:    domain_models.CategoryAcademic,
			Coordinates: domain_models.Coordinate{Latitude: 7.44280, Longitude: 3.90110},
			Keywords:    []string{"science", "chemistry", "physics", "mathematics", "lectures", "labs"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "faculty-of-arts",
			Name:        "Faculty of Arts",
			Description: "Arts faculty quadrangle with lecture theatres and departmental offices",
			Category:    domain_models.CategoryAcademic,
			Coordinates: domain_models.Coordinate{Latitude: 7.44190, Longitude: 3.89790},
			Keywords:    []string{"arts", "humanities", "languages", "history", "lectures"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "faculty-of-technology",
			Name:        "Faculty of Technology",
			Description: "Engineering and technology faculty with workshops and drawing studios",
			Category:    domain_models.CategoryAcademic,
			Coordinates: domain_models.Coordinate{Latitude: 7.44450, Longitude: 3.90280},
			Keywords:    []string{"technology", "engineering", "workshops", "mechanical", "electrical"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "faculty-of-agriculture",
			Name:        "Faculty of Agriculture and Forestry",
			Description: "Agriculture faculty adjoining the teaching and research farm",
			Category:    domain_models.CategoryAcademic,
			Coordinates: domain_models.Coordinate{Latitude: 7.44700, Longitude: 3.90350},
			Keywords:    []string{"agriculture", "forestry", "farm", "crops"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "college-of-medicine-annex",
			Name:        "College of Medicine Annex",
			Description: "Preclinical teaching block for medicine before students move to the teaching hospital",
			Category:    domain_models.CategoryAcademic,
			Coordinates: domain_models.Coordinate{Latitude: 7.44050, Longitude: 3.90050},
			Keywords:    []string{"medicine", "preclinical", "anatomy", "medical school"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "mellanby-hall",
			Name:        "Mellanby Hall",
			Description: "The university's first hall of residence, male undergraduate hall",
			Category:    domain_models.CategoryAccommodation,
			Coordinates: domain_models.Coordinate{Latitude: 7.44350, Longitude: 3.89560},
			Keywords:    []string{"hostel", "hall", "residence", "accommodation", "mellanby"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "tedder-hall",
			Name:        "Tedder Hall",
			Description: "Male undergraduate hall of residence facing Mellanby Hall",
			Category:    domain_models.CategoryAccommodation,
			Coordinates: domain_models.Coordinate{Latitude: 7.44390, Longitude: 3.89450},
			Keywords:    []string{"hostel", "hall", "residence", "accommodation", "tedder"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "kuti-hall",
			Name:        "Kuti Hall",
			Description: "Male undergraduate hall of residence named after Reverend Ransome-Kuti",
			Category:    domain_models.CategoryAccommodation,
			Coordinates: domain_models.Coordinate{Latitude: 7.44540, Longitude: 3.89850},
			Keywords:    []string{"hostel", "hall", "residence", "accommodation", "kuti"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "sultan-bello-hall",
			Name:        "Sultan Bello Hall",
			Description: "Male undergraduate hall of residence known for its clock tower",
			Category:    domain_models.CategoryAccommodation,
			Coordinates: domain_models.Coordinate{Latitude: 7.44610, Longitude: 3.89950},
			Keywords:    []string{"hostel", "hall", "residence", "accommodation", "bello"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "queen-elizabeth-hall",
			Name:        "Queen Elizabeth II Hall",
			Description: "Female undergraduate hall of residence near the university gate",
			Category:    domain_models.CategoryAccommodation,
			Coordinates: domain_models.Coordinate{Latitude: 7.43900, Longitude: 3.89620},
			Keywords:    []string{"hostel", "hall", "residence", "accommodation", "queens", "female"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "queen-idia-hall",
			Name:        "Queen Idia Hall",
			Description: "Female undergraduate hall of residence on the northern end of campus",
			Category:    domain_models.CategoryAccommodation,
			Coordinates: domain_models.Coordinate{Latitude: 7.45010, Longitude: 3.89890},
			Keywords:    []string{"hostel", "hall", "residence", "accommodation", "idia", "female"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "nnamdi-azikiwe-hall",
			Name:        "Nnamdi Azikiwe Hall",
			Description: "Large male undergraduate hall of residence, commonly called Zik Hall",
			Category:    domain_models.CategoryAccommodation,
			Coordinates: domain_models.Coordinate{Latitude: 7.43980, Longitude: 3.89280},
			Keywords:    []string{"hostel", "hall", "residence", "accommodation", "zik"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "independence-hall",
			Name:        "Independence Hall",
			Description: "Male undergraduate hall of residence commissioned in 1961",
			Category:    domain_models.CategoryAccommodation,
			Coordinates: domain_models.Coordinate{Latitude: 7.44880, Longitude: 3.89420},
			Keywords:    []string{"hostel", "hall", "residence", "accommodation", "indy"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "obafemi-awolowo-hall",
			Name:        "Obafemi Awolowo Hall",
			Description: "Postgraduate and female hall of residence beside the sports complex",
			Category:    domain_models.CategoryAccommodation,
			Coordinates: domain_models.Coordinate{Latitude: 7.44960, Longitude: 3.90180},
			Keywords:    []string{"hostel", "hall", "residence", "accommodation", "awo", "postgraduate"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "chapel-of-resurrection",
			Name:        "Chapel of the Resurrection",
			Description: "Protestant chapel serving the university community",
			Category:    domain_models.CategoryReligious,
			Coordinates: domain_models.Coordinate{Latitude: 7.44260, Longitude: 3.89520},
			Keywords:    []string{"chapel", "church", "worship", "protestant", "service"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "our-lady-seat-of-wisdom",
			Name:        "Our Lady Seat of Wisdom Chapel",
			Description: "Catholic chapel on the chapel road",
			Category:    domain_models.CategoryReligious,
			Coordinates: domain_models.Coordinate{Latitude: 7.44310, Longitude: 3.89440},
			Keywords:    []string{"chapel", "church", "catholic", "mass", "worship"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "central-mosque",
			Name:        "University Central Mosque",
			Description: "Central mosque serving the Muslim community on campus",
			Category:    domain_models.CategoryReligious,
			Coordinates: domain_models.Coordinate{Latitude: 7.44490, Longitude: 3.89380},
			Keywords:    []string{"mosque", "prayer", "muslim", "jumat", "worship"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "sports-complex",
			Name:        "University Sports Complex",
			Description: "Main sports ground with the stadium, courts and swimming pool",
			Category:    domain_models.CategorySports,
			Coordinates: domain_models.Coordinate{Latitude: 7.44810, Longitude: 3.90050},
			Keywords:    []string{"sports", "stadium", "gym", "football", "swimming", "courts"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "university-bookshop",
			Name:        "University Bookshop",
			Description: "Campus bookshop stocking course texts and stationery",
			Category:    domain_models.CategoryShopping,
			Coordinates: domain_models.Coordinate{Latitude: 7.44230, Longitude: 3.89680},
			Keywords:    []string{"bookshop", "books", "stationery", "shopping"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "botanical-garden",
			Name:        "Botanical Garden",
			Description: "Research and recreation garden maintained by the Department of Botany",
			Category:    domain_models.CategoryLandmarks,
			Coordinates: domain_models.Coordinate{Latitude: 7.45120, Longitude: 3.90420},
			Keywords:    []string{"garden", "botany", "plants", "relaxation", "nature"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "zoological-garden",
			Name:        "Zoological Garden",
			Description: "University zoo open to visitors, run by the Department of Zoology",
			Category:    domain_models.CategoryLandmarks,
			Coordinates: domain_models.Coordinate{Latitude: 7.43870, Longitude: 3.89960},
			Keywords:    []string{"zoo", "animals", "zoology", "visitors", "recreation"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "heritage-park",
			Name:        "Heritage Park",
			Description: "Landscaped park and amphitheatre behind the Works gate",
			Category:    domain_models.CategoryLandmarks,
			Coordinates: domain_models.Coordinate{Latitude: 7.44030, Longitude: 3.89400},
			Keywords:    []string{"park", "amphitheatre", "relaxation", "events"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "staff-club",
			Name:        "University Staff Club",
			Description: "Staff club restaurant and bar beside the awba dam road",
			Category:    domain_models.CategoryFoodServices,
			Coordinates: domain_models.Coordinate{Latitude: 7.44730, Longitude: 3.89680},
			Keywords:    []string{"restaurant", "bar", "food", "staff", "club"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "sub-cafeteria",
			Name:        "SUB Cafeteria",
			Description: "Student cafeteria inside the Student Union Building",
			Category:    domain_models.CategoryFoodServices,
			Coordinates: domain_models.Coordinate{Latitude: 7.44520, Longitude: 3.89610},
			Keywords:    []string{"cafeteria", "food", "canteen", "meals", "buka"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "first-bank-branch",
			Name:        "First Bank UI Branch",
			Description: "Commercial bank branch with ATMs near the main gate",
			Category:    domain_models.CategoryFinancialServices,
			Coordinates: domain_models.Coordinate{Latitude: 7.43810, Longitude: 3.89540},
			Keywords:    []string{"bank", "atm", "money", "withdrawal", "finance"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "ui-microfinance-bank",
			Name:        "UI Microfinance Bank",
			Description: "University microfinance bank opposite the bookshop",
			Category:    domain_models.CategoryFinancialServices,
			Coordinates: domain_models.Coordinate{Latitude: 7.44210, Longitude: 3.89700},
			Keywords:    []string{"bank", "atm", "microfinance", "savings"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "post-office",
			Name:        "University Post Office",
			Description: "Campus post office handling mail and parcels",
			Category:    domain_models.CategoryServices,
			Coordinates: domain_models.Coordinate{Latitude: 7.44180, Longitude: 3.89640},
			Keywords:    []string{"post", "mail", "parcels", "stamps", "courier"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "works-department",
			Name:        "Works and Maintenance Department",
			Description: "Physical planning and maintenance yard for campus infrastructure",
			Category:    domain_models.CategoryFacilities,
			Coordinates: domain_models.Coordinate{Latitude: 7.43950, Longitude: 3.89350},
			Keywords:    []string{"works", "maintenance", "repairs", "electricity", "water"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "security-unit",
			Name:        "Campus Security Unit",
			Description: "Abefele security headquarters beside the main gate",
			Category:    domain_models.CategoryServices,
			Coordinates: domain_models.Coordinate{Latitude: 7.43780, Longitude: 3.89490},
			Keywords:    []string{"security", "emergency", "abefele", "gate", "help"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "distance-learning-centre",
			Name:        "Distance Learning Centre",
			Description: "Centre running part-time and distance degree programmes",
			Category:    domain_models.CategoryAcademic,
			Coordinates: domain_models.Coordinate{Latitude: 7.45250, Longitude: 3.90080},
			Keywords:    []string{"dlc", "distance", "part-time", "programmes"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "international-school",
			Name:        "International School Ibadan",
			Description: "Secondary school on the university campus",
			Category:    domain_models.CategoryAcademic,
			Coordinates: domain_models.Coordinate{Latitude: 7.43700, Longitude: 3.90150},
			Keywords:    []string{"isi", "school", "secondary", "students"},
			Source:      domain_models.SourceStatic,
		},
		{
			ID:          "awba-dam",
			Name:        "Awba Dam",
			Description: "Reservoir and recreation spot supplying water to parts of the campus",
			Category:    domain_models.CategoryLandmarks,
			Coordinates: domain_models.Coordinate{Latitude: 7.45380, Longitude: 3.89560},
			Keywords:    []string{"dam", "lake", "water", "fishing", "recreation"},
			Source:      domain_models.SourceStatic,
		},
	}
}
