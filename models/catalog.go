package models

// Category is one entry of the fixed complaint category catalog
type Category struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"nameEn"`
}

// Status is one entry of the fixed five-state workflow catalog
type Status struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"nameEn"`
}

// Upazila is a sub-district with its union list
type Upazila struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Unions []string `json:"unions"`
}

const (
	StatusSubmitted  = 1
	StatusReceived   = 2
	StatusAssigned   = 3
	StatusInProgress = 4
	StatusResolved   = 5
)

// District is fixed for the whole deployment
const District = "ব্রাহ্মণবাড়িয়া"

var Categories = []Category{
	{ID: 1, Name: "অবকাঠামো", NameEn: "Infrastructure"},
	{ID: 2, Name: "পানি ও পয়ঃনিষ্কাশন", NameEn: "Water & Sanitation"},
	{ID: 3, Name: "বিদ্যুৎ ও গ্যাস", NameEn: "Utilities"},
	{ID: 4, Name: "পরিবহন ও যানজট", NameEn: "Transportation"},
	{ID: 5, Name: "পরিবেশ ও স্বাস্থ্য", NameEn: "Environment & Health"},
	{ID: 6, Name: "আইন-শৃঙ্খলা", NameEn: "Law & Order"},
	{ID: 7, Name: "শিক্ষা", NameEn: "Education"},
	{ID: 8, Name: "স্বাস্থ্যসেবা", NameEn: "Healthcare"},
	{ID: 9, Name: "দুর্নীতি ও প্রশাসনিক অনিয়ম", NameEn: "Governance & Corruption"},
	{ID: 10, Name: "সামাজিক সমস্যা", NameEn: "Social Issues"},
	{ID: 11, Name: "ধর্মীয় ও সংস্কৃতি", NameEn: "Religion & Culture"},
	{ID: 12, Name: "কৃষি ও গ্রামীণ উন্নয়ন", NameEn: "Agriculture & Rural Development"},
	{ID: 13, Name: "নাগরিক সেবা", NameEn: "Citizen Services"},
	{ID: 14, Name: "ইন্টারনেট ও টেলিযোগাযোগ", NameEn: "ICT & Communication"},
	{ID: 15, Name: "আবাসন ও ভূমি", NameEn: "Housing & Land"},
}

var Statuses = []Status{
	{ID: StatusSubmitted, Name: "সমস্যা/অভিযোগ জমা হয়েছে", NameEn: "Complaint Submitted"},
	{ID: StatusReceived, Name: "সমস্যা/অভিযোগটি গ্রহণ করা হয়েছে", NameEn: "Received"},
	{ID: StatusAssigned, Name: "সমস্যাটি সমাধানের জন্য দেয়া হয়েছে", NameEn: "Assigned"},
	{ID: StatusInProgress, Name: "সমাধান প্রক্রিয়াধীন", NameEn: "In Progress"},
	{ID: StatusResolved, Name: "সমাধান করা হয়েছে", NameEn: "Resolved"},
}

var Upazilas = []Upazila{
	{ID: 1, Name: "ব্রাহ্মণবাড়িয়া সদর", Unions: []string{
		"বাসুদেব", "মাছিহাতা", "সুলতানপুর", "রামরাইল", "সাদেকপুর",
		"নাটাই (উত্তর)", "নাটাই (দক্ষিণ)", "সুহিলপুর", "মজলিশপুর", "বুধল",
		"তালশহর (পূর্ব)",
	}},
	{ID: 2, Name: "কসবা", Unions: []string{
		"কসবা", "বিলাশপুর", "চান্দুরা", "চান্দলা", "দেবপুর", "দুধঘর",
		"মীরপুর", "মাধবপুর", "মাধবপুর (পূর্ব)", "মাধবপুর (পশ্চিম)", "নোয়াগাঁও",
	}},
	{ID: 3, Name: "নাসিরনগর", Unions: []string{
		"নাসিরনগর", "দুলারামপুর", "বড়াইল", "পলাশপুর", "পানিশ্বর", "রামপুর",
	}},
	{ID: 4, Name: "সরাইল", Unions: []string{
		"সরাইল", "বেজপাড়া", "দাউদপুর", "হরিপুর", "বেজরা", "সতেরখন্দল",
	}},
	{ID: 5, Name: "আখাউড়া", Unions: []string{
		"আখাউড়া", "বড়বাড়িয়া", "বড়তাকিয়া", "দরুইন", "মুরাদপুর", "নোয়াগাঁও",
	}},
	{ID: 6, Name: "নবীনগর", Unions: []string{
		"নবীনগর", "বড়াইল", "বড়ঘর", "বড়মুড়া",
	}},
	{ID: 7, Name: "বাঞ্ছারামপুর", Unions: []string{
		"বাঞ্ছারামপুর", "বড়াইল", "বড়ঘর", "বড়মুড়া",
	}},
	{ID: 8, Name: "বিজয়নগর", Unions: []string{
		"বিজয়নগর", "বিজয়নগর (পূর্ব)", "বিজয়নগর (পশ্চিম)",
	}},
	{ID: 9, Name: "আশুগঞ্জ", Unions: []string{
		"আশুগঞ্জ", "বড়ঘর", "বড়মুড়া", "বড়াইল",
	}},
}

// CategoryByID returns the catalog entry, or nil for an unknown id
func CategoryByID(id int) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

// StatusByID returns the catalog entry, or nil for an unknown id
func StatusByID(id int) *Status {
	for i := range Statuses {
		if Statuses[i].ID == id {
			return &Statuses[i]
		}
	}
	return nil
}

// UnionsByUpazila returns the unions for an upazila name, nil if the
// upazila is not part of the district
func UnionsByUpazila(name string) []string {
	for i := range Upazilas {
		if Upazilas[i].Name == name {
			return Upazilas[i].Unions
		}
	}
	return nil
}

// ValidLocation reports whether the union belongs to the named upazila
func ValidLocation(upazila, union string) bool {
	for _, u := range UnionsByUpazila(upazila) {
		if u == union {
			return true
		}
	}
	return false
}
