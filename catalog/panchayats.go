package catalog

// Panchayat is a local self-government unit. Issues and event submissions
// each reference exactly one panchayat by id.
type Panchayat struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Panchayats is the authoritative reference catalog, loaded at startup and
// read-only afterwards.
var Panchayats = []Panchayat{
	// Bagalkot
	{ID: "badami", Name: "Badami (Bagalkot)"},
	{ID: "jamkhandi", Name: "Jamkhandi (Bagalkot)"},
	{ID: "mudhol", Name: "Mudhol (Bagalkot)"},
	// Bangalore Rural
	{ID: "doddaballapur", Name: "Doddaballapur (Bangalore Rural)"},
	{ID: "nelamangala", Name: "Nelamangala (Bangalore Rural)"},
	{ID: "hoskote", Name: "Hoskote (Bangalore Rural)"},
	// Bangalore Urban
	{ID: "anekal", Name: "Anekal (Bangalore Urban)"},
	{ID: "yelahanka", Name: "Yelahanka (Bangalore Urban)"},
	{ID: "suggatta", Name: "Suggatta (Bangalore Urban)"},
	{ID: "adakamaranahalli", Name: "Adakamaranahalli (Bangalore Urban)"},
	// Belagavi
	{ID: "athani", Name: "Athani (Belagavi)"},
	{ID: "bailhongal", Name: "Bailhongal (Belagavi)"},
	{ID: "gokak", Name: "Gokak (Belagavi)"},
	{ID: "kakati", Name: "Kakati (Belagavi)"},
	{ID: "sankeshwar", Name: "Sankeshwar (Belagavi)"},
	// Bellary
	{ID: "hospet", Name: "Hospet (Bellary)"},
	{ID: "sandur", Name: "Sandur (Bellary)"},
	{ID: "siruguppa", Name: "Siruguppa (Bellary)"},
	// Bidar
	{ID: "basavakalyan", Name: "Basavakalyan (Bidar)"},
	{ID: "bhalki", Name: "Bhalki (Bidar)"},
	{ID: "aurad", Name: "Aurad (Bidar)"},
	// Vijayapura
	{ID: "indi", Name: "Indi (Vijayapura)"},
	{ID: "muddebihal", Name: "Muddebihal (Vijayapura)"},
	{ID: "sindagi", Name: "Sindagi (Vijayapura)"},
	// Chamarajanagar
	{ID: "kollegal", Name: "Kollegal (Chamarajanagar)"},
	{ID: "gundlupet", Name: "Gundlupet (Chamarajanagar)"},
	{ID: "yelandur", Name: "Yelandur (Chamarajanagar)"},
	// Chikballapur
	{ID: "bagepalli", Name: "Bagepalli (Chikballapur)"},
	{ID: "chintamani", Name: "Chintamani (Chikballapur)"},
	{ID: "gudibanda", Name: "Gudibanda (Chikballapur)"},
	// Chikmagalur
	{ID: "kadur", Name: "Kadur (Chikmagalur)"},
	{ID: "mudigere", Name: "Mudigere (Chikmagalur)"},
	{ID: "sringeri", Name: "Sringeri (Chikmagalur)"},
	// Chitradurga
	{ID: "challakere", Name: "Challakere (Chitradurga)"},
	{ID: "hiriyur", Name: "Hiriyur (Chitradurga)"},
	{ID: "molakalmuru", Name: "Molakalmuru (Chitradurga)"},
	// Dakshina Kannada
	{ID: "bantwal", Name: "Bantwal (Dakshina Kannada)"},
	{ID: "beltangady", Name: "Beltangady (Dakshina Kannada)"},
	{ID: "puttur", Name: "Puttur (Dakshina Kannada)"},
	{ID: "munnur", Name: "Munnur (Dakshina Kannada)"},
	// Davanagere
	{ID: "harihar", Name: "Harihar (Davanagere)"},
	{ID: "jagalur", Name: "Jagalur (Davanagere)"},
	{ID: "honnali", Name: "Honnali (Davanagere)"},
	// Dharwad
	{ID: "hubli", Name: "Hubli (Dharwad)"},
	{ID: "kalghatgi", Name: "Kalghatgi (Dharwad)"},
	{ID: "kundgol", Name: "Kundgol (Dharwad)"},
	// Gadag
	{ID: "nargund", Name: "Nargund (Gadag)"},
	{ID: "ron", Name: "Ron (Gadag)"},
	{ID: "shirahatti", Name: "Shirahatti (Gadag)"},
	// Hassan
	{ID: "arsikere", Name: "Arsikere (Hassan)"},
	{ID: "belur", Name: "Belur (Hassan)"},
	{ID: "holenarasipur", Name: "Holenarasipur (Hassan)"},
	// Haveri
	{ID: "byadgi", Name: "Byadgi (Haveri)"},
	{ID: "hangal", Name: "Hangal (Haveri)"},
	{ID: "savnur", Name: "Savnur (Haveri)"},
	// Kalaburagi
	{ID: "afzalpur", Name: "Afzalpur (Kalaburagi)"},
	{ID: "aland", Name: "Aland (Kalaburagi)"},
	{ID: "chittapur", Name: "Chittapur (Kalaburagi)"},
	// Kodagu
	{ID: "madikeri", Name: "Madikeri (Kodagu)"},
	{ID: "somwarpet", Name: "Somwarpet (Kodagu)"},
	{ID: "virajpet", Name: "Virajpet (Kodagu)"},
	// Kolar
	{ID: "bangarapet", Name: "Bangarapet (Kolar)"},
	{ID: "malur", Name: "Malur (Kolar)"},
	{ID: "mulbagal", Name: "Mulbagal (Kolar)"},
	// Koppal
	{ID: "gangavathi", Name: "Gangavathi (Koppal)"},
	{ID: "kushtagi", Name: "Kushtagi (Koppal)"},
	{ID: "yelbarga", Name: "Yelbarga (Koppal)"},
	// Mandya
	{ID: "maddur", Name: "Maddur (Mandya)"},
	{ID: "malavalli", Name: "Malavalli (Mandya)"},
	{ID: "pandavapura", Name: "Pandavapura (Mandya)"},
	// Mysore
	{ID: "hunsur", Name: "Hunsur (Mysore)"},
	{ID: "krishnarajanagara", Name: "Krishnarajanagara (Mysore)"},
	{ID: "nanjangud", Name: "Nanjangud (Mysore)"},
	{ID: "yelwal", Name: "Yelwal (Mysore)"},
	{ID: "hampapura", Name: "Hampapura (Mysore)"},
	// Raichur
	{ID: "devadurga", Name: "Devadurga (Raichur)"},
	{ID: "manvi", Name: "Manvi (Raichur)"},
	{ID: "sindhanur", Name: "Sindhanur (Raichur)"},
	// Ramanagara
	{ID: "chanapatna", Name: "Chanapatna (Ramanagara)"},
	{ID: "kanakapura", Name: "Kanakapura (Ramanagara)"},
	{ID: "magadi", Name: "Magadi (Ramanagara)"},
	// Shivamogga
	{ID: "bhadravati", Name: "Bhadravati (Shivamogga)"},
	{ID: "sagar", Name: "Sagar (Shivamogga)"},
	{ID: "sorab", Name: "Sorab (Shivamogga)"},
	{ID: "ayanur", Name: "Ayanur (Shivamogga)"},
	// Tumakuru
	{ID: "chiknayakanhalli", Name: "Chiknayakanhalli (Tumakuru)"},
	{ID: "gubbi", Name: "Gubbi (Tumakuru)"},
	{ID: "kunigal", Name: "Kunigal (Tumakuru)"},
	{ID: "oorukere", Name: "Oorukere (Tumakuru)"},
	// Udupi
	{ID: "karkala", Name: "Karkala (Udupi)"},
	{ID: "kundapura", Name: "Kundapura (Udupi)"},
	{ID: "padubidri", Name: "Padubidri (Udupi)"},
	// Uttara Kannada
	{ID: "bhatkal", Name: "Bhatkal (Uttara Kannada)"},
	{ID: "karwar", Name: "Karwar (Uttara Kannada)"},
	{ID: "sirsi", Name: "Sirsi (Uttara Kannada)"},
	// Yadgir
	{ID: "shahapur", Name: "Shahapur (Yadgir)"},
	{ID: "shorapur", Name: "Shorapur (Yadgir)"},
	{ID: "yadgir", Name: "Yadgir (Yadgir)"},
}

var panchayatByID = func() map[string]Panchayat {
	m := make(map[string]Panchayat, len(Panchayats))
	for _, p := range Panchayats {
		m[p.ID] = p
	}
	return m
}()

// ResolvePanchayat looks up a panchayat by id.
func ResolvePanchayat(id string) (Panchayat, bool) {
	p, ok := panchayatByID[id]
	return p, ok
}
