package catalog

// Community events citizens can join with a photo submission. Gallery pages
// group submissions by event, then by panchayat.
var Events = []string{
	"Har Ghar Tiranga",
	"Swachh Bharat Mission",
	"Plantation Drive",
}

// ValidEvent reports whether name is one of the configured community events.
func ValidEvent(name string) bool {
	for _, e := range Events {
		if e == name {
			return true
		}
	}
	return false
}
