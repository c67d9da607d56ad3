package mapgen

var (
	namePrefixes = []string{"Ash", "Bel", "Cor", "Dun", "Eld", "Fen", "Gal", "Hal", "Ir", "Kel", "Lor", "Mar"}
	nameSuffixes = []string{"ford", "mere", "holt", "wick", "stead", "burg", "vale", "crest"}
)

// CityName derives a stable display name from a city key
func CityName(key int) string {
	if key < 0 {
		key = -key
	}
	prefix := namePrefixes[key%len(namePrefixes)]
	suffix := nameSuffixes[(key/len(namePrefixes))%len(nameSuffixes)]
	return prefix + suffix
}
