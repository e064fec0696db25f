package islamic

import "strings"

// cityIDs maps lowercase city names to the schedule provider's location ids.
var cityIDs = map[string]string{
	// Banten
	"cilegon":           "1105",
	"serang":            "1106",
	"tangerang":         "1107",
	"tangerang selatan": "1108",

	// Jawa Barat
	"bandung":         "1219",
	"kab bandung":     "1201",
	"bandung barat":   "1202",
	"bekasi":          "1221",
	"kab bekasi":      "1203",
	"bogor":           "1222",
	"kab bogor":       "1204",
	"depok":           "1225",
	"cimahi":          "1223",
	"cirebon":         "1224",
	"kab cirebon":     "1207",
	"sukabumi":        "1226",
	"kab sukabumi":    "1216",
	"tasikmalaya":     "1227",
	"kab tasikmalaya": "1218",

	// DKI Jakarta
	"jakarta":          "1301",
	"jakarta pusat":    "1301",
	"jakarta utara":    "1301",
	"jakarta barat":    "1301",
	"jakarta selatan":  "1301",
	"jakarta timur":    "1301",
	"kepulauan seribu": "1302",

	// Jawa Tengah
	"semarang":       "1433",
	"kab semarang":   "1423",
	"surakarta":      "1434",
	"solo":           "1434",
	"magelang":       "1430",
	"kab magelang":   "1416",
	"pekalongan":     "1431",
	"kab pekalongan": "1418",
	"tegal":          "1435",
	"kab tegal":      "1426",
	"banjarnegara":   "1401",
	"cilacap":        "1407",
	"purwokerto":     "1402",

	// DI Yogyakarta
	"yogyakarta":  "1505",
	"jogja":       "1505",
	"sleman":      "1504",
	"bantul":      "1501",
	"gunungkidul": "1502",
	"kulon progo": "1503",

	// Jawa Timur
	"surabaya":        "1638",
	"malang":          "1634",
	"kab malang":      "1614",
	"batu":            "1630",
	"kediri":          "1632",
	"kab kediri":      "1609",
	"blitar":          "1631",
	"kab blitar":      "1603",
	"madiun":          "1633",
	"kab madiun":      "1612",
	"mojokerto":       "1635",
	"kab mojokerto":   "1615",
	"pasuruan":        "1636",
	"kab pasuruan":    "1620",
	"probolinggo":     "1637",
	"kab probolinggo": "1622",

	// Bali
	"denpasar": "1709",
	"badung":   "1701",
	"buleleng": "1703",
	"gianyar":  "1704",
	"tabanan":  "1708",

	// Lampung
	"bandar lampung": "1014",
	"lampung":        "1014",
	"metro":          "1015",

	// Sumatera
	"medan":           "0228",
	"binjai":          "0226",
	"pematangsiantar": "0230",
	"tebing tinggi":   "0233",
	"pekanbaru":       "0412",
	"dumai":           "0411",
	"batam":           "0506",
	"tanjung pinang":  "0507",
	"jambi":           "0610",
	"sungai penuh":    "0611",
	"bengkulu":        "0710",
	"palembang":       "0816",
	"lubuklinggau":    "0814",
	"prabumulih":      "0817",
	"pangkal pinang":  "0907",

	// Kalimantan
	"pontianak":    "2013",
	"singkawang":   "2014",
	"palangkaraya": "2214",
	"banjarmasin":  "2113",
	"banjarbaru":   "2112",
	"samarinda":    "2310",
	"balikpapan":   "2308",
	"bontang":      "2309",
	"tarakan":      "2405",

	// Sulawesi
	"makassar":   "2622",
	"parepare":   "2624",
	"palopo":     "2623",
	"manado":     "2914",
	"bitung":     "2912",
	"kotamobagu": "2913",
	"tomohon":    "2915",
	"palu":       "2813",
	"gorontalo":  "2506",
	"kendari":    "2717",
	"bau bau":    "2716",

	// Maluku and Papua
	"ambon":    "3110",
	"tual":     "3111",
	"jayapura": "3329",
	"sorong":   "3413",
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

var cityCoordinates = map[string]Coordinates{
	"jakarta":    {Lat: -6.2088, Lng: 106.8456},
	"bandung":    {Lat: -6.9175, Lng: 107.6191},
	"surabaya":   {Lat: -7.2575, Lng: 112.7521},
	"yogyakarta": {Lat: -7.7956, Lng: 110.3695},
	"semarang":   {Lat: -6.9667, Lng: 110.4167},
	"medan":      {Lat: 3.5952, Lng: 98.6722},
	"makassar":   {Lat: -5.1477, Lng: 119.4327},
	"palembang":  {Lat: -2.9761, Lng: 104.7754},
}

func normalizeCity(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func CityID(name string) (string, bool) {
	id, ok := cityIDs[normalizeCity(name)]
	return id, ok
}

func CityCoordinates(name string) (Coordinates, bool) {
	c, ok := cityCoordinates[normalizeCity(name)]
	return c, ok
}
