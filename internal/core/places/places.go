// Package places holds static location data: country names, Nigerian states,
// and a country to IANA timezone lookup used by time-in-place queries
package places

import "strings"

// DefaultZone is used when a place cannot be resolved
const DefaultZone = "Africa/Lagos"

// Countries is the display-name list cross-checked during location extraction
var Countries = []string{
	"Afghanistan", "Albania", "Algeria", "Andorra", "Angola", "Argentina", "Australia", "Austria", "Bangladesh",
	"Belgium", "Brazil", "Canada", "China", "Colombia", "Denmark", "Egypt", "Finland", "France", "Germany",
	"Ghana", "Greece", "Hong Kong", "India", "Indonesia", "Ireland", "Israel", "Italy", "Japan", "Kenya",
	"Malaysia", "Mexico", "Netherlands", "New Zealand", "Nigeria", "Norway", "Pakistan", "Peru", "Philippines",
	"Poland", "Portugal", "Russia", "Saudi Arabia", "Singapore", "South Africa", "South Korea", "Spain",
	"Sweden", "Switzerland", "Thailand", "Turkey", "United Arab Emirates", "United Kingdom", "United States", "Vietnam",
}

// NigerianStates lists the 36 states plus the FCT
var NigerianStates = []string{
	"Abia", "Adamawa", "Akwa Ibom", "Anambra", "Bauchi", "Bayelsa",
	"Benue", "Borno", "Cross River", "Delta", "Ebonyi", "Edo",
	"Ekiti", "Enugu", "FCT", "Gombe", "Imo", "Jigawa",
	"Kaduna", "Kano", "Katsina", "Kebbi", "Kogi", "Kwara",
	"Lagos", "Nasarawa", "Niger", "Ogun", "Ondo", "Osun",
	"Oyo", "Plateau", "Rivers", "Sokoto", "Taraba", "Yobe", "Zamfara",
}

// StatesSentence is the canned trivia answer
func StatesSentence() string {
	return "Nigeria has 36 states: " + strings.Join(NigerianStates, ", ") + "."
}

// FindCountry returns the first country whose name appears in the lower-cased text
func FindCountry(lower string) (string, bool) {
	for _, c := range Countries {
		if strings.Contains(lower, strings.ToLower(c)) {
			return c, true
		}
	}
	return "", false
}

// ZoneFor resolves a place name to an IANA timezone, falling back to DefaultZone
func ZoneFor(place string) string {
	if z, ok := zones[strings.ToLower(strings.TrimSpace(place))]; ok {
		return z
	}
	return DefaultZone
}

// zones maps lower-cased country names to IANA zone identifiers
var zones = map[string]string{
	"afghanistan":                      "Asia/Kabul",
	"albania":                          "Europe/Tirane",
	"algeria":                          "Africa/Algiers",
	"andorra":                          "Europe/Andorra",
	"angola":                           "Africa/Luanda",
	"antigua and barbuda":              "America/Antigua",
	"argentina":                        "America/Argentina/Buenos_Aires",
	"armenia":                          "Asia/Yerevan",
	"australia":                        "Australia/Sydney",
	"austria":                          "Europe/Vienna",
	"azerbaijan":                       "Asia/Baku",
	"bahamas":                          "America/Nassau",
	"bahrain":                          "Asia/Bahrain",
	"bangladesh":                       "Asia/Dhaka",
	"barbados":                         "America/Barbados",
	"belarus":                          "Europe/Minsk",
	"belgium":                          "Europe/Brussels",
	"belize":                           "America/Belize",
	"benin":                            "Africa/Porto-Novo",
	"bhutan":                           "Asia/Thimphu",
	"bolivia":                          "America/La_Paz",
	"bosnia and herzegovina":           "Europe/Sarajevo",
	"botswana":                         "Africa/Gaborone",
	"brazil":                           "America/Sao_Paulo",
	"brunei":                           "Asia/Brunei",
	"bulgaria":                         "Europe/Sofia",
	"burkina faso":                     "Africa/Ouagadougou",
	"burundi":                          "Africa/Bujumbura",
	"cabo verde":                       "Atlantic/Cape_Verde",
	"cambodia":                         "Asia/Phnom_Penh",
	"cameroon":                         "Africa/Douala",
	"canada":                           "America/Toronto",
	"central african republic":         "Africa/Bangui",
	"chad":                             "Africa/Ndjamena",
	"chile":                            "America/Santiago",
	"china":                            "Asia/Shanghai",
	"colombia":                         "America/Bogota",
	"comoros":                          "Indian/Comoro",
	"congo":                            "Africa/Brazzaville",
	"costa rica":                       "America/Costa_Rica",
	"croatia":                          "Europe/Zagreb",
	"cuba":                             "America/Havana",
	"cyprus":                           "Asia/Nicosia",
	"czech republic":                   "Europe/Prague",
	"democratic republic of the congo": "Africa/Kinshasa",
	"denmark":                          "Europe/Copenhagen",
	"djibouti":                         "Africa/Djibouti",
	"dominica":                         "America/Dominica",
	"dominican republic":               "America/Santo_Domingo",
	"ecuador":                          "America/Guayaquil",
	"egypt":                            "Africa/Cairo",
	"el salvador":                      "America/El_Salvador",
	"equatorial guinea":                "Africa/Malabo",
	"eritrea":                          "Africa/Asmara",
	"estonia":                          "Europe/Tallinn",
	"eswatini":                         "Africa/Mbabane",
	"ethiopia":                         "Africa/Addis_Ababa",
	"fiji":                             "Pacific/Fiji",
	"finland":                          "Europe/Helsinki",
	"france":                           "Europe/Paris",
	"gabon":                            "Africa/Libreville",
	"gambia":                           "Africa/Banjul",
	"georgia":                          "Asia/Tbilisi",
	"germany":                          "Europe/Berlin",
	"ghana":                            "Africa/Accra",
	"greece":                           "Europe/Athens",
	"grenada":                          "America/Grenada",
	"guatemala":                        "America/Guatemala",
	"guinea":                           "Africa/Conakry",
	"guinea-bissau":                    "Africa/Bissau",
	"guyana":                           "America/Guyana",
	"haiti":                            "America/Port-au-Prince",
	"honduras":                         "America/Tegucigalpa",
	"hungary":                          "Europe/Budapest",
	"iceland":                          "Atlantic/Reykjavik",
	"india":                            "Asia/Kolkata",
	"indonesia":                        "Asia/Jakarta",
	"iran":                             "Asia/Tehran",
	"iraq":                             "Asia/Baghdad",
	"ireland":                          "Europe/Dublin",
	"israel":                           "Asia/Jerusalem",
	"italy":                            "Europe/Rome",
	"jamaica":                          "America/Jamaica",
	"japan":                            "Asia/Tokyo",
	"jordan":                           "Asia/Amman",
	"kazakhstan":                       "Asia/Almaty",
	"kenya":                            "Africa/Nairobi",
	"kiribati":                         "Pacific/Tarawa",
	"kuwait":                           "Asia/Kuwait",
	"kyrgyzstan":                       "Asia/Bishkek",
	"laos":                             "Asia/Vientiane",
	"latvia":                           "Europe/Riga",
	"lebanon":                          "Asia/Beirut",
	"lesotho":                          "Africa/Maseru",
	"liberia":                          "Africa/Monrovia",
	"libya":                            "Africa/Tripoli",
	"liechtenstein":                    "Europe/Vaduz",
	"lithuania":                        "Europe/Vilnius",
	"luxembourg":                       "Europe/Luxembourg",
	"madagascar":                       "Indian/Antananarivo",
	"malawi":                           "Africa/Blantyre",
	"malaysia":                         "Asia/Kuala_Lumpur",
	"maldives":                         "Indian/Maldives",
	"mali":                             "Africa/Bamako",
	"malta":                            "Europe/Malta",
	"marshall islands":                 "Pacific/Majuro",
	"mauritania":                       "Africa/Nouakchott",
	"mauritius":                        "Indian/Mauritius",
	"mexico":                           "America/Mexico_City",
	"micronesia":                       "Pacific/Chuuk",
	"moldova":                          "Europe/Chisinau",
	"monaco":                           "Europe/Monaco",
	"mongolia":                         "Asia/Ulaanbaatar",
	"montenegro":                       "Europe/Podgorica",
	"morocco":                          "Africa/Casablanca",
	"mozambique":                       "Africa/Maputo",
	"myanmar":                          "Asia/Yangon",
	"namibia":                          "Africa/Windhoek",
	"nauru":                            "Pacific/Nauru",
	"nepal":                            "Asia/Kathmandu",
	"netherlands":                      "Europe/Amsterdam",
	"new zealand":                      "Pacific/Auckland",
	"nicaragua":                        "America/Managua",
	"niger":                            "Africa/Niamey",
	"nigeria":                          "Africa/Lagos",
	"north korea":                      "Asia/Pyongyang",
	"north macedonia":                  "Europe/Skopje",
	"norway":                           "Europe/Oslo",
	"oman":                             "Asia/Muscat",
	"pakistan":                         "Asia/Karachi",
	"palau":                            "Pacific/Palau",
	"palestine":                        "Asia/Gaza",
	"panama":                           "America/Panama",
	"papua new guinea":                 "Pacific/Port_Moresby",
	"paraguay":                         "America/Asuncion",
	"peru":                             "America/Lima",
	"philippines":                      "Asia/Manila",
	"poland":                           "Europe/Warsaw",
	"portugal":                         "Europe/Lisbon",
	"qatar":                            "Asia/Qatar",
	"romania":                          "Europe/Bucharest",
	"russia":                           "Europe/Moscow",
	"rwanda":                           "Africa/Kigali",
	"saint kitts and nevis":            "America/St_Kitts",
	"saint lucia":                      "America/St_Lucia",
	"saint vincent and the grenadines": "America/St_Vincent",
	"samoa":                            "Pacific/Apia",
	"san marino":                       "Europe/San_Marino",
	"sao tome and principe":            "Africa/Sao_Tome",
	"saudi arabia":                     "Asia/Riyadh",
	"senegal":                          "Africa/Dakar",
	"serbia":                           "Europe/Belgrade",
	"seychelles":                       "Indian/Mahe",
	"sierra leone":                     "Africa/Freetown",
	"singapore":                        "Asia/Singapore",
	"slovakia":                         "Europe/Bratislava",
	"slovenia":                         "Europe/Ljubljana",
	"solomon islands":                  "Pacific/Guadalcanal",
	"somalia":                          "Africa/Mogadishu",
	"south africa":                     "Africa/Johannesburg",
	"south korea":                      "Asia/Seoul",
	"south sudan":                      "Africa/Juba",
	"spain":                            "Europe/Madrid",
	"sri lanka":                        "Asia/Colombo",
	"sudan":                            "Africa/Khartoum",
	"suriname":                         "America/Paramaribo",
	"sweden":                           "Europe/Stockholm",
	"switzerland":                      "Europe/Zurich",
	"syria":                            "Asia/Damascus",
	"taiwan":                           "Asia/Taipei",
	"tajikistan":                       "Asia/Dushanbe",
	"tanzania":                         "Africa/Dar_es_Salaam",
	"thailand":                         "Asia/Bangkok",
	"timor-leste":                      "Asia/Dili",
	"togo":                             "Africa/Lome",
	"tonga":                            "Pacific/Tongatapu",
	"trinidad and tobago":              "America/Port_of_Spain",
	"tunisia":                          "Africa/Tunis",
	"turkey":                           "Europe/Istanbul",
	"turkmenistan":                     "Asia/Ashgabat",
	"tuvalu":                           "Pacific/Funafuti",
	"uganda":                           "Africa/Kampala",
	"ukraine":                          "Europe/Kiev",
	"united arab emirates":             "Asia/Dubai",
	"united kingdom":                   "Europe/London",
	"uk":                               "Europe/London",
	"united states":                    "America/New_York",
	"usa":                              "America/New_York",
	"us":                               "America/New_York",
	"uruguay":                          "America/Montevideo",
	"uzbekistan":                       "Asia/Tashkent",
	"vanuatu":                          "Pacific/Efate",
	"vatican city":                     "Europe/Vatican",
	"venezuela":                        "America/Caracas",
	"vietnam":                          "Asia/Ho_Chi_Minh",
	"yemen":                            "Asia/Aden",
	"zambia":                           "Africa/Lusaka",
	"zimbabwe":                         "Africa/Harare",
}
