package targeting

import (
	"sort"
	"strings"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"

	AgeClassYoung = "young"
	AgeClassOld   = "old"
)

// AgeRange is an inclusive age bracket sent as age_min/age_max.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var validGenders = map[string]struct{}{
	GenderMale:   {},
	GenderFemale: {},
}

var ageClasses = map[string]AgeRange{
	AgeClassYoung: {Min: 13, Max: 24},
	AgeClassOld:   {Min: 25, Max: 65},
}

// ISO 3166-1 alpha-2 codes accepted by the reach estimate endpoint.
var validCountries = toSet(strings.Fields(`
	AD AE AF AG AI AL AM AO AQ AR AS AT AU AW AX AZ
	BA BB BD BE BF BG BH BI BJ BL BM BN BO BQ BR BS BT BV BW BY BZ
	CA CC CD CF CG CH CI CK CL CM CN CO CR CU CV CW CX CY CZ
	DE DJ DK DM DO DZ
	EC EE EG EH ER ES ET
	FI FJ FK FM FO FR
	GA GB GD GE GF GG GH GI GL GM GN GP GQ GR GS GT GU GW GY
	HK HM HN HR HT HU
	ID IE IL IM IN IO IQ IR IS IT
	JE JM JO JP
	KE KG KH KI KM KN KP KR KW KY KZ
	LA LB LC LI LK LR LS LT LU LV LY
	MA MC MD ME MF MG MH MK ML MM MN MO MP MQ MR MS MT MU MV MW MX MY MZ
	NA NC NE NF NG NI NL NO NP NR NU NZ
	OM
	PA PE PF PG PH PK PL PM PN PR PS PT PW PY
	QA
	RE RO RS RU RW
	SA SB SC SD SE SG SH SI SJ SK SL SM SN SO SR SS ST SV SX SY SZ
	TC TD TF TG TH TJ TK TL TM TN TO TR TT TV TW TZ
	UA UG UM US UY UZ
	VA VC VE VG VI VN VU
	WF WS
	YE YT
	ZA ZM ZW
`))

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// IsValidGender reports whether gender is one of the supported genders.
func IsValidGender(gender string) bool {
	_, ok := validGenders[gender]
	return ok
}

// AgeRangeFor returns the age bracket of an age class.
func AgeRangeFor(class string) (AgeRange, bool) {
	r, ok := ageClasses[class]
	return r, ok
}

// IsValidCountry reports whether code is a known country code. Matching ignores case.
func IsValidCountry(code string) bool {
	_, ok := validCountries[strings.ToUpper(code)]
	return ok
}

// InvalidCountries returns the entries of countries that are not known country codes,
// in their original order and spelling.
func InvalidCountries(countries []string) []string {
	var invalid []string
	for _, c := range countries {
		if !IsValidCountry(c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

// Catalog is a read-only view of the constraint catalog.
type Catalog struct {
	Genders    []string            `json:"genders"`
	AgeClasses map[string]AgeRange `json:"age_classes"`
	Countries  []string            `json:"countries"`
}

// GetCatalog returns a snapshot of the constraint catalog with sorted lists.
func GetCatalog() Catalog {
	genders := make([]string, 0, len(validGenders))
	for g := range validGenders {
		genders = append(genders, g)
	}
	sort.Strings(genders)

	classes := make(map[string]AgeRange, len(ageClasses))
	for k, v := range ageClasses {
		classes[k] = v
	}

	countries := make([]string, 0, len(validCountries))
	for c := range validCountries {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	return Catalog{Genders: genders, AgeClasses: classes, Countries: countries}
}
