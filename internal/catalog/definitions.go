package catalog

import "github.com/arytiwari/jioastro-sub006/pkg/core"

// definitions is the curated catalog table. Entries are grouped by family;
// order within the table is the curation order surfaced by Definitions().
//
// Tier assignment follows the curation criteria documented on core.Tier.
// FormingPlanets are listed only where the combination is tied to specific
// planets; lord-based and position-based yogas leave the set empty, which
// timing treats as "no period basis".
var definitions = []core.YogaDefinition{
	// =====================================================================
	// Pancha Mahapurusha yogas
	// =====================================================================
	{
		CanonicalName:  "Ruchaka Yoga",
		VariantNames:   []string{"Ruchika Yoga", "Ruchak Yoga"},
		Tier:           core.TierMajorPositive,
		LifeArea:       core.AreaCareer,
		Formation:      "Mars exalted or in own sign, standing in a kendra from the lagna.",
		FormingPlanets: []core.Planet{core.Mars},
	},
	{
		CanonicalName:  "Bhadra Yoga",
		VariantNames:   []string{"Bhadr Yoga"},
		Tier:           core.TierMajorPositive,
		LifeArea:       core.AreaLearning,
		Formation:      "Mercury exalted or in own sign, standing in a kendra from the lagna.",
		FormingPlanets: []core.Planet{core.Mercury},
	},
	{
		CanonicalName:  "Hamsa Yoga",
		VariantNames:   []string{"Hansa Yoga", "Hans Yoga"},
		Tier:           core.TierMajorPositive,
		LifeArea:       core.AreaSpirituality,
		Formation:      "Jupiter exalted or in own sign, standing in a kendra from the lagna.",
		FormingPlanets: []core.Planet{core.Jupiter},
	},
	{
		CanonicalName:  "Malavya Yoga",
		VariantNames:   []string{"Malavya Maha Yoga", "Malvya Yoga"},
		Tier:           core.TierMajorPositive,
		LifeArea:       core.AreaRelationships,
		Formation:      "Venus exalted or in own sign, standing in a kendra from the lagna.",
		FormingPlanets: []core.Planet{core.Venus},
	},
	{
		CanonicalName:  "Shasha Yoga",
		VariantNames:   []string{"Sasa Yoga", "Shash Yoga"},
		Tier:           core.TierMajorPositive,
		LifeArea:       core.AreaCareer,
		Formation:      "Saturn exalted or in own sign, standing in a kendra from the lagna.",
		FormingPlanets: []core.Planet{core.Saturn},
	},

	// =====================================================================
	// Lunar yogas
	// =====================================================================
	{
		CanonicalName:  "Gaja Kesari Yoga",
		VariantNames:   []string{"Gajakesari Yoga", "Gaj Kesari Yoga", "Gajakeshari Yoga", "Gaja-Kesari Yoga", "Gajkesari Yoga"},
		Tier:           core.TierMajorPositive,
		LifeArea:       core.AreaFame,
		Formation:      "Jupiter in a kendra (1st, 4th, 7th or 10th) from the natal Moon.",
		FormingPlanets: []core.Planet{core.Jupiter, core.Moon},
	},
	{
		CanonicalName:  "Sunapha Yoga",
		VariantNames:   []string{"Sunabha Yoga", "Sunafa Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaWealth,
		Formation:      "A planet other than the Sun occupies the 2nd house from the Moon.",
		FormingPlanets: []core.Planet{core.Moon},
	},
	{
		CanonicalName:  "Anapha Yoga",
		VariantNames:   []string{"Anabha Yoga", "Anafa Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaPersonality,
		Formation:      "A planet other than the Sun occupies the 12th house from the Moon.",
		FormingPlanets: []core.Planet{core.Moon},
	},
	{
		CanonicalName:  "Durudhara Yoga",
		VariantNames:   []string{"Duradhara Yoga", "Dhurdhura Yoga", "Durdhara Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaWealth,
		Formation:      "Planets other than the Sun occupy both the 2nd and 12th houses from the Moon.",
		FormingPlanets: []core.Planet{core.Moon},
	},
	{
		CanonicalName:  "Kemadruma Yoga",
		VariantNames:   []string{"Kemdrum Yoga", "Kemadrum Yoga", "Kema Druma Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaWealth,
		Formation:      "No planet other than the Sun in the 2nd and 12th from the Moon, and no planet in a kendra from the Moon.",
		FormingPlanets: []core.Planet{core.Moon},
	},
	{
		CanonicalName:  "Adhi Yoga",
		VariantNames:   []string{"Chandra Adhi Yoga", "Adhiyoga"},
		Tier:           core.TierMajorPositive,
		LifeArea:       core.AreaCareer,
		Formation:      "Benefics occupy the 6th, 7th and 8th houses from the Moon.",
		FormingPlanets: []core.Planet{core.Moon, core.Mercury, core.Jupiter, core.Venus},
	},
	{
		CanonicalName:  "Chandra Mangala Yoga",
		VariantNames:   []string{"Chandra-Mangal Yoga", "Chandra Mangal Yoga", "Mangal Chandra Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaWealth,
		Formation:      "Moon and Mars conjunct or in mutual opposition.",
		FormingPlanets: []core.Planet{core.Moon, core.Mars},
	},
	{
		CanonicalName:  "Amala Yoga",
		VariantNames:   []string{"Amal Yoga", "Amala Kirti Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaFame,
		Formation:      "A natural benefic alone occupies the 10th house from the Moon or the lagna.",
		FormingPlanets: []core.Planet{core.Moon},
	},
	{
		CanonicalName:  "Chandra Adhama Yoga",
		Tier:           core.TierMinor,
		LifeArea:       core.AreaPersonality,
		Formation:      "Moon in a kendra from the Sun; diminishes the scale of Moon-borne results.",
		FormingPlanets: []core.Planet{core.Moon, core.Sun},
	},
	{
		CanonicalName:  "Chandra Sama Yoga",
		Tier:           core.TierMinor,
		LifeArea:       core.AreaPersonality,
		Formation:      "Moon in a panaphara (succedent) house from the Sun; middling Moon-borne results.",
		FormingPlanets: []core.Planet{core.Moon, core.Sun},
	},
	{
		CanonicalName:  "Chandra Varishtha Yoga",
		Tier:           core.TierMinor,
		LifeArea:       core.AreaPersonality,
		Formation:      "Moon in an apoklima (cadent) house from the Sun; the fullest Moon-borne results.",
		FormingPlanets: []core.Planet{core.Moon, core.Sun},
	},

	// =====================================================================
	// Solar yogas
	// =====================================================================
	{
		CanonicalName:  "Budha-Aditya Yoga",
		VariantNames:   []string{"Budhaditya Yoga", "Budha Aditya Yoga", "Nipuna Yoga", "Budh Aditya Yoga"},
		Tier:           core.TierMajorPositive,
		LifeArea:       core.AreaLearning,
		Formation:      "Sun and Mercury conjunct in one sign, Mercury not combust beyond repair.",
		FormingPlanets: []core.Planet{core.Sun, core.Mercury},
	},
	{
		CanonicalName:  "Vesi Yoga",
		VariantNames:   []string{"Veshi Yoga", "Vasi Yoga (Forward)"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaPersonality,
		Formation:      "A planet other than the Moon occupies the 2nd house from the Sun.",
		FormingPlanets: []core.Planet{core.Sun},
	},
	{
		CanonicalName:  "Vosi Yoga",
		VariantNames:   []string{"Vasi Yoga", "Voshi Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaPersonality,
		Formation:      "A planet other than the Moon occupies the 12th house from the Sun.",
		FormingPlanets: []core.Planet{core.Sun},
	},
	{
		CanonicalName:  "Ubhayachari Yoga",
		VariantNames:   []string{"Ubhayachara Yoga", "Ubhayacari Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaCareer,
		Formation:      "Planets other than the Moon occupy both the 2nd and 12th houses from the Sun.",
		FormingPlanets: []core.Planet{core.Sun},
	},
	{
		CanonicalName:  "Shubha Vesi Yoga",
		Tier:           core.TierMinor,
		LifeArea:       core.AreaPersonality,
		Formation:      "A natural benefic forms the Vesi position from the Sun.",
		FormingPlanets: []core.Planet{core.Sun},
	},
	{
		CanonicalName:  "Papa Vesi Yoga",
		Tier:           core.TierMinor,
		LifeArea:       core.AreaPersonality,
		Formation:      "A natural malefic forms the Vesi position from the Sun.",
		FormingPlanets: []core.Planet{core.Sun},
	},
	{
		CanonicalName:  "Shubha Vosi Yoga",
		Tier:           core.TierMinor,
		LifeArea:       core.AreaPersonality,
		Formation:      "A natural benefic forms the Vosi position from the Sun.",
		FormingPlanets: []core.Planet{core.Sun},
	},
	{
		CanonicalName:  "Papa Vosi Yoga",
		Tier:           core.TierMinor,
		LifeArea:       core.AreaPersonality,
		Formation:      "A natural malefic forms the Vosi position from the Sun.",
		FormingPlanets: []core.Planet{core.Sun},
	},
	{
		CanonicalName:  "Shubha Ubhayachari Yoga",
		Tier:           core.TierMinor,
		LifeArea:       core.AreaCareer,
		Formation:      "Natural benefics flank the Sun on both sides.",
		FormingPlanets: []core.Planet{core.Sun},
	},
	{
		CanonicalName:  "Papa Ubhayachari Yoga",
		Tier:           core.TierMinor,
		LifeArea:       core.AreaCareer,
		Formation:      "Natural malefics flank the Sun on both sides.",
		FormingPlanets: []core.Planet{core.Sun},
	},

	// =====================================================================
	// Raja yogas
	// =====================================================================
	{
		CanonicalName: "Raja Yoga",
		VariantNames:  []string{"Rajyoga", "Raj Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaCareer,
		Formation:     "A kendra lord and a trikona lord conjoin, aspect mutually, or exchange signs.",
	},
	{
		CanonicalName: "Dharma-Karmadhipati Yoga",
		VariantNames:  []string{"Dharma Karmadhipati Yoga", "Dharmakarmadhipati Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaCareer,
		Formation:     "The lords of the 9th and 10th houses form a mutual relationship.",
	},
	{
		CanonicalName: "Neecha Bhanga Raja Yoga",
		VariantNames:  []string{"Neechabhanga Raja Yoga", "Nichabhanga Raja Yoga", "Neech Bhang Raj Yoga", "Neecha Bhanga Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaCareer,
		Formation:     "A debilitated planet's fall is cancelled by its dispositor's strength, elevating the result to rulership.",
	},
	{
		CanonicalName: "Maha Raja Yoga",
		VariantNames:  []string{"Maharaja Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaCareer,
		Formation:     "Multiple strong raja combinations converge on the lagna or its lord.",
	},
	{
		CanonicalName: "Harsha Yoga",
		VariantNames:  []string{"Harsh Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaHealth,
		Formation:     "The 6th lord occupies the 6th, 8th or 12th house (viparita placement).",
	},
	{
		CanonicalName: "Sarala Yoga",
		VariantNames:  []string{"Saral Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaLongevity,
		Formation:     "The 8th lord occupies the 6th, 8th or 12th house (viparita placement).",
	},
	{
		CanonicalName: "Vimala Yoga",
		VariantNames:  []string{"Vimal Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaSpirituality,
		Formation:     "The 12th lord occupies the 6th, 8th or 12th house (viparita placement).",
	},
	{
		CanonicalName: "Viparita Raja Yoga",
		VariantNames:  []string{"Vipreet Raj Yoga", "Vipareeta Raja Yoga", "Viparit Raj Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaCareer,
		Formation:     "Lords of dusthana houses placed in dusthanas, turning adversity into rulership; umbrella of Harsha, Sarala and Vimala.",
	},
	{
		CanonicalName: "Kahala Yoga",
		VariantNames:  []string{"Kahal Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaCareer,
		Formation:     "The 4th and 9th lords in mutual kendras with a strong lagna lord.",
	},
	{
		CanonicalName: "Parvata Yoga",
		VariantNames:  []string{"Parvat Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaFame,
		Formation:     "Benefics in kendras with the 7th and 8th houses vacant or benefic-held.",
	},
	{
		CanonicalName: "Chamara Yoga",
		VariantNames:  []string{"Chamar Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaFame,
		Formation:     "An exalted lagna lord in a kendra aspected by Jupiter.",
	},
	{
		CanonicalName: "Shankha Yoga",
		VariantNames:  []string{"Shankh Yoga", "Sankha Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaWealth,
		Formation:     "The 5th and 6th lords in mutual kendras with a strong lagna lord.",
	},
	{
		CanonicalName: "Bheri Yoga",
		Tier:          core.TierStandard,
		LifeArea:      core.AreaFamily,
		Formation:     "Planets in the lagna, 2nd, 7th and 12th with a strong 9th lord.",
	},
	{
		CanonicalName: "Mridanga Yoga",
		VariantNames:  []string{"Mridang Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaFame,
		Formation:     "Planets in own or exaltation signs in kendras and trikonas with a strong lagna lord.",
	},
	{
		CanonicalName: "Sreenatha Yoga",
		VariantNames:  []string{"Srinatha Yoga", "Shrinath Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaWealth,
		Formation:     "The exalted 7th lord in the 10th house with the 10th lord.",
	},
	{
		CanonicalName: "Sharada Yoga",
		VariantNames:  []string{"Sharda Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaLearning,
		Formation:     "The 10th lord in the 5th, Mercury in a kendra, Sun strong in Leo.",
	},
	{
		CanonicalName: "Matsya Yoga",
		Tier:          core.TierStandard,
		LifeArea:      core.AreaSpirituality,
		Formation:     "Malefics in the lagna and 9th, mixed planets in the 5th; an astrologer's combination.",
	},
	{
		CanonicalName: "Kurma Yoga",
		VariantNames:  []string{"Koorma Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaPersonality,
		Formation:     "Benefics in the 5th, 6th and 7th in good navamsas; steadiness under adversity.",
	},
	{
		CanonicalName: "Khadga Yoga",
		Tier:          core.TierStandard,
		LifeArea:      core.AreaLearning,
		Formation:     "The 2nd lord in the 9th and the 9th lord in the 2nd, with a strong lagna lord.",
	},
	{
		CanonicalName:  "Lakshmi Yoga",
		VariantNames:   []string{"Laxmi Yoga", "Maha Lakshmi Yoga"},
		Tier:           core.TierMajorPositive,
		LifeArea:       core.AreaWealth,
		Formation:      "The 9th lord in a kendra in own or exaltation sign with a strong Venus.",
		FormingPlanets: []core.Planet{core.Venus},
	},
	{
		CanonicalName: "Kusuma Yoga",
		VariantNames:  []string{"Kusum Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaFame,
		Formation:     "Jupiter in the lagna, Moon in the 7th, Sun in the 8th from a fixed lagna.",
	},
	{
		CanonicalName:  "Kalanidhi Yoga",
		VariantNames:   []string{"Kala Nidhi Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaLearning,
		Formation:      "Jupiter in the 2nd or 5th joined or aspected by Mercury and Venus.",
		FormingPlanets: []core.Planet{core.Jupiter, core.Mercury, core.Venus},
	},
	{
		CanonicalName: "Parijata Yoga",
		VariantNames:  []string{"Kalpadruma Yoga", "Parijat Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaFame,
		Formation:     "The lagna lord's dispositor chain lands in exaltation or own sign in a kendra or trikona.",
	},
	{
		CanonicalName: "Amsavatara Yoga",
		VariantNames:  []string{"Amshavatar Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaSpirituality,
		Formation:     "Venus, Jupiter and an exalted Saturn in kendras from a movable lagna.",
	},
	{
		CanonicalName: "Hari-Hara-Brahma Yoga",
		VariantNames:  []string{"Hari Hara Brahma Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaSpirituality,
		Formation:     "Benefics in the 8th, 12th and lagna, or in the 4th, 9th and 8th from the 2nd lord.",
	},
	{
		CanonicalName:  "Trilochana Yoga",
		Tier:           core.TierStandard,
		LifeArea:       core.AreaWealth,
		Formation:      "Sun, Moon and Mars in mutual trikonas.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon, core.Mars},
	},
	{
		CanonicalName: "Gauri Yoga",
		Tier:          core.TierStandard,
		LifeArea:      core.AreaFamily,
		Formation:     "The Moon's dispositor exalted in a kendra joined by the 10th lord.",
	},
	{
		CanonicalName: "Bharathi Yoga",
		VariantNames:  []string{"Bharati Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaLearning,
		Formation:     "The 2nd, 5th or 11th lord's navamsa dispositor exalted and joined with the 9th lord.",
	},
	{
		CanonicalName: "Chandika Yoga",
		Tier:          core.TierStandard,
		LifeArea:      core.AreaCareer,
		Formation:     "The 6th lord and the lagna lord's navamsa dispositors joined by an aspected Sun.",
	},
	{
		CanonicalName: "Devendra Yoga",
		Tier:          core.TierStandard,
		LifeArea:      core.AreaFame,
		Formation:     "Exchange between the lagna and 11th lords and between the 2nd and 10th lords, from a fixed lagna.",
	},
	{
		CanonicalName: "Makuta Yoga",
		VariantNames:  []string{"Mukuta Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaCareer,
		Formation:     "Jupiter in the 9th from the 9th lord, a benefic in the 9th from Jupiter, Saturn in the 10th.",
	},
	{
		CanonicalName:  "Indra Yoga",
		Tier:           core.TierStandard,
		LifeArea:       core.AreaFame,
		Formation:      "Exchange between the 5th and 11th lords with the Moon in the 5th.",
		FormingPlanets: []core.Planet{core.Moon},
	},
	{
		CanonicalName:  "Ravi Yoga",
		Tier:           core.TierStandard,
		LifeArea:       core.AreaFame,
		Formation:      "Sun in the 10th with the 10th lord in the 3rd joined by Saturn.",
		FormingPlanets: []core.Planet{core.Sun},
	},
	{
		CanonicalName:  "Go Yoga",
		Tier:           core.TierStandard,
		LifeArea:       core.AreaFamily,
		Formation:      "A strong Jupiter in its moolatrikona with the 2nd lord, lagna lord exalted.",
		FormingPlanets: []core.Planet{core.Jupiter},
	},
	{
		CanonicalName: "Gandharva Yoga",
		Tier:          core.TierStandard,
		LifeArea:      core.AreaPersonality,
		Formation:     "The 10th lord in a kama trikona, lagna lord and Jupiter together, Sun strong, Moon in the 9th.",
	},
	{
		CanonicalName:  "Vidyut Yoga",
		Tier:           core.TierStandard,
		LifeArea:       core.AreaWealth,
		Formation:      "The 11th lord in deep exaltation joined with Venus in a kendra from the lagna lord.",
		FormingPlanets: []core.Planet{core.Venus},
	},
	{
		CanonicalName:  "Pushkala Yoga",
		VariantNames:   []string{"Pushkal Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaFame,
		Formation:      "The Moon's dispositor in a kendra with the lagna lord, aspecting the lagna.",
		FormingPlanets: []core.Planet{core.Moon},
	},
	{
		CanonicalName: "Jaya Yoga",
		Tier:          core.TierStandard,
		LifeArea:      core.AreaCareer,
		Formation:     "The 10th lord in deep exaltation with the 6th lord debilitated.",
	},
	{
		CanonicalName: "Vijaya Yoga",
		Tier:          core.TierStandard,
		LifeArea:      core.AreaCareer,
		Formation:     "Victory-giving placements of the lagna and 6th lords; success over rivals.",
	},
	{
		CanonicalName: "Simhasana Yoga",
		VariantNames:  []string{"Simhasan Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaCareer,
		Formation:     "Lagna lord in the 2nd, 3rd, 6th, 8th or 12th navamsa-linked raja placement; a throne combination.",
	},
	{
		CanonicalName: "Srikantha Yoga",
		VariantNames:  []string{"Shrikanth Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaSpirituality,
		Formation:     "Sun, Moon and lagna lords in kendras in own, friendly or exaltation signs.",
	},
	{
		CanonicalName:  "Akhanda Samrajya Yoga",
		VariantNames:   []string{"Akhand Samrajya Yoga"},
		Tier:           core.TierMajorPositive,
		LifeArea:       core.AreaCareer,
		Formation:      "A strong 11th lord with Jupiter ruling the 2nd, 5th or 11th in a kendra from the Moon.",
		FormingPlanets: []core.Planet{core.Jupiter},
	},
	{
		CanonicalName: "Chatussagara Yoga",
		VariantNames:  []string{"Chatussagar Yoga", "Chatur Sagara Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaFame,
		Formation:     "All four kendras occupied by planets.",
	},
	{
		CanonicalName: "Rajalakshana Yoga",
		Tier:          core.TierMinor,
		LifeArea:      core.AreaPersonality,
		Formation:     "Benefics Jupiter, Venus, Mercury and the Moon in the lagna or kendras; regal bearing.",
	},
	{
		CanonicalName: "Kulavardhana Yoga",
		Tier:          core.TierMinor,
		LifeArea:      core.AreaFamily,
		Formation:     "All planets strong in the 5th from the lagna, Sun or Moon; prosperity of the lineage.",
	},

	// =====================================================================
	// Dhana yogas
	//
	// The typed entries name the house-lord pairing that forms them, the
	// convention their detector reports them under.
	// =====================================================================
	{
		CanonicalName: "Dhana Yoga",
		VariantNames:  []string{"Dhan Yoga", "Dhana Prapti Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaWealth,
		Formation:     "Wealth-house lords (2nd and 11th) in mutual relationship with trikona lords.",
	},
	{
		CanonicalName: "Dhana Yoga (Lagna-Dhana Type)",
		VariantNames:  []string{"Lagna Dhan Yoga", "Dhan Lagna Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaWealth,
		Formation:     "The lagna lord and the 2nd lord conjoin or exchange.",
	},
	{
		CanonicalName: "Dhana Yoga (Dhana-Labha Type)",
		VariantNames:  []string{"Dhan Labh Yoga", "Labh Dhan Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaWealth,
		Formation:     "The 2nd lord and the 11th lord conjoin or exchange.",
	},
	{
		CanonicalName: "Dhana Yoga (Dhana-Putra Type)",
		VariantNames:  []string{"Dhan Putra Yoga", "Putra Dhan Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaWealth,
		Formation:     "The 2nd lord and the 5th lord conjoin or exchange.",
	},
	{
		CanonicalName: "Dhana Yoga (Dhana-Bhagya Type)",
		VariantNames:  []string{"Dhan Bhagya Yoga", "Bhagya Dhan Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaWealth,
		Formation:     "The 2nd lord and the 9th lord conjoin or exchange.",
	},
	{
		CanonicalName: "Dhana Yoga (Ripu-Dhan Type)",
		VariantNames:  []string{"Ripu Dhan Yoga", "Dhan Ripu Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaWealth,
		Formation:     "The 6th lord's wealth linkage: 6th and 2nd lords in productive combination.",
	},
	{
		CanonicalName: "Dhana Yoga (Putra-Bhagya Type)",
		VariantNames:  []string{"Putra Bhagya Yoga", "Bhagya Putra Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaWealth,
		Formation:     "The 5th lord and the 9th lord conjoin or exchange.",
	},
	{
		CanonicalName: "Dhana Yoga (Putra-Labha Type)",
		VariantNames:  []string{"Putra Labh Yoga", "Labh Putra Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaWealth,
		Formation:     "The 5th lord and the 11th lord conjoin or exchange.",
	},
	{
		CanonicalName: "Dhana Yoga (Bhagya-Labha Type)",
		VariantNames:  []string{"Bhagya Labh Yoga", "Labh Bhagya Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaWealth,
		Formation:     "The 9th lord and the 11th lord conjoin or exchange.",
	},
	{
		CanonicalName: "Dhana Yoga (Lagna-Labha Type)",
		VariantNames:  []string{"Lagna Labh Yoga", "Labh Lagna Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaWealth,
		Formation:     "The lagna lord and the 11th lord conjoin or exchange.",
	},
	{
		CanonicalName: "Dhana Yoga (Karma-Labha Type)",
		VariantNames:  []string{"Karma Labh Yoga", "Labh Karma Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaWealth,
		Formation:     "The 10th lord and the 11th lord conjoin or exchange.",
	},
	{
		CanonicalName:  "Vasumati Yoga",
		VariantNames:   []string{"Vasuman Yoga", "Vasumathi Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaWealth,
		Formation:      "Benefics in upachaya houses from the lagna or the Moon.",
		FormingPlanets: []core.Planet{core.Mercury, core.Jupiter, core.Venus},
	},
	{
		CanonicalName:  "Maha Bhagya Yoga",
		VariantNames:   []string{"Mahabhagya Yoga"},
		Tier:           core.TierMajorPositive,
		LifeArea:       core.AreaWealth,
		Formation:      "Day birth with Sun, Moon and lagna in odd signs (night birth: even signs).",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Kubera Yoga",
		VariantNames:   []string{"Kuber Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaWealth,
		Formation:      "Strong wealth-lord cluster in kendras supported by Jupiter's aspect.",
		FormingPlanets: []core.Planet{core.Jupiter},
	},
	{
		CanonicalName: "Bahu Dravya Arjana Yoga",
		VariantNames:  []string{"Bahudravyarjana Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaWealth,
		Formation:     "The 5th lord in the 2nd with the lagna lord's support; self-earned abundance.",
	},

	// =====================================================================
	// Parivartana (exchange) yogas
	// =====================================================================
	{
		CanonicalName: "Maha Parivartana Yoga",
		VariantNames:  []string{"Maha Parivartan Yoga"},
		Tier:          core.TierMajorPositive,
		LifeArea:      core.AreaCareer,
		Formation:     "Exchange between lords of auspicious houses (kendras, trikonas, 2nd or 11th).",
	},
	{
		CanonicalName: "Khala Parivartana Yoga",
		VariantNames:  []string{"Khala Parivartan Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaCareer,
		Formation:     "Exchange involving the 3rd lord; mixed results that improve with effort.",
	},
	{
		CanonicalName: "Dainya Parivartana Yoga",
		VariantNames:  []string{"Dainya Parivartan Yoga"},
		Tier:          core.TierMajorChallenge,
		LifeArea:      core.AreaCareer,
		Formation:     "Exchange involving a dusthana lord (6th, 8th or 12th); obstruction before recovery.",
	},

	// =====================================================================
	// Nabhasa yogas - Ashraya group
	// =====================================================================
	{
		CanonicalName: "Rajju Yoga",
		Tier:          core.TierMinor,
		LifeArea:      core.AreaPersonality,
		Formation:     "All planets in movable signs.",
	},
	{
		CanonicalName: "Musala Yoga",
		VariantNames:  []string{"Musal Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaPersonality,
		Formation:     "All planets in fixed signs.",
	},
	{
		CanonicalName: "Nala Yoga",
		Tier:          core.TierMinor,
		LifeArea:      core.AreaPersonality,
		Formation:     "All planets in dual signs.",
	},

	// =====================================================================
	// Nabhasa yogas - Dala group
	// =====================================================================
	{
		CanonicalName: "Mala Yoga",
		VariantNames:  []string{"Maala Yoga", "Srak Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaWealth,
		Formation:     "Benefics occupy three kendras with no malefic in a kendra.",
	},
	{
		CanonicalName: "Sarpa Yoga",
		VariantNames:  []string{"Sarp Yoga"},
		Tier:          core.TierMajorChallenge,
		LifeArea:      core.AreaHealth,
		Formation:     "Malefics occupy three kendras with no benefic in a kendra.",
	},

	// =====================================================================
	// Nabhasa yogas - Akriti group
	// =====================================================================
	{
		CanonicalName: "Gada Yoga",
		Tier:          core.TierMinor,
		LifeArea:      core.AreaWealth,
		Formation:     "All planets in two adjacent kendras.",
	},
	{
		CanonicalName: "Shakata Yoga (Nabhasa)",
		Tier:          core.TierMinor,
		LifeArea:      core.AreaCareer,
		Formation:     "All planets in the lagna and the 7th house.",
	},
	{
		CanonicalName: "Vihaga Yoga",
		VariantNames:  []string{"Pakshi Yoga", "Vihanga Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaCareer,
		Formation:     "All planets in the 4th and 10th houses.",
	},
	{
		CanonicalName: "Shringataka Yoga",
		VariantNames:  []string{"Shringatak Yoga", "Sringataka Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaRelationships,
		Formation:     "All planets in the lagna trikonas (1st, 5th and 9th).",
	},
	{
		CanonicalName: "Hala Yoga",
		VariantNames:  []string{"Hal Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaCareer,
		Formation:     "All planets in mutual trikonas outside the lagna trikonas.",
	},
	{
		CanonicalName: "Vajra Yoga (Nabhasa)",
		Tier:          core.TierMinor,
		LifeArea:      core.AreaPersonality,
		Formation:     "Benefics in the lagna and 7th, malefics in the 4th and 10th.",
	},
	{
		CanonicalName: "Yava Yoga",
		Tier:          core.TierMinor,
		LifeArea:      core.AreaPersonality,
		Formation:     "Malefics in the lagna and 7th, benefics in the 4th and 10th.",
	},
	{
		CanonicalName: "Kamala Yoga",
		VariantNames:  []string{"Padma Yoga", "Kamal Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaFame,
		Formation:     "All planets spread across the four kendras.",
	},
	{
		CanonicalName: "Vapi Yoga",
		VariantNames:  []string{"Vaapi Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaWealth,
		Formation:     "All planets outside the kendras, in panapharas or apoklimas.",
	},
	{
		CanonicalName: "Yupa Yoga",
		Tier:          core.TierMinor,
		LifeArea:      core.AreaSpirituality,
		Formation:     "All planets in the first four houses from the lagna.",
	},
	{
		CanonicalName: "Shara Yoga",
		VariantNames:  []string{"Ishu Yoga", "Sara Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaCareer,
		Formation:     "All planets in the 4th through 7th houses.",
	},
	{
		CanonicalName: "Shakti Yoga",
		Tier:          core.TierMinor,
		LifeArea:      core.AreaPersonality,
		Formation:     "All planets in the 7th through 10th houses.",
	},
	{
		CanonicalName: "Danda Yoga",
		VariantNames:  []string{"Dand Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaCareer,
		Formation:     "All planets in the 10th through lagna houses.",
	},
	{
		CanonicalName: "Nauka Yoga",
		VariantNames:  []string{"Nau Yoga", "Nouka Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaWealth,
		Formation:     "All planets in the seven houses from the lagna.",
	},
	{
		CanonicalName: "Koota Yoga",
		VariantNames:  []string{"Kuta Yoga", "Koot Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaPersonality,
		Formation:     "All planets in the seven houses from the 4th.",
	},
	{
		CanonicalName: "Chhatra Yoga",
		VariantNames:  []string{"Chatra Yoga", "Chhatr Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaFame,
		Formation:     "All planets in the seven houses from the 7th.",
	},
	{
		CanonicalName: "Chapa Yoga",
		VariantNames:  []string{"Dhanushya Yoga", "Chaap Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaCareer,
		Formation:     "All planets in the seven houses from the 10th.",
	},
	{
		CanonicalName: "Ardha Chandra Yoga",
		VariantNames:  []string{"Ardhachandra Yoga", "Ardh Chandra Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaPersonality,
		Formation:     "All planets in seven continuous houses starting from a non-angular house.",
	},
	{
		CanonicalName: "Chakra Yoga",
		Tier:          core.TierStandard,
		LifeArea:      core.AreaFame,
		Formation:     "All planets in alternate odd houses from the lagna.",
	},
	{
		CanonicalName: "Samudra Yoga",
		VariantNames:  []string{"Samudr Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaWealth,
		Formation:     "All planets in alternate even houses from the 2nd.",
	},

	// =====================================================================
	// Nabhasa yogas - Sankhya group
	// =====================================================================
	{
		CanonicalName: "Vallaki Yoga",
		VariantNames:  []string{"Veena Yoga", "Vina Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaPersonality,
		Formation:     "All planets spread over exactly seven signs.",
	},
	{
		CanonicalName: "Damini Yoga",
		VariantNames:  []string{"Dama Yoga", "Daam Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaPersonality,
		Formation:     "All planets spread over exactly six signs.",
	},
	{
		CanonicalName: "Pasha Yoga",
		VariantNames:  []string{"Paasha Yoga", "Pash Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaFamily,
		Formation:     "All planets spread over exactly five signs.",
	},
	{
		CanonicalName: "Kedara Yoga",
		VariantNames:  []string{"Kedar Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaWealth,
		Formation:     "All planets spread over exactly four signs.",
	},
	{
		CanonicalName: "Shoola Yoga (Nabhasa)",
		VariantNames:  []string{"Shula Yoga", "Sula Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaHealth,
		Formation:     "All planets spread over exactly three signs.",
	},
	{
		CanonicalName: "Yuga Yoga",
		VariantNames:  []string{"Yug Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaSpirituality,
		Formation:     "All planets spread over exactly two signs.",
	},
	{
		CanonicalName: "Gola Yoga",
		VariantNames:  []string{"Gol Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaPersonality,
		Formation:     "All planets gathered in a single sign.",
	},

	// =====================================================================
	// Kala Sarpa yogas
	// =====================================================================
	{
		CanonicalName:  "Kaal Sarp Yoga",
		VariantNames:   []string{"Kala Sarpa Yoga", "Kalsarpa Yoga", "Kaal Sarp Dosh", "Kala Sarpa Dosha"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaPersonality,
		Formation:      "All seven classical planets hemmed within the Rahu-Ketu axis.",
		FormingPlanets: []core.Planet{core.Rahu, core.Ketu},
	},
	{
		CanonicalName:  "Anant Kaal Sarp Yoga",
		VariantNames:   []string{"Ananta Kala Sarpa Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaPersonality,
		Formation:      "Kaal Sarp axis with Rahu in the lagna and Ketu in the 7th.",
		FormingPlanets: []core.Planet{core.Rahu, core.Ketu},
	},
	{
		CanonicalName:  "Kulik Kaal Sarp Yoga",
		VariantNames:   []string{"Kulika Kala Sarpa Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaWealth,
		Formation:      "Kaal Sarp axis with Rahu in the 2nd and Ketu in the 8th.",
		FormingPlanets: []core.Planet{core.Rahu, core.Ketu},
	},
	{
		CanonicalName:  "Vasuki Kaal Sarp Yoga",
		VariantNames:   []string{"Vasuki Kala Sarpa Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaFamily,
		Formation:      "Kaal Sarp axis with Rahu in the 3rd and Ketu in the 9th.",
		FormingPlanets: []core.Planet{core.Rahu, core.Ketu},
	},
	{
		CanonicalName:  "Shankhpal Kaal Sarp Yoga",
		VariantNames:   []string{"Shankhapala Kala Sarpa Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaCareer,
		Formation:      "Kaal Sarp axis with Rahu in the 4th and Ketu in the 10th.",
		FormingPlanets: []core.Planet{core.Rahu, core.Ketu},
	},
	{
		CanonicalName:  "Padma Kaal Sarp Yoga",
		VariantNames:   []string{"Padma Kala Sarpa Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaLearning,
		Formation:      "Kaal Sarp axis with Rahu in the 5th and Ketu in the 11th.",
		FormingPlanets: []core.Planet{core.Rahu, core.Ketu},
	},
	{
		CanonicalName:  "Mahapadma Kaal Sarp Yoga",
		VariantNames:   []string{"Maha Padma Kala Sarpa Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaHealth,
		Formation:      "Kaal Sarp axis with Rahu in the 6th and Ketu in the 12th.",
		FormingPlanets: []core.Planet{core.Rahu, core.Ketu},
	},
	{
		CanonicalName:  "Takshak Kaal Sarp Yoga",
		VariantNames:   []string{"Takshaka Kala Sarpa Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaRelationships,
		Formation:      "Kaal Sarp axis with Rahu in the 7th and Ketu in the lagna.",
		FormingPlanets: []core.Planet{core.Rahu, core.Ketu},
	},
	{
		CanonicalName:  "Karkotak Kaal Sarp Yoga",
		VariantNames:   []string{"Karkotaka Kala Sarpa Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaLongevity,
		Formation:      "Kaal Sarp axis with Rahu in the 8th and Ketu in the 2nd.",
		FormingPlanets: []core.Planet{core.Rahu, core.Ketu},
	},
	{
		CanonicalName:  "Shankhachood Kaal Sarp Yoga",
		VariantNames:   []string{"Shankhachuda Kala Sarpa Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaSpirituality,
		Formation:      "Kaal Sarp axis with Rahu in the 9th and Ketu in the 3rd.",
		FormingPlanets: []core.Planet{core.Rahu, core.Ketu},
	},
	{
		CanonicalName:  "Ghatak Kaal Sarp Yoga",
		VariantNames:   []string{"Ghataka Kala Sarpa Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaCareer,
		Formation:      "Kaal Sarp axis with Rahu in the 10th and Ketu in the 4th.",
		FormingPlanets: []core.Planet{core.Rahu, core.Ketu},
	},
	{
		CanonicalName:  "Vishdhar Kaal Sarp Yoga",
		VariantNames:   []string{"Vishadhara Kala Sarpa Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaWealth,
		Formation:      "Kaal Sarp axis with Rahu in the 11th and Ketu in the 5th.",
		FormingPlanets: []core.Planet{core.Rahu, core.Ketu},
	},
	{
		CanonicalName:  "Sheshnag Kaal Sarp Yoga",
		VariantNames:   []string{"Sheshanaga Kala Sarpa Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaSpirituality,
		Formation:      "Kaal Sarp axis with Rahu in the 12th and Ketu in the 6th.",
		FormingPlanets: []core.Planet{core.Rahu, core.Ketu},
	},

	// =====================================================================
	// Challenge yogas and doshas
	// =====================================================================
	{
		CanonicalName: "Daridra Yoga",
		VariantNames:  []string{"Daridrya Yoga", "Daridra Dosha"},
		Tier:          core.TierMajorChallenge,
		LifeArea:      core.AreaWealth,
		Formation:     "Lords of the 11th or 2nd placed in dusthanas with malefic influence.",
	},
	{
		CanonicalName:  "Shakata Yoga",
		VariantNames:   []string{"Shakat Yoga", "Sakata Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaWealth,
		Formation:      "Moon in the 6th, 8th or 12th from Jupiter.",
		FormingPlanets: []core.Planet{core.Moon, core.Jupiter},
	},
	{
		CanonicalName:  "Guru Chandal Yoga",
		VariantNames:   []string{"Guru Chandala Yoga", "Guru Chandal Dosh", "Chandal Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaSpirituality,
		Formation:      "Jupiter conjunct Rahu in a house.",
		FormingPlanets: []core.Planet{core.Jupiter, core.Rahu},
	},
	{
		CanonicalName:  "Angarak Yoga",
		VariantNames:   []string{"Angaraka Yoga", "Angarak Dosha"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaPersonality,
		Formation:      "Mars conjunct Rahu in a house.",
		FormingPlanets: []core.Planet{core.Mars, core.Rahu},
	},
	{
		CanonicalName:  "Surya Grahan Yoga",
		VariantNames:   []string{"Surya Grahana Yoga", "Surya Grahan Dosh"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaFame,
		Formation:      "Sun conjunct Rahu or Ketu, forming an eclipse axis.",
		FormingPlanets: []core.Planet{core.Sun, core.Rahu, core.Ketu},
	},
	{
		CanonicalName:  "Chandra Grahan Yoga",
		VariantNames:   []string{"Chandra Grahana Yoga", "Chandra Grahan Dosh"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaPersonality,
		Formation:      "Moon conjunct Rahu or Ketu, forming an eclipse axis.",
		FormingPlanets: []core.Planet{core.Moon, core.Rahu, core.Ketu},
	},
	{
		CanonicalName:  "Pitra Dosha",
		VariantNames:   []string{"Pitru Dosha", "Pitri Dosha", "Pitra Dosh"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaFamily,
		Formation:      "Sun afflicted by Rahu or Saturn in the 9th house.",
		FormingPlanets: []core.Planet{core.Sun, core.Rahu},
	},
	{
		CanonicalName:  "Mangal Dosha",
		VariantNames:   []string{"Manglik Dosha", "Kuja Dosha", "Mangal Dosh"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaRelationships,
		Formation:      "Mars in the 1st, 2nd, 4th, 7th, 8th or 12th house.",
		FormingPlanets: []core.Planet{core.Mars},
	},
	{
		CanonicalName:  "Vish Yoga",
		VariantNames:   []string{"Visha Yoga", "Vish Dosha"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaHealth,
		Formation:      "Saturn conjunct or aspecting the Moon.",
		FormingPlanets: []core.Planet{core.Saturn, core.Moon},
	},
	{
		CanonicalName:  "Shrapit Yoga",
		VariantNames:   []string{"Shrapit Dosha", "Shapit Yoga"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaFamily,
		Formation:      "Saturn conjunct Rahu in a house.",
		FormingPlanets: []core.Planet{core.Saturn, core.Rahu},
	},
	{
		CanonicalName: "Balarishta Yoga",
		VariantNames:  []string{"Balarishtha Yoga", "Bala Arishta Yoga"},
		Tier:          core.TierMajorChallenge,
		LifeArea:      core.AreaLongevity,
		Formation:     "Afflicted Moon in dusthanas during early-life sensitive placements.",
	},
	{
		CanonicalName: "Kendradhipati Dosha",
		VariantNames:  []string{"Kendradhipatya Dosha"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaCareer,
		Formation:     "Benefic lords of kendras losing beneficence by angular lordship.",
	},
	{
		CanonicalName:  "Sade Sati",
		VariantNames:   []string{"Sadhe Sati", "Sade Sati Dosha"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaPersonality,
		Formation:      "Saturn transiting the 12th, 1st and 2nd from the natal Moon.",
		FormingPlanets: []core.Planet{core.Saturn, core.Moon},
	},
	{
		CanonicalName:  "Amavasya Dosha",
		VariantNames:   []string{"Amavasya Yoga", "Amavasya Dosh"},
		Tier:           core.TierMajorChallenge,
		LifeArea:       core.AreaFamily,
		Formation:      "Birth on the new-moon tithi with Sun and Moon conjunct.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName: "Papakartari Yoga",
		VariantNames:  []string{"Papa Kartari Yoga", "Paap Kartari Yoga"},
		Tier:          core.TierMajorChallenge,
		LifeArea:      core.AreaPersonality,
		Formation:     "A house or planet hemmed between two malefics.",
	},
	{
		CanonicalName: "Shubhakartari Yoga",
		VariantNames:  []string{"Shubha Kartari Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaPersonality,
		Formation:     "A house or planet hemmed between two benefics.",
	},
	{
		CanonicalName: "Gandanta Dosha",
		VariantNames:  []string{"Gandant Dosha", "Gandanta Yoga"},
		Tier:          core.TierMajorChallenge,
		LifeArea:      core.AreaHealth,
		Formation:     "Birth with Moon or lagna at a water-fire sign junction.",
	},
	{
		CanonicalName: "Nirdhana Yoga",
		VariantNames:  []string{"Nirdhan Yoga"},
		Tier:          core.TierMajorChallenge,
		LifeArea:      core.AreaWealth,
		Formation:     "The 2nd lord in a dusthana afflicted by malefics without benefic relief.",
	},
	{
		CanonicalName: "Duryoga",
		VariantNames:  []string{"Duryog"},
		Tier:          core.TierMajorChallenge,
		LifeArea:      core.AreaCareer,
		Formation:     "The 10th lord in the 6th, 8th or 12th house.",
	},
	{
		CanonicalName: "Vish Kanya Yoga",
		VariantNames:  []string{"Vishakanya Yoga", "Visha Kanya Yoga"},
		Tier:          core.TierMajorChallenge,
		LifeArea:      core.AreaRelationships,
		Formation:     "Birth on specific weekday, tithi and nakshatra combinations of affliction.",
	},

	// =====================================================================
	// Longevity yogas
	// =====================================================================
	{
		CanonicalName: "Alpayu Yoga",
		VariantNames:  []string{"Alpaayu Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaLongevity,
		Formation:     "Longevity lords disposed for a short-life span grouping.",
	},
	{
		CanonicalName: "Madhyayu Yoga",
		VariantNames:  []string{"Madhya Ayu Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaLongevity,
		Formation:     "Longevity lords disposed for a middle-life span grouping.",
	},
	{
		CanonicalName: "Purnayu Yoga",
		VariantNames:  []string{"Poornayu Yoga", "Purna Ayu Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaLongevity,
		Formation:     "Longevity lords disposed for a full-life span grouping.",
	},
	{
		CanonicalName: "Arishta Bhanga Yoga",
		VariantNames:  []string{"Arishtabhanga Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaLongevity,
		Formation:     "Strong benefic influences cancelling indicated arishta afflictions.",
	},

	// =====================================================================
	// Sanyasa and spiritual yogas
	// =====================================================================
	{
		CanonicalName: "Sanyasa Yoga",
		VariantNames:  []string{"Sannyasa Yoga", "Sanyas Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaSpirituality,
		Formation:     "Four or more planets of strength gathered in a single house.",
	},
	{
		CanonicalName: "Pravrajya Yoga",
		VariantNames:  []string{"Parivraja Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaSpirituality,
		Formation:     "The Moon's dispositor aspected only by Saturn without other influence.",
	},
	{
		CanonicalName:  "Tapaswi Yoga",
		VariantNames:   []string{"Tapasvi Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaSpirituality,
		Formation:      "Saturn, Venus and Ketu influencing each other in strength.",
		FormingPlanets: []core.Planet{core.Saturn, core.Venus, core.Ketu},
	},
	{
		CanonicalName: "Moksha Yoga",
		VariantNames:  []string{"Moksh Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaSpirituality,
		Formation:     "Benefic influence on the 12th house and its lord from moksha trikonas.",
	},
	{
		CanonicalName: "Vairagya Yoga",
		VariantNames:  []string{"Vairagi Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaSpirituality,
		Formation:     "Saturn and Ketu influence on the lagna lord and the Moon.",
	},

	// =====================================================================
	// Learning and wisdom yogas
	// =====================================================================
	{
		CanonicalName:  "Saraswati Yoga",
		VariantNames:   []string{"Sarasvati Yoga", "Saraswati Maha Yoga"},
		Tier:           core.TierMajorPositive,
		LifeArea:       core.AreaLearning,
		Formation:      "Mercury, Jupiter and Venus in kendras or trikonas with Jupiter strong.",
		FormingPlanets: []core.Planet{core.Mercury, core.Jupiter, core.Venus},
	},
	{
		CanonicalName:  "Bhaskara Yoga",
		VariantNames:   []string{"Bhaskar Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaLearning,
		Formation:      "Mercury in the 2nd from the Sun, Moon in the 11th from Mercury, Jupiter in trine from the Moon.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon, core.Mercury, core.Jupiter},
	},
	{
		CanonicalName: "Vidya Yoga",
		VariantNames:  []string{"Vidhya Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaLearning,
		Formation:     "Strong lords of the 4th and 5th in mutual kendras with benefic aspect.",
	},

	// =====================================================================
	// Combination yogas
	// =====================================================================
	{
		CanonicalName: "Graha Malika Yoga",
		VariantNames:  []string{"Grahamalika Yoga", "Mala Graha Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaFame,
		Formation:     "Planets in continuous houses forming an unbroken garland chain.",
	},
	{
		CanonicalName: "Lagnadhi Yoga",
		VariantNames:  []string{"Lagna Adhi Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaPersonality,
		Formation:     "Benefics in the 6th, 7th and 8th counted from the lagna.",
	},
	{
		CanonicalName: "Vanchana Chora Bheeti Yoga",
		VariantNames:  []string{"Vanchana Chora Bhiti Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaWealth,
		Formation:     "Afflicted combinations indicating deceit or loss through theft.",
	},
	{
		CanonicalName: "Bandhana Yoga",
		VariantNames:  []string{"Bandhan Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaPersonality,
		Formation:     "Lagna and 6th lords together with malefic association in fixed disposition.",
	},
	{
		CanonicalName: "Satkalatra Yoga",
		VariantNames:  []string{"Sat Kalatra Yoga"},
		Tier:          core.TierStandard,
		LifeArea:      core.AreaRelationships,
		Formation:     "Benefic influence on the 7th house and its lord free of affliction.",
	},
	{
		CanonicalName: "Kalatra Dosha",
		VariantNames:  []string{"Kalathra Dosha"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaRelationships,
		Formation:     "Malefic affliction to the 7th house and its lord.",
	},
	{
		CanonicalName:  "Guru Mangala Yoga",
		VariantNames:   []string{"Guru Mangal Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaCareer,
		Formation:      "Jupiter and Mars conjunct or in mutual 7th.",
		FormingPlanets: []core.Planet{core.Jupiter, core.Mars},
	},
	{
		CanonicalName:  "Lakshmi Narayana Yoga",
		VariantNames:   []string{"Laxmi Narayan Yoga"},
		Tier:           core.TierStandard,
		LifeArea:       core.AreaWealth,
		Formation:      "Mercury and Venus conjunct in a kendra or trikona.",
		FormingPlanets: []core.Planet{core.Mercury, core.Venus},
	},

	// =====================================================================
	// Muhurta yogas
	// =====================================================================
	{
		CanonicalName: "Amrita Siddhi Yoga",
		VariantNames:  []string{"Amrit Siddhi Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaSpirituality,
		Formation:     "Auspicious weekday and nakshatra pairing of the amrita class.",
	},
	{
		CanonicalName: "Sarvartha Siddhi Yoga",
		VariantNames:  []string{"Sarvarth Siddhi Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaCareer,
		Formation:     "Auspicious weekday and nakshatra pairing granting broad success.",
	},
	{
		CanonicalName: "Dwipushkar Yoga",
		VariantNames:  []string{"Dwi Pushkar Yoga", "Dvipushkara Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaWealth,
		Formation:     "Weekday, tithi and nakshatra pairing that doubles undertaken effects.",
	},
	{
		CanonicalName: "Tripushkar Yoga",
		VariantNames:  []string{"Tri Pushkar Yoga", "Tripushkara Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaWealth,
		Formation:     "Weekday, tithi and nakshatra pairing that triples undertaken effects.",
	},
	{
		CanonicalName:  "Guru Pushya Yoga",
		VariantNames:   []string{"Guru Pushya Amrit Yoga"},
		Tier:           core.TierMinor,
		LifeArea:       core.AreaWealth,
		Formation:      "Thursday coinciding with the Pushya nakshatra.",
		FormingPlanets: []core.Planet{core.Jupiter},
	},
	{
		CanonicalName:  "Ravi Pushya Yoga",
		VariantNames:   []string{"Ravi Pushya Amrit Yoga"},
		Tier:           core.TierMinor,
		LifeArea:       core.AreaHealth,
		Formation:      "Sunday coinciding with the Pushya nakshatra.",
		FormingPlanets: []core.Planet{core.Sun},
	},
	{
		CanonicalName: "Dagdha Yoga",
		VariantNames:  []string{"Dagdh Yoga"},
		Tier:          core.TierMinor,
		LifeArea:      core.AreaWealth,
		Formation:     "Inauspicious tithi and weekday pairing that burns undertaken matters.",
	},

	// =====================================================================
	// Tajika yogas
	// =====================================================================
	{
		CanonicalName: "Ikabala Yoga",
		VariantNames:  []string{"Ikkabala Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaCareer,
		Formation:     "All planets placed in kendras and panapharas of the annual chart.",
	},
	{
		CanonicalName: "Induvara Yoga",
		VariantNames:  []string{"Induvar Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaCareer,
		Formation:     "All planets placed in apoklimas of the annual chart.",
	},
	{
		CanonicalName: "Ithasala Yoga",
		VariantNames:  []string{"Itthasala Yoga", "Muthashila Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaPersonality,
		Formation:     "Applying aspect between a faster and a slower planet within orb.",
	},
	{
		CanonicalName: "Ishrafa Yoga",
		VariantNames:  []string{"Easarpha Yoga", "Musaripha Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaPersonality,
		Formation:     "Separating aspect between planets already past the exact degree.",
	},
	{
		CanonicalName: "Nakta Yoga",
		VariantNames:  []string{"Nakt Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaRelationships,
		Formation:     "A swift planet carrying light between two planets not in mutual aspect.",
	},
	{
		CanonicalName: "Yamaya Yoga",
		VariantNames:  []string{"Yamaa Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaRelationships,
		Formation:     "A slower planet joining two non-aspecting planets by aspecting both.",
	},
	{
		CanonicalName: "Manau Yoga",
		VariantNames:  []string{"Manahoo Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaPersonality,
		Formation:     "A malefic aspect obstructing an otherwise forming applying aspect.",
	},
	{
		CanonicalName: "Kamboola Yoga",
		VariantNames:  []string{"Kambula Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaPersonality,
		Formation:     "Applying aspect reinforced by the Moon joining the configuration.",
	},
	{
		CanonicalName: "Gairi Kamboola Yoga",
		VariantNames:  []string{"Gairi Kambula Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaPersonality,
		Formation:     "Moon joining an applying aspect from weak or unrelated dignities.",
	},
	{
		CanonicalName: "Khallasara Yoga",
		VariantNames:  []string{"Khallasar Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaPersonality,
		Formation:     "Moon's applying aspect failing through weakness of the configuration.",
	},
	{
		CanonicalName: "Rudda Yoga",
		VariantNames:  []string{"Radda Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaPersonality,
		Formation:     "Connecting planet weak, retrograde or combust, spoiling the matter.",
	},
	{
		CanonicalName: "Duphali Kutha Yoga",
		VariantNames:  []string{"Dupali Kutha Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaWealth,
		Formation:     "Significator in dignity aspected by a strong benefic.",
	},
	{
		CanonicalName: "Dutthotha Davira Yoga",
		VariantNames:  []string{"Duttotha Davira Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaPersonality,
		Formation:     "Weak significator aspected only by weak planets.",
	},
	{
		CanonicalName: "Tambira Yoga",
		VariantNames:  []string{"Tamvira Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaCareer,
		Formation:     "Significator completing a matter at the edge of a sign before transition.",
	},
	{
		CanonicalName: "Kuttha Yoga",
		VariantNames:  []string{"Kutta Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaPersonality,
		Formation:     "Both significators strong and mutually disposed in dignity.",
	},
	{
		CanonicalName: "Durapha Yoga",
		VariantNames:  []string{"Duhrapha Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaHealth,
		Formation:     "Significator weak, combust or badly placed, denying the matter.",
	},

	// =====================================================================
	// Nitya yogas
	// =====================================================================
	{
		CanonicalName:  "Vishkambha Yoga",
		VariantNames:   []string{"Vishkumbha Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaPersonality,
		Formation:      "First nitya division of the Sun-Moon longitude sum, counted inauspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Priti Yoga",
		VariantNames:   []string{"Preeti Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaRelationships,
		Formation:      "Second nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Ayushman Yoga",
		VariantNames:   []string{"Ayushmana Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaLongevity,
		Formation:      "Third nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Saubhagya Yoga",
		VariantNames:   []string{"Soubhagya Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaRelationships,
		Formation:      "Fourth nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Shobhana Yoga",
		VariantNames:   []string{"Shobhan Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaFame,
		Formation:      "Fifth nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Atiganda Yoga",
		VariantNames:   []string{"Atigand Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaHealth,
		Formation:      "Sixth nitya division of the Sun-Moon longitude sum, counted inauspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Sukarma Yoga",
		VariantNames:   []string{"Sukarman Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaCareer,
		Formation:      "Seventh nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Dhriti Yoga",
		VariantNames:   []string{"Dhruti Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaPersonality,
		Formation:      "Eighth nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Shoola Yoga (Nitya)",
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaHealth,
		Formation:      "Ninth nitya division of the Sun-Moon longitude sum, counted inauspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Ganda Yoga",
		VariantNames:   []string{"Gand Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaHealth,
		Formation:      "Tenth nitya division of the Sun-Moon longitude sum, counted inauspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Vriddhi Yoga",
		VariantNames:   []string{"Vruddhi Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaWealth,
		Formation:      "Eleventh nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Dhruva Yoga",
		VariantNames:   []string{"Dhruv Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaPersonality,
		Formation:      "Twelfth nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Vyaghata Yoga",
		VariantNames:   []string{"Vyaghat Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaHealth,
		Formation:      "Thirteenth nitya division of the Sun-Moon longitude sum, counted inauspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Harshana Yoga",
		VariantNames:   []string{"Harshan Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaPersonality,
		Formation:      "Fourteenth nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Vajra Yoga (Nitya)",
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaPersonality,
		Formation:      "Fifteenth nitya division of the Sun-Moon longitude sum, counted inauspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Siddhi Yoga (Nitya)",
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaCareer,
		Formation:      "Sixteenth nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Vyatipata Yoga",
		VariantNames:   []string{"Vyatipat Yoga", "Vyatipaat Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaHealth,
		Formation:      "Seventeenth nitya division of the Sun-Moon longitude sum, counted inauspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Variyana Yoga",
		VariantNames:   []string{"Variyan Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaPersonality,
		Formation:      "Eighteenth nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Parigha Yoga",
		VariantNames:   []string{"Parigh Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaCareer,
		Formation:      "Nineteenth nitya division of the Sun-Moon longitude sum, counted inauspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Shiva Yoga",
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaSpirituality,
		Formation:      "Twentieth nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Siddha Yoga",
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaSpirituality,
		Formation:      "Twenty-first nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Sadhya Yoga",
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaCareer,
		Formation:      "Twenty-second nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Shubha Yoga (Nitya)",
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaFame,
		Formation:      "Twenty-third nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Shukla Yoga",
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaLearning,
		Formation:      "Twenty-fourth nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Brahma Yoga",
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaSpirituality,
		Formation:      "Twenty-fifth nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Indra Yoga (Nitya)",
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaCareer,
		Formation:      "Twenty-sixth nitya division of the Sun-Moon longitude sum, counted auspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},
	{
		CanonicalName:  "Vaidhriti Yoga",
		VariantNames:   []string{"Vaidhruti Yoga"},
		Tier:           core.TierSubtle,
		LifeArea:       core.AreaHealth,
		Formation:      "Twenty-seventh nitya division of the Sun-Moon longitude sum, counted inauspicious.",
		FormingPlanets: []core.Planet{core.Sun, core.Moon},
	},

	// =====================================================================
	// Anandadi yogas
	// =====================================================================
	{
		CanonicalName: "Ananda Yoga",
		VariantNames:  []string{"Anand Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaPersonality,
		Formation:     "First anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Kaladanda Yoga",
		VariantNames:  []string{"Kala Danda Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaLongevity,
		Formation:     "Second anandadi pairing of weekday and nakshatra, counted inauspicious.",
	},
	{
		CanonicalName: "Dhumra Yoga",
		VariantNames:  []string{"Dhoomra Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaHealth,
		Formation:     "Third anandadi pairing of weekday and nakshatra, counted inauspicious.",
	},
	{
		CanonicalName: "Prajapati Yoga",
		VariantNames:  []string{"Dhata Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaFamily,
		Formation:     "Fourth anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Saumya Yoga",
		VariantNames:  []string{"Soumya Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaPersonality,
		Formation:     "Fifth anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Dhwanksha Yoga",
		VariantNames:  []string{"Dhwanksh Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaWealth,
		Formation:     "Sixth anandadi pairing of weekday and nakshatra, counted inauspicious.",
	},
	{
		CanonicalName: "Dhwaja Yoga",
		VariantNames:  []string{"Dhvaja Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaFame,
		Formation:     "Seventh anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Srivatsa Yoga",
		VariantNames:  []string{"Shrivatsa Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaWealth,
		Formation:     "Eighth anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Vajra Yoga (Anandadi)",
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaHealth,
		Formation:     "Ninth anandadi pairing of weekday and nakshatra, counted inauspicious.",
	},
	{
		CanonicalName: "Mudgara Yoga",
		VariantNames:  []string{"Mudgar Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaWealth,
		Formation:     "Tenth anandadi pairing of weekday and nakshatra, counted inauspicious.",
	},
	{
		CanonicalName: "Chhatra Yoga (Anandadi)",
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaFame,
		Formation:     "Eleventh anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Maitra Yoga",
		VariantNames:  []string{"Mitra Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaRelationships,
		Formation:     "Twelfth anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Manasa Yoga",
		VariantNames:  []string{"Manas Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaLearning,
		Formation:     "Thirteenth anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Padma Yoga (Anandadi)",
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaWealth,
		Formation:     "Fourteenth anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Lumbaka Yoga",
		VariantNames:  []string{"Lumbak Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaWealth,
		Formation:     "Fifteenth anandadi pairing of weekday and nakshatra, counted inauspicious.",
	},
	{
		CanonicalName: "Utpata Yoga",
		VariantNames:  []string{"Utpaat Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaHealth,
		Formation:     "Sixteenth anandadi pairing of weekday and nakshatra, counted inauspicious.",
	},
	{
		CanonicalName: "Kana Yoga",
		VariantNames:  []string{"Kaan Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaHealth,
		Formation:     "Seventeenth anandadi pairing of weekday and nakshatra, counted inauspicious.",
	},
	{
		CanonicalName: "Siddhi Yoga (Anandadi)",
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaCareer,
		Formation:     "Eighteenth anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Shubha Yoga (Anandadi)",
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaFame,
		Formation:     "Nineteenth anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Amrita Yoga",
		VariantNames:  []string{"Amrit Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaLongevity,
		Formation:     "Twentieth anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Musala Yoga (Anandadi)",
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaWealth,
		Formation:     "Twenty-first anandadi pairing of weekday and nakshatra, counted inauspicious.",
	},
	{
		CanonicalName: "Gada Yoga (Anandadi)",
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaFamily,
		Formation:     "Twenty-second anandadi pairing of weekday and nakshatra, counted inauspicious.",
	},
	{
		CanonicalName: "Matanga Yoga",
		VariantNames:  []string{"Matang Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaFamily,
		Formation:     "Twenty-third anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Raksha Yoga",
		VariantNames:  []string{"Raksh Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaHealth,
		Formation:     "Twenty-fourth anandadi pairing of weekday and nakshatra, counted inauspicious.",
	},
	{
		CanonicalName: "Chara Yoga",
		VariantNames:  []string{"Char Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaCareer,
		Formation:     "Twenty-fifth anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Sthira Yoga",
		VariantNames:  []string{"Sthir Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaFamily,
		Formation:     "Twenty-sixth anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
	{
		CanonicalName: "Pravardha Yoga",
		VariantNames:  []string{"Pravardhamana Yoga", "Vardhamana Yoga"},
		Tier:          core.TierSubtle,
		LifeArea:      core.AreaCareer,
		Formation:     "Twenty-seventh anandadi pairing of weekday and nakshatra, counted auspicious.",
	},
}
