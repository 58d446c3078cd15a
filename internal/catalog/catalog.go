package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Medicines maps each category to its common medicines. Informational
// only, not a prescription.
var Medicines = map[string][]string{
	"Fever & Pain": {"Paracetamol", "Aspirin", "Ibuprofen", "Diclofenac"},
	"Cold & Cough": {
		"Cough lozenges", "Dextromethorphan", "Ambroxol", "Bromhexine",
		"Acetylcysteine", "Guaifenesin", "Ammonium Chloride",
	},
	"Allergy":                 {"Levocetirizine", "Pheniramine"},
	"Acidity / Indigestion":   {"Antacids (Magnesium/Aluminium Hydroxide)"},
	"Diarrhoea & Dehydration": {"Oral Rehydration Salts (ORS)", "Zinc syrup", "Probiotics"},
	"Constipation":            {"Bisacodyl", "Lactulose", "Isabgol (Psyllium husk)"},
	"Supplements":             {"Iron & Folic Acid", "Vitamin D", "Calcium"},
	"Emergency / Anaphylaxis (clinical use)": {"Adrenaline (Injection)", "Hydrocortisone (Injection)"},
	"Anticonvulsants (clinical use)": {
		"Diazepam", "Midazolam (Nasal Spray)", "Phenobarbitone", "Phenytoin",
		"Magnesium Sulfate (Injection)",
	},
	"Antidotes (clinical use)": {"Atropine (Injection)", "Activated Charcoal"},
}

// Brands holds common brand examples where we have them.
var Brands = map[string]string{
	"Paracetamol": "e.g., Crocin, Calpol",
	"Aspirin":     "e.g., Disprin",
	"Antacids (Magnesium/Aluminium Hydroxide)": "e.g., Digene, Gelusil",
	"ORS": "e.g., Electral",
}

// Hospital is one entry of the 2025 top-hospitals list.
type Hospital struct {
	Name string
	City string
}

// Hospitals2025 lists the top hospitals in India, Newsweek 2025 rankings.
var Hospitals2025 = []Hospital{
	{"All India Institute of Medical Sciences (AIIMS)", "New Delhi"},
	{"Medanta – The Medicity", "Gurugram"},
	{"Postgraduate Institute of Medical Education & Research (PGIMER)", "Chandigarh"},
	{"Christian Medical College (CMC)", "Vellore"},
	{"Apollo Hospitals", "Chennai"},
	{"Dr. L. H. Hiranandani Hospital", "Mumbai"},
	{"AIIMS", "Raipur"},
	{"Apollo Specialty Hospitals, Vanagaram", "Chennai"},
	{"Yashoda Hospitals, Somajiguda", "Hyderabad"},
	{"Gleneagles BGS Hospital, Kengeri", "Bengaluru"},
}

// Categories returns the catalog's categories in sorted order.
func Categories() []string {
	cats := make([]string, 0, len(Medicines))
	for c := range Medicines {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// AllMedicines returns every catalog medicine, sorted and de-duplicated.
func AllMedicines() []string {
	seen := make(map[string]struct{})
	var meds []string
	for _, list := range Medicines {
		for _, m := range list {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			meds = append(meds, m)
		}
	}
	sort.Strings(meds)
	return meds
}

// QueryHint builds the retrieval query for a catalog medicine: the name
// plus its brand examples, so leaflets naming only a brand still match.
func QueryHint(medicine string) string {
	hint := strings.TrimSpace(fmt.Sprintf("%s %s", medicine, Brands[medicine]))
	return hint
}
