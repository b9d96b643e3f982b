// Package catalog exposes the breakdown dimensions a request may ventilate
// by, together with the code tables backing them.
package catalog

// Kind classifies how a dimension's value domain is produced.
type Kind int

const (
	// KindCodes draws values from a fixed code table.
	KindCodes Kind = iota
	// KindBuckets derives values from the requested age cuts.
	KindBuckets
	// KindFlag is a binary dimension.
	KindFlag
)

// Descriptor describes one breakdown dimension.
type Descriptor struct {
	Key    string
	Label  string
	Kind   Kind
	domain []any
}

// Domain returns a copy of the dimension's value set. KindBuckets dimensions
// have no static domain; callers expand them from the age cuts.
func (d Descriptor) Domain() []any {
	out := make([]any, len(d.domain))
	copy(out, d.domain)
	return out
}

func strDomain(codes []string) []any {
	out := make([]any, len(codes))
	for i, c := range codes {
		out[i] = c
	}
	return out
}

func intDomain(from, to int) []any {
	out := make([]any, 0, to-from+1)
	for v := from; v <= to; v++ {
		out = append(out, v)
	}
	return out
}

// Dimension keys in catalog order. The order is part of the public surface:
// clients list dimensions and expect a stable enumeration.
var keys = []string{
	"sexe", "typhosp", "passageurg", "trancheage", "mois", "duree",
	"ghm", "racine", "cmd", "dp", "dr", "da", "ga", "gp", "aso", "cas",
	"finess", "finessgeo", "categ", "secteur",
	"regetab", "depetab", "tsetab", "zonetab",
	"regpat", "deppat", "tspat", "codegeo", "zonpat",
	"modentprov", "modsordest",
	"modeeentree", "modesortie", "provenance", "destination",
}

var byKey = map[string]Descriptor{
	"sexe":        {Key: "sexe", Label: "Sexe", Kind: KindCodes, domain: strDomain(SexeCodes)},
	"typhosp":     {Key: "typhosp", Label: "Type d'hospitalisation", Kind: KindCodes, domain: strDomain(TyphospCodes)},
	"passageurg":  {Key: "passageurg", Label: "Passage aux urgences", Kind: KindFlag, domain: strDomain(PassageUrgCodes)},
	"trancheage":  {Key: "trancheage", Label: "Tranche d'age", Kind: KindBuckets},
	"mois":        {Key: "mois", Label: "Mois de sortie", Kind: KindCodes, domain: intDomain(1, 12)},
	"duree":       {Key: "duree", Label: "Duree de sejour", Kind: KindCodes, domain: intDomain(0, 15)},
	"ghm":         {Key: "ghm", Label: "GHM", Kind: KindCodes, domain: strDomain(GHMCodes)},
	"racine":      {Key: "racine", Label: "Racine de GHM", Kind: KindCodes, domain: strDomain(RacineCodes)},
	"cmd":         {Key: "cmd", Label: "Categorie majeure de diagnostic", Kind: KindCodes, domain: strDomain(CMDCodes)},
	"dp":          {Key: "dp", Label: "Diagnostic principal", Kind: KindCodes, domain: strDomain(CIM10Codes)},
	"dr":          {Key: "dr", Label: "Diagnostic relie", Kind: KindCodes, domain: strDomain(CIM10Codes)},
	"da":          {Key: "da", Label: "Domaine d'activite", Kind: KindCodes, domain: strDomain(DACodes)},
	"ga":          {Key: "ga", Label: "Groupe d'activite", Kind: KindCodes, domain: strDomain(GACodes)},
	"gp":          {Key: "gp", Label: "Groupe de planification", Kind: KindCodes, domain: strDomain(GPCodes)},
	"aso":         {Key: "aso", Label: "Activite de soins", Kind: KindCodes, domain: strDomain(ASOCodes)},
	"cas":         {Key: "cas", Label: "Categorie d'activite de soins", Kind: KindCodes, domain: strDomain(CASCodes)},
	"finess":      {Key: "finess", Label: "Etablissement", Kind: KindCodes, domain: strDomain(FinessCodes)},
	"finessgeo":   {Key: "finessgeo", Label: "Etablissement geographique", Kind: KindCodes, domain: strDomain(FinessCodes)},
	"categ":       {Key: "categ", Label: "Categorie d'etablissement", Kind: KindCodes, domain: strDomain(CategCodes)},
	"secteur":     {Key: "secteur", Label: "Secteur", Kind: KindCodes, domain: strDomain(SecteurCodes)},
	"regetab":     {Key: "regetab", Label: "Region de l'etablissement", Kind: KindCodes, domain: strDomain(RegionCodes)},
	"depetab":     {Key: "depetab", Label: "Departement de l'etablissement", Kind: KindCodes, domain: strDomain(DepartementCodes)},
	"tsetab":      {Key: "tsetab", Label: "Territoire de sante de l'etablissement", Kind: KindCodes, domain: strDomain(TerritoireCodes)},
	"zonetab":     {Key: "zonetab", Label: "Zone ARS de l'etablissement", Kind: KindCodes, domain: strDomain(ZoneARSCodes)},
	"regpat":      {Key: "regpat", Label: "Region du patient", Kind: KindCodes, domain: strDomain(RegionCodes)},
	"deppat":      {Key: "deppat", Label: "Departement du patient", Kind: KindCodes, domain: strDomain(DepartementCodes)},
	"tspat":       {Key: "tspat", Label: "Territoire de sante du patient", Kind: KindCodes, domain: strDomain(TerritoireCodes)},
	"codegeo":     {Key: "codegeo", Label: "Code geographique du patient", Kind: KindCodes, domain: strDomain(CodeGeoCodes)},
	"zonpat":      {Key: "zonpat", Label: "Zone ARS du patient", Kind: KindCodes, domain: strDomain(ZoneARSCodes)},
	"modentprov":  {Key: "modentprov", Label: "Mode d'entree et provenance", Kind: KindCodes, domain: strDomain(ModEntProvCodes)},
	"modsordest":  {Key: "modsordest", Label: "Mode de sortie et destination", Kind: KindCodes, domain: strDomain(ModSorDestCodes)},
	"modeeentree": {Key: "modeeentree", Label: "Mode d'entree", Kind: KindCodes, domain: strDomain(ModeEntreeCodes)},
	"modesortie":  {Key: "modesortie", Label: "Mode de sortie", Kind: KindCodes, domain: strDomain(ModeSortieCodes)},
	"provenance":  {Key: "provenance", Label: "Provenance", Kind: KindCodes, domain: strDomain(ProvenanceCodes)},
	"destination": {Key: "destination", Label: "Destination", Kind: KindCodes, domain: strDomain(DestinationCodes)},
}

// The upstream nomenclature spells the entry-mode dimension with a doubled
// vowel. The conventional spelling is accepted as an alias.
var aliases = map[string]string{
	"modeentree": "modeeentree",
}

// Lookup resolves a dimension key, following aliases. The returned descriptor
// keeps the caller's spelling in Key so output columns echo the request.
func Lookup(key string) (Descriptor, bool) {
	canon := key
	if a, ok := aliases[key]; ok {
		canon = a
	}
	d, ok := byKey[canon]
	if !ok {
		return Descriptor{}, false
	}
	d.Key = key
	return d, true
}

// Keys returns the dimension keys in catalog order.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}
