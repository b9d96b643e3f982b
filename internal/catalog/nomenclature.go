package catalog

// Code tables mirrored from the production nomenclatures. Slices fix the
// enumeration order; label maps carry the display strings where one exists.

var GHMCodes = []string{"05M09T", "05K06T", "01M10T", "06C04Z", "08M04T", "14Z08Z", "11M05T", "23Z02Z"}

var RacineCodes = []string{"05M09", "05K06", "01M10", "06C04", "08M04", "14Z08", "11M05"}

var CMDCodes = []string{"01", "05", "06", "08", "11", "14", "23"}

var CIM10Codes = []string{"C34", "I50", "J44", "K80", "S72", "I10", "E11", "N18", "J96", "E78", "F10", "K57"}

var CCAMCodes = []string{"DZQM006", "YYYY600", "EQQP004", "HFMA009", "ZCQM002", "ABLB001", "BFGA004"}

var FinessCodes = []string{
	"130783293", "750100018", "690023154", "330781196", "310781406",
	"440000289", "060780491",
}

var FinessLabels = map[string]string{
	"130783293": "AP-HM HOPITAL DE LA TIMONE",
	"750100018": "AP-HP HOPITAL HOTEL-DIEU",
	"690023154": "HCL HOPITAL EDOUARD HERRIOT",
	"330781196": "CHU DE BORDEAUX",
	"310781406": "CHU DE TOULOUSE",
	"440000289": "CLINIQUE JULES VERNE",
	"060780491": "CLINIQUE SAINT-GEORGE",
}

// The first five establishments are public hospitals; the rest are private
// clinics. Sector and category for an establishment derive from this split.
var publicFiness = map[string]bool{
	"130783293": true,
	"750100018": true,
	"690023154": true,
	"330781196": true,
	"310781406": true,
}

// FinessSector returns "PU" for public establishments and "PR" otherwise.
func FinessSector(finess string) string {
	if publicFiness[finess] {
		return "PU"
	}
	return "PR"
}

// FinessCateg returns "CH" for public establishments and "CL" otherwise.
func FinessCateg(finess string) string {
	if publicFiness[finess] {
		return "CH"
	}
	return "CL"
}

var CategCodes = []string{"CH", "CHU", "CL"}

var SecteurCodes = []string{"PU", "PR", "ESPIC"}

var DepartementCodes = []string{"75", "13", "69", "33", "59", "31", "67", "06", "34", "44"}

var RegionCodes = []string{"11", "93", "84", "75", "32", "76", "52", "44"}

var CodeGeoCodes = []string{"75001", "13001", "69001", "33001", "59001", "31001"}

var ZoneARSCodes = []string{"ZON01", "ZON02", "ZON03", "ZON04"}

var TerritoireCodes = []string{"TS01", "TS02", "TS03", "TS04", "TS05"}

var TypeUMCodes = []string{"01", "02", "03", "04", "13", "18"}

var UCDCodes = []string{"9360937", "9261337", "9340017", "9240487", "9286507"}

var UCDLabels = map[string]string{
	"9360937": "BEVACIZUMAB 100MG/4ML",
	"9261337": "RITUXIMAB 500MG/50ML",
	"9340017": "TRASTUZUMAB 150MG",
	"9240487": "CETUXIMAB 5MG/ML SOLUTION INJECTABLE",
	"9286507": "NIVOLUMAB 10MG/ML SOLUTION INJECTABLE",
}

// ATC holds the five anatomical classification levels of a medication.
type ATC struct {
	L1, L2, L3, L4, L5 string
}

var UCDATC = map[string]ATC{
	"9360937": {"L", "L01", "L01F", "L01FG", "L01FG01"},
	"9261337": {"L", "L01", "L01F", "L01FA", "L01FA01"},
	"9340017": {"L", "L01", "L01F", "L01FD", "L01FD01"},
	"9240487": {"L", "L01", "L01F", "L01FE", "L01FE01"},
	"9286507": {"L", "L01", "L01F", "L01FF", "L01FF01"},
}

var LPPCodes = []string{"3415677", "3157742", "3401024", "3401036"}

var LPPLabels = map[string]string{
	"3415677": "PROTHESE TOTALE DE HANCHE",
	"3157742": "STIMULATEUR CARDIAQUE DOUBLE CHAMBRE",
	"3401024": "PROTHESE TOTALE DE GENOU",
	"3401036": "BIOPROTHESE VALVULAIRE AORTIQUE",
}

var HieraCodes = []string{"04", "06", "07", "08"}

var HieraLabels = map[string]string{
	"04": "IMPLANTS ARTICULAIRES",
	"06": "IMPLANTS CARDIO-VASCULAIRES",
	"07": "NEUROCHIRURGIE ET NEUROLOGIE",
	"08": "OPHTALMOLOGIE",
}

// LPPHiera maps an implant to its hierarchy chapter.
func LPPHiera(lpp string) string {
	for i, c := range LPPCodes {
		if c == lpp {
			return HieraCodes[i%len(HieraCodes)]
		}
	}
	return HieraCodes[0]
}

var ModeEntreeCodes = []string{"6", "7", "8"}

var ModeSortieCodes = []string{"6", "7", "8", "9"}

var ProvenanceCodes = []string{"1", "2", "3", "4", "5", "6"}

var DestinationCodes = []string{"1", "2", "3", "4", "5", "6"}

var TyphospCodes = []string{"M", "C", "O"}

var SexeCodes = []string{"1", "2"}

var PassageUrgCodes = []string{"0", "1"}

var DACodes = []string{"01", "02", "03", "04", "05"}

var GACodes = []string{"GA01", "GA02", "GA03", "GA04"}

var GPCodes = []string{"GP01", "GP02", "GP03"}

var ASOCodes = []string{"ASO1", "ASO2", "ASO3"}

var CASCodes = []string{"CAS1", "CAS2", "CAS3"}

// Entry/exit compounds as they appear on discharge summaries: mode and
// provenance (or destination) joined by an underscore.
var ModEntProvCodes = []string{"8_1", "8_5", "6_1", "7_1"}

var ModSorDestCodes = []string{"8_4", "6_1", "7_3", "9_9"}
