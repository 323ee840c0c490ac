package refdata

import "github.com/shaunpsauer/Actuals/internal/model"

// CostElement is one entry of the cost-element reference workbook. Entries
// may be absent for any given code; everything downstream degrades to the
// static tables or prefix rules instead of failing.
type CostElement struct {
	// Text is the descriptive cost-element text, used to derive resource
	// code abbreviations.
	Text string `yaml:"text"`

	// Grouping and Level1Group classify the element (Labor, Contract,
	// OverHeads, Materials); either may carry the tag.
	Grouping    string `yaml:"grouping"`
	Level1Group string `yaml:"level1Group"`

	// JobCostCode is the job-cost system code for the element. Carried for
	// reference; the Resource File output leaves job cost columns blank.
	JobCostCode int `yaml:"jobCostCode"`
}

// CostElements is the cost-element code -> CostElement dictionary.
type CostElements map[int]CostElement

// Reference bundles the lookup tables a run needs. Build it once at startup
// and hand it to the pipeline; nothing mutates it afterwards.
type Reference struct {
	Operations   Operations
	CostElements CostElements
}

// Default returns the built-in reference data: the full operations
// dictionary and an empty cost-elements map. The cost-element reference
// workbook is site-specific, so its entries only arrive via LoadCostElements.
func Default() *Reference {
	return &Reference{
		Operations:   DefaultOperations(),
		CostElements: CostElements{},
	}
}

// Abbreviation returns the static resource-code abbreviation for a
// cost-element code, if one is defined.
func Abbreviation(code int) (string, bool) {
	abbrev, ok := abbreviations[code]
	return abbrev, ok
}

// StaticCostType returns the statically mapped cost type for a cost-element
// code, if one is defined.
func StaticCostType(code int) (model.CostType, bool) {
	ct, ok := staticCostTypes[code]
	return ct, ok
}

// abbreviations maps cost-element codes to the short resource-code
// abbreviation used when the reference workbook has no descriptive text for
// the element.
var abbreviations = map[int]string{
	// AFUDC
	5590030: "AFUDC-Bo",
	5590031: "AFUDC-Eq",

	// Contracts / overhead
	5091100: "Meals Ex",
	5091140: "Reimburs",
	5490000: "Contract",
	5490003: "Engr/Dsg",
	5490015: "Environm",

	// Labor cost elements (660xxxx)
	6603001: "CONSTR", // Construction
	6603004: "ACQLIT", // Acquisition - Misc
	6603005: "ANLYST", // Analyst Services
	6603006: "DRFT",   // Design Drafting Svcs
	6603023: "ENGSVC", // Engineering Services
	6603024: "ENVSVC", // Environmental Svcs
	6603027: "ENVPLN", // Environ Pln & Permit
	6603048: "PLANSV", // Planning Services
	6603058: "TECHSV", // Technical Services
	6603059: "LNDENG", // Land Survey & Engine
	6603082: "MO-OT",  // Maint & Oper OT Svcs
	6603083: "MO",     // Maintain & Oper Svc
	6603150: "ADM-OT", // Admin Svcs-OT
	6603195: "CORRSN", // Corrosion Service
	6603227: "LNDRTS", // Land Rights - Misc
	6603823: "BIOCUL", // Manage L&EM
	6608158: "XCON02", // Contrctr - Consult
	6608160: "XCON04", // Contrctr - Engineer
}

// staticCostTypes maps cost-element codes whose classification is fixed
// regardless of the reference workbook.
var staticCostTypes = map[int]model.CostType{
	5590030: model.CostTypeAFUDC,
	5590031: model.CostTypeAFUDC,
	5091100: model.CostTypeContracts,
	5091140: model.CostTypeContracts,
	5490000: model.CostTypeContracts,
	5490003: model.CostTypeContracts,
	5490015: model.CostTypeContracts,
}
