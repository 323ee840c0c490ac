// Package refdata holds the static lookup tables the transformation depends
// on: the WBS operations dictionary and the cost-element reference entries.
// Tables are loaded once at startup and treated as read-only for the run's
// lifetime; they are passed explicitly into the classifier and synthesizer
// rather than consulted through package-level state.
package refdata

import "fmt"

// Operation maps an operation code to its estimating activity code and the
// two WBS hierarchy levels encoded within it.
type Operation struct {
	Activity string `yaml:"activity"`
	Level2   string `yaml:"l2"`
	Level3   string `yaml:"l3"`
}

// Operations is the operation code -> Operation dictionary.
type Operations map[int]Operation

// Activity returns the activity code for an operation, and whether the
// operation is known to the dictionary.
func (o Operations) Activity(operation int) (string, bool) {
	op, ok := o[operation]
	if !ok {
		return "", false
	}
	return op.Activity, true
}

// PlaceholderActivity synthesizes an activity code for an operation missing
// from the dictionary so the pipeline never fails outright on novel
// operations. The operation number stays visible for human review.
func PlaceholderActivity(operation int) string {
	return fmt.Sprintf("XXXX-%dA", operation)
}

// DefaultOperations returns the built-in gas-transmission WBS operations
// dictionary.
func DefaultOperations() Operations {
	ops := make(Operations, len(defaultOperations))
	for code, op := range defaultOperations {
		ops[code] = op
	}
	return ops
}

var defaultOperations = Operations{
	1010: {Activity: "0101-1010A", Level2: "01", Level3: "01"},
	1020: {Activity: "0101-1020A", Level2: "01", Level3: "01"},
	1030: {Activity: "0101-1030A", Level2: "01", Level3: "01"},
	1040: {Activity: "0101-1040A", Level2: "01", Level3: "01"},
	1100: {Activity: "0102-1100A", Level2: "01", Level3: "02"},
	1110: {Activity: "0102-1110A", Level2: "01", Level3: "02"},
	1120: {Activity: "0102-1120A", Level2: "01", Level3: "02"},
	1130: {Activity: "0102-1130A", Level2: "01", Level3: "02"},
	1140: {Activity: "0102-1140A", Level2: "01", Level3: "02"},
	1190: {Activity: "0102-1190A", Level2: "01", Level3: "02"},
	2010: {Activity: "0201-2010A", Level2: "02", Level3: "01"},
	2110: {Activity: "0202-2110A", Level2: "02", Level3: "02"},
	2210: {Activity: "0203-2210A", Level2: "02", Level3: "03"},
	3010: {Activity: "0301-3010A", Level2: "03", Level3: "01"},
	3020: {Activity: "0301-3020A", Level2: "03", Level3: "01"},
	3030: {Activity: "0301-3030A", Level2: "03", Level3: "01"},
	3100: {Activity: "0302-3100A", Level2: "03", Level3: "02"},
	3110: {Activity: "0302-3110A", Level2: "03", Level3: "02"},
	3150: {Activity: "0302-3150A", Level2: "03", Level3: "02"},
	3210: {Activity: "0303-3210A", Level2: "03", Level3: "03"},
	4010: {Activity: "0401-4010A", Level2: "04", Level3: "01"},
	4030: {Activity: "0401-4030A", Level2: "04", Level3: "01"},
	4040: {Activity: "0401-4040A", Level2: "04", Level3: "01"},
	4050: {Activity: "0401-4050A", Level2: "04", Level3: "01"},
	4060: {Activity: "0401-4060A", Level2: "04", Level3: "01"},
	4070: {Activity: "0401-4070A", Level2: "04", Level3: "01"},
	4110: {Activity: "0402-4110A", Level2: "04", Level3: "02"},
	4200: {Activity: "0403-4200A", Level2: "04", Level3: "03"},
	4210: {Activity: "0403-4210A", Level2: "04", Level3: "03"},
	4220: {Activity: "0403-4220A", Level2: "04", Level3: "03"},
	5010: {Activity: "0501-5010A", Level2: "05", Level3: "01"},
	5020: {Activity: "0501-5020A", Level2: "05", Level3: "01"},
	5030: {Activity: "0502-5030A", Level2: "05", Level3: "02"},
	5040: {Activity: "0503-5040A", Level2: "05", Level3: "03"},
	5050: {Activity: "0503-5050A", Level2: "05", Level3: "03"},
	5060: {Activity: "0503-5060A", Level2: "05", Level3: "03"},
	5070: {Activity: "0503-5070A", Level2: "05", Level3: "03"},
	5080: {Activity: "0503-5080A", Level2: "05", Level3: "03"},
	5085: {Activity: "0503-5085A", Level2: "05", Level3: "03"},
	5090: {Activity: "0503-5090A", Level2: "05", Level3: "03"},
	6000: {Activity: "0504-6000A", Level2: "05", Level3: "04"},
	6050: {Activity: "0504-6050A", Level2: "05", Level3: "04"},
	6100: {Activity: "0504-6100A", Level2: "05", Level3: "04"},
	6200: {Activity: "0504-6200A", Level2: "05", Level3: "04"},
	6300: {Activity: "0504-6300A", Level2: "05", Level3: "04"},
	6400: {Activity: "0504-6400A", Level2: "05", Level3: "04"},
	6500: {Activity: "0504-6500A", Level2: "05", Level3: "04"},
	6600: {Activity: "0504-6600A", Level2: "05", Level3: "04"},
	6700: {Activity: "0504-6700A", Level2: "05", Level3: "04"},
	6800: {Activity: "0504-6800A", Level2: "05", Level3: "04"},
	6900: {Activity: "0504-6900A", Level2: "05", Level3: "04"},
	7000: {Activity: "0504-7000A", Level2: "05", Level3: "04"},
	7100: {Activity: "0504-7100A", Level2: "05", Level3: "04"},
	7200: {Activity: "0504-7200A", Level2: "05", Level3: "04"},
	7300: {Activity: "0504-7300A", Level2: "05", Level3: "04"},
	7400: {Activity: "0504-7400A", Level2: "05", Level3: "04"},
	7500: {Activity: "0504-7500A", Level2: "05", Level3: "04"},
	7600: {Activity: "0504-7600A", Level2: "05", Level3: "04"},
	7700: {Activity: "0504-7700A", Level2: "05", Level3: "04"},
	7800: {Activity: "0505-7800A", Level2: "05", Level3: "05"},
	7900: {Activity: "0505-7900A", Level2: "05", Level3: "05"},
	8000: {Activity: "0505-8000A", Level2: "05", Level3: "05"},
	8100: {Activity: "0505-8100A", Level2: "05", Level3: "05"},
	8200: {Activity: "0506-8200A", Level2: "05", Level3: "06"},
	8300: {Activity: "0506-8300A", Level2: "05", Level3: "06"},
	8400: {Activity: "0507-8400A", Level2: "05", Level3: "07"},
	8500: {Activity: "0507-8500A", Level2: "05", Level3: "07"},
	8600: {Activity: "0507-8600A", Level2: "05", Level3: "07"},
	8700: {Activity: "0508-8700A", Level2: "05", Level3: "08"},
	8800: {Activity: "0508-8800A", Level2: "05", Level3: "08"},
	9010: {Activity: "0601-9010A", Level2: "06", Level3: "01"},
	9110: {Activity: "0602-9110A", Level2: "06", Level3: "02"},
	9120: {Activity: "0602-9120A", Level2: "06", Level3: "02"},
	9130: {Activity: "0602-9130A", Level2: "06", Level3: "02"},
}
