package refdata

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadOperations reads an operations dictionary override from a YAML file
// keyed by operation code:
//
//	1010:
//	  activity: 0101-1010A
//	  l2: "01"
//	  l3: "01"
func LoadOperations(path string) (Operations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read operations file %s", path)
	}
	var ops Operations
	if err := yaml.Unmarshal(data, &ops); err != nil {
		return nil, errors.Wrapf(err, "unable to parse operations file %s", path)
	}
	return ops, nil
}

// LoadCostElements reads cost-element reference entries from a YAML file
// keyed by cost-element code:
//
//	5490000:
//	  text: Contract Services
//	  grouping: Contract
//	  level1Group: Contract
//	  jobCostCode: 5490000
func LoadCostElements(path string) (CostElements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read cost elements file %s", path)
	}
	var elements CostElements
	if err := yaml.Unmarshal(data, &elements); err != nil {
		return nil, errors.Wrapf(err, "unable to parse cost elements file %s", path)
	}
	return elements, nil
}
