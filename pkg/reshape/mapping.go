package reshape

import "fmt"

// Mapping selects the variable-mapping ruleset applied during submission
// generation. It is a closed set; the zero value is AR6.
type Mapping int

const (
	AR6 Mapping = iota
	NGFSAR6
	AR6MAgPIE
	ClimateAssessment
)

var mappingNames = [...]string{
	AR6:               "AR6",
	NGFSAR6:           "NGFS_AR6",
	AR6MAgPIE:         "AR6_MAgPIE",
	ClimateAssessment: "climateassessment",
}

// Mappings lists the canonical names of all supported mappings.
func Mappings() []string {
	return append([]string(nil), mappingNames[:]...)
}

func (m Mapping) valid() bool {
	return m >= AR6 && int(m) < len(mappingNames)
}

// String returns the canonical mapping name, or a Mapping(n) placeholder for
// out-of-range values.
func (m Mapping) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mapping(%d)", int(m))
	}
	return mappingNames[m]
}

// ParseMapping converts a canonical name to its Mapping. Unknown names fail
// with an *InvalidArgumentError naming the received value.
func ParseMapping(s string) (Mapping, error) {
	for m, name := range mappingNames {
		if s == name {
			return Mapping(m), nil
		}
	}
	return 0, &InvalidArgumentError{Name: "mapping", Value: s}
}
