package dataprep

import "fmt"

// Fixed integer codes for the two categorical predictors. The codes follow
// factor-level order so runs are comparable regardless of row order in the
// source file.
var (
	sexCodes      = map[string]float64{"female": 0, "male": 1}
	embarkedCodes = map[string]float64{"C": 0, "Q": 1, "S": 2}
)

// EncodeSex maps a sex label to its integer code.
func EncodeSex(sex string) (float64, error) {
	code, ok := sexCodes[sex]
	if !ok {
		return 0, fmt.Errorf("unknown sex label %q", sex)
	}
	return code, nil
}

// EncodeEmbarked maps an embarkation port to its integer code.
func EncodeEmbarked(port string) (float64, error) {
	code, ok := embarkedCodes[port]
	if !ok {
		return 0, fmt.Errorf("unknown embarkation port %q", port)
	}
	return code, nil
}
