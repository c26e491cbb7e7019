package calculator

import (
	"encoding/json"
	"math"
)

// Metric is a float that marshals NaN and infinities as JSON null
type Metric float64

func (m Metric) MarshalJSON() ([]byte, error) {
	value := float64(m)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return []byte("null"), nil
	}

	return json.Marshal(value)
}
