package calculator

import (
	"encoding/json"
	"math"
)

// Wire names reported in OperationResponse.Operation.
const (
	OpAddition       = "addition"
	OpSubtraction    = "subtraction"
	OpMultiplication = "multiplication"
	OpDivision       = "division"
)

// operandsQuery binds the raw a and b query parameters of every calculator route.
type operandsQuery struct {
	A string `query:"a" validate:"required"`
	B string `query:"b" validate:"required"`
}

// OperationResponse is the JSON body of a successful calculator call.
type OperationResponse struct {
	Operation string  `json:"operation"`
	Operand1  float64 `json:"operand1"`
	Operand2  float64 `json:"operand2"`
	Result    float64 `json:"result"`
}

// MarshalJSON writes non-finite numbers as the strings "NaN", "Infinity" and
// "-Infinity"; finite numbers encode as usual.
func (r OperationResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Operation string    `json:"operation"`
		Operand1  jsonFloat `json:"operand1"`
		Operand2  jsonFloat `json:"operand2"`
		Result    jsonFloat `json:"result"`
	}{
		Operation: r.Operation,
		Operand1:  jsonFloat(r.Operand1),
		Operand2:  jsonFloat(r.Operand2),
		Result:    jsonFloat(r.Result),
	})
}

type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	}
	return json.Marshal(v)
}
