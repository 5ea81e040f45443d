package feature

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Op is the binary operator combining two source columns.
type Op string

const (
	OpMul Op = "mul"
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpDiv Op = "div"
)

func (o Op) Valid() bool {
	switch o {
	case OpMul, OpAdd, OpSub, OpDiv:
		return true
	}
	return false
}

// Apply evaluates the operator on a single element pair. NaN inputs
// propagate so undefined rows in either source stay undefined.
func (o Op) Apply(a, b float64) float64 {
	switch o {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpDiv:
		return a / b
	default:
		return a * b
	}
}

// Interaction describes a derived column combining two existing columns.
type Interaction struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	Op    Op     `json:"op"`
}

func NewInteraction(left, right string, op Op) *Interaction {
	return &Interaction{left, right, op}
}

func (in Interaction) String() string {
	return fmt.Sprintf("inter_%s_%s_%s", in.Op, in.Left, in.Right)
}

func (in Interaction) Get(label string) (string, bool) {
	switch strings.ToLower(label) {
	case "left":
		return in.Left, true
	case "right":
		return in.Right, true
	case "op":
		return string(in.Op), true
	}
	return "", false
}

func (in Interaction) Type() FeatureType {
	return FeatureTypeInteraction
}

func (in Interaction) Decode() map[string]string {
	res := make(map[string]string)
	res["left"] = in.Left
	res["right"] = in.Right
	res["op"] = string(in.Op)
	return res
}

func (in *Interaction) UnmarshalJSON(data []byte) error {
	var labelStr struct {
		Left  string `json:"left"`
		Right string `json:"right"`
		Op    Op     `json:"op"`
	}
	if err := json.Unmarshal(data, &labelStr); err != nil {
		return err
	}
	in.Left = labelStr.Left
	in.Right = labelStr.Right
	in.Op = labelStr.Op
	return nil
}
