// Package round implements the rules of a Number Quest round: number
// generation, answer checking, lives and the round state machine.
//
// The package knows nothing about rendering, physics or input devices. A host
// delivers contact events to a Machine and receives presentation Commands
// through a Sink.
package round

import "strings"

// Operator is the comparison rule a round asks the player to satisfy.
type Operator int

const (
	LessThan Operator = iota
	GreaterThan
	Equal
)

// Operators lists the operator cycle in play order.
var Operators = []Operator{LessThan, GreaterThan, Equal}

// DefaultOperator is used when no launch operator is given or it is unknown.
const DefaultOperator = LessThan

// ID returns the launch identifier of the operator ("less", "greater", "equal").
func (o Operator) ID() string {
	switch o {
	case LessThan:
		return "less"
	case GreaterThan:
		return "greater"
	case Equal:
		return "equal"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (o Operator) String() string {
	return o.ID()
}

// Symbol returns the mathematical symbol of the operator.
func (o Operator) Symbol() string {
	switch o {
	case LessThan:
		return "<"
	case GreaterThan:
		return ">"
	case Equal:
		return "="
	default:
		return "?"
	}
}

// Label returns the overlay label, e.g. "LESS THAN <".
func (o Operator) Label() string {
	switch o {
	case LessThan:
		return "LESS THAN <"
	case GreaterThan:
		return "GREATER THAN >"
	case Equal:
		return "EQUAL ="
	default:
		return "UNKNOWN"
	}
}

// Index returns the operator's position in the play cycle.
func (o Operator) Index() int {
	for i, op := range Operators {
		if op == o {
			return i
		}
	}
	return 0
}

// OperatorAt returns the operator at a cursor position, wrapping in both directions.
func OperatorAt(index int) Operator {
	n := len(Operators)
	return Operators[((index%n)+n)%n]
}

// operatorAliases maps launch identifiers to operators, including the Spanish
// names used by older launch links.
var operatorAliases = map[string]Operator{
	"less":    LessThan,
	"lt":      LessThan,
	"<":       LessThan,
	"menor":   LessThan,
	"greater": GreaterThan,
	"gt":      GreaterThan,
	">":       GreaterThan,
	"mayor":   GreaterThan,
	"equal":   Equal,
	"eq":      Equal,
	"=":       Equal,
	"igual":   Equal,
}

// ParseOperator resolves a launch identifier. Unknown or empty input yields
// DefaultOperator and ok == false; callers treat that as a silent fallback.
func ParseOperator(s string) (op Operator, ok bool) {
	op, ok = operatorAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return DefaultOperator, false
	}
	return op, true
}

// Aliases returns every launch identifier that resolves to op, other than its ID.
func Aliases(op Operator) []string {
	var out []string
	for alias, o := range operatorAliases {
		if o == op && alias != op.ID() {
			out = append(out, alias)
		}
	}
	return out
}
