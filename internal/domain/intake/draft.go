// Package intake implements the conversational slot-filling engine that
// collects checkpoint orders across multi-turn natural-language input.
package intake

// NotApplicable is the sentinel recorded when the user declines to supply a
// field ("não tem"). It satisfies the field and is preserved verbatim in the
// finalized order.
const NotApplicable = "N/A"

// FieldNames lists the fixed field set collected by the intake engine, in
// presentation order.
var FieldNames = []string{"site", "du", "projeto", "motivo"}

// Draft is the partially filled order record being built across turns.
// An empty string means the field is not yet satisfied.
type Draft struct {
	Site    string
	DU      string
	Projeto string
	Motivo  string
}

// Merge folds newly extracted fields into the draft. Later values win per
// field; an empty incoming value never unsets a satisfied field.
func (d Draft) Merge(extracted Draft) Draft {
	if extracted.Site != "" {
		d.Site = extracted.Site
	}
	if extracted.DU != "" {
		d.DU = extracted.DU
	}
	if extracted.Projeto != "" {
		d.Projeto = extracted.Projeto
	}
	if extracted.Motivo != "" {
		d.Motivo = extracted.Motivo
	}
	return d
}

// IsComplete reports whether all four fields are satisfied. The NotApplicable
// sentinel counts as satisfied.
func (d Draft) IsComplete() bool {
	return d.Site != "" && d.DU != "" && d.Projeto != "" && d.Motivo != ""
}

// IsEmpty reports whether no field has been collected yet.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// Field returns the current value for a field name, empty when unsatisfied.
func (d Draft) Field(name string) string {
	switch name {
	case "site":
		return d.Site
	case "du":
		return d.DU
	case "projeto":
		return d.Projeto
	case "motivo":
		return d.Motivo
	}
	return ""
}

// FromMap builds a Draft from a loosely keyed field map, ignoring unknown keys.
func FromMap(fields map[string]string) Draft {
	var d Draft
	for key, value := range fields {
		switch key {
		case "site":
			d.Site = value
		case "du":
			d.DU = value
		case "projeto":
			d.Projeto = value
		case "motivo":
			d.Motivo = value
		}
	}
	return d
}
