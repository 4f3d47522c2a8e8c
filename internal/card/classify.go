package card

import "strings"

// FieldKind is how a field value is drawn on a card.
type FieldKind string

const (
	KindText  FieldKind = "text"
	KindBadge FieldKind = "badge"
)

// FieldTypes maps field names to a rendering kind. Names that are missing,
// and kinds other than "badge", render as text.
type FieldTypes map[string]string

// KindOf resolves the rendering kind of a field.
func (ft FieldTypes) KindOf(name string) FieldKind {
	if strings.EqualFold(strings.TrimSpace(ft[name]), string(KindBadge)) {
		return KindBadge
	}
	return KindText
}

// ClassifyOptions selects the title and image fields and the field kinds.
type ClassifyOptions struct {
	TitleField string
	ImageField string
	FieldTypes FieldTypes
}

// CardField is one classified (name, value, kind) triple.
type CardField struct {
	Name  string
	Value string
	Kind  FieldKind
}

// Badges splits a badge value on commas into the pills drawn for it.
// Text fields have no badges.
func (f CardField) Badges() []string {
	if f.Kind != KindBadge {
		return nil
	}
	var out []string
	for _, part := range strings.Split(f.Value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CardSpec is everything needed to draw one card.
type CardSpec struct {
	Title  string
	Image  string
	Fields []CardField
}

// HasTitle reports whether the card has a title element.
func (c CardSpec) HasTitle() bool { return strings.TrimSpace(c.Title) != "" }

// HasImage reports whether the card reserves an image band.
func (c CardSpec) HasImage() bool { return strings.TrimSpace(c.Image) != "" }

// Classify turns a record into a CardSpec. The title and image fields never
// appear among the classified fields, whatever FieldTypes says about them.
func Classify(rec Record, opts ClassifyOptions) CardSpec {
	var spec CardSpec

	if opts.TitleField != "" {
		if v, ok := rec.Get(opts.TitleField); ok {
			spec.Title = blankToEmpty(DisplayValue(v))
		}
	}
	if opts.ImageField != "" {
		if v, ok := rec.Get(opts.ImageField); ok {
			spec.Image = blankToEmpty(DisplayValue(v))
		}
	}

	for _, f := range rec.fields {
		if f.Name == opts.TitleField || f.Name == opts.ImageField {
			continue
		}
		value, ok := DisplayValue(f.Value)
		if !ok {
			continue
		}
		spec.Fields = append(spec.Fields, CardField{
			Name:  f.Name,
			Value: value,
			Kind:  opts.FieldTypes.KindOf(f.Name),
		})
	}
	return spec
}

// blankToEmpty drops whitespace-only titles and image URLs, which would
// otherwise count as present but draw nothing.
func blankToEmpty(s string, ok bool) string {
	if !ok || strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// ClassifyAll classifies records in input order.
func ClassifyAll(recs []Record, opts ClassifyOptions) []CardSpec {
	specs := make([]CardSpec, len(recs))
	for i, rec := range recs {
		specs[i] = Classify(rec, opts)
	}
	return specs
}
