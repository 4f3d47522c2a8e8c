package card

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_TwoRecordScenario(t *testing.T) {
	recs := []Record{
		NewRecord(Field{"name", "A"}, Field{"dept", "Eng"}),
		NewRecord(Field{"name", "B"}, Field{"dept", "Sales"}),
	}
	opts := ClassifyOptions{TitleField: "name", FieldTypes: FieldTypes{"dept": "badge"}}

	specs := ClassifyAll(recs, opts)
	require.Len(t, specs, 2)

	for i, want := range []struct{ title, badge string }{{"A", "Eng"}, {"B", "Sales"}} {
		assert.Equal(t, want.title, specs[i].Title)
		require.Len(t, specs[i].Fields, 1)
		assert.Equal(t, KindBadge, specs[i].Fields[0].Kind)
		assert.Equal(t, []string{want.badge}, specs[i].Fields[0].Badges())
	}
}

func TestClassify_Deterministic(t *testing.T) {
	rec := NewRecord(
		Field{"task", "Design Homepage"},
		Field{"priority", "High"},
		Field{"status", "In Progress"},
		Field{"completion", "75%"},
	)
	opts := ClassifyOptions{TitleField: "task", FieldTypes: FieldTypes{"priority": "badge", "status": "badge"}}

	first := Classify(rec, opts)
	second := Classify(rec, opts)
	assert.Equal(t, first, second)
}

func TestClassify_PreservesFieldOrder(t *testing.T) {
	rec := NewRecord(Field{"z", "1"}, Field{"a", "2"}, Field{"m", "3"})
	spec := Classify(rec, ClassifyOptions{})

	var names []string
	for _, f := range spec.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"z", "a", "m"}, names)
}

func TestClassify_MissingTitleIsAbsent(t *testing.T) {
	rec := NewRecord(Field{"role", "Engineer"})
	spec := Classify(rec, ClassifyOptions{TitleField: "name", ImageField: "image"})

	assert.False(t, spec.HasTitle())
	assert.False(t, spec.HasImage())
	require.Len(t, spec.Fields, 1)
	assert.Equal(t, "role", spec.Fields[0].Name)
}

func TestClassify_TitleAndImageNeverClassified(t *testing.T) {
	rec := NewRecord(
		Field{"name", "Alice"},
		Field{"image", "https://example.com/a.png"},
		Field{"status", "Active"},
	)
	opts := ClassifyOptions{
		TitleField: "name",
		ImageField: "image",
		FieldTypes: FieldTypes{"name": "badge", "image": "badge", "status": "badge"},
	}
	spec := Classify(rec, opts)

	assert.Equal(t, "Alice", spec.Title)
	assert.Equal(t, "https://example.com/a.png", spec.Image)
	require.Len(t, spec.Fields, 1)
	assert.Equal(t, "status", spec.Fields[0].Name)
}

func TestClassify_BadgeNeverText(t *testing.T) {
	recs := []Record{
		NewRecord(Field{"name", "A"}, Field{"status", "Active"}, Field{"city", "NYC"}),
		NewRecord(Field{"status", "On Leave"}),
		NewRecord(Field{"name", "C"}),
	}
	opts := ClassifyOptions{TitleField: "name", FieldTypes: FieldTypes{"status": "badge"}}

	for i, spec := range ClassifyAll(recs, opts) {
		for _, f := range spec.Fields {
			if f.Name == "status" && f.Kind != KindBadge {
				t.Errorf("record %d: status rendered as %s", i, f.Kind)
			}
			if f.Name == "city" && f.Kind != KindText {
				t.Errorf("record %d: city rendered as %s", i, f.Kind)
			}
		}
	}
}

func TestFieldTypes_KindOf(t *testing.T) {
	ft := FieldTypes{"a": "badge", "b": "text", "c": "chip", "d": " Badge ", "e": ""}

	tests := []struct {
		name string
		want FieldKind
	}{
		{"a", KindBadge},
		{"b", KindText},
		{"c", KindText},
		{"d", KindBadge},
		{"e", KindText},
		{"unknown", KindText},
	}
	for _, tt := range tests {
		if got := ft.KindOf(tt.name); got != tt.want {
			t.Errorf("KindOf(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	var empty FieldTypes
	if got := empty.KindOf("a"); got != KindText {
		t.Errorf("nil FieldTypes: KindOf = %v, want text", got)
	}
}

func TestClassify_SkipsAbsentValues(t *testing.T) {
	rec := NewRecord(Field{"a", nil}, Field{"b", ""}, Field{"c", "x"})
	spec := Classify(rec, ClassifyOptions{FieldTypes: FieldTypes{"a": "badge", "b": "badge"}})

	require.Len(t, spec.Fields, 1)
	assert.Equal(t, "c", spec.Fields[0].Name)
}

func TestCardField_Badges(t *testing.T) {
	tests := []struct {
		name  string
		field CardField
		want  []string
	}{
		{"single", CardField{Value: "Eng", Kind: KindBadge}, []string{"Eng"}},
		{"comma list", CardField{Value: "Python, React ,AWS", Kind: KindBadge}, []string{"Python", "React", "AWS"}},
		{"empty pieces", CardField{Value: "a,,b,", Kind: KindBadge}, []string{"a", "b"}},
		{"text field", CardField{Value: "a,b", Kind: KindText}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.Badges())
		})
	}
}

func TestBadgeColor(t *testing.T) {
	assert.Equal(t, "#ea580c", BadgeColor("a"))
	assert.Equal(t, "#4338ca", BadgeColor("ab"))
	assert.Equal(t, BadgeColor("Engineering"), BadgeColor("Engineering"))
	assert.Contains(t, badgePalette, BadgeColor(""))
}

func TestClassify_Table(t *testing.T) {
	rec := NewRecord(
		Field{"name", "Laptop Pro"},
		Field{"image", "https://example.com/laptop.png"},
		Field{"price", 1299.5},
		Field{"tags", "new, sale"},
		Field{"notes", ""},
		Field{"stock", nil},
	)
	tests := []struct {
		name string
		opts ClassifyOptions
		want CardSpec
	}{
		{
			name: "no options",
			want: CardSpec{Fields: []CardField{
				{Name: "name", Value: "Laptop Pro", Kind: KindText},
				{Name: "image", Value: "https://example.com/laptop.png", Kind: KindText},
				{Name: "price", Value: "1299.5", Kind: KindText},
				{Name: "tags", Value: "new, sale", Kind: KindText},
			}},
		},
		{
			name: "title image and badge",
			opts: ClassifyOptions{TitleField: "name", ImageField: "image", FieldTypes: FieldTypes{"tags": "badge"}},
			want: CardSpec{
				Title: "Laptop Pro",
				Image: "https://example.com/laptop.png",
				Fields: []CardField{
					{Name: "price", Value: "1299.5", Kind: KindText},
					{Name: "tags", Value: "new, sale", Kind: KindBadge},
				},
			},
		},
		{
			name: "missing title field and unknown kind",
			opts: ClassifyOptions{TitleField: "title", FieldTypes: FieldTypes{"price": "currency"}},
			want: CardSpec{Fields: []CardField{
				{Name: "name", Value: "Laptop Pro", Kind: KindText},
				{Name: "image", Value: "https://example.com/laptop.png", Kind: KindText},
				{Name: "price", Value: "1299.5", Kind: KindText},
				{Name: "tags", Value: "new, sale", Kind: KindText},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Classify(rec, tt.opts)); diff != "" {
				t.Errorf("Classify() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassify_BlankTitleAndImageAreAbsent(t *testing.T) {
	rec := NewRecord(Field{"name", "   "}, Field{"image", "\t"}, Field{"role", "Dev"})
	spec := Classify(rec, ClassifyOptions{TitleField: "name", ImageField: "image"})

	assert.False(t, spec.HasTitle())
	assert.False(t, spec.HasImage())
	assert.Empty(t, spec.Title)
	assert.Empty(t, spec.Image)
	require.Len(t, spec.Fields, 1)
	assert.Equal(t, "role", spec.Fields[0].Name)

	assert.False(t, CardSpec{Title: " "}.HasTitle())
	assert.True(t, CardSpec{Title: " A "}.HasTitle())
}
