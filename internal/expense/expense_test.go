package expense

import (
	"strings"
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "two decimals", input: "42.50", want: "42.5"},
		{name: "integer", input: "10", want: "10"},
		{name: "surrounding spaces", input: " 3.99 ", want: "3.99"},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseAmount(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestFormDataValidate(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	valid := FormData{
		Date:        "2024-03-10",
		Amount:      "12.00",
		Category:    Food,
		Description: "Groceries",
	}

	tests := []struct {
		name   string
		modify func(f *FormData)
		fields []string
	}{
		{name: "valid", modify: func(*FormData) {}},
		{name: "missing date", modify: func(f *FormData) { f.Date = "" }, fields: []string{"date"}},
		{name: "malformed date", modify: func(f *FormData) { f.Date = "10/03/2024" }, fields: []string{"date"}},
		{name: "future date", modify: func(f *FormData) { f.Date = "2024-03-11" }, fields: []string{"date"}},
		{name: "zero amount", modify: func(f *FormData) { f.Amount = "0" }, fields: []string{"amount"}},
		{name: "unknown category", modify: func(f *FormData) { f.Category = "Travel" }, fields: []string{"category"}},
		{name: "blank description", modify: func(f *FormData) { f.Description = "   " }, fields: []string{"description"}},
		{
			name:   "description too long",
			modify: func(f *FormData) { f.Description = strings.Repeat("a", MaxDescriptionLength+1) },
			fields: []string{"description"},
		},
		{
			name: "everything wrong",
			modify: func(f *FormData) {
				*f = FormData{}
			},
			fields: []string{"date", "amount", "category", "description"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.modify(&form)

			errs := form.Validate(now)
			if len(errs) != len(tt.fields) {
				t.Fatalf("Validate() returned %d errors, want %d: %v", len(errs), len(tt.fields), errs)
			}
			for i, field := range tt.fields {
				if errs[i].Field != field {
					t.Errorf("errs[%d].Field = %v, want %v", i, errs[i].Field, field)
				}
			}
		})
	}
}

func TestDescriptionLengthCountsRunes(t *testing.T) {
	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	form := FormData{
		Date:        "2024-03-01",
		Amount:      "1",
		Category:    Other,
		Description: strings.Repeat("é", MaxDescriptionLength),
	}

	if errs := form.Validate(now); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	want := []Category{Food, Transportation, Entertainment, Shopping, Bills, Other}
	if len(cats) != len(want) {
		t.Fatalf("Categories() length = %d, want %d", len(cats), len(want))
	}
	for i, c := range want {
		if cats[i] != c {
			t.Errorf("Categories()[%d] = %v, want %v", i, cats[i], c)
		}
		if !c.Valid() {
			t.Errorf("%v.Valid() = false, want true", c)
		}
		if c.Index() != i {
			t.Errorf("%v.Index() = %d, want %d", c, c.Index(), i)
		}
		if c.Color() == "" {
			t.Errorf("%v.Color() is empty", c)
		}
	}

	cats[0] = "Mutated"
	if Categories()[0] != Food {
		t.Error("Categories() must return a copy")
	}

	if Category("Travel").Valid() {
		t.Error("Travel should not be a valid category")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{input: "Food", want: Food},
		{input: " bills ", want: Bills},
		{input: "TRANSPORTATION", want: Transportation},
		{input: "All", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCategory(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
