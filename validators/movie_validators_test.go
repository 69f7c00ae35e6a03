package validators

import (
	"testing"
	"time"

	"github.com/LaibaTARIQ-20/Backend/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateCreateMovie_TitleRequired(t *testing.T) {
	cases := []struct {
		name    string
		title   *string
		wantErr bool
	}{
		{"missing", nil, true},
		{"blank", strPtr("   "), true},
		{"empty", strPtr(""), true},
		{"present", strPtr("Dune"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCreateMovie(models.MovieInput{Title: tc.title})
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateCreateMovie() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateCreateMovie_ReleaseYearBounds(t *testing.T) {
	maxYear := time.Now().Year() + 10

	cases := []struct {
		name    string
		year    int
		wantErr bool
	}{
		{"below minimum", 1887, true},
		{"minimum", 1888, false},
		{"maximum", maxYear, false},
		{"above maximum", maxYear + 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := models.MovieInput{Title: strPtr("Dune"), ReleaseYear: intPtr(tc.year)}
			err := ValidateCreateMovie(in)
			if (err != nil) != tc.wantErr {
				t.Errorf("year %d: error = %v, wantErr %v", tc.year, err, tc.wantErr)
			}
		})
	}
}

func TestValidateCreateMovie_Runtime(t *testing.T) {
	in := models.MovieInput{Title: strPtr("Dune"), Runtime: intPtr(0)}
	if err := ValidateCreateMovie(in); err == nil {
		t.Error("runtime 0 should be rejected")
	}

	in.Runtime = intPtr(-5)
	if err := ValidateCreateMovie(in); err == nil {
		t.Error("negative runtime should be rejected")
	}

	in.Runtime = intPtr(155)
	if err := ValidateCreateMovie(in); err != nil {
		t.Errorf("runtime 155 should be accepted, got %v", err)
	}
}

func TestValidateCreateMovie_PosterURL(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"http", "http://example.com/poster.jpg", false},
		{"https", "https://example.com/poster.jpg", false},
		{"ftp", "ftp://example.com/poster.jpg", true},
		{"no scheme", "example.com/poster.jpg", true},
		{"blank is skipped", "  ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := models.MovieInput{Title: strPtr("Dune"), PosterURL: strPtr(tc.url)}
			err := ValidateCreateMovie(in)
			if (err != nil) != tc.wantErr {
				t.Errorf("url %q: error = %v, wantErr %v", tc.url, err, tc.wantErr)
			}
		})
	}
}

func TestValidateUpdateMovie(t *testing.T) {
	// All fields optional on update.
	if err := ValidateUpdateMovie(models.MovieInput{}); err != nil {
		t.Errorf("empty update should be accepted, got %v", err)
	}

	// An explicitly blank title is still rejected.
	if err := ValidateUpdateMovie(models.MovieInput{Title: strPtr("  ")}); err == nil {
		t.Error("blank title on update should be rejected")
	}

	if err := ValidateUpdateMovie(models.MovieInput{ReleaseYear: intPtr(1500)}); err == nil {
		t.Error("out-of-range year on update should be rejected")
	}

	in := models.MovieInput{Title: strPtr("Dune: Part Two"), Runtime: intPtr(166)}
	if err := ValidateUpdateMovie(in); err != nil {
		t.Errorf("valid update rejected: %v", err)
	}
}
