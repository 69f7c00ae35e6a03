package validators

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/LaibaTARIQ-20/Backend/models"
)

// Movies from before 1888 (the year of the first surviving film) are
// rejected, as are years more than a decade in the future.
const minReleaseYear = 1888

var posterURLPattern = regexp.MustCompile(`^https?://.+`)

// ValidateCreateMovie checks a movie creation payload and returns the first
// violated rule. It never touches storage.
func ValidateCreateMovie(in models.MovieInput) error {
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return errors.New("Movie title is required")
	}
	return validateMovieFields(in)
}

// ValidateUpdateMovie checks a partial movie payload: every field is
// optional, but a field that is present must satisfy the same rules as on
// creation. An explicitly blank title is rejected.
func ValidateUpdateMovie(in models.MovieInput) error {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return errors.New("Title cannot be empty")
	}
	return validateMovieFields(in)
}

func validateMovieFields(in models.MovieInput) error {
	if in.ReleaseYear != nil {
		year := *in.ReleaseYear
		if year < minReleaseYear || year > time.Now().Year()+10 {
			return errors.New("Release year must be a valid year")
		}
	}
	if in.Runtime != nil && *in.Runtime <= 0 {
		return errors.New("Runtime must be a positive number")
	}
	if in.PosterURL != nil && strings.TrimSpace(*in.PosterURL) != "" {
		if !posterURLPattern.MatchString(*in.PosterURL) {
			return errors.New("Poster URL must be a valid URL")
		}
	}
	return nil
}
