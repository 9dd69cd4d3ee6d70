package estimates

import (
	"net/url"

	"github.com/layerbylayersg/slicer-estimate-api/pkg/query"
	"github.com/layerbylayersg/slicer-estimate-api/pkg/repository"
)

var estimateProjection = query.
	NewProjectionMap("public", "estimates", "e").
	Project("id", "ID").
	Project("file_url", "FileURL").
	Project("file_name", "FileName").
	Project("material", "Material").
	Project("quality", "Quality").
	Project("supports", "Supports").
	Project("copies", "Copies").
	Project("print_time_seconds", "PrintTimeSeconds").
	Project("filament_g", "FilamentGrams").
	Project("duration_ms", "DurationMS").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

func scanEstimate(s repository.Scanner) (Estimate, error) {
	var e Estimate
	err := s.Scan(
		&e.ID, &e.FileURL, &e.FileName,
		&e.Material, &e.Quality, &e.Supports, &e.Copies,
		&e.PrintTimeSeconds, &e.FilamentGrams,
		&e.DurationMS, &e.CreatedAt,
	)
	return e, err
}

// Filters narrow estimate listings by print parameters.
type Filters struct {
	Material *string
	Quality  *string
}

// FiltersFromQuery parses listing filters from URL query values.
func FiltersFromQuery(values url.Values) Filters {
	var material, quality *string
	if m := values.Get("material"); m != "" {
		material = &m
	}
	if q := values.Get("quality"); q != "" {
		quality = &q
	}
	return Filters{
		Material: material,
		Quality:  quality,
	}
}

// Apply adds the filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Material != nil {
		b.WhereEquals("Material", *f.Material)
	}
	if f.Quality != nil {
		b.WhereEquals("Quality", *f.Quality)
	}
	return b
}
