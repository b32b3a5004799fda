package media

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	ConfigFileName = "config.txt"
	PosterFileName = "index.jpg"

	MovieType        = "movie"
	GenrePlaceholder = "I will add that later"
	DefaultAccess    = "everyone"
	DefaultYear      = "0000"

	MaxDescriptionLength       = 19
	truncatedDescriptionLength = 17
	descriptionEllipsis        = ".."
)

// Record is the metadata persisted for a single media folder. It is
// keyed by the name of the folder, which is not stored in the record.
type Record struct {
	Title       string
	Type        string
	Description string
	Genre       string
	Year        string
	Access      string

	// PosterPath is the TMDB poster reference used to download
	// the folders poster. It is not written to the config file.
	PosterPath string
}

// NewRecord constructs a movie record from the raw fields returned by a
// metadata search, truncating the description and reducing the release
// date to its year.
func NewRecord(title string, overview string, releaseDate string, posterPath string) Record {
	return Record{
		Title:       title,
		Type:        MovieType,
		Description: TruncateDescription(overview),
		Genre:       GenrePlaceholder,
		Year:        ExtractYear(releaseDate),
		Access:      DefaultAccess,
		PosterPath:  posterPath,
	}
}

// TruncateDescription shortens descriptions longer than MaxDescriptionLength
// characters to their first 17 characters followed by "..". Length is
// measured in runes, not bytes.
func TruncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= MaxDescriptionLength {
		return description
	}

	return string(runes[:truncatedDescriptionLength]) + descriptionEllipsis
}

// ExtractYear returns the first four characters of a release date
// such as "1999-03-30". A missing date yields DefaultYear.
func ExtractYear(releaseDate string) string {
	if releaseDate == "" {
		return DefaultYear
	}

	runes := []rune(releaseDate)
	if len(runes) < 4 {
		return releaseDate
	}

	return string(runes[:4])
}

// Format renders the record in the fixed line-oriented format
// of a config file. The output has no trailing newline.
func (record Record) Format() string {
	lines := []string{
		"title: " + record.Title,
		"type: " + record.Type,
		"description: " + record.Description,
		"genre: " + record.Genre,
		"year: " + record.Year,
		"access: " + record.Access,
	}

	return strings.Join(lines, "\n")
}

// AccessList splits a comma separated access value in to its entries.
func (record Record) AccessList() []string {
	parts := strings.Split(record.Access, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// ParseRecord reads a config file. Each line is split on its first colon,
// and unknown keys or lines without a colon are ignored. Access defaults
// to DefaultAccess when the file does not specify it.
func ParseRecord(r io.Reader) (*Record, error) {
	record := &Record{Access: DefaultAccess}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}

		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "title":
			record.Title = value
		case "type":
			record.Type = value
		case "description":
			record.Description = value
		case "genre":
			record.Genre = value
		case "year":
			record.Year = value
		case "access":
			record.Access = value
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return record, nil
}
