package jsonfile

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/gudlft-booking/internal/domain/club"
	"github.com/riskibarqy/gudlft-booking/internal/domain/competition"
)

const maxDataFileBytes = 16 << 20

// Loader reads the club and competition lists from two JSON files.
type Loader struct {
	clubsPath        string
	competitionsPath string
}

func NewLoader(clubsPath, competitionsPath string) *Loader {
	return &Loader{
		clubsPath:        strings.TrimSpace(clubsPath),
		competitionsPath: strings.TrimSpace(competitionsPath),
	}
}

type clubsDocument struct {
	Clubs []clubRecord `json:"clubs"`
}

type clubRecord struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Points flexInt `json:"points"`
}

type competitionsDocument struct {
	Competitions []competitionRecord `json:"competitions"`
}

type competitionRecord struct {
	Name           string  `json:"name"`
	Date           string  `json:"date"`
	NumberOfPlaces flexInt `json:"numberOfPlaces"`
}

func (l *Loader) LoadClubs(ctx context.Context) ([]club.Club, error) {
	var doc clubsDocument
	if err := readJSON(ctx, l.clubsPath, &doc); err != nil {
		return nil, crerr.Wrap(err, "load clubs")
	}

	out := make([]club.Club, 0, len(doc.Clubs))
	for i, rec := range doc.Clubs {
		item := club.Club{
			Name:   strings.TrimSpace(rec.Name),
			Email:  strings.TrimSpace(rec.Email),
			Points: int(rec.Points),
		}
		if err := item.Validate(); err != nil {
			return nil, crerr.Wrapf(err, "clubs[%d] in %s", i, l.clubsPath)
		}
		out = append(out, item)
	}

	return out, nil
}

func (l *Loader) LoadCompetitions(ctx context.Context) ([]competition.Competition, error) {
	var doc competitionsDocument
	if err := readJSON(ctx, l.competitionsPath, &doc); err != nil {
		return nil, crerr.Wrap(err, "load competitions")
	}

	out := make([]competition.Competition, 0, len(doc.Competitions))
	for i, rec := range doc.Competitions {
		date, err := parseDate(rec.Date)
		if err != nil {
			return nil, crerr.Wrapf(err, "competitions[%d] in %s", i, l.competitionsPath)
		}
		item := competition.Competition{
			Name:           strings.TrimSpace(rec.Name),
			Date:           date,
			NumberOfPlaces: int(rec.NumberOfPlaces),
		}
		if err := item.Validate(); err != nil {
			return nil, crerr.Wrapf(err, "competitions[%d] in %s", i, l.competitionsPath)
		}
		out = append(out, item)
	}

	return out, nil
}

func readJSON(ctx context.Context, path string, dst any) error {
	if path == "" {
		return crerr.New("data file path is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return crerr.Wrapf(err, "stat %s", path)
	}
	if info.Size() > maxDataFileBytes {
		return crerr.Newf("%s is too large: %d bytes", path, info.Size())
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return crerr.Wrapf(err, "read %s", path)
	}
	if err := sonic.Unmarshal(raw, dst); err != nil {
		return crerr.Wrapf(err, "decode %s", path)
	}

	return nil
}

func parseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, crerr.New("date is required")
	}
	if parsed, err := time.ParseInLocation(competition.DateLayout, value, time.UTC); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.UTC(), nil
	}

	return time.Time{}, crerr.Newf("invalid date %q, expected layout %q", value, competition.DateLayout)
}

// flexInt accepts both 13 and "13".
type flexInt int

func (v *flexInt) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		*v = 0
		return nil
	}
	text = strings.Trim(text, `"`)

	parsed, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return crerr.Wrapf(err, "invalid integer %s", string(data))
	}
	*v = flexInt(parsed)
	return nil
}
