package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoader_LoadClubs_AcceptsStringAndNumberPoints(t *testing.T) {
	dir := t.TempDir()
	clubs := writeFile(t, dir, "clubs.json", `{"clubs":[
		{"name":"Simply Lift","email":"john@simplylift.co","points":"13"},
		{"name":"Iron Temple","email":"admin@irontemple.com","points":4}
	]}`)

	items, err := NewLoader(clubs, "").LoadClubs(context.Background())
	if err != nil {
		t.Fatalf("load clubs: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 clubs, got %d", len(items))
	}
	if items[0].Points != 13 || items[1].Points != 4 {
		t.Fatalf("unexpected points: %+v", items)
	}
}

func TestLoader_LoadCompetitions(t *testing.T) {
	dir := t.TempDir()
	comps := writeFile(t, dir, "competitions.json", `{"competitions":[
		{"name":"Spring Festival","date":"2020-03-27 10:00:00","numberOfPlaces":"25"}
	]}`)

	items, err := NewLoader("", comps).LoadCompetitions(context.Background())
	if err != nil {
		t.Fatalf("load competitions: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 competition, got %d", len(items))
	}
	want := time.Date(2020, 3, 27, 10, 0, 0, 0, time.UTC)
	if !items[0].Date.Equal(want) || items[0].NumberOfPlaces != 25 {
		t.Fatalf("unexpected competition: %+v", items[0])
	}
}

func TestLoader_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		clubs   bool
	}{
		{name: "bad points", content: `{"clubs":[{"name":"A","email":"a@a.io","points":"many"}]}`, clubs: true},
		{name: "negative points", content: `{"clubs":[{"name":"A","email":"a@a.io","points":-1}]}`, clubs: true},
		{name: "missing email", content: `{"clubs":[{"name":"A","points":1}]}`, clubs: true},
		{name: "bad date", content: `{"competitions":[{"name":"K","date":"27/03/2020","numberOfPlaces":1}]}`},
		{name: "broken json", content: `{"competitions":[`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, "data.json", tc.content)
			loader := NewLoader(path, path)

			var err error
			if tc.clubs {
				_, err = loader.LoadClubs(context.Background())
			} else {
				_, err = loader.LoadCompetitions(context.Background())
			}
			if err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	if _, err := NewLoader(filepath.Join(dir, "missing.json"), "").LoadClubs(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
