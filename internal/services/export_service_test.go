package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/terraincognita07/haven/internal/models"
	"github.com/terraincognita07/haven/internal/storage"
)

func exportFixtures(t *testing.T) *ExportService {
	t.Helper()
	store := storage.NewMemory()
	symptoms := NewSymptomService(store)
	calendar := NewCalendarIndex(store)

	entries := []models.SymptomEntry{
		{Date: "2024-03-01", Mood: "🙂 Good", Cramps: 3, Symptoms: []string{"Headache"}, Notes: "mild"},
		{Date: "2024-03-03", Mood: "😔 Low", Cramps: 6},
	}
	for _, entry := range entries {
		if err := symptoms.Log(entry); err != nil {
			t.Fatalf("log failed: %v", err)
		}
	}
	if err := calendar.SetFlow("2024-03-01", "medium"); err != nil {
		t.Fatalf("set flow failed: %v", err)
	}
	if err := calendar.ToggleIsPeriod("2024-03-02"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	return NewExportService(symptoms, calendar)
}

func TestExportRowsMergeByDate(t *testing.T) {
	service := exportFixtures(t)

	rows, err := service.Rows("", "")
	if err != nil {
		t.Fatalf("rows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 dated rows, got %d", len(rows))
	}

	// March 1 carries both the symptom entry and the calendar mark.
	first := rows[0]
	if first.Date != "2024-03-01" || !first.IsPeriod || first.Mood != "🙂 Good" || first.Cramps != 3 {
		t.Fatalf("unexpected merged row %#v", first)
	}
	// The mark's flow fills in only when the entry has none.
	if first.Flow != "medium" {
		t.Fatalf("expected mark flow, got %q", first.Flow)
	}

	// March 2 is calendar-only.
	if rows[1].Date != "2024-03-02" || !rows[1].IsPeriod || rows[1].Mood != "" {
		t.Fatalf("unexpected calendar-only row %#v", rows[1])
	}
	// March 3 is symptoms-only.
	if rows[2].Date != "2024-03-03" || rows[2].IsPeriod {
		t.Fatalf("unexpected symptom-only row %#v", rows[2])
	}
}

func TestExportRangeFilter(t *testing.T) {
	service := exportFixtures(t)

	rows, err := service.Rows("2024-03-02", "2024-03-02")
	if err != nil {
		t.Fatalf("rows failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Date != "2024-03-02" {
		t.Fatalf("expected only the bounded date, got %#v", rows)
	}

	if _, err := service.Rows("last week", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for a bad bound, got %v", err)
	}
}

func TestExportSummary(t *testing.T) {
	service := exportFixtures(t)

	summary, err := service.Summary("", "")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if !summary.HasData || summary.TotalEntries != 3 {
		t.Fatalf("unexpected summary %#v", summary)
	}
	if summary.DateFrom != "2024-03-01" || summary.DateTo != "2024-03-03" {
		t.Fatalf("unexpected bounds %#v", summary)
	}

	empty, err := service.Summary("2025-01-01", "")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if empty.HasData || empty.TotalEntries != 0 {
		t.Fatalf("expected empty summary, got %#v", empty)
	}
}

func TestExportWriteCSV(t *testing.T) {
	service := exportFixtures(t)

	var buffer bytes.Buffer
	if err := service.WriteCSV(&buffer, "", ""); err != nil {
		t.Fatalf("write csv failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "Date,Period,Flow,Mood,Cramps,Symptoms,Notes" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2024-03-01,true,medium,") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}

func TestExportWriteJSON(t *testing.T) {
	service := exportFixtures(t)

	var buffer bytes.Buffer
	if err := service.WriteJSON(&buffer, "", ""); err != nil {
		t.Fatalf("write json failed: %v", err)
	}

	var rows []ExportRow
	if err := json.Unmarshal(buffer.Bytes(), &rows); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(rows) != 3 || rows[0].Date != "2024-03-01" {
		t.Fatalf("unexpected decoded rows %#v", rows)
	}
}
