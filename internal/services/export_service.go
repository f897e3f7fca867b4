package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ExportService renders the symptom history and calendar marks for taking
// the data elsewhere. ISO date strings compare lexicographically, so range
// filtering is plain string comparison.
type ExportService struct {
	symptoms *SymptomService
	calendar *CalendarIndex
}

func NewExportService(symptoms *SymptomService, calendar *CalendarIndex) *ExportService {
	return &ExportService{symptoms: symptoms, calendar: calendar}
}

var exportCSVHeaders = []string{"Date", "Period", "Flow", "Mood", "Cramps", "Symptoms", "Notes"}

type ExportRow struct {
	Date     string   `json:"date"`
	IsPeriod bool     `json:"isPeriod"`
	Flow     string   `json:"flow,omitempty"`
	Mood     string   `json:"mood,omitempty"`
	Cramps   int      `json:"cramps"`
	Symptoms []string `json:"symptoms,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

type ExportSummary struct {
	TotalEntries int
	DateFrom     string
	DateTo       string
	HasData      bool
}

// Rows merges symptom entries and calendar marks into one dated sequence,
// ascending. from and to are inclusive ISO date bounds; empty means open.
func (service *ExportService) Rows(from, to string) ([]ExportRow, error) {
	if from != "" {
		if err := validateDate(from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if err := validateDate(to); err != nil {
			return nil, err
		}
	}

	byDate := make(map[string]ExportRow)
	for _, entry := range service.symptoms.Entries() {
		byDate[entry.Date] = ExportRow{
			Date:     entry.Date,
			Mood:     entry.Mood,
			Flow:     entry.Flow,
			Cramps:   entry.Cramps,
			Symptoms: entry.Symptoms,
			Notes:    entry.Notes,
		}
	}
	for _, date := range service.calendar.marks.Dates() {
		mark, _ := service.calendar.marks.Get(date)
		row := byDate[date]
		row.Date = date
		row.IsPeriod = mark.IsPeriod
		if row.Flow == "" {
			row.Flow = mark.Flow
		}
		byDate[date] = row
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		if from != "" && date < from {
			continue
		}
		if to != "" && date > to {
			continue
		}
		dates = append(dates, date)
	}
	sort.Strings(dates)

	rows := make([]ExportRow, 0, len(dates))
	for _, date := range dates {
		rows = append(rows, byDate[date])
	}
	return rows, nil
}

func (service *ExportService) Summary(from, to string) (ExportSummary, error) {
	rows, err := service.Rows(from, to)
	if err != nil {
		return ExportSummary{}, err
	}

	summary := ExportSummary{TotalEntries: len(rows), HasData: len(rows) > 0}
	if summary.HasData {
		summary.DateFrom = rows[0].Date
		summary.DateTo = rows[len(rows)-1].Date
	}
	return summary, nil
}

func (service *ExportService) WriteCSV(writer io.Writer, from, to string) error {
	rows, err := service.Rows(from, to)
	if err != nil {
		return err
	}

	out := csv.NewWriter(writer)
	if err := out.Write(exportCSVHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Date,
			strconv.FormatBool(row.IsPeriod),
			row.Flow,
			row.Mood,
			strconv.Itoa(row.Cramps),
			strings.Join(row.Symptoms, "; "),
			row.Notes,
		}
		if err := out.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	out.Flush()
	return out.Error()
}

func (service *ExportService) WriteJSON(writer io.Writer, from, to string) error {
	rows, err := service.Rows(from, to)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}
