// ABOUTME: MCP tool implementations for the baby log.
// ABOUTME: Logging, timeframe queries, stats, weights, and baby management.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/babylog/internal/models"
	"github.com/harperreed/babylog/internal/report"
	"github.com/harperreed/babylog/internal/timeframe"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_entry",
		Description: "Record or overwrite the milk/pee/poop flags for a baby at a timestamp",
	}, s.handleLogEntry)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_entries",
		Description: "List a baby's entries for a timeframe (today, 3d, 7d, 30d, custom)",
	}, s.handleListEntries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete the entry at an exact timestamp",
	}, s.handleDeleteEntry)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Totals, daily counts, and average intervals for a timeframe",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "last_events",
		Description: "Most recent milk/pee/poop timestamps for a baby",
	}, s.handleLastEvents)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_weight",
		Description: "Record a baby's weight (pounds and ounces) for a date",
	}, s.handleAddWeight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weight_series",
		Description: "All weight measurements for a baby, ascending by date",
	}, s.handleWeightSeries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_baby",
		Description: "Create a baby by name (idempotent get-or-create)",
	}, s.handleAddBaby)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_babies",
		Description: "List all baby names",
	}, s.handleListBabies)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_dob",
		Description: "Set a baby's date of birth",
	}, s.handleSetDOB)
}

// Tool input/output types

type logEntryInput struct {
	Baby      string `json:"baby" jsonschema:"Baby name"`
	Timestamp string `json:"timestamp,omitempty" jsonschema:"Timestamp (YYYY-MM-DD HH:MM or ISO 8601); defaults to now"`
	Milk      bool   `json:"milk,omitempty" jsonschema:"Milk feeding happened"`
	Pee       bool   `json:"pee,omitempty" jsonschema:"Urination happened"`
	Poop      bool   `json:"poop,omitempty" jsonschema:"Bowel movement happened"`
}

type timeframeInput struct {
	Baby      string `json:"baby" jsonschema:"Baby name"`
	Timeframe string `json:"timeframe,omitempty" jsonschema:"today, 3d, 7d, 30d, or custom (default today)"`
	From      string `json:"from,omitempty" jsonschema:"Custom range start date (YYYY-MM-DD)"`
	To        string `json:"to,omitempty" jsonschema:"Custom range end date (YYYY-MM-DD)"`
}

type deleteEntryInput struct {
	Baby      string `json:"baby" jsonschema:"Baby name"`
	Timestamp string `json:"timestamp" jsonschema:"Exact timestamp of the entry to delete"`
}

type addWeightInput struct {
	Baby   string `json:"baby" jsonschema:"Baby name"`
	Date   string `json:"date,omitempty" jsonschema:"Measurement date (YYYY-MM-DD); defaults to today"`
	Pounds int    `json:"pounds" jsonschema:"Whole pounds"`
	Ounces int    `json:"ounces,omitempty" jsonschema:"Additional ounces (0-15)"`
}

type babyInput struct {
	Baby string `json:"baby" jsonschema:"Baby name"`
}

type setDOBInput struct {
	Baby string `json:"baby" jsonschema:"Baby name"`
	DOB  string `json:"dob" jsonschema:"Date of birth (YYYY-MM-DD)"`
}

type entryOutput struct {
	Timestamp string `json:"timestamp"`
	Milk      bool   `json:"milk"`
	Pee       bool   `json:"pee"`
	Poop      bool   `json:"poop"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogEntry(ctx context.Context, req *mcp.CallToolRequest, input logEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	baby, err := s.repo.GetOrCreateBaby(input.Baby)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	ts := time.Now().In(s.loc)
	if input.Timestamp != "" {
		ts, err = s.parseTimestamp(input.Timestamp)
		if err != nil {
			return nil, simpleOutput{}, err
		}
	}

	e := models.NewEntry(baby.ID, ts, input.Milk, input.Pee, input.Poop)
	if err := s.repo.UpsertEntry(e); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save entry: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved %s's entry for %s", baby.Name, e.Ts.Format("2006-01-02 03:04 PM")),
	}, nil
}

func (s *Server) handleListEntries(ctx context.Context, req *mcp.CallToolRequest, input timeframeInput) (*mcp.CallToolResult, any, error) {
	baby, err := s.repo.FindBaby(input.Baby)
	if err != nil {
		return nil, nil, fmt.Errorf("baby not found: %s", input.Baby)
	}

	r, err := s.resolveRange(input)
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.repo.FetchRange(baby.ID, r.Start, r.End)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch entries: %w", err)
	}

	out := make([]entryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryOutput{
			Timestamp: e.Ts.Format(time.RFC3339),
			Milk:      e.Milk,
			Pee:       e.Pee,
			Poop:      e.Poop,
		})
	}
	return nil, map[string]any{
		"start":   r.Start.Format(time.RFC3339),
		"end":     r.End.Format(time.RFC3339),
		"entries": out,
	}, nil
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *mcp.CallToolRequest, input deleteEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	baby, err := s.repo.FindBaby(input.Baby)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("baby not found: %s", input.Baby)
	}

	ts, err := s.parseTimestamp(input.Timestamp)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	removed, err := s.repo.DeleteEntry(baby.ID, ts)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %d entry", removed),
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input timeframeInput) (*mcp.CallToolResult, any, error) {
	baby, err := s.repo.FindBaby(input.Baby)
	if err != nil {
		return nil, nil, fmt.Errorf("baby not found: %s", input.Baby)
	}

	r, err := s.resolveRange(input)
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.repo.FetchRange(baby.ID, r.Start, r.End)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch entries: %w", err)
	}

	summary := report.Summarize(entries, s.loc)
	intervals := make(map[string]string)
	for kind, avg := range summary.Intervals {
		intervals[string(kind)] = avg.Round(time.Minute).String()
	}

	result := map[string]any{
		"start":     r.Start.Format(time.RFC3339),
		"end":       r.End.Format(time.RFC3339),
		"totals":    map[string]int{"milk": summary.Totals.Milk, "pee": summary.Totals.Pee, "poop": summary.Totals.Poop},
		"daily":     summary.Daily,
		"intervals": intervals,
	}
	if dol, ok := baby.DayOfLife(timeframe.TodayIn(s.loc)); ok {
		result["day_of_life"] = dol
	}
	return nil, result, nil
}

func (s *Server) handleLastEvents(ctx context.Context, req *mcp.CallToolRequest, input babyInput) (*mcp.CallToolResult, any, error) {
	baby, err := s.repo.FindBaby(input.Baby)
	if err != nil {
		return nil, nil, fmt.Errorf("baby not found: %s", input.Baby)
	}

	last, err := s.repo.LatestPerEvent(baby.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load last events: %w", err)
	}

	result := make(map[string]any)
	for _, kind := range models.AllEventKinds {
		if ts := last.For(kind); ts != nil {
			result[string(kind)] = ts.Format(time.RFC3339)
		} else {
			result[string(kind)] = nil
		}
	}
	return nil, result, nil
}

func (s *Server) handleAddWeight(ctx context.Context, req *mcp.CallToolRequest, input addWeightInput) (*mcp.CallToolResult, simpleOutput, error) {
	baby, err := s.repo.GetOrCreateBaby(input.Baby)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	date := timeframe.TodayIn(s.loc)
	if input.Date != "" {
		date, err = time.ParseInLocation("2006-01-02", input.Date, s.loc)
		if err != nil {
			return nil, simpleOutput{}, fmt.Errorf("invalid date: %s", input.Date)
		}
	}

	w := models.NewWeight(baby.ID, date, models.PoundsOunces(input.Pounds, input.Ounces))
	if err := s.repo.UpsertWeight(w); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save weight: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved weight for %s: %d lb %d oz", w.Date.Format("2006-01-02"), input.Pounds, input.Ounces),
	}, nil
}

func (s *Server) handleWeightSeries(ctx context.Context, req *mcp.CallToolRequest, input babyInput) (*mcp.CallToolResult, any, error) {
	baby, err := s.repo.FindBaby(input.Baby)
	if err != nil {
		return nil, nil, fmt.Errorf("baby not found: %s", input.Baby)
	}

	weights, err := s.repo.WeightSeries(baby.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load weights: %w", err)
	}

	type point struct {
		Date   string  `json:"date"`
		Weight float64 `json:"weight"`
	}
	series := make([]point, 0, len(weights))
	for _, w := range weights {
		series = append(series, point{Date: w.Date.Format("2006-01-02"), Weight: w.Weight})
	}
	return nil, series, nil
}

func (s *Server) handleAddBaby(ctx context.Context, req *mcp.CallToolRequest, input babyInput) (*mcp.CallToolResult, simpleOutput, error) {
	baby, err := s.repo.GetOrCreateBaby(input.Baby)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Baby %q ready (id %d)", baby.Name, baby.ID),
	}, nil
}

func (s *Server) handleListBabies(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	names, err := s.repo.ListBabyNames()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list babies: %w", err)
	}
	if len(names) == 0 {
		return nil, map[string]any{"message": "No babies yet."}, nil
	}
	return nil, names, nil
}

func (s *Server) handleSetDOB(ctx context.Context, req *mcp.CallToolRequest, input setDOBInput) (*mcp.CallToolResult, simpleOutput, error) {
	baby, err := s.repo.FindBaby(input.Baby)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("baby not found: %s", input.Baby)
	}

	dob, err := time.Parse("2006-01-02", input.DOB)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid date of birth: %s", input.DOB)
	}

	if err := s.repo.SetDateOfBirth(baby.ID, dob); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to set date of birth: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved date of birth for %s", baby.Name),
	}, nil
}

// parseTimestamp parses tool timestamps in the reporting zone, truncated
// to whole minutes like the CLI entry form.
func (s *Server) parseTimestamp(v string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04",
		"2006-01-02T15:04",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, v, s.loc); err == nil {
			return t.Truncate(time.Minute), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp: %s", v)
}

// resolveRange maps tool timeframe inputs to a concrete window.
func (s *Server) resolveRange(input timeframeInput) (timeframe.Range, error) {
	tf := input.Timeframe
	if tf == "" {
		tf = "today"
	}
	opt, err := timeframe.ParseOption(tf)
	if err != nil {
		return timeframe.Range{}, err
	}

	var custom *timeframe.DateRange
	if opt == timeframe.OptionCustom {
		custom = &timeframe.DateRange{}
		if input.From != "" {
			from, err := time.ParseInLocation("2006-01-02", input.From, s.loc)
			if err != nil {
				return timeframe.Range{}, fmt.Errorf("invalid from date: %s", input.From)
			}
			custom.From = from
		}
		if input.To != "" {
			to, err := time.ParseInLocation("2006-01-02", input.To, s.loc)
			if err != nil {
				return timeframe.Range{}, fmt.Errorf("invalid to date: %s", input.To)
			}
			custom.To = to
		}
	}

	return timeframe.Resolve(opt, custom, timeframe.TodayIn(s.loc)), nil
}
