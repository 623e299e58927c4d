// ABOUTME: MCP resource implementations for the baby log.
// ABOUTME: Provides babylog://babies, babylog://today, and babylog://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/babylog/internal/models"
	"github.com/harperreed/babylog/internal/report"
	"github.com/harperreed/babylog/internal/timeframe"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// babylog://babies - All babies with their dates of birth
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "babylog://babies",
		Name:        "Babies",
		Description: "All babies with their dates of birth and days of life",
		MIMEType:    "application/json",
	}, s.handleBabiesResource)

	// babylog://today - Today's entries for every baby
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "babylog://today",
		Name:        "Today's Entries",
		Description: "All entries logged today, per baby",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// babylog://summary - 7-day dashboard per baby
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "babylog://summary",
		Name:        "Weekly Summary",
		Description: "Totals, average intervals, and last events over the past 7 days",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleBabiesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	names, err := s.repo.ListBabyNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list babies: %w", err)
	}

	today := timeframe.TodayIn(s.loc)
	babies := make([]map[string]any, 0, len(names))
	for _, name := range names {
		baby, err := s.repo.FindBaby(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load baby %s: %w", name, err)
		}
		item := map[string]any{"name": baby.Name}
		if baby.DOB != nil {
			item["dob"] = baby.DOB.Format("2006-01-02")
		}
		if dol, ok := baby.DayOfLife(today); ok {
			item["day_of_life"] = dol
		}
		babies = append(babies, item)
	}

	return resourceJSON("babylog://babies", babies)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := timeframe.TodayIn(s.loc)
	r := timeframe.Resolve(timeframe.OptionToday, nil, today)

	perBaby, err := s.entriesPerBaby(r)
	if err != nil {
		return nil, err
	}
	return resourceJSON("babylog://today", perBaby)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := timeframe.TodayIn(s.loc)
	r := timeframe.Resolve(timeframe.OptionLast7, nil, today)

	names, err := s.repo.ListBabyNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list babies: %w", err)
	}

	result := make(map[string]any)
	for _, name := range names {
		baby, err := s.repo.FindBaby(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load baby %s: %w", name, err)
		}

		entries, err := s.repo.FetchRange(baby.ID, r.Start, r.End)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch entries for %s: %w", name, err)
		}

		summary := report.Summarize(entries, s.loc)
		intervals := make(map[string]string)
		for kind, avg := range summary.Intervals {
			intervals[string(kind)] = avg.Round(time.Minute).String()
		}

		last, err := s.repo.LatestPerEvent(baby.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load last events for %s: %w", name, err)
		}
		lastSeen := make(map[string]any)
		for _, kind := range models.AllEventKinds {
			if ts := last.For(kind); ts != nil {
				lastSeen[string(kind)] = ts.Format(time.RFC3339)
			} else {
				lastSeen[string(kind)] = nil
			}
		}

		result[name] = map[string]any{
			"totals":      map[string]int{"milk": summary.Totals.Milk, "pee": summary.Totals.Pee, "poop": summary.Totals.Poop},
			"intervals":   intervals,
			"last_events": lastSeen,
		}
	}

	return resourceJSON("babylog://summary", map[string]any{
		"start":  r.Start.Format(time.RFC3339),
		"end":    r.End.Format(time.RFC3339),
		"babies": result,
	})
}

// entriesPerBaby collects entries in a window keyed by baby name.
func (s *Server) entriesPerBaby(r timeframe.Range) (map[string][]entryOutput, error) {
	names, err := s.repo.ListBabyNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list babies: %w", err)
	}

	perBaby := make(map[string][]entryOutput)
	for _, name := range names {
		baby, err := s.repo.FindBaby(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load baby %s: %w", name, err)
		}
		entries, err := s.repo.FetchRange(baby.ID, r.Start, r.End)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch entries for %s: %w", name, err)
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
		perBaby[name] = out
	}
	return perBaby, nil
}

func resourceJSON(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
