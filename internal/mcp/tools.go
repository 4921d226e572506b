package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/gorewood/moodmark/internal/config"
	"github.com/gorewood/moodmark/internal/convert"
	"github.com/gorewood/moodmark/internal/export"
	"github.com/gorewood/moodmark/internal/mood"
)

// tools carries the defaults shared by every handler.
type tools struct {
	opts   config.Options
	logger zerolog.Logger
}

// converter builds a Converter for one call, applying a per-call mood file.
func (t *tools) converter(moods string) *convert.Converter {
	opts := t.opts
	if moods != "" {
		opts.Moods = moods
	}
	return convert.New(opts, t.logger)
}

// --- list_days ---

// ListDaysInput is the input for the list_days tool.
type ListDaysInput struct {
	Journal string `json:"journal"         jsonschema:"path of the Daylio CSV export"`
	Moods   string `json:"moods,omitempty" jsonschema:"path of a custom mood taxonomy (YAML or JSON)"`
}

// ListDaysOutput is the output for the list_days tool.
type ListDaysOutput struct {
	Count   int              `json:"count"   jsonschema:"number of days with entries"`
	Entries int              `json:"entries" jsonschema:"number of entries across all days"`
	Skipped int              `json:"skipped" jsonschema:"rows that could not be read"`
	Days    []export.DayView `json:"days"    jsonschema:"days in ascending date order"`
}

func (t *tools) handleListDays(_ context.Context, _ *mcp.CallToolRequest, input ListDaysInput) (*mcp.CallToolResult, ListDaysOutput, error) {
	if input.Journal == "" {
		return nil, ListDaysOutput{}, errors.New("journal path is required")
	}

	j, stats, err := t.converter(input.Moods).Read(input.Journal)
	if err != nil {
		return nil, ListDaysOutput{}, fmt.Errorf("reading journal: %w", err)
	}
	views, err := export.Views(j.Days(), "", false)
	if err != nil {
		return nil, ListDaysOutput{}, fmt.Errorf("rendering days: %w", err)
	}

	return nil, ListDaysOutput{
		Count:   len(views),
		Entries: j.EntryCount(),
		Skipped: stats.Failed,
		Days:    views,
	}, nil
}

// --- preview_day ---

// PreviewDayInput is the input for the preview_day tool.
type PreviewDayInput struct {
	Journal string `json:"journal"         jsonschema:"path of the Daylio CSV export"`
	Date    string `json:"date"            jsonschema:"day to render, e.g. 2022-10-25"`
	Moods   string `json:"moods,omitempty" jsonschema:"path of a custom mood taxonomy (YAML or JSON)"`
}

// PreviewDayOutput is the output for the preview_day tool.
type PreviewDayOutput struct {
	Day export.DayView `json:"day" jsonschema:"the day with its entries and rendered Markdown"`
}

func (t *tools) handlePreviewDay(_ context.Context, _ *mcp.CallToolRequest, input PreviewDayInput) (*mcp.CallToolResult, PreviewDayOutput, error) {
	if input.Journal == "" || input.Date == "" {
		return nil, PreviewDayOutput{}, errors.New("journal and date are required")
	}

	j, _, err := t.converter(input.Moods).Read(input.Journal)
	if err != nil {
		return nil, PreviewDayOutput{}, fmt.Errorf("reading journal: %w", err)
	}
	day, err := j.Lookup(input.Date)
	if err != nil {
		return nil, PreviewDayOutput{}, err
	}
	view, err := export.ViewDay(day, "", true)
	if err != nil {
		return nil, PreviewDayOutput{}, fmt.Errorf("rendering %s: %w", day, err)
	}
	return nil, PreviewDayOutput{Day: view}, nil
}

// --- list_moods ---

// ListMoodsInput is the input for the list_moods tool.
type ListMoodsInput struct {
	Moods string `json:"moods,omitempty" jsonschema:"path of a custom mood taxonomy (YAML or JSON)"`
}

// MoodGroup lists the moods of one group.
type MoodGroup struct {
	Group string   `json:"group" jsonschema:"canonical group: rad, good, neutral, bad or awful"`
	Moods []string `json:"moods" jsonschema:"moods in the group, the group name first"`
}

// ListMoodsOutput is the output for the list_moods tool.
type ListMoodsOutput struct {
	Standard bool              `json:"standard" jsonschema:"true when no custom moods are in use"`
	Groups   []MoodGroup       `json:"groups"   jsonschema:"moods per group in canonical order"`
	Custom   map[string]string `json:"custom"   jsonschema:"custom moods mapped to their group"`
}

func (t *tools) handleListMoods(_ context.Context, _ *mcp.CallToolRequest, input ListMoodsInput) (*mcp.CallToolResult, ListMoodsOutput, error) {
	moods := t.converter(input.Moods).Moods()
	out := ListMoodsOutput{
		Standard: moods.IsStandard(),
		Custom:   moods.CustomMoods(),
	}
	for _, group := range mood.Groups {
		out.Groups = append(out.Groups, MoodGroup{Group: group, Moods: moods.InGroup(group)})
	}
	return nil, out, nil
}

// --- convert ---

// ConvertInput is the input for the convert tool.
type ConvertInput struct {
	Journal     string `json:"journal"         jsonschema:"path of the Daylio CSV export"`
	Destination string `json:"destination"     jsonschema:"vault directory notes are written under"`
	Force       string `json:"force,omitempty" jsonschema:"what to do with changed notes: accept overwrites, reject keeps (default: configured mode, else reject)"`
	Moods       string `json:"moods,omitempty" jsonschema:"path of a custom mood taxonomy (YAML or JSON)"`
}

// ConvertOutput is the output for the convert tool.
type ConvertOutput struct {
	Result convert.Result `json:"result" jsonschema:"ingestion and export counts with per-note outcomes"`
}

func (t *tools) handleConvert(ctx context.Context, _ *mcp.CallToolRequest, input ConvertInput) (*mcp.CallToolResult, ConvertOutput, error) {
	if input.Journal == "" || input.Destination == "" {
		return nil, ConvertOutput{}, errors.New("journal and destination are required")
	}

	force, err := config.ParseForceMode(input.Force)
	if err != nil {
		return nil, ConvertOutput{}, err
	}
	if !force.IsSet() {
		force = t.opts.Force
	}
	if !force.IsSet() {
		// Nobody can answer a prompt over stdio.
		force = config.ForceReject
	}

	opts := t.opts
	opts.Force = force
	if input.Moods != "" {
		opts.Moods = input.Moods
	}

	result, err := convert.New(opts, t.logger).Convert(ctx, input.Journal, input.Destination, nil)
	if err != nil {
		return nil, ConvertOutput{Result: result}, fmt.Errorf("converting journal: %w", err)
	}
	return nil, ConvertOutput{Result: result}, nil
}
