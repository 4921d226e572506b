package main

import (
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/moodmark/internal/mood"
	"github.com/gorewood/moodmark/internal/output"
)

// moodsResult is the JSON form of the moods command.
type moodsResult struct {
	Standard bool                `json:"standard"`
	File     string              `json:"file,omitempty"`
	Groups   map[string][]string `json:"groups"`
	Custom   map[string]string   `json:"custom"`
}

// newMoodsCmd creates the moods command.
func newMoodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moods",
		Short: "Show the mood taxonomy entries are classified with",
		Long: `Show every known mood grouped under the five Daylio groups.

A custom taxonomy (--moods or MOODMARK_MOODS) adds moods to the groups it
names; moods that are already known keep their group.

Examples:
  moodmark moods
  moodmark moods --moods ~/.config/moodmark/moods.yaml --json`,
		Args: cobra.NoArgs,
		RunE: runMoods,
	}
}

func runMoods(cmd *cobra.Command, _ []string) error {
	env, err := newRunEnv(cmd)
	if err != nil {
		return err
	}

	registry := env.converter().Moods()
	if env.printer.IsJSON() {
		result := moodsResult{
			Standard: registry.IsStandard(),
			File:     env.opts.Moods,
			Groups:   make(map[string][]string, len(mood.Groups)),
			Custom:   registry.CustomMoods(),
		}
		for _, group := range mood.Groups {
			result.Groups[group] = registry.InGroup(group)
		}
		return env.printer.WriteJSON(result)
	}

	printMoods(env.printer, registry)
	return nil
}

func printMoods(printer *output.Printer, registry *mood.Registry) {
	custom := registry.CustomMoods()
	rows := make([][]string, 0, len(mood.Groups))
	for _, group := range mood.Groups {
		names := registry.InGroup(group)
		for i, name := range names {
			if _, ok := custom[name]; ok {
				names[i] = name + "*"
			}
		}
		rows = append(rows, []string{
			mood.Marker(group) + " " + printer.Paint(mood.TerminalColour(group), group),
			strings.Join(names, ", "),
		})
	}

	printer.Table([]string{"GROUP", "MOODS"}, rows)
	if !registry.IsStandard() {
		printer.Println()
		printer.Print("%s\n", printer.Dim("* custom: "+strings.Join(slices.Sorted(maps.Keys(custom)), ", ")))
	}
}
