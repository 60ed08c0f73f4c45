package cli

import (
	"bytes"
	"fmt"

	"nestdnd/internal/dnd"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type replayStep struct {
	Event   string `json:"event" yaml:"event"`
	Changed bool   `json:"changed" yaml:"changed"`
	State   string `json:"state" yaml:"state"`
}

type replayResult struct {
	hierarchyDoc `yaml:",inline"`
	Steps        []replayStep `json:"steps,omitempty" yaml:"steps,omitempty"`
}

func newReplayCmd(app *App) *cobra.Command {
	var check bool
	var trace bool

	cmd := &cobra.Command{
		Use:   "replay <script|->",
		Short: "Apply a scripted drag event stream and print the resulting hierarchy",
		Long: `Reads a YAML (or JSON) list of drag events and feeds them, in order, to the
reconciler that backs the interactive list.

Each event has a type (start, over, end, cancel) and the ids involved:

  - type: start
    active: sub-item-0-1
  - type: over
    active: sub-item-0-1
    over: sub-item-3-0
  - type: end
    active: sub-item-0-1
    over: sub-item-3-0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			events, err := dnd.DecodeScript(bytes.NewReader(b))
			if err != nil {
				return err
			}

			rec := app.newReconciler()
			changes := 0
			var steps []replayStep
			for i, ev := range events {
				changed := rec.Apply(ev)
				if changed {
					changes++
				}
				if check {
					if err := rec.Model().Validate(); err != nil {
						return invariantError{step: i, event: ev.String(), err: err}
					}
				}
				if trace {
					steps = append(steps, replayStep{Event: ev.String(), Changed: changed, State: rec.State().String()})
				}
			}
			app.log.Info("replay done", zap.Int("events", len(events)), zap.Int("changes", changes))

			return writeOut(cmd, app, envelope{
				Data: replayResult{
					hierarchyDoc: hierarchyDoc{Items: rec.Model().Items()},
					Steps:        steps,
				},
				Meta: map[string]any{
					"events":  len(events),
					"changes": changes,
					"state":   rec.State().String(),
				},
				Hints: replayHints(len(events), changes),
			})
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Validate hierarchy invariants after every event")
	cmd.Flags().BoolVar(&trace, "trace", false, "Include a per-event trace in the output")
	return cmd
}

func replayHints(events, changes int) []string {
	if events > 0 && changes == 0 {
		return []string{fmt.Sprintf("none of the %d events changed the hierarchy; check that ids match `nestdnd show`", events)}
	}
	return nil
}
