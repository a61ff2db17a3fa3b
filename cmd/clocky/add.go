package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/clocky/internal/output"
	"github.com/gorewood/clocky/internal/timeexpr"
	"github.com/gorewood/clocky/internal/timew"
)

// newAddCmd creates the add command.
func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "add",
		Short:   "Record a finished entry, asking for its day and times",
		GroupID: "entries",
		Long: `Record a past time entry interactively.

Prompts for tags, a description, how many days ago the entry happened and
its start and end times. Times may be written as 9:00, 14:30, 6pm, 6:30pm,
6:30 pm or 18:30:00.

Runs "timew track <start> - <end> <tags>" on the remote host and then
annotates the entry with the description, if one was given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAdd(cmd, a)
		},
	}
}

func runAdd(cmd *cobra.Command, a *app) error {
	questions := newAsker(cmd)
	tags, err := questions.ask(questionTags)
	if err != nil {
		return err
	}
	description, err := questions.ask(questionDescription)
	if err != nil {
		return err
	}

	offsetInput, err := questions.ask(questionDaysAgo)
	if err != nil {
		return err
	}
	offset, err := timeexpr.ParseDayOffset(offsetInput)
	if err != nil {
		return output.NewUserErrorWithCause(err.Error(), err)
	}

	// Each time is resolved as soon as it is entered so a typo stops the
	// flow before anything reaches the remote host.
	now := a.now()
	start, err := resolveAnswer(questions, questionStart, now, offset)
	if err != nil {
		return err
	}
	end, err := resolveAnswer(questions, questionEnd, now, offset)
	if err != nil {
		return err
	}

	req := timew.TrackRequest{
		Tags:       timew.SplitTags(tags),
		Annotation: description,
		Start:      start,
		End:        end,
	}
	if err := a.client().Record(cmd.Context(), req); err != nil {
		return err
	}

	printer := a.printer(cmd)
	printer.Success("Tracked %s", describeTags(req.Tags))
	printer.KeyValue("Start", start)
	printer.KeyValue("End", end)
	return nil
}

func resolveAnswer(questions *asker, question string, now time.Time, offset int) (string, error) {
	raw, err := questions.ask(question)
	if err != nil {
		return "", err
	}
	stamp, err := timeexpr.ResolveTimestamp(now, offset, raw)
	if err != nil {
		return "", output.NewUserErrorWithCause(err.Error(), err)
	}
	return stamp, nil
}
