package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/clocky/internal/timew"
)

// newBeginCmd creates the begin command.
func newBeginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "begin",
		Short:   "Start tracking now, asking for tags and an annotation",
		GroupID: "entries",
		Long: `Start a new time entry interactively.

Prompts for space-separated tags and an optional annotation, then runs
"timew start <tags>" on the remote host. When an annotation is given it is
added to the new entry with "timew annotate @1".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBegin(cmd, a)
		},
	}
}

func runBegin(cmd *cobra.Command, a *app) error {
	questions := newAsker(cmd)
	tags, err := questions.ask(questionTags)
	if err != nil {
		return err
	}
	annotation, err := questions.ask(questionAnnotation)
	if err != nil {
		return err
	}

	req := timew.StartRequest{Tags: timew.SplitTags(tags), Annotation: annotation}
	if err := a.client().Begin(cmd.Context(), req); err != nil {
		return err
	}

	a.printer(cmd).Success("Started %s", describeTags(req.Tags))
	return nil
}

// describeTags renders tags for success messages.
func describeTags(tags []string) string {
	if len(tags) == 0 {
		return "untagged entry"
	}
	return strings.Join(tags, " ")
}
