package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/gorewood/clocky/internal/output"
	"github.com/gorewood/clocky/internal/prompt"
)

// Questions asked by the interactive commands.
const (
	questionTags        = "Enter tags (space-separated)"
	questionAnnotation  = "Enter annotation"
	questionDescription = "Enter description"
	questionDaysAgo     = "Days ago (0 = today)"
	questionStart       = "Start time (e.g. 9:00, 9am)"
	questionEnd         = "End time (e.g. 17:30, 5:30 pm)"
)

// asker wraps a Prompter so command code reads as a sequence of questions.
type asker struct {
	ctx      context.Context
	prompter prompt.Prompter
}

func newAsker(cmd *cobra.Command) *asker {
	return &asker{
		ctx:      cmd.Context(),
		prompter: prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
	}
}

// ask returns the trimmed answer to question.
func (a *asker) ask(question string) (string, error) {
	answer, err := a.prompter.Ask(a.ctx, question)
	if err == nil {
		return answer, nil
	}
	if errors.Is(err, prompt.ErrAborted) {
		return "", output.Quiet(output.NewUserErrorWithCause("aborted", err))
	}
	return "", output.NewUserErrorWithCause(err.Error(), err)
}
