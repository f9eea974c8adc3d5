package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/votedapp/sponsorvote/ballot"
	"github.com/votedapp/sponsorvote/codec"
	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/session"
	"github.com/votedapp/sponsorvote/tally"
)

// parseOption accepts an option letter, a zero based index or an exact option label.
func parseOption(arg string, snapshot *types.PollSnapshot) (int, error) {
	arg = strings.TrimSpace(arg)
	for i, label := range snapshot.Options {
		if strings.EqualFold(arg, tally.Letter(i)) || arg == label {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(arg); err == nil && snapshot.ValidOption(i) {
		return i, nil
	}
	return 0, fmt.Errorf("unknown option %q", arg)
}

func printResults(w io.Writer, res tally.Result) {
	fmt.Fprintf(w, "%s\n", res.Question)
	for _, o := range res.Options {
		marker := " "
		if o.Winner {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s. %-24s %5s%%  %s\n", marker, o.Letter, o.Label, o.Percentage, tally.VotesLabel(o.Votes))
	}
	fmt.Fprintf(w, "Total: %s\n", tally.VotesLabel(res.Total))
}

func printView(w io.Writer, v session.View) {
	if v.Loading {
		fmt.Fprintln(w, "Loading poll...")
		return
	}
	printResults(w, tally.Result{Question: v.Question, Options: v.Options, Total: v.Total, Winner: v.Winner})
	switch {
	case !v.Connected:
	case v.HasVoted:
		fmt.Fprintf(w, "%s has voted\n", v.Address.ShortString())
	case v.VoteUnknown:
		fmt.Fprintf(w, "vote status of %s is unknown\n", v.Address.ShortString())
	default:
		fmt.Fprintf(w, "%s has not voted yet\n", v.Address.ShortString())
	}
	if v.Error != "" {
		fmt.Fprintf(w, "error: %s\n", v.Error)
	}
}

// describer renders sponsored transaction bytes for the signing prompt.
func describer(snapshot func() *types.PollSnapshot) func([]byte) string {
	return func(tx []byte) string {
		var data types.TransactionData
		if err := codec.Decode(tx, &data); err != nil {
			return "undecodable transaction: " + err.Error()
		}
		target, poll, option, err := ballot.ParseVote(data.Kind)
		if err != nil {
			return fmt.Sprintf("%d calls, not a vote", len(data.Kind.Calls))
		}
		label := "?"
		if poll := snapshot(); poll != nil && poll.ValidOption(int(option)) {
			label = poll.Options[option]
		}
		return fmt.Sprintf("%s on poll %s: option %s (%s), gas paid by %s",
			target, poll.ShortString(), tally.Letter(int(option)), label, data.GasOwner.ShortString())
	}
}
