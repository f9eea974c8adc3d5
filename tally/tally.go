// Package tally derives the displayed results of a poll snapshot.
package tally

import (
	"strconv"

	"github.com/votedapp/sponsorvote/common/types"
)

// NoWinner is the winner index of a poll without votes.
const NoWinner = -1

// Option is the result line of one option.
type Option struct {
	Index      int
	Letter     string
	Label      string
	Votes      uint64
	Percentage string
	Winner     bool
}

// Result of a poll.
type Result struct {
	Question string
	Options  []Option
	Total    uint64
	Winner   int
}

// Compute tallies a snapshot. A nil snapshot yields an empty result.
func Compute(snapshot *types.PollSnapshot) Result {
	res := Result{Winner: NoWinner}
	if snapshot == nil {
		return res
	}
	res.Question = snapshot.Question
	res.Total = Total(snapshot.VoteCounts)
	res.Winner = Winner(snapshot.VoteCounts)
	res.Options = make([]Option, len(snapshot.Options))
	for i, label := range snapshot.Options {
		var votes uint64
		if i < len(snapshot.VoteCounts) {
			votes = snapshot.VoteCounts[i]
		}
		res.Options[i] = Option{
			Index:      i,
			Letter:     Letter(i),
			Label:      label,
			Votes:      votes,
			Percentage: Percentage(votes, res.Total),
			Winner:     i == res.Winner,
		}
	}
	return res
}

// Total is the sum of all counts.
func Total(counts []uint64) uint64 {
	var total uint64
	for _, c := range counts {
		total += c
	}
	return total
}

// Percentage formats votes/total with one decimal, "0.0" when there are no votes.
func Percentage(votes, total uint64) string {
	if total == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(float64(votes)/float64(total)*100, 'f', 1, 64)
}

// Winner returns the first option with the most votes, NoWinner when nobody voted.
func Winner(counts []uint64) int {
	if Total(counts) == 0 {
		return NoWinner
	}
	winner := 0
	for i, c := range counts {
		if c > counts[winner] {
			winner = i
		}
	}
	return winner
}

// Letter labels option i: A..Z, then AA, AB and so on.
func Letter(i int) string {
	if i < 0 {
		return ""
	}
	var buf []byte
	for i++; i > 0; i = (i - 1) / 26 {
		buf = append([]byte{byte('A' + (i-1)%26)}, buf...)
	}
	return string(buf)
}

// VotesLabel renders a count as "1 vote" or "n votes".
func VotesLabel(n uint64) string {
	if n == 1 {
		return "1 vote"
	}
	return strconv.FormatUint(n, 10) + " votes"
}
