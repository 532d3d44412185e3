package entity

import "time"

// CallDay is one day of call-center statistics, computed entirely upstream.
// This service consumes the counters and re-sums them over date ranges; the
// averages and percentiles are rendered verbatim, never recomputed.
type CallDay struct {
	Date         time.Time
	Total        int
	Answered     int
	Abandoned    int
	AnswerRate   int
	AbandonRate  int
	ASA          int
	WaitedOver30 int

	HoldAnsweredAvg    int
	HoldAnsweredMedian int
	HoldAnsweredP90    int
	CallDurationAvg    int
	CallDurationMedian int
	CallDurationP90    int
}
