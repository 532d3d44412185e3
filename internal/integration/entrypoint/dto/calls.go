package dto

import (
	"github.com/opsboard/backend/internal/application/usecase/calls"
	"github.com/opsboard/backend/internal/domain/entity"
)

// CallDayResponse represents one day of call statistics. Averages and
// percentiles are upstream-computed and relayed as-is.
type CallDayResponse struct {
	Date         string `json:"date"`
	Total        int    `json:"total"`
	Answered     int    `json:"answered"`
	Abandoned    int    `json:"abandoned"`
	AnswerRate   int    `json:"answer_rate"`
	AbandonRate  int    `json:"abandon_rate"`
	ASA          int    `json:"asa"`
	WaitedOver30 int    `json:"waited_over_30"`

	HoldAnsweredAvg    int `json:"hold_answered_avg"`
	HoldAnsweredMedian int `json:"hold_answered_median"`
	HoldAnsweredP90    int `json:"hold_answered_p90"`
	CallDurationAvg    int `json:"call_duration_avg"`
	CallDurationMedian int `json:"call_duration_median"`
	CallDurationP90    int `json:"call_duration_p90"`
}

// CallOverviewResponse represents the response for the call overview API.
type CallOverviewResponse struct {
	Days   []CallDayResponse    `json:"days"`
	Totals calls.OverviewTotals `json:"totals"`
}

// ToCallOverviewResponse converts a GetOverviewOutput to its DTO.
func ToCallOverviewResponse(output *calls.GetOverviewOutput) CallOverviewResponse {
	days := make([]CallDayResponse, len(output.Days))
	for i, d := range output.Days {
		days[i] = toCallDayResponse(d)
	}
	return CallOverviewResponse{
		Days:   days,
		Totals: output.Totals,
	}
}

func toCallDayResponse(d entity.CallDay) CallDayResponse {
	return CallDayResponse{
		Date:         d.Date.Format("2006-01-02"),
		Total:        d.Total,
		Answered:     d.Answered,
		Abandoned:    d.Abandoned,
		AnswerRate:   d.AnswerRate,
		AbandonRate:  d.AbandonRate,
		ASA:          d.ASA,
		WaitedOver30: d.WaitedOver30,

		HoldAnsweredAvg:    d.HoldAnsweredAvg,
		HoldAnsweredMedian: d.HoldAnsweredMedian,
		HoldAnsweredP90:    d.HoldAnsweredP90,
		CallDurationAvg:    d.CallDurationAvg,
		CallDurationMedian: d.CallDurationMedian,
		CallDurationP90:    d.CallDurationP90,
	}
}
