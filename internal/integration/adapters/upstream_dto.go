package adapters

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opsboard/backend/internal/domain/entity"
	"github.com/opsboard/backend/internal/domain/valueobject"
)

// dateOnly matches the upstream "data" fields.
const dateOnly = "2006-01-02"

// flexAmount tolerates the upstream's loose number encoding: JSON numbers,
// numeric strings, null and malformed values all decode, with anything
// unusable coerced to zero so one bad record cannot sink a whole response.
type flexAmount struct {
	decimal.Decimal
}

func (a *flexAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		a.Decimal = d
		return nil
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// flexMoneyMap decodes a currency→amount object. Anything that is not a JSON
// object decodes to nil, which the aggregation folds treat as an absent map.
type flexMoneyMap valueobject.MoneyMap

func (m *flexMoneyMap) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		*m = nil
		return nil
	}
	var raw map[string]flexAmount
	if err := json.Unmarshal(data, &raw); err != nil {
		*m = nil
		return nil
	}
	out := valueobject.NewMoneyMap()
	for code, amount := range raw {
		out[code] = amount.Decimal
	}
	*m = flexMoneyMap(out)
	return nil
}

func (m flexMoneyMap) toMoneyMap() valueobject.MoneyMap {
	if m == nil {
		return nil
	}
	return valueobject.MoneyMap(m)
}

// flexDate decodes the upstream "data" fields, which arrive either as a bare
// day ("2026-03-14") or a full timestamp.
type flexDate struct {
	time.Time
}

func (d *flexDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil || s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		d.Time = t
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	d.Time = time.Time{}
	return nil
}

func (d *flexDate) ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

type exerciseDTO struct {
	ID       int64     `json:"id"`
	Date     flexDate  `json:"data"`
	Active   bool      `json:"activ"`
	OpenedAt *flexDate `json:"deschis_la"`
	ClosedAt *flexDate `json:"inchis_la"`
	Notes    string    `json:"observatii"`
}

func (d *exerciseDTO) toEntity() *entity.Exercise {
	return &entity.Exercise{
		ID:       d.ID,
		Date:     d.Date.Time,
		Active:   d.Active,
		OpenedAt: d.OpenedAt.ptr(),
		ClosedAt: d.ClosedAt.ptr(),
		Notes:    d.Notes,
	}
}

type categoryBreakdownDTO struct {
	CategoryID    int64        `json:"categorie_id"`
	CategoryName  string       `json:"nume"`
	CategoryColor string       `json:"culoare"`
	PaidTotal     flexMoneyMap `json:"total_platit"`
	UnpaidTotal   flexMoneyMap `json:"total_neplatit"`
	GrandTotal    flexMoneyMap `json:"total"`
}

type expenseReportDTO struct {
	ExerciseID   int64                  `json:"exercitiu_id"`
	Date         flexDate               `json:"data"`
	Active       bool                   `json:"activ"`
	Categories   []categoryBreakdownDTO `json:"categorii"`
	PaidTotal    flexMoneyMap           `json:"total_platit"`
	UnpaidTotal  flexMoneyMap           `json:"total_neplatit"`
	BalanceTotal flexMoneyMap           `json:"total_sold"`
}

func (d *expenseReportDTO) toEntity() *entity.ExpenseReport {
	categories := make([]entity.CategoryBreakdown, 0, len(d.Categories))
	for _, c := range d.Categories {
		color := c.CategoryColor
		if color == "" {
			color = entity.DefaultCategoryColor
		}
		categories = append(categories, entity.CategoryBreakdown{
			CategoryID:    c.CategoryID,
			CategoryName:  c.CategoryName,
			CategoryColor: color,
			PaidTotal:     c.PaidTotal.toMoneyMap(),
			UnpaidTotal:   c.UnpaidTotal.toMoneyMap(),
			GrandTotal:    c.GrandTotal.toMoneyMap(),
		})
	}
	return &entity.ExpenseReport{
		ExerciseID:   d.ExerciseID,
		Date:         d.Date.Time,
		Active:       d.Active,
		Categories:   categories,
		PaidTotal:    d.PaidTotal.toMoneyMap(),
		UnpaidTotal:  d.UnpaidTotal.toMoneyMap(),
		BalanceTotal: d.BalanceTotal.toMoneyMap(),
	}
}

type walletBalanceDTO struct {
	WalletID     int64        `json:"portofel_id"`
	WalletName   string       `json:"nume"`
	TotalBalance flexMoneyMap `json:"sold_total"`
	TodayBalance flexMoneyMap `json:"sold_zi_curenta"`
}

func (d *walletBalanceDTO) toEntity() entity.WalletBalance {
	return entity.WalletBalance{
		WalletID:     d.WalletID,
		WalletName:   d.WalletName,
		TotalBalance: d.TotalBalance.toMoneyMap(),
		TodayBalance: d.TodayBalance.toMoneyMap(),
	}
}

type topUpDTO struct {
	ID           int64      `json:"id"`
	WalletID     int64      `json:"portofel_id"`
	Amount       flexAmount `json:"suma"`
	CurrencyCode string     `json:"moneda"`
	Comment      string     `json:"comentarii"`
	CreatedAt    *flexDate  `json:"created_at"`
}

func (d *topUpDTO) toEntity() entity.TopUp {
	code := d.CurrencyCode
	if code == "" {
		code = valueobject.DefaultCurrency
	}
	topUp := entity.TopUp{
		ID:           d.ID,
		WalletID:     d.WalletID,
		Amount:       d.Amount.Decimal,
		CurrencyCode: code,
		Comment:      d.Comment,
	}
	if t := d.CreatedAt.ptr(); t != nil {
		topUp.CreatedAt = *t
	}
	return topUp
}

type transferDTO struct {
	ID               int64       `json:"id"`
	SourceWalletID   int64       `json:"portofel_sursa_id"`
	DestWalletID     int64       `json:"portofel_dest_id"`
	Amount           flexAmount  `json:"suma"`
	CurrencyCode     string      `json:"moneda"`
	DestAmount       *flexAmount `json:"suma_dest"`
	DestCurrencyCode string      `json:"moneda_dest"`
	Comment          string      `json:"comentarii"`
	CreatedAt        *flexDate   `json:"created_at"`
}

func (d *transferDTO) toEntity() entity.Transfer {
	code := d.CurrencyCode
	if code == "" {
		code = valueobject.DefaultCurrency
	}
	transfer := entity.Transfer{
		ID:               d.ID,
		SourceWalletID:   d.SourceWalletID,
		DestWalletID:     d.DestWalletID,
		Amount:           d.Amount.Decimal,
		CurrencyCode:     code,
		DestCurrencyCode: d.DestCurrencyCode,
		Comment:          d.Comment,
	}
	if d.DestAmount != nil {
		amount := d.DestAmount.Decimal
		transfer.DestAmount = &amount
	}
	if t := d.CreatedAt.ptr(); t != nil {
		transfer.CreatedAt = *t
	}
	return transfer
}

type walletDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"nume"`
	Description string `json:"descriere"`
	Order       int    `json:"ordine"`
	Active      bool   `json:"activ"`
}

func (d *walletDTO) toEntity() entity.Wallet {
	return entity.Wallet{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Order:       d.Order,
		Active:      d.Active,
	}
}

type categoryDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"nume"`
	Color          string `json:"culoare"`
	AffectsBalance bool   `json:"afecteaza_sold"`
	Order          int    `json:"ordine"`
	Active         bool   `json:"activ"`
}

func (d *categoryDTO) toEntity() entity.Category {
	color := d.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}
	return entity.Category{
		ID:             d.ID,
		Name:           d.Name,
		Color:          color,
		AffectsBalance: d.AffectsBalance,
		Order:          d.Order,
		Active:         d.Active,
	}
}

type currencyLabelDTO struct {
	Code  string `json:"cod"`
	Label string `json:"eticheta"`
}

func (d *currencyLabelDTO) toEntity() entity.CurrencyLabel {
	return entity.CurrencyLabel{Code: d.Code, Label: d.Label}
}

type callDayDTO struct {
	Date         flexDate `json:"data"`
	Total        int      `json:"total"`
	Answered     int      `json:"raspunse"`
	Abandoned    int      `json:"abandonate"`
	AnswerRate   int      `json:"rata_raspuns"`
	AbandonRate  int      `json:"rata_abandon"`
	ASA          int      `json:"asa"`
	WaitedOver30 int      `json:"peste_30s"`

	HoldAnsweredAvg    int `json:"asteptare_medie"`
	HoldAnsweredMedian int `json:"asteptare_mediana"`
	HoldAnsweredP90    int `json:"asteptare_p90"`
	CallDurationAvg    int `json:"durata_medie"`
	CallDurationMedian int `json:"durata_mediana"`
	CallDurationP90    int `json:"durata_p90"`
}

func (d *callDayDTO) toEntity() entity.CallDay {
	return entity.CallDay{
		Date:               d.Date.Time,
		Total:              d.Total,
		Answered:           d.Answered,
		Abandoned:          d.Abandoned,
		AnswerRate:         d.AnswerRate,
		AbandonRate:        d.AbandonRate,
		ASA:                d.ASA,
		WaitedOver30:       d.WaitedOver30,
		HoldAnsweredAvg:    d.HoldAnsweredAvg,
		HoldAnsweredMedian: d.HoldAnsweredMedian,
		HoldAnsweredP90:    d.HoldAnsweredP90,
		CallDurationAvg:    d.CallDurationAvg,
		CallDurationMedian: d.CallDurationMedian,
		CallDurationP90:    d.CallDurationP90,
	}
}
