package models

import (
	"math"

	"quantdec/internal/pages"
)

// PageListResponse is returned by GET /api/v1/pages.
type PageListResponse struct {
	Pages []pages.Page `json:"pages"`
}

// PageResponse is the JSON form of a rendered page.
// Undefined numbers (NaN) are encoded as null.
type PageResponse struct {
	Page     pages.Page    `json:"page"`
	Title    string        `json:"title"`
	Intro    string        `json:"intro,omitempty"`
	Notice   string        `json:"notice,omitempty"`
	Image    *ImageInfo    `json:"image,omitempty"`
	Params   *pages.Params `json:"params,omitempty"`
	Controls []ControlInfo `json:"controls,omitempty"`
	Metrics  []MetricInfo  `json:"metrics,omitempty"`
	Stats    *StatsInfo    `json:"stats,omitempty"`
	Series   []SeriesData  `json:"series,omitempty"`
	Signals  []SignalInfo  `json:"signals,omitempty"`
}

type ImageInfo struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// ControlInfo describes a numeric input and its current value.
type ControlInfo struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
	Value   float64 `json:"value"`
}

type MetricInfo struct {
	Label   string   `json:"label"`
	Value   *float64 `json:"value"`
	Display string   `json:"display"`
}

// StatsInfo is the descriptive summary of the returns on the Performance page.
type StatsInfo struct {
	Count    int      `json:"count"`
	Mean     *float64 `json:"mean"`
	StdDev   *float64 `json:"std_dev"`
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	P05      *float64 `json:"p05"`
	P95      *float64 `json:"p95"`
	Positive *float64 `json:"positive"`
}

// SeriesData is one plotted line. Values[i] sits at x = i; a moving
// average's leading gap is encoded as nulls.
type SeriesData struct {
	Name   string     `json:"name"`
	Values []*float64 `json:"values"`
}

type SignalInfo struct {
	Index int      `json:"index"`
	Kind  string   `json:"kind"`
	Price *float64 `json:"price"`
	Short *float64 `json:"short"`
	Long  *float64 `json:"long"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes used in ErrorDetail.Code.
const (
	CodePageNotFound   = "PAGE_NOT_FOUND"
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeRenderError    = "RENDER_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

// Nullable returns nil for values JSON cannot carry (NaN, ±Inf).
func Nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func NullableSlice(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		out[i] = Nullable(v)
	}
	return out
}

// NewPageResponse converts a rendered view to its JSON form.
func NewPageResponse(v *pages.View) PageResponse {
	resp := PageResponse{
		Page:   v.Page,
		Title:  v.Heading,
		Intro:  v.Intro,
		Notice: v.Notice,
	}
	if v.Image != nil {
		resp.Image = &ImageInfo{URL: v.Image.URL, Caption: v.Image.Caption}
	}
	if len(v.Controls) > 0 {
		p := v.Params
		resp.Params = &p
	}
	for _, c := range v.Controls {
		resp.Controls = append(resp.Controls, ControlInfo{
			Name:    c.Name,
			Label:   c.Label,
			Min:     c.Min,
			Max:     c.Max,
			Step:    c.Step,
			Default: c.Default,
			Value:   c.Value,
		})
	}
	for _, m := range v.Metrics {
		resp.Metrics = append(resp.Metrics, MetricInfo{
			Label:   m.Label,
			Value:   Nullable(m.Value),
			Display: m.Display,
		})
	}
	for _, s := range v.Signals {
		resp.Signals = append(resp.Signals, SignalInfo{
			Index: s.Index,
			Kind:  string(s.Kind),
			Price: Nullable(s.Price),
			Short: Nullable(s.Short),
			Long:  Nullable(s.Long),
		})
	}

	switch {
	case v.Strategy != nil:
		resp.Series = []SeriesData{
			{Name: "Price", Values: NullableSlice(v.Strategy.Price)},
			{Name: "SMA_Short", Values: NullableSlice(v.Strategy.Short.Values)},
			{Name: "SMA_Long", Values: NullableSlice(v.Strategy.Long.Values)},
		}
	case v.Simulation != nil:
		resp.Series = []SeriesData{
			{Name: "Account Balance", Values: NullableSlice(v.Simulation.Balance)},
		}
	case v.Performance != nil:
		resp.Series = []SeriesData{
			{Name: "Returns", Values: NullableSlice(v.Performance.Returns)},
			{Name: "Cumulative Returns", Values: NullableSlice(v.Performance.Cumulative)},
		}
		d := v.Performance.Stats
		resp.Stats = &StatsInfo{
			Count:    d.Count,
			Mean:     Nullable(d.Mean),
			StdDev:   Nullable(d.StdDev),
			Min:      Nullable(d.Min),
			Max:      Nullable(d.Max),
			P05:      Nullable(d.P05),
			P95:      Nullable(d.P95),
			Positive: Nullable(d.Positive),
		}
	}
	return resp
}
