// Package api holds the wire types shared by the ranking server and client.
package api

const (
	HealthPath = "/health"
	RankPath   = "/rank"

	StatusOK = "ok"
)

// StdResponse represents the standardized response structure
type StdResponse[T any] struct {
	Body  T       `json:"body"`
	Error *string `json:"error,omitempty"`
}

// RankRequest is a decision problem: one matrix row per alternative, one
// weight and one impact ("+" or "-") per criterion column.
type RankRequest struct {
	Alternatives []string    `json:"alternatives,omitempty"`
	Matrix       [][]float64 `json:"matrix"`
	Weights      []float64   `json:"weights"`
	Impacts      []string    `json:"impacts"`
}

// RankResponse lists the alternatives in request order.
type RankResponse struct {
	Results []Ranking `json:"results"`
}

type Ranking struct {
	Alternative string  `json:"alternative"`
	Score       float64 `json:"score"`
	Rank        int     `json:"rank"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// NewResponse wraps body, recording err's message when err is not nil.
func NewResponse[T any](body T, err error) StdResponse[T] {
	if err != nil {
		errMsg := err.Error()
		return StdResponse[T]{
			Body:  body,
			Error: &errMsg,
		}
	}
	return StdResponse[T]{
		Body:  body,
		Error: nil,
	}
}
