package server

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/tensorplex-labs/topsis/internal/topsis"
	"github.com/tensorplex-labs/topsis/internal/validate"
	"github.com/tensorplex-labs/topsis/pkg/api"
)

func (s *Server) handleRank(_ *fiber.Ctx, req api.RankRequest) (api.RankResponse, error) {
	decision, alternatives, err := decisionFromRequest(req)
	if err != nil {
		return api.RankResponse{}, err
	}

	result, err := s.engine.ComputeDecision(decision)
	if err != nil {
		return api.RankResponse{}, err
	}

	rounded := result.Rounded()
	resp := api.RankResponse{Results: make([]api.Ranking, len(alternatives))}
	for i, alternative := range alternatives {
		resp.Results[i] = api.Ranking{
			Alternative: alternative,
			Score:       rounded[i],
			Rank:        result.Ranks[i],
		}
	}

	log.Debug().
		Int("alternatives", len(alternatives)).
		Int("criteria", len(decision.Weights)).
		Msg("ranked request")
	return resp, nil
}

func decisionFromRequest(req api.RankRequest) (topsis.Decision, []string, error) {
	if err := validate.Matrix(req.Matrix); err != nil {
		return topsis.Decision{}, nil, err
	}
	if err := validate.Weights(req.Weights); err != nil {
		return topsis.Decision{}, nil, err
	}
	impacts, err := validate.Impacts(req.Impacts)
	if err != nil {
		return topsis.Decision{}, nil, err
	}

	rows, cols := len(req.Matrix), len(req.Matrix[0])
	if err := validate.Counts(len(req.Weights), len(impacts), cols); err != nil {
		return topsis.Decision{}, nil, err
	}

	alternatives := req.Alternatives
	switch len(alternatives) {
	case 0:
		alternatives = make([]string, rows)
		for i := range alternatives {
			alternatives[i] = fmt.Sprintf("A%d", i+1)
		}
	case rows:
	default:
		return topsis.Decision{}, nil, fmt.Errorf("%w: %d alternatives for %d matrix rows",
			validate.ErrStructural, len(alternatives), rows)
	}

	data := make([]float64, 0, rows*cols)
	for _, row := range req.Matrix {
		data = append(data, row...)
	}

	return topsis.Decision{
		Matrix:  mat.NewDense(rows, cols, data),
		Weights: req.Weights,
		Impacts: impacts,
	}, alternatives, nil
}

// statusFor maps validation failures to 400 and numeric degeneracy to 422.
func statusFor(err error) int {
	switch {
	case errors.Is(err, validate.ErrStructural),
		errors.Is(err, topsis.ErrDimensionMismatch),
		errors.Is(err, topsis.ErrInvalidImpact),
		errors.Is(err, topsis.ErrEmptyMatrix):
		return fiber.StatusBadRequest
	case errors.Is(err, topsis.ErrDegenerateColumn),
		errors.Is(err, topsis.ErrDegenerateDistance),
		errors.Is(err, topsis.ErrNonFinite):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}
