package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/topsis/internal/config"
	"github.com/tensorplex-labs/topsis/internal/table"
	"github.com/tensorplex-labs/topsis/internal/topsis"
	"github.com/tensorplex-labs/topsis/internal/utils/logger"
	"github.com/tensorplex-labs/topsis/internal/validate"
)

const usage = `Usage: topsis <InputDataFile> <Weights> <Impacts> <ResultFileName>
Example: topsis 101556-data.csv "1,1,1,2" "+,+,-,+" 101556-result.csv`

func main() {
	if len(os.Args) != 5 {
		fmt.Println(usage)
		os.Exit(1)
	}

	// the command takes no configuration beyond log verbosity
	logCfg, err := config.LoadLogConfig(context.Background())
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	logger.Init(logCfg.Environment, logCfg.LogLevel)

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Debug().Err(err).Msg("topsis failed")
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

// run scores inputFile and writes the result. args are the four positional
// arguments: input path, weights, impacts, output path.
func run(args []string, stdout io.Writer) error {
	if len(args) != 4 {
		return fmt.Errorf("%w: expected 4 arguments, got %d", validate.ErrStructural, len(args))
	}
	inputFile, rawWeights, rawImpacts, outputFile := args[0], args[1], args[2], args[3]

	opts := table.DefaultOptions()

	t, err := table.Read(inputFile, opts)
	if err != nil {
		return err
	}

	weights, impacts, err := validate.Decision(len(t.Header), rawWeights, rawImpacts)
	if err != nil {
		return err
	}

	result, err := topsis.Compute(t.Matrix, weights, impacts)
	if err != nil {
		return err
	}

	if err := table.Write(outputFile, t, result, opts); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "File saved successfully as %s\n", outputFile)
	return nil
}
