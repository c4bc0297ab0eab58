package cmd

import (
	"github.com/etnz/vanguard/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	csv := predict.Files("*.csv")
	topics, _ := docs.List()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"v":         predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"convert": {
				Flags: map[string]complete.Predictor{
					"i": predict.Files("*.txt"),
					"o": csv,
				},
			},
			"tx": {
				Flags: map[string]complete.Predictor{
					"type":     predict.Set(typeNames()),
					"jsonpath": predict.Something,
					"md":       predict.Nothing,
				},
				Args: csv,
			},
			"topic": {
				Flags: map[string]complete.Predictor{
					"list": predict.Nothing,
				},
				Args: predict.Set(append(topics, "*")),
			},
			"summary": {
				Flags: map[string]complete.Predictor{
					"raw": predict.Nothing,
				},
				Args: csv,
			},
		},
	}
}
