package cmd

import (
	"context"

	"github.com/etnz/moneypool"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes psplit for shell completion. Install it with
// COMP_INSTALL=1 psplit.
func Completion() *complete.Command {
	members := complete.PredictFunc(predictMembers)
	currencies := predict.Set(currencyCodes())
	entry := map[string]complete.Predictor{
		"t": predict.Nothing,
		"p": members,
		"r": members,
		"a": predict.Nothing,
		"c": currencies,
		"d": predict.Set{"0d", "-1d", "-2d"},
	}
	purchase := map[string]complete.Predictor{"all": predict.Nothing}
	for k, v := range entry {
		purchase[k] = v
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"f":     predict.Files("*.json"),
			"store": predict.Set{"file", "sqlite"},
			"db":    predict.Files("*.db"),
			"g":     predict.Nothing,
			"v":     predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"init": {Flags: map[string]complete.Predictor{
				"name":        predict.Nothing,
				"description": predict.Nothing,
				"currency":    currencies,
				"force":       predict.Nothing,
			}},
			"member":     {},
			"groups":     {},
			"rate":       {Flags: map[string]complete.Predictor{"c": currencies, "r": predict.Nothing}},
			"purchase":   {Flags: purchase},
			"transfer":   {Flags: entry},
			"undo":       {Flags: map[string]complete.Predictor{"kind": predict.Set{"purchase", "transfer"}}},
			"settle":     {Flags: map[string]complete.Predictor{"all": predict.Nothing}},
			"show":       {Flags: map[string]complete.Predictor{"plain": predict.Nothing, "short": predict.Nothing}},
			"export":     {Flags: map[string]complete.Predictor{"o": predict.Files("*.html"), "md": predict.Nothing}},
			"query":      {Args: predict.Set{"$.members[*].name", "$.purchases[*].title", "$.exchange_rates"}},
			"fmt":        {},
			"currencies": {Flags: map[string]complete.Predictor{"by-symbol": predict.Nothing}},
			"topic":      {Args: predict.Set{"document", "settlement", "storage", "extensions"}},
			"help":       {},
		},
	}
}

func currencyCodes() []string {
	var codes []string
	for _, c := range pool.Currencies() {
		codes = append(codes, c.Code())
	}
	return codes
}

// predictMembers suggests the member names of the configured group. Flags
// are not parsed during completion, so only the environment is used.
func predictMembers(prefix string) []string {
	s, g, err := LoadGroup(context.Background())
	if err != nil {
		return nil
	}
	defer s.Close()
	return g.MemberNames()
}
