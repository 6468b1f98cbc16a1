package store

import (
	"github.com/c360studio/owl2store/query"
	"github.com/c360studio/owl2store/rules"
)

// RunRules runs a forward-chaining reasoning pass (§4.4) over a single
// named graph and returns both the derived facts and a query.Source that
// layers those facts over the graph's stored axioms, ready for a
// reasoning-enabled Query call.
func (s *GraphStore) RunRules(graphIRI string, engine *rules.Engine) (*rules.Result, query.Source, error) {
	if engine == nil {
		engine = rules.New()
		engine.SetMaxIterations(s.cfg.RuleEngine.MaxIterations)
	}

	o := s.Graph(graphIRI)
	result, err := engine.Run(o)
	if err != nil {
		return nil, nil, err
	}

	base := query.NewOntologySource(o)
	derived := query.NewDerivedFactsSource(base, query.DerivedFactsFromRuleResult(result))
	return result, derived, nil
}
