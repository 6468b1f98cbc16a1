package rules

// standardRules returns the four rules loaded into every Engine (§4.4):
// subclass transitivity, class inheritance, transitive property, and
// symmetric property — the latter two guarded by an explicit lookup of the
// relevant property-characteristic axiom rather than firing unconditionally.
func standardRules() []Rule {
	return []Rule{
		{
			Name:     "subclass_transitivity",
			Priority: 0,
			Conditions: []Pattern{
				{Kind: PatternSubClassOf, Sub: Var("a"), Super: Var("b")},
				{Kind: PatternSubClassOf, Sub: Var("b"), Super: Var("c")},
			},
			Consequences: []Consequence{
				{Kind: PatternSubClassOf, Sub: Var("a"), Super: Var("c")},
			},
		},
		{
			Name:     "class_inheritance",
			Priority: 1,
			Conditions: []Pattern{
				{Kind: PatternSubClassOf, Sub: Var("c"), Super: Var("d")},
				{Kind: PatternClassAssertion, Individual: Var("a"), Class: Var("c")},
			},
			Consequences: []Consequence{
				{Kind: PatternClassAssertion, Individual: Var("a"), Class: Var("d")},
			},
		},
		{
			Name:     "transitive_property",
			Priority: 2,
			Conditions: []Pattern{
				{Kind: PatternPropertyAssertion, Subject: Var("a"), Property: Var("prop"), Object: Var("b")},
				{Kind: PatternPropertyAssertion, Subject: Var("b"), Property: Var("prop"), Object: Var("c")},
			},
			Consequences: []Consequence{
				{Kind: PatternPropertyAssertion, Subject: Var("a"), Property: Var("prop"), Object: Var("c")},
			},
			Guard: func(b Binding) bool {
				_, ok := b[guardKeyTransitive]
				return ok
			},
		},
		{
			Name:     "symmetric_property",
			Priority: 3,
			Conditions: []Pattern{
				{Kind: PatternPropertyAssertion, Subject: Var("a"), Property: Var("prop"), Object: Var("b")},
			},
			Consequences: []Consequence{
				{Kind: PatternPropertyAssertion, Subject: Var("b"), Property: Var("prop"), Object: Var("a")},
			},
			Guard: func(b Binding) bool {
				_, ok := b[guardKeySymmetric]
				return ok
			},
		},
	}
}
