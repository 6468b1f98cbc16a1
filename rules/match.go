package rules

import "github.com/c360studio/owl2store/iri"

// extendBindings enumerates ground facts (ontology axioms union derived
// facts) matching cond under each binding in bindings, extending each with
// the newly bound variables; inconsistent extensions are dropped (§4.4
// "Matching algorithm").
func extendBindings(bindings []Binding, cond Pattern, o OntologySource, df *derivedFacts) []Binding {
	var out []Binding
	for _, b := range bindings {
		out = append(out, matchOne(b, cond, o, df)...)
	}
	return out
}

func matchOne(b Binding, cond Pattern, o OntologySource, df *derivedFacts) []Binding {
	switch cond.Kind {
	case PatternClassAssertion:
		return matchClassAssertion(b, cond, o, df)
	case PatternPropertyAssertion:
		return matchPropertyAssertion(b, cond, o, df)
	case PatternSubClassOf:
		return matchSubClassOf(b, cond, o, df)
	}
	return nil
}

func matchClassAssertion(b Binding, cond Pattern, o OntologySource, df *derivedFacts) []Binding {
	var out []Binding
	seen := make(map[classAssertionFact]bool)

	try := func(individual, class *iri.Handle) {
		key := classAssertionFact{individual.As(), class.As()}
		if seen[key] {
			return
		}
		if ext, ok := tryBind(b, cond.Individual, individual); ok {
			if ext2, ok2 := tryBind(ext, cond.Class, class); ok2 {
				seen[key] = true
				out = append(out, ext2)
			}
		}
	}

	for _, ca := range o.ClassAssertions() {
		if ca.Class == nil || ca.Class.Named == nil || ca.Individual == nil {
			continue
		}
		try(ca.Individual, ca.Class.Named)
	}
	for _, e := range df.newClassAssertions {
		try(e.individual, e.class)
	}
	return out
}

func matchPropertyAssertion(b Binding, cond Pattern, o OntologySource, df *derivedFacts) []Binding {
	var out []Binding
	seen := make(map[propertyAssertionFact]bool)

	try := func(subj, prop, obj *iri.Handle) {
		key := propertyAssertionFact{subj.As(), prop.As(), obj.As()}
		if seen[key] {
			return
		}
		ext, ok := tryBind(b, cond.Subject, subj)
		if !ok {
			return
		}
		ext, ok = tryBind(ext, cond.Property, prop)
		if !ok {
			return
		}
		ext, ok = tryBind(ext, cond.Object, obj)
		if !ok {
			return
		}
		seen[key] = true
		out = append(out, ext)
	}

	for _, pa := range o.ObjectPropertyAssertions() {
		try(pa.Subject, pa.Property, pa.Object)
	}
	for _, e := range df.newPropertyAssertions {
		try(e.subject, e.property, e.object)
	}
	return out
}

func matchSubClassOf(b Binding, cond Pattern, o OntologySource, df *derivedFacts) []Binding {
	var out []Binding
	seen := make(map[subClassFact]bool)

	try := func(sub, super *iri.Handle) {
		key := subClassFact{sub.As(), super.As()}
		if seen[key] {
			return
		}
		ext, ok := tryBind(b, cond.Sub, sub)
		if !ok {
			return
		}
		ext, ok = tryBind(ext, cond.Super, super)
		if !ok {
			return
		}
		seen[key] = true
		out = append(out, ext)
	}

	// Only named-class subclass axioms participate in rule matching — §4.4
	// patterns bind IRIs, not anonymous class expressions.
	for _, sc := range o.SubClassAxioms() {
		if sc.Sub == nil || sc.Super == nil || sc.Sub.Named == nil || sc.Super.Named == nil {
			continue
		}
		try(sc.Sub.Named, sc.Super.Named)
	}
	for _, e := range df.newSubClass {
		try(e.sub, e.super)
	}
	return out
}

// tryBind extends b with t→value if t is a variable not yet bound;
// if t is a variable already bound, it succeeds only when the existing
// binding agrees with value (consistency check). If t is a constant, it
// succeeds only when the constant equals value.
func tryBind(b Binding, t Term, value *iri.Handle) (Binding, bool) {
	if !t.IsVariable() {
		if t.Constant == nil || !t.Constant.Equal(value) {
			return nil, false
		}
		return b, true
	}
	if existing, ok := b[t.Variable]; ok {
		if !existing.Equal(value) {
			return nil, false
		}
		return b, true
	}
	ext := b.Clone()
	ext[t.Variable] = value
	return ext, true
}
