package rules

import "github.com/c360studio/owl2store/iri"

type classAssertionFact struct {
	individual, class string
}

type propertyAssertionFact struct {
	subject, property, object string
}

type subClassFact struct {
	sub, super string
}

// derivedFacts tracks every fact the engine has inserted so far, keyed by
// string content, so re-derivation of an existing fact is a no-op (§4.4
// "Derivation").
type derivedFacts struct {
	classAssertions    map[classAssertionFact]bool
	propertyAssertions map[propertyAssertionFact]bool
	subClass           map[subClassFact]bool

	newClassAssertions    []struct{ individual, class *iri.Handle }
	newPropertyAssertions []struct{ subject, property, object *iri.Handle }
	newSubClass           []struct{ sub, super *iri.Handle }
}

func newDerivedFacts() *derivedFacts {
	return &derivedFacts{
		classAssertions:    make(map[classAssertionFact]bool),
		propertyAssertions: make(map[propertyAssertionFact]bool),
		subClass:           make(map[subClassFact]bool),
	}
}

// insertClassAssertion records (individual, class) if new, returning
// whether it was newly inserted.
func (d *derivedFacts) insertClassAssertion(individual, class *iri.Handle) bool {
	key := classAssertionFact{individual.As(), class.As()}
	if d.classAssertions[key] {
		return false
	}
	d.classAssertions[key] = true
	d.newClassAssertions = append(d.newClassAssertions, struct{ individual, class *iri.Handle }{individual, class})
	return true
}

func (d *derivedFacts) insertPropertyAssertion(subject, property, object *iri.Handle) bool {
	key := propertyAssertionFact{subject.As(), property.As(), object.As()}
	if d.propertyAssertions[key] {
		return false
	}
	d.propertyAssertions[key] = true
	d.newPropertyAssertions = append(d.newPropertyAssertions, struct{ subject, property, object *iri.Handle }{subject, property, object})
	return true
}

func (d *derivedFacts) insertSubClass(sub, super *iri.Handle) bool {
	key := subClassFact{sub.As(), super.As()}
	if d.subClass[key] {
		return false
	}
	d.subClass[key] = true
	d.newSubClass = append(d.newSubClass, struct{ sub, super *iri.Handle }{sub, super})
	return true
}

func (d *derivedFacts) hasClassAssertion(individual, class *iri.Handle) bool {
	return d.classAssertions[classAssertionFact{individual.As(), class.As()}]
}

func (d *derivedFacts) hasPropertyAssertion(subject, property, object *iri.Handle) bool {
	return d.propertyAssertions[propertyAssertionFact{subject.As(), property.As(), object.As()}]
}

func (d *derivedFacts) hasSubClass(sub, super *iri.Handle) bool {
	return d.subClass[subClassFact{sub.As(), super.As()}]
}
