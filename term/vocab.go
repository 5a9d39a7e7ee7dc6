package term

// Reserved IRIs the core assigns fixed meaning to.
const (
	// RDFNamespace is the RDF syntax vocabulary namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	RDFSubject   = RDFNamespace + "subject"
	RDFPredicate = RDFNamespace + "predicate"
	RDFObject    = RDFNamespace + "object"
	RDFType      = RDFNamespace + "type"

	// ClaimsV1 is the explicit-ethos reification predicate: (issuer,
	// ClaimsV1, blank) asserts that issuer attests the triple reified
	// under blank.
	ClaimsV1 = "https://www.dock.io/rdf2020#claimsV1"

	// LogicV1 is the default property under which a presentation carries
	// its attached proof as a JSON literal. It has no config override:
	// the Expander oracle extracts the proof before the core sees it.
	LogicV1 = "https://www.dock.io/rdf2020#logicV1"

	// XSDString is the default datatype for a plain string literal.
	XSDString = "http://www.w3.org/2001/XMLSchema#string"
)
