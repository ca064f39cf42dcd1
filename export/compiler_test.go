package export

import (
	"errors"
	"testing"

	"github.com/c360studio/graphol/config"
	"github.com/c360studio/graphol/diagram"
	"github.com/c360studio/graphol/inference"
	"github.com/c360studio/graphol/owl"
)

const ns = "http://example.com/"

func build(t *testing.T, d *diagram.Diagram, nodes []*diagram.Node, edges []*diagram.Edge) {
	t.Helper()
	for _, n := range nodes {
		if err := d.AddNode(n); err != nil {
			t.Fatalf("AddNode(%s): %v", n.ID, err)
		}
	}
	for _, e := range edges {
		if err := d.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%s): %v", e.ID, err)
		}
	}
}

func predicate(id string, kind diagram.NodeKind) *diagram.Node {
	n := diagram.NewNode(id, kind)
	n.IRI = ns + id
	return n
}

func input(id, source, target string) *diagram.Edge {
	return &diagram.Edge{ID: id, Kind: diagram.EdgeInput, Source: source, Target: target}
}

// newTestCompiler resolves identities and wires a compiler over d.
func newTestCompiler(t *testing.T, d *diagram.Diagram) (*Compiler, *owl.AxiomSet) {
	t.Helper()
	inference.IdentifyAll(d)
	axioms := owl.NewAxiomSet()
	return NewCompiler(d, owl.NewFactory(), config.ExportConfig{}, axioms), axioms
}

func TestCompileAtomicNodes(t *testing.T) {
	d := diagram.New("test")
	lit := diagram.NewNode("lit", diagram.KindLiteral)
	lit.Literal = diagram.Literal{LexicalForm: "42", Datatype: "http://www.w3.org/2001/XMLSchema#integer"}
	build(t, d, []*diagram.Node{
		predicate("Person", diagram.KindConcept),
		predicate("knows", diagram.KindRole),
		predicate("age", diagram.KindAttribute),
		predicate("alice", diagram.KindIndividual),
		lit,
	}, nil)
	c, _ := newTestCompiler(t, d)

	tests := []struct {
		id   string
		want string
	}{
		{"Person", "<" + ns + "Person>"},
		{"knows", "<" + ns + "knows>"},
		{"age", "<" + ns + "age>"},
		{"alice", "<" + ns + "alice>"},
		{"lit", `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			expr, err := c.Compile(d.Node(tt.id))
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if expr.Key() != tt.want {
				t.Errorf("Key() = %s, want %s", expr.Key(), tt.want)
			}
		})
	}
}

func TestCompileRecordsDeclarations(t *testing.T) {
	d := diagram.New("test")
	build(t, d, []*diagram.Node{predicate("Person", diagram.KindConcept)}, nil)
	c, axioms := newTestCompiler(t, d)

	if _, err := c.Compile(d.Node("Person")); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := len(axioms.ByType(owl.AxiomDeclaration)); got != 1 {
		t.Errorf("declarations = %d, want 1", got)
	}
}

func TestCompileBuiltinsNotDeclared(t *testing.T) {
	d := diagram.New("test")
	thing := diagram.NewNode("thing", diagram.KindConcept)
	thing.IRI = "http://www.w3.org/2002/07/owl#Thing"
	build(t, d, []*diagram.Node{thing}, nil)
	c, axioms := newTestCompiler(t, d)

	expr, err := c.Compile(thing)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if expr.Key() != "<http://www.w3.org/2002/07/owl#Thing>" {
		t.Errorf("Key() = %s", expr.Key())
	}
	if axioms.Len() != 0 {
		t.Errorf("owl:Thing must not be declared, got %d axioms", axioms.Len())
	}
}

func TestCompileMemoizesSharedSubtrees(t *testing.T) {
	// Diamond: one concept feeds two intersections. The shared operand must
	// compile exactly once per pass.
	d := diagram.New("test")
	build(t, d, []*diagram.Node{
		predicate("Shared", diagram.KindConcept),
		predicate("A", diagram.KindConcept),
		predicate("B", diagram.KindConcept),
		diagram.NewNode("and1", diagram.KindIntersection),
		diagram.NewNode("and2", diagram.KindIntersection),
	}, []*diagram.Edge{
		input("e1", "Shared", "and1"),
		input("e2", "A", "and1"),
		input("e3", "Shared", "and2"),
		input("e4", "B", "and2"),
	})
	c, _ := newTestCompiler(t, d)

	if _, err := c.Compile(d.Node("and1")); err != nil {
		t.Fatalf("Compile(and1): %v", err)
	}
	first, cached := c.cache["Shared"]
	if !cached {
		t.Fatal("shared operand not memoized after first compile")
	}
	if _, err := c.Compile(d.Node("and2")); err != nil {
		t.Fatalf("Compile(and2): %v", err)
	}
	second := c.cache["Shared"]
	if first.Key() != second.Key() {
		t.Error("memoized expression changed between compiles")
	}
	if len(c.cache) != 5 {
		t.Errorf("cache holds %d entries, want 5 (one per node)", len(c.cache))
	}
}

func TestCompileComplementArity(t *testing.T) {
	tests := []struct {
		name     string
		operands int
		wantErr  error
	}{
		{"no operand", 0, ErrMissingOperand},
		{"one operand", 1, nil},
		{"two operands", 2, ErrTooManyOperands},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diagram.New("test")
			not := diagram.NewNode("not", diagram.KindComplement)
			nodes := []*diagram.Node{not}
			var edges []*diagram.Edge
			for i := 0; i < tt.operands; i++ {
				id := string(rune('A' + i))
				nodes = append(nodes, predicate(id, diagram.KindConcept))
				edges = append(edges, input("e"+id, id, "not"))
			}
			build(t, d, nodes, edges)
			c, _ := newTestCompiler(t, d)

			_, err := c.Compile(not)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Compile: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile() error = %v, want %v", err, tt.wantErr)
			}
			var dErr *DiagramError
			if !errors.As(err, &dErr) || dErr.ElementID != "not" {
				t.Errorf("error should carry the offending node, got %v", err)
			}
		})
	}
}

func TestCompileComplementRolePassthrough(t *testing.T) {
	d := diagram.New("test")
	build(t, d, []*diagram.Node{
		predicate("knows", diagram.KindRole),
		diagram.NewNode("not", diagram.KindComplement),
	}, []*diagram.Edge{
		input("e1", "knows", "not"),
	})
	c, _ := newTestCompiler(t, d)

	expr, err := c.Compile(d.Node("not"))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	// A role complement carries no expression-level negation; the operand
	// passes through and disjointness happens at the axiom level.
	if expr.Key() != "<"+ns+"knows>" {
		t.Errorf("Key() = %s, want the bare property", expr.Key())
	}
}

func TestCompileUnknownIdentityFails(t *testing.T) {
	d := diagram.New("test")
	build(t, d, []*diagram.Node{
		predicate("A", diagram.KindConcept),
		predicate("dt", diagram.KindValueDomain),
		diagram.NewNode("or", diagram.KindUnion),
	}, []*diagram.Edge{
		input("e1", "A", "or"),
		input("e2", "dt", "or"),
	})
	c, _ := newTestCompiler(t, d)

	_, err := c.Compile(d.Node("or"))
	if !errors.Is(err, ErrUnsupportedOperand) {
		t.Errorf("Compile() error = %v, want ErrUnsupportedOperand", err)
	}
}

func TestCompileEnumeration(t *testing.T) {
	t.Run("individuals", func(t *testing.T) {
		d := diagram.New("test")
		build(t, d, []*diagram.Node{
			predicate("alice", diagram.KindIndividual),
			predicate("bob", diagram.KindIndividual),
			diagram.NewNode("oneof", diagram.KindEnumeration),
		}, []*diagram.Edge{
			input("e1", "alice", "oneof"),
			input("e2", "bob", "oneof"),
		})
		c, _ := newTestCompiler(t, d)

		expr, err := c.Compile(d.Node("oneof"))
		if err != nil {
			t.Fatalf("Compile: %v", err)
		}
		want := "ObjectOneOf(<" + ns + "alice> <" + ns + "bob>)"
		if expr.Key() != want {
			t.Errorf("Key() = %s, want %s", expr.Key(), want)
		}
	})

	t.Run("literals", func(t *testing.T) {
		d := diagram.New("test")
		one := diagram.NewNode("one", diagram.KindLiteral)
		one.Literal = diagram.Literal{LexicalForm: "1", Datatype: "http://www.w3.org/2001/XMLSchema#integer"}
		two := diagram.NewNode("two", diagram.KindLiteral)
		two.Literal = diagram.Literal{LexicalForm: "2", Datatype: "http://www.w3.org/2001/XMLSchema#integer"}
		build(t, d, []*diagram.Node{one, two, diagram.NewNode("oneof", diagram.KindEnumeration)}, []*diagram.Edge{
			input("e1", "one", "oneof"),
			input("e2", "two", "oneof"),
		})
		c, _ := newTestCompiler(t, d)

		expr, err := c.Compile(d.Node("oneof"))
		if err != nil {
			t.Fatalf("Compile: %v", err)
		}
		if _, ok := expr.(owl.DataOneOf); !ok {
			t.Errorf("expected DataOneOf, got %T (%s)", expr, expr.Key())
		}
	})
}

func TestCompileDomainRestrictionCardinality(t *testing.T) {
	one, three := 1, 3
	tests := []struct {
		name     string
		min, max *int
		want     string
		wantErr  error
	}{
		{
			name: "min only",
			min:  &one,
			want: "ObjectMinCardinality(1 <" + ns + "knows> <http://www.w3.org/2002/07/owl#Thing>)",
		},
		{
			name: "both bounds",
			min:  &one,
			max:  &three,
			want: "ObjectIntersectionOf(ObjectMaxCardinality(3 <" + ns + "knows> <http://www.w3.org/2002/07/owl#Thing>) ObjectMinCardinality(1 <" + ns + "knows> <http://www.w3.org/2002/07/owl#Thing>))",
		},
		{
			name:    "no bounds",
			wantErr: ErrMissingCardinality,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diagram.New("test")
			dom := diagram.NewNode("dom", diagram.KindDomainRestriction)
			dom.Restriction = diagram.RestrictionCardinality
			dom.MinCardinality = tt.min
			dom.MaxCardinality = tt.max
			build(t, d, []*diagram.Node{predicate("knows", diagram.KindRole), dom}, []*diagram.Edge{
				input("e1", "knows", "dom"),
			})
			c, _ := newTestCompiler(t, d)

			expr, err := c.Compile(dom)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Compile() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if expr.Key() != tt.want {
				t.Errorf("Key() = %s, want %s", expr.Key(), tt.want)
			}
		})
	}
}

func TestCompileDataMaxCardinality(t *testing.T) {
	// A max bound over a data property must produce a data max cardinality,
	// not a min.
	d := diagram.New("test")
	three := 3
	dom := diagram.NewNode("dom", diagram.KindDomainRestriction)
	dom.Restriction = diagram.RestrictionCardinality
	dom.MaxCardinality = &three
	build(t, d, []*diagram.Node{predicate("age", diagram.KindAttribute), dom}, []*diagram.Edge{
		input("e1", "age", "dom"),
	})
	c, _ := newTestCompiler(t, d)

	expr, err := c.Compile(dom)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, ok := expr.(owl.DataMaxCardinality); !ok {
		t.Errorf("expected DataMaxCardinality, got %T (%s)", expr, expr.Key())
	}
}

func TestCompileDomainRestrictionShapes(t *testing.T) {
	tests := []struct {
		name        string
		restriction diagram.RestrictionKind
		filler      bool
		want        string
	}{
		{
			name:        "unqualified exists",
			restriction: diagram.RestrictionExists,
			want:        "ObjectSomeValuesFrom(<" + ns + "knows> <http://www.w3.org/2002/07/owl#Thing>)",
		},
		{
			name:        "qualified exists",
			restriction: diagram.RestrictionExists,
			filler:      true,
			want:        "ObjectSomeValuesFrom(<" + ns + "knows> <" + ns + "Person>)",
		},
		{
			name:        "forall",
			restriction: diagram.RestrictionForall,
			filler:      true,
			want:        "ObjectAllValuesFrom(<" + ns + "knows> <" + ns + "Person>)",
		},
		{
			name:        "self",
			restriction: diagram.RestrictionSelf,
			want:        "ObjectHasSelf(<" + ns + "knows>)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diagram.New("test")
			dom := diagram.NewNode("dom", diagram.KindDomainRestriction)
			dom.Restriction = tt.restriction
			nodes := []*diagram.Node{predicate("knows", diagram.KindRole), dom}
			edges := []*diagram.Edge{input("e1", "knows", "dom")}
			if tt.filler {
				nodes = append(nodes, predicate("Person", diagram.KindConcept))
				edges = append(edges, input("e2", "Person", "dom"))
			}
			build(t, d, nodes, edges)
			c, _ := newTestCompiler(t, d)

			expr, err := c.Compile(dom)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if expr.Key() != tt.want {
				t.Errorf("Key() = %s, want %s", expr.Key(), tt.want)
			}
		})
	}
}

func TestCompileRangeRestrictionInvertsProperty(t *testing.T) {
	d := diagram.New("test")
	rng := diagram.NewNode("rng", diagram.KindRangeRestriction)
	rng.Restriction = diagram.RestrictionExists
	build(t, d, []*diagram.Node{predicate("knows", diagram.KindRole), rng}, []*diagram.Edge{
		input("e1", "knows", "rng"),
	})
	c, _ := newTestCompiler(t, d)

	expr, err := c.Compile(rng)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	want := "ObjectSomeValuesFrom(ObjectInverseOf(<" + ns + "knows>) <http://www.w3.org/2002/07/owl#Thing>)"
	if expr.Key() != want {
		t.Errorf("Key() = %s, want %s", expr.Key(), want)
	}
}

func TestCompileAttributeRangeRestrictionFails(t *testing.T) {
	d := diagram.New("test")
	rng := diagram.NewNode("rng", diagram.KindRangeRestriction)
	rng.Restriction = diagram.RestrictionExists
	build(t, d, []*diagram.Node{predicate("age", diagram.KindAttribute), rng}, []*diagram.Edge{
		input("e1", "age", "rng"),
	})
	c, _ := newTestCompiler(t, d)

	if _, err := c.Compile(rng); !errors.Is(err, ErrUnsupportedOperand) {
		t.Errorf("Compile() error = %v, want ErrUnsupportedOperand", err)
	}
}

func TestCompileDatatypeRestriction(t *testing.T) {
	d := diagram.New("test")
	dt := diagram.NewNode("dt", diagram.KindValueDomain)
	dt.IRI = "http://www.w3.org/2001/XMLSchema#string"
	facet := diagram.NewNode("facet", diagram.KindFacet)
	facet.Facet = diagram.Facet{
		ConstrainingFacet: "http://www.w3.org/2001/XMLSchema#minLength",
		Value:             diagram.Literal{LexicalForm: "2", Datatype: "http://www.w3.org/2001/XMLSchema#integer"},
	}
	build(t, d, []*diagram.Node{dt, facet, diagram.NewNode("restricted", diagram.KindDatatypeRestriction)}, []*diagram.Edge{
		input("e1", "dt", "restricted"),
		input("e2", "facet", "restricted"),
	})
	c, _ := newTestCompiler(t, d)

	expr, err := c.Compile(d.Node("restricted"))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, ok := expr.(owl.DatatypeRestriction); !ok {
		t.Errorf("expected DatatypeRestriction, got %T", expr)
	}
}

func TestCompileDisconnectedFacet(t *testing.T) {
	d := diagram.New("test")
	facet := diagram.NewNode("facet", diagram.KindFacet)
	facet.Facet = diagram.Facet{
		ConstrainingFacet: "http://www.w3.org/2001/XMLSchema#minLength",
		Value:             diagram.Literal{LexicalForm: "2", Datatype: "http://www.w3.org/2001/XMLSchema#integer"},
	}
	build(t, d, []*diagram.Node{facet}, nil)
	c, _ := newTestCompiler(t, d)

	if _, err := c.Compile(facet); !errors.Is(err, ErrDisconnectedFacet) {
		t.Errorf("Compile() error = %v, want ErrDisconnectedFacet", err)
	}
}

func TestCompileUnknownFacet(t *testing.T) {
	d := diagram.New("test")
	dt := diagram.NewNode("dt", diagram.KindValueDomain)
	dt.IRI = "http://www.w3.org/2001/XMLSchema#string"
	facet := diagram.NewNode("facet", diagram.KindFacet)
	facet.Facet = diagram.Facet{
		ConstrainingFacet: "http://example.com/notAFacet",
		Value:             diagram.Literal{LexicalForm: "2", Datatype: "http://www.w3.org/2001/XMLSchema#integer"},
	}
	build(t, d, []*diagram.Node{dt, facet, diagram.NewNode("restricted", diagram.KindDatatypeRestriction)}, []*diagram.Edge{
		input("e1", "dt", "restricted"),
		input("e2", "facet", "restricted"),
	})
	c, _ := newTestCompiler(t, d)

	if _, err := c.Compile(facet); !errors.Is(err, ErrUnsupportedOperand) {
		t.Errorf("Compile() error = %v, want ErrUnsupportedOperand", err)
	}
}

func TestCompileRoleChainKeepsOrder(t *testing.T) {
	d := diagram.New("test")
	build(t, d, []*diagram.Node{
		predicate("p", diagram.KindRole),
		predicate("q", diagram.KindRole),
		diagram.NewNode("chain", diagram.KindRoleChain),
	}, []*diagram.Edge{
		input("e1", "q", "chain"),
		input("e2", "p", "chain"),
	})
	c, _ := newTestCompiler(t, d)

	expr, err := c.Compile(d.Node("chain"))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	want := "ObjectPropertyChain(<" + ns + "q> <" + ns + "p>)"
	if expr.Key() != want {
		t.Errorf("Key() = %s, want %s (input order)", expr.Key(), want)
	}
}

func TestCompilePropertyAssertionArity(t *testing.T) {
	tests := []struct {
		name     string
		operands int
		wantErr  error
	}{
		{"one operand", 1, ErrMissingOperand},
		{"two operands", 2, nil},
		{"three operands", 3, ErrTooManyOperands},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diagram.New("test")
			pa := diagram.NewNode("pa", diagram.KindPropertyAssertion)
			nodes := []*diagram.Node{pa}
			var edges []*diagram.Edge
			for i := 0; i < tt.operands; i++ {
				id := string(rune('a' + i))
				nodes = append(nodes, predicate(id, diagram.KindIndividual))
				edges = append(edges, input("e"+id, id, "pa"))
			}
			build(t, d, nodes, edges)
			c, _ := newTestCompiler(t, d)

			_, err := c.Compile(pa)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Compile: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompilePropertyAssertionUnsupportedOperand(t *testing.T) {
	tests := []struct {
		name string
		bad  *diagram.Node
	}{
		{"extra union operand", diagram.NewNode("bad", diagram.KindUnion)},
		{"complement in place of individual", diagram.NewNode("bad", diagram.KindComplement)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diagram.New("test")
			pa := diagram.NewNode("pa", diagram.KindPropertyAssertion)
			build(t, d, []*diagram.Node{
				pa,
				predicate("a", diagram.KindIndividual),
				predicate("b", diagram.KindIndividual),
				tt.bad,
			}, []*diagram.Edge{
				input("e1", "a", "pa"),
				input("e2", "b", "pa"),
				input("e3", "bad", "pa"),
			})
			c, _ := newTestCompiler(t, d)

			// The bad operand must be rejected, not silently dropped in
			// favor of the two valid individuals.
			if _, err := c.Compile(pa); !errors.Is(err, ErrUnsupportedOperand) {
				t.Errorf("Compile() error = %v, want ErrUnsupportedOperand", err)
			}
		})
	}
}

func TestCompilePropertyAssertionOperandBeforeArity(t *testing.T) {
	d := diagram.New("test")
	pa := diagram.NewNode("pa", diagram.KindPropertyAssertion)
	build(t, d, []*diagram.Node{
		pa,
		predicate("a", diagram.KindIndividual),
		diagram.NewNode("or", diagram.KindUnion),
	}, []*diagram.Edge{
		input("e1", "a", "pa"),
		input("e2", "or", "pa"),
	})
	c, _ := newTestCompiler(t, d)

	// An invalid operand reports as unsupported, not as a missing one.
	if _, err := c.Compile(pa); !errors.Is(err, ErrUnsupportedOperand) {
		t.Errorf("Compile() error = %v, want ErrUnsupportedOperand", err)
	}
}

func TestCompileHasKey(t *testing.T) {
	d := diagram.New("test")
	build(t, d, []*diagram.Node{
		predicate("Person", diagram.KindConcept),
		predicate("ssn", diagram.KindAttribute),
		predicate("issuedBy", diagram.KindRole),
		diagram.NewNode("key", diagram.KindHasKey),
	}, []*diagram.Edge{
		input("e1", "Person", "key"),
		input("e2", "ssn", "key"),
		input("e3", "issuedBy", "key"),
	})
	c, _ := newTestCompiler(t, d)
	f := owl.NewFactory()

	expr, err := c.Compile(d.Node("key"))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	key, ok := expr.(owl.KeySet)
	if !ok {
		t.Fatalf("expected KeySet, got %T", expr)
	}
	if key.Class.Key() != f.Class(ns+"Person").Key() {
		t.Errorf("class = %s, want Person", key.Class.Key())
	}
	if len(key.Properties) != 2 {
		t.Errorf("properties = %d, want 2", len(key.Properties))
	}
}

func TestCompileHasKeyArity(t *testing.T) {
	tests := []struct {
		name    string
		kinds   []diagram.NodeKind
		wantErr error
	}{
		{"no class operand", []diagram.NodeKind{diagram.KindAttribute}, ErrMissingOperand},
		{"two class operands", []diagram.NodeKind{diagram.KindConcept, diagram.KindConcept, diagram.KindRole}, ErrTooManyOperands},
		{"no property operand", []diagram.NodeKind{diagram.KindConcept}, ErrMissingOperand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diagram.New("test")
			key := diagram.NewNode("key", diagram.KindHasKey)
			nodes := []*diagram.Node{key}
			var edges []*diagram.Edge
			for i, kind := range tt.kinds {
				id := string(rune('a' + i))
				nodes = append(nodes, predicate(id, kind))
				edges = append(edges, input("e"+id, id, "key"))
			}
			build(t, d, nodes, edges)
			c, _ := newTestCompiler(t, d)

			if _, err := c.Compile(key); !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompileIndividualPunning(t *testing.T) {
	d := diagram.New("test")
	build(t, d, []*diagram.Node{predicate("Person", diagram.KindConcept)}, nil)
	c, _ := newTestCompiler(t, d)

	expr, err := c.CompileIndividual(d.Node("Person"))
	if err != nil {
		t.Fatalf("CompileIndividual: %v", err)
	}
	if _, ok := expr.(owl.NamedIndividual); !ok {
		t.Errorf("expected NamedIndividual, got %T", expr)
	}

	// The schema reading of the same node stays a class.
	classExpr, err := c.Compile(d.Node("Person"))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, ok := classExpr.(owl.Class); !ok {
		t.Errorf("expected Class, got %T", classExpr)
	}
}
