package domain

import (
	"os"

	"github.com/strips-go/striplan"
	"gopkg.in/yaml.v3"
)

// yamlLiteral is the on-disk shape of a striplan.Literal: a predicate symbol
// plus its argument tokens (variable names or object constants).
type yamlLiteral struct {
	Predicate string   `yaml:"predicate"`
	Args      []string `yaml:"args"`
}

func (l yamlLiteral) toLiteral() striplan.Literal {
	return striplan.Literal{Predicate: l.Predicate, Args: l.Args}
}

func toLiterals(ls []yamlLiteral) []striplan.Literal {
	out := make([]striplan.Literal, len(ls))
	for i, l := range ls {
		out[i] = l.toLiteral()
	}
	return out
}

type yamlVariable struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type yamlSchema struct {
	Name       string         `yaml:"name"`
	Variables  []yamlVariable `yaml:"variables"`
	PrecondPos []yamlLiteral  `yaml:"precondition_pos"`
	PrecondNeg []yamlLiteral  `yaml:"precondition_neg"`
	EffectPos  []yamlLiteral  `yaml:"effect_pos"`
	EffectNeg  []yamlLiteral  `yaml:"effect_neg"`
}

// domainDoc is the top-level shape of a domain YAML file: world object
// declarations and action schemas.
type domainDoc struct {
	Objects []struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	} `yaml:"objects"`
	Schemas []yamlSchema `yaml:"schemas"`
}

type yamlAtom struct {
	Predicate string   `yaml:"predicate"`
	Args      []string `yaml:"args"`
}

func (a yamlAtom) toAtom() striplan.Atom { return striplan.NewAtom(a.Predicate, a.Args...) }

// problemDoc is the top-level shape of a problem YAML file: the initial
// state and the goal condition.
type problemDoc struct {
	Initial []yamlAtom `yaml:"initial"`
	Goal    []yamlAtom `yaml:"goal"`
}

// LoadYAML reads a domain YAML document and a problem YAML document and
// assembles a *Problem. This is not a PDDL parser — see the package doc
// comment — it is a minimal, directly-decodable stand-in front end so the
// CLI surface in SPEC_FULL.md §6 has something concrete to read from disk.
// Any decode failure is wrapped in a *striplan.ParseError and surfaced
// verbatim, per spec.md §7.
func LoadYAML(domainPath, problemPath string) (*Problem, error) {
	var dd domainDoc
	if err := decodeYAMLFile(domainPath, &dd); err != nil {
		return nil, &striplan.ParseError{Source: domainPath, Err: err}
	}
	var pd problemDoc
	if err := decodeYAMLFile(problemPath, &pd); err != nil {
		return nil, &striplan.ParseError{Source: problemPath, Err: err}
	}

	b := NewBuilder()
	for _, obj := range dd.Objects {
		b.Object(obj.Name, obj.Type)
	}
	for _, s := range dd.Schemas {
		vars := make([]striplan.Variable, len(s.Variables))
		for i, v := range s.Variables {
			vars[i] = striplan.Variable{Name: v.Name, Type: v.Type}
		}
		b.Schema(SchemaDef{
			Name:       s.Name,
			Variables:  vars,
			PrecondPos: toLiterals(s.PrecondPos),
			PrecondNeg: toLiterals(s.PrecondNeg),
			EffectPos:  toLiterals(s.EffectPos),
			EffectNeg:  toLiterals(s.EffectNeg),
		})
	}
	for _, a := range pd.Initial {
		b.Initial(a.toAtom())
	}
	for _, a := range pd.Goal {
		b.Goal(a.toAtom())
	}

	return b.Build()
}

func decodeYAMLFile(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return yaml.NewDecoder(f).Decode(out)
}
