package schema

import (
	"regexp"

	"github.com/agnes1/TreeML/debug"
	"github.com/agnes1/TreeML/ir"
)

var tokenRE = regexp.MustCompile(`^[a-z][a-zA-Z0-9_]*$`)

// Validate checks doc against s. The token id set is reset first, so
// tokenid values must be unique within doc. It returns a *ValidationError
// holding all diagnostics, or nil.
func (s *Schema) Validate(doc *ir.Root) error {
	return s.ValidateAll(doc)
}

// ValidateAll checks each document in order against s sharing one token id
// space, so references may resolve to ids declared by earlier documents.
func (s *Schema) ValidateAll(docs ...*ir.Root) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenIDs = map[string]struct{}{}
	if s.IsPass() {
		return nil
	}
	var diags []Diagnostic
	for _, doc := range docs {
		if doc == nil {
			return ErrNoDocument
		}
		diags = append(diags, s.validate(doc.Children, s.top)...)
	}
	if len(diags) == 0 {
		return nil
	}
	if debug.Validate() {
		for i := range diags {
			debug.Logf("%s\n", diags[i].String())
		}
	}
	return &ValidationError{Diagnostics: diags}
}

func (s *Schema) nameMatch(d *ir.Node, id NodeID) bool {
	name := s.nodes[id].Name
	return d.Name == name || name == "token"
}

func (s *Schema) validate(docNodes []*ir.Node, expected []NodeID) []Diagnostic {
	var diags []Diagnostic
	if len(docNodes) == 0 {
		return nil
	}
	if len(expected) == 0 {
		d := docNodes[0]
		return append(diags, Diagnostic{Code: CodeExhausted, Line: d.Line, Name: d.Name})
	}
	sid := expected[0]
	secondOrMore := false
	for i := 0; i < len(docNodes); {
		d := docNodes[i]
		if sid == None {
			return append(diags, Diagnostic{Code: CodeExhausted, Line: d.Line, Name: d.Name})
		}
		sn := &s.nodes[sid]
		if debug.Validate() {
			debug.Logf("validate %s line %d against %#v\n", d.Name, d.Line, sn)
		}
		if s.nameMatch(d, sid) {
			diags = s.checkType(d, sn, diags)
			if len(d.Children) > 0 {
				diags = append(diags, s.validate(d.Children, sn.Children)...)
			} else if s.HasMandatoryChildren(sid) {
				diags = append(diags, Diagnostic{Code: CodeChildren, Line: d.Line, Name: d.Name})
			}
			i++
			if sn.Has(Single) {
				sid = sn.Next
				secondOrMore = false
			} else {
				secondOrMore = true
			}
			continue
		}
		if !sn.Has(Optional) && !secondOrMore {
			return append(diags, Diagnostic{Code: CodeUnexpected, Line: d.Line, Name: d.Name, Expected: sn.Name})
		}
		sid = sn.Next
		secondOrMore = false
		if sid == None {
			return append(diags, Diagnostic{Code: CodeExhausted, Line: d.Line, Name: d.Name})
		}
	}
	return diags
}

func (s *Schema) checkType(d *ir.Node, sn *Node, diags []Diagnostic) []Diagnostic {
	v := d.Value
	var ok bool
	switch v.Type {
	case ir.NullType:
		return diags
	case ir.StringType:
		if !sn.Has(TokenID) && !sn.Has(String) && !sn.Has(TokenIDRef) && !sn.Has(Token) {
			break
		}
		if sn.Has(TokenID) {
			var good bool
			if good, diags = s.declare(d, diags); good {
				return diags
			}
		}
		if sn.Has(String) {
			return diags
		}
		if sn.Has(TokenIDRef) {
			if _, found := s.tokenIDs[v.String]; found {
				return diags
			}
			diags = append(diags, Diagnostic{Code: CodeUnresolvedRef, Line: d.Line, Name: d.Name, Value: v.String})
		}
		if sn.Has(Token) && !tokenRE.MatchString(v.String) {
			diags = append(diags, Diagnostic{Code: CodeInvalidToken, Line: d.Line, Name: d.Name, Value: v.String})
		}
		return diags
	case ir.IntType:
		ok = sn.Has(Integer)
	case ir.FloatType:
		ok = sn.Has(Decimal)
	case ir.BoolType:
		ok = sn.Has(Boolean)
	case ir.ListType:
		ok = sn.Has(List) || sn.Has(Set)
	case ir.DurationType:
		ok = sn.Has(Duration)
	case ir.InstantType:
		ok = sn.Has(DateTime)
	}
	if !ok {
		diags = append(diags, Diagnostic{Code: CodeWrongType, Line: d.Line, Name: d.Name})
	}
	return diags
}

// declare records the tokenid value of d.
func (s *Schema) declare(d *ir.Node, diags []Diagnostic) (bool, []Diagnostic) {
	val := d.Value.String
	if !tokenRE.MatchString(val) {
		return false, append(diags, Diagnostic{Code: CodeInvalidID, Line: d.Line, Name: d.Name, Value: val})
	}
	if _, dup := s.tokenIDs[val]; dup {
		return false, append(diags, Diagnostic{Code: CodeDuplicateID, Line: d.Line, Name: d.Name, Value: val})
	}
	s.tokenIDs[val] = struct{}{}
	return true, diags
}
