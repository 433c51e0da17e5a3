package treeml

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agnes1/TreeML/debug"
	"github.com/agnes1/TreeML/eval"
	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/libdiff"
	"github.com/agnes1/TreeML/parse"
	"github.com/agnes1/TreeML/query"
	"github.com/agnes1/TreeML/schema"
	"github.com/agnes1/TreeML/stream"
)

// Case tag keys.
const (
	TagResult      = "result"
	TagError       = "error"
	TagStructure   = "structure"
	TagEval        = "eval"
	TagScript      = "script"
	TagSchema      = "schema"
	TagDiagnostics = "diagnostics"
)

// CaseSuffix is the file suffix RunDir looks for.
const CaseSuffix = ".tree"

// Kind names what a Check verified.
type Kind string

const (
	KindParse      Kind = "PARSE RESULT"
	KindStructure  Kind = "STRUCTURE"
	KindExpression Kind = "EXPRESSION"
	KindScript     Kind = "SCRIPT"
	KindSchema     Kind = "SCHEMA"
)

type Check struct {
	Kind   Kind
	Pass   bool
	Detail []string
}

// CaseResult holds the checks of one conformance case. Root is nil when
// the document did not parse.
type CaseResult struct {
	Name   string
	Root   *ir.Root
	Err    error
	Checks []Check
}

func (r *CaseResult) add(k Kind, pass bool, detail ...string) {
	r.Checks = append(r.Checks, Check{Kind: k, Pass: pass, Detail: detail})
}

// Counts returns the number of passing and failing checks.
func (r *CaseResult) Counts() (ok, notOK int) {
	for _, c := range r.Checks {
		if c.Pass {
			ok++
		} else {
			notOK++
		}
	}
	return
}

func (r *CaseResult) Passed() bool {
	_, notOK := r.Counts()
	return notOK == 0
}

// Report writes one line per check, followed by any detail lines.
func (r *CaseResult) Report(w io.Writer) error {
	for _, c := range r.Checks {
		status := "PASS   "
		if !c.Pass {
			status = "FAILURE"
		}
		if _, err := fmt.Fprintf(w, "%s - %-12s - %s\n", status, c.Kind, r.Name); err != nil {
			return err
		}
		for _, d := range c.Detail {
			if _, err := fmt.Fprintf(w, " - %s\n", d); err != nil {
				return err
			}
		}
	}
	return nil
}

// Runner runs conformance cases. Schema paths in schema:: tags are
// resolved against Dir.
type Runner struct {
	Dir string
	Env eval.Env

	schemas map[string]*schema.Schema
}

func NewRunner(dir string) *Runner {
	return &Runner{Dir: dir, Env: eval.Env{}}
}

// RunCase runs a case with a Runner for the current directory.
func RunCase(name string, data []byte) *CaseResult {
	return NewRunner("").RunCase(name, data)
}

// RunCase parses data and checks it against its tags:
//
//   - result::ok|fail states whether parsing succeeds. A failing case
//     passes only when the error message equals the error:: tag.
//   - structure::<hash> compares ir.StructureHash of the document.
//   - eval::<a>=<b> compares two query expressions, once per tag.
//   - script::<expr> runs an expr-lang script which must yield true.
//   - schema::<path> validates against a schema, expecting the
//     comma separated codes of a diagnostics:: tag, or none.
func (rn *Runner) RunCase(name string, data []byte) *CaseResult {
	res := &CaseResult{Name: name}
	tags := stream.NewTagCollector()
	root, err := parse.ParseBytes(data, parse.ParseSinks(tags))
	want, _ := tags.Get(TagResult)
	failIntended := want == "fail"
	if err != nil {
		res.Err = err
		msg, _ := tags.Get(TagError)
		if failIntended && err.Error() == msg {
			res.add(KindParse, true)
		} else {
			res.add(KindParse, false, "expected "+want+", got fail", err.Error())
		}
		return res
	}
	res.Root = root
	if failIntended {
		res.add(KindParse, false, "expected fail, got ok")
	} else {
		res.add(KindParse, true)
	}
	if structure, ok := tags.Get(TagStructure); ok {
		actual := ir.StructureHash(&root.Node)
		if actual == structure {
			res.add(KindStructure, true)
		} else {
			res.add(KindStructure, false,
				"expected: "+structure,
				"actual  : "+actual,
				"diff    : "+libdiff.DiffString(structure, actual))
		}
	}
	for _, tag := range root.TagValues(TagEval) {
		res.add(KindExpression, evalTag(root, tag), tag)
	}
	for _, script := range root.TagValues(TagScript) {
		ok, err := eval.RunBool(root, script, rn.Env)
		if err != nil {
			res.add(KindScript, false, script, err.Error())
			continue
		}
		res.add(KindScript, ok, script)
	}
	if path, ok := tags.Get(TagSchema); ok {
		rn.schemaCheck(res, path, tags)
	}
	if debug.Eval() {
		ok, notOK := res.Counts()
		debug.Logf("case %s: %d ok %d not ok\n", name, ok, notOK)
	}
	return res
}

// evalTag reports whether both sides of an "a=b" tag evaluate to equal
// values.
func evalTag(root *ir.Root, tag string) bool {
	a, b, ok := strings.Cut(tag, "=")
	if !ok {
		return false
	}
	va, err := query.Eval(&root.Node, a)
	if err != nil {
		return false
	}
	vb, err := query.Eval(&root.Node, b)
	if err != nil {
		return false
	}
	return va.Equal(vb)
}

func (rn *Runner) schemaCheck(res *CaseResult, path string, tags *stream.TagCollector) {
	s, err := rn.schema(path)
	if err != nil {
		res.add(KindSchema, false, err.Error())
		return
	}
	var want []string
	if codes, ok := tags.Get(TagDiagnostics); ok && codes != "" {
		want = strings.Split(codes, ",")
	}
	var got []string
	var msgs []string
	if err := s.Validate(res.Root); err != nil {
		verr, ok := err.(*schema.ValidationError)
		if !ok {
			res.add(KindSchema, false, err.Error())
			return
		}
		for _, d := range verr.Diagnostics {
			got = append(got, string(d.Code))
		}
		msgs = verr.Messages()
	}
	if strings.Join(got, ",") == strings.Join(want, ",") {
		res.add(KindSchema, true)
		return
	}
	res.add(KindSchema, false, append([]string{
		"expected: " + strings.Join(want, ","),
		"actual  : " + strings.Join(got, ","),
	}, msgs...)...)
}

func (rn *Runner) schema(path string) (*schema.Schema, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(rn.Dir, path)
	}
	if s, ok := rn.schemas[path]; ok {
		return s, nil
	}
	s, err := LoadSchema(path)
	if err != nil {
		return nil, err
	}
	if rn.schemas == nil {
		rn.schemas = map[string]*schema.Schema{}
	}
	rn.schemas[path] = s
	return s, nil
}

// RunDir runs every case file in the runner's directory in name order.
func (rn *Runner) RunDir() ([]*CaseResult, error) {
	entries, err := os.ReadDir(rn.Dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), CaseSuffix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	res := make([]*CaseResult, 0, len(names))
	for _, name := range names {
		d, err := os.ReadFile(filepath.Join(rn.Dir, name))
		if err != nil {
			return nil, err
		}
		res = append(res, rn.RunCase(name, d))
	}
	return res, nil
}

// Summary writes the report of every result and a closing tally. It
// returns the number of failed checks.
func Summary(w io.Writer, results []*CaseResult) (int, error) {
	ok, notOK := 0, 0
	for _, r := range results {
		if err := r.Report(w); err != nil {
			return 0, err
		}
		o, n := r.Counts()
		ok += o
		notOK += n
	}
	verdict := "TEST PASS:"
	if notOK > 0 {
		verdict = "TEST FAIL:"
	}
	_, err := fmt.Fprintf(w, "%s {pass: %d; fail: %d}\n", verdict, ok, notOK)
	return notOK, err
}
