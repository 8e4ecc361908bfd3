package domain

import (
	"slices"
	"sort"
	"strconv"

	"go.trai.ch/zerr"
)

// OperationKind separates operations that return data from those that only succeed or fail.
type OperationKind uint8

const (
	// KindAction operations report success or failure only.
	KindAction OperationKind = iota
	// KindQuery operations return parsed data.
	KindQuery
)

func (k OperationKind) String() string {
	if k == KindQuery {
		return "query"
	}
	return "action"
}

// Targeting describes how an operation selects an instance.
type Targeting uint8

const (
	// TargetNone operations act on the whole installation.
	TargetNone Targeting = iota
	// TargetOptional operations act on one instance when selected and on the focused window otherwise.
	TargetOptional
	// TargetRequired operations need exactly one of --name or --index.
	TargetRequired
	// TargetIndexOnly operations need --index and reject --name.
	TargetIndexOnly
)

func (t Targeting) String() string {
	switch t {
	case TargetOptional:
		return "optional"
	case TargetRequired:
		return "required"
	case TargetIndexOnly:
		return "index"
	default:
		return "none"
	}
}

// ResultShape is how an operation's standard output is decoded.
type ResultShape uint8

const (
	// ShapeNone ignores the output.
	ShapeNone ResultShape = iota
	// ShapeText keeps the trimmed output as a single string.
	ShapeText
	// ShapeLines splits the output into non-empty lines.
	ShapeLines
	// ShapeInstances decodes list2-style rows.
	ShapeInstances
)

func (s ResultShape) String() string {
	switch s {
	case ShapeText:
		return "text"
	case ShapeLines:
		return "lines"
	case ShapeInstances:
		return "instances"
	default:
		return "none"
	}
}

// Param is one named flag of an operation.
type Param struct {
	Name     string
	Flag     string
	Required bool
}

// Operation is one entry of the ldconsole operation table.
type Operation struct {
	Name      string
	Kind      OperationKind
	Targeting Targeting
	Params    []Param
	Result    ResultShape
	Batchable bool
	// OneOf names parameters of which at least one must be present.
	OneOf []string
}

// Request carries the instance selector and named parameters of one invocation.
type Request struct {
	Target Target
	Params map[string]string
}

// Result is the decoded output of one invocation.
type Result struct {
	Operation string     `json:"operation"`
	Output    string     `json:"output,omitempty"`
	Text      string     `json:"text,omitempty"`
	Lines     []string   `json:"lines,omitempty"`
	Instances []Instance `json:"instances,omitempty"`
}

func optParam(name string) Param { return Param{Name: name, Flag: "--" + name} }

func reqParam(name string) Param { return Param{Name: name, Flag: "--" + name, Required: true} }

// Operations is the ldconsole operation table keyed by operation name.
var Operations = buildOperationTable([]Operation{
	{Name: "quitall", Kind: KindAction, Targeting: TargetNone},
	{Name: "sortWnd", Kind: KindAction, Targeting: TargetNone},
	{Name: "rock", Kind: KindAction, Targeting: TargetOptional},
	{Name: "zoomIn", Kind: KindAction, Targeting: TargetOptional},
	{Name: "zoomOut", Kind: KindAction, Targeting: TargetOptional},
	{Name: "add", Kind: KindAction, Targeting: TargetNone, Params: []Param{reqParam("name")}},
	{Name: "copy", Kind: KindAction, Targeting: TargetNone, Params: []Param{reqParam("name"), reqParam("from")}},
	{
		Name: "globalsetting", Kind: KindAction, Targeting: TargetNone,
		Params: []Param{optParam("fps"), optParam("audio"), optParam("fastplay"), optParam("cleanmode")},
	},
	{Name: "quit", Kind: KindAction, Targeting: TargetRequired, Batchable: true},
	{Name: "launch", Kind: KindAction, Targeting: TargetRequired, Batchable: true},
	{Name: "reboot", Kind: KindAction, Targeting: TargetRequired, Batchable: true},
	{Name: "remove", Kind: KindAction, Targeting: TargetRequired},
	{Name: "rename", Kind: KindAction, Targeting: TargetRequired, Params: []Param{reqParam("title")}},
	{
		Name: "modify", Kind: KindAction, Targeting: TargetRequired, Batchable: true,
		Params: []Param{
			optParam("resolution"), optParam("cpu"), optParam("memory"), optParam("manufacturer"), optParam("model"),
			optParam("pnumber"), optParam("imei"), optParam("imsi"), optParam("simserial"), optParam("androidid"),
			optParam("mac"), optParam("autorotate"), optParam("lockwindow"), optParam("root"),
		},
	},
	{
		Name: "installapp", Kind: KindAction, Targeting: TargetRequired, Batchable: true,
		Params: []Param{optParam("filename"), optParam("packagename")},
		OneOf:  []string{"filename", "packagename"},
	},
	{Name: "uninstallapp", Kind: KindAction, Targeting: TargetRequired, Batchable: true, Params: []Param{reqParam("packagename")}},
	{Name: "runapp", Kind: KindAction, Targeting: TargetRequired, Batchable: true, Params: []Param{reqParam("packagename")}},
	{Name: "killapp", Kind: KindAction, Targeting: TargetRequired, Batchable: true, Params: []Param{reqParam("packagename")}},
	{Name: "launchex", Kind: KindAction, Targeting: TargetRequired, Batchable: true, Params: []Param{reqParam("packagename")}},
	{Name: "locate", Kind: KindAction, Targeting: TargetRequired, Params: []Param{{Name: "lli", Flag: "--LLI", Required: true}}},
	{Name: "setprop", Kind: KindAction, Targeting: TargetRequired, Params: []Param{reqParam("key"), reqParam("value")}},
	{Name: "downcpu", Kind: KindAction, Targeting: TargetRequired, Params: []Param{reqParam("rate")}},
	{Name: "backup", Kind: KindAction, Targeting: TargetRequired, Params: []Param{reqParam("file")}},
	{Name: "restore", Kind: KindAction, Targeting: TargetRequired, Params: []Param{reqParam("file")}},
	{Name: "action", Kind: KindAction, Targeting: TargetRequired, Params: []Param{reqParam("key"), reqParam("value")}},
	{Name: "scan", Kind: KindAction, Targeting: TargetRequired, Params: []Param{reqParam("file")}},
	{Name: "pull", Kind: KindAction, Targeting: TargetRequired, Batchable: true, Params: []Param{reqParam("remote"), reqParam("local")}},
	{Name: "push", Kind: KindAction, Targeting: TargetRequired, Batchable: true, Params: []Param{reqParam("remote"), reqParam("local")}},
	{
		Name: "backupapp", Kind: KindAction, Targeting: TargetRequired, Batchable: true,
		Params: []Param{reqParam("packagename"), reqParam("file")},
	},
	{
		Name: "restoreapp", Kind: KindAction, Targeting: TargetRequired, Batchable: true,
		Params: []Param{reqParam("packagename"), reqParam("file")},
	},
	{Name: "operaterecord", Kind: KindAction, Targeting: TargetRequired, Batchable: true, Params: []Param{reqParam("content")}},
	{Name: "list", Kind: KindQuery, Targeting: TargetNone, Result: ShapeLines},
	{Name: "runninglist", Kind: KindQuery, Targeting: TargetNone, Result: ShapeLines},
	{Name: "list2", Kind: KindQuery, Targeting: TargetNone, Result: ShapeInstances},
	{Name: "list3", Kind: KindQuery, Targeting: TargetIndexOnly, Result: ShapeInstances},
	{Name: "isrunning", Kind: KindQuery, Targeting: TargetRequired, Result: ShapeText},
	{Name: "getprop", Kind: KindQuery, Targeting: TargetRequired, Result: ShapeText, Params: []Param{reqParam("key")}},
	{Name: "adb", Kind: KindQuery, Targeting: TargetRequired, Result: ShapeText, Params: []Param{reqParam("command")}},
	{Name: "operatelist", Kind: KindQuery, Targeting: TargetRequired, Result: ShapeLines},
	{Name: "operateinfo", Kind: KindQuery, Targeting: TargetRequired, Result: ShapeText, Params: []Param{reqParam("file")}},
})

func buildOperationTable(ops []Operation) map[string]Operation {
	table := make(map[string]Operation, len(ops))
	for _, op := range ops {
		table[op.Name] = op
	}
	return table
}

// LookupOperation returns the table entry for name.
func LookupOperation(name string) (Operation, error) {
	op, ok := Operations[name]
	if !ok {
		return Operation{}, zerr.With(zerr.Wrap(ErrUnknownOperation, "lookup failed"), "operation", name)
	}
	return op, nil
}

// OperationNames returns every operation name in lexical order.
func OperationNames() []string {
	names := make([]string, 0, len(Operations))
	for name := range Operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Param returns the schema entry for name.
func (o Operation) Param(name string) (Param, bool) {
	i := slices.IndexFunc(o.Params, func(p Param) bool { return p.Name == name })
	if i < 0 {
		return Param{}, false
	}
	return o.Params[i], true
}

// BuildArgs validates req against the operation's schema and returns the ldconsole argument vector.
// The vector starts with the operation name, then the instance selector, then parameters in schema order.
func (o Operation) BuildArgs(req Request) ([]string, error) {
	if err := o.checkTarget(req.Target); err != nil {
		return nil, err
	}

	for name := range req.Params {
		if _, ok := o.Param(name); !ok {
			err := zerr.With(zerr.Wrap(ErrUnknownParam, "invalid invocation"), "operation", o.Name)
			return nil, zerr.With(err, "param", name)
		}
	}

	args := []string{o.Name}
	switch {
	case req.Target.Index != nil:
		args = append(args, "--index", strconv.Itoa(*req.Target.Index))
	case req.Target.Name != "":
		args = append(args, "--name", req.Target.Name)
	}

	for _, p := range o.Params {
		v, ok := req.Params[p.Name]
		if !ok || v == "" {
			if p.Required {
				err := zerr.With(zerr.Wrap(ErrMissingParam, "invalid invocation"), "operation", o.Name)
				return nil, zerr.With(err, "param", p.Name)
			}
			continue
		}
		args = append(args, p.Flag, v)
	}

	if len(o.OneOf) > 0 && !slices.ContainsFunc(o.OneOf, func(name string) bool { return req.Params[name] != "" }) {
		err := zerr.With(zerr.Wrap(ErrMissingParam, "invalid invocation"), "operation", o.Name)
		return nil, zerr.With(err, "param", o.OneOf)
	}

	return args, nil
}

func (o Operation) checkTarget(t Target) error {
	if t.Ambiguous() {
		return zerr.With(zerr.Wrap(ErrAmbiguousTarget, "invalid invocation"), "operation", o.Name)
	}
	switch o.Targeting {
	case TargetNone:
		if !t.IsZero() {
			err := zerr.With(zerr.Wrap(ErrUnexpectedTarget, "invalid invocation"), "operation", o.Name)
			return zerr.With(err, "target", t.String())
		}
	case TargetRequired:
		if t.IsZero() {
			return zerr.With(zerr.Wrap(ErrMissingTarget, "invalid invocation"), "operation", o.Name)
		}
	case TargetIndexOnly:
		if t.Name != "" {
			err := zerr.With(zerr.Wrap(ErrUnexpectedTarget, "invalid invocation"), "operation", o.Name)
			return zerr.With(err, "target", t.String())
		}
		if t.Index == nil {
			return zerr.With(zerr.Wrap(ErrMissingTarget, "invalid invocation"), "operation", o.Name)
		}
	case TargetOptional:
	}
	return nil
}
