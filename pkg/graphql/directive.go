package graphql

// Directive is a named annotation attached to a field or type, optionally
// carrying literal arguments. A field may repeat a directive name; lookups
// return the first match.
type Directive struct {
	Name      string
	Arguments []Argument
}

// Argument pairs an argument name with its literal value.
type Argument struct {
	Name  string
	Value Value
}

// Value is a directive argument literal. Scalars keep their raw text in Raw;
// list literals record each element's raw text in Items, in order.
type Value struct {
	Raw   string
	Items []string
}

// Strings returns the literal as a string list: list literals yield their
// elements, a lone scalar yields a single-element list, absent yields nil.
func (v Value) Strings() []string {
	if len(v.Items) > 0 {
		return append([]string(nil), v.Items...)
	}
	if v.Raw != "" {
		return []string{v.Raw}
	}
	return nil
}

// Argument returns the named argument's value on this directive.
func (d Directive) Argument(name string) (Value, bool) {
	for _, arg := range d.Arguments {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return Value{}, false
}

// DirectiveList is the ordered set of directives attached to one field or
// type definition.
type DirectiveList []Directive

// Has reports whether any attached directive matches name.
func (l DirectiveList) Has(name string) bool {
	_, ok := l.Find(name)
	return ok
}

// Find returns the first directive matching name. Fields with zero directives
// simply report no match.
func (l DirectiveList) Find(name string) (Directive, bool) {
	for _, d := range l {
		if d.Name == name {
			return d, true
		}
	}
	return Directive{}, false
}

// Value looks up a named argument on the first directive matching name.
func (l DirectiveList) Value(name, arg string) (Value, bool) {
	d, ok := l.Find(name)
	if !ok {
		return Value{}, false
	}
	return d.Argument(arg)
}
