package graphql

import (
	"fmt"
	"strconv"
)

// Directive names that drive the mapping pipeline.
const (
	dirText       = "text"
	dirNumber     = "number"
	dirList       = "list"
	dirConst      = "const"
	dirExample    = "example"
	dirLocalized  = "localized"
	dirLink       = "link"
	dirIgnore     = "ignore"
	dirChildren   = "children"
	dirSortable   = "sortable"
	dirFilterable = "filterable"
)

// Annotations is the typed form of a field's directive list, decoded once at
// the parse boundary so resolvers never rescan raw directives. Absent
// directives leave their member nil; absent arguments stay nil pointers rather
// than zero values.
type Annotations struct {
	Ignore     bool
	Children   bool
	Link       bool
	Localized  bool
	Sortable   bool
	Filterable bool
	Text       *TextArgs
	Number     *NumberArgs
	List       *ListArgs
	Const      *ConstArgs
	Examples   []string
}

// TextArgs carries string constraints from a text directive.
type TextArgs struct {
	Format    string
	MinLength *int
	MaxLength *int
}

// NumberArgs carries numeric bounds from a number directive.
type NumberArgs struct {
	Minimum *float64
	Maximum *float64
}

// ListArgs carries array bounds from a list directive.
type ListArgs struct {
	MinItems *int
	MaxItems *int
}

// ConstArgs carries fixed values from a const directive: Item pins a scalar
// string, Items pins an array of strings.
type ConstArgs struct {
	Item  *string
	Items []string
}

// DecodeAnnotations parses a raw directive list into the typed record. The
// only failure mode is a malformed numeric literal; everything else decodes
// to absent members.
func DecodeAnnotations(directives DirectiveList) (Annotations, error) {
	ann := Annotations{
		Ignore:     directives.Has(dirIgnore),
		Children:   directives.Has(dirChildren),
		Link:       directives.Has(dirLink),
		Localized:  directives.Has(dirLocalized),
		Sortable:   directives.Has(dirSortable),
		Filterable: directives.Has(dirFilterable),
	}

	if d, ok := directives.Find(dirText); ok {
		args := &TextArgs{}
		if v, ok := d.Argument("format"); ok {
			args.Format = v.Raw
		}
		var err error
		if args.MinLength, err = intArg(d, "minLength"); err != nil {
			return Annotations{}, err
		}
		if args.MaxLength, err = intArg(d, "maxLength"); err != nil {
			return Annotations{}, err
		}
		ann.Text = args
	}

	if d, ok := directives.Find(dirNumber); ok {
		args := &NumberArgs{}
		var err error
		if args.Minimum, err = floatArg(d, "minimum"); err != nil {
			return Annotations{}, err
		}
		if args.Maximum, err = floatArg(d, "maximum"); err != nil {
			return Annotations{}, err
		}
		ann.Number = args
	}

	if d, ok := directives.Find(dirList); ok {
		args := &ListArgs{}
		var err error
		if args.MinItems, err = intArg(d, "minItems"); err != nil {
			return Annotations{}, err
		}
		if args.MaxItems, err = intArg(d, "maxItems"); err != nil {
			return Annotations{}, err
		}
		ann.List = args
	}

	if d, ok := directives.Find(dirConst); ok {
		args := &ConstArgs{}
		if v, ok := d.Argument("item"); ok {
			item := v.Raw
			args.Item = &item
		}
		if v, ok := d.Argument("items"); ok {
			args.Items = v.Strings()
		}
		ann.Const = args
	}

	if v, ok := directives.Value(dirExample, "items"); ok {
		ann.Examples = v.Strings()
	}

	return ann, nil
}

func intArg(d Directive, name string) (*int, error) {
	v, ok := d.Argument(name)
	if !ok {
		return nil, nil
	}
	parsed, err := strconv.Atoi(v.Raw)
	if err != nil {
		return nil, fmt.Errorf("graphql: directive %q argument %q: parse integer %q: %w", d.Name, name, v.Raw, err)
	}
	return &parsed, nil
}

func floatArg(d Directive, name string) (*float64, error) {
	v, ok := d.Argument(name)
	if !ok {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(v.Raw, 64)
	if err != nil {
		return nil, fmt.Errorf("graphql: directive %q argument %q: parse number %q: %w", d.Name, name, v.Raw, err)
	}
	return &parsed, nil
}
