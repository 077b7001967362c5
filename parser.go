// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

package toml

import "sync"

// parser fuses the tokenizer and the recursive-descent parser into one
// struct: one cursor over the source, one current token, and the
// table-construction state threaded through the methods in this file.
type parser struct {
	src       []byte
	pos       int
	line      int
	lineStart int
	mode      lexMode

	tok    token
	val    string
	numVal Integer
	floVal float64
	boolVal bool
	dtKind DateTimeKind

	err *Error

	opts options

	root    *Table
	current *Table
}

var parserPool = sync.Pool{New: func() interface{} { return new(parser) }}

func newParser() *parser { return parserPool.Get().(*parser) }

func freeParser(p *parser) {
	*p = parser{}
	parserPool.Put(p)
}

func (p *parser) reset(src []byte, opts options) {
	*p = parser{src: src, line: 1, opts: opts}
	p.root = NewTable()
	p.current = p.root
}

// parseDocument consumes the whole source, installing key/value pairs and
// table headers into p.root.
func (p *parser) parseDocument() {
	p.mode = modeKey
	p.next()
	for p.err == nil && p.tok != eofTok {
		switch p.tok {
		case newlineTok:
			p.next()
		case lbracketTok:
			p.parseHeader()
		case bareKeyTok, stringTok:
			p.parseKeyValueLine(p.current)
		default:
			p.errorf(SyntaxError, "unexpected %s at top level", p.tok)
			return
		}
	}
}

// parseHeader parses a [table] or [[array-of-tables]] header. p.tok is
// lbracketTok on entry. Adjacent brackets are not special-cased by the
// tokenizer (each '[' and ']' is always a single-char token); the
// array-of-tables form is detected here by peeking at the token right
// after the first '[', which is slightly more lenient than strict TOML
// about whitespace between the two brackets — see DESIGN.md.
func (p *parser) parseHeader() {
	p.mode = modeKey
	p.next() // consume the opening '['
	startPos := p.position(p.pos)

	isArray := false
	if p.tok == lbracketTok {
		isArray = true
		p.next() // consume the second '['
	}

	path, ok := p.parseDottedKeyParts()
	if !ok {
		return
	}

	if isArray {
		if p.tok != rbracketTok {
			p.errorf(SyntaxError, "expected ']' to close array-of-tables header")
			return
		}
		p.next()
	}
	if p.tok != rbracketTok {
		p.errorf(SyntaxError, "expected ']' to close table header")
		return
	}
	p.mode = modeKey
	p.next()
	if p.tok != newlineTok && p.tok != eofTok {
		p.errorf(SyntaxError, "unexpected content after table header")
		return
	}

	var tbl *Table
	var err *Error
	if isArray {
		tbl, err = p.installArrayHeader(path, startPos)
	} else {
		tbl, err = p.installHeader(path, startPos)
	}
	if err != nil {
		p.err = err
		return
	}
	p.current = tbl
}

// parseKeyValueLine parses "dotted.key = value" and installs it into scope.
// p.tok holds the first key token on entry.
func (p *parser) parseKeyValueLine(scope *Table) {
	p.mode = modeKey
	startPos := p.position(p.pos)
	parts, ok := p.parseDottedKeyParts()
	if !ok {
		return
	}
	if p.tok != equalTok {
		p.errorf(SyntaxError, "expected '=' after key")
		return
	}
	p.mode = modeValue
	p.next()
	val := p.parseValue()
	if p.err != nil {
		return
	}
	if err := p.installDotted(scope, parts, val, startPos); err != nil {
		p.err = err
		return
	}
	p.mode = modeKey
	if p.tok != newlineTok && p.tok != eofTok {
		p.errorf(SyntaxError, "unexpected content after value")
	}
}

// parseDottedKeyParts parses "a.b.c", leaving p.tok at the token following
// the last key segment. p.tok must already hold the first key segment.
func (p *parser) parseDottedKeyParts() ([]string, bool) {
	var parts []string
	for {
		switch p.tok {
		case bareKeyTok, stringTok:
			parts = append(parts, p.val)
		default:
			p.errorf(SyntaxError, "expected a key")
			return nil, false
		}
		p.mode = modeKey
		p.next()
		if p.tok != dotTok {
			break
		}
		p.mode = modeKey
		p.next()
	}
	return parts, true
}

// parseValue parses a single value at the current token and advances past
// it.
func (p *parser) parseValue() Value {
	switch p.tok {
	case stringTok:
		v := String(p.val)
		p.next()
		return v
	case integerTok:
		v := p.numVal
		p.next()
		return v
	case floatTok:
		v := Float(p.floVal)
		p.next()
		return v
	case boolTok:
		v := p.opts.inflateBoolean(p.boolVal)
		p.next()
		return v
	case datetimeTok:
		v := p.opts.inflateDateTime(p.val, p.dtKind)
		p.next()
		return v
	case lbracketTok:
		return p.parseArray()
	case lbraceTok:
		return p.parseInlineTable()
	default:
		p.errorf(SyntaxError, "expected a value, got %s", p.tok)
		return nil
	}
}

// parseArray parses "[ v, v, ... ]". Newlines are permitted between and
// around elements, and a trailing comma before ']' is allowed.
func (p *parser) parseArray() *Array {
	arr := NewArray()
	pos := p.position(p.pos)
	p.mode = modeValue
	p.next() // consume '['
	for p.tok == newlineTok {
		p.next()
	}
	for p.tok != rbracketTok {
		if p.err != nil {
			return arr
		}
		v := p.parseValue()
		if p.err != nil {
			return arr
		}
		arr.elems = append(arr.elems, v)
		for p.tok == newlineTok {
			p.next()
		}
		if p.tok == commaTok {
			p.mode = modeValue
			p.next()
			for p.tok == newlineTok {
				p.next()
			}
			continue
		}
		break
	}
	if p.tok != rbracketTok {
		p.errorf(SyntaxError, "expected ',' or ']' in array")
		return arr
	}
	p.next()
	if p.opts.strictArrays && !isHomogeneous(arr) {
		p.err = newError(pos, HeterogenousArray, "array elements are not all the same type")
	}
	return arr
}

// parseInlineTable parses "{ k = v, ... }". Newlines are not permitted
// inside an inline table, and it is sealed on return: no later dotted key
// or header may extend it.
func (p *parser) parseInlineTable() *Table {
	tbl := NewTable()
	p.mode = modeKey
	p.next() // consume '{'
	if p.tok == rbraceTok {
		p.next()
		tbl.sealed = true
		return tbl
	}
	for {
		startPos := p.position(p.pos)
		parts, ok := p.parseDottedKeyParts()
		if !ok {
			tbl.sealed = true
			return tbl
		}
		if p.tok != equalTok {
			p.errorf(SyntaxError, "expected '=' in inline table")
			tbl.sealed = true
			return tbl
		}
		p.mode = modeValue
		p.next()
		val := p.parseValue()
		if p.err != nil {
			tbl.sealed = true
			return tbl
		}
		if err := p.installDotted(tbl, parts, val, startPos); err != nil {
			p.err = err
			tbl.sealed = true
			return tbl
		}
		p.mode = modeKey
		switch p.tok {
		case commaTok:
			p.next()
			continue
		case rbraceTok:
			p.next()
			tbl.sealed = true
			return tbl
		default:
			p.errorf(SyntaxError, "expected ',' or '}' in inline table")
			tbl.sealed = true
			return tbl
		}
	}
}

// stepIntermediate resolves one non-final segment of a dotted key or table
// header path, descending into (or creating) the table at name within
// container, per the table-scoping invariants below.
func (p *parser) stepIntermediate(container *Table, name string, pos Position) (*Table, *Error) {
	if container.sealed {
		return nil, newError(pos, ExtendSealed, "cannot extend sealed table through key %q", name)
	}
	existing, ok := container.Get(name)
	if !ok {
		t := NewTable()
		container.Set(name, t)
		return t, nil
	}
	switch v := existing.(type) {
	case *Table:
		return v, nil
	case *Array:
		if v.isAOT && len(v.elems) > 0 {
			last, ok := v.elems[len(v.elems)-1].(*Table)
			if !ok {
				return nil, newError(pos, TypeConflict, "key %q is not a table", name)
			}
			return last, nil
		}
		return nil, newError(pos, TypeConflict, "key %q is not a table", name)
	default:
		return nil, newError(pos, TypeConflict, "key %q is not a table", name)
	}
}

// installDotted installs val at the end of a dotted-key path rooted at
// scope, creating intermediate tables as needed.
func (p *parser) installDotted(scope *Table, keys []string, val Value, pos Position) *Error {
	container := scope
	for _, name := range keys[:len(keys)-1] {
		next, err := p.stepIntermediate(container, name, pos)
		if err != nil {
			return err
		}
		container = next
	}
	name := keys[len(keys)-1]
	if container.sealed {
		return newError(pos, ExtendSealed, "cannot extend sealed table through key %q", name)
	}
	if _, exists := container.Get(name); exists {
		return newError(pos, DuplicateKey, "duplicate key %q", name)
	}
	container.Set(name, val)
	return nil
}

// installHeader resolves and installs a [path] table header. A table may
// be implicitly created by an earlier dotted key or array-of-tables
// descent, and later made explicit by its own header
// exactly once.
func (p *parser) installHeader(keys []string, pos Position) (*Table, *Error) {
	container := p.root
	for _, name := range keys[:len(keys)-1] {
		next, err := p.stepIntermediate(container, name, pos)
		if err != nil {
			return nil, err
		}
		container = next
	}
	name := keys[len(keys)-1]
	if container.sealed {
		return nil, newError(pos, ExtendSealed, "cannot extend sealed table through key %q", name)
	}
	existing, ok := container.Get(name)
	if !ok {
		t := NewTable()
		t.explicit = true
		container.Set(name, t)
		return t, nil
	}
	switch v := existing.(type) {
	case *Table:
		if v.explicit {
			return nil, newError(pos, DuplicateTable, "table %q already defined", name)
		}
		v.explicit = true
		return v, nil
	default:
		return nil, newError(pos, TypeConflict, "key %q is not a table", name)
	}
}

// installArrayHeader resolves a [[path]] header: either starts a new
// array-of-tables or appends one more table to an existing one.
func (p *parser) installArrayHeader(keys []string, pos Position) (*Table, *Error) {
	container := p.root
	for _, name := range keys[:len(keys)-1] {
		next, err := p.stepIntermediate(container, name, pos)
		if err != nil {
			return nil, err
		}
		container = next
	}
	name := keys[len(keys)-1]
	if container.sealed {
		return nil, newError(pos, ExtendSealed, "cannot extend sealed table through key %q", name)
	}
	existing, ok := container.Get(name)
	if !ok {
		arr := NewArray()
		arr.isAOT = true
		t := NewTable()
		t.explicit = true
		arr.elems = append(arr.elems, t)
		container.Set(name, arr)
		return t, nil
	}
	arr, ok := existing.(*Array)
	if !ok || !arr.isAOT {
		return nil, newError(pos, TypeConflict, "key %q is not an array of tables", name)
	}
	t := NewTable()
	t.explicit = true
	arr.elems = append(arr.elems, t)
	return t, nil
}
