// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

package toml

// token identifies the lexical class of a single token produced by the
// tokenizer. Scalar tokens carry their decoded payload in the parser's
// val/numVal/floVal/boolVal/dtKind fields rather than in the token itself,
// keeping "which token" separate from "what literal value" the way a
// shell or language lexer typically does.
type token int

const (
	illegalTok token = iota
	eofTok

	newlineTok
	lbracketTok
	rbracketTok
	lbraceTok
	rbraceTok
	commaTok
	dotTok
	equalTok

	bareKeyTok
	stringTok
	integerTok
	floatTok
	boolTok
	datetimeTok
)

var tokNames = map[token]string{
	illegalTok:  "illegal",
	eofTok:      "EOF",
	newlineTok:  "newline",
	lbracketTok: "[",
	rbracketTok: "]",
	lbraceTok:   "{",
	rbraceTok:   "}",
	commaTok:    ",",
	dotTok:      ".",
	equalTok:    "=",
	bareKeyTok:  "bare key",
	stringTok:   "string",
	integerTok:  "integer",
	floatTok:    "float",
	boolTok:     "bool",
	datetimeTok: "datetime",
}

func (t token) String() string {
	if s, ok := tokNames[t]; ok {
		return s
	}
	return "unknown"
}

// lexMode tells the tokenizer whether it is scanning a key or a value —
// the two positions tokenize differently.
type lexMode int

const (
	modeKey lexMode = iota
	modeValue
)

func isBareKeyByte(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_' || b == '-'
}

func isSpaceByte(b byte) bool { return b == ' ' || b == '\t' }
