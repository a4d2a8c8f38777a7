package sentence

import (
	"errors"
	"fmt"

	"github.com/kobun-yomi/refmap/jsondoc"
)

// JSON field names of the text document.
const (
	FieldSentences    = "sentences"
	FieldTokens       = "tokens"
	FieldId           = "id"
	FieldText         = "text"
	FieldGrammarRefId = "grammarRefId"
	FieldGrammarTag   = "grammarTag"
)

// Doc is a text document. It wraps the decoded JSON tree so that fields the
// tool does not know about survive a rewrite in their original order.
type Doc struct {
	root *jsondoc.Object
}

// Sentence is one entry of the document's sentences array.
type Sentence struct {
	node *jsondoc.Object
}

// Node is one entry of a sentence's tokens array. Changes made through a
// Node are written to the document.
type Node struct {
	node *jsondoc.Object
}

// Token represents a word of the sentence with its grammar metadata.
type Token struct {
	Id string

	// The unmodified word
	Text string

	// Reference page of the token's grammatical category. Empty means none.
	GrammarRefId string

	GrammarTag GrammarTag
}

// GrammarTag holds the grammatical classification of a token. Absent fields
// are empty.
type GrammarTag struct {
	Pos             string
	ConjugationType string
	ConjugationForm string
	BaseForm        string
	Meaning         string
}

// Parse decodes a document. The top-level value must be a JSON object.
func Parse(data []byte) (*Doc, error) {
	v, err := jsondoc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("JSON decoding error: %w", err)
	}

	root, ok := v.(*jsondoc.Object)
	if !ok {
		return nil, errors.New("JSON decoding error: document is not an object")
	}

	return &Doc{root: root}, nil
}

// Marshal encodes the document with two-space indentation and a trailing
// newline.
func (d *Doc) Marshal() ([]byte, error) {
	data, err := jsondoc.Marshal(d.root)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Id returns the document id, if any.
func (d *Doc) Id() string {
	return d.root.GetString(FieldId)
}

// Sentences returns the sentence objects in document order. Entries that are
// not objects are ignored.
func (d *Doc) Sentences() []Sentence {
	var sentences []Sentence
	for _, v := range d.root.GetArray(FieldSentences) {
		if obj, ok := v.(*jsondoc.Object); ok {
			sentences = append(sentences, Sentence{node: obj})
		}
	}
	return sentences
}

func (s Sentence) Id() string {
	return s.node.GetString(FieldId)
}

// Tokens returns the token objects of the sentence in order.
func (s Sentence) Tokens() []Node {
	var nodes []Node
	for _, v := range s.node.GetArray(FieldTokens) {
		if obj, ok := v.(*jsondoc.Object); ok {
			nodes = append(nodes, Node{node: obj})
		}
	}
	return nodes
}

// Token reads the token fields. Missing or non-string fields read as "".
func (n Node) Token() Token {
	tag := n.node.GetObject(FieldGrammarTag)

	return Token{
		Id:           n.node.GetString(FieldId),
		Text:         n.node.GetString(FieldText),
		GrammarRefId: n.node.GetString(FieldGrammarRefId),
		GrammarTag: GrammarTag{
			Pos:             tag.GetString("pos"),
			ConjugationType: tag.GetString("conjugationType"),
			ConjugationForm: tag.GetString("conjugationForm"),
			BaseForm:        tag.GetString("baseForm"),
			Meaning:         tag.GetString("meaning"),
		},
	}
}

// SetGrammarRefId overwrites the token's grammarRefId.
func (n Node) SetGrammarRefId(id string) {
	n.node.Set(FieldGrammarRefId, id)
}
