// Package envelope implements the serialisation envelope named in
// spec.md §6: encoding and decoding a Pen's
// (interned, comparer-tag, rank, context, sentinel) tuple.
package envelope

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/corpusgen/pen/pen"
	"github.com/corpusgen/pen/penerr"
	"github.com/corpusgen/pen/token"
)

type wireToken struct {
	Present bool   `json:"present"`
	Value   string `json:"value,omitempty"`
}

func toWire(t token.Token) wireToken {
	if v, ok := t.Value(); ok {
		return wireToken{Present: true, Value: v}
	}
	return wireToken{Present: false}
}

func fromWire(present bool, value string) token.Token {
	if !present {
		return token.Absent
	}
	return token.New(value)
}

// Encode serialises p into a JSON envelope. relation records the
// comparer's type discriminator (spec §6: "when the comparer is
// represented as a polymorphic value, its type discriminator must
// precede its payload"); callers using an opaque Comparer must track
// the discriminator themselves and are responsible for round-tripping
// it through some other means.
func Encode(p *pen.Pen, relation token.Relation) (string, error) {
	doc := "{}"
	var err error

	if doc, err = sjson.Set(doc, "interned", p.Interned()); err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, "comparer", relation.String()); err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, "rank", p.Rank()); err != nil {
		return "", err
	}

	corpus := p.Corpus()
	wireContext := make([]wireToken, len(corpus))
	for i, t := range corpus {
		wireContext[i] = toWire(t)
	}
	if doc, err = sjson.Set(doc, "context", wireContext); err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, "sentinel", toWire(p.Sentinel())); err != nil {
		return "", err
	}

	return doc, nil
}

// Decode reconstructs a Pen from a JSON envelope previously produced by
// Encode. It validates only that the expected fields are present, not
// that the rank is actually a valid suffix rank for context (spec §6:
// "Deserialisation does not re-validate the rank; callers must trust
// the envelope").
func Decode(data string) (*pen.Pen, error) {
	if !gjson.Valid(data) {
		return nil, penerr.New(penerr.IntegrityViolation, "envelope is not valid JSON")
	}
	doc := gjson.Parse(data)

	internedField := doc.Get("interned")
	if !internedField.Exists() {
		return nil, penerr.New(penerr.IntegrityViolation, "envelope missing field: interned")
	}

	comparerField := doc.Get("comparer")
	if !comparerField.Exists() {
		return nil, penerr.New(penerr.IntegrityViolation, "envelope missing field: comparer")
	}
	relation, err := token.ParseRelation(comparerField.String())
	if err != nil {
		return nil, penerr.Wrap(penerr.IntegrityViolation, err, "envelope has invalid comparer tag")
	}

	rankField := doc.Get("rank")
	if !rankField.Exists() || !rankField.IsArray() {
		return nil, penerr.New(penerr.IntegrityViolation, "envelope missing field: rank")
	}
	rankArr := rankField.Array()
	rank := make([]int, len(rankArr))
	for i, v := range rankArr {
		rank[i] = int(v.Int())
	}

	contextField := doc.Get("context")
	if !contextField.Exists() || !contextField.IsArray() {
		return nil, penerr.New(penerr.IntegrityViolation, "envelope missing field: context")
	}
	contextArr := contextField.Array()
	context := make([]token.Token, len(contextArr))
	for i, v := range contextArr {
		presentField := v.Get("present")
		if !presentField.Exists() {
			return nil, penerr.New(penerr.IntegrityViolation, "envelope context[%d] missing field: present", i)
		}
		context[i] = fromWire(presentField.Bool(), v.Get("value").String())
	}

	sentinelField := doc.Get("sentinel")
	if !sentinelField.Exists() {
		return nil, penerr.New(penerr.IntegrityViolation, "envelope missing field: sentinel")
	}
	sentinelPresent := sentinelField.Get("present")
	if !sentinelPresent.Exists() {
		return nil, penerr.New(penerr.IntegrityViolation, "envelope sentinel missing field: present")
	}
	sentinel := fromWire(sentinelPresent.Bool(), sentinelField.Get("value").String())

	return pen.FromTrusted(internedField.Bool(), relation.Comparer(), rank, context, sentinel), nil
}
