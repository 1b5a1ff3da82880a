package core

import "fmt"

// codec is the table behind every enum type: variant i is rendered as tokens[i].
type codec[E ~int] struct {
	name   string
	tokens []string
	index  map[string]E
}

func newCodec[E ~int](name string, tokens ...string) *codec[E] {
	c := &codec[E]{
		name:   name,
		tokens: tokens,
		index:  make(map[string]E, len(tokens)),
	}
	for i, t := range tokens {
		if _, dup := c.index[t]; dup {
			panic(fmt.Sprintf("core: duplicate token %q for %s", t, name))
		}
		c.index[t] = E(i)
	}
	return c
}

// alias makes parse accept token as another spelling of v. Output always
// uses the canonical token.
func (c *codec[E]) alias(token string, v E) *codec[E] {
	if _, dup := c.index[token]; dup {
		panic(fmt.Sprintf("core: duplicate token %q for %s", token, c.name))
	}
	c.index[token] = v
	return c
}

func (c *codec[E]) format(v E) string {
	if int(v) < 0 || int(v) >= len(c.tokens) {
		return fmt.Sprintf("%s(%d)", c.name, int(v))
	}
	return c.tokens[v]
}

func (c *codec[E]) parse(s string) (E, error) {
	v, ok := c.index[s]
	if !ok {
		return 0, &ParseError{Type: c.name, Value: s}
	}
	return v, nil
}

func (c *codec[E]) marshal(v E) ([]byte, error) {
	if int(v) < 0 || int(v) >= len(c.tokens) {
		return nil, fmt.Errorf("invalid %s value %d", c.name, int(v))
	}
	return []byte(c.tokens[v]), nil
}

func (c *codec[E]) unmarshal(dst *E, text []byte) error {
	v, err := c.parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func (c *codec[E]) values() []E {
	out := make([]E, len(c.tokens))
	for i := range c.tokens {
		out[i] = E(i)
	}
	return out
}

// EnumInfo describes one enum type and its canonical tokens, default first.
type EnumInfo struct {
	Name   string
	Tokens []string
}

func (c *codec[E]) info() EnumInfo {
	return EnumInfo{Name: c.name, Tokens: append([]string(nil), c.tokens...)}
}

// Enums lists every enum type known to the model.
func Enums() []EnumInfo {
	return []EnumInfo{
		fermentableTypes.info(),
		hopUses.info(),
		hopTypes.info(),
		hopForms.info(),
		yeastTypes.info(),
		yeastForms.info(),
		yeastFlocculations.info(),
		miscTypes.info(),
		miscUses.info(),
	}
}

// Ptr returns a pointer to v. Optional record fields are pointers; nil means absent.
func Ptr[T any](v T) *T {
	return &v
}
