package encode

type EncodeOption func(*EncState)

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// ShowTypes includes each node's runtime type next to its title.
func ShowTypes(v bool) EncodeOption {
	return func(es *EncState) { es.showTypes = v }
}

// EncodeWire renders on a single line.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
