package block

// emptyBlock stands in for a missing input so Context accessors never
// return nil.
var emptyBlock = &Block{}

// Context couples the input and output blocks of one processing call.
// Generators receive an output-only context; in-place effects receive a
// replacing context where input and output are the same block.
type Context struct {
	in  *Block
	out *Block
}

// NewOutputContext returns a context for output-only components. The input
// block is empty (zero channels).
func NewOutputContext(out *Block) *Context {
	return &Context{in: emptyBlock, out: out}
}

// NewReplacingContext returns a context where input and output share one
// block, for effects that process in place.
func NewReplacingContext(io *Block) *Context {
	return &Context{in: io, out: io}
}

// NewContext returns a context with distinct input and output blocks.
func NewContext(in, out *Block) *Context {
	if in == nil {
		in = emptyBlock
	}
	return &Context{in: in, out: out}
}

// OutputBlock returns the block a component writes into.
func (c *Context) OutputBlock() *Block {
	return c.out
}

// InputBlock returns the block a component reads from. It is never nil;
// output-only contexts return an empty block.
func (c *Context) InputBlock() *Block {
	return c.in
}

// UsesSeparateInputAndOutputBlocks reports whether input and output are
// distinct blocks.
func (c *Context) UsesSeparateInputAndOutputBlocks() bool {
	return c.in != c.out
}
