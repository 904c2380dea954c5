package token

// A WriteStream receives tokens in order.  Decoders write to a WriteStream
// so that consumers can build whatever representation they need.
type WriteStream interface {
	Put(Token)
}

// AccumulatorStream records all the tokens put into it.
type AccumulatorStream struct {
	toks []Token
}

var _ WriteStream = &AccumulatorStream{}

func NewAccumulatorStream() *AccumulatorStream {
	return &AccumulatorStream{}
}

func (w *AccumulatorStream) Put(tok Token) {
	w.toks = append(w.toks, tok)
}

func (w *AccumulatorStream) GetTokens() []Token {
	return w.toks
}
