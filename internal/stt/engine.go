package stt

// Engine turns a stream of raw audio chunks into recognized phrases.
// Accept feeds one capture chunk; it returns ok=true with the recognized
// text once a complete phrase has been decoded. Empty text with ok=true
// means the phrase produced no usable words.
type Engine interface {
	Accept(chunk []float32) (text string, ok bool)
	Close() error
}
