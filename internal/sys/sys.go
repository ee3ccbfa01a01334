package sys

/*
#cgo pkg-config: fdk-aac
*/
import "C"

// Code is a raw libfdk-aac error code (AACENC_ERROR or
// AAC_DECODER_ERROR, depending on which call produced it).
// Zero always means success for both enums.
type Code uint32

// OK reports whether the code signals success.
func (c Code) OK() bool { return c == 0 }
