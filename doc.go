// Package fdkaac provides Go bindings for the Fraunhofer FDK AAC codec
// library (libfdk-aac), exposing AAC encoding and decoding through safe
// wrapper types.
//
// The package contains no codec logic of its own: every encode and
// decode operation is performed by the native library, which must be
// installed and discoverable through pkg-config as "fdk-aac". The
// wrapper owns the opaque native handles, translates native error codes
// into typed Go errors, and marshals sample and bitstream buffers for
// the duration of each call.
//
// # Encoding
//
//	enc, err := fdkaac.NewEncoder(fdkaac.EncoderConfig{
//	    SampleRate: 44100,
//	    Channels:   fdkaac.ChannelModeStereo,
//	    Bitrate:    128000,
//	    Transport:  fdkaac.TransportADTS,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer enc.Close()
//
//	info, _ := enc.Info()
//	out := make([]byte, info.MaxOutBufBytes)
//	for len(pcm) > 0 {
//	    res, err := enc.Encode(pcm, out)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    sink.Write(out[:res.OutputBytes])
//	    pcm = pcm[res.InputConsumed:]
//	}
//
// # Decoding
//
// The decoder works pull-style: feed bitstream bytes with Fill, decode
// frames until the input runs dry, repeat.
//
//	dec, err := fdkaac.NewDecoder(fdkaac.TransportADTS)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dec.Close()
//
//	dec.Fill(data)
//	pcm := make([]int16, 2048*2)
//	for {
//	    err := dec.DecodeFrame(pcm, 0)
//	    if err == fdkaac.DecErrNotEnoughBits {
//	        break
//	    }
//	    ...
//	}
//
// For whole-file work the EncodeWAV and DecodeToWAV helpers convert
// between WAVE files and ADTS streams in one call.
//
// # Errors
//
// Native error codes are translated one-to-one: EncoderError and
// DecoderError carry the AACENC_ERROR and AAC_DECODER_ERROR values with
// the library's message text. DecoderError additionally exposes the
// native severity ranges (sync, init, decode, ancillary data) as
// predicates, since they determine whether the output buffer of a
// failed call is usable.
//
// # Handles and thread safety
//
// Encoder and Decoder own their native handles exclusively. Close
// releases the handle and is idempotent; any use after Close fails with
// ErrEncoderClosed or ErrDecoderClosed rather than touching freed
// memory. A handle is not safe for concurrent use: confine each
// instance to one goroutine at a time, matching the native library's
// contract.
package fdkaac
