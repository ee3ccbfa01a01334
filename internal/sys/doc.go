// Package sys contains the raw cgo bindings to libfdk-aac.
//
// It is the only package in the module that imports "C". Everything it
// exports takes and returns plain Go types; the parameter structs and
// buffer descriptor arrays required by the native ABI are assembled in
// small C shims so that no Go-allocated memory holding Go pointers is
// ever handed to the library.
//
// Native error codes are returned untranslated as Code values. The root
// fdkaac package maps them onto typed errors.
package sys
