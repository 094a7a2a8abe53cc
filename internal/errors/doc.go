// Package errors provides structured, coded errors for the widget bridge.
//
// Every error carries a stable code (e.g. "E202"), a category and a short
// message drawn from the code registry. Details, suggestions and a wrapped
// cause are attached with the builder methods:
//
//	err := errors.New("E202").
//	    WithDetail("IconHome is not part of the icon module").
//	    Wrap(cause)
//
// Format renders the error for terminal output; Error returns "CODE: message".
package errors
