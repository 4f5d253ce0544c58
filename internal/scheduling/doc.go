// Package scheduling resolves cyclic shift assignments and reconciles the resulting
// staffing against configured bounds.
//
// Everything here is a pure function over immutable inputs: a cycle catalog, the
// current assignments, per-date exceptions and staffing requirements. Callers load
// those once per request and may fan out over dates or employees freely.
package scheduling
