/*
Package encival is a validated interval arithmetic library for Go.
It provides a scalar interval type with outward-rounded arithmetic, set
operations and elementary functions, guaranteeing that every computed
interval encloses the true mathematical result, while retaining the
performance of plain float64 arithmetic on the hot path.
*/
package encival
