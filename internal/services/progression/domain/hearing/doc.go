// Package hearing tracks the listing, resulting and linked applications of a
// court hearing.
package hearing
