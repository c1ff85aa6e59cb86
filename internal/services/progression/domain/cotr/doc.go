// Package cotr manages the certificate of trial readiness raised for a hearing.
//
// Serving a form or supplying further information produces a review task whose
// name, deadline and receiving roles are derived from the form answers and the
// hearing's jurisdiction. Defence answers accumulate per defendant into a
// structured document that later further-information requests extend.
package cotr
