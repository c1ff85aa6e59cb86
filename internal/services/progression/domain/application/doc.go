// Package application implements the court application status machine.
//
// Applications start as DRAFT, become LISTED when referred to court and
// IN_PROGRESS when referred for boxwork. EJECTED is terminal: ejecting an
// ejected application emits nothing.
package application
