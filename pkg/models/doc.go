// Package models defines the Parcl Labs response records and the enumerated
// filter values accepted by the API.
//
// Optional response fields are pointers; a nil pointer means the server omitted
// the value or sent null. Dates are kept as the server's "YYYY-MM-DD" strings.
package models
