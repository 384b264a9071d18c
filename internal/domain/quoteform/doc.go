// Package quoteform holds the calculations behind the quote request form: volume
// buckets and device speed, running and buyout costs, per-step validation,
// suggestions, defaults and the final submission payload.
//
// Every function is pure and safe for concurrent use. Advisory findings are
// returned as ordered string slices; only ValidateStep reports hard errors.
package quoteform
