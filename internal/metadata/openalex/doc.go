// Package openalex provides a thin client for the OpenAlex works API,
// the primary metadata source for paper entries. Papers carry no cover
// art; the client only supplies bibliographic fields.
package openalex
