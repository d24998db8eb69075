// Package metadata resolves cover art and descriptive metadata for
// entries. Each media type maps to a primary provider; when the
// primary yields nothing acceptable the resolver degrades through a
// deterministic fallback chain, bottoming out at a synthesized
// placeholder. Provider failures never escape the resolver.
package metadata
